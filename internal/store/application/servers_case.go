package application

import (
	"context"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
)

type ServersCase struct {
	servers     domain.ServersRepository
	provisioner domain.ServerProvisioner
}

func NewServersCase(servers domain.ServersRepository, provisioner domain.ServerProvisioner) *ServersCase {
	return &ServersCase{
		servers:     servers,
		provisioner: provisioner,
	}
}

func (sc *ServersCase) ListServers(ctx context.Context, accountId int) ([]domain.Server, error) {
	return sc.servers.ListAccountServers(ctx, accountId)
}

// SendPowerSignal forwards a power command for a server the account owns.
// The panel gives no completion guarantee; a nil error only means the
// signal was accepted.
func (sc *ServersCase) SendPowerSignal(ctx context.Context, accountId int, serverId int, signal string) error {
	server, err := sc.servers.GetAccountServer(ctx, accountId, serverId)
	if err != nil {
		return err
	}

	return sc.provisioner.SendPowerSignal(ctx, server.PteroServerId, signal)
}
