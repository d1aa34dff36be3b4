package application

import (
	"context"
	"strings"
	"time"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/logging"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/domain"
)

const (
	minServerNameLength = 3
	defaultBillingDays  = 30
)

// ServerPurchaseCase composes the atomic saldo debit with the vendor calls
// that cannot join a store transaction. The vendor server is never created
// before the debit committed, and success is only reported once both the
// debit and the vendor creation went through.
type ServerPurchaseCase struct {
	accounts    domain.AccountsRepository
	servers     domain.ServersRepository
	provisioner domain.ServerProvisioner
	catalog     domain.PackageCatalog
	logger      logging.Logger
}

func NewServerPurchaseCase(
	accounts domain.AccountsRepository,
	servers domain.ServersRepository,
	provisioner domain.ServerProvisioner,
	catalog domain.PackageCatalog,
	logger logging.Logger,
) *ServerPurchaseCase {
	return &ServerPurchaseCase{
		accounts:    accounts,
		servers:     servers,
		provisioner: provisioner,
		catalog:     catalog,
		logger:      logger,
	}
}

func (c *ServerPurchaseCase) PurchaseServer(ctx context.Context, accountId int, packageId string, serverName string) (domain.Server, error) {
	serverName = strings.TrimSpace(serverName)
	if len(serverName) < minServerNameLength {
		return domain.Server{}, &domain.InvalidArgumentsError{Msg: "server name is too short"}
	}

	pkg, ok := c.catalog.Get(packageId)
	if !ok {
		return domain.Server{}, &domain.ProductNotFoundError{Msg: "unknown server package"}
	}

	account, err := c.accounts.GetAccount(ctx, accountId)
	if err != nil {
		return domain.Server{}, err
	}

	// Money-safety boundary: a single atomic conditional debit. Everything
	// after this point is compensable, not rollbackable.
	err = c.accounts.DebitSaldo(ctx, accountId, pkg.Price)
	if err != nil {
		return domain.Server{}, err
	}

	vendorUser, err := c.provisioner.GetOrCreateUser(ctx, account.Username)
	if err != nil {
		return domain.Server{}, c.compensate(ctx, accountId, pkg.Price, err)
	}

	vendorServerId, err := c.provisioner.CreateServer(ctx, vendorUser.Id, serverName, pkg)
	if err != nil {
		return domain.Server{}, c.compensate(ctx, accountId, pkg.Price, err)
	}

	billingDays := pkg.BillingDays
	if billingDays <= 0 {
		billingDays = defaultBillingDays
	}

	server := domain.Server{
		AccountId:     accountId,
		ProductName:   pkg.Name + " - " + serverName,
		PteroServerId: vendorServerId,
		PteroUserId:   vendorUser.Id,
		Status:        domain.ServerStatusInstalling,
		RenewalDate:   time.Now().AddDate(0, 0, billingDays),
	}

	created, err := c.servers.CreateServer(ctx, server)
	if err != nil {
		// The vendor server exists, so refunding here would hand it out for
		// free. Flag the orphaned resource for the operator instead.
		c.logger.Error("vendor server created but not recorded",
			"accountId", accountId, "vendorServerId", vendorServerId, "error", err)
		return domain.Server{}, &domain.ProvisionNotCompletedError{
			Msg:      "server was created but could not be registered, contact the admin",
			Refunded: false,
		}
	}

	return created, nil
}

// compensate credits back a committed debit after a failed vendor call.
// The failure is always surfaced, whether or not the refund itself worked.
func (c *ServerPurchaseCase) compensate(ctx context.Context, accountId int, amount int64, cause error) error {
	refundErr := c.accounts.CreditSaldo(ctx, accountId, amount)
	refunded := refundErr == nil

	if refunded {
		c.logger.Warn("provisioning failed after debit, saldo refunded",
			"accountId", accountId, "amount", amount, "error", cause)
	} else {
		c.logger.Error("provisioning failed after debit and refund failed, manual compensation required",
			"accountId", accountId, "amount", amount, "error", cause, "refundError", refundErr)
	}

	return &domain.ProvisionNotCompletedError{
		Msg:      "server provisioning failed: " + cause.Error(),
		Refunded: refunded,
	}
}
