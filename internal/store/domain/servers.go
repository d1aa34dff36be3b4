package domain

import (
	"context"
	"time"
)

const (
	ServerStatusInstalling = "installing"
	ServerStatusActive     = "active"
	ServerStatusSuspended  = "suspended"
	ServerStatusUnknown    = "unknown"
)

type Server struct {
	Id            int
	AccountId     int
	ProductName   string
	PteroServerId string
	PteroUserId   string
	Status        string
	RenewalDate   time.Time
	CreatedAt     time.Time
}

// ServerPackage is one purchasable hosting plan. Catalogs are loaded at
// startup and injected; the vendor identifiers are opaque to the store.
type ServerPackage struct {
	Id             string            `json:"id"`
	Name           string            `json:"name"`
	Price          int64             `json:"price"`
	EggId          int               `json:"eggId"`
	NestId         int               `json:"nestId"`
	DockerImage    string            `json:"dockerImage"`
	StartupCommand string            `json:"startupCommand"`
	Environment    map[string]string `json:"environment"`
	Limits         ServerLimits      `json:"limits"`
	FeatureLimits  FeatureLimits     `json:"featureLimits"`
	LocationId     int               `json:"locationId"`
	BillingDays    int               `json:"billingDays"`
}

type ServerLimits struct {
	Memory int `json:"memory"`
	Disk   int `json:"disk"`
	CPU    int `json:"cpu"`
	Swap   int `json:"swap"`
	IO     int `json:"io"`
}

type FeatureLimits struct {
	Databases   int `json:"databases"`
	Backups     int `json:"backups"`
	Allocations int `json:"allocations"`
}

type PackageCatalog map[string]ServerPackage

func (c PackageCatalog) Get(packageId string) (ServerPackage, bool) {
	pkg, ok := c[packageId]
	return pkg, ok
}

type VendorUser struct {
	Id       string
	Username string
	Email    string
}

// ServerProvisioner is the boundary to the hosting panel. Calls happen
// outside any store transaction.
type ServerProvisioner interface {
	GetOrCreateUser(ctx context.Context, username string) (VendorUser, error)
	CreateServer(ctx context.Context, vendorUserId string, serverName string, pkg ServerPackage) (string, error)
	SendPowerSignal(ctx context.Context, vendorServerId string, signal string) error
}

type ServersRepository interface {
	CreateServer(ctx context.Context, server Server) (Server, error)
	ListAccountServers(ctx context.Context, accountId int) ([]Server, error)
	GetAccountServer(ctx context.Context, accountId int, serverId int) (Server, error)
}
