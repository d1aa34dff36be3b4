package bootstrap

import (
	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/database"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/infrastructure/pakasir"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/infrastructure/pterodactyl"
)

type StoreConfig struct {
	HttpPort   string
	DbSettings database.PostgresSettings
	JwtSecret  string

	Pterodactyl pterodactyl.Settings
	Pakasir     pakasir.Settings

	// PackageCatalogPath points at the JSON file with the purchasable
	// server packages. The catalog is loaded once at startup.
	PackageCatalogPath string
}
