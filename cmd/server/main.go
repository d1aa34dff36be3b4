package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/database"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/env"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/logging"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/bootstrap"
	"github.com/ManzzyGacor/manzzy-id-backend/migrations"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func main() {
	mainCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.StdoutLogger

	cfg := loadConfig()

	err := database.MigrateDatabase(cfg.DbSettings.GetUrl(), migrations.FS, ".", "pgx", "postgres")
	if err != nil {
		logger.Error("failed to migrate database", "error", err.Error())
		os.Exit(1)
	}

	app := bootstrap.NewStoreApp(cfg, logger)

	go func() {
		<-mainCtx.Done()
		app.Shutdown()
	}()

	if err := app.Run(mainCtx); err != nil {
		logger.Error("application stopped with error", "error", err.Error())
		os.Exit(1)
	}
}

func loadConfig() bootstrap.StoreConfig {
	cfg := bootstrap.StoreConfig{
		HttpPort: ":8080",
		DbSettings: database.PostgresSettings{
			User:     "admin",
			Password: "password",
			Host:     "localhost",
			Port:     "5432",
			DBName:   "manzzy_store_db",
		},
		PackageCatalogPath: "packages.json",
	}

	env.TrySetFromEnv(env.EnvHttpPort, &cfg.HttpPort)
	env.TrySetFromEnv(env.EnvDatabaseHost, &cfg.DbSettings.Host)
	env.TrySetFromEnv(env.EnvDatabasePort, &cfg.DbSettings.Port)
	env.TrySetFromEnv(env.EnvDatabaseUser, &cfg.DbSettings.User)
	env.TrySetFromEnv(env.EnvDatabasePassword, &cfg.DbSettings.Password)
	env.TrySetFromEnv(env.EnvDatabaseName, &cfg.DbSettings.DBName)
	env.TrySetFromEnv(env.EnvJwtSecret, &cfg.JwtSecret)
	env.TrySetFromEnv(env.EnvPteroApiUrl, &cfg.Pterodactyl.ApiUrl)
	env.TrySetFromEnv(env.EnvPteroAppKey, &cfg.Pterodactyl.AppKey)
	env.TrySetFromEnv(env.EnvUserDomain, &cfg.Pterodactyl.EmailDomain)
	env.TrySetFromEnv(env.EnvPakasirSlug, &cfg.Pakasir.Slug)
	env.TrySetFromEnv(env.EnvPakasirApiKey, &cfg.Pakasir.ApiKey)
	env.TrySetFromEnv(env.EnvPackageCatalogPath, &cfg.PackageCatalogPath)

	return cfg
}
