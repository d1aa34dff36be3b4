package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	authapp "github.com/ManzzyGacor/manzzy-id-backend/internal/auth/application"
	authdomain "github.com/ManzzyGacor/manzzy-id-backend/internal/auth/domain"
	authpg "github.com/ManzzyGacor/manzzy-id-backend/internal/auth/infrastructure/postgres"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/database"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/jwt"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/pkg/logging"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/application"
	httpwrap "github.com/ManzzyGacor/manzzy-id-backend/internal/store/http"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/infrastructure/pakasir"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/infrastructure/postgres"
	"github.com/ManzzyGacor/manzzy-id-backend/internal/store/infrastructure/pterodactyl"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"
)

const (
	shutdownTimeout = 5 * time.Second
	purgeInterval   = time.Hour
)

type StoreApp struct {
	cfg    StoreConfig
	logger logging.Logger

	server *http.Server
	dbpool *pgxpool.Pool
}

func NewStoreApp(cfg StoreConfig, logger logging.Logger) *StoreApp {
	return &StoreApp{
		cfg:    cfg,
		logger: logger,
	}
}

func (a *StoreApp) Run(ctx context.Context) error {
	logger := a.logger
	cfg := a.cfg

	catalog, err := LoadPackageCatalog(cfg.PackageCatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load package catalog: %w", err)
	}

	dbpool, err := pgxpool.New(ctx, cfg.DbSettings.GetUrl())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	a.dbpool = dbpool

	usersRepository := authpg.NewUsersRepository(dbpool)
	authenticator := authapp.NewAuthenticator(usersRepository, authdomain.NewArgonPasswordHasher(), jwt.NewJWTTokenIssuer(), cfg.JwtSecret)

	txManager := database.NewDelegateTxManager(dbpool, logger)

	accountsRepository := postgres.NewAccountsRepository(dbpool)
	productsRepository := postgres.NewProductsRepository(dbpool, txManager)
	invoicesRepository := postgres.NewInvoicesRepository(dbpool)
	informationRepository := postgres.NewInformationRepository(dbpool)
	serversRepository := postgres.NewServersRepository(dbpool)
	topupsRepository := postgres.NewTopupsRepository(dbpool)
	topupCreditor := postgres.NewTopupCreditor(dbpool, logger)
	purchaseHandler := postgres.NewPurchaseHandler(dbpool, logger)

	pteroClient := pterodactyl.NewClient(cfg.Pterodactyl, logger)
	pakasirClient := pakasir.NewClient(cfg.Pakasir)

	purchaseCase := application.NewPurchaseCase(purchaseHandler)
	serverPurchaseCase := application.NewServerPurchaseCase(accountsRepository, serversRepository, pteroClient, catalog, logger)
	serversCase := application.NewServersCase(serversRepository, pteroClient)
	topupCase := application.NewTopupCase(topupsRepository, topupCreditor, pakasirClient, logger)
	dashboardCase := application.NewDashboardCase(accountsRepository, productsRepository, invoicesRepository, informationRepository)
	adminCase := application.NewAdminCase(accountsRepository, productsRepository, informationRepository)

	router := createRouter(
		cfg,
		authenticator,
		purchaseCase,
		serverPurchaseCase,
		serversCase,
		topupCase,
		dashboardCase,
		adminCase,
		logger,
	)

	a.server = &http.Server{
		Addr:    cfg.HttpPort,
		Handler: router,
	}

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("starting http server", "addr", a.server.Addr)

		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("error while starting http server: %w", err)
		}

		return nil
	})

	group.Go(func() error {
		runTopupPurger(groupCtx, topupCase, logger)
		return nil
	})

	group.Go(func() error {
		<-groupCtx.Done()
		return nil
	})

	return group.Wait()
}

func (a *StoreApp) Shutdown() {
	if a.server == nil {
		return
	}

	a.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("server shutdown failed", "error", err.Error())
	}

	a.dbpool.Close()
}

func createRouter(
	cfg StoreConfig,
	authenticator *authapp.Authenticator,
	purchaseCase *application.PurchaseCase,
	serverPurchaseCase *application.ServerPurchaseCase,
	serversCase *application.ServersCase,
	topupCase *application.TopupCase,
	dashboardCase *application.DashboardCase,
	adminCase *application.AdminCase,
	logger logging.Logger,
) *gin.Engine {
	router := gin.Default()

	authHandler := httpwrap.NewAuthHandler(authenticator)
	dashboardHandler := httpwrap.NewDashboardHandler(dashboardCase, purchaseCase)
	serverHandler := httpwrap.NewServerHandler(serverPurchaseCase, serversCase)
	paymentHandler := httpwrap.NewPaymentHandler(topupCase, logger)
	adminHandler := httpwrap.NewAdminHandler(adminCase)

	api := router.Group("/api")
	{
		api.POST("/auth", authHandler.Authenticate)
		// Callbacks are authenticated by re-verification, not by JWT.
		api.POST("/payment/pakasir-callback", paymentHandler.HandleCallback)

		authenticated := api.Group("/", httpwrap.NewAuthMiddleware(cfg.JwtSecret, jwt.NewJWTTokenParser()))
		{
			authenticated.GET("/data/dashboard-data", dashboardHandler.GetDashboardData)
			authenticated.POST("/data/purchase", dashboardHandler.Purchase)
			authenticated.GET("/data/invoice/:"+httpwrap.InvoiceNumberKey, dashboardHandler.GetInvoice)

			authenticated.POST("/payment/create-topup", paymentHandler.CreateTopup)

			authenticated.POST("/servers/buy", serverHandler.BuyServer)
			authenticated.GET("/servers", serverHandler.ListServers)
			authenticated.POST("/servers/:"+httpwrap.ServerIdKey+"/power", serverHandler.SendPowerSignal)

			admin := authenticated.Group("/data/admin", httpwrap.NewAdminMiddleware())
			{
				admin.GET("/users", adminHandler.ListUsers)
				admin.POST("/add-saldo", adminHandler.AddSaldo)
				admin.POST("/products", adminHandler.CreateProduct)
				admin.DELETE("/products/:"+httpwrap.ProductIdKey, adminHandler.DeleteProduct)
				admin.POST("/add-stock-item", adminHandler.AddStockItems)
				admin.POST("/info", adminHandler.PostInformation)
			}
		}
	}

	return router
}

// runTopupPurger drops stale reconciliation rows on a fixed cadence.
func runTopupPurger(ctx context.Context, topupCase *application.TopupCase, logger logging.Logger) {
	ticker := time.NewTicker(purgeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged, err := topupCase.PurgeExpired(ctx)
			if err != nil {
				logger.Error("failed to purge expired topups", "error", err)
				continue
			}

			if purged > 0 {
				logger.Info("purged expired topups", "count", purged)
			}
		}
	}
}
