package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/urbancabz/console/internal/pkg/cache"
	"github.com/urbancabz/console/internal/pkg/config"
	"github.com/urbancabz/console/internal/pkg/database"
	"github.com/urbancabz/console/internal/pkg/guard"
	"github.com/urbancabz/console/internal/pkg/health"
	httpclient "github.com/urbancabz/console/internal/pkg/http"
	"github.com/urbancabz/console/internal/pkg/logger"
	"github.com/urbancabz/console/internal/pkg/middleware"
	"github.com/urbancabz/console/internal/pkg/models"
	natspkg "github.com/urbancabz/console/internal/pkg/nats"
	nsqpkg "github.com/urbancabz/console/internal/pkg/nsq"
	"github.com/urbancabz/console/internal/pkg/retry"
	"github.com/urbancabz/console/internal/pkg/server"
	"github.com/urbancabz/console/internal/pkg/websocket"
	"github.com/urbancabz/console/services/b2b"
	b2bGateway "github.com/urbancabz/console/services/b2b/gateway"
	b2bHandler "github.com/urbancabz/console/services/b2b/handler"
	b2bUsecase "github.com/urbancabz/console/services/b2b/usecase"
	bookingsGateway "github.com/urbancabz/console/services/bookings/gateway"
	bookingsHandler "github.com/urbancabz/console/services/bookings/handler"
	bookingsUsecase "github.com/urbancabz/console/services/bookings/usecase"
	"github.com/urbancabz/console/services/dashboard"
	dashboardGateway "github.com/urbancabz/console/services/dashboard/gateway"
	dashboardHandler "github.com/urbancabz/console/services/dashboard/handler"
	dashboardRepository "github.com/urbancabz/console/services/dashboard/repository"
	dashboardUsecase "github.com/urbancabz/console/services/dashboard/usecase"
	fareGateway "github.com/urbancabz/console/services/fare/gateway"
	fareHandler "github.com/urbancabz/console/services/fare/handler"
	fareRepository "github.com/urbancabz/console/services/fare/repository"
	fareUsecase "github.com/urbancabz/console/services/fare/usecase"
	fleetGateway "github.com/urbancabz/console/services/fleet/gateway"
	fleetHandler "github.com/urbancabz/console/services/fleet/handler"
	fleetUsecase "github.com/urbancabz/console/services/fleet/usecase"
	"github.com/urbancabz/console/services/identity"
	identityGateway "github.com/urbancabz/console/services/identity/gateway"
	identityHandler "github.com/urbancabz/console/services/identity/handler"
	identityRepository "github.com/urbancabz/console/services/identity/repository"
	identityUsecase "github.com/urbancabz/console/services/identity/usecase"
	"github.com/urbancabz/console/services/journal"
	journalGateway "github.com/urbancabz/console/services/journal/gateway"
	journalHandler "github.com/urbancabz/console/services/journal/handler"
	journalRepository "github.com/urbancabz/console/services/journal/repository"
	journalUsecase "github.com/urbancabz/console/services/journal/usecase"
	pricingGateway "github.com/urbancabz/console/services/pricing/gateway"
	pricingHandler "github.com/urbancabz/console/services/pricing/handler"
	pricingRepository "github.com/urbancabz/console/services/pricing/repository"
	pricingUsecase "github.com/urbancabz/console/services/pricing/usecase"
)

const (
	appName    = "urbancabz-console"
	configPath = "config/console.env"

	quoteLimit  = 30
	quotePeriod = time.Minute
)

func main() {
	configs := config.InitConfig(configPath)

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Set global logger for application-wide access
	logger.SetGlobalLogger(zapLogger)

	instanceID := uuid.New().String()
	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("instance_id", instanceID),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	e := server.NewEcho(configs.Server, zapLogger)
	srv := server.NewGracefulServer(e, zapLogger, configs.Server)
	healthService := health.NewHealthService(zapLogger)
	healthService.AddChecker("api", health.NewUpstreamHealthChecker(configs.API.BaseURL))
	retrier := retry.New(retry.StartupConfig(), zapLogger)

	// Optional Redis: session tokens, collaborator caches and the quote limiter
	var redisClient *database.RedisClient
	if configs.Redis.Enabled() {
		err = retrier.Execute(ctx, "redis", func(context.Context) error {
			var err error
			redisClient, err = database.NewRedisClient(configs.Redis)
			return err
		})
		if err != nil {
			zapLogger.Fatal("Failed to connect to Redis", logger.Err(err))
		}
		healthService.AddChecker("redis", health.NewRedisHealthChecker(redisClient))
		srv.OnShutdown(func(context.Context) error { return redisClient.Close() })
	}

	// Optional PostgreSQL: the action journal
	var journalRepo journal.JournalRepo
	if configs.Database.Enabled() {
		var postgresClient *database.PostgresClient
		err = retrier.Execute(ctx, "postgres", func(context.Context) error {
			var err error
			postgresClient, err = database.NewPostgresClient(configs.Database)
			return err
		})
		if err != nil {
			zapLogger.Fatal("Failed to connect to PostgreSQL", logger.Err(err))
		}
		repo := journalRepository.NewJournalRepository(postgresClient.GetDB())
		if err := repo.Migrate(ctx); err != nil {
			zapLogger.Fatal("Failed to migrate journal", logger.Err(err))
		}
		journalRepo = repo
		healthService.AddChecker("postgres", health.NewPostgresHealthChecker(postgresClient))
		srv.OnShutdown(func(context.Context) error { return postgresClient.Close() })
	}

	// Optional NATS: refresh notices between console instances
	var natsClient *natspkg.Client
	if configs.NATS.URL != "" {
		err = retrier.Execute(ctx, "nats", func(context.Context) error {
			var err error
			natsClient, err = natspkg.NewClient(configs.NATS.URL, appName+"-"+instanceID)
			return err
		})
		if err != nil {
			zapLogger.Fatal("Failed to connect to NATS", logger.Err(err))
		}
		healthService.AddChecker("nats", health.NewNATSHealthChecker(natsClient))
		srv.OnShutdown(func(context.Context) error { natsClient.Close(); return nil })
	}

	// Optional NSQ: queued journal writes
	var journalGW journal.JournalGW
	var nsqProducer *nsqpkg.Producer
	if configs.NSQ.Address != "" {
		err = retrier.Execute(ctx, "nsq", func(context.Context) error {
			var err error
			nsqProducer, err = nsqpkg.NewProducer(configs.NSQ.Address)
			return err
		})
		if err != nil {
			zapLogger.Fatal("Failed to connect to NSQ", logger.Err(err))
		}
		journalGW = journalGateway.NewJournalGW(nsqProducer)
		healthService.AddChecker("nsq", health.CheckerFunc(func(context.Context) error { return nsqProducer.Ping() }))
	}

	// Identity: the token store backs both the API client and the session middleware
	identities := cache.NewTTLCache[*models.Identity](configs.Cache.IdentityTTL, nil)
	var tokenRepo identity.TokenRepo
	if redisClient != nil {
		tokenRepo = identityRepository.NewRedisTokenRepository(redisClient)
	} else {
		tokenRepo = identityRepository.NewMemoryTokenRepository(nil)
	}
	sessionUC := identityUsecase.NewSessionUC(configs.JWT, tokenRepo, identities, nil)

	apiClient := httpclient.NewAPIClient(configs.API, sessionUC)
	collaborators := httpclient.NewCollaboratorClient(zapLogger, configs.Routing.Timeout, configs.Routing.UserAgent)

	identityUC := identityUsecase.NewIdentityUC(identityGateway.NewIdentityGW(apiClient), identities)

	// Dashboard
	streamer := websocket.NewManager(configs.Server.AllowedOrigins)
	var notifier dashboard.NotifierGW
	if natsClient != nil {
		notifier = dashboardGateway.NewNotifierGW(natsClient)
	}
	dashboardUC := dashboardUsecase.NewDashboardUC(
		configs.Dashboard,
		instanceID,
		dashboardRepository.NewCollectionRepository(),
		dashboardGateway.NewCollectionGW(apiClient),
		notifier,
		streamer,
		nil,
	)

	// Pricing and fares
	pricingUC := pricingUsecase.NewPricingUC(
		pricingRepository.NewPricingRepository(redisClient, configs.Cache.PricingTTL),
		pricingGateway.NewPricingGW(apiClient),
	)
	fareUC := fareUsecase.NewFareUC(
		configs,
		fareRepository.NewFareRepository(redisClient, configs.Cache),
		fareGateway.NewRoutingGW(collaborators, configs.Routing),
		fareGateway.NewCatalogGW(apiClient),
		pricingUC,
		nil,
	)

	// Journal
	journalUC := journalUsecase.NewJournalUC(journalRepo, journalGW, nil)

	// Booking lifecycles share one in-flight guard
	inflight := guard.NewInFlight()
	bookingUC := bookingsUsecase.NewBookingUC(
		bookingsGateway.NewBookingGW(apiClient),
		fareUC,
		journalUC,
		dashboardUC,
		inflight,
		nil,
	)

	var dispatchGW b2b.DispatchGW
	if configs.Outreach.TelegramToken != "" && configs.Outreach.TelegramChatID != 0 {
		bot, err := b2bGateway.NewBot(configs.Outreach.TelegramToken)
		if err != nil {
			logger.Warn("Telegram dispatch disabled", logger.Err(err))
		} else {
			dispatchGW = b2bGateway.NewTelegramGW(bot, configs.Outreach.TelegramChatID)
		}
	}
	b2bUC := b2bUsecase.NewB2BUC(
		configs.Outreach,
		b2bGateway.NewB2BGW(apiClient),
		dispatchGW,
		fareUC,
		journalUC,
		dashboardUC,
		inflight,
		nil,
	)

	fleetUC := fleetUsecase.NewFleetUC(fleetGateway.NewFleetGW(apiClient), dashboardUC)

	// Handlers
	identityH := identityHandler.NewHandler(sessionUC, identityUC)
	dashboardH := dashboardHandler.NewHandler(dashboardUC, streamer)
	pricingH := pricingHandler.NewHandler(pricingUC)
	fareH := fareHandler.NewHandler(fareUC)
	journalH := journalHandler.NewHandler(journalUC)
	bookingsH := bookingsHandler.NewHandler(bookingUC)
	b2bH := b2bHandler.NewHandler(b2bUC)
	fleetH := fleetHandler.NewHandler(fleetUC)

	if natsClient != nil {
		if err := dashboardH.InitNATSConsumers(natsClient); err != nil {
			zapLogger.Fatal("Failed to initialize NATS consumers", logger.Err(err))
		}
	}

	if nsqProducer != nil && journalRepo != nil {
		consumer, err := journalH.Consumer().Subscribe(configs.NSQ.Address)
		if err != nil {
			zapLogger.Fatal("Failed to initialize NSQ consumer", logger.Err(err))
		}
		srv.OnShutdown(func(context.Context) error { consumer.Stop(); return nil })
	}
	if nsqProducer != nil {
		srv.OnShutdown(func(context.Context) error { nsqProducer.Stop(); return nil })
	}

	// Routes
	health.RegisterHealthEndpoints(e, appName, configs.App.Version, healthService)

	api := e.Group("/api")
	identityH.RegisterPublicRoutes(api)

	protected := api.Group("", middleware.SessionMiddleware(sessionUC))
	adminOnly := middleware.RequireUserType(models.UserTypeAdmin)
	identityH.RegisterRoutes(protected)
	dashboardH.RegisterRoutes(protected, adminOnly)
	pricingH.RegisterRoutes(protected, adminOnly)
	journalH.RegisterRoutes(protected, adminOnly)
	bookingsH.RegisterRoutes(protected, adminOnly)
	b2bH.RegisterRoutes(protected)
	fleetH.RegisterRoutes(protected, adminOnly)

	var quoteLimiter echo.MiddlewareFunc
	if redisClient != nil {
		quoteLimiter = middleware.QuoteRateLimiter(quoteLimit, quotePeriod, redisClient.GetClient())
	}
	fareH.RegisterRoutes(protected, quoteLimiter)

	// Background resync of the dashboard collections
	go dashboardUC.Run(ctx)

	if err := srv.Run(ctx); err != nil {
		zapLogger.Error("Server exited with error", logger.Err(err))
		_ = zapLogger.Sync()
		os.Exit(1)
	}

	zapLogger.Info("Server exiting gracefully")
	_ = zapLogger.Sync()
}
