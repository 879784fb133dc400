package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	assetapp "github.com/govprop/backend/internal/application/asset"
	issueslipapp "github.com/govprop/backend/internal/application/issueslip"
	lossapp "github.com/govprop/backend/internal/application/loss"
	maintenanceapp "github.com/govprop/backend/internal/application/maintenance"
	"github.com/govprop/backend/internal/application/notification"
	requisitionapp "github.com/govprop/backend/internal/application/requisition"
	returnsapp "github.com/govprop/backend/internal/application/returns"
	settingapp "github.com/govprop/backend/internal/application/setting"
	stockapp "github.com/govprop/backend/internal/application/stock"
	wasteapp "github.com/govprop/backend/internal/application/waste"
	"github.com/govprop/backend/internal/infrastructure/auth"
	"github.com/govprop/backend/internal/infrastructure/cache"
	"github.com/govprop/backend/internal/infrastructure/config"
	"github.com/govprop/backend/internal/infrastructure/event"
	"github.com/govprop/backend/internal/infrastructure/logger"
	"github.com/govprop/backend/internal/infrastructure/persistence"
	"github.com/govprop/backend/internal/infrastructure/telemetry"
	"github.com/govprop/backend/internal/interfaces/http/handler"
	"github.com/govprop/backend/internal/interfaces/http/router"
	"go.uber.org/zap"
)

//	@title			Government Property Stock Ledger API
//	@version		1.0.0
//	@description	Asset registry, stock ledger and accountability documents for government property.

//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Bearer token authentication. Format: "Bearer {token}"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logCfg := logger.Config{Level: cfg.Log.Level, Format: cfg.Log.Format, Output: cfg.Log.Output}
	bootLog, err := logger.New(logCfg)
	if err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tel, err := telemetry.Setup(ctx, cfg.Telemetry, bootLog)
	if err != nil {
		bootLog.Fatal("Failed to initialize telemetry", zap.Error(err))
	}

	// From here on entries are also exported over OTLP when telemetry is enabled.
	log, err := logger.New(logCfg, tel.LogCore(logger.ParseLevel(cfg.Log.Level)))
	if err != nil {
		bootLog.Fatal("Failed to initialize logger", zap.Error(err))
	}
	defer func() { _ = log.Sync() }()

	log.Info("Starting government property backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.Bool("telemetry", cfg.Telemetry.Enabled),
	)

	gormLog := logger.NewGormLogger(log, logger.GormLevel(cfg.Log.Level), cfg.Telemetry.DBSlowQueryThresh)
	db, err := persistence.Open(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	if err := telemetry.RegisterDBTracing(db.DB, cfg.Telemetry, log); err != nil {
		log.Fatal("Failed to register database tracing", zap.Error(err))
	}
	log.Info("Database connected successfully")

	cacheOpts := []cache.SettingCacheFactoryOption{
		cache.WithLogger(log),
		cache.WithInMemoryFallback(!cfg.App.IsProduction()),
	}
	if cfg.Redis.Enabled {
		cacheOpts = append(cacheOpts, cache.WithRedis(cache.RedisConfig{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}))
	}
	cacheHandle, err := cache.NewSettingCacheFactory(cfg.Cache.Setting(), cacheOpts...).Create(ctx)
	if err != nil {
		log.Fatal("Failed to initialize settings cache", zap.Error(err))
	}
	defer func() { _ = cacheHandle.Close() }()
	go func() {
		if err := cacheHandle.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Error("Settings cache invalidation stopped", zap.Error(err))
		}
	}()

	// Repositories
	repos := persistence.NewRepositories(db.DB)
	txScope := persistence.NewGormTransactionScope(db.DB)
	units := persistence.NewGoquUnitReader(db.DB)
	directory := persistence.NewGormDirectory(db.DB)
	settingRepo := persistence.NewGormSettingRepository(db.DB)

	// Services
	settingService := settingapp.NewService(settingRepo, cacheHandle.Cache, cfg.Cache.SettingL1TTL, log)
	stockService := stockapp.NewService(txScope, repos.Entries, units, log)
	assetService := assetapp.NewService(txScope, repos.Assets)
	issueSlipService := issueslipapp.NewService(txScope, repos.IssueSlips, stockService, directory, settingService, log)
	returnService := returnsapp.NewService(txScope, repos.Returns, stockService, directory, log)
	lossService := lossapp.NewService(txScope, repos.Losses, stockService, directory, log)
	wasteService := wasteapp.NewService(txScope, repos.Wastes, stockService, log)
	maintenanceService := maintenanceapp.NewService(txScope, repos.Maintenances, stockService, directory, log)
	requisitionService := requisitionapp.NewService(txScope, repos.Requisitions, stockService, directory, settingService, log)

	ledgerMetrics, err := tel.LedgerMetrics()
	if err != nil {
		log.Fatal("Failed to create ledger metrics", zap.Error(err))
	}
	stockService.SetMovementRecorder(ledgerMetrics)

	// Domain events are dispatched in process once the originating transaction has committed
	eventBus := event.NewInMemoryEventBus(log)
	eventBus.Subscribe(notification.NewLossReportedHandler(settingService, directory, notification.NewLogMailer(log), log))
	if err := eventBus.Start(ctx); err != nil {
		log.Fatal("Failed to start event bus", zap.Error(err))
	}
	assetService.SetEventPublisher(eventBus)
	issueSlipService.SetEventPublisher(eventBus)
	returnService.SetEventPublisher(eventBus)
	lossService.SetEventPublisher(eventBus)
	wasteService.SetEventPublisher(eventBus)
	maintenanceService.SetEventPublisher(eventBus)
	requisitionService.SetEventPublisher(eventBus)

	sqlDB, err := db.SQL()
	if err != nil {
		log.Fatal("Failed to access connection pool", zap.Error(err))
	}

	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	engine, err := router.NewEngine(router.Config{
		ServiceName:      cfg.Telemetry.ServiceName,
		TracingEnabled:   tel.Tracer.Enabled(),
		SwaggerEnabled:   cfg.Swagger.Enabled,
		CORSAllowOrigins: cfg.HTTP.CORSAllowOrigins,
		TrustedProxies:   cfg.HTTP.TrustedProxies,
		MaxBodySize:      cfg.HTTP.MaxBodySize,
	}, router.Handlers{
		Asset:       handler.NewAssetHandler(assetService),
		Stock:       handler.NewStockHandler(stockService),
		IssueSlip:   handler.NewIssueSlipHandler(issueSlipService),
		Return:      handler.NewReturnHandler(returnService),
		Loss:        handler.NewLossHandler(lossService),
		Waste:       handler.NewWasteHandler(wasteService),
		Maintenance: handler.NewMaintenanceHandler(maintenanceService),
		Requisition: handler.NewRequisitionHandler(requisitionService),
		Setting:     handler.NewSettingHandler(settingService),
		Health:      handler.NewHealthHandler(sqlDB, telemetry.ServiceVersion),
	}, auth.NewJWTService(cfg.JWT), log)
	if err != nil {
		log.Fatal("Failed to build HTTP router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	stop()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}
	if err := eventBus.Stop(shutdownCtx); err != nil {
		log.Error("Error stopping event bus", zap.Error(err))
	}
	if err := tel.Shutdown(shutdownCtx); err != nil {
		log.Error("Error shutting down telemetry", zap.Error(err))
	}

	log.Info("Server exited")
}
