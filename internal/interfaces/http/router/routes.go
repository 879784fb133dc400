package router

import (
	"fmt"

	"github.com/gin-gonic/gin"
	_ "github.com/govprop/backend/docs"
	"github.com/govprop/backend/internal/infrastructure/logger"
	"github.com/govprop/backend/internal/interfaces/http/handler"
	"github.com/govprop/backend/internal/interfaces/http/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Handlers bundles every HTTP handler the API mounts
type Handlers struct {
	Asset       *handler.AssetHandler
	Stock       *handler.StockHandler
	IssueSlip   *handler.IssueSlipHandler
	Return      *handler.ReturnHandler
	Loss        *handler.LossHandler
	Waste       *handler.WasteHandler
	Maintenance *handler.MaintenanceHandler
	Requisition *handler.RequisitionHandler
	Setting     *handler.SettingHandler
	Health      *handler.HealthHandler
}

// Config selects the engine-wide middleware
type Config struct {
	ServiceName      string
	TracingEnabled   bool
	SwaggerEnabled   bool
	CORSAllowOrigins []string
	TrustedProxies   []string
	MaxBodySize      int64
}

// NewEngine builds the gin engine with the middleware chain and every route
func NewEngine(cfg Config, h Handlers, verifier middleware.TokenVerifier, log *zap.Logger) (*gin.Engine, error) {
	if err := middleware.SetupValidator(); err != nil {
		return nil, err
	}

	engine := gin.New()
	if err := engine.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}

	engine.Use(middleware.RequestID())
	if cfg.TracingEnabled {
		engine.Use(middleware.Tracing(cfg.ServiceName))
	}
	cors := middleware.DefaultCORSConfig()
	cors.AllowOrigins = cfg.CORSAllowOrigins
	engine.Use(
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORS(cors),
	)
	if cfg.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(cfg.MaxBodySize))
	}

	engine.GET("/health", h.Health.Health)
	if cfg.SwaggerEnabled {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	NewRouter(engine, WithMiddleware(
		middleware.Authenticate(verifier, log),
		middleware.TagSpan(),
	)).Register(apiGroups(h)...).Setup()

	return engine, nil
}

func apiGroups(h Handlers) []RouteRegistrar {
	manager := middleware.RequireStockManager()

	assets := NewDomainGroup("/assets").
		POST("/consumables", h.Asset.CreateConsumable).
		POST("/properties", h.Asset.CreateProperty).
		GET("", h.Asset.List).
		GET("/:id", h.Asset.Get).
		PUT("/:id", h.Asset.Update).
		DELETE("/:id", h.Asset.Delete).
		GET("/:id/stocks", h.Stock.ListByAsset).
		GET("/:id/units", h.Stock.CurrentUnits)

	stocks := NewDomainGroup("/stocks").
		POST("", manager, h.Stock.Create).
		POST("/batch", manager, h.Stock.CreateBatch).
		POST("/issue", manager, h.Stock.Issue).
		GET("/reference/:reference", h.Stock.ListByReference).
		GET("/:id", h.Stock.Get).
		POST("/:id/transfer", h.Stock.Transfer)

	issueSlips := NewDomainGroup("/issue-slips").
		POST("", h.IssueSlip.Create).
		GET("", h.IssueSlip.List).
		GET("/:id", h.IssueSlip.Get).
		PUT("/:id", h.IssueSlip.Update).
		POST("/:id/issue", h.IssueSlip.Issue)

	returns := NewDomainGroup("/returns").
		POST("", h.Return.Create).
		GET("", h.Return.List).
		GET("/:id", h.Return.Get).
		PUT("/:id", h.Return.Update).
		POST("/:id/approve", h.Return.Approve).
		POST("/:id/complete", h.Return.Complete)

	losses := NewDomainGroup("/losses").
		POST("", h.Loss.Create).
		GET("", h.Loss.List).
		GET("/:id", h.Loss.Get).
		PUT("/:id", h.Loss.Update).
		POST("/:id/approve", h.Loss.Approve).
		POST("/:id/complete", h.Loss.Complete)

	wastes := NewDomainGroup("/wastes").
		POST("", h.Waste.Create).
		GET("", h.Waste.List).
		GET("/:id", h.Waste.Get).
		PUT("/:id", h.Waste.Update).
		POST("/:id/complete", h.Waste.Complete)

	maintenances := NewDomainGroup("/maintenances").
		POST("", h.Maintenance.Create).
		GET("", h.Maintenance.List).
		GET("/:id", h.Maintenance.Get).
		PUT("/:id", h.Maintenance.Update).
		POST("/:id/schedule", h.Maintenance.Schedule).
		POST("/:id/reschedule", h.Maintenance.Reschedule).
		POST("/:id/cancel", h.Maintenance.Cancel).
		POST("/:id/complete", h.Maintenance.Complete)

	requisitions := NewDomainGroup("/requisitions").
		POST("", h.Requisition.Create).
		GET("", h.Requisition.List).
		GET("/ris/:ris_no", h.Requisition.GetByRISNo).
		GET("/:id", h.Requisition.Get).
		PUT("/:id", h.Requisition.Update).
		POST("/:id/evaluate", h.Requisition.Evaluate).
		POST("/:id/review", h.Requisition.Review).
		POST("/:id/approve", h.Requisition.Approve).
		POST("/:id/cancel", h.Requisition.Cancel).
		POST("/:id/issue", h.Requisition.Issue)

	settings := NewDomainGroup("/settings").
		GET("/:name", h.Setting.Get).
		PUT("/:name", h.Setting.Update)

	return []RouteRegistrar{assets, stocks, issueSlips, returns, losses, wastes, maintenances, requisitions, settings}
}
