package server

import (
	"net/http"
	"time"

	"erpforms/internal/config"
	"erpforms/internal/handler"
	"erpforms/internal/logger"
	"erpforms/internal/metrics"
	"erpforms/internal/middleware"
	"erpforms/internal/repository"
	"erpforms/internal/service"
	"erpforms/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options carries the collaborators the router is built from.
type Options struct {
	Config   *config.Config
	DB       *gorm.DB
	Logger   *zap.Logger
	Hub      *websocket.Hub
	Registry *prometheus.Registry
	Now      func() time.Time
}

// NewRouter wires repositories, services and handlers (Repository -> Service -> Handler).
func NewRouter(opts Options) *gin.Engine {
	cfg := opts.Config
	m := metrics.New(opts.Registry, "erpforms")
	auth := middleware.NewAuthenticator(cfg.Auth)

	records := repository.NewRecords(opts.DB)
	auditRepo := repository.NewAuditRepository(opts.DB)
	deps := service.Deps{
		TxManager: repository.NewTransactionManager(opts.DB),
		Sequences: repository.NewSequenceRepository(opts.DB),
		Audit:     auditRepo,
		Events:    opts.Hub,
		Metrics:   m,
		Logger:    opts.Logger,
		Padding:   cfg.Codes.Padding,
		Now:       opts.Now,
	}
	codes := service.NewNextCodeService(records, cfg.Codes.Padding)

	masterData := handler.NewMasterDataHandler(
		service.NewAreaService(deps, records.Areas),
		service.NewPartnerService(deps, records.Suppliers, records.Customers),
		service.NewCatalogService(deps, records),
		codes, auth,
	)
	transactions := handler.NewTransactionHandler(
		service.NewPurchasingService(deps, records),
		service.NewStockService(deps, records),
		codes, auth,
	)
	lookups := handler.NewLookupHandler(service.NewLookupService(repository.NewLookupRepository(opts.DB)))
	audit := handler.NewAuditHandler(service.NewAuditService(auditRepo), auth)

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(logger.GinMiddleware(opts.Logger))
	router.Use(logger.Recovery(opts.Logger))
	router.Use(middleware.Metrics(m))

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.HTTP.CORSAllowOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", middleware.RequestIDHeader}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(opts.Registry, promhttp.HandlerOpts{})))
	router.GET("/health", healthHandler(opts.DB))
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(opts.Hub, c, auth)
	})

	root := router.Group("")
	masterData.RegisterRoutes(root)
	transactions.RegisterRoutes(root)
	lookups.RegisterRoutes(root)
	audit.RegisterRoutes(root)

	return router
}

func healthHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			logger.FromGin(c).Warn("Health check failed", zap.Error(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "database": "error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "OK", "database": "ok"})
	}
}
