package router

import (
	"net/http"
	"time"

	"selectz/config"
	"selectz/internal/handler"
	"selectz/internal/middleware"
	"selectz/internal/repository"
	"selectz/internal/service"
	"selectz/pkg/payment"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

func Setup(cfg *config.Config, db *gorm.DB, provider payment.Provider, logger zerolog.Logger) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS())

	intentRepo := repository.NewPaymentIntentRepository(db)
	couponRepo := repository.NewCouponRepository(db)
	creditsRepo := repository.NewCreditsRepository(db)
	jobRepo := repository.NewJobRepository(db)

	couponSvc := service.NewCouponService(couponRepo, logger)
	settlementSvc := service.NewSettlementService(db, intentRepo, couponRepo, creditsRepo, jobRepo, logger)

	couponHandler := handler.NewCouponHandler(couponSvc)
	orderHandler := handler.NewOrderHandler(cfg, intentRepo, couponSvc, provider)
	webhookHandler := handler.NewWebhookHandler(settlementSvc, cfg)
	creditsHandler := handler.NewCreditsHandler(creditsRepo)

	limiter := middleware.NewInMemoryRateLimiter(100, 60*time.Second)

	api := r.Group("/api/v1")
	{
		public := api.Group("")
		public.Use(middleware.RateLimit(limiter))
		{
			public.POST("/coupons/validate", couponHandler.Validate)
			public.POST("/payments/orders", orderHandler.Create)
			public.GET("/payments", orderHandler.List)
			public.GET("/employers/:employer_id/credits", creditsHandler.GetBalance)
		}
		// Processor webhooks bypass the rate limiter; dropping a retry burst
		// would delay settlement.
		api.POST("/webhooks/razorpay", webhookHandler.Handle)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}
