package http

import (
	"github.com/gin-gonic/gin"
	"github.com/nutriplan/backend/config"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the Gin router. limiter may be nil to
// disable rate limiting.
func SetupRouter(cfg *config.Config, handler *Handler, limiter *IPRateLimiter, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RequestIDMiddleware())
	router.Use(RecoveryMiddleware(logger))
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	if limiter != nil {
		v1.Use(RateLimitMiddleware(limiter))
	}
	{
		v1.POST("/energy/calculate", handler.Calculate)
		v1.GET("/units/convert", handler.ConvertUnits)

		profile := v1.Group("/profile")
		profile.Use(AuthMiddleware(cfg.Auth.JWTSecret, cfg.Auth.Issuer))
		{
			profile.GET("", handler.GetProfile)
			profile.PUT("", handler.PutProfile)
		}
	}

	return router
}
