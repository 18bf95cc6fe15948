// Package router assembles the gin engine and registers the API routes.
package router

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marketledger/backend/internal/infrastructure/logger"
	"github.com/marketledger/backend/internal/interfaces/http/middleware"
)

// RouteRegistrar defines the interface for registering routes
type RouteRegistrar interface {
	RegisterRoutes(rg *gin.RouterGroup)
}

// Config holds router assembly settings.
type Config struct {
	// Env selects the gin mode; "production" runs in release mode
	Env string
	// MaxBodySize caps request body size in bytes; 0 disables the limit
	MaxBodySize int64
}

// New builds a gin engine with the shared middleware stack and registers
// every registrar under /api/v1.
func New(cfg Config, log *zap.Logger, registrars ...RouteRegistrar) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
	)
	if cfg.MaxBodySize > 0 {
		engine.Use(middleware.BodyLimit(cfg.MaxBodySize))
	}

	api := engine.Group("/api/v1")
	for _, registrar := range registrars {
		registrar.RegisterRoutes(api)
	}

	return engine
}
