package http

import (
	"github.com/gin-gonic/gin"

	"github.com/swiftticket/swiftticket/internal/interfaces/http/handlers"
	"github.com/swiftticket/swiftticket/internal/interfaces/http/middleware"
	"github.com/swiftticket/swiftticket/internal/shared/logger"
)

// Router is the operations HTTP surface: health checks and build info only.
type Router struct {
	engine *gin.Engine
	health *handlers.HealthHandler
	logger logger.Interface
}

func NewRouter(health *handlers.HealthHandler, log logger.Interface) *Router {
	engine := gin.New()
	engine.Use(middleware.Recovery(log))
	engine.Use(middleware.Logger(log))

	return &Router{
		engine: engine,
		health: health,
		logger: log,
	}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.GET("/healthz", r.health.Healthz)
	r.engine.GET("/readyz", r.health.Readyz)
	r.engine.GET("/version", r.health.Version)
}

// GetEngine returns the gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
