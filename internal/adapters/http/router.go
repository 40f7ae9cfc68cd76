package http

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/logodir/internal/adapters/http/handlers"
	"github.com/jsamuelsen/logodir/internal/adapters/http/middleware"
	"github.com/jsamuelsen/logodir/internal/platform/telemetry"
)

// DefaultRequestTimeout bounds API requests when RouterConfig.Timeout is zero.
const DefaultRequestTimeout = 15 * time.Second

// RouterConfig lists what SetupRouter mounts. Nil handlers are skipped.
type RouterConfig struct {
	Logger      *slog.Logger
	ServiceName string
	Timeout     time.Duration

	Logos   *handlers.LogoHandler
	Sitemap *handlers.SitemapHandler
	Health  *handlers.HealthHandler
}

// SetupRouter installs the middleware chain and the routes:
//
//	/-/          probes, build info and metrics, without timeout
//	/api/v1/     catalog endpoints, with the request timeout
//	/sitemap.xml sitemap, with the request timeout
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.Use(
		middleware.Recovery(),
		middleware.ContextLogger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.TraceLogger(),
		middleware.Logging(),
	)

	if cfg.Health != nil {
		cfg.Health.RegisterRoutes(engine)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	if cfg.Sitemap != nil {
		engine.GET("/sitemap.xml", middleware.Timeout(timeout), cfg.Sitemap.Sitemap)
	}

	api := engine.Group("/api/v1", middleware.Timeout(timeout))
	if cfg.Logos != nil {
		cfg.Logos.RegisterRoutes(api)
	}
}
