package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/codezest/catalog/internal/cache"
	"github.com/codezest/catalog/internal/domain"
	"github.com/codezest/catalog/internal/middleware"
	"github.com/codezest/catalog/internal/pkg"
)

// RouteDeps holds all dependencies needed to register routes.
type RouteDeps struct {
	Modules []Module
	Authz   middleware.Authz
	DB      *gorm.DB
	Cache   *cache.Cache
}

// RegisterRoutes registers all application routes on the given gin.Engine.
func RegisterRoutes(r *gin.Engine, deps *RouteDeps) error {
	if r == nil {
		return errors.New("router is nil")
	}
	if deps == nil {
		return errors.New("route dependencies are nil")
	}
	if len(deps.Modules) == 0 {
		return errors.New("at least one module is required")
	}

	r.GET("/health", healthHandler(deps.DB, deps.Cache))

	api := r.Group("/api/v1")
	for i, m := range deps.Modules {
		if m == nil {
			return fmt.Errorf("module at index %d is nil", i)
		}
		m.RegisterRoutes(api, deps.Authz)
	}

	r.NoRoute(noRouteHandler())

	return nil
}

// healthHandler pings the database and, when configured, the cache, and
// reports per-component status. A failing database degrades the service; a
// failing cache is reported but does not.
func healthHandler(db *gorm.DB, c *cache.Cache) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		status := "ok"
		code := http.StatusOK
		components := gin.H{}

		dbStatus := "ok"
		if err := pingDatabase(ctx.Request.Context(), db); err != nil {
			dbStatus = "error"
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		components["database"] = dbStatus

		if c != nil {
			cacheStatus := "ok"
			if err := c.HealthCheck(ctx.Request.Context()); err != nil {
				cacheStatus = "error"
			}
			components["cache"] = cacheStatus
		}

		ctx.JSON(code, gin.H{
			"status":     status,
			"components": components,
		})
	}
}

func pingDatabase(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return errors.New("database not configured")
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	pingCtx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()
	return sqlDB.PingContext(pingCtx)
}

// noRouteHandler returns the JSON 404 envelope for unknown paths.
func noRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		pkg.Error(c, domain.NewAppError(domain.CodeNotFound,
			fmt.Sprintf("route %s %s not found", c.Request.Method, c.Request.URL.Path), nil))
	}
}
