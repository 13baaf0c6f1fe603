// Package health exposes a liveness/readiness probe covering the MySQL and
// Redis backends. Unauthenticated callers get the overall status only;
// per-backend detail is reserved for admins.
package health

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/smaranika/core/internal/middleware"
	"github.com/smaranika/core/internal/pkg/redis"
	"gorm.io/gorm"
)

const probeTimeout = 2 * time.Second

type Handler struct {
	db  *gorm.DB
	rdb *redis.Client
}

func Register(rg *gin.RouterGroup, db *gorm.DB, rdb *redis.Client) {
	h := &Handler{db: db, rdb: rdb}
	rg.GET("/health", h.check)
}

// check GET /health — 200 when every backend answers, 503 otherwise.
func (h *Handler) check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), probeTimeout)
	defer cancel()

	healthy := true
	checks := gin.H{}

	checks["database"] = "ok"
	if sqlDB, err := h.db.DB(); err != nil {
		checks["database"] = err.Error()
		healthy = false
	} else if err := sqlDB.PingContext(ctx); err != nil {
		checks["database"] = err.Error()
		healthy = false
	}

	checks["redis"] = "ok"
	if err := h.rdb.Ping(ctx); err != nil {
		checks["redis"] = err.Error()
		healthy = false
	}

	status, body := report(healthy, middleware.IsAuthenticated(c), checks)
	c.JSON(status, body)
}

// report builds the response, withholding backend error detail from
// unauthenticated callers.
func report(healthy, authed bool, checks gin.H) (int, gin.H) {
	status := http.StatusOK
	overall := "ok"
	if !healthy {
		status = http.StatusServiceUnavailable
		overall = "degraded"
	}

	body := gin.H{
		"status": overall,
		"time":   time.Now().UTC(),
	}
	if authed {
		body["checks"] = checks
	}
	return status, body
}
