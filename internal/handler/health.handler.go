package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rajat8876/VendorIQ2/pkg/cache"
	"github.com/rajat8876/VendorIQ2/pkg/response"
)

type HealthHandler struct {
	db    *pgxpool.Pool
	cache *cache.Cache
}

func NewHealthHandler(db *pgxpool.Pool, c *cache.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: c}
}

// Check reports overall liveness plus per-dependency state. A cache
// outage is degraded, not down: the passcode store falls back to
// process memory.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "up"
	status := http.StatusOK
	if err := h.db.Ping(ctx); err != nil {
		dbStatus = "down"
		status = http.StatusServiceUnavailable
	}

	cacheStatus := "up"
	if !h.cache.Reachable() {
		cacheStatus = "down"
	}

	response.JSON(w, status, map[string]string{
		"database": dbStatus,
		"cache":    cacheStatus,
	})
}
