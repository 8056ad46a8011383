package pg

import (
	"context"
	"log/slog"
	"time"
)

const healthPingTimeout = 2 * time.Second

// HealthChecker reports the pool healthy when a ping answers within healthPingTimeout.
type HealthChecker struct {
	pool *ConnectionPool
}

func NewHealthChecker(pool *ConnectionPool) *HealthChecker {
	return &HealthChecker{pool: pool}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.pool == nil {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, healthPingTimeout)
	defer cancel()

	start := time.Now()
	if err := hc.pool.Ping(ctx); err != nil {
		slog.Warn("Postgres health check failed", "error", err, "elapsed", time.Since(start))
		return false
	}
	return true
}
