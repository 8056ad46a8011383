package es

import (
	"context"
	"log/slog"
)

type HealthChecker struct {
	backend *Backend
}

func NewHealthChecker(backend *Backend) *HealthChecker {
	return &HealthChecker{backend: backend}
}

func (hc *HealthChecker) Healthy(ctx context.Context) bool {
	if hc.backend == nil {
		return false
	}

	ok, err := hc.backend.Ping(ctx)
	if err != nil {
		slog.Warn("Elasticsearch ping failed", "error", err)
		return false
	}
	return ok
}
