package server

import (
	"context"
	"log/slog"
)

type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

type OkHealthChecker struct {
}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}

// CompositeHealthChecker is healthy when every named checker is.
type CompositeHealthChecker struct {
	checkers map[string]HealthChecker
	order    []string
}

func NewCompositeHealthChecker() *CompositeHealthChecker {
	return &CompositeHealthChecker{checkers: map[string]HealthChecker{}}
}

func (hc *CompositeHealthChecker) Add(name string, checker HealthChecker) *CompositeHealthChecker {
	if _, ok := hc.checkers[name]; !ok {
		hc.order = append(hc.order, name)
	}
	hc.checkers[name] = checker
	return hc
}

func (hc *CompositeHealthChecker) Healthy(ctx context.Context) bool {
	healthy := true
	for _, name := range hc.order {
		if !hc.checkers[name].Healthy(ctx) {
			slog.Warn("Health check failed", "component", name)
			healthy = false
		}
	}
	return healthy
}
