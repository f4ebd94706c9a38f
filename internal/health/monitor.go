// Package health tracks backend reachability and publishes it through the gRPC
// health service.
package health

import (
	"context"
	"sync"
	"time"

	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/dtroode/medsetu-storefront/internal/backend"
	"github.com/dtroode/medsetu-storefront/internal/logger"
)

// ServiceName is the health service name reported for the storefront gateway.
const ServiceName = "medsetu.storefront"

// Checker polls the backend.
type Checker interface {
	Health(ctx context.Context) (backend.Health, error)
}

// Monitor polls the backend and flips the serving status.
type Monitor struct {
	checker  Checker
	server   *health.Server
	interval time.Duration
	timeout  time.Duration
	logger   *logger.Logger

	mu      sync.RWMutex
	healthy bool
	checked time.Time
}

func NewMonitor(checker Checker, server *health.Server, interval time.Duration, logger *logger.Logger) *Monitor {
	m := &Monitor{
		checker:  checker,
		server:   server,
		interval: interval,
		timeout:  interval / 2,
		logger:   logger,
	}
	m.publish(false)
	return m
}

// Run checks immediately and then every interval until ctx is done.
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			m.server.Shutdown()
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

// Check polls the backend once and returns the resulting status.
func (m *Monitor) Check(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	_, err := m.checker.Health(ctx)
	healthy := err == nil

	m.mu.Lock()
	changed := healthy != m.healthy || m.checked.IsZero()
	m.healthy = healthy
	m.checked = time.Now()
	m.mu.Unlock()

	if changed {
		if healthy {
			m.logger.Info("Health monitor: backend reachable")
		} else {
			m.logger.Warn("Health monitor: backend unreachable",
				"error", err.Error())
		}
	}

	m.publish(healthy)
	return healthy
}

// Healthy reports the last observed backend status.
func (m *Monitor) Healthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.healthy
}

func (m *Monitor) publish(healthy bool) {
	status := healthpb.HealthCheckResponse_NOT_SERVING
	if healthy {
		status = healthpb.HealthCheckResponse_SERVING
	}
	m.server.SetServingStatus("", status)
	m.server.SetServingStatus(ServiceName, status)
}
