package callsession

import (
	"call-relay/internal/observability"
	"context"
	"fmt"
	"sync"
	"time"
)

// DefaultCleanupInterval is how often the janitor sweeps when no interval is given.
const DefaultCleanupInterval = time.Minute

// Janitor periodically evicts idle sessions from a Registry.
type Janitor struct {
	registry *Registry
	logger   *observability.Logger
	interval time.Duration
	stopChan chan struct{}
	stopOnce sync.Once
	done     chan struct{}
}

// NewJanitor creates a Janitor sweeping every interval.
func NewJanitor(registry *Registry, logger *observability.Logger, interval time.Duration) *Janitor {
	if interval <= 0 {
		interval = DefaultCleanupInterval
	}
	return &Janitor{
		registry: registry,
		logger:   logger,
		interval: interval,
		stopChan: make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start runs the sweep loop until Stop is called or ctx is cancelled.
func (j *Janitor) Start(ctx context.Context) {
	defer close(j.done)
	j.logger.Info(ctx, "Starting call session janitor")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.sweep(ctx)

	for {
		select {
		case <-ticker.C:
			j.sweep(ctx)
		case <-j.stopChan:
			j.logger.Info(ctx, "Stopping call session janitor")
			return
		case <-ctx.Done():
			j.logger.Info(ctx, "Context cancelled, stopping call session janitor")
			return
		}
	}
}

// Stop signals the loop to exit and waits for it. Only valid after Start;
// repeated calls are fine.
func (j *Janitor) Stop() {
	j.stopOnce.Do(func() {
		close(j.stopChan)
	})
	<-j.done
}

func (j *Janitor) sweep(ctx context.Context) {
	removed := j.registry.CleanupIdle(ctx)
	if removed == 0 {
		return
	}
	stats := j.registry.Stats()
	ctx = observability.WithFields(ctx,
		observability.Field{Key: "removed", Value: removed},
		observability.Field{Key: "total", Value: stats.Total},
		observability.Field{Key: "active", Value: stats.Active},
	)
	j.logger.Info(ctx, fmt.Sprintf("evicted %d idle call sessions", removed))
}
