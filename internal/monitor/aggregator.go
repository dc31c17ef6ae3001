package monitor

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sync/errgroup"
)

// AggregatorConfig configures the health aggregator.
type AggregatorConfig struct {
	// Timeout bounds each individual check. Must be positive.
	Timeout time.Duration

	// Concurrency caps the number of checks in flight.
	// Default: one per service
	Concurrency int

	// Logger receives a debug line per check. Defaults to a discarding logger.
	Logger *log.Logger
}

// Aggregator checks every registry entry and collects the results in registry order
type Aggregator struct {
	services []Service
	checker  HealthChecker
	config   AggregatorConfig
	logger   *log.Logger
}

// NewAggregator creates an aggregator over an already validated registry
func NewAggregator(services []Service, checker HealthChecker, cfg AggregatorConfig) (*Aggregator, error) {
	if cfg.Timeout <= 0 {
		return nil, ErrInvalidTimeout
	}

	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	registry := make([]Service, len(services))
	copy(registry, services)

	return &Aggregator{
		services: registry,
		checker:  checker,
		config:   cfg,
		logger:   logger,
	}, nil
}

// Services returns a copy of the registry
func (a *Aggregator) Services() []Service {
	out := make([]Service, len(a.services))
	copy(out, a.services)
	return out
}

// CheckAll runs one check per service matching filter and waits for all of them.
// Failures are captured per service; the returned slice always has one result
// per matching service, in registry order.
func (a *Aggregator) CheckAll(ctx context.Context, filter string) []Result {
	targets := Filter(a.services, filter)
	results := make([]Result, len(targets))
	if len(targets) == 0 {
		return results
	}

	limit := a.config.Concurrency
	if limit <= 0 || limit > len(targets) {
		limit = len(targets)
	}

	var g errgroup.Group
	g.SetLimit(limit)

	for i, svc := range targets {
		g.Go(func() error {
			results[i] = a.checkService(ctx, svc)
			return nil
		})
	}

	_ = g.Wait()
	return results
}

// checkService performs a health check on a single service
func (a *Aggregator) checkService(ctx context.Context, svc Service) Result {
	checkCtx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	checkedAt := time.Now()
	outcome := a.checker.CheckHealth(checkCtx, svc.URL())

	fields := []interface{}{
		"service", svc.Name,
		"endpoint", svc.URL(),
		"status", outcome.Status,
		"detail", outcome.Detail,
		"latency", outcome.Latency,
	}
	if outcome.Err != nil {
		fields = append(fields, "err", outcome.Err)
	}
	a.logger.Debug("health check", fields...)

	return Result{
		Service:   svc,
		Outcome:   outcome,
		CheckedAt: checkedAt,
	}
}
