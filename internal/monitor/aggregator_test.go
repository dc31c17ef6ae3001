package monitor

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeChecker answers from a table keyed by endpoint
type fakeChecker struct {
	mu       sync.Mutex
	outcomes map[string]Outcome
	delays   map[string]time.Duration
	calls    map[string]int
	inFlight atomic.Int32
	peak     atomic.Int32
}

func newFakeChecker() *fakeChecker {
	return &fakeChecker{
		outcomes: make(map[string]Outcome),
		delays:   make(map[string]time.Duration),
		calls:    make(map[string]int),
	}
}

func (f *fakeChecker) CheckHealth(ctx context.Context, endpoint string) Outcome {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		peak := f.peak.Load()
		if n <= peak || f.peak.CompareAndSwap(peak, n) {
			break
		}
	}

	f.mu.Lock()
	f.calls[endpoint]++
	outcome, ok := f.outcomes[endpoint]
	delay := f.delays[endpoint]
	f.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if !ok {
		return TransportFailure(errors.New("dial tcp: connection refused"))
	}
	return outcome
}

func (f *fakeChecker) callsFor(endpoint string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[endpoint]
}

func newTestAggregator(t *testing.T, checker HealthChecker, cfg AggregatorConfig) *Aggregator {
	t.Helper()
	if cfg.Timeout == 0 {
		cfg.Timeout = time.Second
	}
	agg, err := NewAggregator(DefaultRegistry(), checker, cfg)
	require.NoError(t, err)
	return agg
}

func names(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Service.Name
	}
	return out
}

func TestNewAggregator_RejectsNonPositiveTimeout(t *testing.T) {
	_, err := NewAggregator(DefaultRegistry(), newFakeChecker(), AggregatorConfig{})
	assert.ErrorIs(t, err, ErrInvalidTimeout)

	_, err = NewAggregator(DefaultRegistry(), newFakeChecker(), AggregatorConfig{Timeout: -time.Second})
	assert.ErrorIs(t, err, ErrInvalidTimeout)
}

func TestCheckAll_AllOnline(t *testing.T) {
	checker := newFakeChecker()
	for _, svc := range DefaultRegistry() {
		checker.outcomes[svc.URL()] = Online("healthy")
	}

	results := newTestAggregator(t, checker, AggregatorConfig{}).CheckAll(context.Background(), "")

	require.Len(t, results, 5)
	for _, r := range results {
		assert.Equal(t, StatusOnline, r.Outcome.Status, r.Service.Name)
		assert.Equal(t, "healthy", r.Outcome.Detail)
		assert.Equal(t, 1, checker.callsFor(r.Service.URL()), "exactly one attempt per service")
	}
}

func TestCheckAll_AllRefused(t *testing.T) {
	results := newTestAggregator(t, newFakeChecker(), AggregatorConfig{}).CheckAll(context.Background(), "")

	require.Len(t, results, 5)
	for _, r := range results {
		assert.Equal(t, StatusOffline, r.Outcome.Status)
		assert.Equal(t, "connection refused", r.Outcome.Detail)
		assert.Equal(t, FailureTransport, r.Outcome.Failure)
	}
}

func TestCheckAll_HTTPFailureReason(t *testing.T) {
	checker := newFakeChecker()
	registry := DefaultRegistry()
	for _, svc := range registry {
		checker.outcomes[svc.URL()] = HTTPFailure(503)
	}

	results := newTestAggregator(t, checker, AggregatorConfig{}).CheckAll(context.Background(), "")
	for _, r := range results {
		assert.Equal(t, StatusOffline, r.Outcome.Status)
		assert.Contains(t, r.Outcome.Detail, "503")
		assert.Equal(t, FailureHTTP, r.Outcome.Failure)
	}
}

func TestCheckAll_PreservesRegistryOrder(t *testing.T) {
	checker := newFakeChecker()
	registry := DefaultRegistry()
	// Earlier entries finish last
	for i, svc := range registry {
		checker.outcomes[svc.URL()] = Online("healthy")
		checker.delays[svc.URL()] = time.Duration(len(registry)-i) * 10 * time.Millisecond
	}

	results := newTestAggregator(t, checker, AggregatorConfig{}).CheckAll(context.Background(), "")
	assert.Equal(t, []string{"CERBERUS", "KRONOS", "HERMES", "VORTEX", "OPTICUS"}, names(results))
}

func TestCheckAll_Filter(t *testing.T) {
	tests := []struct {
		filter string
		want   []string
	}{
		{"", []string{"CERBERUS", "KRONOS", "HERMES", "VORTEX", "OPTICUS"}},
		{"vor", []string{"VORTEX"}},
		{"VOR", []string{"VORTEX"}},
		{"er", []string{"CERBERUS", "HERMES"}},
		{"o", []string{"KRONOS", "VORTEX", "OPTICUS"}},
		{"nothing", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			checker := newFakeChecker()
			results := newTestAggregator(t, checker, AggregatorConfig{}).CheckAll(context.Background(), tt.filter)
			assert.Equal(t, tt.want, names(results))

			// Filtered-out services are never contacted
			for _, svc := range DefaultRegistry() {
				expected := 0
				for _, name := range tt.want {
					if name == svc.Name {
						expected = 1
					}
				}
				assert.Equal(t, expected, checker.callsFor(svc.URL()), svc.Name)
			}
		})
	}
}

func TestCheckAll_Idempotent(t *testing.T) {
	checker := newFakeChecker()
	registry := DefaultRegistry()
	checker.outcomes[registry[0].URL()] = Online("healthy")
	checker.outcomes[registry[2].URL()] = HTTPFailure(500)
	checker.outcomes[registry[4].URL()] = Online("healthy")

	agg := newTestAggregator(t, checker, AggregatorConfig{})
	first := agg.CheckAll(context.Background(), "")
	second := agg.CheckAll(context.Background(), "")

	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].Service.Name, second[i].Service.Name)
		assert.Equal(t, first[i].Outcome.Status, second[i].Outcome.Status)
		assert.Equal(t, first[i].Outcome.Detail, second[i].Outcome.Detail)
	}
}

func TestCheckAll_RespectsConcurrencyLimit(t *testing.T) {
	checker := newFakeChecker()
	for _, svc := range DefaultRegistry() {
		checker.outcomes[svc.URL()] = Online("healthy")
		checker.delays[svc.URL()] = 20 * time.Millisecond
	}

	results := newTestAggregator(t, checker, AggregatorConfig{Concurrency: 2}).CheckAll(context.Background(), "")

	assert.Len(t, results, 5)
	assert.LessOrEqual(t, checker.peak.Load(), int32(2))
}

func TestCheckAll_AppliesPerCheckTimeout(t *testing.T) {
	var sawDeadline atomic.Bool
	checker := checkerFunc(func(ctx context.Context, endpoint string) Outcome {
		if _, ok := ctx.Deadline(); ok {
			sawDeadline.Store(true)
		}
		<-ctx.Done()
		return TransportFailure(ctx.Err())
	})

	agg := newTestAggregator(t, checker, AggregatorConfig{Timeout: 20 * time.Millisecond})
	results := agg.CheckAll(context.Background(), "hermes")

	require.Len(t, results, 1)
	assert.True(t, sawDeadline.Load())
	assert.Equal(t, "connection refused", results[0].Outcome.Detail)
	assert.ErrorIs(t, results[0].Outcome.Err, context.DeadlineExceeded)
}

type checkerFunc func(ctx context.Context, endpoint string) Outcome

func (f checkerFunc) CheckHealth(ctx context.Context, endpoint string) Outcome {
	return f(ctx, endpoint)
}
