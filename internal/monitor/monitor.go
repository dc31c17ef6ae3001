package monitor

import (
	"context"
	"time"
)

const DefaultWatchInterval = 10 * time.Second

// Event is published by the Watcher. A round start carries no results.
type Event struct {
	Checking  bool
	Results   []Result
	CheckedAt time.Time
}

// Watcher re-runs the aggregator on an interval
type Watcher struct {
	aggregator *Aggregator
	filter     string
	interval   time.Duration
	events     chan Event
	done       chan struct{}
}

// NewWatcher creates a watcher over an aggregator
func NewWatcher(agg *Aggregator, filter string, interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = DefaultWatchInterval
	}
	return &Watcher{
		aggregator: agg,
		filter:     filter,
		interval:   interval,
		events:     make(chan Event, 2),
		done:       make(chan struct{}),
	}
}

// Start checks immediately, then on every tick until ctx is cancelled
func (w *Watcher) Start(ctx context.Context) {
	defer func() {
		close(w.events)
		close(w.done)
	}()

	if !w.runRound(ctx) {
		return
	}

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !w.runRound(ctx) {
				return
			}
		}
	}
}

// runRound reports false once ctx is cancelled
func (w *Watcher) runRound(ctx context.Context) bool {
	if !w.publish(ctx, Event{Checking: true, CheckedAt: time.Now()}) {
		return false
	}

	results := w.aggregator.CheckAll(ctx, w.filter)
	return w.publish(ctx, Event{Results: results, CheckedAt: time.Now()})
}

func (w *Watcher) publish(ctx context.Context, ev Event) bool {
	select {
	case w.events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

// Events returns the channel for receiving watcher events
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Done returns a channel that's closed when watching stops
func (w *Watcher) Done() <-chan struct{} {
	return w.done
}

// Interval returns the delay between rounds
func (w *Watcher) Interval() time.Duration {
	return w.interval
}
