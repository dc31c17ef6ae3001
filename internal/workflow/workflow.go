// Package workflow implements the scripted ask, deploy and vision sessions.
// They print canned output with fixed delays; none of them contact a backend.
package workflow

import (
	"context"
	"strings"
	"time"

	"github.com/davibonetto/titan-cli/internal/ui"
)

// Sleeper pauses between scripted steps
type Sleeper func(ctx context.Context, d time.Duration) error

// RealSleep waits for d or until ctx is done
func RealSleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// NoSleep returns immediately
func NoSleep(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// Env carries the shared dependencies of every workflow
type Env struct {
	Console *ui.Console
	Sleep   Sleeper
	Verbose bool
}

func (e Env) sleep(ctx context.Context, d time.Duration) error {
	if e.Sleep == nil {
		return RealSleep(ctx, d)
	}
	return e.Sleep(ctx, d)
}

// ServiceIcon returns the icon for a deployable service name
func ServiceIcon(service string) string {
	switch strings.ToLower(service) {
	case "cerberus":
		return "🛡️"
	case "kronos":
		return "⏰"
	case "hermes":
		return "📨"
	case "vortex":
		return "🧠"
	case "opticus":
		return "👁️"
	case "all":
		return "🌐"
	default:
		return "📦"
	}
}
