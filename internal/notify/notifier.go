package notify

import (
	"fmt"
	"strings"

	"github.com/davibonetto/titan-cli/internal/monitor"
	"github.com/martinlindhe/notify"
)

const appName = "Titan"

// SendFunc delivers a desktop notification
type SendFunc func(appName, title, text, iconPath string)

// Notifier sends desktop notifications for health check events
type Notifier struct {
	enabled bool
	send    SendFunc
}

// NewNotifier creates a new notifier instance
func NewNotifier(enabled bool) *Notifier {
	return &Notifier{
		enabled: enabled,
		send:    notify.Notify,
	}
}

// WithSender replaces the delivery function
func (n *Notifier) WithSender(send SendFunc) *Notifier {
	n.send = send
	return n
}

// NotifyOffline sends one notification listing every offline service.
// It reports whether a notification was sent.
func (n *Notifier) NotifyOffline(results []monitor.Result) bool {
	if !n.enabled {
		return false
	}

	var offline []string
	for _, r := range results {
		if !r.Outcome.IsOnline() {
			offline = append(offline, fmt.Sprintf("%s: %s", r.Service.Name, r.Outcome.Detail))
		}
	}
	if len(offline) == 0 {
		return false
	}

	title := fmt.Sprintf("⚠️  %d/%d services offline", len(offline), len(results))
	n.send(appName, title, strings.Join(offline, "\n"), "")
	return true
}

// NotifyFailure sends a desktop notification when a service goes offline
func (n *Notifier) NotifyFailure(result monitor.Result) {
	if !n.enabled {
		return
	}

	title := fmt.Sprintf("⚠️  %s - Health Check Failed", result.Service.Name)
	n.send(appName, title, result.Outcome.Detail, "")
}

// NotifyRecovery sends a desktop notification when a service recovers
func (n *Notifier) NotifyRecovery(result monitor.Result) {
	if !n.enabled {
		return
	}

	title := fmt.Sprintf("✅ %s - Health Check Recovered", result.Service.Name)
	message := fmt.Sprintf("Response time: %s", result.Outcome.Latency.String())
	n.send(appName, title, message, "")
}

// NotifyStatusChange notifies on online/offline transitions.
// A service seen for the first time only notifies if it is offline.
func (n *Notifier) NotifyStatusChange(result monitor.Result, previous monitor.Status) {
	if !n.enabled || result.Outcome.Status == previous {
		return
	}

	switch {
	case result.Outcome.Status == monitor.StatusOnline && previous == monitor.StatusOffline:
		n.NotifyRecovery(result)
	case result.Outcome.Status == monitor.StatusOffline:
		n.NotifyFailure(result)
	}
}
