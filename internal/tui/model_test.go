package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/davibonetto/titan-cli/internal/monitor"
	"github.com/davibonetto/titan-cli/internal/notify"
	"github.com/davibonetto/titan-cli/internal/ui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func roundResults(outcomes ...monitor.Outcome) []monitor.Result {
	registry := monitor.DefaultRegistry()
	out := make([]monitor.Result, len(outcomes))
	for i, o := range outcomes {
		out[i] = monitor.Result{Service: registry[i], Outcome: o, CheckedAt: time.Now()}
	}
	return out
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestModel_RendersPendingThenResults(t *testing.T) {
	m := NewModel(monitor.DefaultRegistry(), nil, nil, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	view := m.View()
	assert.Contains(t, view, "TITAN PROTOCOL STATUS")
	assert.Contains(t, view, "[PENDING]")
	assert.Contains(t, view, "waiting for first check")

	m = update(t, m, eventMsg(monitor.Event{Checking: true}))
	assert.Contains(t, m.View(), "checking")

	healthy := monitor.Online("healthy")
	m = update(t, m, eventMsg(monitor.Event{
		Results:   roundResults(healthy, monitor.TransportFailure(nil), healthy, monitor.HTTPFailure(500), healthy),
		CheckedAt: time.Now(),
	}))

	view = m.View()
	assert.NotContains(t, view, "[PENDING]")
	assert.Contains(t, view, "3/5 services online")
	assert.Contains(t, view, "connection refused")
	assert.Contains(t, view, "unhealthy: 500")
}

func TestModel_NotifiesOnTransitions(t *testing.T) {
	var titles []string
	n := notify.NewNotifier(true).WithSender(func(appName, title, text, iconPath string) {
		titles = append(titles, title)
	})

	m := NewModel(monitor.DefaultRegistry()[:1], nil, nil, n)
	m = update(t, m, eventMsg(monitor.Event{Results: roundResults(monitor.Online("healthy"))}))
	assert.Empty(t, titles)

	m = update(t, m, eventMsg(monitor.Event{Results: roundResults(monitor.TransportFailure(nil))}))
	require.Len(t, titles, 1)
	assert.Contains(t, titles[0], "Failed")

	update(t, m, eventMsg(monitor.Event{Results: roundResults(monitor.Online("healthy"))}))
	require.Len(t, titles, 2)
	assert.Contains(t, titles[1], "Recovered")
}

func TestModel_SelectionAndDetail(t *testing.T) {
	m := NewModel(monitor.DefaultRegistry(), nil, nil, nil)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 4, m.selectedIndex, "selection wraps")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, m.showDetail)
	assert.Contains(t, m.View(), "http://localhost:8100/health")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showDetail)
}

func TestModel_QuitCancelsWatcher(t *testing.T) {
	cancelled := false
	m := NewModel(monitor.DefaultRegistry(), nil, func() { cancelled = true }, nil)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})

	assert.True(t, cancelled)
	assert.NotNil(t, cmd)
	assert.Empty(t, next.View())
}

func TestStylesUseSharedPalette(t *testing.T) {
	assert.Equal(t, ui.ColorAccent, titleStyle.GetForeground())
	assert.Equal(t, ui.ColorSuccess, onlineStyle.GetForeground())
	assert.Equal(t, ui.ColorError, offlineStyle.GetForeground())
	assert.Equal(t, ui.ColorSubtle, selectedStyle.GetBackground())
}
