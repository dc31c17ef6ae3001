package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/davibonetto/titan-cli/internal/monitor"
	"github.com/davibonetto/titan-cli/internal/report"
	"github.com/davibonetto/titan-cli/internal/ui"
)

var (
	colorAccent   = ui.ColorAccent
	colorOnline   = ui.ColorSuccess
	colorOffline  = ui.ColorError
	colorChecking = ui.ColorWarning
	colorMuted    = ui.ColorMuted
	colorSubtle   = ui.ColorSubtle
	colorText     = ui.ColorText

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	onlineStyle = lipgloss.NewStyle().
			Foreground(colorOnline).
			Bold(true)

	offlineStyle = lipgloss.NewStyle().
			Foreground(colorOffline).
			Bold(true)

	checkingStyle = lipgloss.NewStyle().
			Foreground(colorChecking).
			Bold(true)

	serviceNameStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText)

	selectedStyle = lipgloss.NewStyle().
			Background(colorSubtle)

	secondaryStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	detailStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)
)

// View renders the dashboard
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width := m.width
	if width < 40 {
		width = 80
	}

	if m.showDetail && len(m.services) > 0 {
		content := m.renderDetail(m.services[m.selectedIndex])
		if m.height > 0 {
			return lipgloss.Place(width, m.height, lipgloss.Center, lipgloss.Center, content)
		}
		return content
	}

	var b strings.Builder
	b.WriteString(m.renderHeader(width))
	b.WriteString("\n\n")

	for i, svc := range m.services {
		row := m.renderRow(svc, width)
		if i == m.selectedIndex {
			row = selectedStyle.Width(width).Render(row)
		}
		b.WriteString(row)
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter(width))
	b.WriteString("\n")

	return b.String()
}

// renderHeader renders the title with online/offline counts
func (m Model) renderHeader(width int) string {
	online, offline := 0, 0
	for _, svc := range m.services {
		if !svc.Checked {
			continue
		}
		if svc.Outcome.IsOnline() {
			online++
		} else {
			offline++
		}
	}

	title := titleStyle.Render("TITAN PROTOCOL STATUS")
	stats := fmt.Sprintf("%s  %s",
		onlineStyle.Render(fmt.Sprintf("● %d", online)),
		offlineStyle.Render(fmt.Sprintf("○ %d", offline)),
	)
	if m.checking {
		stats = m.spinner.View() + " " + checkingStyle.Render("checking") + "  " + stats
	}

	gap := width - lipgloss.Width(title) - lipgloss.Width(stats)
	if gap < 1 {
		gap = 1
	}

	return title + strings.Repeat(" ", gap) + stats + "\n" +
		lipgloss.NewStyle().Foreground(colorSubtle).Render(strings.Repeat("━", width))
}

// renderRow renders one service line
func (m Model) renderRow(svc ServiceState, width int) string {
	name := svc.Service.Name
	if svc.Service.Icon != "" {
		name = svc.Service.Icon + " " + name
	}

	var state string
	switch {
	case !svc.Checked:
		state = checkingStyle.Render("[PENDING] " + m.spinner.View())
	case svc.Outcome.IsOnline():
		state = onlineStyle.Render("[ONLINE]  ●")
	default:
		state = offlineStyle.Render("[OFFLINE] ○")
	}

	detail := svc.Service.Description
	if svc.Checked {
		detail += " - " + svc.Outcome.Detail
		if svc.Outcome.Latency > 0 {
			detail += " (" + formatDuration(svc.Outcome.Latency) + ")"
		}
	}

	row := " " + padRight(serviceNameStyle.Render(name), 18) + padRight(state, 14) + secondaryStyle.Render(detail)
	if lipgloss.Width(row) > width {
		row = lipgloss.NewStyle().MaxWidth(width).Render(row)
	}
	return row
}

// renderDetail renders the detail panel for one service
func (m Model) renderDetail(svc ServiceState) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(svc.Service.Name))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", secondaryStyle.Render("Endpoint:   "), svc.Service.URL())
	fmt.Fprintf(&b, "%s %s\n", secondaryStyle.Render("Description:"), svc.Service.Description)

	if !svc.Checked {
		fmt.Fprintf(&b, "%s %s\n", secondaryStyle.Render("Status:     "), checkingStyle.Render("pending"))
	} else {
		status := onlineStyle.Render(string(svc.Outcome.Status))
		if !svc.Outcome.IsOnline() {
			status = offlineStyle.Render(string(svc.Outcome.Status))
		}
		fmt.Fprintf(&b, "%s %s\n", secondaryStyle.Render("Status:     "), status)
		fmt.Fprintf(&b, "%s %s\n", secondaryStyle.Render("Detail:     "), svc.Outcome.Detail)
		if svc.Outcome.StatusCode > 0 {
			fmt.Fprintf(&b, "%s %d\n", secondaryStyle.Render("HTTP status:"), svc.Outcome.StatusCode)
		}
		if svc.Outcome.Err != nil {
			fmt.Fprintf(&b, "%s %v\n", secondaryStyle.Render("Error:      "), svc.Outcome.Err)
		}
		fmt.Fprintf(&b, "%s %s\n", secondaryStyle.Render("Latency:    "), formatDuration(svc.Outcome.Latency))
		fmt.Fprintf(&b, "%s %s\n", secondaryStyle.Render("Checked:    "), svc.CheckedAt.Format("15:04:05"))
	}

	b.WriteString("\n")
	b.WriteString(secondaryStyle.Render("esc/enter to close"))

	return detailStyle.Render(b.String())
}

// renderFooter renders the status bar
func (m Model) renderFooter(width int) string {
	left := fmt.Sprintf(" %s │ q quit • ↑/↓ select • enter details", m.lastUpdate.Format("15:04:05"))

	results := make([]monitor.Result, 0, len(m.services))
	for _, svc := range m.services {
		if svc.Checked {
			results = append(results, monitor.Result{Service: svc.Service, Outcome: svc.Outcome})
		}
	}
	right := "waiting for first check "
	if m.rounds > 0 {
		right = report.Summarize(results).String() + " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	return lipgloss.NewStyle().
		Foreground(colorMuted).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(colorSubtle).
		Width(width).
		Render(left + strings.Repeat(" ", gap) + right)
}

func padRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap < 1 {
		gap = 1
	}
	return s + strings.Repeat(" ", gap)
}

// formatDuration formats a duration for display
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
