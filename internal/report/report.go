// Package report renders health check results as a text table with a summary line.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/davibonetto/titan-cli/internal/monitor"
	"github.com/davibonetto/titan-cli/internal/ui"
)

const (
	tableWidth = 60
	nameWidth  = 18
	stateWidth = 12
)

var (
	headingStyle = ui.BoldAccent
	onlineStyle  = ui.SuccessStyle
	offlineStyle = ui.ErrorStyle
	mutedStyle   = ui.MutedStyle
	okStyle      = ui.SuccessStyle.Bold(true)
	warnStyle    = ui.WarningStyle.Bold(true)
)

// Summary counts online services against the total checked
type Summary struct {
	Online int
	Total  int
}

// AllOnline reports whether every checked service is online
func (s Summary) AllOnline() bool {
	return s.Total > 0 && s.Online == s.Total
}

// Offline returns the number of offline services
func (s Summary) Offline() int {
	return s.Total - s.Online
}

// String returns the plain summary message
func (s Summary) String() string {
	switch {
	case s.Total == 0:
		return "No services matched"
	case s.AllOnline():
		return fmt.Sprintf("All %d services operational", s.Total)
	default:
		return fmt.Sprintf("%d/%d services online", s.Online, s.Total)
	}
}

// Summarize counts the online results
func Summarize(results []monitor.Result) Summary {
	s := Summary{Total: len(results)}
	for _, r := range results {
		if r.Outcome.IsOnline() {
			s.Online++
		}
	}
	return s
}

// Render formats the results table followed by the summary line
func Render(results []monitor.Result, detailed bool) string {
	var b strings.Builder
	divider := "  " + strings.Repeat("─", tableWidth) + "\n"

	header := "  " + padRight(headingStyle.Render("SERVICE"), nameWidth) + padRight(headingStyle.Render("STATUS"), stateWidth)
	if detailed {
		header += "  " + headingStyle.Render("DETAILS")
	}
	b.WriteString(strings.TrimRight(header, " ") + "\n")
	b.WriteString(divider)

	for _, r := range results {
		b.WriteString(renderRow(r, detailed))
		b.WriteString("\n")
	}

	b.WriteString(divider)
	b.WriteString("\n")
	b.WriteString(renderSummary(Summarize(results)))
	b.WriteString("\n")

	return b.String()
}

func renderRow(r monitor.Result, detailed bool) string {
	name := r.Service.Name
	if r.Service.Icon != "" {
		name = r.Service.Icon + " " + name
	}

	var state string
	if r.Outcome.IsOnline() {
		state = onlineStyle.Render("[ONLINE]  ●")
	} else {
		state = offlineStyle.Render("[OFFLINE] ○")
	}

	line := "  " + padRight(name, nameWidth) + padRight(state, stateWidth)
	if detailed {
		line += "  " + mutedStyle.Render(r.Service.Description)
		if !r.Outcome.IsOnline() {
			line += offlineStyle.Render(" - " + r.Outcome.Detail)
		}
	}

	return strings.TrimRight(line, " ")
}

func renderSummary(s Summary) string {
	switch {
	case s.Total == 0:
		return "  " + warnStyle.Render("⚠") + " " + s.String()
	case s.AllOnline():
		return "  " + okStyle.Render("✓") + " " + s.String()
	default:
		return "  " + warnStyle.Render("⚠") + " " + s.String()
	}
}

// padRight pads by display width so emoji icons and ANSI styling line up
func padRight(s string, width int) string {
	gap := width - lipgloss.Width(s)
	if gap < 1 {
		gap = 1
	}
	return s + strings.Repeat(" ", gap)
}
