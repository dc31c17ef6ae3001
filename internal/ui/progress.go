package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
)

// ProgressBar draws a single-line bar that is redrawn in place
type ProgressBar struct {
	console *Console
	bar     progress.Model
	total   int
	pos     int
	message string
}

// NewProgressBar creates a bar counting up to total
func NewProgressBar(c *Console, total int) *ProgressBar {
	return &ProgressBar{
		console: c,
		bar: progress.New(
			progress.WithGradient(string(ColorAccent), string(ColorSuccess)),
			progress.WithWidth(40),
			progress.WithoutPercentage(),
		),
		total: total,
	}
}

// SetMessage redraws the bar with a new stage label
func (p *ProgressBar) SetMessage(msg string) {
	p.message = msg
	p.draw()
}

// Inc advances the bar by one step
func (p *ProgressBar) Inc() {
	if p.pos < p.total {
		p.pos++
	}
	p.draw()
}

// Percent returns the completed fraction
func (p *ProgressBar) Percent() float64 {
	if p.total == 0 {
		return 1
	}
	return float64(p.pos) / float64(p.total)
}

// Finish clears the bar line
func (p *ProgressBar) Finish() {
	if p.console.Animated() {
		fmt.Fprint(p.console, "\r\033[K")
	}
}

func (p *ProgressBar) draw() {
	if !p.console.Animated() {
		return
	}
	fmt.Fprintf(p.console, "\r  %s %d/%d %s\033[K", p.bar.ViewAs(p.Percent()), p.pos, p.total, p.message)
}
