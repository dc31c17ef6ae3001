package workflow

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/davibonetto/titan-cli/internal/ui"
)

const DefaultModel = "vortex-v3"

var thinkingPhases = []string{
	"Initializing neural pathways...",
	"Analyzing query semantics...",
	"Searching knowledge base...",
	"Synthesizing response...",
}

// AskOptions configures an ask session
type AskOptions struct {
	Query  string
	Model  string
	Stream bool
}

// Ask plays the thinking phases and prints a canned response for the query
func Ask(ctx context.Context, env Env, opts AskOptions) error {
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	c := env.Console

	c.Blank()
	c.Header("VORTEX AI ENGINE")
	c.Blank()
	c.Line("%s %s", ui.BoldAccent.Render("Query:"), opts.Query)
	c.Line("%s %s", ui.MutedStyle.Render("Model:"), opts.Model)
	if opts.Stream {
		c.Line("%s %s", ui.MutedStyle.Render("Mode:"), ui.WarningStyle.Render("Streaming"))
	}
	c.Blank()

	spin := ui.NewSpinner(c, spinner.Dot, "")
	spin.Start(thinkingPhases[0])
	for _, phase := range thinkingPhases {
		spin.SetMessage(phase)
		if err := env.sleep(ctx, 300*time.Millisecond); err != nil {
			spin.Stop()
			return err
		}
	}
	spin.Stop()

	response := MockResponse(opts.Query, opts.Model)

	c.Divider()
	c.Blank()
	if opts.Stream {
		c.Printf("  🧠 ")
		if err := typewriter(ctx, env, response); err != nil {
			return err
		}
	} else {
		c.Line("🧠 %s", response)
	}
	c.Blank()
	c.Divider()

	if env.Verbose {
		c.Blank()
		c.Line("%s", ui.MutedStyle.Render("Response Metadata:"))
		c.KV("Tokens", "142")
		c.KV("Latency", "1.2s")
		c.KV("Model", opts.Model)
	}
	c.Blank()

	return nil
}

// MockResponse selects the canned answer by keyword
func MockResponse(query, model string) string {
	q := strings.ToLower(query)
	bullet := ui.AccentStyle.Render("•")

	switch {
	case strings.Contains(q, "analyze") || strings.Contains(q, "sector"):
		return fmt.Sprintf(`%s

Based on my analysis using %s, I've identified the following patterns:

  %s Temporal variance detected in data streams
  %s 3 anomalous signal patterns require attention
  %s Recommended action: Deploy monitoring probes

This analysis draws from the combined knowledge of the Titan Protocol
ecosystem. Shall I elaborate on any specific finding?`,
			ui.SuccessStyle.Bold(true).Render("Analysis Complete."),
			ui.AccentStyle.Render(model), bullet, bullet, bullet)

	case strings.Contains(q, "status") || strings.Contains(q, "health"):
		return `All Titan Protocol subsystems are operating within normal parameters.
The CERBERUS gateway is processing requests efficiently, and HERMES
event throughput remains optimal.`

	case strings.Contains(q, "deploy"):
		return "To deploy services, use the `titan deploy <service>` command.\n" +
			"Ensure you have proper credentials configured in your environment.\n" +
			"Current deployment targets: staging, production, edge."

	default:
		prompt := ui.MutedStyle.Render("$")
		return fmt.Sprintf(`%s

I've processed your query through the %s neural architecture.
This feature is connected to VORTEX v3 - the Titan Protocol AI Engine.

For more specific assistance, try:
  %s titan ask "analyze sector 7"
  %s titan status --detailed
  %s titan vision --stream`,
			ui.SuccessStyle.Bold(true).Render("Query Received."),
			ui.AccentStyle.Render(model), prompt, prompt, prompt)
	}
}

// typewriter prints text one rune at a time with punctuation pauses
func typewriter(ctx context.Context, env Env, text string) error {
	for _, ch := range text {
		env.Console.Printf("%c", ch)
		if err := env.sleep(ctx, typewriterDelay(ch)); err != nil {
			return err
		}
	}
	env.Console.Blank()
	return nil
}

func typewriterDelay(ch rune) time.Duration {
	switch ch {
	case '.', '!', '?', '\n':
		return 50 * time.Millisecond
	case ',', ':', ';':
		return 30 * time.Millisecond
	case ' ':
		return 10 * time.Millisecond
	default:
		return 5 * time.Millisecond
	}
}
