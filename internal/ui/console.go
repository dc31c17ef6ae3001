package ui

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
)

const dividerWidth = 60

// Console writes styled lines. Writes are serialized so a running spinner
// can share the writer.
type Console struct {
	mu       sync.Mutex
	out      io.Writer
	animated bool
}

// NewConsole wraps w. Animations are enabled only when w is a terminal.
func NewConsole(w io.Writer) *Console {
	animated := false
	if f, ok := w.(*os.File); ok {
		animated = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &Console{out: w, animated: animated}
}

// Animated reports whether spinners and progress bars are drawn
func (c *Console) Animated() bool {
	return c.animated
}

// Write implements io.Writer
func (c *Console) Write(p []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.out.Write(p)
}

// Printf writes formatted text without a trailing newline
func (c *Console) Printf(format string, args ...interface{}) {
	fmt.Fprintf(c, format, args...)
}

// Line writes an indented line
func (c *Console) Line(format string, args ...interface{}) {
	fmt.Fprintf(c, "  "+format+"\n", args...)
}

// Blank writes an empty line
func (c *Console) Blank() {
	fmt.Fprintln(c)
}

// Header prints a boxed title
func (c *Console) Header(title string) {
	inner := dividerWidth - 2
	left := (inner - len([]rune(title))) / 2
	if left < 1 {
		left = 1
	}
	right := inner - left - len([]rune(title))
	if right < 1 {
		right = 1
	}

	c.Line("%s", AccentStyle.Render("╔"+strings.Repeat("═", inner)+"╗"))
	c.Line("%s%s%s%s%s",
		AccentStyle.Render("║"),
		strings.Repeat(" ", left),
		TitleStyle.Render(title),
		strings.Repeat(" ", right),
		AccentStyle.Render("║"),
	)
	c.Line("%s", AccentStyle.Render("╚"+strings.Repeat("═", inner)+"╝"))
}

// Success prints a success message
func (c *Console) Success(message string) {
	c.Line("%s %s", SuccessStyle.Bold(true).Render("✓"), SuccessStyle.Render(message))
}

// Error prints an error message
func (c *Console) Error(message string) {
	c.Line("%s %s", ErrorStyle.Bold(true).Render("✖"), ErrorStyle.Render(message))
}

// Warning prints a warning message
func (c *Console) Warning(message string) {
	c.Line("%s %s", WarningStyle.Bold(true).Render("⚠"), WarningStyle.Render(message))
}

// Info prints an info message
func (c *Console) Info(message string) {
	c.Line("%s %s", BoldAccent.Render("ℹ"), message)
}

// KV prints an indented key/value pair
func (c *Console) KV(key, value string) {
	c.Line("  %s %s", MutedStyle.Render(key+":"), value)
}

// Divider prints a horizontal rule
func (c *Console) Divider() {
	c.Line("%s", MutedStyle.Render(strings.Repeat("─", dividerWidth)))
}

// ShortDivider prints the rule used under section titles
func (c *Console) ShortDivider() {
	c.Line("%s", strings.Repeat("─", 37))
}
