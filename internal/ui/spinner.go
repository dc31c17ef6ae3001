package ui

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// Spinner displays an animated spinner during long operations
type Spinner struct {
	console  *Console
	frames   []string
	interval time.Duration
	prefix   string

	mu       sync.Mutex
	message  string
	running  bool
	stopChan chan struct{}
	wg       sync.WaitGroup
}

// NewSpinner creates a spinner using the given bubbles frames.
// Prefix is written before each frame, typically indentation.
func NewSpinner(c *Console, style spinner.Spinner, prefix string) *Spinner {
	return &Spinner{
		console:  c,
		frames:   style.Frames,
		interval: style.FPS,
		prefix:   prefix,
	}
}

// SetMessage changes the text shown next to the spinner
func (s *Spinner) SetMessage(msg string) {
	s.mu.Lock()
	s.message = msg
	s.mu.Unlock()
}

// Start begins the spinner animation. It is a no-op on non-terminal output.
func (s *Spinner) Start(msg string) {
	s.SetMessage(msg)

	s.mu.Lock()
	if s.running || !s.console.Animated() {
		s.mu.Unlock()
		return
	}
	s.running = true
	s.stopChan = make(chan struct{})
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()

		idx := 0
		for {
			s.mu.Lock()
			msg := s.message
			s.mu.Unlock()

			frame := AccentStyle.Render(s.frames[idx%len(s.frames)])
			fmt.Fprintf(s.console, "\r%s%s %s\033[K", s.prefix, frame, msg)
			idx++

			select {
			case <-s.stopChan:
				// Clear the spinner line
				fmt.Fprint(s.console, "\r\033[K")
				return
			case <-ticker.C:
			}
		}
	}()
}

// Stop stops the spinner animation and clears its line
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	s.mu.Unlock()

	close(s.stopChan)
	s.wg.Wait()
}
