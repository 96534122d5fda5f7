// Package progress renders a text spinner while a command waits on work.
package progress

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/briandowns/spinner"
)

// DefaultChars is the default animation loop.
const DefaultChars = `|/-\`

// DefaultInterval is the delay between animation frames.
const DefaultInterval = 100 * time.Millisecond

// Config configures a Spinner.
type Config struct {
	Writer   io.Writer
	Interval time.Duration
	// Chars is the animation loop, one frame per rune.
	Chars string
}

// DefaultConfig returns a spinner config writing to stdout.
func DefaultConfig() *Config {
	return &Config{
		Writer:   os.Stdout,
		Interval: DefaultInterval,
		Chars:    DefaultChars,
	}
}

// Spinner is a restartable progress indicator. Starting an active spinner
// replaces the running one.
type Spinner struct {
	config *Config
	s      *spinner.Spinner
	mu     sync.Mutex
}

// NewSpinner creates a Spinner. A nil config uses DefaultConfig.
func NewSpinner(config *Config) *Spinner {
	if config == nil {
		config = DefaultConfig()
	}
	if config.Writer == nil {
		config.Writer = os.Stdout
	}
	if config.Interval <= 0 {
		config.Interval = DefaultInterval
	}
	if config.Chars == "" {
		config.Chars = DefaultChars
	}
	return &Spinner{config: config}
}

// Start shows the spinner prefixed by text.
func (s *Spinner) Start(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopLocked()

	sp := spinner.New(Frames(s.config.Chars), s.config.Interval, spinner.WithWriter(s.config.Writer))
	if text != "" {
		sp.Prefix = text + " "
	}
	sp.Start()
	s.s = sp
}

// Stop hides the spinner. Stopping an inactive spinner does nothing.
func (s *Spinner) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
}

// Active reports whether the spinner was started and not yet stopped.
func (s *Spinner) Active() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.s != nil
}

func (s *Spinner) stopLocked() {
	if s.s == nil {
		return
	}
	s.s.Stop()
	s.s = nil
}

// Frames splits an animation loop into one frame per rune.
func Frames(chars string) []string {
	if chars == "" {
		chars = DefaultChars
	}
	return strings.Split(chars, "")
}
