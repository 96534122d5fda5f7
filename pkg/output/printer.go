// Package output is the console sink for applications: styled status lines
// on stdout and structured diagnostics on stderr, both rendered with pterm.
package output

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/pterm/pterm"
)

// eraseLine clears the current line, moves up one line and clears it too.
const eraseLine = "\x1b[K\x1b[1A\x1b[K"

// Config configures a Printer.
type Config struct {
	// Out receives regular output. Defaults to os.Stdout.
	Out io.Writer
	// Err receives errors and diagnostics. Defaults to os.Stderr.
	Err io.Writer
	// NoColor disables all styling.
	NoColor bool
	// Debug enables debug level diagnostics.
	Debug bool
}

// Printer writes styled lines and diagnostics. Regular output can be
// captured instead of written, see StartCapture.
type Printer struct {
	out    *capture
	errOut io.Writer
	logger *pterm.Logger
}

// capture forwards writes to dst, or records them while active.
type capture struct {
	mu     sync.Mutex
	dst    io.Writer
	active bool
	chunks []string
}

func (c *capture) Write(b []byte) (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.active {
		c.chunks = append(c.chunks, string(b))
		return len(b), nil
	}
	return c.dst.Write(b)
}

// NewPrinter creates a Printer. A nil config writes to stdout and stderr.
// Styling is switched on or off process-wide according to cfg.NoColor.
func NewPrinter(cfg *Config) *Printer {
	if cfg == nil {
		cfg = &Config{}
	}

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}
	p := &Printer{
		out:    &capture{dst: out},
		errOut: cfg.Err,
	}
	if p.errOut == nil {
		p.errOut = os.Stderr
	}

	// Styling is pterm global state; the most recent printer decides it.
	if cfg.NoColor {
		pterm.DisableStyling()
	} else {
		pterm.EnableStyling()
	}

	p.logger = pterm.DefaultLogger.
		WithWriter(p.errOut).
		WithTime(false).
		WithLevel(pterm.LogLevelInfo)
	p.SetDebug(cfg.Debug)

	return p
}

// SetDebug switches debug diagnostics on or off.
func (p *Printer) SetDebug(on bool) {
	if on {
		p.logger = p.logger.WithLevel(pterm.LogLevelDebug)
	} else {
		p.logger = p.logger.WithLevel(pterm.LogLevelInfo)
	}
}

// Out returns the regular output writer. Writes to it are captured like
// every other regular output.
func (p *Printer) Out() io.Writer {
	return p.out
}

// Logger returns the diagnostics logger.
func (p *Printer) Logger() *pterm.Logger {
	return p.logger
}

// Println writes a plain line.
func (p *Printer) Println(a ...any) {
	_, _ = fmt.Fprintln(p.out, a...)
}

// Printf writes formatted plain text.
func (p *Printer) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(p.out, format, a...)
}

// Success writes a success line.
func (p *Printer) Success(a ...any) {
	pterm.Success.WithWriter(p.out).Println(a...)
}

// Info writes an informational line.
func (p *Printer) Info(a ...any) {
	pterm.Info.WithWriter(p.out).Println(a...)
}

// Warning writes a warning line.
func (p *Printer) Warning(a ...any) {
	pterm.Warning.WithWriter(p.out).Println(a...)
}

// Error writes an error line to the error writer.
func (p *Printer) Error(a ...any) {
	pterm.Error.WithWriter(p.errOut).Println(a...)
}

// StartCapture records regular output instead of writing it, until
// EndCapture. Diagnostics are never captured.
func (p *Printer) StartCapture() {
	p.out.mu.Lock()
	defer p.out.mu.Unlock()
	p.out.active = true
}

// EndCapture stops capturing. Recorded output is kept until cleared.
func (p *Printer) EndCapture() {
	p.out.mu.Lock()
	defer p.out.mu.Unlock()
	p.out.active = false
}

// Capturing reports whether output is being captured.
func (p *Printer) Capturing() bool {
	p.out.mu.Lock()
	defer p.out.mu.Unlock()
	return p.out.active
}

// Captured returns the recorded writes in order.
func (p *Printer) Captured() []string {
	p.out.mu.Lock()
	defer p.out.mu.Unlock()
	return append([]string(nil), p.out.chunks...)
}

// CapturedLen returns the number of recorded writes.
func (p *Printer) CapturedLen() int {
	p.out.mu.Lock()
	defer p.out.mu.Unlock()
	return len(p.out.chunks)
}

// TakeCaptured returns the recorded writes and clears them.
func (p *Printer) TakeCaptured() []string {
	p.out.mu.Lock()
	defer p.out.mu.Unlock()
	chunks := p.out.chunks
	p.out.chunks = nil
	return chunks
}

// ClearCaptured drops the recorded writes.
func (p *Printer) ClearCaptured() {
	p.out.mu.Lock()
	defer p.out.mu.Unlock()
	p.out.chunks = nil
}

// EraseLine removes the previous terminal line.
func (p *Printer) EraseLine() {
	_, _ = io.WriteString(p.out, eraseLine)
}

// Highlight styles a term such as a command or flag name.
func Highlight(a ...any) string {
	return pterm.Green(a...)
}

// Name styles a declared name.
func Name(a ...any) string {
	return pterm.Cyan(a...)
}

// Kind styles a type annotation.
func Kind(a ...any) string {
	return pterm.Yellow(a...)
}
