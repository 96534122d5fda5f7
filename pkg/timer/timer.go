// Package timer measures named spans of wall-clock time.
//
// Each call to Start returns its own Span handle, so concurrent or nested
// measurements never share state:
//
//	t := timer.New()
//	span := t.Start("command-run")
//	// ... work ...
//	fmt.Println("completed in", span.Stop())
package timer

import (
	"fmt"
	"strconv"
	"time"
)

// Clock returns the current time.
type Clock func() time.Time

// Timer creates spans from a clock.
type Timer struct {
	now Clock
}

// New creates a timer backed by time.Now.
func New() *Timer {
	return &Timer{now: time.Now}
}

// NewWithClock creates a timer backed by the given clock.
func NewWithClock(clock Clock) *Timer {
	if clock == nil {
		clock = time.Now
	}
	return &Timer{now: clock}
}

// Start begins a new named span.
func (t *Timer) Start(name string) *Span {
	return &Span{
		name:  name,
		now:   t.now,
		start: t.now(),
	}
}

// Span is a single running or stopped measurement.
type Span struct {
	name    string
	now     Clock
	start   time.Time
	end     time.Time
	stopped bool
}

// Name returns the span name.
func (s *Span) Name() string {
	return s.name
}

// Elapsed returns the time since the span started, or the final duration
// once the span is stopped.
func (s *Span) Elapsed() time.Duration {
	if s.stopped {
		return s.end.Sub(s.start)
	}
	return s.now().Sub(s.start)
}

// Stop ends the span and returns the formatted duration.
// Calling Stop again returns the same result.
func (s *Span) Stop() string {
	if !s.stopped {
		s.end = s.now()
		s.stopped = true
	}
	return Format(s.Elapsed())
}

// Format renders a duration as whole seconds plus fractional milliseconds,
// e.g. "2s 15.25ms" or "0.5ms".
func Format(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	secs := d / time.Second
	ms := strconv.FormatFloat(float64(d%time.Second)/float64(time.Millisecond), 'f', -1, 64) + "ms"
	if secs > 0 {
		return fmt.Sprintf("%ds %s", int64(secs), ms)
	}
	return ms
}
