package interactive

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// LineReader performs one-shot reads of a single line of input. A single
// background goroutine owns the underlying reader, so a read abandoned by a
// cancelled context hands its line to the next ReadLine instead of losing it.
type LineReader struct {
	input  *bufio.Reader
	output io.Writer

	once  sync.Once
	lines chan lineResult
}

// NewLineReader creates a LineReader. Nil arguments fall back to stdin and
// stdout.
func NewLineReader(input io.Reader, output io.Writer) *LineReader {
	if input == nil {
		input = os.Stdin
	}
	if output == nil {
		output = os.Stdout
	}
	return &LineReader{
		input:  bufio.NewReader(input),
		output: output,
		lines:  make(chan lineResult),
	}
}

type lineResult struct {
	line string
	err  error
}

// pump reads lines until the input fails, then closes the channel. Each send
// blocks until a ReadLine takes the line.
func (r *LineReader) pump() {
	defer close(r.lines)
	for {
		line, err := r.input.ReadString('\n')
		r.lines <- lineResult{line: line, err: err}
		if err != nil {
			return
		}
	}
}

// ReadLine prints message, when non-empty, and waits for one line of input.
// The trailing newline is removed. Reaching EOF after some input returns that
// input without an error.
func (r *LineReader) ReadLine(ctx context.Context, message string) (string, error) {
	if message != "" {
		if _, err := fmt.Fprint(r.output, message); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}
	}

	r.once.Do(func() { go r.pump() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-r.lines:
		if !ok {
			return "", fmt.Errorf("failed to read input: %w", io.EOF)
		}
		line := strings.TrimRight(res.line, "\r\n")
		if res.err != nil {
			if res.err == io.EOF && line != "" {
				return line, nil
			}
			return "", fmt.Errorf("failed to read input: %w", res.err)
		}
		return line, nil
	}
}
