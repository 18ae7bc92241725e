package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
)

// ErrInputClosed is returned once the input stream ends or the user quits.
var ErrInputClosed = errors.New("input closed")

// Prompter asks a question and returns the trimmed answer.
type Prompter interface {
	Ask(ctx context.Context, prompt string) (string, error)
}

// LinePrompter reads answers one line at a time from a plain stream.
type LinePrompter struct {
	in  io.Reader
	out io.Writer

	start sync.Once
	lines chan string
	err   error
}

// NewLinePrompter creates a prompter over in and out.
func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{in: in, out: out, lines: make(chan string)}
}

// readLines feeds lines to Ask until the input ends. It runs once per
// prompter so a line typed ahead of a prompt is never lost.
func (p *LinePrompter) readLines() {
	scanner := bufio.NewScanner(p.in)
	for scanner.Scan() {
		p.lines <- scanner.Text()
	}
	p.err = scanner.Err()
	close(p.lines)
}

// Ask implements Prompter
func (p *LinePrompter) Ask(ctx context.Context, prompt string) (string, error) {
	p.start.Do(func() { go p.readLines() })

	if _, err := fmt.Fprint(p.out, PromptStyle.Render(prompt)); err != nil {
		return "", err
	}

	select {
	case line, ok := <-p.lines:
		if !ok {
			if p.err != nil {
				return "", fmt.Errorf("%w: %w", ErrInputClosed, p.err)
			}
			return "", ErrInputClosed
		}
		return strings.TrimSpace(line), nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
