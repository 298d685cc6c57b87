// Package memory implements an in-memory line source for development and testing.
package memory

import (
	"context"
	"io"
	"sync"

	"bmi/internal/domain"
)

// Lines replays a fixed list of answers, one per ReadLine call.
type Lines struct {
	mu    sync.Mutex
	lines []string
	next  int
}

// New creates a Lines reader over the given answers.
func New(lines ...string) *Lines {
	return &Lines{lines: append([]string(nil), lines...)}
}

// Ensure interfaces are met.
var _ domain.LineReader = (*Lines)(nil)

// ReadLine returns the next answer, or io.EOF once all have been consumed.
func (l *Lines) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.next >= len(l.lines) {
		return "", io.EOF
	}
	line := l.lines[l.next]
	l.next++
	return line, nil
}
