// Package terminal is the driving adapter for the interactive prompt: it
// reads answers from a line source and writes prompts and results.
package terminal

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"

	"bmi/internal/domain"
)

// StreamReader reads newline-terminated answers from an io.Reader.
type StreamReader struct {
	r *bufio.Reader
}

// NewStreamReader wraps r, typically os.Stdin.
func NewStreamReader(r io.Reader) *StreamReader {
	return &StreamReader{r: bufio.NewReader(r)}
}

var _ domain.LineReader = (*StreamReader)(nil)

// ReadLine returns the next line without its line ending. A final line with
// no trailing newline is returned before io.EOF.
func (s *StreamReader) ReadLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := s.r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}
