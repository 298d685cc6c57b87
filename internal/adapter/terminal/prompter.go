package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"bmi/internal/domain"
)

// Question describes one numeric answer to collect.
type Question struct {
	Field  string
	Prompt string
}

// The questions asked, in order.
var (
	WeightQuestion = Question{Field: "weight", Prompt: "Please enter your weight in kilograms (kg):"}
	HeightQuestion = Question{Field: "height", Prompt: "Please enter your height in meters (m) (e.g., 1.75):"}
)

// leadingDecimal matches the longest plain decimal number at the start of an
// answer. Hex floats and digit separators are not part of it.
var leadingDecimal = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// Prompter collects validated answers, re-prompting until each one parses to
// a positive number.
type Prompter struct {
	in  domain.LineReader
	out io.Writer
	log *slog.Logger
}

// NewPrompter creates a Prompter reading from in and prompting on out. A nil
// logger discards diagnostics.
func NewPrompter(in domain.LineReader, out io.Writer, log *slog.Logger) *Prompter {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Prompter{in: in, out: out, log: log}
}

// Collect asks for weight and then height.
func (p *Prompter) Collect(ctx context.Context) (domain.Measurement, error) {
	w, err := p.Ask(ctx, WeightQuestion)
	if err != nil {
		return domain.Measurement{}, err
	}
	h, err := p.Ask(ctx, HeightQuestion)
	if err != nil {
		return domain.Measurement{}, err
	}
	return domain.Measurement{WeightKg: w, HeightM: h}, nil
}

// Ask prompts for q until a valid answer arrives. It fails with
// domain.ErrInputAborted when the input ends or ctx is done first.
func (p *Prompter) Ask(ctx context.Context, q Question) (float64, error) {
	for {
		if _, err := fmt.Fprintf(p.out, "%s ", q.Prompt); err != nil {
			return 0, err
		}
		line, err := p.in.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || ctx.Err() != nil {
				return 0, fmt.Errorf("reading %s: %w", q.Field, domain.ErrInputAborted)
			}
			return 0, fmt.Errorf("reading %s: %w", q.Field, err)
		}
		if v, ok := ParsePositive(line); ok {
			return v, nil
		}
		p.log.DebugContext(ctx, "answer rejected", "field", q.Field, "input", line)
		if _, err := fmt.Fprintf(p.out, "Please enter a positive number for %s.\n", q.Field); err != nil {
			return 0, err
		}
	}
}

// ParsePositive reads the longest decimal number at the start of s, ignoring
// leading whitespace and any trailing text, and reports whether it is a
// finite number greater than zero. "70kg" yields 70; "0x10" yields 0 and is
// rejected.
func ParsePositive(s string) (float64, bool) {
	num := leadingDecimal.FindString(strings.TrimLeftFunc(s, unicode.IsSpace))
	if num == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsInf(v, 0) || v <= 0 {
		return 0, false
	}
	return v, true
}
