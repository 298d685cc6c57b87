// Package domain contains the BMI entities, the pure calculation rules and
// the ports the adapters implement.
package domain

import (
	"context"
	"errors"
)

// ErrInputAborted indicates the input stream ended before every answer was
// collected.
var ErrInputAborted = errors.New("input aborted")

// Measurement holds the validated answers for one run.
type Measurement struct {
	WeightKg float64
	HeightM  float64
}

// LineReader is the port for reading one answer at a time. ReadLine returns
// io.EOF once no further input is available.
type LineReader interface {
	ReadLine(ctx context.Context) (string, error)
}
