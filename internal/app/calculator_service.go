// Package app holds the application services and use-case orchestration.
package app

import (
	"context"
	"log/slog"

	"bmi/internal/domain"
)

// Collector gathers a validated measurement from the user.
type Collector interface {
	Collect(ctx context.Context) (domain.Measurement, error)
}

// Presenter displays the calculator output.
type Presenter interface {
	Banner() error
	Present(r domain.Result) error
}

// CalculatorService runs one collect, evaluate and present pass.
type CalculatorService struct {
	in  Collector
	out Presenter
	log *slog.Logger
}

// NewCalculatorService creates a CalculatorService wired to the given ports.
// A nil logger discards diagnostics.
func NewCalculatorService(in Collector, out Presenter, log *slog.Logger) *CalculatorService {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &CalculatorService{in: in, out: out, log: log}
}

// Run shows the banner, collects the measurement and presents the result.
// Nothing is presented when collection fails.
func (s *CalculatorService) Run(ctx context.Context) (domain.Result, error) {
	if err := s.out.Banner(); err != nil {
		return domain.Result{}, err
	}
	m, err := s.in.Collect(ctx)
	if err != nil {
		return domain.Result{}, err
	}
	r := domain.Evaluate(m)
	s.log.DebugContext(ctx, "bmi computed",
		"weight_kg", m.WeightKg, "height_m", m.HeightM,
		"bmi", r.BMI, "category", string(r.Category))
	if err := s.out.Present(r); err != nil {
		return r, err
	}
	return r, nil
}
