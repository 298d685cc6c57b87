package app_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"bmi/internal/app"
	"bmi/internal/domain"
)

type mockCollector struct {
	collectFn func(ctx context.Context) (domain.Measurement, error)
}

func (m *mockCollector) Collect(ctx context.Context) (domain.Measurement, error) {
	if m.collectFn != nil {
		return m.collectFn(ctx)
	}
	return domain.Measurement{}, nil
}

type mockPresenter struct {
	bannerErr  error
	presentErr error
	banners    int
	presented  []domain.Result
}

func (m *mockPresenter) Banner() error {
	m.banners++
	return m.bannerErr
}

func (m *mockPresenter) Present(r domain.Result) error {
	m.presented = append(m.presented, r)
	return m.presentErr
}

func collectorOf(w, h float64) *mockCollector {
	return &mockCollector{
		collectFn: func(_ context.Context) (domain.Measurement, error) {
			return domain.Measurement{WeightKg: w, HeightM: h}, nil
		},
	}
}

func TestRun_Success(t *testing.T) {
	out := &mockPresenter{}
	svc := app.NewCalculatorService(collectorOf(70, 1.75), out, nil)

	got, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Category != domain.CategoryNormal {
		t.Fatalf("category = %q", got.Category)
	}
	if out.banners != 1 {
		t.Fatalf("expected one banner, got %d", out.banners)
	}
	if len(out.presented) != 1 || out.presented[0] != got {
		t.Fatalf("unexpected presented results: %+v", out.presented)
	}
}

func TestRun_AbortedPresentsNothing(t *testing.T) {
	in := &mockCollector{
		collectFn: func(_ context.Context) (domain.Measurement, error) {
			return domain.Measurement{}, fmt.Errorf("height: %w", domain.ErrInputAborted)
		},
	}
	out := &mockPresenter{}
	svc := app.NewCalculatorService(in, out, nil)

	_, err := svc.Run(context.Background())
	if !errors.Is(err, domain.ErrInputAborted) {
		t.Fatalf("expected ErrInputAborted, got %v", err)
	}
	if len(out.presented) != 0 {
		t.Fatalf("expected no result, got %+v", out.presented)
	}
}

func TestRun_BannerError(t *testing.T) {
	called := false
	in := &mockCollector{
		collectFn: func(_ context.Context) (domain.Measurement, error) {
			called = true
			return domain.Measurement{}, nil
		},
	}
	svc := app.NewCalculatorService(in, &mockPresenter{bannerErr: errors.New("broken pipe")}, nil)
	if _, err := svc.Run(context.Background()); err == nil {
		t.Fatal("expected error from banner")
	}
	if called {
		t.Fatal("collector should not run after banner failure")
	}
}

func TestRun_PresentError(t *testing.T) {
	svc := app.NewCalculatorService(collectorOf(100, 1.70), &mockPresenter{presentErr: errors.New("display gone")}, nil)
	if _, err := svc.Run(context.Background()); err == nil {
		t.Fatal("expected error from presenter")
	}
}

func TestRun_Idempotent(t *testing.T) {
	svc := app.NewCalculatorService(collectorOf(50, 1.60), &mockPresenter{}, nil)
	first, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 3; i++ {
		again, err := svc.Run(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if again != first {
			t.Fatalf("run %d = %+v; want %+v", i, again, first)
		}
	}
}

func TestRun_LogsToInjectedLogger(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	svc := app.NewCalculatorService(collectorOf(70, 1.75), &mockPresenter{}, log)

	if _, err := svc.Run(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "bmi computed") || !strings.Contains(out, "category=\"Normal weight\"") {
		t.Errorf("log output missing expected fields. Got: %s", out)
	}
}
