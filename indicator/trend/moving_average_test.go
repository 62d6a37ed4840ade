package trend

import (
	"errors"
	"testing"

	"github.com/quantpipe/ta/series"
)

func approx(a, b, tol float64) bool {
	d := a - b
	if d < 0 {
		d = -d
	}
	return d <= tol
}

func TestSimpleMovingAverage_WorkedExample(t *testing.T) {
	closes := series.Series{10, 11, 12, 11, 10}
	out, err := SimpleMovingAverageWithPeriod(closes, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != len(closes) {
		t.Fatalf("expected length %d, got %d", len(closes), len(out))
	}
	if series.IsDefined(out[0]) || series.IsDefined(out[1]) {
		t.Fatalf("warm-up positions must be undefined: %v", out[:2])
	}
	want := []float64{11, 34.0 / 3.0, 11}
	for i, w := range want {
		if !approx(out[i+2], w, 1e-12) {
			t.Fatalf("index %d: expected %v, got %v", i+2, w, out[i+2])
		}
	}
}

func TestSimpleMovingAverage_InvalidInput(t *testing.T) {
	if _, err := SimpleMovingAverageWithPeriod(series.Series{}, 3); !errors.Is(err, series.ErrEmptySeries) {
		t.Fatalf("expected ErrEmptySeries, got %v", err)
	}
	if _, err := SimpleMovingAverageWithPeriod(series.Series{1, 2}, 0); !errors.Is(err, series.ErrInvalidPeriod) {
		t.Fatalf("expected ErrInvalidPeriod, got %v", err)
	}
}

func TestExponentialMovingAverage_DefinedFromStart(t *testing.T) {
	closes := series.Series{2, 4, 8, 16}
	out, err := ExponentialMovingAverageWithPeriod(closes, 3) // alpha = 0.5
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out[0] != closes[0] {
		t.Fatalf("EMA seed must be the first close, got %v", out[0])
	}
	want := []float64{2, 3, 5.5, 10.75}
	for i, w := range want {
		if !approx(out[i], w, 1e-12) {
			t.Fatalf("index %d: expected %v, got %v", i, w, out[i])
		}
	}
	for i, v := range out {
		if !series.IsDefined(v) {
			t.Fatalf("index %d must be defined", i)
		}
	}
}

func TestMovingAverages_DefaultPeriod(t *testing.T) {
	closes := make(series.Series, 30)
	for i := range closes {
		closes[i] = float64(i + 1)
	}
	sma, err := SimpleMovingAverage(closes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if series.IsDefined(sma[DefaultMovingAveragePeriod-2]) || !series.IsDefined(sma[DefaultMovingAveragePeriod-1]) {
		t.Fatalf("default warm-up boundary wrong: %v", sma)
	}

	ema, err := ExponentialMovingAverage(closes)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ema[0] != closes[0] {
		t.Fatalf("default EMA seed wrong: %v", ema[0])
	}
}
