package trend

import (
	"testing"

	"github.com/quantpipe/ta/series"
	"github.com/quantpipe/ta/stats"
)

func TestAbsolutePriceOscillator_MatchesEMADifference(t *testing.T) {
	closes := syntheticCloses(120)
	out, err := AbsolutePriceOscillatorWithParams(closes, 12, 26)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	fast, err := stats.EWM(closes, 12)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	slow, err := stats.EWM(closes, 26)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := range closes {
		if out[i] != fast[i]-slow[i] {
			t.Fatalf("index %d: APO %v != fast-slow %v", i, out[i], fast[i]-slow[i])
		}
	}
}

func TestAbsolutePriceOscillator_FlatSeriesIsZero(t *testing.T) {
	out, err := AbsolutePriceOscillator(series.Series{3, 3, 3, 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range out {
		if v != 0 {
			t.Fatalf("index %d: expected 0 for flat series, got %v", i, v)
		}
	}
}

func TestAbsolutePriceOscillator_InvalidInput(t *testing.T) {
	if _, err := AbsolutePriceOscillatorWithParams(series.Series{}, 12, 26); err == nil {
		t.Fatal("expected error for empty series")
	}
	if _, err := AbsolutePriceOscillatorWithParams(series.Series{1}, 12, 0); err == nil {
		t.Fatal("expected error for non-positive slow period")
	}
}
