// Package stats implements the windowed statistics every indicator composes:
// rolling mean, rolling sample standard deviation, rolling min/max, and the
// exponential weighted mean. All functions are pure; each call works on its
// own input and output and is safe to run concurrently with any other call.
package stats

import (
	"fmt"
	"math"

	"github.com/quantpipe/ta/series"
)

// Epsilon guards divisions against a degenerate (zero) denominator without
// materially affecting results when the denominator is non-degenerate.
const Epsilon = 1e-10

// RollingMean computes the trailing-window average. out[i] is the mean of
// s[i-period+1..i] once i >= period-1; earlier positions are undefined. A
// period longer than the series leaves every position undefined.
func RollingMean(s series.Series, period int) (series.Series, error) {
	if err := checkInput(s, period); err != nil {
		return nil, fmt.Errorf("rolling mean: %w", err)
	}
	out := series.NewUndefined(len(s))
	for i := period - 1; i < len(s); i++ {
		sum := 0.0
		for _, v := range s[i-period+1 : i+1] {
			sum += v
		}
		out[i] = sum / float64(period)
	}
	return out, nil
}

// RollingStd computes the trailing-window sample standard deviation
// (divisor period-1). A one-sample window has no sample deviation, so a
// period of 1 yields an entirely undefined output.
func RollingStd(s series.Series, period int) (series.Series, error) {
	if err := checkInput(s, period); err != nil {
		return nil, fmt.Errorf("rolling std: %w", err)
	}
	out := series.NewUndefined(len(s))
	if period < 2 {
		return out, nil
	}
	for i := period - 1; i < len(s); i++ {
		window := s[i-period+1 : i+1]
		mean := 0.0
		for _, v := range window {
			mean += v
		}
		mean /= float64(period)
		sumSq := 0.0
		for _, v := range window {
			diff := v - mean
			sumSq += diff * diff
		}
		out[i] = math.Sqrt(sumSq / float64(period-1))
	}
	return out, nil
}

// RollingMin computes the trailing-window minimum.
func RollingMin(s series.Series, period int) (series.Series, error) {
	out, err := rollingExtreme(s, period, func(best, v float64) bool { return v < best })
	if err != nil {
		return nil, fmt.Errorf("rolling min: %w", err)
	}
	return out, nil
}

// RollingMax computes the trailing-window maximum.
func RollingMax(s series.Series, period int) (series.Series, error) {
	out, err := rollingExtreme(s, period, func(best, v float64) bool { return v > best })
	if err != nil {
		return nil, fmt.Errorf("rolling max: %w", err)
	}
	return out, nil
}

func rollingExtreme(s series.Series, period int, better func(best, v float64) bool) (series.Series, error) {
	if err := checkInput(s, period); err != nil {
		return nil, err
	}
	out := series.NewUndefined(len(s))
	for i := period - 1; i < len(s); i++ {
		best := s[i-period+1]
		for _, v := range s[i-period+2 : i+1] {
			if math.IsNaN(best) {
				break
			}
			if math.IsNaN(v) {
				best = v
				break
			}
			if better(best, v) {
				best = v
			}
		}
		out[i] = best
	}
	return out, nil
}

// EWM computes the exponential weighted mean with smoothing factor
// alpha = 2/(period+1). The recursion is seeded with the first raw sample, so
// every position is defined from index 0:
//
//	out[0] = s[0]
//	out[i] = alpha*s[i] + (1-alpha)*out[i-1]
func EWM(s series.Series, period int) (series.Series, error) {
	if err := checkInput(s, period); err != nil {
		return nil, fmt.Errorf("ewm: %w", err)
	}
	alpha := 2.0 / float64(period+1)
	out := make(series.Series, len(s))
	out[0] = s[0]
	for i := 1; i < len(s); i++ {
		out[i] = alpha*s[i] + (1-alpha)*out[i-1]
	}
	return out, nil
}

func checkInput(s series.Series, period int) error {
	if len(s) == 0 {
		return series.ErrEmptySeries
	}
	return series.ValidatePeriod(period)
}
