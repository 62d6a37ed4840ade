// Package trend implements trend-following indicators: simple and exponential
// moving averages, MACD, and the absolute price oscillator.
package trend

import (
	"fmt"

	"github.com/quantpipe/ta/series"
	"github.com/quantpipe/ta/stats"
)

// DefaultMovingAveragePeriod is the conventional moving-average window.
const DefaultMovingAveragePeriod = 20

// SimpleMovingAverage computes the SMA of the close series with the default
// period.
func SimpleMovingAverage(closes series.Series) (series.Series, error) {
	return SimpleMovingAverageWithPeriod(closes, DefaultMovingAveragePeriod)
}

// SimpleMovingAverageWithPeriod computes the trailing-window mean of the
// close series. The first period-1 positions are undefined.
func SimpleMovingAverageWithPeriod(closes series.Series, period int) (series.Series, error) {
	out, err := stats.RollingMean(closes, period)
	if err != nil {
		return nil, fmt.Errorf("sma: %w", err)
	}
	return out, nil
}

// ExponentialMovingAverage computes the EMA of the close series with the
// default period.
func ExponentialMovingAverage(closes series.Series) (series.Series, error) {
	return ExponentialMovingAverageWithPeriod(closes, DefaultMovingAveragePeriod)
}

// ExponentialMovingAverageWithPeriod computes the exponential weighted mean
// of the close series. There is no warm-up gap: the recursion is seeded with
// the first close, so every position is defined.
func ExponentialMovingAverageWithPeriod(closes series.Series, period int) (series.Series, error) {
	out, err := stats.EWM(closes, period)
	if err != nil {
		return nil, fmt.Errorf("ema: %w", err)
	}
	return out, nil
}
