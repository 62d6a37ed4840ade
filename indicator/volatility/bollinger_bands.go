// Package volatility implements volatility indicators: Bollinger Bands and
// the average true range.
package volatility

import (
	"fmt"

	"github.com/quantpipe/ta/series"
	"github.com/quantpipe/ta/stats"
)

const (
	DefaultBollingerPeriod     = 20
	DefaultBollingerMultiplier = 2.0
)

// BollingerBands computes the bands with the standard 20 period and 2.0
// standard-deviation multiplier.
func BollingerBands(closes series.Series) (upper, middle, lower series.Series, err error) {
	return BollingerBandsWithParams(closes, DefaultBollingerPeriod, DefaultBollingerMultiplier)
}

// BollingerBandsWithParams computes the middle band (rolling mean) and the
// upper/lower bands at multiplier standard deviations around it. The rolling
// standard deviation is the sample statistic; the first period-1 positions of
// all three bands are undefined.
func BollingerBandsWithParams(closes series.Series, period int, multiplier float64) (upper, middle, lower series.Series, err error) {
	if multiplier <= 0 {
		return nil, nil, nil, fmt.Errorf("bollinger: %w: got %v", series.ErrInvalidMultiplier, multiplier)
	}

	middle, err = stats.RollingMean(closes, period)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("bollinger mean: %w", err)
	}
	std, err := stats.RollingStd(closes, period)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("bollinger std: %w", err)
	}

	upper = make(series.Series, len(closes))
	lower = make(series.Series, len(closes))
	for i := range closes {
		upper[i] = middle[i] + multiplier*std[i]
		lower[i] = middle[i] - multiplier*std[i]
	}
	return upper, middle, lower, nil
}
