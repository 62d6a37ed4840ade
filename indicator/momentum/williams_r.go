package momentum

import (
	"fmt"

	"github.com/quantpipe/ta/series"
	"github.com/quantpipe/ta/stats"
)

const DefaultWilliamsRPeriod = 14

// WilliamsR computes Williams %R with the standard 14 period.
func WilliamsR(high, low, close series.Series) (series.Series, error) {
	return WilliamsRWithPeriod(high, low, close, DefaultWilliamsRPeriod)
}

// WilliamsRWithPeriod computes Williams %R:
//
//	out[i] = -100 * (rolling max(high) - close) / (rolling max(high) - rolling min(low) + epsilon)
//
// Values range from -100 to 0; the first period-1 positions are undefined.
func WilliamsRWithPeriod(high, low, close series.Series, period int) (series.Series, error) {
	if err := series.ValidateEqualLen(high, low, close); err != nil {
		return nil, fmt.Errorf("williams %%r: %w", err)
	}

	highestHigh, err := stats.RollingMax(high, period)
	if err != nil {
		return nil, fmt.Errorf("williams %%r highs: %w", err)
	}
	lowestLow, err := stats.RollingMin(low, period)
	if err != nil {
		return nil, fmt.Errorf("williams %%r lows: %w", err)
	}

	out := make(series.Series, len(close))
	for i := range out {
		out[i] = -100 * (highestHigh[i] - close[i]) / (highestHigh[i] - lowestLow[i] + stats.Epsilon)
	}
	return out, nil
}
