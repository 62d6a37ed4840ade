// Package momentum implements momentum oscillators: RSI, the stochastic
// oscillator, rate of change, Williams %R, and the commodity channel index.
package momentum

import (
	"fmt"

	"github.com/quantpipe/ta/series"
	"github.com/quantpipe/ta/stats"
)

const DefaultRSIPeriod = 14

// RelativeStrengthIndex computes the RSI with the standard 14 period.
func RelativeStrengthIndex(closes series.Series) (series.Series, error) {
	return RelativeStrengthIndexWithPeriod(closes, DefaultRSIPeriod)
}

// RelativeStrengthIndexWithPeriod computes the RSI over the first differences
// of the close series. Gains and losses are averaged with a trailing window
// and combined as 100 - 100/(1+RS); the loss average carries the epsilon
// guard so a loss-free stretch divides cleanly.
//
// The output follows the difference series: its length is len(closes)-1 and
// index 0 corresponds to the second close. The first period-1 positions of
// that output are undefined.
func RelativeStrengthIndexWithPeriod(closes series.Series, period int) (series.Series, error) {
	if err := series.ValidateEqualLen(closes); err != nil {
		return nil, fmt.Errorf("rsi: %w", err)
	}
	if err := series.ValidatePeriod(period); err != nil {
		return nil, fmt.Errorf("rsi: %w", err)
	}
	if len(closes) == 1 {
		// A single close has no differences to measure.
		return series.Series{}, nil
	}

	gains := make(series.Series, len(closes)-1)
	losses := make(series.Series, len(closes)-1)
	for i := 1; i < len(closes); i++ {
		diff := closes[i] - closes[i-1]
		if diff > 0 {
			gains[i-1] = diff
		} else if diff < 0 {
			losses[i-1] = -diff
		}
	}

	avgGain, err := stats.RollingMean(gains, period)
	if err != nil {
		return nil, fmt.Errorf("rsi gains: %w", err)
	}
	avgLoss, err := stats.RollingMean(losses, period)
	if err != nil {
		return nil, fmt.Errorf("rsi losses: %w", err)
	}

	out := make(series.Series, len(gains))
	for i := range out {
		rs := avgGain[i] / (avgLoss[i] + stats.Epsilon)
		out[i] = 100 - 100/(1+rs)
	}
	return out, nil
}
