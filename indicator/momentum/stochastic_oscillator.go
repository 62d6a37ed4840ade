package momentum

import (
	"fmt"

	"github.com/quantpipe/ta/series"
	"github.com/quantpipe/ta/stats"
)

const (
	DefaultStochasticPeriod  = 14
	DefaultStochasticDPeriod = 3
)

// StochasticOscillator computes %K and %D with the standard 14 period.
func StochasticOscillator(high, low, close series.Series) (k, d series.Series, err error) {
	return StochasticOscillatorWithPeriod(high, low, close, DefaultStochasticPeriod)
}

// StochasticOscillatorWithPeriod computes the stochastic oscillator:
//
//	%K = 100 * (close - rolling min(low)) / (rolling max(high) - rolling min(low) + epsilon)
//	%D = rolling mean(%K, 3)
//
// The epsilon guard keeps a flat high-low range from dividing by zero. %K is
// undefined for the first period-1 positions; %D needs two more.
func StochasticOscillatorWithPeriod(high, low, close series.Series, period int) (k, d series.Series, err error) {
	if err := series.ValidateEqualLen(high, low, close); err != nil {
		return nil, nil, fmt.Errorf("stochastic: %w", err)
	}

	lowestLow, err := stats.RollingMin(low, period)
	if err != nil {
		return nil, nil, fmt.Errorf("stochastic lows: %w", err)
	}
	highestHigh, err := stats.RollingMax(high, period)
	if err != nil {
		return nil, nil, fmt.Errorf("stochastic highs: %w", err)
	}

	k = make(series.Series, len(close))
	for i := range k {
		k[i] = 100 * (close[i] - lowestLow[i]) / (highestHigh[i] - lowestLow[i] + stats.Epsilon)
	}

	d, err = stats.RollingMean(k, DefaultStochasticDPeriod)
	if err != nil {
		return nil, nil, fmt.Errorf("stochastic %%D: %w", err)
	}
	return k, d, nil
}
