package trend

import (
	"fmt"

	"github.com/quantpipe/ta/series"
	"github.com/quantpipe/ta/stats"
)

const (
	DefaultAPOFastPeriod = 12
	DefaultAPOSlowPeriod = 26
)

// AbsolutePriceOscillator computes the APO with the standard 12/26 periods.
func AbsolutePriceOscillator(closes series.Series) (series.Series, error) {
	return AbsolutePriceOscillatorWithParams(closes, DefaultAPOFastPeriod, DefaultAPOSlowPeriod)
}

// AbsolutePriceOscillatorWithParams computes the fast EMA minus the slow EMA
// of the close series. Defined from index 0.
func AbsolutePriceOscillatorWithParams(closes series.Series, fast, slow int) (series.Series, error) {
	emaFast, err := stats.EWM(closes, fast)
	if err != nil {
		return nil, fmt.Errorf("apo fast ema: %w", err)
	}
	emaSlow, err := stats.EWM(closes, slow)
	if err != nil {
		return nil, fmt.Errorf("apo slow ema: %w", err)
	}
	out := make(series.Series, len(closes))
	for i := range out {
		out[i] = emaFast[i] - emaSlow[i]
	}
	return out, nil
}
