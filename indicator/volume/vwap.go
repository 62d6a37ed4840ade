package volume

import (
	"fmt"

	"github.com/quantpipe/ta/series"
)

// VWAP computes the volume weighted average price, cumulative from the series
// start rather than over a trailing window:
//
//	tp[i]   = (high[i] + low[i] + close[i]) / 3
//	vwap[i] = sum(tp[0..i] * volume[0..i]) / sum(volume[0..i])
//
// Every position is defined. While the cumulative volume is still zero the
// ratio would be 0/0, so those positions report zero instead.
func VWAP(high, low, close, volumes series.Series) (series.Series, error) {
	if err := series.ValidateEqualLen(high, low, close, volumes); err != nil {
		return nil, fmt.Errorf("vwap: %w", err)
	}

	tp, err := series.TypicalPrice(high, low, close)
	if err != nil {
		return nil, fmt.Errorf("vwap: %w", err)
	}

	out := make(series.Series, len(close))
	cumPV, cumVol := 0.0, 0.0
	for i := range close {
		cumPV += tp[i] * volumes[i]
		cumVol += volumes[i]
		if cumVol == 0 {
			out[i] = 0
			continue
		}
		out[i] = cumPV / cumVol
	}
	return out, nil
}
