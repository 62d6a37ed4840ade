// Package volume implements volume-based indicators: on-balance volume and
// the volume weighted average price.
package volume

import (
	"fmt"

	"github.com/quantpipe/ta/series"
)

// OnBalanceVolume computes the running OBV total. The recurrence is
// sequential, so the series is built in a single forward scan:
//
//	obv[0] = volume[0]
//	obv[i] = obv[i-1] + volume[i]  when close[i] > close[i-1]
//	obv[i] = obv[i-1] - volume[i]  when close[i] < close[i-1]
//	obv[i] = obv[i-1]              otherwise
//
// Every position is defined.
func OnBalanceVolume(closes, volumes series.Series) (series.Series, error) {
	if err := series.ValidateEqualLen(closes, volumes); err != nil {
		return nil, fmt.Errorf("obv: %w", err)
	}

	out := make(series.Series, len(closes))
	out[0] = volumes[0]
	for i := 1; i < len(closes); i++ {
		switch {
		case closes[i] > closes[i-1]:
			out[i] = out[i-1] + volumes[i]
		case closes[i] < closes[i-1]:
			out[i] = out[i-1] - volumes[i]
		default:
			out[i] = out[i-1]
		}
	}
	return out, nil
}
