package momentum

import (
	"fmt"

	"github.com/quantpipe/ta/series"
)

const DefaultROCPeriod = 12

// RateOfChange computes the ROC with the standard 12 period.
func RateOfChange(closes series.Series) (series.Series, error) {
	return RateOfChangeWithPeriod(closes, DefaultROCPeriod)
}

// RateOfChangeWithPeriod computes the percent change against the close
// `period` bars earlier:
//
//	out[i] = 100 * (closes[i] - closes[i-period]) / closes[i-period]
//
// Warm-up positions are zero, not undefined; this indicator keeps the
// zero-filled convention.
func RateOfChangeWithPeriod(closes series.Series, period int) (series.Series, error) {
	if err := series.ValidateEqualLen(closes); err != nil {
		return nil, fmt.Errorf("roc: %w", err)
	}
	if err := series.ValidatePeriod(period); err != nil {
		return nil, fmt.Errorf("roc: %w", err)
	}
	out := make(series.Series, len(closes))
	for i := period; i < len(closes); i++ {
		out[i] = 100 * (closes[i] - closes[i-period]) / closes[i-period]
	}
	return out, nil
}
