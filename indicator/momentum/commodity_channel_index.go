package momentum

import (
	"fmt"

	"github.com/quantpipe/ta/series"
	"github.com/quantpipe/ta/stats"
)

const DefaultCCIPeriod = 20

// CommodityChannelIndex computes the CCI with the standard 20 period.
func CommodityChannelIndex(high, low, close series.Series) (series.Series, error) {
	return CommodityChannelIndexWithPeriod(high, low, close, DefaultCCIPeriod)
}

// CommodityChannelIndexWithPeriod computes the CCI over the typical price:
//
//	tp     = (high + low + close) / 3
//	out[i] = (tp[i] - rolling mean(tp)) / (0.015 * rolling std(tp) + epsilon)
//
// The rolling standard deviation is the sample statistic; the first period-1
// positions are undefined.
func CommodityChannelIndexWithPeriod(high, low, close series.Series, period int) (series.Series, error) {
	tp, err := series.TypicalPrice(high, low, close)
	if err != nil {
		return nil, fmt.Errorf("cci: %w", err)
	}

	mean, err := stats.RollingMean(tp, period)
	if err != nil {
		return nil, fmt.Errorf("cci mean: %w", err)
	}
	std, err := stats.RollingStd(tp, period)
	if err != nil {
		return nil, fmt.Errorf("cci std: %w", err)
	}

	out := make(series.Series, len(tp))
	for i := range out {
		out[i] = (tp[i] - mean[i]) / (0.015*std[i] + stats.Epsilon)
	}
	return out, nil
}
