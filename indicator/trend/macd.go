package trend

import (
	"fmt"

	"github.com/quantpipe/ta/series"
	"github.com/quantpipe/ta/stats"
)

const (
	DefaultMACDFastPeriod   = 12
	DefaultMACDSlowPeriod   = 26
	DefaultMACDSignalPeriod = 9
)

// MACD computes the moving average convergence divergence with the standard
// 12/26/9 periods.
func MACD(closes series.Series) (macd, signal, histogram series.Series, err error) {
	return MACDWithParams(closes, DefaultMACDFastPeriod, DefaultMACDSlowPeriod, DefaultMACDSignalPeriod)
}

// MACDWithParams computes the MACD line (fast EMA minus slow EMA), its signal
// line (EMA of the MACD line), and the histogram (MACD minus signal). All
// three outputs have the input length and are defined from index 0, since the
// EMA has no warm-up gap.
func MACDWithParams(closes series.Series, fast, slow, signalPeriod int) (macd, signal, histogram series.Series, err error) {
	emaFast, err := stats.EWM(closes, fast)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("macd fast ema: %w", err)
	}
	emaSlow, err := stats.EWM(closes, slow)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("macd slow ema: %w", err)
	}

	macd = make(series.Series, len(closes))
	for i := range macd {
		macd[i] = emaFast[i] - emaSlow[i]
	}

	signal, err = stats.EWM(macd, signalPeriod)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("macd signal ema: %w", err)
	}

	histogram = make(series.Series, len(closes))
	for i := range histogram {
		histogram[i] = macd[i] - signal[i]
	}
	return macd, signal, histogram, nil
}
