// Package suite computes the full indicator set over one OHLCV frame. The
// indicator packages stay pure; this is the layer that fans one frame out to
// every indicator and reports the results together.
package suite

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/quantpipe/ta/config"
	"github.com/quantpipe/ta/indicator/momentum"
	"github.com/quantpipe/ta/indicator/trend"
	"github.com/quantpipe/ta/indicator/volatility"
	"github.com/quantpipe/ta/indicator/volume"
	"github.com/quantpipe/ta/series"
)

var log = logrus.WithField("component", "indicator-suite")

// Frame is one instrument's OHLCV history, chronological, equal-length
// columns.
type Frame struct {
	Times  []int64
	Open   series.Series
	High   series.Series
	Low    series.Series
	Close  series.Series
	Volume series.Series
}

// FrameFromBars splits an ordered bar slice into a Frame.
func FrameFromBars(bars []series.Bar) Frame {
	open, high, low, close, vol := series.FromBars(bars)
	times := make([]int64, len(bars))
	for i, b := range bars {
		times[i] = b.Time
	}
	return Frame{Times: times, Open: open, High: high, Low: low, Close: close, Volume: vol}
}

// Len returns the number of bars in the frame.
func (f Frame) Len() int {
	return len(f.Close)
}

// Validate rejects an empty frame or mismatched column lengths.
func (f Frame) Validate() error {
	return series.ValidateEqualLen(f.Close, f.Open, f.High, f.Low, f.Volume)
}

// Report holds every indicator output for one frame. All series have the
// frame length except RSI, which follows the first-difference alignment and
// is one sample shorter.
type Report struct {
	SMA series.Series
	EMA series.Series

	MACD          series.Series
	MACDSignal    series.Series
	MACDHistogram series.Series

	RSI series.Series

	BollingerUpper  series.Series
	BollingerMiddle series.Series
	BollingerLower  series.Series

	StochasticK series.Series
	StochasticD series.Series

	ATR       series.Series
	OBV       series.Series
	ROC       series.Series
	APO       series.Series
	VWAP      series.Series
	WilliamsR series.Series
	CCI       series.Series
}

// IndicatorSuite runs the whole indicator library with one shared
// configuration.
type IndicatorSuite struct {
	cfg config.IndicatorConfig
}

// NewIndicatorSuite builds a suite with the library defaults.
func NewIndicatorSuite() (*IndicatorSuite, error) {
	return NewIndicatorSuiteWithConfig(config.DefaultConfig())
}

// NewIndicatorSuiteWithConfig builds a suite with a custom configuration.
func NewIndicatorSuiteWithConfig(cfg config.IndicatorConfig) (*IndicatorSuite, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("indicator suite config: %w", err)
	}
	return &IndicatorSuite{cfg: cfg}, nil
}

// Config returns the suite's configuration.
func (s *IndicatorSuite) Config() config.IndicatorConfig {
	return s.cfg
}

// Compute runs every indicator over the frame. The call either returns a
// fully populated report or fails before producing output; there are no
// partial results.
func (s *IndicatorSuite) Compute(f Frame) (*Report, error) {
	if err := f.Validate(); err != nil {
		log.WithError(err).Warn("rejecting frame")
		return nil, fmt.Errorf("compute: %w", err)
	}
	log.WithFields(logrus.Fields{"bars": f.Len()}).Debug("computing indicator report")

	rep := &Report{}
	var err error

	if rep.SMA, err = trend.SimpleMovingAverageWithPeriod(f.Close, s.cfg.SMAPeriod); err != nil {
		return nil, fmt.Errorf("compute sma: %w", err)
	}
	if rep.EMA, err = trend.ExponentialMovingAverageWithPeriod(f.Close, s.cfg.EMAPeriod); err != nil {
		return nil, fmt.Errorf("compute ema: %w", err)
	}
	rep.MACD, rep.MACDSignal, rep.MACDHistogram, err = trend.MACDWithParams(
		f.Close, s.cfg.MACDFastPeriod, s.cfg.MACDSlowPeriod, s.cfg.MACDSignalPeriod)
	if err != nil {
		return nil, fmt.Errorf("compute macd: %w", err)
	}
	if rep.RSI, err = momentum.RelativeStrengthIndexWithPeriod(f.Close, s.cfg.RSIPeriod); err != nil {
		return nil, fmt.Errorf("compute rsi: %w", err)
	}
	rep.BollingerUpper, rep.BollingerMiddle, rep.BollingerLower, err = volatility.BollingerBandsWithParams(
		f.Close, s.cfg.BollingerPeriod, s.cfg.BollingerMultiplier)
	if err != nil {
		return nil, fmt.Errorf("compute bollinger: %w", err)
	}
	rep.StochasticK, rep.StochasticD, err = momentum.StochasticOscillatorWithPeriod(
		f.High, f.Low, f.Close, s.cfg.StochasticPeriod)
	if err != nil {
		return nil, fmt.Errorf("compute stochastic: %w", err)
	}
	if rep.ATR, err = volatility.AverageTrueRangeWithPeriod(f.High, f.Low, f.Close, s.cfg.ATRPeriod); err != nil {
		return nil, fmt.Errorf("compute atr: %w", err)
	}
	if rep.OBV, err = volume.OnBalanceVolume(f.Close, f.Volume); err != nil {
		return nil, fmt.Errorf("compute obv: %w", err)
	}
	if rep.ROC, err = momentum.RateOfChangeWithPeriod(f.Close, s.cfg.ROCPeriod); err != nil {
		return nil, fmt.Errorf("compute roc: %w", err)
	}
	if rep.APO, err = trend.AbsolutePriceOscillatorWithParams(f.Close, s.cfg.APOFastPeriod, s.cfg.APOSlowPeriod); err != nil {
		return nil, fmt.Errorf("compute apo: %w", err)
	}
	if rep.VWAP, err = volume.VWAP(f.High, f.Low, f.Close, f.Volume); err != nil {
		return nil, fmt.Errorf("compute vwap: %w", err)
	}
	if rep.WilliamsR, err = momentum.WilliamsRWithPeriod(f.High, f.Low, f.Close, s.cfg.WilliamsRPeriod); err != nil {
		return nil, fmt.Errorf("compute williams %%r: %w", err)
	}
	if rep.CCI, err = momentum.CommodityChannelIndexWithPeriod(f.High, f.Low, f.Close, s.cfg.CCIPeriod); err != nil {
		return nil, fmt.Errorf("compute cci: %w", err)
	}

	return rep, nil
}
