// Package ta computes financial technical indicators over time-ordered
// price/volume series. The subpackages hold the implementation — series
// (input adaptation), stats (windowed primitives), indicator/* (the
// indicators themselves), config, and suite — and this package re-exports the
// everyday surface so most callers only need one import.
package ta

import (
	"github.com/quantpipe/ta/config"
	"github.com/quantpipe/ta/indicator/momentum"
	"github.com/quantpipe/ta/indicator/trend"
	"github.com/quantpipe/ta/indicator/volatility"
	"github.com/quantpipe/ta/indicator/volume"
	"github.com/quantpipe/ta/series"
	"github.com/quantpipe/ta/suite"
)

// ---- Series adaptation ----

type (
	Series = series.Series
	Bar    = series.Bar
)

var (
	ErrEmptySeries       = series.ErrEmptySeries
	ErrLengthMismatch    = series.ErrLengthMismatch
	ErrInvalidPeriod     = series.ErrInvalidPeriod
	ErrInvalidMultiplier = series.ErrInvalidMultiplier
)

func FromFloat64s(values []float64) Series { return series.FromFloat64s(values) }

func FromBars(bars []Bar) (open, high, low, close, volume Series) {
	return series.FromBars(bars)
}

func IsDefined(v float64) bool { return series.IsDefined(v) }

// ---- Trend ----

func SMA(closes Series, period int) (Series, error) {
	return trend.SimpleMovingAverageWithPeriod(closes, period)
}

func EMA(closes Series, period int) (Series, error) {
	return trend.ExponentialMovingAverageWithPeriod(closes, period)
}

func MACD(closes Series) (macd, signal, histogram Series, err error) {
	return trend.MACD(closes)
}

func APO(closes Series) (Series, error) {
	return trend.AbsolutePriceOscillator(closes)
}

// ---- Momentum ----

func RSI(closes Series) (Series, error) {
	return momentum.RelativeStrengthIndex(closes)
}

func Stochastic(high, low, close Series) (k, d Series, err error) {
	return momentum.StochasticOscillator(high, low, close)
}

func ROC(closes Series) (Series, error) {
	return momentum.RateOfChange(closes)
}

func WilliamsR(high, low, close Series) (Series, error) {
	return momentum.WilliamsR(high, low, close)
}

func CCI(high, low, close Series) (Series, error) {
	return momentum.CommodityChannelIndex(high, low, close)
}

// ---- Volatility ----

func BollingerBands(closes Series) (upper, middle, lower Series, err error) {
	return volatility.BollingerBands(closes)
}

func ATR(high, low, close Series) (Series, error) {
	return volatility.AverageTrueRange(high, low, close)
}

// ---- Volume ----

func OBV(closes, volumes Series) (Series, error) {
	return volume.OnBalanceVolume(closes, volumes)
}

func VWAP(high, low, close, volumes Series) (Series, error) {
	return volume.VWAP(high, low, close, volumes)
}

// ---- Configuration & suite ----

type (
	IndicatorConfig = config.IndicatorConfig
	IndicatorSuite  = suite.IndicatorSuite
	Frame           = suite.Frame
	Report          = suite.Report
)

func DefaultConfig() IndicatorConfig { return config.DefaultConfig() }

func NewIndicatorSuite() (*IndicatorSuite, error) { return suite.NewIndicatorSuite() }

func NewIndicatorSuiteWithConfig(cfg IndicatorConfig) (*IndicatorSuite, error) {
	return suite.NewIndicatorSuiteWithConfig(cfg)
}
