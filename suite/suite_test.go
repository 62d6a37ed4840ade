package suite

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantpipe/ta/config"
	"github.com/quantpipe/ta/series"
)

func syntheticFrame(n int) Frame {
	r := rand.New(rand.NewSource(99))
	bars := make([]series.Bar, n)
	price := 100.0
	for i := 0; i < n; i++ {
		move := r.Float64()*4 - 2
		open := price
		price += move
		high := open
		if price > open {
			high = price
		}
		low := open
		if price < open {
			low = price
		}
		bars[i] = series.Bar{
			Time:   int64(1_700_000_000 + i*60),
			Open:   open,
			High:   high + r.Float64(),
			Low:    low - r.Float64(),
			Close:  price,
			Volume: 500 + r.Float64()*1000,
		}
	}
	return FrameFromBars(bars)
}

func TestSuite_ComputeShapes(t *testing.T) {
	s, err := NewIndicatorSuite()
	require.NoError(t, err)

	f := syntheticFrame(80)
	rep, err := s.Compute(f)
	require.NoError(t, err)

	n := f.Len()
	fullLength := map[string]series.Series{
		"sma":        rep.SMA,
		"ema":        rep.EMA,
		"macd":       rep.MACD,
		"signal":     rep.MACDSignal,
		"histogram":  rep.MACDHistogram,
		"upper":      rep.BollingerUpper,
		"middle":     rep.BollingerMiddle,
		"lower":      rep.BollingerLower,
		"k":          rep.StochasticK,
		"d":          rep.StochasticD,
		"atr":        rep.ATR,
		"obv":        rep.OBV,
		"roc":        rep.ROC,
		"apo":        rep.APO,
		"vwap":       rep.VWAP,
		"williams_r": rep.WilliamsR,
		"cci":        rep.CCI,
	}
	for name, out := range fullLength {
		assert.Len(t, out, n, "%s must match the frame length", name)
	}
	// RSI follows the first-difference alignment.
	assert.Len(t, rep.RSI, n-1)
}

func TestSuite_RejectsBadFrame(t *testing.T) {
	s, err := NewIndicatorSuite()
	require.NoError(t, err)

	f := syntheticFrame(30)
	f.Volume = f.Volume[:10]
	_, err = s.Compute(f)
	assert.ErrorIs(t, err, series.ErrLengthMismatch)

	_, err = s.Compute(Frame{})
	assert.ErrorIs(t, err, series.ErrEmptySeries)
}

func TestSuite_RejectsBadConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.RSIPeriod = 0
	_, err := NewIndicatorSuiteWithConfig(cfg)
	assert.Error(t, err)
}

func TestSuite_ConfigFromYAML(t *testing.T) {
	cfg, err := config.FromYAML(strings.NewReader("sma_period: 5\nrsi_period: 5\n"))
	require.NoError(t, err)
	s, err := NewIndicatorSuiteWithConfig(cfg)
	require.NoError(t, err)

	rep, err := s.Compute(syntheticFrame(40))
	require.NoError(t, err)
	// With a 5-bar window the SMA is defined from index 4.
	assert.False(t, series.IsDefined(rep.SMA[3]))
	assert.True(t, series.IsDefined(rep.SMA[4]))
}

func TestSuite_Signals(t *testing.T) {
	s, err := NewIndicatorSuite()
	require.NoError(t, err)

	rep, err := s.Compute(syntheticFrame(80))
	require.NoError(t, err)

	signals := s.Signals(rep)
	for _, name := range []string{"rsi", "stochastic", "williams_r", "cci"} {
		sig, ok := signals[name]
		assert.True(t, ok, "expected a %s signal", name)
		assert.Contains(t, []Signal{SignalOverbought, SignalOversold, SignalNeutral}, sig)
	}
}

func TestSuite_ComputeIsPure(t *testing.T) {
	s, err := NewIndicatorSuite()
	require.NoError(t, err)

	f := syntheticFrame(60)
	first, err := s.Compute(f)
	require.NoError(t, err)
	second, err := s.Compute(f)
	require.NoError(t, err)

	for i := range first.OBV {
		assert.Equal(t, first.OBV[i], second.OBV[i])
		assert.Equal(t, first.VWAP[i], second.VWAP[i])
	}
	for i := range first.SMA {
		if series.IsDefined(first.SMA[i]) || series.IsDefined(second.SMA[i]) {
			assert.Equal(t, first.SMA[i], second.SMA[i])
		}
	}
}

func TestReport_PlotDataJSON(t *testing.T) {
	s, err := NewIndicatorSuite()
	require.NoError(t, err)

	f := syntheticFrame(80)
	rep, err := s.Compute(f)
	require.NoError(t, err)

	curves := rep.PlotData(f)
	require.NotEmpty(t, curves)
	for _, c := range curves {
		assert.Equal(t, len(c.X), len(c.Y), "curve %s", c.Name)
		for i, v := range c.Y {
			assert.True(t, series.IsDefined(v), "curve %s index %d", c.Name, i)
		}
	}

	out, err := FormatPlotDataJSON(curves)
	require.NoError(t, err)
	assert.Contains(t, out, "\"VWAP\"")
	assert.Contains(t, out, "\"Bollinger Upper\"")
}
