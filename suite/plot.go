package suite

import (
	"encoding/json"
	"fmt"

	"github.com/quantpipe/ta/series"
)

// PlotData holds one named curve for visualization.
type PlotData struct {
	Name      string    `json:"name"`
	X         []float64 `json:"x"`
	Y         []float64 `json:"y"`
	Type      string    `json:"type,omitempty"`
	Timestamp []int64   `json:"timestamp,omitempty"`
}

// PlotData flattens the report into plottable curves. Warm-up positions are
// trimmed from the front of each curve (JSON has no NaN); the X values keep
// the original frame indices so trimmed curves still line up. Timestamps are
// attached when the frame carries them.
func (rep *Report) PlotData(f Frame) []PlotData {
	curves := []struct {
		name string
		s    series.Series
	}{
		{"SMA", rep.SMA},
		{"EMA", rep.EMA},
		{"MACD", rep.MACD},
		{"MACD Signal", rep.MACDSignal},
		{"MACD Histogram", rep.MACDHistogram},
		{"RSI", rep.RSI},
		{"Bollinger Upper", rep.BollingerUpper},
		{"Bollinger Middle", rep.BollingerMiddle},
		{"Bollinger Lower", rep.BollingerLower},
		{"Stochastic %K", rep.StochasticK},
		{"Stochastic %D", rep.StochasticD},
		{"ATR", rep.ATR},
		{"OBV", rep.OBV},
		{"ROC", rep.ROC},
		{"APO", rep.APO},
		{"VWAP", rep.VWAP},
		{"Williams %R", rep.WilliamsR},
		{"CCI", rep.CCI},
	}

	out := make([]PlotData, 0, len(curves))
	for _, c := range curves {
		// Offset between the frame and the curve covers RSI's shorter,
		// difference-aligned output.
		offset := f.Len() - len(c.s)
		start := 0
		for start < len(c.s) && !series.IsDefined(c.s[start]) {
			start++
		}
		if start == len(c.s) {
			continue
		}
		y := c.s[start:].Copy()
		x := make([]float64, len(y))
		for i := range x {
			x[i] = float64(offset + start + i)
		}
		var ts []int64
		if len(f.Times) == f.Len() && f.Len() > 0 {
			ts = f.Times[offset+start:]
		}
		out = append(out, PlotData{Name: c.name, X: x, Y: y, Type: "line", Timestamp: ts})
	}
	return out
}

// FormatPlotDataJSON converts plot data to JSON.
func FormatPlotDataJSON(data []PlotData) (string, error) {
	if len(data) == 0 {
		return "[]", nil
	}
	for _, d := range data {
		if len(d.X) != len(d.Y) {
			return "", fmt.Errorf("mismatched X and Y lengths for %s: %d vs %d", d.Name, len(d.X), len(d.Y))
		}
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("failed to marshal plot data: %w", err)
	}
	return string(b), nil
}
