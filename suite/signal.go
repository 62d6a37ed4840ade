package suite

// Signal classifies the latest value of an oscillator against its configured
// bands.
type Signal string

const (
	SignalOverbought Signal = "Overbought"
	SignalOversold   Signal = "Oversold"
	SignalNeutral    Signal = "Neutral"
)

func classify(value, overbought, oversold float64) Signal {
	if value > overbought {
		return SignalOverbought
	}
	if value < oversold {
		return SignalOversold
	}
	return SignalNeutral
}

// Signals classifies the most recent defined value of each banded oscillator
// in the report. Oscillators still inside their warm-up are omitted.
func (s *IndicatorSuite) Signals(rep *Report) map[string]Signal {
	out := make(map[string]Signal)
	if v, ok := rep.RSI.Last(); ok {
		out["rsi"] = classify(v, s.cfg.RSIOverbought, s.cfg.RSIOversold)
	}
	if v, ok := rep.StochasticK.Last(); ok {
		out["stochastic"] = classify(v, s.cfg.StochasticOverbought, s.cfg.StochasticOversold)
	}
	if v, ok := rep.WilliamsR.Last(); ok {
		out["williams_r"] = classify(v, s.cfg.WilliamsROverbought, s.cfg.WilliamsROversold)
	}
	if v, ok := rep.CCI.Last(); ok {
		out["cci"] = classify(v, s.cfg.CCIOverbought, s.cfg.CCIOversold)
	}
	return out
}
