// Package config holds the tunable parameters for every indicator in one
// place, with the conventional defaults and a YAML loader for callers that
// keep their parameters in a file.
package config

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/quantpipe/ta/indicator/momentum"
	"github.com/quantpipe/ta/indicator/trend"
	"github.com/quantpipe/ta/indicator/volatility"
)

// IndicatorConfig carries the period and multiplier parameters of the
// indicator library plus the overbought/oversold bands used for signal
// classification.
type IndicatorConfig struct {
	SMAPeriod int `yaml:"sma_period"`
	EMAPeriod int `yaml:"ema_period"`

	RSIPeriod     int     `yaml:"rsi_period"`
	RSIOverbought float64 `yaml:"rsi_overbought"`
	RSIOversold   float64 `yaml:"rsi_oversold"`

	MACDFastPeriod   int `yaml:"macd_fast_period"`
	MACDSlowPeriod   int `yaml:"macd_slow_period"`
	MACDSignalPeriod int `yaml:"macd_signal_period"`

	BollingerPeriod     int     `yaml:"bollinger_period"`
	BollingerMultiplier float64 `yaml:"bollinger_multiplier"`

	StochasticPeriod     int     `yaml:"stochastic_period"`
	StochasticOverbought float64 `yaml:"stochastic_overbought"`
	StochasticOversold   float64 `yaml:"stochastic_oversold"`

	ATRPeriod int `yaml:"atr_period"`
	ROCPeriod int `yaml:"roc_period"`

	APOFastPeriod int `yaml:"apo_fast_period"`
	APOSlowPeriod int `yaml:"apo_slow_period"`

	WilliamsRPeriod     int     `yaml:"williams_r_period"`
	WilliamsROverbought float64 `yaml:"williams_r_overbought"`
	WilliamsROversold   float64 `yaml:"williams_r_oversold"`

	CCIPeriod     int     `yaml:"cci_period"`
	CCIOverbought float64 `yaml:"cci_overbought"`
	CCIOversold   float64 `yaml:"cci_oversold"`
}

// DefaultConfig returns the conventional parameter set for every indicator.
func DefaultConfig() IndicatorConfig {
	return IndicatorConfig{
		SMAPeriod: trend.DefaultMovingAveragePeriod,
		EMAPeriod: trend.DefaultMovingAveragePeriod,

		RSIPeriod:     momentum.DefaultRSIPeriod,
		RSIOverbought: 70,
		RSIOversold:   30,

		MACDFastPeriod:   trend.DefaultMACDFastPeriod,
		MACDSlowPeriod:   trend.DefaultMACDSlowPeriod,
		MACDSignalPeriod: trend.DefaultMACDSignalPeriod,

		BollingerPeriod:     volatility.DefaultBollingerPeriod,
		BollingerMultiplier: volatility.DefaultBollingerMultiplier,

		StochasticPeriod:     momentum.DefaultStochasticPeriod,
		StochasticOverbought: 80,
		StochasticOversold:   20,

		ATRPeriod: volatility.DefaultATRPeriod,
		ROCPeriod: momentum.DefaultROCPeriod,

		APOFastPeriod: trend.DefaultAPOFastPeriod,
		APOSlowPeriod: trend.DefaultAPOSlowPeriod,

		WilliamsRPeriod:     momentum.DefaultWilliamsRPeriod,
		WilliamsROverbought: -20,
		WilliamsROversold:   -80,

		CCIPeriod:     momentum.DefaultCCIPeriod,
		CCIOverbought: 100,
		CCIOversold:   -100,
	}
}

// Validate checks that every period is positive, the Bollinger multiplier is
// positive, and each overbought band sits above its oversold band.
func (c IndicatorConfig) Validate() error {
	periods := map[string]int{
		"sma_period":         c.SMAPeriod,
		"ema_period":         c.EMAPeriod,
		"rsi_period":         c.RSIPeriod,
		"macd_fast_period":   c.MACDFastPeriod,
		"macd_slow_period":   c.MACDSlowPeriod,
		"macd_signal_period": c.MACDSignalPeriod,
		"bollinger_period":   c.BollingerPeriod,
		"stochastic_period":  c.StochasticPeriod,
		"atr_period":         c.ATRPeriod,
		"roc_period":         c.ROCPeriod,
		"apo_fast_period":    c.APOFastPeriod,
		"apo_slow_period":    c.APOSlowPeriod,
		"williams_r_period":  c.WilliamsRPeriod,
		"cci_period":         c.CCIPeriod,
	}
	for name, p := range periods {
		if p < 1 {
			return fmt.Errorf("%s must be at least 1, got %d", name, p)
		}
	}
	if c.BollingerMultiplier <= 0 {
		return fmt.Errorf("bollinger_multiplier must be positive, got %v", c.BollingerMultiplier)
	}
	bands := []struct {
		name        string
		over, under float64
	}{
		{"rsi", c.RSIOverbought, c.RSIOversold},
		{"stochastic", c.StochasticOverbought, c.StochasticOversold},
		{"williams_r", c.WilliamsROverbought, c.WilliamsROversold},
		{"cci", c.CCIOverbought, c.CCIOversold},
	}
	for _, b := range bands {
		if b.over <= b.under {
			return fmt.Errorf("%s overbought threshold must be greater than oversold", b.name)
		}
	}
	return nil
}

// FromYAML reads a YAML document and overlays it on the defaults, so a file
// only needs to name the parameters it changes. The merged configuration is
// validated before it is returned.
func FromYAML(r io.Reader) (IndicatorConfig, error) {
	cfg := DefaultConfig()
	raw, err := io.ReadAll(r)
	if err != nil {
		return IndicatorConfig{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return IndicatorConfig{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return IndicatorConfig{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
