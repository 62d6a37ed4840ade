// Package series defines the canonical ordered numeric sequence consumed by
// every indicator, together with the adapters that normalize common input
// representations (numeric slices, decimal prices, OHLCV bars) into it.
// Adaptation happens once at the boundary; downstream code never branches on
// the input representation.
package series

import (
	"errors"
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// Shared validation errors. Indicator packages wrap these with context, so
// callers can still match them with errors.Is.
var (
	ErrEmptySeries       = errors.New("series is empty")
	ErrLengthMismatch    = errors.New("series lengths do not match")
	ErrInvalidPeriod     = errors.New("period must be at least 1")
	ErrInvalidMultiplier = errors.New("multiplier must be positive")
)

// Series is an ordered sequence of float64 samples, oldest first. All
// indicator and rolling-statistic functions consume and produce Series.
// Positions without enough history carry the undefined marker (NaN), never a
// shortened array.
type Series []float64

// Undefined returns the marker used for warm-up positions.
func Undefined() float64 {
	return math.NaN()
}

// IsDefined reports whether a sample carries a real value rather than the
// warm-up marker.
func IsDefined(v float64) bool {
	return !math.IsNaN(v)
}

// NewUndefined returns a Series of length n with every position undefined.
func NewUndefined(n int) Series {
	s := make(Series, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}

// Number covers the ordered-sequence element types the adapter accepts.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// FromNumbers materializes any common numeric slice as a Series, preserving
// element order and count exactly. The input is copied; the returned Series
// never aliases caller memory.
func FromNumbers[T Number](values []T) Series {
	s := make(Series, len(values))
	for i, v := range values {
		s[i] = float64(v)
	}
	return s
}

// FromFloat64s copies a float64 slice into a Series.
func FromFloat64s(values []float64) Series {
	s := make(Series, len(values))
	copy(s, values)
	return s
}

// FromDecimals converts a decimal price slice into a Series.
func FromDecimals(values []decimal.Decimal) Series {
	s := make(Series, len(values))
	for i, v := range values {
		s[i], _ = v.Float64()
	}
	return s
}

// Copy returns a defensive copy of the series.
func (s Series) Copy() Series {
	if s == nil {
		return nil
	}
	dst := make(Series, len(s))
	copy(dst, s)
	return dst
}

// Last returns the most recent defined sample, scanning backwards past any
// trailing undefined positions. ok is false when no sample is defined.
func (s Series) Last() (v float64, ok bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if IsDefined(s[i]) {
			return s[i], true
		}
	}
	return 0, false
}

// ValidatePeriod rejects non-positive window periods.
func ValidatePeriod(period int) error {
	if period < 1 {
		return fmt.Errorf("%w: got %d", ErrInvalidPeriod, period)
	}
	return nil
}

// ValidateEqualLen rejects empty inputs and length mismatches across the
// series handed to a multi-series indicator. Validation happens once at the
// boundary; computation never starts on bad shape.
func ValidateEqualLen(first Series, rest ...Series) error {
	if len(first) == 0 {
		return ErrEmptySeries
	}
	for _, s := range rest {
		if len(s) != len(first) {
			return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(first), len(s))
		}
	}
	return nil
}

// TypicalPrice returns (high + low + close) / 3 for every bar.
func TypicalPrice(high, low, close Series) (Series, error) {
	if err := ValidateEqualLen(high, low, close); err != nil {
		return nil, fmt.Errorf("typical price: %w", err)
	}
	tp := make(Series, len(close))
	for i := range tp {
		tp[i] = (high[i] + low[i] + close[i]) / 3
	}
	return tp, nil
}
