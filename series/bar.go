package series

// Bar is one OHLCV sample as produced by an external data source. The
// indicator functions never consume bars directly; FromBars splits a bar
// slice into the independent price/volume series they operate on.
type Bar struct {
	Time   int64   `json:"time"`
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume float64 `json:"volume"`
}

// FromBars splits an ordered bar slice into its five column series. The bars
// are assumed chronological, oldest first; order and count are preserved.
func FromBars(bars []Bar) (open, high, low, close, volume Series) {
	n := len(bars)
	open = make(Series, n)
	high = make(Series, n)
	low = make(Series, n)
	close = make(Series, n)
	volume = make(Series, n)
	for i, b := range bars {
		open[i] = b.Open
		high[i] = b.High
		low[i] = b.Low
		close[i] = b.Close
		volume[i] = b.Volume
	}
	return open, high, low, close, volume
}
