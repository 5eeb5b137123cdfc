package model

// Reading is an optional indicator value. Positions where a rolling window
// lacks history carry Valid=false rather than a sentinel number, so
// consumers must handle the "not yet computed" state explicitly.
type Reading struct {
	Value float64
	Valid bool
}

// Defined wraps a computed value in a valid reading.
func Defined(v float64) Reading {
	return Reading{Value: v, Valid: true}
}

// Last returns the final reading of a derived series, or an undefined
// reading when the series is empty.
func Last(series []Reading) Reading {
	if len(series) == 0 {
		return Reading{}
	}
	return series[len(series)-1]
}

// IndicatorSeries holds the derived series, each aligned index-for-index
// with the bars it was computed from.
type IndicatorSeries struct {
	SMA        []Reading
	RSI        []Reading
	Volatility []Reading
}
