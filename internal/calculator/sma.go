package calculator

import "MarketPulse/internal/model"

// RollingSMA computes the simple moving average of close prices over the
// given window. The result is aligned index-for-index with bars: position
// i holds the mean of closes [i-window+1, i] and is undefined while fewer
// than window closes exist behind it.
//
// Non-positive closes are out of contract; any window touching one yields
// an undefined reading instead of a poisoned number.
func RollingSMA(bars []model.OHLCV, window int) []model.Reading {
	out := make([]model.Reading, len(bars))
	if window <= 0 {
		return out
	}
	for i := window - 1; i < len(bars); i++ {
		sum := 0.0
		ok := true
		for j := i - window + 1; j <= i; j++ {
			if bars[j].Close <= 0 {
				ok = false
				break
			}
			sum += bars[j].Close
		}
		if ok {
			out[i] = model.Defined(sum / float64(window))
		}
	}
	return out
}
