package calculator

import (
	"math"

	"MarketPulse/internal/model"
)

// RealizedVolatility computes the trailing standard deviation of
// period-over-period returns, expressed in percent. The deviation uses the
// sample (n-1) denominator; on short windows that differs visibly from the
// population form, so the choice is fixed here. Position i needs window
// returns behind it, so readings start at i=window.
func RealizedVolatility(bars []model.OHLCV, window int) []model.Reading {
	out := make([]model.Reading, len(bars))
	if window <= 1 {
		return out
	}

	returns := make([]model.Reading, len(bars))
	for i := 1; i < len(bars); i++ {
		prev, cur := bars[i-1].Close, bars[i].Close
		if prev <= 0 || cur <= 0 {
			continue
		}
		returns[i] = model.Defined(cur/prev - 1)
	}

	for i := window; i < len(bars); i++ {
		mean := 0.0
		ok := true
		for j := i - window + 1; j <= i; j++ {
			if !returns[j].Valid {
				ok = false
				break
			}
			mean += returns[j].Value
		}
		if !ok {
			continue
		}
		mean /= float64(window)

		variance := 0.0
		for j := i - window + 1; j <= i; j++ {
			d := returns[j].Value - mean
			variance += d * d
		}
		variance /= float64(window - 1)

		out[i] = model.Defined(math.Sqrt(variance) * 100)
	}
	return out
}
