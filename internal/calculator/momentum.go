package calculator

import "MarketPulse/internal/model"

// MomentumIndex computes the RSI-style momentum oscillator from plain
// rolling means of per-step gains and losses over the given window.
// Position i needs window deltas behind it, so readings start at i=window.
// Values are clamped to [0,100].
//
// Division boundary: zero average loss with positive average gain reads
// 100; a fully flat window (zero gain and zero loss) reads 50. The rule is
// explicit so the indicator never produces Inf or NaN.
func MomentumIndex(bars []model.OHLCV, window int) []model.Reading {
	out := make([]model.Reading, len(bars))
	if window <= 0 {
		return out
	}
	for i := window; i < len(bars); i++ {
		var gains, losses float64
		ok := true
		for j := i - window + 1; j <= i; j++ {
			if bars[j].Close <= 0 || bars[j-1].Close <= 0 {
				ok = false
				break
			}
			change := bars[j].Close - bars[j-1].Close
			if change > 0 {
				gains += change
			} else {
				losses -= change
			}
		}
		if !ok {
			continue
		}
		avgGain := gains / float64(window)
		avgLoss := losses / float64(window)

		var index float64
		switch {
		case avgGain == 0 && avgLoss == 0:
			index = 50.0
		case avgLoss == 0:
			index = 100.0
		default:
			rs := avgGain / avgLoss
			index = 100.0 - 100.0/(1.0+rs)
		}
		if index < 0 {
			index = 0
		}
		if index > 100 {
			index = 100
		}
		out[i] = model.Defined(index)
	}
	return out
}
