package calculator

import "MarketPulse/internal/model"

// Windows configures the rolling windows of the indicator engine.
type Windows struct {
	Trend      int
	Momentum   int
	Volatility int
}

// DefaultWindows returns the standard 50/14/14 configuration.
func DefaultWindows() Windows {
	return Windows{Trend: 50, Momentum: 14, Volatility: 14}
}

// Compute derives the full indicator set for a price series. It is a pure
// function of its input: the same series always yields identical output.
func Compute(series *model.PriceSeries, w Windows) *model.IndicatorSeries {
	return &model.IndicatorSeries{
		SMA:        RollingSMA(series.Bars, w.Trend),
		RSI:        MomentumIndex(series.Bars, w.Momentum),
		Volatility: RealizedVolatility(series.Bars, w.Volatility),
	}
}
