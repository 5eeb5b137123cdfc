package calculator

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"MarketPulse/internal/model"
)

func barsFromCloses(closes []float64) []model.OHLCV {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c * 1.01,
			Low:    c * 0.99,
			Close:  c,
			Volume: 1000,
		}
	}
	return bars
}

func constantCloses(v float64, n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = v
	}
	return closes
}

func linearCloses(from, step float64, n int) []float64 {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = from + step*float64(i)
	}
	return closes
}

func TestRollingSMA_AlignedWindow(t *testing.T) {
	bars := barsFromCloses([]float64{1, 2, 3, 4, 5})
	sma := RollingSMA(bars, 3)

	require.Len(t, sma, 5)
	require.False(t, sma[0].Valid)
	require.False(t, sma[1].Valid)
	require.Equal(t, model.Defined(2), sma[2])
	require.Equal(t, model.Defined(3), sma[3])
	require.Equal(t, model.Defined(4), sma[4])
}

func TestRollingSMA_ShortSeriesAllUndefined(t *testing.T) {
	bars := barsFromCloses(linearCloses(100, 1, 49))
	for _, r := range RollingSMA(bars, 50) {
		require.False(t, r.Valid)
	}
}

func TestMomentumIndex_MonotonicSeries(t *testing.T) {
	up := MomentumIndex(barsFromCloses(linearCloses(100, 1, 20)), 14)
	down := MomentumIndex(barsFromCloses(linearCloses(200, -1, 20)), 14)

	for i := 0; i < 14; i++ {
		require.False(t, up[i].Valid, "position %d needs 14 deltas", i)
		require.False(t, down[i].Valid, "position %d needs 14 deltas", i)
	}
	for i := 14; i < 20; i++ {
		require.Equal(t, model.Defined(100), up[i], "all-gain window at %d", i)
		require.Equal(t, model.Defined(0), down[i], "all-loss window at %d", i)
	}
}

func TestMomentumIndex_FlatSeriesReadsFifty(t *testing.T) {
	rsi := MomentumIndex(barsFromCloses(constantCloses(100, 30)), 14)
	for i := 14; i < 30; i++ {
		require.Equal(t, model.Defined(50), rsi[i])
	}
}

func TestMomentumIndex_ShortSeriesAllUndefined(t *testing.T) {
	// window+1 bars is the minimum; one fewer leaves everything undefined.
	rsi := MomentumIndex(barsFromCloses(linearCloses(100, 1, 14)), 14)
	for _, r := range rsi {
		require.False(t, r.Valid)
	}
}

func TestRealizedVolatility_HandComputed(t *testing.T) {
	// Returns +20% then -20%; sample stddev = sqrt(0.08) = 0.282842...
	vol := RealizedVolatility(barsFromCloses([]float64{100, 120, 96}), 2)

	require.False(t, vol[0].Valid)
	require.False(t, vol[1].Valid)
	require.True(t, vol[2].Valid)
	require.InDelta(t, 28.284271247, vol[2].Value, 1e-6)
}

func TestRealizedVolatility_ConstantSeriesIsZero(t *testing.T) {
	vol := RealizedVolatility(barsFromCloses(constantCloses(100, 30)), 14)
	for i := 0; i < 14; i++ {
		require.False(t, vol[i].Valid)
	}
	for i := 14; i < 30; i++ {
		require.Equal(t, model.Defined(0), vol[i])
	}
}

func TestDegenerateClose_InvalidatesTouchedWindows(t *testing.T) {
	closes := linearCloses(100, 1, 12)
	closes[5] = 0 // out-of-contract bar
	bars := barsFromCloses(closes)

	sma := RollingSMA(bars, 3)
	require.False(t, sma[5].Valid)
	require.False(t, sma[6].Valid)
	require.False(t, sma[7].Valid)
	require.True(t, sma[4].Valid)
	require.True(t, sma[8].Valid)

	rsi := MomentumIndex(bars, 3)
	vol := RealizedVolatility(bars, 3)
	for i := 3; i < len(bars); i++ {
		touched := i >= 5 && i <= 8 // delta windows spanning the bad close
		require.Equal(t, !touched, rsi[i].Valid, "rsi position %d", i)
		require.Equal(t, !touched, vol[i].Valid, "vol position %d", i)
	}
}

func TestCompute_Idempotent(t *testing.T) {
	series := &model.PriceSeries{
		Symbol: "NVDA",
		Bars:   barsFromCloses(linearCloses(100, 0.7, 80)),
	}
	first := Compute(series, DefaultWindows())
	second := Compute(series, DefaultWindows())
	require.Equal(t, first, second)
}
