package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"MarketPulse/internal/calculator"
	"MarketPulse/internal/model"
)

func testSeries(n int) *model.PriceSeries {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, n)
	for i := range bars {
		c := 100 + float64(i)
		bars[i] = model.OHLCV{Time: start.AddDate(0, 0, i), Open: c, High: c + 1, Low: c - 1, Close: c}
	}
	return &model.PriceSeries{Symbol: "TEST", Bars: bars}
}

func TestBuildIndicatorCSV(t *testing.T) {
	series := testSeries(6)
	ind := calculator.Compute(series, calculator.Windows{Trend: 3, Momentum: 3, Volatility: 3})

	out := BuildIndicatorCSV(series, ind)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Equal(t, "timestamp,open,high,low,close,sma,rsi,volatility", lines[0])
	require.Len(t, lines, 7) // header + one row per bar

	// First row: no rolling window has history yet, indicator cells empty.
	require.Equal(t, "2024-03-01,100,101,99,100,,,", lines[1])

	// Third row (index 2): SMA(3) defined, momentum/volatility still not.
	require.True(t, strings.HasPrefix(lines[3], "2024-03-03,102,103,101,102,101.0000,"))
	require.True(t, strings.HasSuffix(lines[3], ",,"), "rsi and volatility cells must be empty: %q", lines[3])

	// Fourth row: all three defined, rising series pegs momentum at 100.
	require.Equal(t, "2024-03-04,103,104,102,103,102.0000,100.0000,", lines[4][:strings.LastIndex(lines[4], ",")+1])
	require.NotEqual(t, byte(','), lines[4][len(lines[4])-1], "volatility cell must be populated")
}

func TestBuildIndicatorCSV_MisalignedIndicatorsSafe(t *testing.T) {
	series := testSeries(3)
	out := BuildIndicatorCSV(series, &model.IndicatorSeries{})
	require.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 4)
}
