package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"MarketPulse/internal/model"
)

func testSeries(fetchedAt time.Time) *model.PriceSeries {
	return &model.PriceSeries{
		Symbol: "^GSPC",
		Bars: []model.OHLCV{
			{Time: time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC), Open: 99, High: 101, Low: 98, Close: 100},
		},
		Meta:      model.AssetMeta{Sector: "Index", Beta: 1.0},
		FetchedAt: fetchedAt,
	}
}

func TestSeriesCache_RoundTrip(t *testing.T) {
	c := New(t.TempDir(), time.Hour)

	_, ok := c.Get("^GSPC", "6mo")
	require.False(t, ok, "empty cache must miss")

	require.NoError(t, c.Put(testSeries(time.Now()), "6mo"))

	got, ok := c.Get("^GSPC", "6mo")
	require.True(t, ok)
	require.Equal(t, "^GSPC", got.Symbol)
	require.Len(t, got.Bars, 1)
	require.Equal(t, 100.0, got.Bars[0].Close)
}

func TestSeriesCache_ExpiredEntryMisses(t *testing.T) {
	c := New(t.TempDir(), time.Hour)
	require.NoError(t, c.Put(testSeries(time.Now().Add(-2*time.Hour)), "6mo"))

	_, ok := c.Get("^GSPC", "6mo")
	require.False(t, ok, "stale entry must miss")
}

func TestSeriesCache_HorizonsAreSeparate(t *testing.T) {
	c := New(t.TempDir(), time.Hour)
	require.NoError(t, c.Put(testSeries(time.Now()), "6mo"))

	_, ok := c.Get("^GSPC", "1y")
	require.False(t, ok)
}
