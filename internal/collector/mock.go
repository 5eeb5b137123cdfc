package collector

import (
	"time"

	"MarketPulse/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Bars []model.OHLCV
	Meta model.AssetMeta
	Err  error
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, _ Horizon) ([]model.OHLCV, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	return m.Bars, nil
}

func (m *MockFetcher) FetchMeta(symbol string) (model.AssetMeta, error) {
	if m.Meta == (model.AssetMeta{}) {
		return model.AssetMeta{LongName: symbol, Sector: "Diversified", Beta: 1.0}, nil
	}
	return m.Meta, nil
}

// GenerateBars builds a daily series from explicit closes, one bar per
// weekday-agnostic calendar day.
func GenerateBars(closes []float64) []model.OHLCV {
	start := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	bars := make([]model.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = model.OHLCV{
			Time:   start.AddDate(0, 0, i),
			Open:   c * 0.999,
			High:   c * 1.005,
			Low:    c * 0.995,
			Close:  c,
			Volume: 1_000_000,
		}
	}
	return bars
}
