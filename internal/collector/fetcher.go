package collector

import (
	"fmt"

	"MarketPulse/internal/model"
)

// Horizon is the analysis lookback requested from the data source.
type Horizon string

const (
	Horizon3Mo Horizon = "3mo"
	Horizon6Mo Horizon = "6mo"
	Horizon1Y  Horizon = "1y"
	Horizon5Y  Horizon = "5y"
)

// ParseHorizon validates a configured horizon string.
func ParseHorizon(s string) (Horizon, error) {
	switch Horizon(s) {
	case Horizon3Mo, Horizon6Mo, Horizon1Y, Horizon5Y:
		return Horizon(s), nil
	default:
		return "", fmt.Errorf("unknown horizon %q (want 3mo, 6mo, 1y or 5y)", s)
	}
}

// Fetcher defines the interface for fetching market data.
type Fetcher interface {
	FetchDailyBars(symbol string, horizon Horizon) ([]model.OHLCV, error)
	FetchMeta(symbol string) (model.AssetMeta, error)
	Name() string
}
