package model

import "time"

// OHLCV represents a single daily candlestick bar.
type OHLCV struct {
	Time   time.Time `json:"time"`
	Open   float64   `json:"open"`
	High   float64   `json:"high"`
	Low    float64   `json:"low"`
	Close  float64   `json:"close"`
	Volume float64   `json:"volume"`
}

// AssetMeta carries static instrument metadata. It passes through to
// display untouched by the analysis core.
type AssetMeta struct {
	LongName  string  `json:"long_name"`
	Sector    string  `json:"sector"`
	MarketCap float64 `json:"market_cap"` // 0 means unknown
	Beta      float64 `json:"beta"`       // 1.0 when the source has no value
}

// PriceSeries holds the raw daily price data for one instrument,
// ascending by timestamp. It is never mutated after fetch.
type PriceSeries struct {
	Symbol    string    `json:"symbol"`
	Bars      []OHLCV   `json:"bars"`
	Meta      AssetMeta `json:"meta"`
	FetchedAt time.Time `json:"fetched_at"`
}
