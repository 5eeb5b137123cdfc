package recorder

import "MarketPulse/internal/model"

// SnapshotRecord is one classified refresh of one instrument.
type SnapshotRecord struct {
	Symbol     string
	Price      float64
	PctChange  model.Reading
	SMA        model.Reading
	RSI        model.Reading
	Volatility model.Reading
	Trend      string
	Sentiment  string
	Risk       string
	BarCount   int
}

// RefreshEvent records a refresh that produced no classification.
type RefreshEvent struct {
	Symbol string
	Kind   string // "INSUFFICIENT_HISTORY" or "FETCH_ERROR"
	Detail string
}

// Recorder persists refresh outcomes.
type Recorder interface {
	RecordSnapshot(*SnapshotRecord) error
	RecordEvent(*RefreshEvent) error
	Close() error
}
