package model

// TrendPhase classifies the latest price against its long baseline.
type TrendPhase string

const (
	TrendExpansion   TrendPhase = "EXPANSION"
	TrendContraction TrendPhase = "CONTRACTION"
)

// SentimentZone classifies the momentum index reading.
type SentimentZone string

const (
	SentimentHeated    SentimentZone = "HEATED"
	SentimentDepressed SentimentZone = "DEPRESSED"
	SentimentStable    SentimentZone = "STABLE"
)

// RiskLevel classifies realized volatility.
type RiskLevel string

const (
	RiskHighVolatility RiskLevel = "HIGH_VOLATILITY"
	RiskStable         RiskLevel = "STABLE"
)

// Tone is a severity-style color hint for rendering a regime call.
// It is a pure function of the label, never of the underlying numbers.
type Tone string

const (
	TonePositive Tone = "positive"
	ToneNegative Tone = "negative"
	ToneWarning  Tone = "warning"
	ToneNeutral  Tone = "neutral"
)

// TrendCall is the structural trend assessment with its display text.
type TrendCall struct {
	Phase       TrendPhase
	Description string
	Tone        Tone
}

// SentimentCall is the sentiment assessment with its display text.
type SentimentCall struct {
	Zone        SentimentZone
	Description string
	Tone        Tone
}

// RiskCall is the volatility-risk assessment with its display text.
type RiskCall struct {
	Level       RiskLevel
	Description string
	Tone        Tone
}

// Assessment is the full market-state classification for the latest bar.
// The three calls are independent of each other.
type Assessment struct {
	Trend     TrendCall
	Sentiment SentimentCall
	Risk      RiskCall
}
