package regime

import (
	"strings"
	"testing"

	"MarketPulse/internal/model"
)

func TestClassifyTrend_Boundaries(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		price float64
		sma   float64
		phase model.TrendPhase
	}{
		{100.01, 100, model.TrendExpansion},
		{100, 100, model.TrendContraction}, // equality is not expansion
		{99.99, 100, model.TrendContraction},
	}
	for _, tt := range tests {
		call := ClassifyTrend(tt.price, tt.sma, th)
		if call.Phase != tt.phase {
			t.Errorf("price=%.2f sma=%.2f: expected %s, got %s", tt.price, tt.sma, tt.phase, call.Phase)
		}
	}
}

func TestClassifyTrend_DescriptionNamesWindow(t *testing.T) {
	call := ClassifyTrend(120, 100, DefaultThresholds())
	if !strings.Contains(call.Description, "50-day") {
		t.Errorf("expected 50-day baseline in description, got %q", call.Description)
	}
}

func TestClassifySentiment_Boundaries(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		momentum float64
		zone     model.SentimentZone
	}{
		{70.01, model.SentimentHeated},
		{70.0, model.SentimentStable}, // strict upper bound
		{50, model.SentimentStable},
		{30.0, model.SentimentStable}, // strict lower bound
		{29.99, model.SentimentDepressed},
		{0, model.SentimentDepressed},
		{100, model.SentimentHeated},
	}
	for _, tt := range tests {
		call := ClassifySentiment(tt.momentum, th)
		if call.Zone != tt.zone {
			t.Errorf("momentum=%.2f: expected %s, got %s", tt.momentum, tt.zone, call.Zone)
		}
	}
}

func TestClassifyRisk_Boundaries(t *testing.T) {
	th := DefaultThresholds()
	tests := []struct {
		volatility float64
		level      model.RiskLevel
	}{
		{2.5001, model.RiskHighVolatility},
		{2.5, model.RiskStable}, // threshold itself is stable
		{0, model.RiskStable},
	}
	for _, tt := range tests {
		call := ClassifyRisk(tt.volatility, th)
		if call.Level != tt.level {
			t.Errorf("volatility=%.4f: expected %s, got %s", tt.volatility, tt.level, call.Level)
		}
	}
}

func TestTones_PureFunctionOfLabel(t *testing.T) {
	th := DefaultThresholds()
	if tone := ClassifyTrend(120, 100, th).Tone; tone != model.TonePositive {
		t.Errorf("expansion tone: got %s", tone)
	}
	if tone := ClassifyTrend(80, 100, th).Tone; tone != model.ToneNegative {
		t.Errorf("contraction tone: got %s", tone)
	}
	if tone := ClassifySentiment(80, th).Tone; tone != model.ToneWarning {
		t.Errorf("heated tone: got %s", tone)
	}
	if tone := ClassifySentiment(20, th).Tone; tone != model.TonePositive {
		t.Errorf("depressed tone: got %s", tone)
	}
	if tone := ClassifySentiment(50, th).Tone; tone != model.ToneNeutral {
		t.Errorf("stable sentiment tone: got %s", tone)
	}
	if tone := ClassifyRisk(5, th).Tone; tone != model.ToneNegative {
		t.Errorf("high volatility tone: got %s", tone)
	}
	if tone := ClassifyRisk(1, th).Tone; tone != model.ToneNeutral {
		t.Errorf("stable risk tone: got %s", tone)
	}
}

func TestEvaluate_IndependentCalls(t *testing.T) {
	a := Evaluate(100, 100, 50, 0, DefaultThresholds())
	if a.Trend.Phase != model.TrendContraction {
		t.Errorf("expected CONTRACTION, got %s", a.Trend.Phase)
	}
	if a.Sentiment.Zone != model.SentimentStable {
		t.Errorf("expected STABLE sentiment, got %s", a.Sentiment.Zone)
	}
	if a.Risk.Level != model.RiskStable {
		t.Errorf("expected STABLE risk, got %s", a.Risk.Level)
	}
}
