package notifier

import (
	"strings"
	"testing"

	"MarketPulse/internal/calculator"
	"MarketPulse/internal/collector"
	"MarketPulse/internal/model"
	"MarketPulse/internal/regime"
)

func TestFormatMarketCap(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "N/A"},
		{-1, "N/A"},
		{3.21e12, "$3.21T"},
		{1.5e9, "$1.50B"},
		{250e6, "$250.00M"},
		{123456.78, "$123,456.78"},
	}
	for _, tt := range tests {
		if got := FormatMarketCap(tt.in); got != tt.want {
			t.Errorf("FormatMarketCap(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatReport_InsufficientHistory(t *testing.T) {
	bars := collector.GenerateBars([]float64{100, 101, 102})
	snap := &collector.Snapshot{
		Series:     &model.PriceSeries{Symbol: "TEST", Bars: bars, Meta: model.AssetMeta{Sector: "Tech", Beta: 1.0}},
		Indicators: &model.IndicatorSeries{},
		Latest:     bars[len(bars)-1],
		Windows:    calculator.DefaultWindows(),
	}
	report := FormatReport(snap)
	if !strings.Contains(report, "Insufficient data") {
		t.Errorf("expected insufficient-data warning, got:\n%s", report)
	}
}

func TestFormatReport_FullAssessment(t *testing.T) {
	closes := make([]float64, 60)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	col := collector.NewCollector(
		&collector.MockFetcher{Bars: collector.GenerateBars(closes)},
		"NVDA", collector.Horizon6Mo,
		calculator.DefaultWindows(), regime.DefaultThresholds(), nil,
	)
	snap, err := col.Collect()
	if err != nil {
		t.Fatal(err)
	}
	report := FormatReport(snap)
	for _, want := range []string{"EXPANSION", "HEATED", "Structural Trend", "Volatility Profile"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}
