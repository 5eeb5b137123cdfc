// Package chart renders the refresh snapshot as a self-contained HTML
// page: a candlestick panel with the trend baseline overlaid, and a
// momentum panel with the fixed 30/70 reference lines.
package chart

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"MarketPulse/internal/model"
	"MarketPulse/internal/regime"
)

// Render writes the chart page to path.
func Render(path string, series *model.PriceSeries, ind *model.IndicatorSeries, th regime.Thresholds) error {
	if len(series.Bars) == 0 {
		return fmt.Errorf("render chart: empty series")
	}

	dates := make([]string, len(series.Bars))
	klineData := make([]opts.KlineData, len(series.Bars))
	smaData := make([]opts.LineData, len(series.Bars))
	rsiData := make([]opts.LineData, len(series.Bars))

	for i, bar := range series.Bars {
		dates[i] = bar.Time.Format("2006-01-02")
		klineData[i] = opts.KlineData{Value: [4]float64{bar.Open, bar.Close, bar.Low, bar.High}}
		smaData[i] = lineValue(readingAt(ind.SMA, i))
		rsiData[i] = lineValue(readingAt(ind.RSI, i))
	}

	kline := charts.NewKLine()
	kline.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("%s Price vs Trend", series.Symbol)}),
		charts.WithYAxisOpts(opts.YAxis{Scale: opts.Bool(true)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)
	kline.SetXAxis(dates).AddSeries("Price", klineData)

	baseline := charts.NewLine()
	baseline.SetXAxis(dates).AddSeries(
		fmt.Sprintf("%d-Day Trend", th.TrendWindow),
		smaData,
		charts.WithLineChartOpts(opts.LineChart{Smooth: opts.Bool(true)}),
	)
	kline.Overlap(baseline)

	momentum := charts.NewLine()
	momentum.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Sentiment Index (RSI)"}),
		charts.WithYAxisOpts(opts.YAxis{Min: 0, Max: 100}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
	)
	momentum.SetXAxis(dates).AddSeries(
		"Momentum",
		rsiData,
		charts.WithMarkLineNameYAxisItemOpts(
			opts.MarkLineNameYAxisItem{Name: "Heated", YAxis: th.HeatedAbove},
			opts.MarkLineNameYAxisItem{Name: "Depressed", YAxis: th.DepressedBelow},
		),
	)

	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(kline, momentum)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create chart dir: %w", err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}
	defer f.Close()
	if err := page.Render(f); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}

// lineValue maps an undefined reading to the echarts null marker so the
// line simply starts where the window fills, instead of plotting zeros.
func lineValue(r model.Reading) opts.LineData {
	if !r.Valid {
		return opts.LineData{Value: "-"}
	}
	return opts.LineData{Value: r.Value}
}

func readingAt(series []model.Reading, i int) model.Reading {
	if i < 0 || i >= len(series) {
		return model.Reading{}
	}
	return series[i]
}
