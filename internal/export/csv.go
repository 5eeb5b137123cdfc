// Package export serializes a price series and its indicators to a
// tabular text artifact for spreadsheet analysis. It is a pass-through:
// nothing here computes.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"MarketPulse/internal/model"
)

// BuildIndicatorCSV renders the bars and their aligned readings as
// comma-separated text, one row per bar, header first. Undefined readings
// render as empty cells, never as zero.
func BuildIndicatorCSV(series *model.PriceSeries, ind *model.IndicatorSeries) string {
	var b strings.Builder
	b.WriteString("timestamp,open,high,low,close,sma,rsi,volatility\n")
	for i, bar := range series.Bars {
		b.WriteString(bar.Time.Format("2006-01-02"))
		b.WriteByte(',')
		b.WriteString(formatPrice(bar.Open))
		b.WriteByte(',')
		b.WriteString(formatPrice(bar.High))
		b.WriteByte(',')
		b.WriteString(formatPrice(bar.Low))
		b.WriteByte(',')
		b.WriteString(formatPrice(bar.Close))
		b.WriteByte(',')
		b.WriteString(formatReading(readingAt(ind.SMA, i)))
		b.WriteByte(',')
		b.WriteString(formatReading(readingAt(ind.RSI, i)))
		b.WriteByte(',')
		b.WriteString(formatReading(readingAt(ind.Volatility, i)))
		b.WriteByte('\n')
	}
	return b.String()
}

// WriteFile renders the CSV and writes it to path, creating parent
// directories on demand.
func WriteFile(path string, series *model.PriceSeries, ind *model.IndicatorSeries) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create export dir: %w", err)
		}
	}
	return os.WriteFile(path, []byte(BuildIndicatorCSV(series, ind)), 0644)
}

func readingAt(series []model.Reading, i int) model.Reading {
	if i < 0 || i >= len(series) {
		return model.Reading{}
	}
	return series[i]
}

func formatPrice(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatReading(r model.Reading) string {
	if !r.Valid {
		return ""
	}
	return strconv.FormatFloat(r.Value, 'f', 4, 64)
}
