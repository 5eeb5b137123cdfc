package notifier

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"MarketPulse/internal/collector"
	"MarketPulse/internal/model"
	"MarketPulse/internal/news"
)

// FormatReport renders the refresh snapshot into a Telegram HTML message:
// header metrics, then the three regime calls (or the insufficient-data
// warning when classification was skipped).
func FormatReport(snap *collector.Snapshot) string {
	var b strings.Builder

	series := snap.Series
	name := series.Meta.LongName
	if name == "" {
		name = series.Symbol
	}

	b.WriteString(fmt.Sprintf("🏛 <b>%s Strategic Overview</b> | %s\n", series.Symbol, snap.Latest.Time.Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("%s | Sector: %s\n\n", name, series.Meta.Sector))

	b.WriteString(fmt.Sprintf("Asset Price: $%s", humanize.CommafWithDigits(snap.Latest.Close, 2)))
	if snap.PctChange.Valid {
		b.WriteString(fmt.Sprintf(" (%+.2f%%)", snap.PctChange.Value))
	}
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Market Cap: %s | Beta: %.2f\n", FormatMarketCap(series.Meta.MarketCap), series.Meta.Beta))
	if vol := model.Last(snap.Indicators.Volatility); vol.Valid {
		b.WriteString(fmt.Sprintf("Volatility (%dd): %.2f%%\n", snap.Windows.Volatility, vol.Value))
	}

	b.WriteString("\n🧩 <b>Strategic Context Analysis</b>\n")
	if snap.Assessment == nil {
		b.WriteString("⚠️ Insufficient data for full trend analysis.\n")
		return b.String()
	}

	a := snap.Assessment
	b.WriteString(fmt.Sprintf("\nStructural Trend: <b>%s</b>\n%s\n", a.Trend.Phase, a.Trend.Description))
	b.WriteString(fmt.Sprintf("\nMarket Sentiment: <b>%s</b>\n%s\n", a.Sentiment.Zone, a.Sentiment.Description))
	b.WriteString(fmt.Sprintf("\nVolatility Profile: <b>%s</b>\n%s\n", a.Risk.Level, a.Risk.Description))

	return b.String()
}

// FormatHeadlines renders the filtered news list, or a placeholder when
// nothing matched.
func FormatHeadlines(symbol string, items []news.Headline) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("📰 <b>Contextual Drivers: %s</b>\n\n", symbol))
	if len(items) == 0 {
		b.WriteString("No specific news drivers found.\n")
		return b.String()
	}
	for _, item := range items {
		b.WriteString(fmt.Sprintf("• <a href=\"%s\">%s</a>\n  %s • %s\n", item.Link, item.Title, item.Source, item.Published))
	}
	return b.String()
}

// FormatMarketCap abbreviates a market cap the way the dashboard always
// has: $1.23T / $4.56B / $7.89M, comma-grouped below a million, N/A when
// unknown.
func FormatMarketCap(v float64) string {
	switch {
	case v <= 0:
		return "N/A"
	case v >= 1e12:
		return fmt.Sprintf("$%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("$%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("$%.2fM", v/1e6)
	default:
		return "$" + humanize.CommafWithDigits(v, 2)
	}
}
