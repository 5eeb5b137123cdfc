package collector

import (
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"MarketPulse/internal/cache"
	"MarketPulse/internal/calculator"
	"MarketPulse/internal/model"
	"MarketPulse/internal/regime"
)

// ErrNoData is returned when the source yields an empty series.
var ErrNoData = errors.New("no price data returned")

// Snapshot bundles everything one refresh produces. Assessment is nil when
// history is insufficient for classification; that is a normal state the
// presentation layer reports as a warning, not an error.
type Snapshot struct {
	Series     *model.PriceSeries
	Indicators *model.IndicatorSeries
	Assessment *model.Assessment
	Latest     model.OHLCV
	PctChange  model.Reading // vs previous close
	Windows    calculator.Windows
}

// Collector orchestrates fetching, indicator computation and regime
// classification for one instrument.
type Collector struct {
	Fetcher    Fetcher
	Symbol     string
	Horizon    Horizon
	Windows    calculator.Windows
	Thresholds regime.Thresholds
	Cache      *cache.SeriesCache // optional
}

// NewCollector creates a Collector. cache may be nil.
func NewCollector(fetcher Fetcher, symbol string, horizon Horizon, w calculator.Windows, th regime.Thresholds, c *cache.SeriesCache) *Collector {
	return &Collector{
		Fetcher:    fetcher,
		Symbol:     symbol,
		Horizon:    horizon,
		Windows:    w,
		Thresholds: th,
		Cache:      c,
	}
}

// Collect fetches the series, computes the indicator set and, when enough
// history exists, classifies the latest bar.
func (c *Collector) Collect() (*Snapshot, error) {
	series, err := c.fetchSeries()
	if err != nil {
		return nil, err
	}
	if len(series.Bars) == 0 {
		return nil, ErrNoData
	}

	ind := calculator.Compute(series, c.Windows)
	latest := series.Bars[len(series.Bars)-1]

	snap := &Snapshot{
		Series:     series,
		Indicators: ind,
		Latest:     latest,
		Windows:    c.Windows,
	}

	if n := len(series.Bars); n >= 2 && series.Bars[n-2].Close > 0 {
		prev := series.Bars[n-2].Close
		snap.PctChange = model.Defined((latest.Close - prev) / prev * 100)
	}

	sma := model.Last(ind.SMA)
	rsi := model.Last(ind.RSI)
	vol := model.Last(ind.Volatility)
	if len(series.Bars) >= c.Thresholds.TrendWindow && sma.Valid && rsi.Valid && vol.Valid {
		snap.Assessment = regime.Evaluate(latest.Close, sma.Value, rsi.Value, vol.Value, c.Thresholds)
	}
	return snap, nil
}

func (c *Collector) fetchSeries() (*model.PriceSeries, error) {
	if c.Cache != nil {
		if series, ok := c.Cache.Get(c.Symbol, string(c.Horizon)); ok {
			log.Debug().Str("symbol", c.Symbol).Msg("price series served from cache")
			return series, nil
		}
	}

	bars, err := c.Fetcher.FetchDailyBars(c.Symbol, c.Horizon)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars: %w", err)
	}
	bars = sanitizeBars(bars)

	meta, err := c.Fetcher.FetchMeta(c.Symbol)
	if err != nil {
		// Metadata is display-only; fall back to defaults.
		log.Warn().Err(err).Str("symbol", c.Symbol).Msg("metadata fetch failed, using defaults")
		meta = model.AssetMeta{LongName: c.Symbol, Sector: "Unknown", Beta: 1.0}
	}

	series := &model.PriceSeries{
		Symbol:    c.Symbol,
		Bars:      bars,
		Meta:      meta,
		FetchedAt: time.Now(),
	}

	if c.Cache != nil {
		if err := c.Cache.Put(series, string(c.Horizon)); err != nil {
			log.Warn().Err(err).Msg("cache write failed")
		}
	}
	return series, nil
}

// sanitizeBars enforces the series contract at the boundary: strictly
// ascending, unique timestamps. Violating bars are dropped.
func sanitizeBars(bars []model.OHLCV) []model.OHLCV {
	out := bars[:0:0]
	for _, b := range bars {
		if n := len(out); n > 0 && !out[n-1].Time.Before(b.Time) {
			log.Warn().Time("bar", b.Time).Msg("dropping out-of-order bar")
			continue
		}
		out = append(out, b)
	}
	return out
}
