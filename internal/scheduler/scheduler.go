package scheduler

import (
	"context"
	"fmt"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"MarketPulse/internal/chart"
	"MarketPulse/internal/collector"
	"MarketPulse/internal/export"
	"MarketPulse/internal/model"
	"MarketPulse/internal/news"
	"MarketPulse/internal/notifier"
	"MarketPulse/internal/recorder"
	"MarketPulse/internal/regime"
)

// Outputs names the artifacts a refresh writes to disk.
type Outputs struct {
	ChartPath string
	CSVPath   string
}

// Scheduler manages the periodic refresh and the interactive commands.
type Scheduler struct {
	Cron       *cron.Cron
	Collector  *collector.Collector
	Notifier   *notifier.TelegramNotifier
	Recorder   recorder.Recorder
	News       *news.Client
	Thresholds regime.Thresholds
	Outputs    Outputs
	Ctx        context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, tn *notifier.TelegramNotifier, rec recorder.Recorder, nc *news.Client, th regime.Thresholds, out Outputs) *Scheduler {
	return &Scheduler{
		Cron:       cron.New(cron.WithSeconds()),
		Collector:  col,
		Notifier:   tn,
		Recorder:   rec,
		News:       nc,
		Thresholds: th,
		Outputs:    out,
		Ctx:        ctx,
	}
}

// RegisterAll registers the refresh task.
func (s *Scheduler) RegisterAll(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info().Msg("scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Info().Msg("scheduler stopped")
}

// RunRefreshNow executes the refresh immediately (manual trigger or
// RUN_ON_START).
func (s *Scheduler) RunRefreshNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	symbol := s.Collector.Symbol
	log.Info().Str("symbol", symbol).Msg("running refresh")

	snap, err := s.Collector.Collect()
	if err != nil {
		log.Error().Err(err).Msg("refresh collect")
		s.recordEvent("FETCH_ERROR", err.Error())
		s.trySend(fmt.Sprintf("❌ Data unavailable for %s: %v", symbol, err))
		return
	}

	report := notifier.FormatReport(snap)
	if headlines, err := s.News.TopHeadlines(s.Ctx, symbol); err != nil {
		log.Warn().Err(err).Msg("news fetch failed")
	} else {
		report += "\n" + notifier.FormatHeadlines(symbol, headlines)
	}
	s.trySend(report)

	if snap.Assessment == nil {
		s.recordEvent("INSUFFICIENT_HISTORY", fmt.Sprintf("%d bars, need %d", len(snap.Series.Bars), s.Thresholds.TrendWindow))
	} else {
		rec := &recorder.SnapshotRecord{
			Symbol:     symbol,
			Price:      snap.Latest.Close,
			PctChange:  snap.PctChange,
			SMA:        model.Last(snap.Indicators.SMA),
			RSI:        model.Last(snap.Indicators.RSI),
			Volatility: model.Last(snap.Indicators.Volatility),
			Trend:      string(snap.Assessment.Trend.Phase),
			Sentiment:  string(snap.Assessment.Sentiment.Zone),
			Risk:       string(snap.Assessment.Risk.Level),
			BarCount:   len(snap.Series.Bars),
		}
		if err := s.Recorder.RecordSnapshot(rec); err != nil {
			log.Error().Err(err).Msg("record snapshot")
		}
	}

	if err := chart.Render(s.Outputs.ChartPath, snap.Series, snap.Indicators, s.Thresholds); err != nil {
		log.Error().Err(err).Msg("render chart")
	}
	if err := export.WriteFile(s.Outputs.CSVPath, snap.Series, snap.Indicators); err != nil {
		log.Error().Err(err).Msg("write csv export")
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(command string) string {
	switch command {
	case "/report":
		s.refreshTask()
		return ""
	case "/news":
		headlines, err := s.News.TopHeadlines(s.Ctx, s.Collector.Symbol)
		if err != nil {
			return fmt.Sprintf("News feed unavailable: %v", err)
		}
		return notifier.FormatHeadlines(s.Collector.Symbol, headlines)
	default:
		return "Available commands:\n• /report — refresh the analysis now\n• /news — latest contextual drivers"
	}
}

func (s *Scheduler) recordEvent(kind, detail string) {
	if err := s.Recorder.RecordEvent(&recorder.RefreshEvent{
		Symbol: s.Collector.Symbol,
		Kind:   kind,
		Detail: detail,
	}); err != nil {
		log.Error().Err(err).Msg("record refresh event")
	}
}

func (s *Scheduler) trySend(text string) {
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Error().Err(err).Msg("send notification")
	}
}
