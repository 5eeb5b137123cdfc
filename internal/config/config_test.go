package config

import (
	"os"
	"path/filepath"
	"testing"
)

func load(t *testing.T, yaml string) *Config {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(yaml), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestLoad_Defaults(t *testing.T) {
	cfg := load(t, "")

	if cfg.DataSource.Symbol != "NVDA" {
		t.Errorf("default symbol: got %q", cfg.DataSource.Symbol)
	}
	if cfg.DataSource.Horizon != "6mo" {
		t.Errorf("default horizon: got %q", cfg.DataSource.Horizon)
	}
	w := cfg.Windows()
	if w.Trend != 50 || w.Momentum != 14 || w.Volatility != 14 {
		t.Errorf("default windows: got %+v", w)
	}
	th := cfg.Thresholds()
	if th.HeatedAbove != 70 || th.DepressedBelow != 30 || th.HighVolatilityAbove != 2.5 {
		t.Errorf("default thresholds: got %+v", th)
	}
}

func TestLoad_FileOverrides(t *testing.T) {
	cfg := load(t, `
data_source:
  symbol: TSLA
  horizon: 1y
analysis:
  trend_window: 100
  heated_above: 80
`)
	if cfg.DataSource.Symbol != "TSLA" {
		t.Errorf("symbol: got %q", cfg.DataSource.Symbol)
	}
	if cfg.Thresholds().TrendWindow != 100 {
		t.Errorf("trend window: got %d", cfg.Thresholds().TrendWindow)
	}
	if cfg.Thresholds().HeatedAbove != 80 {
		t.Errorf("heated above: got %v", cfg.Thresholds().HeatedAbove)
	}
	// Untouched fields keep defaults.
	if cfg.Thresholds().DepressedBelow != 30 {
		t.Errorf("depressed below: got %v", cfg.Thresholds().DepressedBelow)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PULSE_SYMBOL", "AMZN")
	t.Setenv("PULSE_HORIZON", "5y")

	cfg := load(t, "data_source:\n  symbol: TSLA\n")
	if cfg.DataSource.Symbol != "AMZN" {
		t.Errorf("env must win over file: got %q", cfg.DataSource.Symbol)
	}
	if cfg.DataSource.Horizon != "5y" {
		t.Errorf("horizon: got %q", cfg.DataSource.Horizon)
	}
}

func TestValidate(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")
	cfg := load(t, "")
	if err := cfg.Validate(); err == nil {
		t.Error("expected error without telegram credentials")
	}

	cfg.Telegram.BotToken = "token"
	cfg.Telegram.ChatID = "chat"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected error: %v", err)
	}

	cfg.DataSource.Horizon = "2w"
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for bad horizon")
	}
}
