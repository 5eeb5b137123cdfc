package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"MarketPulse/internal/calculator"
	"MarketPulse/internal/collector"
	"MarketPulse/internal/regime"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		BaseURL string `yaml:"base_url"` // empty selects the Yahoo fetcher
		APIKey  string `yaml:"api_key"`
		Symbol  string `yaml:"symbol"`
		Horizon string `yaml:"horizon"`
	} `yaml:"data_source"`
	Analysis struct {
		TrendWindow         int     `yaml:"trend_window"`
		MomentumWindow      int     `yaml:"momentum_window"`
		VolatilityWindow    int     `yaml:"volatility_window"`
		HeatedAbove         float64 `yaml:"heated_above"`
		DepressedBelow      float64 `yaml:"depressed_below"`
		HighVolatilityAbove float64 `yaml:"high_volatility_above"`
	} `yaml:"analysis"`
	News struct {
		FeedURL string `yaml:"feed_url"`
	} `yaml:"news"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Cache struct {
		Dir        string `yaml:"dir"`
		TTLMinutes int    `yaml:"ttl_minutes"`
	} `yaml:"cache"`
	Output struct {
		ChartPath string `yaml:"chart_path"`
		CSVPath   string `yaml:"csv_path"`
	} `yaml:"output"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("PULSE_SYMBOL"); v != "" {
		cfg.DataSource.Symbol = v
	}
	if v := os.Getenv("PULSE_HORIZON"); v != "" {
		cfg.DataSource.Horizon = v
	}
	if v := os.Getenv("DATA_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("DATA_API_KEY"); v != "" {
		cfg.DataSource.APIKey = v
	}
	if v := os.Getenv("NEWS_FEED_URL"); v != "" {
		cfg.News.FeedURL = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.DataSource.Symbol == "" {
		cfg.DataSource.Symbol = "NVDA"
	}
	if cfg.DataSource.Horizon == "" {
		cfg.DataSource.Horizon = "6mo"
	}
	if cfg.Analysis.TrendWindow == 0 {
		cfg.Analysis.TrendWindow = 50
	}
	if cfg.Analysis.MomentumWindow == 0 {
		cfg.Analysis.MomentumWindow = 14
	}
	if cfg.Analysis.VolatilityWindow == 0 {
		cfg.Analysis.VolatilityWindow = 14
	}
	if cfg.Analysis.HeatedAbove == 0 {
		cfg.Analysis.HeatedAbove = 70
	}
	if cfg.Analysis.DepressedBelow == 0 {
		cfg.Analysis.DepressedBelow = 30
	}
	if cfg.Analysis.HighVolatilityAbove == 0 {
		cfg.Analysis.HighVolatilityAbove = 2.5
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 30 21 * * 1-5" // after US close
	}
	if cfg.Cache.Dir == "" {
		cfg.Cache.Dir = "data/cache"
	}
	if cfg.Cache.TTLMinutes == 0 {
		cfg.Cache.TTLMinutes = 60
	}
	if cfg.Output.ChartPath == "" {
		cfg.Output.ChartPath = "data/report.html"
	}
	if cfg.Output.CSVPath == "" {
		cfg.Output.CSVPath = "data/marketpulse.csv"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/marketpulse.db"
	}

	return cfg, nil
}

// Validate checks that all required fields are consistent.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.DataSource.Symbol == "" {
		return fmt.Errorf("data_source.symbol is required")
	}
	if _, err := collector.ParseHorizon(c.DataSource.Horizon); err != nil {
		return fmt.Errorf("data_source.horizon: %w", err)
	}
	if c.Analysis.TrendWindow <= 0 || c.Analysis.MomentumWindow <= 1 || c.Analysis.VolatilityWindow <= 1 {
		return fmt.Errorf("analysis windows must be positive (volatility and momentum need at least 2)")
	}
	if c.Analysis.DepressedBelow >= c.Analysis.HeatedAbove {
		return fmt.Errorf("analysis.depressed_below must be less than analysis.heated_above")
	}
	return nil
}

// Windows returns the indicator engine configuration.
func (c *Config) Windows() calculator.Windows {
	return calculator.Windows{
		Trend:      c.Analysis.TrendWindow,
		Momentum:   c.Analysis.MomentumWindow,
		Volatility: c.Analysis.VolatilityWindow,
	}
}

// Thresholds returns the regime classifier configuration.
func (c *Config) Thresholds() regime.Thresholds {
	return regime.Thresholds{
		TrendWindow:         c.Analysis.TrendWindow,
		HeatedAbove:         c.Analysis.HeatedAbove,
		DepressedBelow:      c.Analysis.DepressedBelow,
		HighVolatilityAbove: c.Analysis.HighVolatilityAbove,
	}
}

// Horizon returns the validated analysis horizon.
func (c *Config) Horizon() collector.Horizon {
	h, _ := collector.ParseHorizon(c.DataSource.Horizon)
	return h
}
