package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"SteamSentinel/internal/analyzer"
	"SteamSentinel/internal/model"
)

// Config holds all application configuration.
type Config struct {
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	DataSource struct {
		URL       string `yaml:"url"`
		Category  string `yaml:"category"`
		UserAgent string `yaml:"user_agent"`
		Referer   string `yaml:"referer"`
	} `yaml:"data_source"`
	Schedule struct {
		MorningCron string `yaml:"morning_cron"`
		EveningCron string `yaml:"evening_cron"`
	} `yaml:"schedule"`
	Analysis struct {
		Windows           []model.WindowRule `yaml:"windows"`
		SeasonalYearsBack []int              `yaml:"seasonal_years_back"`
		SeasonalThreshold float64            `yaml:"seasonal_threshold"`
	} `yaml:"analysis"`
	Snapshot struct {
		Path string `yaml:"path"`
	} `yaml:"snapshot"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Chart struct {
		OutputPath string `yaml:"output_path"`
		EventsFile string `yaml:"events_file"`
	} `yaml:"chart"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
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
	if v := os.Getenv("IFLOW_URL"); v != "" {
		cfg.DataSource.URL = v
	}
	if v := os.Getenv("INDEX_CATEGORY"); v != "" {
		cfg.DataSource.Category = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("CRON_MORNING"); v != "" {
		cfg.Schedule.MorningCron = v
	}
	if v := os.Getenv("CRON_EVENING"); v != "" {
		cfg.Schedule.EveningCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}

	// Defaults
	if cfg.DataSource.URL == "" {
		cfg.DataSource.URL = "https://api.iflow.work/steam/analysisData"
	}
	if cfg.DataSource.Category == "" {
		cfg.DataSource.Category = "10%"
	}
	if cfg.DataSource.UserAgent == "" {
		cfg.DataSource.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	}
	if cfg.DataSource.Referer == "" {
		cfg.DataSource.Referer = "https://www.iflow.work/"
	}
	if cfg.Schedule.MorningCron == "" {
		cfg.Schedule.MorningCron = "0 15 10 * * *"
	}
	if cfg.Schedule.EveningCron == "" {
		cfg.Schedule.EveningCron = "0 15 22 * * *"
	}
	if len(cfg.Analysis.Windows) == 0 {
		cfg.Analysis.Windows = analyzer.DefaultWindows()
	}
	if len(cfg.Analysis.SeasonalYearsBack) == 0 {
		cfg.Analysis.SeasonalYearsBack = []int{1, 2, 3}
	}
	if cfg.Analysis.SeasonalThreshold == 0 {
		cfg.Analysis.SeasonalThreshold = 0.02
	}
	if cfg.Snapshot.Path == "" {
		cfg.Snapshot.Path = "data/steam_market_history.json"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/steam_sentinel.db"
	}
	if cfg.Chart.OutputPath == "" {
		cfg.Chart.OutputPath = "data/index_chart.svg"
	}

	return cfg, nil
}

// Validate checks that all required fields are set and the analysis rules are sane.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.DataSource.URL == "" {
		return fmt.Errorf("data_source.url is required")
	}
	for i, w := range c.Analysis.Windows {
		if w.Days <= 0 {
			return fmt.Errorf("analysis.windows[%d]: days must be positive", i)
		}
		if w.Mode != model.ModeRank && w.Mode != model.ModeQuantile {
			return fmt.Errorf("analysis.windows[%d]: mode must be %q or %q", i, model.ModeRank, model.ModeQuantile)
		}
		if w.Threshold <= 0 {
			return fmt.Errorf("analysis.windows[%d]: threshold must be positive", i)
		}
	}
	if c.Analysis.SeasonalThreshold < 0 {
		return fmt.Errorf("analysis.seasonal_threshold must not be negative")
	}
	return nil
}

// AnalysisConfig builds the immutable rule set handed to the analyzer.
func (c *Config) AnalysisConfig() analyzer.Config {
	return analyzer.Config{
		Windows:           c.Analysis.Windows,
		SeasonalYearsBack: c.Analysis.SeasonalYearsBack,
		SeasonalThreshold: c.Analysis.SeasonalThreshold,
	}
}
