package config

import (
	"os"
	"path/filepath"
	"testing"

	"SteamSentinel/internal/model"
)

func TestLoad_DefaultsApplied(t *testing.T) {
	t.Setenv("INDEX_CATEGORY", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("missing config file must fall back to defaults: %v", err)
	}
	if cfg.DataSource.Category != "10%" {
		t.Errorf("expected default category 10%%, got %q", cfg.DataSource.Category)
	}
	if len(cfg.Analysis.Windows) != 4 {
		t.Fatalf("expected 4 default windows, got %d", len(cfg.Analysis.Windows))
	}
	if cfg.Analysis.Windows[0].Mode != model.ModeRank {
		t.Errorf("first default window must be rank mode, got %q", cfg.Analysis.Windows[0].Mode)
	}
	if cfg.Analysis.SeasonalThreshold != 0.02 {
		t.Errorf("expected default seasonal threshold 0.02, got %v", cfg.Analysis.SeasonalThreshold)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `telegram:
  bot_token: "tok"
  chat_id: "123"
analysis:
  seasonal_threshold: 0.05
  windows:
    - label: "双周"
      days: 14
      mode: "quantile"
      threshold: 0.3
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("validate: %v", err)
	}
	if len(cfg.Analysis.Windows) != 1 || cfg.Analysis.Windows[0].Days != 14 {
		t.Errorf("file windows must replace defaults: %+v", cfg.Analysis.Windows)
	}
	if cfg.Analysis.SeasonalThreshold != 0.05 {
		t.Errorf("expected threshold 0.05, got %v", cfg.Analysis.SeasonalThreshold)
	}
}

func TestValidate_BadWindowMode(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.Telegram.BotToken = "tok"
	cfg.Telegram.ChatID = "123"
	cfg.Analysis.Windows[0].Mode = "median"
	if err := cfg.Validate(); err == nil {
		t.Error("invalid window mode must fail validation")
	}
}

func TestValidate_RequiredFields(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if err := cfg.Validate(); err == nil {
		t.Error("missing telegram credentials must fail validation")
	}
}
