package config

import (
	"testing"
	"time"
)

func TestSaveAndLoadRoundTrip(t *testing.T) {
	SetConfigDir(t.TempDir())
	defer SetConfigDir("")

	in := DefaultConfig()
	in.Chat.ResponseDelayMS = 500
	in.Document.Pages = []string{"Data", "Report"}
	in.Document.DefaultPage = "Report"

	if err := Save(in); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Chat.ResponseDelayMS != 500 {
		t.Fatalf("ResponseDelayMS = %d, want 500", got.Chat.ResponseDelayMS)
	}
	if len(got.Document.Pages) != 2 || got.Document.Pages[1] != "Report" {
		t.Fatalf("Pages = %v, want [Data Report]", got.Document.Pages)
	}
	if got.Document.DefaultPage != "Report" {
		t.Fatalf("DefaultPage = %q, want Report", got.Document.DefaultPage)
	}
}

func TestLoadMissingFileFails(t *testing.T) {
	SetConfigDir(t.TempDir())
	defer SetConfigDir("")

	if _, err := Load(); err == nil {
		t.Fatal("Load() should fail when no config file exists")
	}
}

func TestDefaultsApplied(t *testing.T) {
	cfg := &Config{}
	cfg.applyDefaults()

	if cfg.Chat.Prompt == "" || cfg.Chat.Placeholder == "" {
		t.Fatal("chat defaults missing")
	}
	if cfg.ResponseDelay() != 1500*time.Millisecond {
		t.Fatalf("ResponseDelay() = %v, want 1.5s", cfg.ResponseDelay())
	}
	if len(cfg.Document.Pages) == 0 {
		t.Fatal("default pages missing")
	}
	if cfg.Document.DefaultPage != cfg.Document.Pages[0] {
		t.Fatalf("DefaultPage = %q, want first page %q",
			cfg.Document.DefaultPage, cfg.Document.Pages[0])
	}
	if cfg.UI.LogRatio <= 0 || cfg.UI.LogRatio >= 1 {
		t.Fatalf("LogRatio = %v, want a ratio in (0,1)", cfg.UI.LogRatio)
	}
}

func TestBuildLoggerConfig(t *testing.T) {
	disabled := false
	cfg := DefaultConfig()
	cfg.Logging.Enabled = &disabled
	cfg.Logging.Level = "debug"

	lc := cfg.BuildLoggerConfig()
	if lc.Enabled {
		t.Fatal("Enabled should be false")
	}
	if lc.Level != "debug" {
		t.Fatalf("Level = %q, want debug", lc.Level)
	}
}
