package common

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := NewDefaultConfig()
	if cfg.Server.BaseURL != "http://localhost:5001" {
		t.Errorf("Server.BaseURL default = %q", cfg.Server.BaseURL)
	}
	if cfg.Refresh.GetDebounce().Milliseconds() != 300 {
		t.Errorf("Refresh debounce default = %v, want 300ms", cfg.Refresh.GetDebounce())
	}
	if cfg.Charts.Width != 900 || cfg.Charts.Height != 400 {
		t.Errorf("chart dimensions = %dx%d, want 900x400", cfg.Charts.Width, cfg.Charts.Height)
	}
}

func TestConfig_ServerURLEnvOverride(t *testing.T) {
	t.Setenv("FOLIO_SERVER_URL", "http://folio.example:9000")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Server.BaseURL != "http://folio.example:9000" {
		t.Errorf("Server.BaseURL = %q after env override", cfg.Server.BaseURL)
	}
}

func TestConfig_BenchmarkEnvUppercased(t *testing.T) {
	t.Setenv("FOLIO_BENCHMARK", "spy")

	cfg := NewDefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Benchmark != "SPY" {
		t.Errorf("Benchmark = %q, want SPY", cfg.Benchmark)
	}
}

func TestConfig_LoadMergesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "folio.toml")
	data := []byte("portfolio = \"portfolio_1\"\n\n[server]\nbase_url = \"http://remote:5001\"\ntimeout = \"10s\"\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Portfolio != "portfolio_1" {
		t.Errorf("Portfolio = %q", cfg.Portfolio)
	}
	if cfg.Server.BaseURL != "http://remote:5001" {
		t.Errorf("Server.BaseURL = %q", cfg.Server.BaseURL)
	}
	if cfg.Server.GetTimeout().Seconds() != 10 {
		t.Errorf("timeout = %v, want 10s", cfg.Server.GetTimeout())
	}
	// charts defaults survive a partial file
	if cfg.Charts.Dir != "charts" {
		t.Errorf("Charts.Dir = %q, want default", cfg.Charts.Dir)
	}
}

func TestConfig_LoadSkipsMissingFiles(t *testing.T) {
	cfg, err := LoadConfig("/nonexistent/folio.toml")
	if err != nil {
		t.Fatalf("LoadConfig with missing file: %v", err)
	}
	if cfg.Server.BaseURL == "" {
		t.Error("defaults not applied when file missing")
	}
}

func TestConfig_ValidateRequiresPortfolio(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for missing portfolio id")
	}

	cfg.Portfolio = "portfolio_1"
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestConfig_ValidateRejectsBadURL(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Portfolio = "portfolio_1"
	cfg.Server.BaseURL = "not a url"
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for malformed base_url")
	}
}
