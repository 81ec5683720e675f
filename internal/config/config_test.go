package config

import (
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	path := filepath.Join("testdata", "config.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.App.Name != "tenderbot-test" {
		t.Fatalf("unexpected App.Name: %s", cfg.App.Name)
	}
	if cfg.App.LogFile != "logs/advisor.log" {
		t.Fatalf("unexpected App.LogFile: %s", cfg.App.LogFile)
	}
	if cfg.Session.BaseURL != "http://localhost:9999/v1" {
		t.Fatalf("unexpected Session.BaseURL: %s", cfg.Session.BaseURL)
	}
	if cfg.Session.APIKeyEnv != "API_KEY" {
		t.Fatalf("unexpected Session.APIKeyEnv: %s", cfg.Session.APIKeyEnv)
	}
	if cfg.Session.PollInterval != 1000 {
		t.Fatalf("unexpected Session.PollInterval: %d", cfg.Session.PollInterval)
	}
	if cfg.Session.OpenTick != 5 || cfg.Session.CloseTick != 295 {
		t.Fatalf("unexpected tick window: %d..%d", cfg.Session.OpenTick, cfg.Session.CloseTick)
	}
	if cfg.Session.RatePerSec != 10 || cfg.Session.Burst != 5 {
		t.Fatalf("unexpected rate limit settings: %.1f/%d", cfg.Session.RatePerSec, cfg.Session.Burst)
	}
	if len(cfg.Instruments) != 2 {
		t.Fatalf("expected 2 instruments, got %d", len(cfg.Instruments))
	}
	if cfg.Instruments[0].Base != "CRZY" || !cfg.Instruments[0].DualListed {
		t.Fatalf("unexpected first instrument: %+v", cfg.Instruments[0])
	}
	if len(cfg.Instruments[1].Spillover) != 1 || cfg.Instruments[1].Spillover[0] != "BBSN" {
		t.Fatalf("unexpected spillover: %+v", cfg.Instruments[1].Spillover)
	}
	if cfg.Evaluation.LiquidityBuffer != 0.1 {
		t.Fatalf("unexpected liquidity buffer: %.2f", cfg.Evaluation.LiquidityBuffer)
	}
	if cfg.Evaluation.CaptionMarker != "An institution would like to" {
		t.Fatalf("unexpected caption marker: %s", cfg.Evaluation.CaptionMarker)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	cfg := &Config{
		App:        App{Name: "tenderbot", LogLevel: "debug"},
		Session:    Session{BaseURL: "http://localhost:9999/v1", OpenTick: 5, CloseTick: 295},
		Evaluation: Evaluation{LiquidityBuffer: 0.05},
	}
	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if loaded.App.Name != "tenderbot" || loaded.Evaluation.LiquidityBuffer != 0.05 {
		t.Fatalf("round trip mismatch: %+v", loaded)
	}
}

func TestSaveNil(t *testing.T) {
	if err := Save(filepath.Join(t.TempDir(), "config.yaml"), nil); err == nil {
		t.Fatalf("expected error for nil config")
	}
}
