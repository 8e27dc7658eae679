package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"pokerlog/internal/platform/config"
)

func TestNewUsesDefaultsWithoutConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.WindowDays != 30 || cfg.MaxPhotos != 3 || cfg.Currency != "$" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
	if cfg.StoreDir != filepath.Join(dir, "store") {
		t.Fatalf("store dir not under data dir: %s", cfg.StoreDir)
	}
}

func TestNewReadsYAMLOverrides(t *testing.T) {
	dir := t.TempDir()
	payload := "currency: \"€\"\nwindow_days: 7\nmax_photos: 1\n"
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(payload), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := config.New(dir)
	if err != nil {
		t.Fatalf("new config: %v", err)
	}
	if cfg.Currency != "€" || cfg.WindowDays != 7 || cfg.MaxPhotos != 1 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
	if cfg.MaxStoreBytes != 10<<20 {
		t.Fatalf("unset field must keep default, got %d", cfg.MaxStoreBytes)
	}
}
