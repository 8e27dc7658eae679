package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultWindowDays    = 30
	defaultMaxPhotos     = 3
	defaultMaxStoreBytes = 10 << 20
	defaultCurrency      = "$"
)

// File is the optional on-disk config (<datadir>/config.yaml). Absent file
// and absent fields both fall back to defaults.
type File struct {
	Currency      string `yaml:"currency"`
	WindowDays    int    `yaml:"window_days"`
	MaxPhotos     int    `yaml:"max_photos"`
	MaxStoreBytes int64  `yaml:"max_store_bytes"`
}

type Config struct {
	DataDir       string
	StoreDir      string
	PhotoDir      string
	DBPath        string
	LogPath       string
	ReportsPath   string
	Currency      string
	WindowDays    int
	MaxPhotos     int
	MaxStoreBytes int64
}

// New resolves the data directory and loads overrides. Priority:
// explicit dataDir flag > POKERLOG_HOME (possibly via .env) > ~/.pokerlog.
func New(dataDir string) (Config, error) {
	// A .env next to the binary's cwd may carry POKERLOG_HOME; missing file
	// is not an error.
	_ = godotenv.Load()

	if dataDir == "" {
		dataDir = os.Getenv("POKERLOG_HOME")
	}
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return Config{}, fmt.Errorf("resolve home dir: %w", err)
		}
		dataDir = filepath.Join(home, ".pokerlog")
	}

	cfg := Config{
		DataDir:       dataDir,
		StoreDir:      filepath.Join(dataDir, "store"),
		PhotoDir:      filepath.Join(dataDir, "photos"),
		DBPath:        filepath.Join(dataDir, "index.db"),
		LogPath:       filepath.Join(dataDir, "pokerlog.log"),
		ReportsPath:   filepath.Join(dataDir, "reports", "reports.json"),
		Currency:      defaultCurrency,
		WindowDays:    defaultWindowDays,
		MaxPhotos:     defaultMaxPhotos,
		MaxStoreBytes: defaultMaxStoreBytes,
	}

	raw, err := os.ReadFile(filepath.Join(dataDir, "config.yaml"))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("read config.yaml: %w", err)
	}
	var file File
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Config{}, fmt.Errorf("parse config.yaml: %w", err)
	}
	if file.Currency != "" {
		cfg.Currency = file.Currency
	}
	if file.WindowDays > 0 {
		cfg.WindowDays = file.WindowDays
	}
	if file.MaxPhotos > 0 {
		cfg.MaxPhotos = file.MaxPhotos
	}
	if file.MaxStoreBytes > 0 {
		cfg.MaxStoreBytes = file.MaxStoreBytes
	}
	return cfg, nil
}
