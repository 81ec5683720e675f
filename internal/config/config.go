// Package config exposes strongly typed application configuration structs loaded from YAML.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// App captures process-wide runtime settings such as name, environment, metrics, and logging.
type App struct {
	Name        string
	Env         string
	MetricsAddr string
	LogLevel    string
	LogFile     string `yaml:"log_file"`
}

// Session describes connectivity to the trading-session REST API.
type Session struct {
	BaseURL      string  `yaml:"base_url"`
	APIKeyEnv    string  `yaml:"api_key_env"`
	PollInterval int     `yaml:"poll_interval_ms"`
	OpenTick     int     `yaml:"open_tick"`
	CloseTick    int     `yaml:"close_tick"`
	RatePerSec   float64 `yaml:"rate_per_sec"`
	Burst        int     `yaml:"burst"`
}

// Instrument declares one tradable base instrument in the session universe.
// Dual-listed instruments trade under qualified Main/Alternative tickers;
// single-listed ones trade under the bare ticker, optionally drawing
// spillover liquidity from related instruments.
type Instrument struct {
	Base       string
	DualListed bool     `yaml:"dual_listed"`
	Spillover  []string `yaml:"spillover"`
}

// Evaluation groups tunable knobs for the tender evaluation engine.
type Evaluation struct {
	LiquidityBuffer float64 `yaml:"liquidity_buffer"`
	CaptionMarker   string  `yaml:"caption_marker"`
}

// Config collects every configuration leaf for easy marshaling from YAML.
type Config struct {
	App         App          `yaml:"app"`
	Session     Session      `yaml:"session"`
	Instruments []Instrument `yaml:"instruments"`
	Evaluation  Evaluation   `yaml:"evaluation"`
}

// Load reads a YAML file from disk and hydrates a Config struct.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	var config Config
	if err := yaml.NewDecoder(file).Decode(&config); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return &config, nil
}

// Save persists a Config struct to disk as YAML.
func Save(path string, cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("nil config")
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
