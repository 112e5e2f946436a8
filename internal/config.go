package internal

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the optional app configuration file. Missing fields fall back
// to the defaults, so an absent or partial file is fine.
type Config struct {
	// DataFile is the operations spreadsheet to load
	DataFile string `yaml:"data_file,omitempty"`

	// Source is the data source type (see AvailableSources)
	Source string `yaml:"source,omitempty"`

	// UserSettings is the path to the user_currencies/user_stocks JSON file
	UserSettings string `yaml:"user_settings,omitempty"`

	// Quote API endpoints, overridable for testing
	CurrencyAPIURL string `yaml:"currency_api_url,omitempty"`
	StockAPIURL    string `yaml:"stock_api_url,omitempty"`

	// TimeoutSeconds bounds each quote feed request
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() *Config {
	return &Config{
		DataFile:       "data/operations.xlsx",
		Source:         "tinkoff-xlsx",
		UserSettings:   "user_settings.json",
		CurrencyAPIURL: "http://api.currencylayer.com",
		StockAPIURL:    "http://api.marketstack.com",
		TimeoutSeconds: int(defaultHTTPTimeout / time.Second),
	}
}

// DefaultConfigPath returns the default config file path (~/.spendview/config.yaml)
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".spendview", "config.yaml")
}

// LoadConfig reads a yaml config file and fills unset fields from the
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	def := DefaultConfig()
	if cfg.DataFile == "" {
		cfg.DataFile = def.DataFile
	}
	if cfg.Source == "" {
		cfg.Source = def.Source
	}
	if cfg.UserSettings == "" {
		cfg.UserSettings = def.UserSettings
	}
	if cfg.CurrencyAPIURL == "" {
		cfg.CurrencyAPIURL = def.CurrencyAPIURL
	}
	if cfg.StockAPIURL == "" {
		cfg.StockAPIURL = def.StockAPIURL
	}
	if cfg.TimeoutSeconds <= 0 {
		cfg.TimeoutSeconds = def.TimeoutSeconds
	}
	return &cfg, nil
}

// HTTPTimeout returns the configured quote feed timeout.
func (c *Config) HTTPTimeout() time.Duration {
	if c.TimeoutSeconds <= 0 {
		return defaultHTTPTimeout
	}
	return time.Duration(c.TimeoutSeconds) * time.Second
}

func (c *Config) currencyKey() string {
	return os.Getenv("API_KEY_CUR_USD")
}

func (c *Config) stockKey() string {
	return os.Getenv("API_KEY_STOCK")
}
