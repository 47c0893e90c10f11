package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete tracker configuration
type Config struct {
	Ledger LedgerConfig `json:"ledger" yaml:"ledger"`
	Price  PriceConfig  `json:"price" yaml:"price"`
}

// LedgerConfig contains transaction store parameters
type LedgerConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// PriceConfig contains price feed parameters
type PriceConfig struct {
	BaseURL  string  `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Fallback float64 `json:"fallback" yaml:"fallback"`
	Currency string  `json:"currency" yaml:"currency"`
}

// LoadFromFile loads configuration from a file (JSON or YAML based on extension)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := &Config{}

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Ledger.DBPath == "" {
		return fmt.Errorf("ledger.db_path is required")
	}
	if c.Price.Fallback <= 0 {
		return fmt.Errorf("price.fallback must be positive")
	}
	if c.Price.Currency == "" {
		return fmt.Errorf("price.currency is required")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Ledger: LedgerConfig{
			DBPath: "./stacker.sqlite",
		},
		Price: PriceConfig{
			Fallback: 30000,
			Currency: "USD",
		},
	}
}
