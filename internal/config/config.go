package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Output formats for generated layouts.
const (
	OutputYAML = "yaml"
	OutputJSON = "json"
	OutputNone = "none"
)

// Generator holds all configuration for the zoneglow generator.
type Generator struct {
	// Zone catalog
	CatalogPath string  `yaml:"catalog_path"`
	Spacing     float64 `yaml:"spacing"` // default spacing for zones without their own

	// Batch
	Workers int `yaml:"workers"`

	// Output
	Output  string `yaml:"output"`  // yaml, json or none
	Preview bool   `yaml:"preview"` // draw the first layout in the terminal

	// Layout store
	Store    bool           `yaml:"store"`
	Database DatabaseConfig `yaml:"database"`

	// Logging
	LogLevel  string `yaml:"log_level"`  // debug, info, warn, error
	LogFormat string `yaml:"log_format"` // text or json
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`

	// URL overrides the individual fields when set.
	URL string `yaml:"url"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultGenerator returns Generator config with sensible defaults.
func DefaultGenerator() Generator {
	return Generator{
		CatalogPath: "config/zones.yaml",
		Spacing:     1.0,
		Workers:     4,
		Output:      OutputYAML,
		LogLevel:    "info",
		LogFormat:   "text",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "zoneglow",
			Password: "zoneglow",
			DBName:   "zoneglow",
			SSLMode:  "disable",
		},
	}
}

// LoadGenerator loads generator config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadGenerator(path string) (Generator, error) {
	cfg := DefaultGenerator()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// ApplyEnv overrides config fields from environment variables.
func (g *Generator) ApplyEnv() {
	if v := os.Getenv("ZONEGLOW_DATABASE_DSN"); v != "" {
		g.Database.URL = v
	}
	if v := os.Getenv("ZONEGLOW_CATALOG"); v != "" {
		g.CatalogPath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		g.LogLevel = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		g.LogFormat = v
	}
}

// Validate checks values the generator cannot work around.
func (g Generator) Validate() error {
	var errs []error
	if g.CatalogPath == "" {
		errs = append(errs, errors.New("catalog_path is empty"))
	}
	if g.Spacing <= 0 {
		errs = append(errs, fmt.Errorf("spacing must be positive, got %v", g.Spacing))
	}
	if g.Workers <= 0 {
		errs = append(errs, fmt.Errorf("workers must be positive, got %d", g.Workers))
	}
	switch g.Output {
	case OutputYAML, OutputJSON, OutputNone:
	default:
		errs = append(errs, fmt.Errorf("unknown output format %q", g.Output))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
