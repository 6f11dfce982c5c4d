package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BuildCalc holds all configuration for the build calculator.
type BuildCalc struct {
	// Logging: debug, info, warn, error
	LogLevel string `yaml:"log_level"`

	// Directory with skills.yaml, set_bonuses.yaml, ...
	CatalogDir string `yaml:"catalog_dir"`

	// Database for saved builds
	Database DatabaseConfig `yaml:"database"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	SSLMode  string `yaml:"sslmode"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultBuildCalc returns BuildCalc config with sensible defaults.
func DefaultBuildCalc() BuildCalc {
	return BuildCalc{
		LogLevel:   "info",
		CatalogDir: "data",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "mhwbuild",
			Password: "mhwbuild",
			DBName:   "mhwbuild",
			SSLMode:  "disable",
		},
	}
}

// LoadBuildCalc loads config from a YAML file.
// If the file doesn't exist, returns defaults.
func LoadBuildCalc(path string) (BuildCalc, error) {
	cfg := DefaultBuildCalc()

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
