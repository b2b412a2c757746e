// Package config loads the core service configuration from a local JSON
// file, with environment overrides for secrets.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/prajwalQw/VigilanceOS---Microservices-Platform-for-Real-Time-Device-Monitoring-Anomaly-Detection/pkg/models"
)

var (
	errMissingDatabaseHost = errors.New("database host is required")
	errMissingDatabaseName = errors.New("database name is required")
)

const defaultListenAddr = ":8090"

// FileConfigLoader loads configuration from a local JSON file.
type FileConfigLoader struct{}

// Load reads and unmarshals a JSON file into dst.
func (*FileConfigLoader) Load(path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file '%s': %w", path, err)
	}

	err = json.Unmarshal(data, dst)
	if err != nil {
		return fmt.Errorf("failed to unmarshal JSON from '%s': %w", path, err)
	}

	return nil
}

// LoadCoreConfig loads, defaults, and validates the core service
// configuration. API_KEY and DATABASE_PASSWORD environment variables
// override their file counterparts so secrets can stay out of the file.
func LoadCoreConfig(path string) (models.CoreServiceConfig, error) {
	var cfg models.CoreServiceConfig

	loader := &FileConfigLoader{}
	if err := loader.Load(path, &cfg); err != nil {
		return cfg, err
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = defaultListenAddr
	}

	if apiKey := os.Getenv("API_KEY"); apiKey != "" {
		cfg.APIKey = apiKey
	}

	if password := os.Getenv("DATABASE_PASSWORD"); password != "" {
		cfg.Database.Password = password
	}

	if cfg.Database.Host == "" {
		return cfg, errMissingDatabaseHost
	}

	if cfg.Database.Database == "" {
		return cfg, errMissingDatabaseName
	}

	return cfg, nil
}
