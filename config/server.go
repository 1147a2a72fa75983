package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "30s" parse.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

// ServerConfig holds HTTP server settings, loaded from an optional YAML file
// with sensible defaults for everything left unset.
type ServerConfig struct {
	Port         int      `yaml:"port"`
	DataDir      string   `yaml:"dataDir"`
	ReadTimeout  Duration `yaml:"readTimeout"`
	WriteTimeout Duration `yaml:"writeTimeout"`
}

// DefaultServerConfig returns the configuration used when no YAML file is
// given.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Port:         8080,
		DataDir:      "./docsift_data",
		ReadTimeout:  Duration(10 * time.Second),
		WriteTimeout: Duration(10 * time.Second),
	}
}

// LoadServerConfig reads a YAML server configuration from path and applies
// defaults to any unset field.
func LoadServerConfig(path string) (ServerConfig, error) {
	cfg := DefaultServerConfig()

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from the operator's flag
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var loaded ServerConfig
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if loaded.Port != 0 {
		cfg.Port = loaded.Port
	}
	if loaded.DataDir != "" {
		cfg.DataDir = loaded.DataDir
	}
	if loaded.ReadTimeout != 0 {
		cfg.ReadTimeout = loaded.ReadTimeout
	}
	if loaded.WriteTimeout != 0 {
		cfg.WriteTimeout = loaded.WriteTimeout
	}
	return cfg, nil
}
