package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	CompressionLevel uint8 `yaml:"compression_level"` // Compression level (0-9)
	ChunkSize        int   `yaml:"chunk_size"`        // Streaming chunk size in bytes
}

// DefaultConfig returns a Config struct with reasonable default values.
func DefaultConfig() *Config {
	return &Config{
		CompressionLevel: 6,
		ChunkSize:        512 * 1024, // 512KiB
	}
}

// LoadConfig loads configuration from a YAML file. Fields absent from the
// file keep their defaults.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func validateConfig(config *Config) error {
	if config.CompressionLevel > 9 {
		return fmt.Errorf("compression_level must be between 0 and 9")
	}

	if config.ChunkSize <= 0 {
		return fmt.Errorf("chunk_size must be greater than 0")
	}

	return nil
}
