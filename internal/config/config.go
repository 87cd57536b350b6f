package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds defaults loaded from a YAML file. Command line flags take
// precedence over anything set here.
type Config struct {
	// Formats lists representations to show: quad, binary, hexadecimal, decimal.
	Formats []string `yaml:"formats"`
	// Masks are prefix lengths applied to bare addresses.
	Masks    []int `yaml:"masks"`
	Table    bool  `yaml:"table"`
	Summary  bool  `yaml:"summary"`
	Reverse  bool  `yaml:"reverse"`
	LogLevel *int  `yaml:"loglevel"`
}

// LoadConfig reads and unmarshals the configuration from the specified YAML file path.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filePath, err)
	}

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config file %s: %w", filePath, err)
	}

	return &cfg, nil
}
