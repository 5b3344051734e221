package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines client configuration.
type Config struct {
	Backend BackendConfig `yaml:"backend"`
	DB      DBConfig      `yaml:"db"`
	Log     LogConfig     `yaml:"log"`
}

type BackendConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Backend: BackendConfig{
			BaseURL:        "http://localhost:5000",
			TimeoutSeconds: 60,
		},
		DB: DBConfig{
			Path: "docanalyzer.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}

	if path := os.Getenv("DOCANALYZER_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if url := os.Getenv("DOCANALYZER_BACKEND_URL"); url != "" {
		cfg.Backend.BaseURL = url
	}
	if timeoutStr := os.Getenv("DOCANALYZER_BACKEND_TIMEOUT"); timeoutStr != "" {
		timeout, err := strconv.Atoi(timeoutStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DOCANALYZER_BACKEND_TIMEOUT: %w", err)
		}
		cfg.Backend.TimeoutSeconds = timeout
	}
	if dbPath := os.Getenv("DOCANALYZER_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("DOCANALYZER_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
