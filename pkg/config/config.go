// Package config loads and persists the serve command's YAML
// configuration.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the server configuration.
type Config struct {
	DatabaseDir string   `yaml:"database_dir"`
	Port        int      `yaml:"port"`
	Bind        string   `yaml:"bind"`
	Security    Security `yaml:"security"`
	Cache       Cache    `yaml:"cache"`
	Logging     Logging  `yaml:"logging"`
}

// Security contains security-related configuration.
type Security struct {
	// APIKey protects the read endpoints; "auto" generates one at
	// bootstrap.
	APIKey string `yaml:"api_key"`
}

// Cache contains series-cache configuration. An empty Dir disables
// caching.
type Cache struct {
	Dir string `yaml:"dir"`
}

// Logging contains logging configuration.
type Logging struct {
	Level string `yaml:"level"`
}

// DefaultConfig returns a default configuration.
func DefaultConfig() *Config {
	return &Config{
		DatabaseDir: "./data",
		Port:        8080,
		Bind:        "127.0.0.1",
		Security: Security{
			APIKey: "auto",
		},
		Logging: Logging{
			Level: "info",
		},
	}
}

// LoadConfig loads configuration from the specified path.
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveConfig saves the configuration to the specified path with secure
// permissions.
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GenerateSecureKey generates a cryptographically secure random key.
func GenerateSecureKey(length int) (string, error) {
	bytes := make([]byte, length)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate secure key: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// BootstrapConfig loads the config at configPath, creating it with
// defaults (and a generated API key) when missing.
func BootstrapConfig(configPath, databaseDir string) (*Config, error) {
	if _, err := os.Stat(configPath); err == nil {
		return LoadConfig(configPath)
	}

	config := DefaultConfig()
	if databaseDir != "" {
		config.DatabaseDir = databaseDir
	}
	key, err := GenerateSecureKey(32)
	if err != nil {
		return nil, err
	}
	config.Security.APIKey = key

	if err := SaveConfig(config, configPath); err != nil {
		return nil, err
	}
	return config, nil
}
