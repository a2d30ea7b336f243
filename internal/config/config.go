// Package config handles the optional TOML configuration for tasklog.
// When no config file exists the defaults apply: the storage file lives in
// the working directory and queries go to a local Ollama server.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application name used for config directory
	AppName = "tasklog"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration
type Config struct {
	// StorageFile is the path of the CSV task log, resolved against the
	// working directory when relative
	StorageFile string `toml:"storage_file"`
	// OllamaURL is the generate endpoint of the inference service
	OllamaURL string `toml:"ollama_url"`
	// DefaultModel is the model used when --model is not given
	DefaultModel string `toml:"default_model"`
}

// DefaultConfig returns a Config with the built-in defaults.
// - storage_file: "tasklog.csv" (working directory)
// - ollama_url: "http://localhost:11434/api/generate" (local Ollama server)
// - default_model: "llama3"
func DefaultConfig() Config {
	return Config{
		StorageFile:  "tasklog.csv",
		OllamaURL:    "http://localhost:11434/api/generate",
		DefaultModel: "llama3",
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config directory.
// Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadOrDefault loads the config file at the given path, falling back to
// defaults when the file doesn't exist. Fields absent from the file keep
// their default values. Returns an error for unreadable or invalid files.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, err
	}

	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Normalize trims surrounding whitespace from all fields.
func (c *Config) Normalize() {
	c.StorageFile = strings.TrimSpace(c.StorageFile)
	c.OllamaURL = strings.TrimSpace(c.OllamaURL)
	c.DefaultModel = strings.TrimSpace(c.DefaultModel)
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if c.StorageFile == "" {
		return fmt.Errorf("storage_file must not be empty")
	}
	if c.DefaultModel == "" {
		return fmt.Errorf("default_model must not be empty")
	}

	u, err := url.Parse(c.OllamaURL)
	if err != nil {
		return fmt.Errorf("invalid ollama_url %q: %w", c.OllamaURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid ollama_url %q: scheme must be http or https", c.OllamaURL)
	}
	if u.Host == "" {
		return fmt.Errorf("invalid ollama_url %q: missing host", c.OllamaURL)
	}

	return nil
}

// GenerateSampleConfig returns a commented sample config file with defaults.
func GenerateSampleConfig() string {
	cfg := DefaultConfig()
	return fmt.Sprintf(`# tasklog configuration file

# Path of the CSV task log (relative paths resolve against the working directory)
storage_file = %q

# Generate endpoint of the Ollama inference service
ollama_url = %q

# Model used when --model is not given
default_model = %q
`, cfg.StorageFile, cfg.OllamaURL, cfg.DefaultModel)
}
