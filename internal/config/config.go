package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config represents the application configuration
type Config struct {
	Version int           `toml:"version"`
	Mode    string        `toml:"mode"`    // "cell", "row", or "range"
	Dataset DatasetConfig `toml:"dataset"`
	Sample  SampleConfig  `toml:"sample"`
	UI      UISettings    `toml:"ui"`
}

// DatasetConfig points the grid at a SQLite source. An empty path means the
// generated sample dataset is used instead.
type DatasetConfig struct {
	Path  string `toml:"path"`
	Table string `toml:"table"`
}

// SampleConfig shapes the generated fallback dataset.
type SampleConfig struct {
	Rows int `toml:"rows"`
}

// UISettings represents UI-related configuration
type UISettings struct {
	ExpanderColumn bool `toml:"expander_column"`
	ShowRowNumbers bool `toml:"show_row_numbers"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
}

// configService is the concrete implementation
type configService struct {
	filePath string
}

// NewConfigService creates a new config service
func NewConfigService() ConfigService {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}

	gridselDir := filepath.Join(configDir, "gridsel")
	os.MkdirAll(gridselDir, 0755)

	return &configService{
		filePath: filepath.Join(gridselDir, "config.toml"),
	}
}

// Load loads the configuration from file
func (cs *configService) Load() (*Config, error) {
	if _, err := os.Stat(cs.filePath); os.IsNotExist(err) {
		// Return default config if file doesn't exist
		return DefaultConfig(), nil
	}
	return cs.LoadFromPath(cs.filePath)
}

// Save saves the configuration to file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Mode == "" {
		cfg.Mode = "range"
	}
	if cfg.Sample.Rows <= 0 {
		cfg.Sample.Rows = DefaultConfig().Sample.Rows
	}

	return &cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		Version: 1,
		Mode:    "range",
		Dataset: DatasetConfig{Table: "records"},
		Sample:  SampleConfig{Rows: 200},
		UI: UISettings{
			ExpanderColumn: true,
			ShowRowNumbers: true,
		},
	}
}
