// Package config loads the jsonsettings application configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/wizzomafizzo/jsonsettings/internal/logging"
)

// MaxIndent bounds the indent setting.
const MaxIndent = 8

type Config struct {
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`
	Indent  int           `yaml:"indent" mapstructure:"indent"`
	Backup  bool          `yaml:"backup" mapstructure:"backup"`
}

type LoggingConfig struct {
	Level      string `yaml:"level" mapstructure:"level"`
	MaxSize    int    `yaml:"max_size" mapstructure:"max_size"`
	MaxBackups int    `yaml:"max_backups" mapstructure:"max_backups"`
	MaxAge     int    `yaml:"max_age" mapstructure:"max_age"`
}

// Load reads the config file at path. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	return LoadWithFS(afero.NewOsFs(), path)
}

// LoadWithFS reads the config file at path from the given filesystem.
func LoadWithFS(fs afero.Fs, path string) (*Config, error) {
	viperInstance := newViper()
	viperInstance.SetFs(fs)
	viperInstance.SetConfigFile(path)

	if err := viperInstance.ReadInConfig(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	return unmarshal(viperInstance)
}

// LoadFromYAML loads config from YAML bytes - helper for tests
func LoadFromYAML(data []byte) (*Config, error) {
	viperInstance := newViper()
	viperInstance.SetConfigType("yaml")

	if err := viperInstance.ReadConfig(strings.NewReader(string(data))); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	return unmarshal(viperInstance)
}

func newViper() *viper.Viper {
	viperInstance := viper.New()
	defaults := DefaultConfig()
	viperInstance.SetDefault("indent", defaults.Indent)
	viperInstance.SetDefault("backup", defaults.Backup)
	viperInstance.SetDefault("logging.level", defaults.Logging.Level)
	viperInstance.SetDefault("logging.max_size", defaults.Logging.MaxSize)
	viperInstance.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)
	viperInstance.SetDefault("logging.max_age", defaults.Logging.MaxAge)
	return viperInstance
}

func unmarshal(viperInstance *viper.Viper) (*Config, error) {
	var config Config
	if err := viperInstance.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate performs config validation
func (c *Config) Validate() error {
	if c.Indent < 0 || c.Indent > MaxIndent {
		return fmt.Errorf("indent must be between 0 and %d, got %d", MaxIndent, c.Indent)
	}

	if _, err := logging.ParseLevel(c.Logging.Level); err != nil {
		return fmt.Errorf("logging: %w", err)
	}

	if c.Logging.MaxSize < 0 || c.Logging.MaxBackups < 0 || c.Logging.MaxAge < 0 {
		return errors.New("logging rotation limits cannot be negative")
	}

	return nil
}
