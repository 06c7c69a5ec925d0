package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mitchellh/go-homedir"
	"gopkg.in/yaml.v3"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "NOTEPAD_CONFIG"

// Config represents the complete configuration structure
type Config struct {
	Window WindowConfig `yaml:"window"`
	Font   FontConfig   `yaml:"font"`
	Sound  SoundConfig  `yaml:"sound"`
	Log    LogConfig    `yaml:"log"`
}

type WindowConfig struct {
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

type FontConfig struct {
	Name string  `yaml:"name"`
	Size float32 `yaml:"size"`
}

// SoundConfig controls the notification cue
type SoundConfig struct {
	File    string `yaml:"file"`
	Enabled bool   `yaml:"enabled"`
}

type LogConfig struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
	File  string `yaml:"file"` // empty logs to stdout
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Window: WindowConfig{Width: 800, Height: 500},
		Font:   FontConfig{Name: "Helvetica", Size: 12},
		Sound:  SoundConfig{File: "tip_sound.wav", Enabled: true},
		Log:    LogConfig{Level: "info"},
	}
}

// Load reads the config file at configPath, or the default location when
// configPath is empty. A missing default file yields Default().
func Load(configPath string) (*Config, error) {
	explicit := configPath != ""
	if !explicit {
		configPath = os.Getenv(EnvConfigPath)
		explicit = configPath != ""
	}
	if !explicit {
		var err error
		configPath, err = DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path: %w", err)
		}
	}

	configPath, err := homedir.Expand(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}

	// Resolve relative paths against the config file directory
	configDir := filepath.Dir(configPath)
	if config.Sound.File != "" && !filepath.IsAbs(config.Sound.File) {
		config.Sound.File = filepath.Join(configDir, config.Sound.File)
	}
	if config.Log.File != "" {
		if config.Log.File, err = homedir.Expand(config.Log.File); err != nil {
			return nil, fmt.Errorf("failed to expand log file path: %w", err)
		}
	}

	return config, nil
}

// DefaultPath is ~/.notepad/config.yaml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".notepad", "config.yaml"), nil
}

func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %.0fx%.0f", c.Window.Width, c.Window.Height)
	}
	if c.Font.Size <= 0 {
		return fmt.Errorf("font size must be positive, got %.1f", c.Font.Size)
	}
	return nil
}
