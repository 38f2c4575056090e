// Package config handles configuration management using Viper
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Bridge    BridgeConfig    `mapstructure:"bridge"`
	Clipboard ClipboardConfig `mapstructure:"clipboard"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

// BridgeConfig tunes the blocking-wait bridge
type BridgeConfig struct {
	// AntiSpinSleepMS is slept before the neutral-path descriptor check,
	// bounding CPU when the host polls tightly. 0 disables.
	AntiSpinSleepMS int `mapstructure:"anti_spin_sleep_ms"`

	// ResizeWaitMS is the default WaitForResize timeout.
	ResizeWaitMS int `mapstructure:"resize_wait_ms"`

	// Inhibit starts the process with the window system inhibited
	// (headless/batch mode).
	Inhibit bool `mapstructure:"inhibit"`
}

// ClipboardConfig selects the clipboard backend
type ClipboardConfig struct {
	Backend string `mapstructure:"backend"` // auto, wayland, x11, none
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	LogLevel string `mapstructure:"log_level"` // Overrides LOG_LEVEL env var
}

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Bridge: BridgeConfig{
			AntiSpinSleepMS: 16,
			ResizeWaitMS:    100,
			Inhibit:         false,
		},
		Clipboard: ClipboardConfig{
			Backend: "auto",
		},
		Logging: LoggingConfig{
			LogLevel: "", // Empty means use LOG_LEVEL env var
		},
	}

	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system. Safe to call again after
// SetConfigPath; state from a previous Init is discarded.
func Init() error {
	viper.Reset()
	viper.SetConfigName("uibridge")
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		viper.AddConfigPath("/etc/uibridge")
		if home := os.Getenv("HOME"); home != "" {
			viper.AddConfigPath(filepath.Join(home, ".config", "uibridge"))
		}
		viper.AddConfigPath(".")
	}

	// Set defaults - individual fields so file values merge properly
	viper.SetDefault("bridge.anti_spin_sleep_ms", DefaultConfig.Bridge.AntiSpinSleepMS)
	viper.SetDefault("bridge.resize_wait_ms", DefaultConfig.Bridge.ResizeWaitMS)
	viper.SetDefault("bridge.inhibit", DefaultConfig.Bridge.Inhibit)
	viper.SetDefault("clipboard.backend", DefaultConfig.Clipboard.Backend)
	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		return &DefaultConfig
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}

// Save saves the current configuration to file
func Save() error {
	configPath := GetConfigPath()

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	if configPathOverride != "" {
		return configPathOverride
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "uibridge", "uibridge.toml")
	}
	return "/etc/uibridge/uibridge.toml"
}
