// Package config loads the optional user configuration from
// ~/.config/autoit/config.yaml. Every field has a default; a missing file
// is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ClipboardTool selects the external clipboard helper.
type ClipboardTool string

const (
	ClipboardAuto  ClipboardTool = "auto"
	ClipboardXclip ClipboardTool = "xclip"
	ClipboardXsel  ClipboardTool = "xsel"
)

// WatchConfig configures the optional event log written by `autoit watch`.
type WatchConfig struct {
	// LogFile receives one line per observed event when set.
	LogFile string `yaml:"log_file"`
	// MaxSizeMB rotates the log file once it grows past this size.
	MaxSizeMB int `yaml:"max_size_mb"`
	// MaxFiles bounds how many rotated files are kept.
	MaxFiles int `yaml:"max_files"`
}

// Config is the effective configuration.
type Config struct {
	// XdotoolPath overrides the xdotool binary looked up in PATH.
	XdotoolPath string `yaml:"xdotool_path"`
	// TypeDelayMS is the per-keystroke delay applied when typing text.
	TypeDelayMS int `yaml:"type_delay_ms"`
	// ClampToScreen restricts resolved coordinates to the screen bounds.
	// Off by default: out-of-range positions are passed through for the
	// synthesis tool to handle.
	ClampToScreen bool `yaml:"clamp_to_screen"`
	// Clipboard selects the clipboard helper binary.
	Clipboard ClipboardTool `yaml:"clipboard"`
	Watch     WatchConfig   `yaml:"watch"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		XdotoolPath:   "",
		TypeDelayMS:   0,
		ClampToScreen: false,
		Clipboard:     ClipboardAuto,
		Watch: WatchConfig{
			MaxSizeMB: 10,
			MaxFiles:  3,
		},
	}
}

// TypeDelay returns the typing delay as a duration.
func (c *Config) TypeDelay() time.Duration {
	if c.TypeDelayMS <= 0 {
		return 0
	}
	return time.Duration(c.TypeDelayMS) * time.Millisecond
}

// DefaultPath returns the standard config file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "autoit", "config.yaml"), nil
}

// Load reads the configuration from the standard location.
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads the configuration from path, falling back to defaults
// when the file does not exist.
func LoadFromPath(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Clipboard {
	case "", ClipboardAuto, ClipboardXclip, ClipboardXsel:
	default:
		return fmt.Errorf("unknown clipboard tool %q", c.Clipboard)
	}
	if c.Clipboard == "" {
		c.Clipboard = ClipboardAuto
	}
	if c.TypeDelayMS < 0 {
		return fmt.Errorf("type_delay_ms must not be negative")
	}
	if c.Watch.MaxSizeMB <= 0 {
		c.Watch.MaxSizeMB = 10
	}
	if c.Watch.MaxFiles <= 0 {
		c.Watch.MaxFiles = 3
	}
	return nil
}
