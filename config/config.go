// Package config loads fluxion's TOML configuration.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Editor settings
type Editor struct {
	ShowLineNumbers bool   `toml:"show_line_numbers"`
	TabWidth        int    `toml:"tab_width"`
	StartDir        string `toml:"start_dir"` // file picker start; empty means the working directory
}

// Log settings
type Log struct {
	File  string `toml:"file"` // empty discards logs
	Level string `toml:"level"`
}

// Config is the main configuration struct.
type Config struct {
	Editor Editor `toml:"editor"`
	Log    Log    `toml:"log"`

	// Keys maps mode name -> action name -> key sequences. Listed actions
	// lose their default keys in that mode.
	Keys map[string]map[string][]string `toml:"keys"`

	// Unknown lists keys in the file that matched no setting.
	Unknown []string `toml:"-"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Editor: Editor{
			ShowLineNumbers: true,
			TabWidth:        4,
		},
		Log: Log{
			Level: "info",
		},
	}
}

// configDir returns $XDG_CONFIG_HOME/fluxion, or ~/.config/fluxion.
func configDir() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "fluxion"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "fluxion"), nil
}

// DefaultPath returns the path of the user's config file.
func DefaultPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads the config file at path over the defaults. An empty path means
// DefaultPath. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = p
	}

	md, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading config from %s: %w", path, err)
	}
	for _, k := range md.Undecoded() {
		cfg.Unknown = append(cfg.Unknown, k.String())
	}

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Editor.TabWidth <= 0 {
		return fmt.Errorf("editor.tab_width must be positive, got %d", c.Editor.TabWidth)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (log.Level, error) {
	lvl, err := log.ParseLevel(strings.ToLower(c.Log.Level))
	if err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return lvl, nil
}

// DefaultTOML returns the default configuration as a TOML document.
func DefaultTOML() string {
	return `# fluxion configuration
# Save to ~/.config/fluxion/config.toml and customize.
# Only include settings you want to change from defaults.

[editor]
show_line_numbers = true
tab_width = 4
start_dir = ""

[log]
file = ""
level = "info" # debug, info, warn, error

# Key bindings per mode: normal, insert, visual, command, save, files.
# Listing an action replaces its default keys in that mode. Keys of a
# sequence are separated by spaces; "space" is the space bar.
#
# [keys.normal]
# next_buffer = ["b n", "]"]
# enter_file_picker = ["space f"]
`
}
