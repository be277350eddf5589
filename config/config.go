package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// Config holds the REPL settings.
type Config struct {
	Prompt      string `toml:"prompt"`
	HistoryFile string `toml:"history_file"`
	Color       bool   `toml:"color"`
	Verbose     bool   `toml:"verbose"`
	ShowTokens  bool   `toml:"show_tokens"`
}

const appName = "shade"

// DefaultPath is where Load looks when SHADE_CONFIG is unset.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, appName, "config.toml")
}

func Default() *Config {
	return &Config{
		Prompt:      "> ",
		HistoryFile: filepath.Join(xdg.DataHome, appName, ".shade_history"),
		Color:       true,
	}
}

// Load reads a TOML file on top of the defaults. A missing file is not an
// error.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown config keys in %s: %v", path, undecoded)
	}

	cfg.applyDefaults()
	cfg.HistoryFile = os.ExpandEnv(cfg.HistoryFile)

	return cfg, nil
}

// LoadFromEnv loads the file named by SHADE_CONFIG, or DefaultPath.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("SHADE_CONFIG")
	if path == "" {
		path = DefaultPath()
	}

	return Load(path)
}

// applyDefaults restores settings a file set to empty.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Prompt == "" {
		c.Prompt = def.Prompt
	}
	if c.HistoryFile == "" {
		c.HistoryFile = def.HistoryFile
	}
}
