// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Practice PracticeConfig `toml:"practice"`
	Modes    []ModeConfig   `toml:"modes"`
}

// PracticeConfig maps practice-related settings.
type PracticeConfig struct {
	Dict          *string `toml:"dict"`
	Mode          *string `toml:"mode"`
	Seed          *int64  `toml:"seed"`
	CustomWords   *int    `toml:"custom-words"`
	CustomLetters *string `toml:"custom-letters"`
}

// ModeConfig declares an extra drill mode.
type ModeConfig struct {
	Key     string `toml:"key"`
	Name    string `toml:"name"`
	Words   int    `toml:"words"`
	Letters string `toml:"letters"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}
