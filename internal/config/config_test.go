package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Practice.Dict != nil || len(cfg.Modes) != 0 {
		t.Fatalf("expected empty config, got %+v", cfg)
	}
}

func TestLoadConfigPracticeAndModes(t *testing.T) {
	path := writeConfig(t, `
[practice]
dict = "/tmp/words.txt"
mode = "beginner"
seed = 42
custom-words = 12

[[modes]]
key = "Vowels"
name = "Vowel Drill"
words = 10
letters = "aeiou"
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Practice.Dict == nil || *cfg.Practice.Dict != "/tmp/words.txt" {
		t.Fatalf("unexpected dict: %v", cfg.Practice.Dict)
	}
	if cfg.Practice.Seed == nil || *cfg.Practice.Seed != 42 {
		t.Fatalf("unexpected seed: %v", cfg.Practice.Seed)
	}
	if cfg.Practice.CustomWords == nil || *cfg.Practice.CustomWords != 12 {
		t.Fatalf("unexpected custom words: %v", cfg.Practice.CustomWords)
	}
	modes, err := Modes(cfg)
	if err != nil {
		t.Fatalf("Modes failed: %v", err)
	}
	last := modes[len(modes)-1]
	if last.Key != "vowels" || last.Name != "Vowel Drill" || last.Words != 10 || last.Letters != "aeiou" {
		t.Fatalf("unexpected declared mode: %+v", last)
	}
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[practice]\nwords = 10\n")
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected unknown key error")
	}
}

func TestModesValidation(t *testing.T) {
	cases := []ModeConfig{
		{Key: "", Words: 1, Letters: "a"},
		{Key: "novice", Words: 1, Letters: "a"},
		{Key: "x", Words: 0, Letters: "a"},
		{Key: "y", Words: 3, Letters: ""},
	}
	for _, mc := range cases {
		if _, err := Modes(FileConfig{Modes: []ModeConfig{mc}}); err == nil {
			t.Fatalf("expected error for %+v", mc)
		}
	}
}

func TestBuiltinModes(t *testing.T) {
	modes := BuiltinModes()
	if len(modes) != 6 {
		t.Fatalf("expected 6 built-in modes, got %d", len(modes))
	}
	if modes[0].Words != 15 || modes[0].Letters != "asdfghjkl;" {
		t.Fatalf("unexpected novice mode: %+v", modes[0])
	}
	if !modes[5].Custom {
		t.Fatalf("expected last built-in mode to be custom")
	}
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/cfg")
	t.Setenv("XDG_DATA_HOME", "/data")
	if got := DefaultConfigPath(); got != filepath.Join("/cfg", "touchtype", "config.toml") {
		t.Fatalf("unexpected config path: %s", got)
	}
	if got := DefaultDBPath(); got != filepath.Join("/data", "touchtype", "words.db") {
		t.Fatalf("unexpected db path: %s", got)
	}
}
