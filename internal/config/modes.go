package config

import (
	"fmt"
	"strings"

	"github.com/verte-zerg/touchtype/internal/model"
)

// Defaults applied when custom-mode input is unusable.
const (
	DefaultCustomWords   = 20
	DefaultCustomLetters = "asdfghjkl;"
)

// BuiltinModes returns the drill ladder from home row to special characters.
func BuiltinModes() []model.Mode {
	return []model.Mode{
		{Key: "novice", Name: "Novice - Home Row", Words: 15, Letters: "asdfghjkl;"},
		{Key: "beginner", Name: "Beginner - Home Row + Easy Reach", Words: 20, Letters: "asdfghjkl;wertiop"},
		{Key: "intermediate", Name: "Intermediate - Adding Bottom Row", Words: 30, Letters: "asdfghjkl;wertyuiopzxcvbnm,."},
		{Key: "advanced", Name: "Advanced - Full Keyboard", Words: 50, Letters: "asdfghjkl;wertyuiopzxcvbnm,.QWERTYUIOPASDFGHJKLZXCVBNM"},
		{Key: "expert", Name: "Expert - Special Characters", Words: 75, Letters: "asdfghjkl;wertyuiopzxcvbnm,.QWERTYUIOPASDFGHJKLZXCVBNM!@#$%^&*()"},
		{Key: "custom", Name: "Custom - Create your own", Custom: true},
	}
}

// Modes returns the built-in modes followed by the modes declared in cfg.
func Modes(cfg FileConfig) ([]model.Mode, error) {
	modes := BuiltinModes()
	seen := make(map[string]struct{}, len(modes))
	for _, m := range modes {
		seen[m.Key] = struct{}{}
	}
	for i, mc := range cfg.Modes {
		key := strings.TrimSpace(strings.ToLower(mc.Key))
		if key == "" {
			return nil, fmt.Errorf("modes[%d]: key must not be empty", i)
		}
		if _, ok := seen[key]; ok {
			return nil, fmt.Errorf("modes[%d]: duplicate mode key %q", i, key)
		}
		if mc.Words <= 0 {
			return nil, fmt.Errorf("mode %q: words must be > 0", key)
		}
		if mc.Letters == "" {
			return nil, fmt.Errorf("mode %q: letters must not be empty", key)
		}
		name := mc.Name
		if name == "" {
			name = key
		}
		seen[key] = struct{}{}
		modes = append(modes, model.Mode{Key: key, Name: name, Words: mc.Words, Letters: mc.Letters})
	}
	return modes, nil
}
