// Package config loads skillgate settings from .skillgate.yaml and
// SKILLGATE_* environment variables via viper.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Defaults applied when the config file or key is absent.
const (
	DefaultRulesPath    = ".claude/skills/skill-rules.json"
	DefaultCheckTimeout = 10 * time.Second
)

// Settings holds the tunables shared by both hooks.
type Settings struct {
	// RulesPath is the project-relative path of the skill rule file.
	RulesPath string `mapstructure:"rules_path"`

	// CheckTimeout is the type checker's wall-clock budget.
	CheckTimeout time.Duration `mapstructure:"check_timeout"`

	// Debug enables the append-only diagnostic log.
	Debug bool `mapstructure:"debug"`
}

// Load unmarshals viper state into Settings and applies defaults.
func Load() (*Settings, error) {
	s := &Settings{}
	if err := viper.Unmarshal(s); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if s.RulesPath == "" {
		s.RulesPath = DefaultRulesPath
	}
	if s.CheckTimeout <= 0 {
		s.CheckTimeout = DefaultCheckTimeout
	}

	return s, nil
}
