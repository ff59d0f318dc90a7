package domain

import (
	"fmt"
	"strings"
)

// ConfigFileName is the per-project configuration file read from the
// directory being validated.
const ConfigFileName = ".conflint.yaml"

// DefaultPatterns are the glob patterns a directory scan matches file
// names against when the project config specifies none.
var DefaultPatterns = []string{
	"*.yaml", "*.yml", "*.json", "*.tf",
	"docker-compose*.yml", "docker-compose*.yaml",
}

// RunConfig holds per-project settings loaded from .conflint.yaml.
type RunConfig struct {
	Patterns     []string `yaml:"patterns"      json:"patterns,omitempty"`
	ExcludePaths []string `yaml:"exclude_paths" json:"exclude_paths,omitempty"`
}

// DefaultRunConfig returns the configuration used when no .conflint.yaml
// is present.
func DefaultRunConfig() RunConfig {
	return RunConfig{Patterns: DefaultPatterns}
}

// EffectivePatterns returns the configured patterns, falling back to
// DefaultPatterns when none are set.
func (c RunConfig) EffectivePatterns() []string {
	if len(c.Patterns) == 0 {
		return DefaultPatterns
	}
	return c.Patterns
}

// Validate catches malformed entries in the user's raw input.
func (c RunConfig) Validate() error {
	for i, p := range c.Patterns {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("patterns[%d] is empty", i)
		}
	}
	for i, p := range c.ExcludePaths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("exclude_paths[%d] is empty", i)
		}
	}
	return nil
}
