package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/conflint/conflint/internal/domain"
)

// YAMLLoader implements domain.ConfigLoader by reading .conflint.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .conflint.yaml from dir.
// Returns DefaultRunConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.RunConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, domain.ConfigFileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultRunConfig(), nil
		}
		return domain.RunConfig{}, err
	}

	var cfg domain.RunConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.RunConfig{}, fmt.Errorf("parsing %s: %w", domain.ConfigFileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.RunConfig{}, fmt.Errorf("invalid %s: %w", domain.ConfigFileName, err)
	}

	if len(cfg.Patterns) == 0 {
		cfg.Patterns = domain.DefaultPatterns
	}

	return cfg, nil
}
