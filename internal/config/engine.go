package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/forest0xia/ai-career-navigator/internal/engine"
)

// LoadEngineConfig overlays the YAML tuning file at path onto the
// canonical defaults. An empty path returns the defaults.
func LoadEngineConfig(path string) (*engine.Config, error) {
	cfg := engine.DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read engine config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse engine config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine config: %w", err)
	}
	return cfg, nil
}
