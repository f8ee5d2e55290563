package bank

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/forest0xia/ai-career-navigator/internal/model"
)

type bankFile struct {
	Questions []model.Question `yaml:"questions"`
}

// LoadFile reads a YAML question catalog from path
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML question catalog
func Parse(data []byte) (*Bank, error) {
	var f bankFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse bank file: %w", err)
	}
	return New(f.Questions)
}
