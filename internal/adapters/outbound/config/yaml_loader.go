package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/t4sanity/t4sanity/internal/domain"
	"gopkg.in/yaml.v3"
)

const fileName = ".t4sanity.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .t4sanity.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .t4sanity.yaml from scanRoot.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(scanRoot string) (domain.RunConfig, error) {
	data, err := os.ReadFile(filepath.Join(scanRoot, fileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.RunConfig{}, err
	}

	cfg := domain.DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return domain.RunConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
	}
	return cfg, nil
}
