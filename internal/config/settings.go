// Package config loads the generation settings: the ordered candidate model
// list and the per-plan-kind sampling parameters. Defaults are embedded; a
// YAML file may replace them wholesale.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/felixbrock/coachbot/internal/domain"
)

//go:embed defaults.yaml
var defaultSettingsYAML []byte

type Settings struct {
	Models []string                           `yaml:"models"`
	Plans  map[string]domain.GenerationConfig `yaml:"plans"`
}

// Load reads settings from path. An empty path or a missing file yields the
// embedded defaults; a malformed file is an error.
func Load(path string) (Settings, error) {
	if path == "" {
		return parse(defaultSettingsYAML)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return parse(defaultSettingsYAML)
		}
		return Settings{}, err
	}

	return parse(data)
}

func parse(data []byte) (Settings, error) {
	var settings Settings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, err
	}

	if len(settings.Models) == 0 {
		return Settings{}, fmt.Errorf("settings declare no candidate models")
	}

	return settings, nil
}

// ParamsFor returns the sampling parameters for a plan-kind name, falling back
// to the training parameters when the name is unknown.
func (s Settings) ParamsFor(name string) domain.GenerationConfig {
	if params, ok := s.Plans[name]; ok {
		return params
	}
	return s.Plans[string(domain.PlanTraining)]
}
