package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"psdgrader/internal/model"
	"psdgrader/internal/pattern"
)

var ErrPresetNotFound = errors.New("criteria preset not found")

type presetFile struct {
	Presets map[string]yaml.Node `yaml:"presets"`
}

// LoadPresets reads named criteria presets from a YAML file of the form
//
//	presets:
//	  web-banner:
//	    technical: {enabled: true, width: 728, height: 90}
//
// Fields a preset omits keep their model.DefaultCriteria values. An empty path yields no
// presets.
func LoadPresets(path string) (map[string]model.Criteria, error) {
	if path == "" {
		return map[string]model.Criteria{}, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read presets: %w", err)
	}
	return ParsePresets(data)
}

// ParsePresets decodes the YAML preset document held in data.
func ParsePresets(data []byte) (map[string]model.Criteria, error) {
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	out := make(map[string]model.Criteria, len(f.Presets))
	for name, node := range f.Presets {
		c := model.DefaultCriteria()
		if err := node.Decode(&c); err != nil {
			return nil, fmt.Errorf("parse preset %q: %w", name, err)
		}
		if err := pattern.ValidateCriteria(c.Filename); err != nil {
			return nil, fmt.Errorf("parse preset %q: %w", name, err)
		}
		out[name] = c
	}
	return out, nil
}

// LoadCriteria reads a single Criteria document. YAML is a superset of JSON, so both are
// accepted.
func LoadCriteria(path string) (model.Criteria, error) {
	c := model.DefaultCriteria()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read criteria: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("parse criteria: %w", err)
	}
	if err := pattern.ValidateCriteria(c.Filename); err != nil {
		return c, fmt.Errorf("parse criteria: %w", err)
	}
	return c, nil
}
