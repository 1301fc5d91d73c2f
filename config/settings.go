package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Settings is the optional on-disk override file. Zero values leave the
// compiled-in defaults untouched.
type Settings struct {
	Scale                float64 `yaml:"scale"`
	Seed                 *int64  `yaml:"seed"`
	SkipMenu             bool    `yaml:"skip_menu"`
	LogTransitions       bool    `yaml:"log_transitions"`
	ShowHitboxes         bool    `yaml:"show_hitboxes"`
	EdgeTriggeredDismiss bool    `yaml:"edge_triggered_dismiss"`
}

// MinScale and MaxScale bound the window scale factor
const (
	MinScale = 0.5
	MaxScale = 4.0
)

// LoadSettings reads the settings file at path. A missing file is not an
// error: it returns nil settings so callers keep the defaults.
func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	s, err := ParseSettings(data)
	if err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return s, nil
}

// ParseSettings decodes and validates YAML settings.
func ParseSettings(data []byte) (*Settings, error) {
	var s Settings
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	if s.Scale != 0 && (s.Scale < MinScale || s.Scale > MaxScale) {
		return nil, fmt.Errorf("scale %.2f out of range [%.1f, %.1f]", s.Scale, MinScale, MaxScale)
	}
	return &s, nil
}

// Apply writes the settings onto the global configuration.
func (s *Settings) Apply() {
	if s == nil {
		return
	}
	if s.Scale != 0 {
		C.Scale = s.Scale
	}
	Debug.SkipMenu = s.SkipMenu
	Debug.LogTransitions = s.LogTransitions
	Debug.ShowHitboxes = s.ShowHitboxes
	Input.EdgeTriggeredDismiss = s.EdgeTriggeredDismiss
}
