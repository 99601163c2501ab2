package gizmos

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gekko3d/gizmos/rt/shapes"
)

const (
	DefaultAlphaEpsilon    float32 = 0.001
	DefaultDurationEpsilon float32 = 1e-8
	DefaultLineCapacity            = 32
)

type GizmosConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mask    uint32 `yaml:"mask"`

	// Styles with a color alpha at or below AlphaEpsilon are not drawn.
	AlphaEpsilon float32 `yaml:"alpha_epsilon"`
	// Line lists lasting at most DurationEpsilon seconds are drawn for a
	// single tick.
	DurationEpsilon float32 `yaml:"duration_epsilon"`

	SphereDivisions int `yaml:"sphere_divisions"`
	LineCapacity    int `yaml:"line_capacity"`
}

func DefaultGizmosConfig() GizmosConfig {
	return GizmosConfig{
		Enabled:         true,
		Mask:            MaskAll,
		AlphaEpsilon:    DefaultAlphaEpsilon,
		DurationEpsilon: DefaultDurationEpsilon,
		SphereDivisions: shapes.DefaultDivisions,
		LineCapacity:    DefaultLineCapacity,
	}
}

// LoadGizmosConfig reads a YAML config. Keys missing from the file keep
// their defaults, and a missing file yields the defaults.
func LoadGizmosConfig(path string) (GizmosConfig, error) {
	config := DefaultGizmosConfig()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}
	if err != nil {
		return config, fmt.Errorf("read gizmo config: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return DefaultGizmosConfig(), fmt.Errorf("parse gizmo config %s: %w", path, err)
	}
	if err := config.Validate(); err != nil {
		return DefaultGizmosConfig(), fmt.Errorf("gizmo config %s: %w", path, err)
	}
	return config, nil
}

func (c GizmosConfig) Validate() error {
	if c.AlphaEpsilon < 0 {
		return fmt.Errorf("alpha_epsilon must not be negative, got %g", c.AlphaEpsilon)
	}
	if c.DurationEpsilon < 0 {
		return fmt.Errorf("duration_epsilon must not be negative, got %g", c.DurationEpsilon)
	}
	if c.SphereDivisions < 1 {
		return fmt.Errorf("sphere_divisions must be at least 1, got %d", c.SphereDivisions)
	}
	if c.LineCapacity < 0 {
		return fmt.Errorf("line_capacity must not be negative, got %d", c.LineCapacity)
	}
	return nil
}
