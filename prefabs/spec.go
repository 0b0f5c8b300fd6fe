package prefabs

import (
	"fmt"
	"time"

	"github.com/milk9111/invasion/cinematic"
	"github.com/milk9111/invasion/overlay"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Z        float64 `yaml:"z"`
	Scale    float64 `yaml:"scale"`
	Rotation float64 `yaml:"rotation"`
}

type BeamSpec struct {
	OffsetY     float64 `yaml:"offset_y"`
	Radius      float64 `yaml:"radius"`
	Length      float64 `yaml:"length"`
	BaseOpacity float64 `yaml:"base_opacity"`
	Amplitude   float64 `yaml:"amplitude"`
	Frequency   float64 `yaml:"frequency"`
	SpinPerTick float64 `yaml:"spin_per_tick"`
}

type UFOSpec struct {
	Name         string        `yaml:"name"`
	HoldDuration float64       `yaml:"hold_duration"`
	Speed        float64       `yaml:"speed"`
	StartX       *float64      `yaml:"start_x"`
	EndX         *float64      `yaml:"end_x"`
	Transform    TransformSpec `yaml:"transform"`
	Beam         BeamSpec      `yaml:"beam"`
	BodyRadius   float64       `yaml:"body_radius"`
	CueScript    string        `yaml:"cue_script"`
}

const UFOSpecFile = "ufo.yaml"

func LoadUFOSpec() (*UFOSpec, error) {
	spec, err := LoadSpec[UFOSpec](UFOSpecFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// CinematicConfig fills missing fields from cinematic.DefaultConfig.
// StartX and EndX are pointers because zero is a legal coordinate.
func (s *UFOSpec) CinematicConfig() (cinematic.Config, error) {
	cfg := cinematic.DefaultConfig()
	if s == nil {
		return cfg, nil
	}
	if s.HoldDuration != 0 {
		cfg.HoldDuration = s.HoldDuration
	}
	if s.Speed != 0 {
		cfg.Speed = s.Speed
	}
	if s.StartX != nil {
		cfg.StartX = *s.StartX
	}
	if s.EndX != nil {
		cfg.EndX = *s.EndX
	}
	if err := cfg.Validate(); err != nil {
		return cinematic.DefaultConfig(), fmt.Errorf("prefabs: %s: %w", UFOSpecFile, err)
	}
	return cfg, nil
}

func (s *UFOSpec) BeamConfig() cinematic.BeamConfig {
	cfg := cinematic.DefaultBeamConfig()
	if s == nil {
		return cfg
	}
	b := s.Beam
	if b.BaseOpacity != 0 {
		cfg.BaseOpacity = b.BaseOpacity
	}
	if b.Amplitude != 0 {
		cfg.Amplitude = b.Amplitude
	}
	if b.Frequency != 0 {
		cfg.Frequency = b.Frequency
	}
	if b.SpinPerTick != 0 {
		cfg.SpinPerTick = b.SpinPerTick
	}
	return cfg
}

type ControlSpec struct {
	Action string   `yaml:"action"`
	Keys   []string `yaml:"keys"`
}

type ControlCategorySpec struct {
	Title    string        `yaml:"title"`
	Controls []ControlSpec `yaml:"controls"`
}

type ControlsSpec struct {
	Name         string                `yaml:"name"`
	Title        string                `yaml:"title"`
	Subtitle     string                `yaml:"subtitle"`
	BackLabel    string                `yaml:"back_label"`
	CloseDelayMs int                   `yaml:"close_delay_ms"`
	FadeMs       int                   `yaml:"fade_ms"`
	Categories   []ControlCategorySpec `yaml:"categories"`
}

const ControlsSpecFile = "controls.yaml"

func LoadControlsSpec() (*ControlsSpec, error) {
	spec, err := LoadSpec[ControlsSpec](ControlsSpecFile)
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

func (s *ControlsSpec) CloseDelay() time.Duration {
	if s == nil || s.CloseDelayMs <= 0 {
		return overlay.DefaultCloseDelay
	}
	return time.Duration(s.CloseDelayMs) * time.Millisecond
}

// FadeDuration defaults to the close delay so the fade ends with the overlay.
func (s *ControlsSpec) FadeDuration() time.Duration {
	if s == nil || s.FadeMs <= 0 {
		return s.CloseDelay()
	}
	return time.Duration(s.FadeMs) * time.Millisecond
}
