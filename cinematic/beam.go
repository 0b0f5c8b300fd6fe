package cinematic

import "math"

// BeamConfig drives the pulsing tractor beam under the actor.
type BeamConfig struct {
	BaseOpacity float64
	Amplitude   float64
	// Frequency is in radians per second of scene time.
	Frequency float64
	// SpinPerTick is added to the beam rotation every update.
	SpinPerTick float64
}

func DefaultBeamConfig() BeamConfig {
	return BeamConfig{
		BaseOpacity: 0.3,
		Amplitude:   0.2,
		Frequency:   2,
		SpinPerTick: 0.01,
	}
}

// Opacity returns the beam alpha at elapsed seconds.
func (b BeamConfig) Opacity(elapsed float64) float64 {
	return b.BaseOpacity + math.Sin(elapsed*b.Frequency)*b.Amplitude
}
