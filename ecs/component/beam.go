package component

import "github.com/milk9111/invasion/cinematic"

// Beam is the tractor beam hanging under a cinematic actor. It follows the
// parent's transform at OffsetY.
type Beam struct {
	Parent  uint64
	OffsetY float64
	Radius  float64
	Length  float64
	Config  cinematic.BeamConfig

	// runtime
	Spin    float64
	Opacity float64
}

var BeamComponent = NewComponent[Beam]()
