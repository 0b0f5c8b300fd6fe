package system

import (
	"github.com/milk9111/invasion/ecs"
	"github.com/milk9111/invasion/ecs/component"
	"github.com/milk9111/invasion/timer"
)

// BeamSystem keeps each beam under its parent, spins it and pulses its
// opacity. A beam whose parent is gone is destroyed.
type BeamSystem struct {
	clock *timer.Clock
}

func NewBeamSystem(clock *timer.Clock) *BeamSystem {
	return &BeamSystem{clock: clock}
}

func (s *BeamSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	now := s.clock.Seconds()
	ecs.ForEach2(w, component.BeamComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, b *component.Beam, t *component.Transform) {
		parent := ecs.Entity(b.Parent)
		pt, ok := ecs.Get(w, parent, component.TransformComponent.Kind())
		if !ok {
			ecs.DestroyEntity(w, e)
			return
		}

		t.X = pt.X
		t.Y = pt.Y + b.OffsetY
		t.Z = pt.Z

		b.Spin += b.Config.SpinPerTick
		b.Opacity = b.Config.Opacity(now)
	})
}
