package system

import (
	"github.com/jakecoffman/cp"
	"github.com/milk9111/invasion/ecs"
	"github.com/milk9111/invasion/ecs/component"
	"github.com/milk9111/invasion/timer"
)

// KinematicSystem mirrors scripted transforms into a chipmunk space. Bodies
// are kinematic sensors: the script owns the position and the space follows
// it, so overlap queries and debug bounds stay in sync with what is drawn.
type KinematicSystem struct {
	space    *cp.Space
	dt       float64
	entities map[ecs.Entity]*component.KinematicBody
}

func NewKinematicSystem(tps int) *KinematicSystem {
	return &KinematicSystem{
		space:    cp.NewSpace(),
		dt:       timer.TickDuration(tps).Seconds(),
		entities: make(map[ecs.Entity]*component.KinematicBody),
	}
}

func (s *KinematicSystem) Space() *cp.Space {
	if s == nil {
		return nil
	}
	return s.space
}

func (s *KinematicSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	s.cleanupEntities(w)

	ecs.ForEach2(w, component.KinematicBodyComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, kb *component.KinematicBody, t *component.Transform) {
		target := cp.Vector{X: t.X, Y: t.Y}
		if kb.Body == nil {
			s.addBody(e, kb, target)
			return
		}

		// aim the velocity at the transform so the step lands on it
		vel := target.Sub(kb.Body.Position()).Mult(1 / s.dt)
		kb.Body.SetVelocityVector(vel)
	})

	s.space.Step(s.dt)
}

func (s *KinematicSystem) addBody(e ecs.Entity, kb *component.KinematicBody, pos cp.Vector) {
	radius := kb.Radius
	if radius <= 0 {
		radius = 1
	}

	body := cp.NewKinematicBody()
	body.SetPosition(pos)
	shape := cp.NewCircle(body, radius, cp.Vector{})
	shape.SetSensor(true)

	s.space.AddBody(body)
	s.space.AddShape(shape)

	kb.Body = body
	kb.Shape = shape
	s.entities[e] = kb
}

func (s *KinematicSystem) cleanupEntities(w *ecs.World) {
	for e, kb := range s.entities {
		if current, ok := ecs.Get(w, e, component.KinematicBodyComponent.Kind()); ok && current == kb {
			continue
		}
		if kb.Shape != nil {
			s.space.RemoveShape(kb.Shape)
		}
		if kb.Body != nil {
			s.space.RemoveBody(kb.Body)
		}
		kb.Body = nil
		kb.Shape = nil
		delete(s.entities, e)
	}
}

// Bounds returns the sensor bounding box of e after the last step.
func (s *KinematicSystem) Bounds(w *ecs.World, e ecs.Entity) (cp.BB, bool) {
	kb, ok := ecs.Get(w, e, component.KinematicBodyComponent.Kind())
	if !ok || kb.Shape == nil {
		return cp.BB{}, false
	}
	return kb.Shape.BB(), true
}

// BodyCount is the number of bodies currently mirrored.
func (s *KinematicSystem) BodyCount() int {
	if s == nil {
		return 0
	}
	return len(s.entities)
}
