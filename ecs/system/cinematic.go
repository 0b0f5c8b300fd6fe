package system

import (
	"log"

	"github.com/milk9111/invasion/cinematic"
	"github.com/milk9111/invasion/ecs"
	"github.com/milk9111/invasion/ecs/component"
	"github.com/milk9111/invasion/timer"
)

const EventCinematicPhase = "cinematic_phase"

// PhaseEvent is the payload of EventCinematicPhase.
type PhaseEvent struct {
	Entity     ecs.Entity
	Transition cinematic.Transition
}

// CinematicSystem feeds scene time into every cinematic actor and writes the
// resulting X back to its transform.
type CinematicSystem struct {
	clock *timer.Clock
}

func NewCinematicSystem(clock *timer.Clock) *CinematicSystem {
	return &CinematicSystem{clock: clock}
}

func (s *CinematicSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}

	now := s.clock.Elapsed()
	ecs.ForEach2(w, component.CinematicActorComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, actor *component.CinematicActor, t *component.Transform) {
		if actor.Controller == nil {
			return
		}

		elapsed := (now - actor.StartedAt).Seconds()
		for _, tr := range actor.Controller.Tick(elapsed, &t.X) {
			log.Printf("[cinematic] entity=%d %s -> %s at %.3fs x=%.2f", e, tr.From, tr.To, tr.Elapsed, tr.X)
			w.Events().Push(ecs.Event{
				Type: EventCinematicPhase,
				Data: PhaseEvent{Entity: e, Transition: tr},
			})
		}
	})
}

// PhaseEvents returns the phase edges raised earlier in the current pass.
func PhaseEvents(w *ecs.World) []PhaseEvent {
	if w == nil {
		return nil
	}
	var out []PhaseEvent
	for _, evt := range w.Events().Of(EventCinematicPhase) {
		if pe, ok := evt.Data.(PhaseEvent); ok {
			out = append(out, pe)
		}
	}
	return out
}
