package entity

import (
	"fmt"
	"log"

	"github.com/milk9111/invasion/cinematic"
	"github.com/milk9111/invasion/ecs"
	"github.com/milk9111/invasion/ecs/component"
	"github.com/milk9111/invasion/prefabs"
	"github.com/milk9111/invasion/timer"
)

// NewUFO builds the fly-off UFO and its beam. A nil spec loads ufo.yaml. The
// actor's timeline starts at the clock's current reading.
func NewUFO(w *ecs.World, clock *timer.Clock, presenter cinematic.Presenter, spec *prefabs.UFOSpec) (ecs.Entity, ecs.Entity, error) {
	if spec == nil {
		loaded, err := prefabs.LoadUFOSpec()
		if err != nil {
			return 0, 0, fmt.Errorf("ufo: load spec: %w", err)
		}
		spec = loaded
	}

	cfg, err := spec.CinematicConfig()
	if err != nil {
		// keep going on defaults, a bad edit should not kill the scene
		log.Printf("[ufo] %v, using defaults", err)
	}

	ufo := ecs.CreateEntity(w)
	if err := ecs.Add(w, ufo, component.UFOTagComponent.Kind(), &component.UFOTag{}); err != nil {
		return 0, 0, fmt.Errorf("ufo: add tag: %w", err)
	}

	scale := spec.Transform.Scale
	if scale == 0 {
		scale = 1
	}
	if err := ecs.Add(w, ufo, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.Transform.X,
		Y:        spec.Transform.Y,
		Z:        spec.Transform.Z,
		Scale:    scale,
		Rotation: spec.Transform.Rotation,
	}); err != nil {
		return 0, 0, fmt.Errorf("ufo: add transform: %w", err)
	}

	if err := ecs.Add(w, ufo, component.CinematicActorComponent.Kind(), &component.CinematicActor{
		Controller: cinematic.NewController(cfg, presenter),
		StartedAt:  clock.Elapsed(),
	}); err != nil {
		return 0, 0, fmt.Errorf("ufo: add cinematic actor: %w", err)
	}

	if err := ecs.Add(w, ufo, component.KinematicBodyComponent.Kind(), &component.KinematicBody{
		Radius: spec.BodyRadius * scale,
	}); err != nil {
		return 0, 0, fmt.Errorf("ufo: add kinematic body: %w", err)
	}

	if spec.CueScript != "" {
		if err := ecs.Add(w, ufo, component.CueScriptComponent.Kind(), &component.CueScript{Path: spec.CueScript}); err != nil {
			return 0, 0, fmt.Errorf("ufo: add cue script: %w", err)
		}
	}

	beam, err := newBeam(w, ufo, spec)
	if err != nil {
		return 0, 0, err
	}

	return ufo, beam, nil
}

func newBeam(w *ecs.World, parent ecs.Entity, spec *prefabs.UFOSpec) (ecs.Entity, error) {
	beam := ecs.CreateEntity(w)

	pt, _ := ecs.Get(w, parent, component.TransformComponent.Kind())
	t := &component.Transform{Scale: 1}
	if pt != nil {
		t.X, t.Y, t.Z = pt.X, pt.Y+spec.Beam.OffsetY, pt.Z
	}
	if err := ecs.Add(w, beam, component.TransformComponent.Kind(), t); err != nil {
		return 0, fmt.Errorf("beam: add transform: %w", err)
	}

	cfg := spec.BeamConfig()
	if err := ecs.Add(w, beam, component.BeamComponent.Kind(), &component.Beam{
		Parent:  uint64(parent),
		OffsetY: spec.Beam.OffsetY,
		Radius:  spec.Beam.Radius,
		Length:  spec.Beam.Length,
		Config:  cfg,
		Opacity: cfg.BaseOpacity,
	}); err != nil {
		return 0, fmt.Errorf("beam: add beam: %w", err)
	}

	return beam, nil
}
