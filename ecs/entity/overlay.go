package entity

import (
	"fmt"
	"log"
	"time"

	"github.com/milk9111/invasion/ecs"
	"github.com/milk9111/invasion/ecs/component"
	"github.com/milk9111/invasion/overlay"
)

// ControlsOverlayName identifies the controls overlay entity.
const ControlsOverlayName = "controls"

// NewOverlay creates an overlay entity and mounts its lifecycle. onClosed runs
// once, after the exit delay.
func NewOverlay(w *ecs.World, sched overlay.Scheduler, name string, delay time.Duration, onClosed func()) (ecs.Entity, *overlay.Lifecycle, error) {
	life := overlay.New(sched, delay, onClosed)
	life.OnChange(func(from, to overlay.Visibility) {
		log.Printf("[overlay] %s: %s -> %s", name, from, to)
	})

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.OverlayComponent.Kind(), &component.Overlay{
		Name:      name,
		Lifecycle: life,
	}); err != nil {
		return 0, nil, fmt.Errorf("overlay %s: add overlay: %w", name, err)
	}

	life.Mount()
	return e, life, nil
}
