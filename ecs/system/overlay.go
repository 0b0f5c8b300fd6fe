package system

import (
	"log"

	"github.com/milk9111/invasion/ecs"
	"github.com/milk9111/invasion/ecs/component"
	"github.com/milk9111/invasion/overlay"
)

// OverlaySystem turns close requests into lifecycle calls and removes
// overlays once their exit has finished.
type OverlaySystem struct{}

func NewOverlaySystem() *OverlaySystem {
	return &OverlaySystem{}
}

func (s *OverlaySystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.OverlayCloseRequestComponent.Kind(), func(req ecs.Entity, r *component.OverlayCloseRequest) {
		ecs.ForEach(w, component.OverlayComponent.Kind(), func(_ ecs.Entity, o *component.Overlay) {
			if r.Name != "" && r.Name != o.Name {
				return
			}
			o.Lifecycle.RequestClose()
		})
		ecs.DestroyEntity(w, req)
	})

	ecs.ForEach(w, component.OverlayComponent.Kind(), func(e ecs.Entity, o *component.Overlay) {
		if o.Lifecycle != nil && o.Lifecycle.State() != overlay.Closed && !o.Lifecycle.Destroyed() {
			return
		}
		o.Lifecycle.Destroy()
		ecs.DestroyEntity(w, e)
		log.Printf("[overlay] %s removed", o.Name)
	})
}

// RequestOverlayClose queues a close for the named overlay; an empty name
// closes all of them.
func RequestOverlayClose(w *ecs.World, name string) error {
	e := ecs.CreateEntity(w)
	return ecs.Add(w, e, component.OverlayCloseRequestComponent.Kind(), &component.OverlayCloseRequest{Name: name})
}

// OpenOverlay reports whether an overlay with name exists and is not closed.
func OpenOverlay(w *ecs.World, name string) (*component.Overlay, bool) {
	for _, e := range w.Query(component.OverlayComponent.Kind()) {
		o, ok := ecs.Get(w, e, component.OverlayComponent.Kind())
		if !ok || o.Name != name || o.Lifecycle.State() == overlay.Closed {
			continue
		}
		return o, true
	}
	return nil, false
}
