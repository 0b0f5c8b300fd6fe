package component

import (
	"time"

	"github.com/milk9111/invasion/cinematic"
)

// CinematicActor binds an entity's transform to a scripted fly-off.
type CinematicActor struct {
	Controller *cinematic.Controller
	// StartedAt is the scene clock reading when the actor was created; the
	// controller sees time relative to it.
	StartedAt time.Duration
}

var CinematicActorComponent = NewComponent[CinematicActor]()
