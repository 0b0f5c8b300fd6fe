package component

import "github.com/milk9111/invasion/overlay"

// Overlay is a full-screen UI layer with its own open/close lifecycle.
type Overlay struct {
	Name      string
	Lifecycle *overlay.Lifecycle
}

var OverlayComponent = NewComponent[Overlay]()

// OverlayCloseRequest is a one-shot request entity asking the named overlay
// to close. An empty name targets every open overlay.
type OverlayCloseRequest struct {
	Name string
}

var OverlayCloseRequestComponent = NewComponent[OverlayCloseRequest]()
