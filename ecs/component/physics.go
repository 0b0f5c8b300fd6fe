package component

import "github.com/jakecoffman/cp"

// KinematicBody mirrors a scripted actor into the physics space. The body is
// created lazily by the physics system; Radius sizes the sensor shape.
type KinematicBody struct {
	Body   *cp.Body
	Shape  *cp.Shape
	Radius float64
}

var KinematicBodyComponent = NewComponent[KinematicBody]()
