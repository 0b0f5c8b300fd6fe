package component

// Transform places an entity in the scene. Y points up; negative Z is
// further from the camera.
type Transform struct {
	X        float64
	Y        float64
	Z        float64
	Scale    float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
