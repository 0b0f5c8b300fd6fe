package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// PixelsPerUnit maps scene units to screen pixels at depth zero.
	PixelsPerUnit = 14.0
	// FocalLength controls how quickly things shrink with negative Z.
	FocalLength = 40.0
)

func Lerp(a, b, t float32) float32 {
	return a + t*(b-a)
}

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Project maps a scene point to screen space. Scene Y points up and the
// origin sits at the screen centre; negative Z is further from the camera.
// The returned factor scales sizes at that depth.
func Project(x, y, z float64) (sx, sy, factor float64) {
	depth := FocalLength - z
	if depth < 1 {
		depth = 1
	}
	factor = FocalLength / depth
	sx = BaseWidth/2 + x*PixelsPerUnit*factor
	sy = BaseHeight/2 - y*PixelsPerUnit*factor
	return sx, sy, factor
}
