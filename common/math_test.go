package common

import "testing"

func TestProject(t *testing.T) {
	tests := []struct {
		name       string
		x, y, z    float64
		wantX      float64
		wantY      float64
		wantFactor float64
	}{
		{"origin", 0, 0, 0, BaseWidth / 2, BaseHeight / 2, 1},
		{"right up", 1, 1, 0, BaseWidth/2 + PixelsPerUnit, BaseHeight/2 - PixelsPerUnit, 1},
		{"far", 0, 0, -FocalLength, BaseWidth / 2, BaseHeight / 2, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y, f := Project(tt.x, tt.y, tt.z)
			if x != tt.wantX || y != tt.wantY || f != tt.wantFactor {
				t.Fatalf("Project(%v,%v,%v) = %v,%v,%v; want %v,%v,%v", tt.x, tt.y, tt.z, x, y, f, tt.wantX, tt.wantY, tt.wantFactor)
			}
		})
	}
}

func TestProjectBehindCameraClamps(t *testing.T) {
	_, _, f := Project(0, 0, FocalLength+10)
	if f != FocalLength {
		t.Fatalf("factor = %v, want %v", f, FocalLength)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(-1, 0, 1) != 0 || Clamp(2, 0, 1) != 1 || Clamp(0.5, 0, 1) != 0.5 {
		t.Fatal("Clamp out of range")
	}
}
