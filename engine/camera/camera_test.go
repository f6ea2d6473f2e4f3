package camera

import (
	"math"
	"testing"
)

// transformPoint applies a column-major 4x4 matrix to a point and performs
// the perspective divide.
func transformPoint(m [16]float32, x, y, z float32) (float32, float32, float32) {
	cx := m[0]*x + m[4]*y + m[8]*z + m[12]
	cy := m[1]*x + m[5]*y + m[9]*z + m[13]
	cz := m[2]*x + m[6]*y + m[10]*z + m[14]
	cw := m[3]*x + m[7]*y + m[11]*z + m[15]
	if cw != 0 {
		cx, cy, cz = cx/cw, cy/cw, cz/cw
	}
	return cx, cy, cz
}

func TestViewProjectionCentersTarget(t *testing.T) {
	c := NewCamera(
		WithPosition(0, 0, 3),
		WithTarget(0, 0, 0),
	)
	x, y, _ := transformPoint(c.ViewProjection(), 0, 0, 0)
	if math.Abs(float64(x)) > 1e-5 || math.Abs(float64(y)) > 1e-5 {
		t.Errorf("target should project to screen center, got (%v, %v)", x, y)
	}
}

func TestSetAspectChangesNextMatrix(t *testing.T) {
	c := NewCamera(WithAspect(800.0 / 600.0))
	before := c.ViewProjection()

	c.SetAspect(400.0 / 300.0)
	unchanged := c.ViewProjection()
	if unchanged != before {
		t.Error("same aspect ratio should produce the same matrix")
	}

	c.SetAspect(1920.0 / 600.0)
	after := c.ViewProjection()
	if after == before {
		t.Error("aspect change should be visible in the next matrix")
	}
	// Only the horizontal scale depends on the aspect ratio.
	if after[5] != before[5] {
		t.Errorf("vertical scale changed with aspect: %v vs %v", after[5], before[5])
	}
	if after[0] >= before[0] {
		t.Errorf("wider aspect should shrink horizontal scale: %v vs %v", after[0], before[0])
	}
}

func TestSetPerspectiveTogglesProjection(t *testing.T) {
	fov := float32(45.0 * math.Pi / 180.0)
	c := NewCamera(WithPosition(0, 0, 3), WithFov(fov))
	if !c.Perspective() {
		t.Fatal("camera should default to perspective")
	}
	persp := c.ViewProjection()

	c.SetPerspective(false, fov*2.1)
	if c.Perspective() {
		t.Fatal("SetPerspective(false, ...) should switch to orthographic")
	}
	ortho := c.ViewProjection()
	if persp == ortho {
		t.Fatal("projection toggle should change the matrix")
	}

	// Orthographic projection has no perspective divide: w stays 1 for any
	// depth, so the projected size of an offset point is depth-independent.
	nearX, _, _ := transformPoint(ortho, 1, 0, -1)
	farX, _, _ := transformPoint(ortho, 1, 0, -50)
	if math.Abs(float64(nearX-farX)) > 1e-5 {
		t.Errorf("orthographic projection should be depth independent: %v vs %v", nearX, farX)
	}

	c.SetPerspective(true, fov)
	if got := c.ViewProjection(); got != persp {
		t.Error("switching back should restore the perspective matrix")
	}
}

func TestPerspectiveForeshortens(t *testing.T) {
	c := NewCamera(WithPosition(0, 0, 3))
	m := c.ViewProjection()
	nearX, _, _ := transformPoint(m, 1, 0, 0)
	farX, _, _ := transformPoint(m, 1, 0, -20)
	if math.Abs(float64(farX)) >= math.Abs(float64(nearX)) {
		t.Errorf("distant points should project smaller: near %v, far %v", nearX, farX)
	}
}
