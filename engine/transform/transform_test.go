package transform

import (
	"math"
	"testing"

	"meshview/common"
)

func TestCursorAdvancesModuloCycle(t *testing.T) {
	c := NewController()
	c.SetAnimating(true)
	for i := 0; i < animationFrames*2; i++ {
		if got, want := c.Frame(), i%animationFrames; got != want {
			t.Fatalf("after %d frames: cursor %d, want %d", i, got, want)
		}
		c.ModelMatrix()
	}
	if c.Frame() != 0 {
		t.Errorf("cursor should return to 0 after two full cycles, got %d", c.Frame())
	}
}

func TestCursorHoldsWhenNotAnimating(t *testing.T) {
	c := NewController()
	first, _ := c.ModelMatrix()
	second, _ := c.ModelMatrix()
	if first != second {
		t.Error("model matrix should be constant while not animating")
	}
	if c.Frame() != 0 {
		t.Errorf("cursor moved without animation: %d", c.Frame())
	}
}

func TestSetAnimatingResetsCursor(t *testing.T) {
	c := NewController()
	c.SetAnimating(true)
	for i := 0; i < 100; i++ {
		c.ModelMatrix()
	}
	if c.Frame() != 100 {
		t.Fatalf("cursor: got %d, want 100", c.Frame())
	}

	c.SetAnimating(false)
	if c.Frame() != 0 {
		t.Errorf("disabling animation should reset the cursor, got %d", c.Frame())
	}

	c.SetAnimating(true)
	for i := 0; i < 7; i++ {
		c.ModelMatrix()
	}
	c.SetAnimating(true)
	if c.Frame() != 0 {
		t.Errorf("re-enabling animation should reset the cursor, got %d", c.Frame())
	}
}

func TestTranslationMagnitudeSymmetry(t *testing.T) {
	c := NewController(WithRecedeDistance(3)).(*controllerImpl)
	for i := 1; i < animationFrames; i++ {
		a := c.translationMagnitude(i)
		b := c.translationMagnitude(animationFrames - i)
		if a != b {
			t.Fatalf("magnitude(%d)=%v != magnitude(%d)=%v", i, a, animationFrames-i, b)
		}
	}
	if c.translationMagnitude(0) != 0 {
		t.Error("cycle should start with no translation")
	}
	if got := c.translationMagnitude(animationFrames / 2); got != 3 {
		t.Errorf("midpoint magnitude: got %v, want the configured distance", got)
	}
}

func TestInverseTransposePairsWithModelMatrix(t *testing.T) {
	c := NewController(
		WithCentroid(0.3, -1.2, 4),
		WithBaseRotation(0, math.Pi/2, 0),
		WithRecedeDistance(2.5),
	)
	c.SetAnimating(true)
	for i := 0; i < animationFrames; i++ {
		model, invT := c.ModelMatrix()

		var want [16]float32
		if !common.InverseTranspose(want[:], model[:]) {
			t.Fatalf("frame %d: model matrix not invertible", i)
		}
		for j := range want {
			if math.Abs(float64(invT[j]-want[j])) > 1e-5 {
				t.Fatalf("frame %d: inverse-transpose does not pair with model matrix", i)
			}
		}
	}
}

func TestAnimationStartMatchesBasePlacement(t *testing.T) {
	c := NewController(WithCentroid(1, 2, 3))
	base, _ := c.ModelMatrix()
	c.SetAnimating(true)
	frame0, _ := c.ModelMatrix()
	// Frame 0 carries zero rotation and zero translation.
	if frame0 != base {
		t.Error("first animation frame should equal the base placement")
	}
}
