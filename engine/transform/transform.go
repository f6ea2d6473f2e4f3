// Package transform produces the per-frame model matrix and its
// inverse-transpose. A fixed base placement recenters the mesh at the
// origin; an optional precomputed orbit animation layers a spin and a
// recede-and-return translation on top of it.
package transform

import (
	"math"
	"sync"

	"meshview/common"
)

const (
	// animationFrames is the length of one full animation cycle.
	animationFrames = 480
	// spinRate is the rotation about +Y per frame index in radians. Over a
	// full cycle this totals 480 * pi/120 = 4*pi, two full revolutions
	// paired with one recede-and-return translation.
	spinRate = math.Pi / 120.0
)

// entry is one precomputed model matrix with its matching
// inverse-transpose. The two are always built together so normal
// transforms never pair with a stale model matrix.
type entry struct {
	model            [16]float32
	inverseTranspose [16]float32
}

type controllerImpl struct {
	mu *sync.Mutex

	centroid     [3]float32
	baseRotation [3]float32
	direction    [3]float32
	distance     float32

	base      entry
	animation [animationFrames]entry

	animating bool
	frame     int
}

// Controller defines the interface for the transform controller.
// ModelMatrix is the per-frame entry point; everything else configures or
// inspects the animation state.
type Controller interface {
	// ModelMatrix returns the model matrix and its inverse-transpose for
	// the current frame. When animating, the animation cursor advances by
	// one (wrapping at the cycle length) after the matrices are taken, so
	// repeated calls step through the precomputed orbit with no skips and
	// no drift.
	//
	// Returns:
	//   - [16]float32: the model matrix (column-major)
	//   - [16]float32: transpose(inverse(model)), for normal transforms
	ModelMatrix() ([16]float32, [16]float32)

	// Animating reports whether the orbit animation is running.
	//
	// Returns:
	//   - bool: true if animating
	Animating() bool

	// Frame returns the current animation cursor in [0, cycle length).
	//
	// Returns:
	//   - int: the cursor value
	Frame() int

	// SetAnimating starts or stops the orbit animation. The cursor resets
	// to 0 either way, so a restarted animation always replays from the
	// beginning of the cycle.
	//
	// Parameters:
	//   - enabled: true to animate, false to hold the base placement
	SetAnimating(enabled bool)
}

var _ Controller = &controllerImpl{}

// NewController creates a new transform Controller. The base placement and
// the full animation table are precomputed here; the controller is
// read-only afterwards except for the animation cursor.
//
// Parameters:
//   - options: functional options to configure placement and orbit
//
// Returns:
//   - Controller: the newly created controller
func NewController(options ...ControllerBuilderOption) Controller {
	c := &controllerImpl{
		mu:        &sync.Mutex{},
		direction: [3]float32{0, 0, -1},
		distance:  2.0,
	}
	for _, option := range options {
		option(c)
	}
	c.precompute()
	return c
}

func (c *controllerImpl) ModelMatrix() ([16]float32, [16]float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.animating {
		return c.base.model, c.base.inverseTranspose
	}
	e := c.animation[c.frame]
	c.frame = (c.frame + 1) % animationFrames
	return e.model, e.inverseTranspose
}

func (c *controllerImpl) Animating() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.animating
}

func (c *controllerImpl) Frame() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frame
}

func (c *controllerImpl) SetAnimating(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.animating = enabled
	c.frame = 0
}

// translationMagnitude returns the recede distance at frame t: a
// piecewise-linear ramp from 0 up to the configured distance at the cycle
// midpoint and symmetrically back down, so magnitude(t) == magnitude(480-t).
func (c *controllerImpl) translationMagnitude(t int) float32 {
	half := t
	if t > animationFrames/2 {
		half = animationFrames - t
	}
	return c.distance * float32(half) / float32(animationFrames/2)
}

// precompute builds the base placement and all animation entries. Each
// animation matrix is T(direction * magnitude(t)) * RotY(t * spinRate)
// applied outside the base placement, with its inverse-transpose computed
// from the final product.
func (c *controllerImpl) precompute() {
	var rotation, recenter [16]float32
	common.BuildModelMatrix(rotation[:],
		0, 0, 0,
		c.baseRotation[0], c.baseRotation[1], c.baseRotation[2],
		1, 1, 1,
	)
	common.Translation(recenter[:], -c.centroid[0], -c.centroid[1], -c.centroid[2])
	common.Mul4(c.base.model[:], rotation[:], recenter[:])
	common.InverseTranspose(c.base.inverseTranspose[:], c.base.model[:])

	var spin, recede, orbit [16]float32
	for t := 0; t < animationFrames; t++ {
		common.RotationY(spin[:], float32(t)*spinRate)
		mag := c.translationMagnitude(t)
		common.Translation(recede[:],
			c.direction[0]*mag, c.direction[1]*mag, c.direction[2]*mag,
		)
		common.Mul4(orbit[:], recede[:], spin[:])
		common.Mul4(c.animation[t].model[:], orbit[:], c.base.model[:])
		common.InverseTranspose(c.animation[t].inverseTranspose[:], c.animation[t].model[:])
	}
}
