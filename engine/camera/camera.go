// Package camera provides the viewer camera: a fixed eye/target pair with
// a switchable perspective or orthographic projection.
package camera

import (
	"math"
	"sync"

	"github.com/chewxy/math32"

	"meshview/common"
)

// orthoExtentScale converts the near-plane half extent of the perspective
// frustum into an orthographic half extent that frames the subject at a
// comparable apparent size.
const orthoExtentScale = 60.0

type cameraImpl struct {
	mu *sync.Mutex

	position [3]float32
	target   [3]float32
	up       [3]float32

	fov         float32
	aspect      float32
	near        float32
	far         float32
	perspective bool
}

// Camera defines the interface for the viewer camera.
// The camera holds placement and projection settings and recomputes the
// combined view-projection matrix on every ViewProjection call, so setter
// effects are always reflected in the next frame.
type Camera interface {
	// Position returns the camera position in world space.
	//
	// Returns:
	//   - x, y, z: position components
	Position() (x, y, z float32)

	// Target returns the point the camera looks at.
	//
	// Returns:
	//   - x, y, z: target components
	Target() (x, y, z float32)

	// Up returns the camera's up vector.
	//
	// Returns:
	//   - x, y, z: up vector components
	Up() (x, y, z float32)

	// Fov returns the vertical field of view in radians.
	//
	// Returns:
	//   - float32: field of view in radians
	Fov() float32

	// Aspect returns the aspect ratio (width / height).
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32

	// Near returns the near clipping plane distance.
	//
	// Returns:
	//   - float32: near plane distance
	Near() float32

	// Far returns the far clipping plane distance.
	//
	// Returns:
	//   - float32: far plane distance
	Far() float32

	// Perspective reports whether the camera uses a perspective projection.
	//
	// Returns:
	//   - bool: true for perspective, false for orthographic
	Perspective() bool

	// ViewProjection computes and returns the combined view-projection
	// matrix (column-major). The matrix is rebuilt from the current
	// placement and projection settings on every call.
	//
	// Returns:
	//   - [16]float32: the combined view-projection matrix
	ViewProjection() [16]float32

	// SetPosition sets the camera position in world space.
	//
	// Parameters:
	//   - x, y, z: position components
	SetPosition(x, y, z float32)

	// SetTarget sets the point the camera looks at.
	//
	// Parameters:
	//   - x, y, z: target components
	SetTarget(x, y, z float32)

	// SetPerspective switches between perspective and orthographic
	// projection and updates the field of view in the same step. The
	// orthographic extents are derived from the field of view, so widening
	// it while switching keeps the subject at a comparable on-screen size.
	//
	// Parameters:
	//   - enabled: true for perspective, false for orthographic
	//   - fov: vertical field of view in radians
	SetPerspective(enabled bool, fov float32)

	// SetAspect sets the aspect ratio (width / height). Called on window
	// resize so the projection tracks the drawable.
	//
	// Parameters:
	//   - aspect: the aspect ratio
	SetAspect(aspect float32)
}

var _ Camera = &cameraImpl{}

// NewCamera creates a new Camera with default placement and perspective
// settings.
//
// Parameters:
//   - options: functional options to configure the camera
//
// Returns:
//   - Camera: the newly created camera
func NewCamera(options ...CameraBuilderOption) Camera {
	c := &cameraImpl{
		mu:          &sync.Mutex{},
		position:    [3]float32{0, 0, 3},
		target:      [3]float32{0, 0, 0},
		up:          [3]float32{0, 1, 0},
		fov:         45.0 * (math.Pi / 180.0), // radians
		aspect:      1.0,
		near:        0.1,
		far:         100.0,
		perspective: true,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

func (c *cameraImpl) Position() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.position[0], c.position[1], c.position[2]
}

func (c *cameraImpl) Target() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target[0], c.target[1], c.target[2]
}

func (c *cameraImpl) Up() (x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.up[0], c.up[1], c.up[2]
}

func (c *cameraImpl) Fov() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fov
}

func (c *cameraImpl) Aspect() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.aspect
}

func (c *cameraImpl) Near() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.near
}

func (c *cameraImpl) Far() float32 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.far
}

func (c *cameraImpl) Perspective() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.perspective
}

func (c *cameraImpl) ViewProjection() [16]float32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	var view, projection, viewProjection [16]float32
	common.LookAt(view[:],
		c.position[0], c.position[1], c.position[2],
		c.target[0], c.target[1], c.target[2],
		c.up[0], c.up[1], c.up[2],
	)

	if c.perspective {
		common.Perspective(projection[:], c.fov, c.aspect, c.near, c.far)
	} else {
		top := math32.Tan(c.fov/2.0) * c.near * orthoExtentScale
		common.Orthographic(projection[:], top*c.aspect, top, c.near, c.far)
	}

	common.Mul4(viewProjection[:], projection[:], view[:])
	return viewProjection
}

func (c *cameraImpl) SetPosition(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.position = [3]float32{x, y, z}
}

func (c *cameraImpl) SetTarget(x, y, z float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.target = [3]float32{x, y, z}
}

func (c *cameraImpl) SetPerspective(enabled bool, fov float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.perspective = enabled
	c.fov = fov
}

func (c *cameraImpl) SetAspect(aspect float32) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.aspect = aspect
}
