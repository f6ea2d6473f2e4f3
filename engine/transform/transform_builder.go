package transform

type ControllerBuilderOption func(*controllerImpl)

// WithCentroid sets the mesh centroid. The base placement translates by
// its negation so the mesh spins about its own center.
//
// Parameters:
//   - x, y, z: centroid components
//
// Returns:
//   - ControllerBuilderOption: a function that sets the centroid
func WithCentroid(x, y, z float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.centroid = [3]float32{x, y, z}
	}
}

// WithBaseRotation sets a fixed Euler rotation (radians, applied Y*X*Z)
// baked into the base placement, for meshes authored with a different up
// axis.
//
// Parameters:
//   - x, y, z: rotation angles in radians around each axis
//
// Returns:
//   - ControllerBuilderOption: a function that sets the base rotation
func WithBaseRotation(x, y, z float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.baseRotation = [3]float32{x, y, z}
	}
}

// WithRecedeDirection sets the world-space direction of the orbit's
// recede-and-return translation.
//
// Parameters:
//   - x, y, z: direction components
//
// Returns:
//   - ControllerBuilderOption: a function that sets the recede direction
func WithRecedeDirection(x, y, z float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.direction = [3]float32{x, y, z}
	}
}

// WithRecedeDistance sets the peak translation magnitude reached at the
// midpoint of the animation cycle.
//
// Parameters:
//   - distance: peak distance in world units
//
// Returns:
//   - ControllerBuilderOption: a function that sets the recede distance
func WithRecedeDistance(distance float32) ControllerBuilderOption {
	return func(c *controllerImpl) {
		c.distance = distance
	}
}
