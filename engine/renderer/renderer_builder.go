package renderer

import (
	"github.com/cogentcore/webgpu/wgpu"

	"meshview/engine/texture"

	"go.uber.org/zap"
)

// RendererBuilderOption is a functional option applied to a renderer during construction via NewRenderer.
type RendererBuilderOption func(*renderer)

// WithBackend injects an explicit RendererBackend instead of constructing
// the wgpu backend from a surface descriptor. Used by tests and by
// alternative backend implementations.
//
// Parameters:
//   - backend: the backend to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the backend option to a renderer
func WithBackend(backend RendererBackend) RendererBuilderOption {
	return func(r *renderer) {
		r.backend = backend
	}
}

// WithSurfaceDescriptor sets the wgpu surface descriptor obtained from the
// window layer. Required unless an explicit backend is injected.
//
// Parameters:
//   - descriptor: the surface descriptor for the window
//
// Returns:
//   - RendererBuilderOption: a function that applies the surface descriptor option to a renderer
func WithSurfaceDescriptor(descriptor *wgpu.SurfaceDescriptor) RendererBuilderOption {
	return func(r *renderer) {
		r.surfaceDescriptor = descriptor
	}
}

// WithSize sets the initial drawable size in pixels.
//
// Parameters:
//   - width: the drawable width in pixels
//   - height: the drawable height in pixels
//
// Returns:
//   - RendererBuilderOption: a function that applies the size option to a renderer
func WithSize(width, height int) RendererBuilderOption {
	return func(r *renderer) {
		r.width = width
		r.height = height
	}
}

// WithTexture supplies decoded base color texture data. When set, the
// textured pipeline is compiled and textured mode samples this texture.
//
// Parameters:
//   - stagingData: the decoded RGBA pixels and dimensions
//
// Returns:
//   - RendererBuilderOption: a function that applies the texture option to a renderer
func WithTexture(stagingData *texture.StagingData) RendererBuilderOption {
	return func(r *renderer) {
		r.textureData = stagingData
	}
}

// WithPresentMode sets the surface present mode which controls how frames are delivered to the display.
//
// Parameters:
//   - mode: the PresentMode to use (VSync or Uncapped)
//
// Returns:
//   - RendererBuilderOption: a function that applies the present mode option to a renderer
func WithPresentMode(mode PresentMode) RendererBuilderOption {
	return func(r *renderer) {
		r.pendingPresentMode = &mode
	}
}

// WithForceSoftwareRenderer forces WGPU to use a CPU/software fallback adapter instead of
// hardware GPU acceleration. This requires a software Vulkan ICD to be installed on the system
// (e.g. SwiftShader or lavapipe).
//
// Parameters:
//   - force: true to force the software fallback adapter, false to use hardware (default)
//
// Returns:
//   - RendererBuilderOption: a function that applies the force software renderer option to a renderer
func WithForceSoftwareRenderer(force bool) RendererBuilderOption {
	return func(r *renderer) {
		r.forceFallbackAdapter = force
	}
}

// WithLogger sets the structured logger used for per-frame debug events
// and texture fallback warnings.
//
// Parameters:
//   - log: the zap logger to use
//
// Returns:
//   - RendererBuilderOption: a function that applies the logger option to a renderer
func WithLogger(log *zap.Logger) RendererBuilderOption {
	return func(r *renderer) {
		r.log = log
	}
}

// WithShadingMode sets the initial shading mode.
//
// Parameters:
//   - mode: the shading mode to start with
//
// Returns:
//   - RendererBuilderOption: a function that applies the shading mode option to a renderer
func WithShadingMode(mode ShadingMode) RendererBuilderOption {
	return func(r *renderer) {
		r.mode = mode
	}
}

// WithFieldOfView sets the base vertical field of view in radians. The
// orthographic projection derives its extents from a widened copy of this
// value.
//
// Parameters:
//   - fov: field of view in radians
//
// Returns:
//   - RendererBuilderOption: a function that applies the field of view option to a renderer
func WithFieldOfView(fov float32) RendererBuilderOption {
	return func(r *renderer) {
		r.baseFov = fov
	}
}

// WithMeshRotation sets a fixed Euler rotation (radians) baked into the
// mesh's base placement, for meshes authored with a different up axis.
//
// Parameters:
//   - x, y, z: rotation angles in radians around each axis
//
// Returns:
//   - RendererBuilderOption: a function that applies the mesh rotation option to a renderer
func WithMeshRotation(x, y, z float32) RendererBuilderOption {
	return func(r *renderer) {
		r.meshRotation = [3]float32{x, y, z}
	}
}

// WithLightPosition sets the world-space light position.
//
// Parameters:
//   - x, y, z: light position components
//
// Returns:
//   - RendererBuilderOption: a function that applies the light position option to a renderer
func WithLightPosition(x, y, z float32) RendererBuilderOption {
	return func(r *renderer) {
		r.lightPosition = [3]float32{x, y, z}
	}
}

// WithLightParams sets the lighting coefficients uploaded in the uniform
// block.
//
// Parameters:
//   - intensity: overall light intensity multiplier
//   - ambient: ambient term coefficient
//   - diffuse: diffuse term coefficient
//   - specular: specular term coefficient
//
// Returns:
//   - RendererBuilderOption: a function that applies the light params option to a renderer
func WithLightParams(intensity, ambient, diffuse, specular float32) RendererBuilderOption {
	return func(r *renderer) {
		r.lightParams = [4]float32{intensity, ambient, diffuse, specular}
	}
}

// WithSpecularExponent sets the Blinn-Phong specular exponent.
//
// Parameters:
//   - exponent: the specular exponent
//
// Returns:
//   - RendererBuilderOption: a function that applies the specular exponent option to a renderer
func WithSpecularExponent(exponent float32) RendererBuilderOption {
	return func(r *renderer) {
		r.specularExponent = exponent
	}
}
