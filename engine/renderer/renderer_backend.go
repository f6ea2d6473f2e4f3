package renderer

import (
	"meshview/engine/renderer/pipeline"
	"meshview/engine/texture"
)

// RendererBackendType identifies the GPU backend implementation used by the Renderer.
type RendererBackendType int

const (
	// BackendTypeWGPU selects the WebGPU-based rendering backend.
	BackendTypeWGPU RendererBackendType = iota
)

// PresentMode controls how rendered frames are presented to the display surface.
type PresentMode int

const (
	// PresentModeVSync waits for the next vertical blank before presenting, capping frame rate
	// to the monitor's refresh rate. Eliminates tearing.
	PresentModeVSync PresentMode = iota

	// PresentModeUncapped presents frames immediately without waiting for vertical blank.
	// May cause screen tearing but provides the lowest latency.
	PresentModeUncapped
)

// MeshBuffer is an opaque handle to a GPU-resident vertex/index buffer pair
// created by a backend. Handles are only valid with the backend that
// created them.
type MeshBuffer interface {
	// Label returns the label the buffer was created with.
	//
	// Returns:
	//   - string: the buffer label
	Label() string

	// IndexCount returns the number of indices the buffer draws.
	//
	// Returns:
	//   - int: the index count
	IndexCount() int
}

// RendererBackend is the GPU abstraction the render orchestrator drives.
// Construction-time methods (ConfigureSurface, InitUniforms, InitTexture,
// RegisterRenderPipeline, CreateMeshBuffer) may fail; per-frame methods are
// infallible except BeginFrame, whose error signals a transient surface
// loss and means the whole frame must be skipped.
type RendererBackend interface {
	// ConfigureSurface (re)configures the presentation surface and rebuilds
	// the depth attachment for the given drawable size. Called once at
	// startup and again on every window resize.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	ConfigureSurface(width, height int)

	// SetPresentMode sets the surface present mode which controls how frames
	// are delivered to the display. Takes effect on the next ConfigureSurface.
	//
	// Parameters:
	//   - mode: the PresentMode to use (VSync or Uncapped)
	SetPresentMode(mode PresentMode)

	// InitUniforms creates the shared per-frame uniform buffer and its bind
	// group. Must be called before RegisterRenderPipeline.
	//
	// Parameters:
	//   - size: the uniform buffer size in bytes
	//
	// Returns:
	//   - error: an error if the buffer or bind group could not be created
	InitUniforms(size uint64) error

	// InitTexture uploads decoded texture data and creates the texture view,
	// sampler, and texture bind group used by texture-sampling pipelines.
	//
	// Parameters:
	//   - stagingData: the decoded RGBA pixels and dimensions
	//
	// Returns:
	//   - error: an error if the GPU resources could not be created
	InitTexture(stagingData *texture.StagingData) error

	// RegisterRenderPipeline compiles the pipeline's WGSL module and creates
	// the GPU render pipeline from its configuration, storing the result on
	// the pipeline via SetRenderPipeline.
	//
	// Parameters:
	//   - p: the pipeline object containing the shader source and configuration
	//
	// Returns:
	//   - error: an error if the pipeline could not be created, otherwise nil
	RegisterRenderPipeline(p pipeline.Pipeline) error

	// CreateMeshBuffer uploads vertex and index data to the GPU and returns
	// a handle for draw calls.
	//
	// Parameters:
	//   - label: a debug label for the GPU buffers
	//   - vertexData: the raw vertex data bytes to upload
	//   - indexData: the raw index data bytes to upload
	//   - indexCount: the number of indices represented in indexData
	//
	// Returns:
	//   - MeshBuffer: the created buffer handle
	//   - error: an error if the buffers could not be created
	CreateMeshBuffer(label string, vertexData, indexData []byte, indexCount int) (MeshBuffer, error)

	// WriteUniforms writes the per-frame uniform snapshot to the GPU queue.
	//
	// Parameters:
	//   - data: the marshaled uniform block
	WriteUniforms(data []byte)

	// BeginFrame acquires the next surface texture, creates a command
	// encoder, begins the render pass, and sets the viewport to the full
	// drawable. An error means no render target is available this frame;
	// the caller skips the frame and tries again next tick.
	//
	// Returns:
	//   - error: an error if the surface texture could not be acquired
	BeginFrame() error

	// DrawCall encodes a single indexed draw within the current render pass
	// started by BeginFrame. Multiple DrawCall invocations can be made
	// between BeginFrame and EndFrame; they share the pass and its uniform
	// state.
	//
	// Parameters:
	//   - p: the cached Pipeline containing the render pipeline to use
	//   - buffer: the MeshBuffer holding vertex and index data
	DrawCall(p pipeline.Pipeline, buffer MeshBuffer)

	// EndFrame ends the current render pass and submits the command buffer
	// to the GPU. Does not present the surface — call Present() after
	// EndFrame to display the frame.
	EndFrame()

	// Present presents the surface to the display and releases the surface
	// texture. Must be called once per frame after EndFrame.
	Present()
}
