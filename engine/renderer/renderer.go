// Package renderer contains the render orchestrator: it owns the GPU
// geometry buffers, the per-frame uniform block, and the precompiled
// pipelines, and dispatches one of four shading routines per frame based
// on the active mode.
package renderer

import (
	"errors"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"github.com/cogentcore/webgpu/wgpu"

	"meshview/engine/camera"
	"meshview/engine/mesh"
	"meshview/engine/renderer/pipeline"
	"meshview/engine/texture"
	"meshview/engine/transform"
)

// ShadingMode selects which draw routine the orchestrator dispatches each
// frame. Transitions are driven entirely by the caller (key bindings);
// the orchestrator never changes mode on its own.
type ShadingMode int

const (
	// ModeWireframe draws the edge line list only.
	ModeWireframe ShadingMode = iota

	// ModeFlat draws flat-shaded triangles with the wireframe overlaid in
	// the same pass.
	ModeFlat

	// ModePerVertex draws smooth-shaded triangles using welded vertex
	// normals.
	ModePerVertex

	// ModeTextured draws smooth-shaded triangles sampling the base color
	// texture. Falls back to ModePerVertex when no texture is bound.
	ModeTextured
)

// String returns a human-readable name for logging.
func (m ShadingMode) String() string {
	switch m {
	case ModeWireframe:
		return "wireframe"
	case ModeFlat:
		return "flat"
	case ModePerVertex:
		return "per-vertex"
	case ModeTextured:
		return "textured"
	default:
		return fmt.Sprintf("unknown(%d)", int(m))
	}
}

const (
	pipelineKeyLine     = "line"
	pipelineKeyMesh     = "mesh"
	pipelineKeyTextured = "textured"

	// orthoFovFactor widens the field of view when switching to the
	// orthographic projection so the derived extent keeps the subject at a
	// comparable on-screen size.
	orthoFovFactor = 2.1
)

// renderer is the implementation of the Renderer interface.
type renderer struct {
	mu  *sync.Mutex
	log *zap.Logger

	backend   RendererBackend
	camera    camera.Camera
	transform transform.Controller
	geometry  *geometry

	pipelineCache map[string]pipeline.Pipeline

	mode        ShadingMode
	hasTexture  bool
	perspective bool
	baseFov     float32

	lightPosition    [3]float32
	lightParams      [4]float32
	specularExponent float32

	// Pre-creation config collected from builder options
	surfaceDescriptor    *wgpu.SurfaceDescriptor
	textureData          *texture.StagingData
	pendingPresentMode   *PresentMode
	forceFallbackAdapter bool
	meshRotation         [3]float32
	width, height        int
}

// Renderer defines the interface for the render orchestration engine.
//
// A Renderer is constructed once from a loaded mesh and then driven from a
// single goroutine: the window's update callback calls Frame once per
// display refresh, and the key handlers call the mode/animation/projection
// setters in between frames.
type Renderer interface {
	// Mode returns the active shading mode.
	//
	// Returns:
	//   - ShadingMode: the active mode
	Mode() ShadingMode

	// SetMode selects the shading mode dispatched on the next frame.
	// Selecting ModeTextured with no texture bound is valid; the textured
	// routine falls back to the per-vertex routine.
	//
	// Parameters:
	//   - mode: the shading mode to activate
	SetMode(mode ShadingMode)

	// Animating reports whether the orbit animation is running.
	//
	// Returns:
	//   - bool: true if animating
	Animating() bool

	// SetAnimating starts or stops the orbit animation. The animation
	// always restarts from the beginning of its cycle.
	//
	// Parameters:
	//   - enabled: true to animate
	SetAnimating(enabled bool)

	// Perspective reports whether the camera uses a perspective projection.
	//
	// Returns:
	//   - bool: true for perspective, false for orthographic
	Perspective() bool

	// SetPerspective switches between perspective and orthographic
	// projection. The orthographic projection widens the field of view so
	// the subject keeps a comparable on-screen size across the toggle.
	//
	// Parameters:
	//   - enabled: true for perspective, false for orthographic
	SetPerspective(enabled bool)

	// Resize reconfigures the presentation surface and the camera aspect
	// ratio for a new drawable size.
	//
	// Parameters:
	//   - width: the new width of the surface in pixels
	//   - height: the new height of the surface in pixels
	Resize(width, height int)

	// Frame renders one frame: refreshes the model matrix, pushes the
	// uniform snapshot, dispatches the active shading routine, and presents.
	// If no render target is available the frame is skipped entirely; this
	// is an expected transient condition during resize or minimize, not a
	// fault.
	Frame()
}

var _ Renderer = &renderer{}

// NewRenderer creates the render orchestrator for a loaded mesh: it builds
// the GPU backend (unless one is injected), uploads the three geometry
// streams, initializes the uniform block and optional texture, and
// compiles the three pipelines. Any failure other than the optional
// texture aborts construction.
//
// Parameters:
//   - m: the loaded mesh to render
//   - options: functional options to configure the renderer
//
// Returns:
//   - Renderer: the newly created renderer
//   - error: an error if any required GPU resource could not be created
func NewRenderer(m *mesh.Mesh, options ...RendererBuilderOption) (Renderer, error) {
	r := &renderer{
		mu:               &sync.Mutex{},
		log:              zap.NewNop(),
		pipelineCache:    make(map[string]pipeline.Pipeline),
		mode:             ModeFlat,
		perspective:      true,
		baseFov:          45.0 * (math.Pi / 180.0),
		lightPosition:    [3]float32{2, 4, 3},
		lightParams:      [4]float32{1.0, 0.15, 0.85, 0.4},
		specularExponent: 32,
		width:            800,
		height:           600,
	}
	for _, option := range options {
		option(r)
	}

	if r.backend == nil {
		if r.surfaceDescriptor == nil {
			return nil, errors.New("a surface descriptor or an explicit backend is required")
		}
		backend, err := newWGPURendererBackend(r.surfaceDescriptor, r.forceFallbackAdapter)
		if err != nil {
			return nil, err
		}
		r.backend = backend
	}

	if r.pendingPresentMode != nil {
		r.backend.SetPresentMode(*r.pendingPresentMode)
	}
	r.backend.ConfigureSurface(r.width, r.height)

	// The camera and the orbit are sized from the mesh bounds so meshes of
	// any scale frame the same way.
	radius := m.Radius()
	if radius == 0 {
		radius = 1
	}
	distance := 2.5 * radius
	r.camera = camera.NewCamera(
		camera.WithPosition(0, 0, distance),
		camera.WithTarget(0, 0, 0),
		camera.WithFov(r.baseFov),
		camera.WithAspect(float32(r.width)/float32(r.height)),
		camera.WithNear(distance/100),
		camera.WithFar(distance*100),
	)

	centroid := m.Centroid()
	r.transform = transform.NewController(
		transform.WithCentroid(centroid[0], centroid[1], centroid[2]),
		transform.WithBaseRotation(r.meshRotation[0], r.meshRotation[1], r.meshRotation[2]),
		transform.WithRecedeDirection(0, 0, -1),
		transform.WithRecedeDistance(1.5*radius),
	)

	var u GPUUniforms
	if err := r.backend.InitUniforms(uint64(u.Size())); err != nil {
		return nil, err
	}

	if r.textureData != nil {
		if err := r.backend.InitTexture(r.textureData); err != nil {
			// Texture is optional decoration; textured mode falls back to
			// per-vertex shading.
			r.log.Warn("failed to create texture, textured mode will fall back to per-vertex shading", zap.Error(err))
		} else {
			r.hasTexture = true
		}
	}

	geom, err := newGeometry(r.backend, m)
	if err != nil {
		return nil, err
	}
	r.geometry = geom

	if err := r.registerPipelines(); err != nil {
		return nil, err
	}

	return r, nil
}

// registerPipelines compiles the three fixed pipelines and caches them by
// key. The line pipeline is reused by both the wireframe mode and the
// flat-mode overlay.
func (r *renderer) registerPipelines() error {
	pipelines := []pipeline.Pipeline{
		pipeline.NewPipeline(pipelineKeyLine,
			pipeline.WithShaderSource(lineShaderSource),
			pipeline.WithTopology(wgpu.PrimitiveTopologyLineList),
		),
		pipeline.NewPipeline(pipelineKeyMesh,
			pipeline.WithShaderSource(meshShaderSource),
			pipeline.WithTopology(wgpu.PrimitiveTopologyTriangleList),
		),
	}
	if r.hasTexture {
		pipelines = append(pipelines, pipeline.NewPipeline(pipelineKeyTextured,
			pipeline.WithShaderSource(texturedShaderSource),
			pipeline.WithTopology(wgpu.PrimitiveTopologyTriangleList),
			pipeline.WithTextureBinding(true),
		))
	}
	for _, p := range pipelines {
		if err := r.backend.RegisterRenderPipeline(p); err != nil {
			return err
		}
		r.pipelineCache[p.PipelineKey()] = p
	}
	return nil
}

func (r *renderer) Mode() ShadingMode {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.mode
}

func (r *renderer) SetMode(mode ShadingMode) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.mode = mode
	r.log.Debug("shading mode changed", zap.Stringer("mode", mode))
}

func (r *renderer) Animating() bool {
	return r.transform.Animating()
}

func (r *renderer) SetAnimating(enabled bool) {
	r.transform.SetAnimating(enabled)
	r.log.Debug("animation toggled", zap.Bool("animating", enabled))
}

func (r *renderer) Perspective() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.perspective
}

func (r *renderer) SetPerspective(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.perspective = enabled
	fov := r.baseFov
	if !enabled {
		fov *= orthoFovFactor
	}
	r.camera.SetPerspective(enabled, fov)
	r.log.Debug("projection toggled", zap.Bool("perspective", enabled))
}

func (r *renderer) Resize(width, height int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.width, r.height = width, height
	r.backend.ConfigureSurface(width, height)
	r.camera.SetAspect(float32(width) / float32(height))
}

func (r *renderer) Frame() {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Acquire the render target first: when the surface is unavailable
	// (resize, minimize) the whole frame is skipped, including the
	// animation step, so the orbit resumes exactly where it paused.
	if err := r.backend.BeginFrame(); err != nil {
		r.log.Debug("render target unavailable, skipping frame", zap.Error(err))
		return
	}

	model, inverseTranspose := r.transform.ModelMatrix()
	px, py, pz := r.camera.Position()
	u := GPUUniforms{
		CameraMatrix:          r.camera.ViewProjection(),
		ModelMatrix:           model,
		ModelInverseTranspose: inverseTranspose,
		CameraPosition:        [4]float32{px, py, pz, 1},
		LightPosition:         [4]float32{r.lightPosition[0], r.lightPosition[1], r.lightPosition[2], 1},
		LightParams:           r.lightParams,
		SpecularExponent:      [4]float32{r.specularExponent, 0, 0, 0},
	}
	r.backend.WriteUniforms(u.Marshal())

	switch r.mode {
	case ModeWireframe:
		r.drawWireframe()
	case ModeFlat:
		r.drawFlat()
	case ModePerVertex:
		r.drawPerVertex()
	case ModeTextured:
		r.drawTextured()
	}

	r.backend.EndFrame()
	r.backend.Present()
}

// drawWireframe issues one line draw over the edge list.
func (r *renderer) drawWireframe() {
	r.backend.DrawCall(r.pipelineCache[pipelineKeyLine], r.geometry.lines)
}

// drawFlat issues the flat triangle draw and then overlays the wireframe
// in the same pass. Both draws share the uniform snapshot written before
// the pass, so the edges align exactly with the shaded surface.
func (r *renderer) drawFlat() {
	r.backend.DrawCall(r.pipelineCache[pipelineKeyMesh], r.geometry.flat)
	r.backend.DrawCall(r.pipelineCache[pipelineKeyLine], r.geometry.lines)
}

// drawPerVertex issues one triangle draw over the welded stream.
func (r *renderer) drawPerVertex() {
	r.backend.DrawCall(r.pipelineCache[pipelineKeyMesh], r.geometry.smooth)
}

// drawTextured samples the base color texture, or falls back to the
// per-vertex routine in its entirety when no texture is bound.
func (r *renderer) drawTextured() {
	if !r.hasTexture {
		r.drawPerVertex()
		return
	}
	r.backend.DrawCall(r.pipelineCache[pipelineKeyTextured], r.geometry.smooth)
}
