package renderer

import (
	"errors"
	"strings"
	"testing"

	"meshview/engine/mesh"
	"meshview/engine/renderer/pipeline"
	"meshview/engine/texture"
)

const triangleOBJ = `
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
f 1/1 2/2 3/3
`

func loadTestMesh(t *testing.T) *mesh.Mesh {
	t.Helper()
	m, err := mesh.DecodeOBJ(strings.NewReader(triangleOBJ))
	if err != nil {
		t.Fatalf("DecodeOBJ: %v", err)
	}
	return m
}

// fakeMeshBuffer is the MeshBuffer handle handed out by the fake backend.
type fakeMeshBuffer struct {
	label      string
	indexCount int
}

func (f *fakeMeshBuffer) Label() string   { return f.label }
func (f *fakeMeshBuffer) IndexCount() int { return f.indexCount }

// recordedDraw captures everything the orchestrator hands to a draw call,
// plus which uniform write it was issued under.
type recordedDraw struct {
	pipelineKey string
	buffer      string
	indexCount  int
	uniformSeq  int
}

// fakeBackend records the orchestrator's calls instead of talking to a GPU.
type fakeBackend struct {
	beginErr error

	draws         []recordedDraw
	uniformWrites int
	configures    [][2]int
	registered    []string
	uniformSize   uint64
	textures      int
	begins        int
	ends          int
	presents      int
}

var _ RendererBackend = &fakeBackend{}

func (f *fakeBackend) ConfigureSurface(width, height int) {
	f.configures = append(f.configures, [2]int{width, height})
}

func (f *fakeBackend) SetPresentMode(PresentMode) {}

func (f *fakeBackend) InitUniforms(size uint64) error {
	f.uniformSize = size
	return nil
}

func (f *fakeBackend) InitTexture(*texture.StagingData) error {
	f.textures++
	return nil
}

func (f *fakeBackend) RegisterRenderPipeline(p pipeline.Pipeline) error {
	f.registered = append(f.registered, p.PipelineKey())
	return nil
}

func (f *fakeBackend) CreateMeshBuffer(label string, vertexData, indexData []byte, indexCount int) (MeshBuffer, error) {
	return &fakeMeshBuffer{label: label, indexCount: indexCount}, nil
}

func (f *fakeBackend) WriteUniforms(data []byte) {
	f.uniformWrites++
}

func (f *fakeBackend) BeginFrame() error {
	if f.beginErr != nil {
		return f.beginErr
	}
	f.begins++
	return nil
}

func (f *fakeBackend) DrawCall(p pipeline.Pipeline, buffer MeshBuffer) {
	f.draws = append(f.draws, recordedDraw{
		pipelineKey: p.PipelineKey(),
		buffer:      buffer.Label(),
		indexCount:  buffer.IndexCount(),
		uniformSeq:  f.uniformWrites,
	})
}

func (f *fakeBackend) EndFrame() { f.ends++ }
func (f *fakeBackend) Present()  { f.presents++ }

func newTestRenderer(t *testing.T, backend *fakeBackend, options ...RendererBuilderOption) Renderer {
	t.Helper()
	options = append([]RendererBuilderOption{WithBackend(backend)}, options...)
	r, err := NewRenderer(loadTestMesh(t), options...)
	if err != nil {
		t.Fatalf("NewRenderer: %v", err)
	}
	return r
}

func TestUniformBlockIs256Bytes(t *testing.T) {
	var u GPUUniforms
	if u.Size() != 256 {
		t.Fatalf("uniform block size: got %d, want 256", u.Size())
	}
	if got := len(u.Marshal()); got != 256 {
		t.Fatalf("marshaled size: got %d, want 256", got)
	}
}

func TestModeDispatch(t *testing.T) {
	backend := &fakeBackend{}
	r := newTestRenderer(t, backend)

	r.SetMode(ModeWireframe)
	r.Frame()
	r.SetMode(ModePerVertex)
	r.Frame()

	if len(backend.draws) != 2 {
		t.Fatalf("draw count: got %d, want 2", len(backend.draws))
	}
	if backend.draws[0].pipelineKey != pipelineKeyLine || backend.draws[0].buffer != "lines" {
		t.Errorf("wireframe draw: got %+v", backend.draws[0])
	}
	if backend.draws[1].pipelineKey != pipelineKeyMesh || backend.draws[1].buffer != "smooth" {
		t.Errorf("per-vertex draw: got %+v", backend.draws[1])
	}
}

func TestFlatModeOverlaysWireframe(t *testing.T) {
	backend := &fakeBackend{}
	r := newTestRenderer(t, backend, WithShadingMode(ModeFlat))

	r.Frame()

	if len(backend.draws) != 2 {
		t.Fatalf("flat mode should issue exactly two draws, got %d", len(backend.draws))
	}
	first, second := backend.draws[0], backend.draws[1]
	if first.pipelineKey != pipelineKeyMesh || first.buffer != "flat" {
		t.Errorf("first draw should be the flat triangle pass, got %+v", first)
	}
	if second.pipelineKey != pipelineKeyLine || second.buffer != "lines" {
		t.Errorf("second draw should be the wireframe overlay, got %+v", second)
	}
	if first.uniformSeq != second.uniformSeq {
		t.Error("both flat-mode draws must share one uniform snapshot")
	}
	if backend.uniformWrites != 1 {
		t.Errorf("uniform writes: got %d, want 1", backend.uniformWrites)
	}
}

func TestTexturedFallbackMatchesPerVertex(t *testing.T) {
	// No texture bound: the textured routine must produce exactly the same
	// draw calls as the per-vertex routine.
	backend := &fakeBackend{}
	r := newTestRenderer(t, backend)

	r.SetMode(ModeTextured)
	r.Frame()
	r.SetMode(ModePerVertex)
	r.Frame()

	if len(backend.draws) != 2 {
		t.Fatalf("draw count: got %d, want 2", len(backend.draws))
	}
	fallback, direct := backend.draws[0], backend.draws[1]
	if fallback.pipelineKey != direct.pipelineKey ||
		fallback.buffer != direct.buffer ||
		fallback.indexCount != direct.indexCount {
		t.Errorf("fallback draw %+v differs from per-vertex draw %+v", fallback, direct)
	}
}

func TestTexturedModeUsesTexturePipeline(t *testing.T) {
	backend := &fakeBackend{}
	staging := &texture.StagingData{Pixels: make([]byte, 4), Width: 1, Height: 1}
	r := newTestRenderer(t, backend, WithTexture(staging), WithShadingMode(ModeTextured))

	if backend.textures != 1 {
		t.Fatalf("texture inits: got %d, want 1", backend.textures)
	}
	r.Frame()

	if len(backend.draws) != 1 {
		t.Fatalf("draw count: got %d, want 1", len(backend.draws))
	}
	if backend.draws[0].pipelineKey != pipelineKeyTextured || backend.draws[0].buffer != "smooth" {
		t.Errorf("textured draw: got %+v", backend.draws[0])
	}
}

func TestFrameSkippedWhenTargetUnavailable(t *testing.T) {
	backend := &fakeBackend{beginErr: errors.New("surface lost")}
	r := newTestRenderer(t, backend, WithShadingMode(ModeFlat))
	r.SetAnimating(true)

	r.Frame()

	if len(backend.draws) != 0 {
		t.Errorf("skipped frame issued %d draws", len(backend.draws))
	}
	if backend.uniformWrites != 0 {
		t.Error("skipped frame wrote uniforms")
	}
	if backend.ends != 0 || backend.presents != 0 {
		t.Error("skipped frame submitted or presented")
	}

	// The surface recovers; rendering resumes.
	backend.beginErr = nil
	r.Frame()
	if len(backend.draws) != 2 || backend.presents != 1 {
		t.Errorf("after recovery: %d draws, %d presents", len(backend.draws), backend.presents)
	}
}

func TestResizeReconfiguresSurface(t *testing.T) {
	backend := &fakeBackend{}
	r := newTestRenderer(t, backend, WithSize(800, 600))

	r.Resize(400, 300)

	if len(backend.configures) != 2 {
		t.Fatalf("configure count: got %d, want 2", len(backend.configures))
	}
	if backend.configures[0] != [2]int{800, 600} || backend.configures[1] != [2]int{400, 300} {
		t.Errorf("configured sizes: got %v", backend.configures)
	}
}

func TestPipelineRegistration(t *testing.T) {
	backend := &fakeBackend{}
	newTestRenderer(t, backend)
	// Without a texture only the line and mesh pipelines are compiled.
	if len(backend.registered) != 2 {
		t.Fatalf("registered pipelines: got %v", backend.registered)
	}
	if backend.uniformSize != 256 {
		t.Errorf("uniform buffer size: got %d, want 256", backend.uniformSize)
	}

	withTexture := &fakeBackend{}
	staging := &texture.StagingData{Pixels: make([]byte, 4), Width: 1, Height: 1}
	newTestRenderer(t, withTexture, WithTexture(staging))
	if len(withTexture.registered) != 3 {
		t.Fatalf("registered pipelines with texture: got %v", withTexture.registered)
	}
}
