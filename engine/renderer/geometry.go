package renderer

import (
	"fmt"

	"meshview/common"
	"meshview/engine/mesh"
)

// geometry is the GPU-resident geometry store: one buffer per prepared
// mesh stream, created once at renderer construction and read-only
// afterwards. Any buffer failure aborts construction.
type geometry struct {
	lines  MeshBuffer
	flat   MeshBuffer
	smooth MeshBuffer
}

// newGeometry uploads the three mesh streams through the backend.
func newGeometry(backend RendererBackend, m *mesh.Mesh) (*geometry, error) {
	upload := func(label string, s mesh.Stream) (MeshBuffer, error) {
		buf, err := backend.CreateMeshBuffer(
			label,
			common.SliceToBytes(s.Vertices),
			common.SliceToBytes(s.Indices),
			len(s.Indices),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to upload %s stream: %w", label, err)
		}
		return buf, nil
	}

	g := &geometry{}
	var err error
	if g.lines, err = upload("lines", m.LineStream()); err != nil {
		return nil, err
	}
	if g.flat, err = upload("flat", m.FlatStream()); err != nil {
		return nil, err
	}
	if g.smooth, err = upload("smooth", m.SmoothStream()); err != nil {
		return nil, err
	}
	return g, nil
}
