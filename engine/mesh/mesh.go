// Package mesh loads triangle meshes and prepares the vertex streams the
// renderer draws from: an edge line list for wireframe rendering, a flat
// triangle list with duplicated per-face normals, and a position-welded
// triangle list with averaged vertex normals for smooth shading and
// texturing.
package mesh

import (
	"github.com/chewxy/math32"
)

// Vertex is a single mesh vertex as uploaded to the GPU.
// Layout matches the WGSL VertexInput struct exactly (32 bytes, no padding).
type Vertex struct {
	Position [3]float32 // offset  0: position in model space (12 bytes)
	Normal   [3]float32 // offset 12: normal for lighting (12 bytes)
	TexCoord [2]float32 // offset 24: UV texture coordinate (8 bytes)
}

// Stream is an indexed vertex sequence ready for GPU upload.
type Stream struct {
	Vertices []Vertex
	Indices  []uint32
}

// Mesh holds a triangulated mesh and its three prepared vertex streams.
// All fields are immutable after construction.
type Mesh struct {
	lines  Stream
	flat   Stream
	smooth Stream

	min      [3]float32
	max      [3]float32
	centroid [3]float32

	triangleCount int
}

// corner references the source attribute indices of one triangle corner.
// uv is -1 when the face carries no texture coordinate.
type corner struct {
	pos int
	uv  int
}

// newMesh builds a Mesh from triangulated corner data. The three streams,
// bounds, and centroid are computed once here; the Mesh is read-only
// afterwards.
func newMesh(positions [][3]float32, uvs [][2]float32, faces [][3]corner) *Mesh {
	m := &Mesh{triangleCount: len(faces)}
	m.computeBounds(positions)
	m.buildFlatStream(positions, uvs, faces)
	m.buildSmoothStream(positions, uvs, faces)
	m.buildLineStream(positions, faces)
	return m
}

// LineStream returns the unique-edge line list. Every pair of indices is
// one mesh edge; normals and texture coordinates are not meaningful.
func (m *Mesh) LineStream() Stream { return m.lines }

// FlatStream returns the flat-shaded triangle list. Every triangle
// contributes three vertices carrying the same face normal, so no vertex
// is shared across faces.
func (m *Mesh) FlatStream() Stream { return m.flat }

// SmoothStream returns the position-welded triangle list with averaged
// vertex normals, used for per-vertex shading and texturing.
func (m *Mesh) SmoothStream() Stream { return m.smooth }

// Bounds returns the axis-aligned bounding extents of the mesh.
func (m *Mesh) Bounds() (min, max [3]float32) { return m.min, m.max }

// Centroid returns the average of all referenced positions.
func (m *Mesh) Centroid() [3]float32 { return m.centroid }

// Radius returns half the bounding box diagonal, used to size the camera
// placement and the orbit animation.
func (m *Mesh) Radius() float32 {
	dx := m.max[0] - m.min[0]
	dy := m.max[1] - m.min[1]
	dz := m.max[2] - m.min[2]
	return math32.Sqrt(dx*dx+dy*dy+dz*dz) / 2
}

// TriangleCount returns the number of triangles after triangulation.
func (m *Mesh) TriangleCount() int { return m.triangleCount }

func (m *Mesh) computeBounds(positions [][3]float32) {
	if len(positions) == 0 {
		return
	}
	m.min = positions[0]
	m.max = positions[0]
	var sum [3]float32
	for _, p := range positions {
		for i := 0; i < 3; i++ {
			if p[i] < m.min[i] {
				m.min[i] = p[i]
			}
			if p[i] > m.max[i] {
				m.max[i] = p[i]
			}
			sum[i] += p[i]
		}
	}
	n := float32(len(positions))
	m.centroid = [3]float32{sum[0] / n, sum[1] / n, sum[2] / n}
}

// faceNormal returns the unnormalized cross product of two triangle edges.
// The magnitude is proportional to the triangle area, which gives the
// smooth stream area-weighted normal averaging for free.
func faceNormal(a, b, c [3]float32) [3]float32 {
	e1 := [3]float32{b[0] - a[0], b[1] - a[1], b[2] - a[2]}
	e2 := [3]float32{c[0] - a[0], c[1] - a[1], c[2] - a[2]}
	return [3]float32{
		e1[1]*e2[2] - e1[2]*e2[1],
		e1[2]*e2[0] - e1[0]*e2[2],
		e1[0]*e2[1] - e1[1]*e2[0],
	}
}

func normalize(v [3]float32) [3]float32 {
	len2 := v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
	if len2 == 0 {
		return v
	}
	inv := 1.0 / math32.Sqrt(len2)
	return [3]float32{v[0] * inv, v[1] * inv, v[2] * inv}
}

func cornerUV(uvs [][2]float32, c corner) [2]float32 {
	if c.uv < 0 || c.uv >= len(uvs) {
		return [2]float32{}
	}
	return uvs[c.uv]
}

// buildFlatStream emits three vertices per triangle, all carrying the
// triangle's face normal. Nothing is shared across faces so each triangle
// can be lit independently.
func (m *Mesh) buildFlatStream(positions [][3]float32, uvs [][2]float32, faces [][3]corner) {
	verts := make([]Vertex, 0, len(faces)*3)
	indices := make([]uint32, 0, len(faces)*3)
	for _, f := range faces {
		n := normalize(faceNormal(positions[f[0].pos], positions[f[1].pos], positions[f[2].pos]))
		for _, c := range f {
			indices = append(indices, uint32(len(verts)))
			verts = append(verts, Vertex{
				Position: positions[c.pos],
				Normal:   n,
				TexCoord: cornerUV(uvs, c),
			})
		}
	}
	m.flat = Stream{Vertices: verts, Indices: indices}
}

// buildSmoothStream welds corners sharing the same position and texture
// coordinate into one vertex and accumulates area-weighted face normals
// per position, so shared vertices get a true averaged normal.
func (m *Mesh) buildSmoothStream(positions [][3]float32, uvs [][2]float32, faces [][3]corner) {
	accumulated := make([][3]float32, len(positions))
	for _, f := range faces {
		n := faceNormal(positions[f[0].pos], positions[f[1].pos], positions[f[2].pos])
		for _, c := range f {
			accumulated[c.pos][0] += n[0]
			accumulated[c.pos][1] += n[1]
			accumulated[c.pos][2] += n[2]
		}
	}

	welded := make(map[corner]uint32, len(positions))
	verts := make([]Vertex, 0, len(positions))
	indices := make([]uint32, 0, len(faces)*3)
	for _, f := range faces {
		for _, c := range f {
			idx, ok := welded[c]
			if !ok {
				idx = uint32(len(verts))
				welded[c] = idx
				verts = append(verts, Vertex{
					Position: positions[c.pos],
					Normal:   normalize(accumulated[c.pos]),
					TexCoord: cornerUV(uvs, c),
				})
			}
			indices = append(indices, idx)
		}
	}
	m.smooth = Stream{Vertices: verts, Indices: indices}
}

// buildLineStream collects the unique undirected edges of all triangles.
// Vertices are the welded positions; every index pair is one edge.
func (m *Mesh) buildLineStream(positions [][3]float32, faces [][3]corner) {
	type edge struct{ a, b int }
	seen := make(map[edge]bool, len(faces)*3)
	remap := make(map[int]uint32, len(positions))
	verts := make([]Vertex, 0, len(positions))
	indices := make([]uint32, 0, len(faces)*6)

	vertexIndex := func(pos int) uint32 {
		idx, ok := remap[pos]
		if !ok {
			idx = uint32(len(verts))
			remap[pos] = idx
			verts = append(verts, Vertex{Position: positions[pos]})
		}
		return idx
	}

	for _, f := range faces {
		for i := 0; i < 3; i++ {
			a, b := f[i].pos, f[(i+1)%3].pos
			if a > b {
				a, b = b, a
			}
			e := edge{a, b}
			if seen[e] {
				continue
			}
			seen[e] = true
			indices = append(indices, vertexIndex(a), vertexIndex(b))
		}
	}
	m.lines = Stream{Vertices: verts, Indices: indices}
}
