package mesh

import (
	"math"
	"strings"
	"testing"
)

// cubeOBJ is a unit cube with 8 shared positions and 12 triangles.
const cubeOBJ = `
v -0.5 -0.5 -0.5
v  0.5 -0.5 -0.5
v  0.5  0.5 -0.5
v -0.5  0.5 -0.5
v -0.5 -0.5  0.5
v  0.5 -0.5  0.5
v  0.5  0.5  0.5
v -0.5  0.5  0.5
f 1 2 3
f 1 3 4
f 5 7 6
f 5 8 7
f 1 5 6
f 1 6 2
f 2 6 7
f 2 7 3
f 3 7 8
f 3 8 4
f 4 8 5
f 4 5 1
`

func loadCube(t *testing.T) *Mesh {
	t.Helper()
	m, err := DecodeOBJ(strings.NewReader(cubeOBJ))
	if err != nil {
		t.Fatalf("DecodeOBJ: %v", err)
	}
	return m
}

func TestStreamCountInvariants(t *testing.T) {
	m := loadCube(t)

	if m.TriangleCount() != 12 {
		t.Fatalf("triangle count: got %d, want 12", m.TriangleCount())
	}

	flat := m.FlatStream()
	if got, want := len(flat.Vertices), 3*m.TriangleCount(); got != want {
		t.Errorf("flat vertex count: got %d, want %d", got, want)
	}

	smooth := m.SmoothStream()
	if len(smooth.Vertices) > len(flat.Vertices) {
		t.Errorf("smooth vertex count %d exceeds flat count %d", len(smooth.Vertices), len(flat.Vertices))
	}
	// The cube's 8 corners weld to exactly 8 shared vertices.
	if len(smooth.Vertices) != 8 {
		t.Errorf("smooth vertex count: got %d, want 8", len(smooth.Vertices))
	}
	if got, want := len(smooth.Indices), 3*m.TriangleCount(); got != want {
		t.Errorf("smooth index count: got %d, want %d", got, want)
	}

	lines := m.LineStream()
	if len(lines.Indices)%2 != 0 {
		t.Errorf("line index count %d is odd", len(lines.Indices))
	}
	// 12 cube edges plus 6 face diagonals from triangulation.
	if got, want := len(lines.Indices)/2, 18; got != want {
		t.Errorf("edge count: got %d, want %d", got, want)
	}
}

func TestFlatNormalsAreUnitAndUniformPerTriangle(t *testing.T) {
	m := loadCube(t)
	flat := m.FlatStream()
	for tri := 0; tri < len(flat.Vertices); tri += 3 {
		n0 := flat.Vertices[tri].Normal
		len2 := n0[0]*n0[0] + n0[1]*n0[1] + n0[2]*n0[2]
		if math.Abs(float64(len2)-1) > 1e-5 {
			t.Fatalf("triangle %d: normal not unit length: %v", tri/3, n0)
		}
		for i := 1; i < 3; i++ {
			if flat.Vertices[tri+i].Normal != n0 {
				t.Fatalf("triangle %d: corners carry different normals", tri/3)
			}
		}
	}
}

func TestSmoothNormalsPointOutward(t *testing.T) {
	m := loadCube(t)
	// On a centered cube every averaged corner normal points away from the
	// origin: the dot product with the position must be positive.
	for i, v := range m.SmoothStream().Vertices {
		dot := v.Position[0]*v.Normal[0] + v.Position[1]*v.Normal[1] + v.Position[2]*v.Normal[2]
		if dot <= 0 {
			t.Errorf("vertex %d: normal %v does not point outward from %v", i, v.Normal, v.Position)
		}
	}
}

func TestBoundsAndCentroid(t *testing.T) {
	m := loadCube(t)
	min, max := m.Bounds()
	if min != [3]float32{-0.5, -0.5, -0.5} || max != [3]float32{0.5, 0.5, 0.5} {
		t.Errorf("bounds: got %v..%v", min, max)
	}
	if m.Centroid() != [3]float32{0, 0, 0} {
		t.Errorf("centroid: got %v, want origin", m.Centroid())
	}
	if r := m.Radius(); math.Abs(float64(r)-math.Sqrt(3)/2) > 1e-5 {
		t.Errorf("radius: got %v", r)
	}
}
