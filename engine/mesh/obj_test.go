package mesh

import (
	"strings"
	"testing"
)

func TestDecodeOBJQuadTriangulation(t *testing.T) {
	m, err := DecodeOBJ(strings.NewReader(`
v 0 0 0
v 1 0 0
v 1 1 0
v 0 1 0
f 1 2 3 4
`))
	if err != nil {
		t.Fatalf("DecodeOBJ: %v", err)
	}
	if m.TriangleCount() != 2 {
		t.Fatalf("quad should fan into 2 triangles, got %d", m.TriangleCount())
	}
}

func TestDecodeOBJCornerForms(t *testing.T) {
	// v/vt, v//vn and v/vt/vn corner forms, plus negative indices.
	m, err := DecodeOBJ(strings.NewReader(`
v 0 0 0
v 1 0 0
v 0 1 0
vt 0 0
vt 1 0
vt 0 1
vn 0 0 1
f 1/1 2/2 3/3
f -3/-3/1 -2/-2/1 -1/-1/1
f 1//1 2//1 3//1
`))
	if err != nil {
		t.Fatalf("DecodeOBJ: %v", err)
	}
	if m.TriangleCount() != 3 {
		t.Fatalf("triangle count: got %d, want 3", m.TriangleCount())
	}
	smooth := m.SmoothStream()
	if got := smooth.Vertices[smooth.Indices[0]].TexCoord; got != [2]float32{0, 0} {
		t.Errorf("first corner uv: got %v", got)
	}
}

func TestDecodeOBJErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
	}{
		{"empty", ""},
		{"no faces", "v 0 0 0\nv 1 0 0\nv 0 1 0\n"},
		{"bad vertex", "v 0 nope 0\nf 1 1 1\n"},
		{"index out of range", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 1 2 9\n"},
		{"zero index", "v 0 0 0\nv 1 0 0\nv 0 1 0\nf 0 1 2\n"},
		{"short face", "v 0 0 0\nv 1 0 0\nf 1 2\n"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeOBJ(strings.NewReader(tc.src)); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}
