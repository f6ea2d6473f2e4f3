package renderer

import (
	_ "embed"
)

// lineShaderSource draws unlit line primitives in a fixed color. Used by
// the wireframe mode and the flat-mode edge overlay.
//
//go:embed assets/line.wgsl
var lineShaderSource string

// meshShaderSource draws Blinn-Phong shaded triangles with a fixed base
// color. Used by the flat and per-vertex modes; the shading difference
// between them comes entirely from the bound vertex stream's normals.
//
//go:embed assets/mesh.wgsl
var meshShaderSource string

// texturedShaderSource draws Blinn-Phong shaded triangles with the base
// color sampled from the bound texture.
//
//go:embed assets/textured.wgsl
var texturedShaderSource string
