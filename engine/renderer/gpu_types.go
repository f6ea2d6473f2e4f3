package renderer

import (
	"encoding/binary"
	"math"
	"unsafe"
)

// GPUUniforms is the GPU-aligned representation of the per-frame uniform
// buffer shared by every pipeline. Matches the WGSL Uniforms struct layout
// in the embedded shaders exactly. Size: 256 bytes (std140 / WGSL aligned,
// also the minimum uniform buffer offset alignment).
type GPUUniforms struct {
	CameraMatrix          [16]float32 // offset   0: combined view-projection matrix (mat4x4<f32>)
	ModelMatrix           [16]float32 // offset  64: model matrix (mat4x4<f32>)
	ModelInverseTranspose [16]float32 // offset 128: transpose(inverse(model)) for normals (mat4x4<f32>)
	CameraPosition        [4]float32  // offset 192: world-space camera position (vec4<f32>, w unused)
	LightPosition         [4]float32  // offset 208: world-space light position (vec4<f32>, w unused)
	LightParams           [4]float32  // offset 224: intensity, ambient, diffuse, specular (vec4<f32>)
	SpecularExponent      [4]float32  // offset 240: exponent in x, rest padding (vec4<f32>)
}

// Size returns the size of the GPUUniforms struct in bytes.
//
// Returns:
//   - int: the struct size in bytes (256)
func (g *GPUUniforms) Size() int {
	return int(unsafe.Sizeof(*g))
}

// Marshal serializes the GPUUniforms struct into a byte buffer suitable for GPU upload.
//
// Returns:
//   - []byte: the serialized byte buffer
func (g *GPUUniforms) Marshal() []byte {
	buf := make([]byte, g.Size())
	put := func(offset int, values []float32) {
		for i, v := range values {
			binary.LittleEndian.PutUint32(buf[offset+i*4:], math.Float32bits(v))
		}
	}
	put(0, g.CameraMatrix[:])
	put(64, g.ModelMatrix[:])
	put(128, g.ModelInverseTranspose[:])
	put(192, g.CameraPosition[:])
	put(208, g.LightPosition[:])
	put(224, g.LightParams[:])
	put(240, g.SpecularExponent[:])
	return buf
}
