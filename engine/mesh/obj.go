package mesh

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// LoadOBJ parses a Wavefront OBJ file and returns the prepared Mesh.
// Supported directives: v, vt, f (normals in the file are ignored — both
// shading streams derive their normals from the triangle geometry, which
// keeps the flat and smooth streams consistent regardless of what the
// exporter wrote). Polygons with more than three corners are fan
// triangulated. Negative (relative) indices are supported.
//
// Parameters:
//   - path: file path of the OBJ file
//
// Returns:
//   - *Mesh: the loaded mesh with all three streams prepared
//   - error: an error if the file cannot be read or parsed
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open mesh file %s: %w", path, err)
	}
	defer f.Close()
	m, err := DecodeOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("failed to parse mesh file %s: %w", path, err)
	}
	return m, nil
}

// DecodeOBJ parses OBJ data from a reader. See LoadOBJ for the supported
// subset.
//
// Parameters:
//   - r: reader supplying OBJ text
//
// Returns:
//   - *Mesh: the loaded mesh
//   - error: an error if the data is malformed or contains no triangles
func DecodeOBJ(r io.Reader) (*Mesh, error) {
	var (
		positions [][3]float32
		uvs       [][2]float32
		faces     [][3]corner
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid vertex: %w", lineNo, err)
			}
			positions = append(positions, p)
		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: texture coordinate needs 2 components", lineNo)
			}
			u, err1 := strconv.ParseFloat(fields[1], 32)
			v, err2 := strconv.ParseFloat(fields[2], 32)
			if err1 != nil || err2 != nil {
				return nil, fmt.Errorf("line %d: invalid texture coordinate", lineNo)
			}
			uvs = append(uvs, [2]float32{float32(u), float32(v)})
		case "f":
			corners, err := parseFace(fields[1:], len(positions), len(uvs))
			if err != nil {
				return nil, fmt.Errorf("line %d: %w", lineNo, err)
			}
			// Fan triangulate: (0, i, i+1) for each interior corner.
			for i := 1; i+1 < len(corners); i++ {
				faces = append(faces, [3]corner{corners[0], corners[i], corners[i+1]})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("mesh contains no triangles")
	}
	return newMesh(positions, uvs, faces), nil
}

func parseFloats3(fields []string) ([3]float32, error) {
	var out [3]float32
	if len(fields) < 3 {
		return out, fmt.Errorf("need 3 components, got %d", len(fields))
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return out, fmt.Errorf("component %d: %w", i, err)
		}
		out[i] = float32(v)
	}
	return out, nil
}

// parseFace resolves one face directive to corner records. Corners use the
// v, v/vt, v//vn, and v/vt/vn forms; the vn reference is accepted and
// discarded. OBJ indices are 1-based; negative indices count back from the
// end of the respective attribute list.
func parseFace(fields []string, posCount, uvCount int) ([]corner, error) {
	if len(fields) < 3 {
		return nil, fmt.Errorf("face needs at least 3 corners, got %d", len(fields))
	}
	corners := make([]corner, 0, len(fields))
	for _, field := range fields {
		parts := strings.Split(field, "/")
		pos, err := resolveIndex(parts[0], posCount)
		if err != nil {
			return nil, fmt.Errorf("corner %q: %w", field, err)
		}
		uv := -1
		if len(parts) > 1 && parts[1] != "" {
			uv, err = resolveIndex(parts[1], uvCount)
			if err != nil {
				return nil, fmt.Errorf("corner %q: %w", field, err)
			}
		}
		corners = append(corners, corner{pos: pos, uv: uv})
	}
	return corners, nil
}

func resolveIndex(s string, count int) (int, error) {
	idx, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid index %q: %w", s, err)
	}
	switch {
	case idx > 0:
		idx--
	case idx < 0:
		idx += count
	default:
		return 0, fmt.Errorf("index 0 is not valid in OBJ")
	}
	if idx < 0 || idx >= count {
		return 0, fmt.Errorf("index %s out of range (have %d)", s, count)
	}
	return idx, nil
}
