// Package mesh holds CPU-side vertex and index data ready for upload.
package mesh

import (
	"errors"
	"fmt"
)

// Vertex layout: position (x, y, z) followed by colour (r, g, b).
const (
	PositionComponents = 3
	ColorComponents    = 3
	FloatsPerVertex    = PositionComponents + ColorComponents
	Stride             = FloatsPerVertex * 4 // bytes
)

// ErrEmpty is returned by Validate for a mesh without vertices or indices.
var ErrEmpty = errors.New("mesh has no geometry")

// Mesh is an indexed triangle list with interleaved vertex data.
type Mesh struct {
	Name     string
	Vertices []float32
	Indices  []uint32
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	return len(m.Vertices) / FloatsPerVertex
}

// Position returns the position of vertex i.
func (m *Mesh) Position(i uint32) [3]float32 {
	base := int(i) * FloatsPerVertex
	return [3]float32{m.Vertices[base], m.Vertices[base+1], m.Vertices[base+2]}
}

// Validate checks the mesh is a well formed triangle list.
func (m *Mesh) Validate() error {
	if len(m.Vertices) == 0 || len(m.Indices) == 0 {
		return fmt.Errorf("%s: %w", m.Name, ErrEmpty)
	}
	if len(m.Vertices)%FloatsPerVertex != 0 {
		return fmt.Errorf("%s: %d floats is not a multiple of %d", m.Name, len(m.Vertices), FloatsPerVertex)
	}
	if len(m.Indices)%3 != 0 {
		return fmt.Errorf("%s: %d indices is not a triangle list", m.Name, len(m.Indices))
	}
	n := uint32(m.VertexCount())
	for i, idx := range m.Indices {
		if idx >= n {
			return fmt.Errorf("%s: index %d at %d out of range (%d vertices)", m.Name, idx, i, n)
		}
	}
	return nil
}

// ByName returns the built-in mesh with the given name.
func ByName(name string) (*Mesh, error) {
	switch name {
	case "cube":
		return Cube(), nil
	case "shape":
		return Shape(), nil
	default:
		return nil, fmt.Errorf("unknown mesh %q", name)
	}
}
