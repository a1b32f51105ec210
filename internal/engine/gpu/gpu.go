// Package gpu defines the narrow device surface the scene draws through.
// The OpenGL implementation lives in package renderer.
package gpu

import (
	"github.com/Faultbox/robot-walk/internal/engine/mesh"
	"github.com/Faultbox/robot-walk/pkg/math"
)

// Program is a linked shader program.
type Program interface {
	Use()
	SetMat4(name string, m math.Mat4, transpose bool)
	Release()
}

// Mesh is an uploaded vertex array with its vertex and index buffers.
type Mesh interface {
	Bind()
	// Draw issues one indexed draw of the whole mesh. The mesh must be bound.
	Draw()
	Unbind()
	Release()
}

// Device creates GPU resources and owns frame-level state.
type Device interface {
	// LoadProgram compiles and links the shader pair at the given paths.
	// Empty paths select the built-in shaders.
	LoadProgram(vertexPath, fragmentPath string) (Program, error)
	UploadMesh(m *mesh.Mesh) (Mesh, error)
	Clear()
	Viewport(width, height int)
}
