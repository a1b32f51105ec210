// Package renderer implements gpu.Device on OpenGL 4.1 core.
package renderer

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/robot-walk/internal/engine/gpu"
	"github.com/Faultbox/robot-walk/internal/engine/mesh"
	"github.com/Faultbox/robot-walk/internal/engine/shader"
	"github.com/Faultbox/robot-walk/internal/logger"
)

// Config holds renderer configuration.
type Config struct {
	Width        int
	Height       int
	ReverseDepth bool
	CullFaces    bool
	ClearColor   [4]float32
}

// Renderer owns global GL state and creates programs and meshes.
type Renderer struct {
	config Config
	log    *zap.Logger
}

var _ gpu.Device = (*Renderer)(nil)

// New creates a new renderer.
// IMPORTANT: Must be called AFTER OpenGL context is created!
func New(cfg Config) (*Renderer, error) {
	r := &Renderer{
		config: cfg,
		log:    logger.Named("renderer"),
	}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	r.log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	if cfg.ReverseDepth {
		// Projection maps near to 1 and far to 0.
		gl.DepthFunc(gl.GREATER)
		gl.ClearDepth(0)
	} else {
		gl.DepthFunc(gl.LESS)
		gl.ClearDepth(1)
	}

	if cfg.CullFaces {
		gl.Enable(gl.CULL_FACE)
		gl.FrontFace(gl.CCW)
		gl.CullFace(gl.BACK)
	}

	c := cfg.ClearColor
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	return r, nil
}

// Close logs shutdown. Programs and meshes are released by their owners.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
}

// Viewport handles framebuffer resize.
func (r *Renderer) Viewport(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("viewport resized",
		zap.Int("width", width),
		zap.Int("height", height),
	)
}

// Clear clears the colour and depth buffers.
func (r *Renderer) Clear() {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
}

// LoadProgram reads, compiles and links a shader pair.
func (r *Renderer) LoadProgram(vertexPath, fragmentPath string) (gpu.Program, error) {
	src, err := shader.LoadSources(vertexPath, fragmentPath)
	if err != nil {
		return nil, err
	}
	prog, err := shader.NewProgram(src)
	if err != nil {
		return nil, err
	}
	r.log.Debug("shader program created",
		zap.Uint32("program", prog.ID()),
		zap.String("vertex", vertexPath),
		zap.String("fragment", fragmentPath),
	)
	return prog, nil
}

// UploadMesh copies m into a new VAO with its VBO and IBO.
func (r *Renderer) UploadMesh(m *mesh.Mesh) (gpu.Mesh, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	g := &glMesh{count: int32(len(m.Indices))}

	gl.GenVertexArrays(1, &g.vao)
	gl.BindVertexArray(g.vao)

	gl.GenBuffers(1, &g.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, g.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(m.Vertices)*4, unsafe.Pointer(&m.Vertices[0]), gl.STATIC_DRAW)

	// The element buffer binding is recorded in the VAO.
	gl.GenBuffers(1, &g.ibo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, g.ibo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(m.Indices)*4, unsafe.Pointer(&m.Indices[0]), gl.STATIC_DRAW)

	// Position attribute (location = 0)
	gl.VertexAttribPointer(0, mesh.PositionComponents, gl.FLOAT, false, mesh.Stride, nil)
	gl.EnableVertexAttribArray(0)

	// Color attribute (location = 1)
	gl.VertexAttribPointerWithOffset(1, mesh.ColorComponents, gl.FLOAT, false, mesh.Stride, mesh.PositionComponents*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)

	r.log.Debug("mesh uploaded",
		zap.String("mesh", m.Name),
		zap.Uint32("vao", g.vao),
		zap.Uint32("vbo", g.vbo),
		zap.Uint32("ibo", g.ibo),
		zap.Int32("indices", g.count),
	)
	return g, nil
}

// glMesh is a VAO with its buffers.
type glMesh struct {
	vao, vbo, ibo uint32
	count         int32
}

func (g *glMesh) Bind() {
	gl.BindVertexArray(g.vao)
}

func (g *glMesh) Draw() {
	gl.DrawElements(gl.TRIANGLES, g.count, gl.UNSIGNED_INT, nil)
}

func (g *glMesh) Unbind() {
	gl.BindVertexArray(0)
}

// Release deletes the VAO and both buffers. Calling it twice is a no-op.
func (g *glMesh) Release() {
	if g.vao != 0 {
		gl.DeleteVertexArrays(1, &g.vao)
		g.vao = 0
	}
	if g.vbo != 0 {
		gl.DeleteBuffers(1, &g.vbo)
		g.vbo = 0
	}
	if g.ibo != 0 {
		gl.DeleteBuffers(1, &g.ibo)
		g.ibo = 0
	}
}
