// Package scene draws the walking robot: one shared mesh, one shader, and a
// fixed sequence of posed draw calls per frame.
package scene

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/robot-walk/internal/engine/anim"
	"github.com/Faultbox/robot-walk/internal/engine/camera"
	"github.com/Faultbox/robot-walk/internal/engine/gpu"
	"github.com/Faultbox/robot-walk/internal/engine/mesh"
	"github.com/Faultbox/robot-walk/internal/logger"
	"github.com/Faultbox/robot-walk/internal/robot"
	"github.com/Faultbox/robot-walk/pkg/math"
)

// Uniform names expected in the shader program.
const (
	UniformModel      = "uModel"
	UniformView       = "uView"
	UniformProjection = "uProjection"
)

// ErrAssetLoad is the kind of every Init failure: the shader pair or the
// mesh could not be loaded.
var ErrAssetLoad = errors.New("asset load failed")

// ErrAlreadyInitialized is returned when Init is called on a Ready scene.
var ErrAlreadyInitialized = errors.New("scene already initialized")

// ErrClosed is returned when Init is called after Shutdown.
var ErrClosed = errors.New("scene is closed")

// State is the scene lifecycle stage.
type State int

const (
	Uninitialized State = iota
	Ready
	ShuttingDown
	Closed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case Ready:
		return "ready"
	case ShuttingDown:
		return "shutting down"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Config holds scene settings.
type Config struct {
	Mesh           string // built-in mesh name, see mesh.ByName
	VertexShader   string
	FragmentShader string
	Motion         robot.Motion
	Camera         *camera.Fixed
	Width, Height  int // initial framebuffer size
}

// Scene owns the GPU program and mesh for its whole lifetime.
type Scene struct {
	dev    gpu.Device
	cfg    Config
	log    *zap.Logger
	state  State
	figure *robot.Figure
	camera *camera.Fixed
	clock  anim.Clock
	aspect float32

	program gpu.Program
	mesh    gpu.Mesh
	poses   []math.Mat4
}

// New creates an uninitialized scene drawing through dev.
func New(dev gpu.Device, cfg Config) *Scene {
	s := &Scene{
		dev:    dev,
		cfg:    cfg,
		log:    logger.Named("scene"),
		figure: robot.New(cfg.Motion),
		camera: cfg.Camera,
		aspect: 1,
	}
	if s.camera == nil {
		s.camera = camera.NewFixed(math.Vec3{Y: 1.5, Z: 7}, math.Vec3{}, 45, 0.1, 100)
	}
	if cfg.Width > 0 && cfg.Height > 0 {
		s.aspect = float32(cfg.Width) / float32(cfg.Height)
	}
	s.poses = make([]math.Mat4, 0, len(s.figure.Parts))
	return s
}

// Init loads the shader program and uploads the mesh. It must be called
// exactly once. On failure the returned error matches ErrAssetLoad and any
// handle created so far has been released.
func (s *Scene) Init() (err error) {
	switch s.state {
	case Uninitialized:
	case Ready:
		return ErrAlreadyInitialized
	default:
		return fmt.Errorf("init in state %s: %w", s.state, ErrClosed)
	}

	defer func() {
		if err != nil {
			s.release()
			s.log.Error("scene initialization failed", zap.Error(err))
			err = fmt.Errorf("scene initialization failed: %w: %w", ErrAssetLoad, err)
		}
	}()

	m, err := mesh.ByName(s.cfg.Mesh)
	if err != nil {
		return err
	}

	s.program, err = s.dev.LoadProgram(s.cfg.VertexShader, s.cfg.FragmentShader)
	if err != nil {
		return err
	}
	s.program.Use()

	s.mesh, err = s.dev.UploadMesh(m)
	if err != nil {
		return err
	}

	s.state = Ready
	s.log.Info("scene initialization done",
		zap.String("mesh", m.Name),
		zap.Int("indices", len(m.Indices)),
		zap.Int("parts", len(s.figure.Parts)),
	)
	return nil
}

// Render draws one frame and advances the animation clock by dt seconds.
// It does nothing unless the scene is Ready.
func (s *Scene) Render(dt float64) {
	if s.state != Ready {
		return
	}

	s.clock.Advance(dt)
	t := s.clock.Elapsed()

	s.dev.Clear()

	s.program.Use()
	s.program.SetMat4(UniformView, s.camera.ViewMatrix(), false)
	s.program.SetMat4(UniformProjection, s.camera.ProjectionMatrix(s.aspect), false)

	s.poses = s.figure.Pose(t, s.figure.Root(t), s.poses)

	s.mesh.Bind()
	for i := range s.poses {
		s.program.SetMat4(UniformModel, s.poses[i], false)
		s.mesh.Draw()
	}
	s.mesh.Unbind()
}

// Update is called once per frame before Render.
func (s *Scene) Update(dt float64) {}

// Shutdown releases the program and mesh. It is safe to call in any state
// and more than once.
func (s *Scene) Shutdown() {
	if s.state == Closed {
		return
	}
	s.state = ShuttingDown
	s.release()
	s.state = Closed
	s.log.Info("scene shut down")
}

func (s *Scene) release() {
	if s.mesh != nil {
		s.mesh.Release()
		s.mesh = nil
	}
	if s.program != nil {
		s.program.Release()
		s.program = nil
	}
}

// State returns the lifecycle stage.
func (s *Scene) State() State {
	return s.state
}

// Elapsed returns the animation time in seconds.
func (s *Scene) Elapsed() float64 {
	return s.clock.Elapsed()
}

// Parts returns the number of draw calls issued per frame.
func (s *Scene) Parts() int {
	return len(s.figure.Parts)
}
