package scene

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/Faultbox/robot-walk/internal/engine/camera"
	"github.com/Faultbox/robot-walk/internal/engine/gpu"
	"github.com/Faultbox/robot-walk/internal/engine/mesh"
	"github.com/Faultbox/robot-walk/internal/robot"
	"github.com/Faultbox/robot-walk/pkg/math"
)

// fakeDevice records every GPU call as a string.
type fakeDevice struct {
	calls      []string
	models     []math.Mat4
	programErr error
	meshErr    error
	uploaded   *mesh.Mesh
	released   map[string]int
	viewport   [2]int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{released: make(map[string]int)}
}

func (d *fakeDevice) LoadProgram(vertexPath, fragmentPath string) (gpu.Program, error) {
	d.calls = append(d.calls, "load program")
	if d.programErr != nil {
		return nil, d.programErr
	}
	return &fakeProgram{d: d}, nil
}

func (d *fakeDevice) UploadMesh(m *mesh.Mesh) (gpu.Mesh, error) {
	d.calls = append(d.calls, "upload mesh")
	if d.meshErr != nil {
		return nil, d.meshErr
	}
	d.uploaded = m
	return &fakeMesh{d: d}, nil
}

func (d *fakeDevice) Clear() { d.calls = append(d.calls, "clear") }

func (d *fakeDevice) Viewport(width, height int) { d.viewport = [2]int{width, height} }

func (d *fakeDevice) reset() {
	d.calls = nil
	d.models = nil
}

type fakeProgram struct{ d *fakeDevice }

func (p *fakeProgram) Use() { p.d.calls = append(p.d.calls, "use") }

func (p *fakeProgram) SetMat4(name string, m math.Mat4, transpose bool) {
	p.d.calls = append(p.d.calls, "set "+name)
	if name == UniformModel {
		p.d.models = append(p.d.models, m)
	}
}

func (p *fakeProgram) Release() { p.d.released["program"]++ }

type fakeMesh struct{ d *fakeDevice }

func (m *fakeMesh) Bind()    { m.d.calls = append(m.d.calls, "bind") }
func (m *fakeMesh) Draw()    { m.d.calls = append(m.d.calls, "draw") }
func (m *fakeMesh) Unbind()  { m.d.calls = append(m.d.calls, "unbind") }
func (m *fakeMesh) Release() { m.d.released["mesh"]++ }

func testConfig() Config {
	return Config{
		Mesh:   "cube",
		Motion: robot.Motion{Amplitude: 0.6, Frequency: 3, SpinSpeed: 0.4},
		Camera: camera.NewFixed(math.Vec3{Y: 1.5, Z: 7}, math.Vec3{}, 45, 0.1, 100),
		Width:  1280,
		Height: 720,
	}
}

func readyScene(t *testing.T) (*Scene, *fakeDevice) {
	t.Helper()
	dev := newFakeDevice()
	s := New(dev, testConfig())
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	dev.reset()
	return s, dev
}

func countCalls(calls []string, name string) int {
	n := 0
	for _, c := range calls {
		if c == name {
			n++
		}
	}
	return n
}

func TestInit(t *testing.T) {
	dev := newFakeDevice()
	s := New(dev, testConfig())
	if s.State() != Uninitialized {
		t.Fatalf("new scene state = %s", s.State())
	}

	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if s.State() != Ready {
		t.Errorf("state after Init = %s, want ready", s.State())
	}
	want := []string{"load program", "use", "upload mesh"}
	if !reflect.DeepEqual(dev.calls, want) {
		t.Errorf("init calls = %v, want %v", dev.calls, want)
	}
	if dev.uploaded == nil || dev.uploaded.Name != "cube" {
		t.Errorf("uploaded mesh = %v, want cube", dev.uploaded)
	}

	if err := s.Init(); !errors.Is(err, ErrAlreadyInitialized) {
		t.Errorf("second Init = %v, want ErrAlreadyInitialized", err)
	}
}

func TestInitFailureReleases(t *testing.T) {
	loadErr := fmt.Errorf("vertex shader assets/shaders/vertex.glsl: no such file")

	tests := []struct {
		name         string
		setup        func(*fakeDevice, *Config)
		wantReleased map[string]int
	}{
		{
			name:         "shader load",
			setup:        func(d *fakeDevice, _ *Config) { d.programErr = loadErr },
			wantReleased: map[string]int{},
		},
		{
			name:         "mesh upload",
			setup:        func(d *fakeDevice, _ *Config) { d.meshErr = loadErr },
			wantReleased: map[string]int{"program": 1},
		},
		{
			name:         "unknown mesh",
			setup:        func(_ *fakeDevice, c *Config) { c.Mesh = "teapot" },
			wantReleased: map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dev := newFakeDevice()
			cfg := testConfig()
			tt.setup(dev, &cfg)
			s := New(dev, cfg)

			err := s.Init()
			if !errors.Is(err, ErrAssetLoad) {
				t.Fatalf("Init error = %v, want ErrAssetLoad", err)
			}
			if s.State() != Uninitialized {
				t.Errorf("state after failed Init = %s", s.State())
			}
			if !reflect.DeepEqual(dev.released, tt.wantReleased) {
				t.Errorf("released = %v, want %v", dev.released, tt.wantReleased)
			}

			// Shutdown after a failed Init releases nothing twice.
			s.Shutdown()
			if !reflect.DeepEqual(dev.released, tt.wantReleased) {
				t.Errorf("released after Shutdown = %v, want %v", dev.released, tt.wantReleased)
			}
		})
	}

	dev := newFakeDevice()
	dev.programErr = loadErr
	err := New(dev, testConfig()).Init()
	if !errors.Is(err, loadErr) {
		t.Errorf("Init error should wrap the cause, got %v", err)
	}
}

func TestRenderSequence(t *testing.T) {
	s, dev := readyScene(t)
	s.Render(0.016)

	want := []string{"clear", "use", "set uView", "set uProjection", "bind"}
	for i := 0; i < s.Parts(); i++ {
		want = append(want, "set uModel", "draw")
	}
	want = append(want, "unbind")

	if !reflect.DeepEqual(dev.calls, want) {
		t.Errorf("render calls =\n%v\nwant\n%v", dev.calls, want)
	}
}

func TestRenderNinePartRobot(t *testing.T) {
	s, dev := readyScene(t)
	if s.Parts() != 9 {
		t.Fatalf("Parts() = %d, want 9", s.Parts())
	}

	s.Render(0.5)
	if got := countCalls(dev.calls, "set uModel"); got != 9 {
		t.Errorf("model uploads = %d, want 9", got)
	}
	if got := countCalls(dev.calls, "draw"); got != 9 {
		t.Errorf("draw calls = %d, want 9", got)
	}
	if countCalls(dev.calls, "set uView") != 1 || countCalls(dev.calls, "set uProjection") != 1 {
		t.Errorf("expected exactly one view/projection pair, got %v", dev.calls)
	}
}

func TestRenderZeroDt(t *testing.T) {
	s, dev := readyScene(t)
	s.Render(0.25)
	moving := append([]string(nil), dev.calls...)

	dev.reset()
	s.Render(0)
	if !reflect.DeepEqual(dev.calls, moving) {
		t.Errorf("dt=0 call sequence differs:\n%v\n%v", dev.calls, moving)
	}
	if s.Elapsed() != 0.25 {
		t.Errorf("Elapsed() = %v, want 0.25", s.Elapsed())
	}
}

func TestRenderUploadsPose(t *testing.T) {
	s, dev := readyScene(t)
	s.Render(0.3)
	s.Render(0.2)

	f := robot.New(testConfig().Motion)
	tm := s.Elapsed()
	want := f.Pose(tm, f.Root(tm), nil)

	models := dev.models[len(dev.models)-len(want):]
	for i := range want {
		if !models[i].ApproxEqual(want[i], 1e-5) {
			t.Errorf("part %d model = %v, want %v", i, models[i], want[i])
		}
	}
}

func TestRenderRequiresReady(t *testing.T) {
	dev := newFakeDevice()
	s := New(dev, testConfig())

	s.Render(0.1)
	if len(dev.calls) != 0 {
		t.Errorf("render before Init issued %v", dev.calls)
	}

	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.Shutdown()
	dev.reset()

	s.Render(0.1)
	if len(dev.calls) != 0 {
		t.Errorf("render after Shutdown issued %v", dev.calls)
	}
}

func TestShutdown(t *testing.T) {
	s, dev := readyScene(t)

	s.Shutdown()
	if s.State() != Closed {
		t.Errorf("state after Shutdown = %s, want closed", s.State())
	}
	want := map[string]int{"program": 1, "mesh": 1}
	if !reflect.DeepEqual(dev.released, want) {
		t.Errorf("released = %v, want %v", dev.released, want)
	}

	s.Shutdown()
	if !reflect.DeepEqual(dev.released, want) {
		t.Errorf("second Shutdown released again: %v", dev.released)
	}
}

func TestInitByState(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(t *testing.T) (*Scene, *fakeDevice)
		wantErr error
	}{
		{
			name: "ready",
			prepare: func(t *testing.T) (*Scene, *fakeDevice) {
				return readyScene(t)
			},
			wantErr: ErrAlreadyInitialized,
		},
		{
			name: "shut down after init",
			prepare: func(t *testing.T) (*Scene, *fakeDevice) {
				s, dev := readyScene(t)
				s.Shutdown()
				dev.reset()
				return s, dev
			},
			wantErr: ErrClosed,
		},
		{
			name: "shut down before init",
			prepare: func(t *testing.T) (*Scene, *fakeDevice) {
				dev := newFakeDevice()
				s := New(dev, testConfig())
				s.Shutdown()
				return s, dev
			},
			wantErr: ErrClosed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, dev := tt.prepare(t)
			before := s.State()

			err := s.Init()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Init = %v, want %v", err, tt.wantErr)
			}
			if errors.Is(err, ErrAssetLoad) {
				t.Error("state errors should not be reported as asset failures")
			}
			if tt.wantErr == ErrClosed && errors.Is(err, ErrAlreadyInitialized) {
				t.Error("closed scene reported as already initialized")
			}
			if s.State() != before {
				t.Errorf("state changed from %s to %s", before, s.State())
			}
			if len(dev.calls) != 0 {
				t.Errorf("Init touched the device: %v", dev.calls)
			}
		})
	}
}

func TestFramebufferResize(t *testing.T) {
	s, dev := readyScene(t)

	s.OnFramebufferResize(800, 400)
	if dev.viewport != [2]int{800, 400} {
		t.Errorf("viewport = %v, want 800x400", dev.viewport)
	}
	if s.aspect != 2 {
		t.Errorf("aspect = %v, want 2", s.aspect)
	}

	s.OnFramebufferResize(0, 0)
	if s.aspect != 2 || dev.viewport != [2]int{800, 400} {
		t.Error("zero-size resize should be ignored")
	}
}

func TestInputCallbacksAreNoOps(t *testing.T) {
	s, dev := readyScene(t)

	s.OnKey(4, 1, 0)
	s.OnMouseMove(10, 10)
	s.OnMouseButton(1, 1, 0)
	s.OnMouseScroll(0, 1)
	s.Update(0.016)

	if len(dev.calls) != 0 {
		t.Errorf("input callbacks touched the device: %v", dev.calls)
	}
	if s.Elapsed() != 0 {
		t.Errorf("Update should not advance the clock, elapsed = %v", s.Elapsed())
	}
}

func TestStateString(t *testing.T) {
	tests := map[State]string{
		Uninitialized: "uninitialized",
		Ready:         "ready",
		ShuttingDown:  "shutting down",
		Closed:        "closed",
		State(42):     "State(42)",
	}
	for st, want := range tests {
		if got := st.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", int(st), got, want)
		}
	}
}
