// Package app wires the window, renderer and scene into the main loop.
package app

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/robot-walk/internal/config"
	"github.com/Faultbox/robot-walk/internal/engine/camera"
	"github.com/Faultbox/robot-walk/internal/engine/input"
	"github.com/Faultbox/robot-walk/internal/engine/renderer"
	"github.com/Faultbox/robot-walk/internal/engine/window"
	"github.com/Faultbox/robot-walk/internal/logger"
	"github.com/Faultbox/robot-walk/internal/robot"
	"github.com/Faultbox/robot-walk/internal/scene"
	"github.com/Faultbox/robot-walk/pkg/math"
)

// Title is the window title.
const Title = "Robot Walk"

// App is the running demo.
type App struct {
	cfg      *config.Config
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	scene    *scene.Scene
	log      *zap.Logger
}

// New creates the window, renderer and scene and initializes the scene.
// On error everything created so far is closed.
func New(cfg *config.Config) (*App, error) {
	a := &App{
		cfg: cfg,
		log: logger.Named("app"),
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      Title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context created by the window.
	width, height := a.window.DrawableSize()
	a.renderer, err = renderer.New(renderer.Config{
		Width:        width,
		Height:       height,
		ReverseDepth: cfg.Graphics.ReverseDepth,
		CullFaces:    cfg.Graphics.CullFaces,
		ClearColor:   cfg.Graphics.ClearColor,
	})
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	a.scene = scene.New(a.renderer, SceneConfig(cfg, width, height))
	if err := a.scene.Init(); err != nil {
		a.Close()
		return nil, err
	}

	return a, nil
}

// SceneConfig maps the loaded configuration onto scene settings.
func SceneConfig(cfg *config.Config, width, height int) scene.Config {
	cam := cfg.Scene.Camera
	fixed := camera.NewFixed(math.Vec3From(cam.Eye), math.Vec3From(cam.Target), cam.FOV, cam.Near, cam.Far)
	fixed.ReverseDepth = cfg.Graphics.ReverseDepth

	return scene.Config{
		Mesh:           cfg.Scene.Mesh,
		VertexShader:   cfg.Scene.VertexShader,
		FragmentShader: cfg.Scene.FragmentShader,
		Motion: robot.Motion{
			Amplitude: cfg.Scene.SwingAmplitude,
			Frequency: cfg.Scene.SwingFrequency,
			SpinSpeed: cfg.Scene.SpinSpeed,
		},
		Camera: fixed,
		Width:  width,
		Height: height,
	}
}

// Run starts the main loop and returns when the window is closed or Escape
// is pressed.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := lastTime

	a.log.Info("starting render loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		events := a.window.PollEvents()
		if input.Dispatch(events, a.scene) || input.KeyPressed(events, input.KeyEscape) {
			a.running = false
			break
		}

		a.scene.Update(dt)
		a.scene.Render(dt)
		a.window.SwapBuffers()

		frameCount++
		if since := time.Since(fpsTimer); since >= time.Second {
			a.log.Debug("fps",
				zap.Int("frames", frameCount),
				zap.Float64("dt_ms", dt*1000),
				zap.Float64("elapsed", a.scene.Elapsed()),
			)
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close shuts the scene down, then closes the renderer and window. It is
// safe on a partially constructed App.
func (a *App) Close() {
	a.log.Info("closing")

	if a.scene != nil {
		a.scene.Shutdown()
	}
	if a.renderer != nil {
		a.renderer.Close()
	}
	if a.window != nil {
		a.window.Close()
	}
}
