// Package app implements the shared frame driver for the exercises: window
// and GL setup, the per-frame update/render loop, and input dispatch.
package app

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/terrainlab/internal/config"
	"github.com/Faultbox/terrainlab/internal/engine/input"
	"github.com/Faultbox/terrainlab/internal/engine/shader"
	"github.com/Faultbox/terrainlab/internal/engine/window"
	"github.com/Faultbox/terrainlab/internal/logger"
)

// Scene is one exercise: it owns its geometry, shaders and view state.
// The frame driver calls Init once after the GL context exists, then
// Update and Render every frame.
type Scene interface {
	Init() error
	HandleKey(key sdl.Scancode)
	Update(dt float64, in *input.Input)
	Render(width, height int)
	Destroy()
}

// App drives one scene in a window.
type App struct {
	cfg    *config.Config
	window *window.Window
	input  *input.Input
	scene  Scene

	width   int
	height  int
	running bool
}

// New creates the window and GL context and initializes the scene.
func New(title string, cfg *config.Config, scene Scene) (*App, error) {
	a := &App{
		cfg:    cfg,
		scene:  scene,
		width:  cfg.Graphics.Width,
		height: cfg.Graphics.Height,
	}

	var err error
	a.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
	})
	if err != nil {
		return nil, fmt.Errorf("creating window: %w", err)
	}

	if err := gl.Init(); err != nil {
		a.window.Close()
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(0.1, 0.1, 0.15, 1.0)

	a.input = input.New()

	if err := scene.Init(); err != nil {
		a.window.Close()
		return nil, fmt.Errorf("initializing scene: %w", err)
	}
	shader.CheckError("scene init")

	return a, nil
}

// Run starts the frame loop and blocks until quit.
func (a *App) Run() error {
	a.running = true

	lastTime := time.Now()
	frameCount := 0
	fpsTimer := time.Now()

	logger.Info("starting frame loop")

	for a.running {
		now := time.Now()
		dt := now.Sub(lastTime).Seconds()
		lastTime = now

		if a.input.Update() {
			a.running = false
			break
		}

		for _, event := range a.input.Events() {
			switch event.Type {
			case input.EventWindowResize:
				a.width = event.Width
				a.height = event.Height
				gl.Viewport(0, 0, int32(event.Width), int32(event.Height))
			case input.EventKeyDown:
				if event.Key == sdl.SCANCODE_ESCAPE {
					a.running = false
					continue
				}
				a.scene.HandleKey(event.Key)
			}
		}

		a.scene.Update(dt, a.input)
		shader.CheckError("update")

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		a.scene.Render(a.width, a.height)
		shader.CheckError("render")

		a.window.SwapBuffers()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			if a.cfg.Graphics.ShowFPS {
				logger.Info("fps", zap.Int("frames", frameCount))
			} else {
				logger.Debug("fps", zap.Int("frames", frameCount))
			}
			frameCount = 0
			fpsTimer = time.Now()
		}
	}

	return nil
}

// Close tears down the scene and window.
func (a *App) Close() {
	if a.scene != nil {
		a.scene.Destroy()
	}
	if a.window != nil {
		a.window.Close()
	}
}
