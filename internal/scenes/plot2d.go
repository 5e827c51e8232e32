package scenes

import (
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/terrainlab/internal/config"
	"github.com/Faultbox/terrainlab/internal/engine/input"
	"github.com/Faultbox/terrainlab/internal/engine/mesh"
	"github.com/Faultbox/terrainlab/internal/engine/shader"
	"github.com/Faultbox/terrainlab/internal/logger"
	"github.com/Faultbox/terrainlab/internal/plot"
	"github.com/Faultbox/terrainlab/internal/view"
)

const plotVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 uProj;

out vec3 vColor;

void main() {
	gl_Position = uProj * vec4(aPos, 1.0);
	vColor = aColor;
}
`

const plotFragmentShader = `
#version 410 core

in vec3 vColor;
out vec4 FragColor;

void main() {
	FragColor = vec4(vColor, 1.0);
}
`

// PlotScene renders y = f(x) across a pannable, zoomable window. The vertex
// buffer is allocated once at its maximum size and refilled every frame.
type PlotScene struct {
	cfg  config.PlotConfig
	view *view.State

	// F is the plotted function. Defaults to sin.
	F func(float64) float64

	program uint32
	locProj int32
	buffer  *mesh.Buffer
}

// NewPlotScene creates the 2D function plotter exercise.
func NewPlotScene(cfg config.PlotConfig) *PlotScene {
	return &PlotScene{
		cfg:  cfg,
		view: view.New(),
		F:    math.Sin,
	}
}

// Init allocates the reusable plot buffer and compiles the inline shaders.
func (s *PlotScene) Init() error {
	s.buffer = mesh.NewDynamic(plot.MaxVertices)

	program, err := shader.CompileProgram(plotVertexShader, plotFragmentShader)
	if err != nil {
		logger.Error("plot shader compile failed", zap.Error(err))
	}
	s.program = program
	if s.program != 0 {
		s.locProj = shader.GetUniform(s.program, "uProj")
	}

	logger.Info("controls: arrows pan, Z/X zoom, R reset, ESC quit")
	return nil
}

// HandleKey resets the view on R.
func (s *PlotScene) HandleKey(key sdl.Scancode) {
	if key == sdl.SCANCODE_R {
		s.view.Reset()
		logger.Info("view reset")
	}
}

// Update applies held pan/zoom keys. Pan speed follows the zoom level so
// movement feels constant on screen.
func (s *PlotScene) Update(dt float64, in *input.Input) {
	step := float32(dt) * 2 / s.view.Zoom

	if in.IsKeyDown(sdl.SCANCODE_LEFT) {
		s.view.Pan(-step, 0)
	}
	if in.IsKeyDown(sdl.SCANCODE_RIGHT) {
		s.view.Pan(step, 0)
	}
	if in.IsKeyDown(sdl.SCANCODE_UP) {
		s.view.Pan(0, step)
	}
	if in.IsKeyDown(sdl.SCANCODE_DOWN) {
		s.view.Pan(0, -step)
	}
	if in.IsKeyDown(sdl.SCANCODE_Z) {
		s.view.ZoomBy(1 + 0.8*float32(dt))
	}
	if in.IsKeyDown(sdl.SCANCODE_X) {
		s.view.ZoomBy(1 - 0.8*float32(dt))
	}
}

// Render samples the function over the current window and draws one line
// strip.
func (s *PlotScene) Render(width, height int) {
	if s.program == 0 {
		return
	}
	aspect, ok := aspectRatio(width, height)
	if !ok {
		return
	}

	window := plot.Window{
		CenterX: s.view.PanX,
		CenterY: s.view.PanY,
		Zoom:    s.view.Zoom,
	}
	s.buffer.Update(plot.Sample(s.F, window, s.cfg.Samples))

	left, right, bottom, top := window.Bounds()
	cx := (left + right) / 2
	halfW := (right - left) / 2 * aspect
	proj := mgl32.Ortho2D(cx-halfW, cx+halfW, bottom, top)

	gl.UseProgram(s.program)
	gl.UniformMatrix4fv(s.locProj, 1, false, &proj[0])
	s.buffer.Draw(gl.LINE_STRIP)
}

// Destroy releases GL resources.
func (s *PlotScene) Destroy() {
	if s.buffer != nil {
		s.buffer.Destroy()
	}
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}
