// Package scenes contains the exercise scenes driven by the app frame loop.
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
	"github.com/Faultbox/terrainlab/internal/terrain"
	"github.com/Faultbox/terrainlab/internal/view"
)

const terrainVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 uMVP;
uniform float uTime;
uniform int uWave;

out vec3 vColor;

void main() {
	vec3 pos = aPos;
	if (uWave == 1) {
		pos.y += 0.1 * sin(uTime * 2.0 + aPos.x * 4.0 + aPos.z * 4.0);
	}
	gl_Position = uMVP * vec4(pos, 1.0);
	vColor = aColor;
}
`

const terrainFragmentShader = `
#version 410 core

in vec3 vColor;
out vec4 FragColor;

void main() {
	FragColor = vec4(vColor, 1.0);
}
`

// cameraTilt is the fixed downward pitch of the fly-over camera.
const cameraTilt = 0.6

// TerrainScene renders a heightmap terrain mesh with a rotating fly-over
// camera and an optional wave animation.
type TerrainScene struct {
	cfg  config.TerrainConfig
	view *view.State

	program uint32
	locMVP  int32
	locTime int32
	locWave int32

	buffer *mesh.Buffer
	time   float64
}

// NewTerrainScene creates the terrain exercise with the given settings.
func NewTerrainScene(cfg config.TerrainConfig) *TerrainScene {
	return &TerrainScene{
		cfg:  cfg,
		view: view.New(),
	}
}

// Init builds the mesh and compiles the shader pair. With a shader directory
// configured, compile failure aborts startup; the inline pair only logs and
// leaves the scene without a usable program.
func (s *TerrainScene) Init() error {
	grid := terrain.LoadOrGenerate(s.cfg.Heightmap, s.cfg.GridSize, s.cfg.MaxGridSize, s.cfg.Seed)

	var m *mesh.Mesh
	if s.cfg.Indexed {
		m = terrain.BuildIndexedMesh(grid)
	} else {
		m = terrain.BuildMesh(grid)
	}
	logger.Info("terrain mesh built",
		zap.Bool("indexed", s.cfg.Indexed),
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("indices", len(m.Indices)),
	)

	if s.cfg.ShaderDir != "" {
		program, err := shader.LoadProgram(s.cfg.ShaderDir, "terrain")
		if err != nil {
			return err
		}
		s.program = program
	} else {
		program, err := shader.CompileProgram(terrainVertexShader, terrainFragmentShader)
		if err != nil {
			logger.Error("terrain shader compile failed", zap.Error(err))
		}
		s.program = program
	}

	if s.program != 0 {
		s.locMVP = shader.GetUniform(s.program, "uMVP")
		s.locTime = shader.GetUniform(s.program, "uTime")
		s.locWave = shader.GetUniform(s.program, "uWave")
	}

	s.buffer = mesh.UploadStatic(m)

	logger.Info("controls: left/right rotate, up/down fly, W wave, R reset, ESC quit")
	return nil
}

// HandleKey reacts to discrete key presses.
func (s *TerrainScene) HandleKey(key sdl.Scancode) {
	switch key {
	case sdl.SCANCODE_W:
		s.view.ToggleWave()
		logger.Info("wave animation", zap.Bool("enabled", s.view.Wave))
	case sdl.SCANCODE_R:
		s.view.Reset()
		logger.Info("view reset")
	}
}

// Update applies held keys as continuous view adjustments.
func (s *TerrainScene) Update(dt float64, in *input.Input) {
	step := float32(dt)

	if in.IsKeyDown(sdl.SCANCODE_LEFT) {
		s.view.Rotate(-1.2 * step)
	}
	if in.IsKeyDown(sdl.SCANCODE_RIGHT) {
		s.view.Rotate(1.2 * step)
	}
	if in.IsKeyDown(sdl.SCANCODE_UP) {
		s.view.Fly(2.5 * step)
	}
	if in.IsKeyDown(sdl.SCANCODE_DOWN) {
		s.view.Fly(-2.5 * step)
	}

	s.time += dt
}

// Render recomputes the MVP from the view state and issues one draw call.
func (s *TerrainScene) Render(width, height int) {
	if s.program == 0 || s.buffer == nil {
		return
	}

	aspect, ok := aspectRatio(width, height)
	if !ok {
		return
	}
	proj := mgl32.Perspective(mgl32.DegToRad(60), aspect, 0.1, 100)
	camera := mgl32.Translate3D(0, 0, s.view.Distance).Mul4(mgl32.HomogRotate3DX(cameraTilt))
	model := mgl32.HomogRotate3DY(s.view.Rotation)
	mvp := proj.Mul4(camera).Mul4(model)

	gl.UseProgram(s.program)
	gl.UniformMatrix4fv(s.locMVP, 1, false, &mvp[0])
	gl.Uniform1f(s.locTime, float32(math.Mod(s.time, 1000)))
	if s.view.Wave {
		gl.Uniform1i(s.locWave, 1)
	} else {
		gl.Uniform1i(s.locWave, 0)
	}

	s.buffer.Draw(gl.TRIANGLES)
}

// Destroy releases GL resources.
func (s *TerrainScene) Destroy() {
	if s.buffer != nil {
		s.buffer.Destroy()
	}
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}
