package scenes

import (
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/terrainlab/internal/engine/input"
	"github.com/Faultbox/terrainlab/internal/engine/mesh"
	"github.com/Faultbox/terrainlab/internal/engine/shader"
	"github.com/Faultbox/terrainlab/internal/logger"
)

const quadVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

uniform mat4 uModel;

out vec3 vColor;

void main() {
	gl_Position = uModel * vec4(aPos, 1.0);
	vColor = aColor;
}
`

const quadFragmentShader = `
#version 410 core

in vec3 vColor;
out vec4 FragColor;

void main() {
	FragColor = vec4(vColor, 1.0);
}
`

// QuadScene renders a single quad that rotates continuously and pulses in
// scale.
type QuadScene struct {
	program  uint32
	locModel int32
	buffer   *mesh.Buffer

	rotation float32
	time     float64
}

// NewQuadScene creates the rotating quad exercise.
func NewQuadScene() *QuadScene {
	return &QuadScene{}
}

// Init uploads the quad and compiles the inline shader pair. Shader failure
// is logged and the scene renders nothing.
func (s *QuadScene) Init() error {
	half := float32(0.5)
	a := mesh.Vertex{Position: [3]float32{-half, half, 0}, Color: [3]float32{1, 0.2, 0.2}}
	b := mesh.Vertex{Position: [3]float32{half, half, 0}, Color: [3]float32{0.2, 1, 0.2}}
	c := mesh.Vertex{Position: [3]float32{-half, -half, 0}, Color: [3]float32{0.2, 0.2, 1}}
	d := mesh.Vertex{Position: [3]float32{half, -half, 0}, Color: [3]float32{1, 1, 0.2}}

	s.buffer = mesh.UploadStatic(&mesh.Mesh{
		Vertices: []mesh.Vertex{a, c, b, b, c, d},
	})

	program, err := shader.CompileProgram(quadVertexShader, quadFragmentShader)
	if err != nil {
		logger.Error("quad shader compile failed", zap.Error(err))
	}
	s.program = program
	if s.program != 0 {
		s.locModel = shader.GetUniform(s.program, "uModel")
	}

	logger.Info("controls: R reset, ESC quit")
	return nil
}

// HandleKey resets the rotation on R.
func (s *QuadScene) HandleKey(key sdl.Scancode) {
	if key == sdl.SCANCODE_R {
		s.rotation = 0
		s.time = 0
	}
}

// Update advances the rotation and pulse phase.
func (s *QuadScene) Update(dt float64, in *input.Input) {
	s.rotation += float32(dt)
	s.time += dt
}

// Render draws the quad with the current rotation and pulse scale.
func (s *QuadScene) Render(width, height int) {
	if s.program == 0 {
		return
	}
	aspect, ok := aspectRatio(width, height)
	if !ok {
		return
	}

	pulse := 0.75 + 0.25*float32(math.Sin(s.time*2))
	model := mgl32.Scale3D(pulse/aspect, pulse, 1).Mul4(mgl32.HomogRotate3DZ(s.rotation))

	gl.UseProgram(s.program)
	gl.UniformMatrix4fv(s.locModel, 1, false, &model[0])
	s.buffer.Draw(gl.TRIANGLES)
}

// Destroy releases GL resources.
func (s *QuadScene) Destroy() {
	if s.buffer != nil {
		s.buffer.Destroy()
	}
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}
