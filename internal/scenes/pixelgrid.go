package scenes

import (
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/terrainlab/internal/engine/input"
	"github.com/Faultbox/terrainlab/internal/engine/mesh"
	"github.com/Faultbox/terrainlab/internal/engine/shader"
	"github.com/Faultbox/terrainlab/internal/logger"
)

const pixelGridVertexShader = `
#version 410 core

layout (location = 0) in vec3 aPos;
layout (location = 1) in vec3 aColor;

out vec3 vPhase;

void main() {
	gl_Position = vec4(aPos, 1.0);
	vPhase = aColor;
}
`

const pixelGridFragmentShader = `
#version 410 core

in vec3 vPhase;
out vec4 FragColor;

uniform float uTime;

void main() {
	vec3 c = 0.5 + 0.5 * cos(uTime + vPhase * 6.2831 + vec3(0.0, 2.0, 4.0));
	FragColor = vec4(c, 1.0);
}
`

// pixelGridCells is the number of cells per side.
const pixelGridCells = 32

// PixelGridScene renders a static grid of cells whose colors cycle over
// time, each cell offset by its grid position.
type PixelGridScene struct {
	program uint32
	locTime int32
	buffer  *mesh.Buffer
	time    float64
}

// NewPixelGridScene creates the animated pixel-grid exercise.
func NewPixelGridScene() *PixelGridScene {
	return &PixelGridScene{}
}

// Init uploads the cell grid. Each vertex carries its cell's phase in the
// color attribute; the fragment shader turns phase plus time into a color.
func (s *PixelGridScene) Init() error {
	const extent = float32(0.9)
	cell := 2 * extent / pixelGridCells

	vertices := make([]mesh.Vertex, 0, 6*pixelGridCells*pixelGridCells)
	for gy := 0; gy < pixelGridCells; gy++ {
		for gx := 0; gx < pixelGridCells; gx++ {
			x0 := -extent + float32(gx)*cell
			y0 := -extent + float32(gy)*cell
			phase := [3]float32{
				float32(gx) / pixelGridCells,
				float32(gy) / pixelGridCells,
				float32(gx+gy) / (2 * pixelGridCells),
			}

			a := mesh.Vertex{Position: [3]float32{x0, y0 + cell, 0}, Color: phase}
			b := mesh.Vertex{Position: [3]float32{x0 + cell, y0 + cell, 0}, Color: phase}
			c := mesh.Vertex{Position: [3]float32{x0, y0, 0}, Color: phase}
			d := mesh.Vertex{Position: [3]float32{x0 + cell, y0, 0}, Color: phase}
			vertices = append(vertices, a, c, b, b, c, d)
		}
	}

	s.buffer = mesh.UploadStatic(&mesh.Mesh{Vertices: vertices})

	program, err := shader.CompileProgram(pixelGridVertexShader, pixelGridFragmentShader)
	if err != nil {
		logger.Error("pixel grid shader compile failed", zap.Error(err))
	}
	s.program = program
	if s.program != 0 {
		s.locTime = shader.GetUniform(s.program, "uTime")
	}

	logger.Info("pixel grid ready",
		zap.Int("cells", pixelGridCells*pixelGridCells),
		zap.Int("vertices", len(vertices)),
	)
	return nil
}

// HandleKey restarts the animation on R.
func (s *PixelGridScene) HandleKey(key sdl.Scancode) {
	if key == sdl.SCANCODE_R {
		s.time = 0
	}
}

// Update advances the animation clock.
func (s *PixelGridScene) Update(dt float64, in *input.Input) {
	s.time += dt
}

// Render draws the grid with the current time uniform.
func (s *PixelGridScene) Render(width, height int) {
	if s.program == 0 {
		return
	}

	gl.UseProgram(s.program)
	gl.Uniform1f(s.locTime, float32(math.Mod(s.time, 1000)))
	s.buffer.Draw(gl.TRIANGLES)
}

// Destroy releases GL resources.
func (s *PixelGridScene) Destroy() {
	if s.buffer != nil {
		s.buffer.Destroy()
	}
	if s.program != 0 {
		gl.DeleteProgram(s.program)
		s.program = 0
	}
}
