// Package plot samples a scalar function into a line-strip vertex list for
// the 2D plotter exercise. The output is bounded so the GPU buffer can be
// allocated once and reused every frame.
package plot

import (
	"github.com/Faultbox/terrainlab/internal/engine/mesh"
)

// MaxVertices is the fixed capacity of the per-frame plot buffer.
const MaxVertices = 4096

// BaseHalfWidth is the half extent of the visible X range at zoom 1.
const BaseHalfWidth = 5.0

// Window describes the visible region of the function: a pan center plus a
// zoom factor shrinking the base extent.
type Window struct {
	CenterX float32
	CenterY float32
	Zoom    float32
}

// Bounds returns the visible region edges. Higher zoom means a smaller
// window.
func (w Window) Bounds() (left, right, bottom, top float32) {
	half := float32(BaseHalfWidth) / w.Zoom
	return w.CenterX - half, w.CenterX + half, w.CenterY - half, w.CenterY + half
}

var lineColor = [3]float32{0.9, 0.8, 0.2}

// Sample evaluates f at evenly spaced X positions across the window and
// returns line-strip vertices. The result never exceeds MaxVertices; the
// first and last vertex sit exactly on the window edges.
func Sample(f func(float64) float64, w Window, samples int) []mesh.Vertex {
	if samples < 2 {
		samples = 2
	}
	if samples > MaxVertices {
		samples = MaxVertices
	}

	left, right, _, _ := w.Bounds()
	step := (right - left) / float32(samples-1)

	vertices := make([]mesh.Vertex, samples)
	for i := 0; i < samples; i++ {
		x := left + float32(i)*step
		if i == samples-1 {
			x = right
		}
		y := float32(f(float64(x)))
		vertices[i] = mesh.Vertex{
			Position: [3]float32{x, y, 0},
			Color:    lineColor,
		}
	}

	return vertices
}
