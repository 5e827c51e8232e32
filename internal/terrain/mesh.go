package terrain

import (
	"github.com/Faultbox/terrainlab/internal/engine/mesh"
)

const (
	// CellSize is the world-space spacing between grid columns.
	CellSize = 0.1
	// HeightScale converts a normalized height into a world-space Y offset.
	HeightScale = 2.0
)

// Color band boundaries for the height ramp.
const (
	lowBand  = 0.3
	highBand = 0.7
)

var (
	waterColor = [3]float32{0.05, 0.2, 0.6}
	shoreColor = [3]float32{0.1, 0.5, 0.3}
	grassColor = [3]float32{0.1, 0.5, 0.15}
	rockColor  = [3]float32{0.5, 0.45, 0.3}
	stoneColor = [3]float32{0.55, 0.5, 0.5}
	snowColor  = [3]float32{1, 1, 1}
)

// HeightColor maps a normalized height to a color via a piecewise-linear
// ramp with three bands (low/mid/high split at 0.3 and 0.7). Every channel
// stays in [0, 1] for h in [0, 1].
func HeightColor(h float32) [3]float32 {
	if h < 0 {
		h = 0
	}
	if h > 1 {
		h = 1
	}

	switch {
	case h < lowBand:
		return blend(waterColor, shoreColor, h/lowBand)
	case h < highBand:
		return blend(grassColor, rockColor, (h-lowBand)/(highBand-lowBand))
	default:
		return blend(stoneColor, snowColor, (h-highBand)/(1-highBand))
	}
}

func blend(a, b [3]float32, t float32) [3]float32 {
	return [3]float32{
		lerp(a[0], b[0], t),
		lerp(a[1], b[1], t),
		lerp(a[2], b[2], t),
	}
}

// vertexAt maps grid coordinate (x, z) to a world-space vertex, centering
// the grid on the origin.
func vertexAt(g *HeightGrid, x, z int) mesh.Vertex {
	half := float32(g.Size-1) / 2
	h := g.At(x, z)
	return mesh.Vertex{
		Position: [3]float32{
			(float32(x) - half) * CellSize,
			h * HeightScale,
			(float32(z) - half) * CellSize,
		},
		Color: HeightColor(h),
	}
}

// BuildMesh produces a non-indexed triangle list: two triangles per grid
// cell with vertices duplicated at shared edges. For an N×N grid the result
// holds exactly 6×(N-1)² vertices.
func BuildMesh(g *HeightGrid) *mesh.Mesh {
	n := g.Size
	vertices := make([]mesh.Vertex, 0, 6*(n-1)*(n-1))

	for z := 0; z < n-1; z++ {
		for x := 0; x < n-1; x++ {
			a := vertexAt(g, x, z)
			b := vertexAt(g, x+1, z)
			c := vertexAt(g, x, z+1)
			d := vertexAt(g, x+1, z+1)

			vertices = append(vertices, a, c, b, b, c, d)
		}
	}

	return &mesh.Mesh{Vertices: vertices}
}

// BuildIndexedMesh produces one vertex per grid point plus an index list
// referencing shared corners. For an N×N grid the result holds N² vertices
// and 6×(N-1)² indices.
func BuildIndexedMesh(g *HeightGrid) *mesh.Mesh {
	n := g.Size
	vertices := make([]mesh.Vertex, 0, n*n)
	indices := make([]uint32, 0, 6*(n-1)*(n-1))

	for z := 0; z < n; z++ {
		for x := 0; x < n; x++ {
			vertices = append(vertices, vertexAt(g, x, z))
		}
	}

	for z := 0; z < n-1; z++ {
		for x := 0; x < n-1; x++ {
			a := uint32(z*n + x)
			b := uint32(z*n + x + 1)
			c := uint32((z+1)*n + x)
			d := uint32((z+1)*n + x + 1)

			indices = append(indices, a, c, b, b, c, d)
		}
	}

	return &mesh.Mesh{Vertices: vertices, Indices: indices}
}
