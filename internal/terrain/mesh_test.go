package terrain

import (
	"testing"
)

func flatGrid(size int, h float32) *HeightGrid {
	heights := make([][]float32, size)
	for x := range heights {
		heights[x] = make([]float32, size)
		for z := range heights[x] {
			heights[x][z] = h
		}
	}
	return &HeightGrid{Size: size, heights: heights}
}

func TestBuildMeshVertexCount(t *testing.T) {
	for _, n := range []int{2, 3, 4, 16, 33} {
		g := GenerateHeightGrid(n, 7)
		m := BuildMesh(g)

		want := 6 * (n - 1) * (n - 1)
		if len(m.Vertices) != want {
			t.Errorf("size %d: got %d vertices, want %d", n, len(m.Vertices), want)
		}
		if m.Indices != nil {
			t.Errorf("size %d: non-indexed mesh should have no indices", n)
		}
	}
}

func TestBuildIndexedMeshCounts(t *testing.T) {
	for _, n := range []int{2, 3, 4, 16, 33} {
		g := GenerateHeightGrid(n, 7)
		m := BuildIndexedMesh(g)

		if len(m.Vertices) != n*n {
			t.Errorf("size %d: got %d vertices, want %d", n, len(m.Vertices), n*n)
		}
		wantIdx := 6 * (n - 1) * (n - 1)
		if len(m.Indices) != wantIdx {
			t.Errorf("size %d: got %d indices, want %d", n, len(m.Indices), wantIdx)
		}

		for i, idx := range m.Indices {
			if idx >= uint32(n*n) {
				t.Fatalf("size %d: index %d out of range at position %d", n, idx, i)
			}
		}
	}
}

func TestFlatGridProducesFlatMesh(t *testing.T) {
	g := flatGrid(4, 0)
	m := BuildMesh(g)

	if len(m.Vertices) != 6*3*3 {
		t.Fatalf("got %d vertices, want %d", len(m.Vertices), 6*3*3)
	}

	wantColor := HeightColor(0)
	for i, v := range m.Vertices {
		if v.Position[1] != 0 {
			t.Errorf("vertex %d: Y = %f, want 0", i, v.Position[1])
		}
		if v.Color != wantColor {
			t.Errorf("vertex %d: color %v, want low band %v", i, v.Color, wantColor)
		}
	}
}

func TestIndexedAndNonIndexedAgree(t *testing.T) {
	g := GenerateHeightGrid(8, 99)
	flat := BuildMesh(g)
	indexed := BuildIndexedMesh(g)

	// Resolving the index list must reproduce the duplicated triangle list.
	if len(flat.Vertices) != len(indexed.Indices) {
		t.Fatalf("vertex count %d != index count %d", len(flat.Vertices), len(indexed.Indices))
	}
	for i, idx := range indexed.Indices {
		if flat.Vertices[i] != indexed.Vertices[idx] {
			t.Fatalf("triangle corner %d differs between variants", i)
		}
	}
}

func TestHeightColorInRange(t *testing.T) {
	samples := []float32{0, 0.1, 0.2999, 0.3, 0.5, 0.6999, 0.7, 0.85, 1}
	for _, h := range samples {
		c := HeightColor(h)
		for ch, v := range c {
			if v < 0 || v > 1 {
				t.Errorf("h=%f channel %d: %f outside [0,1]", h, ch, v)
			}
		}
	}
}

func TestHeightColorBands(t *testing.T) {
	low := HeightColor(0.1)
	mid := HeightColor(0.5)
	high := HeightColor(0.9)

	if low == mid || mid == high || low == high {
		t.Error("expected distinct colors across the three bands")
	}

	// Snow at the very top
	top := HeightColor(1)
	if top != [3]float32{1, 1, 1} {
		t.Errorf("expected white at h=1, got %v", top)
	}
}

func TestHeightColorClampsInput(t *testing.T) {
	if HeightColor(-0.5) != HeightColor(0) {
		t.Error("negative heights should clamp to 0")
	}
	if HeightColor(1.5) != HeightColor(1) {
		t.Error("heights above 1 should clamp to 1")
	}
}

func TestMeshCentering(t *testing.T) {
	g := flatGrid(5, 0)
	m := BuildIndexedMesh(g)

	var minX, maxX float32
	for _, v := range m.Vertices {
		if v.Position[0] < minX {
			minX = v.Position[0]
		}
		if v.Position[0] > maxX {
			maxX = v.Position[0]
		}
	}

	if minX != -maxX {
		t.Errorf("grid not centered: X range [%f, %f]", minX, maxX)
	}
	want := float32(5-1) / 2 * CellSize
	if maxX != want {
		t.Errorf("half extent %f, want %f", maxX, want)
	}
}
