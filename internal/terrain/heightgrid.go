// Package terrain builds renderable meshes from heightmap data. Heights come
// from a grayscale image or, when loading fails, from layered gradient noise.
package terrain

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"go.uber.org/zap"
	"golang.org/x/image/draw"

	"github.com/Faultbox/terrainlab/internal/logger"
)

// HeightGrid is a square grid of normalized heights in [0, 1], indexed by
// (x, z). Immutable after creation.
type HeightGrid struct {
	Size    int
	heights [][]float32
}

// At returns the height at grid coordinate (x, z).
func (g *HeightGrid) At(x, z int) float32 {
	return g.heights[x][z]
}

// GenerateHeightGrid synthesizes a size×size grid from layered gradient
// noise. Deterministic: the same size and seed always produce the same grid.
func GenerateHeightGrid(size int, seed int64) *HeightGrid {
	// Fixed feature scale relative to the grid so different sizes of the
	// same seed show the same landscape.
	freq := 4.0 / float32(size)

	heights := make([][]float32, size)
	for x := range heights {
		heights[x] = make([]float32, size)
		for z := range heights[x] {
			heights[x][z] = layeredNoise(float32(x)*freq, float32(z)*freq, seed)
		}
	}

	return &HeightGrid{Size: size, heights: heights}
}

// LoadHeightGrid reads a heightmap image, using the red channel as height.
// Images larger than maxSize on a side are downscaled; non-square images are
// resampled into a square grid of the shorter side.
func LoadHeightGrid(path string, maxSize int) (*HeightGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening heightmap: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding heightmap %s: %w", path, err)
	}

	bounds := img.Bounds()
	side := bounds.Dx()
	if bounds.Dy() < side {
		side = bounds.Dy()
	}
	if side > maxSize {
		side = maxSize
	}
	if side < 2 {
		return nil, fmt.Errorf("heightmap %s too small: %dx%d", path, bounds.Dx(), bounds.Dy())
	}

	rgba := image.NewRGBA(image.Rect(0, 0, side, side))
	draw.ApproxBiLinear.Scale(rgba, rgba.Bounds(), img, bounds, draw.Src, nil)

	heights := make([][]float32, side)
	for x := range heights {
		heights[x] = make([]float32, side)
		for z := range heights[x] {
			r, _, _, _ := rgba.At(x, z).RGBA()
			heights[x][z] = float32(r) / 0xffff
		}
	}

	return &HeightGrid{Size: side, heights: heights}, nil
}

// LoadOrGenerate loads a heightmap from path, falling back to synthetic
// noise when path is empty or loading fails. Load failure is non-fatal.
func LoadOrGenerate(path string, size, maxSize int, seed int64) *HeightGrid {
	if path != "" {
		grid, err := LoadHeightGrid(path, maxSize)
		if err == nil {
			logger.Info("heightmap loaded",
				zap.String("path", path),
				zap.Int("grid_size", grid.Size),
			)
			return grid
		}
		logger.Warn("heightmap load failed, using synthetic terrain",
			zap.String("path", path),
			zap.Error(err),
		)
	}

	grid := GenerateHeightGrid(size, seed)
	logger.Info("synthetic heightmap generated",
		zap.Int("grid_size", size),
		zap.Int64("seed", seed),
	)
	return grid
}
