package terrain

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/Faultbox/terrainlab/internal/logger"
)

func TestMain(m *testing.M) {
	// Silent logger so LoadOrGenerate can log during tests
	_ = logger.InitWithFileConfig("error", logger.FileConfig{}, false)
	os.Exit(m.Run())
}

func writeTestHeightmap(t *testing.T, side int, redAt func(x, y int) uint8) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, side, side))
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			img.Set(x, y, color.RGBA{R: redAt(x, y), G: 10, B: 200, A: 255})
		}
	}

	path := filepath.Join(t.TempDir(), "heightmap.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create test image: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}
	return path
}

func TestLoadHeightGridUsesRedChannel(t *testing.T) {
	path := writeTestHeightmap(t, 8, func(x, y int) uint8 {
		if x < 4 {
			return 0
		}
		return 255
	})

	g, err := LoadHeightGrid(path, 64)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}

	if g.Size != 8 {
		t.Fatalf("got size %d, want 8", g.Size)
	}
	if g.At(0, 0) > 0.01 {
		t.Errorf("left half should be near 0, got %f", g.At(0, 0))
	}
	if g.At(7, 7) < 0.99 {
		t.Errorf("right half should be near 1, got %f", g.At(7, 7))
	}
}

func TestLoadHeightGridClampsToMaxSize(t *testing.T) {
	path := writeTestHeightmap(t, 64, func(x, y int) uint8 { return uint8(4 * x) })

	g, err := LoadHeightGrid(path, 16)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if g.Size != 16 {
		t.Errorf("got size %d, want clamp to 16", g.Size)
	}

	for x := 0; x < g.Size; x++ {
		for z := 0; z < g.Size; z++ {
			h := g.At(x, z)
			if h < 0 || h > 1 {
				t.Fatalf("height at (%d,%d) = %f outside [0,1]", x, z, h)
			}
		}
	}
}

func TestLoadHeightGridMissingFile(t *testing.T) {
	if _, err := LoadHeightGrid(filepath.Join(t.TempDir(), "nope.png"), 64); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadHeightGridBadData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "garbage.png")
	if err := os.WriteFile(path, []byte("not an image"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if _, err := LoadHeightGrid(path, 64); err == nil {
		t.Error("expected decode error for garbage data")
	}
}

func TestLoadOrGenerateFallsBack(t *testing.T) {
	g := LoadOrGenerate(filepath.Join(t.TempDir(), "missing.png"), 24, 256, 1337)

	if g.Size != 24 {
		t.Fatalf("fallback grid size %d, want 24", g.Size)
	}

	// Fallback must match a direct synthetic grid with the same parameters
	want := GenerateHeightGrid(24, 1337)
	for x := 0; x < 24; x++ {
		for z := 0; z < 24; z++ {
			if g.At(x, z) != want.At(x, z) {
				t.Fatalf("fallback differs from synthetic grid at (%d,%d)", x, z)
			}
		}
	}
}

func TestLoadOrGeneratePrefersImage(t *testing.T) {
	path := writeTestHeightmap(t, 8, func(x, y int) uint8 { return 128 })

	g := LoadOrGenerate(path, 64, 256, 1337)
	if g.Size != 8 {
		t.Errorf("expected image grid of size 8, got %d", g.Size)
	}
}
