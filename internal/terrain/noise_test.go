package terrain

import (
	"testing"
)

func TestLayeredNoiseDeterministic(t *testing.T) {
	for _, seed := range []int64{0, 1, 1337, -42} {
		a := layeredNoise(3.7, 8.2, seed)
		b := layeredNoise(3.7, 8.2, seed)
		if a != b {
			t.Errorf("seed %d: repeated evaluation differs: %f vs %f", seed, a, b)
		}
	}
}

func TestLayeredNoiseRange(t *testing.T) {
	for x := float32(0); x < 10; x += 0.37 {
		for z := float32(0); z < 10; z += 0.41 {
			v := layeredNoise(x, z, 1337)
			if v < 0 || v > 1 {
				t.Fatalf("noise(%f, %f) = %f outside [0,1]", x, z, v)
			}
		}
	}
}

func TestLayeredNoiseSeedVaries(t *testing.T) {
	same := 0
	total := 0
	for x := float32(0); x < 5; x += 0.5 {
		for z := float32(0); z < 5; z += 0.5 {
			total++
			if layeredNoise(x, z, 1) == layeredNoise(x, z, 2) {
				same++
			}
		}
	}
	if same == total {
		t.Error("different seeds produced identical noise everywhere")
	}
}

func TestLayeredNoiseNotConstant(t *testing.T) {
	first := layeredNoise(0.3, 0.3, 1337)
	varied := false
	for x := float32(0); x < 8; x += 0.7 {
		if layeredNoise(x, x*1.3, 1337) != first {
			varied = true
			break
		}
	}
	if !varied {
		t.Error("noise appears constant over the sampled region")
	}
}

func TestFadeEndpoints(t *testing.T) {
	if fade(0) != 0 {
		t.Errorf("fade(0) = %f, want 0", fade(0))
	}
	if fade(1) != 1 {
		t.Errorf("fade(1) = %f, want 1", fade(1))
	}
	if fade(0.5) != 0.5 {
		t.Errorf("fade(0.5) = %f, want 0.5", fade(0.5))
	}
}

func TestGenerateHeightGridDeterministic(t *testing.T) {
	a := GenerateHeightGrid(32, 1337)
	b := GenerateHeightGrid(32, 1337)

	for x := 0; x < 32; x++ {
		for z := 0; z < 32; z++ {
			if a.At(x, z) != b.At(x, z) {
				t.Fatalf("grids differ at (%d,%d): %f vs %f", x, z, a.At(x, z), b.At(x, z))
			}
		}
	}
}

func TestGenerateHeightGridRange(t *testing.T) {
	g := GenerateHeightGrid(48, 7)
	for x := 0; x < g.Size; x++ {
		for z := 0; z < g.Size; z++ {
			h := g.At(x, z)
			if h < 0 || h > 1 {
				t.Fatalf("height at (%d,%d) = %f outside [0,1]", x, z, h)
			}
		}
	}
}
