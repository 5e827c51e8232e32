package scenes

import "testing"

func TestAspectRatio(t *testing.T) {
	aspect, ok := aspectRatio(1024, 768)
	if !ok {
		t.Fatal("expected a valid aspect for 1024x768")
	}
	if aspect != float32(1024)/float32(768) {
		t.Errorf("expected aspect 4:3, got %f", aspect)
	}
}

func TestAspectRatioDegenerateSizes(t *testing.T) {
	sizes := [][2]int{
		{1024, 0},
		{0, 768},
		{1024, -1},
		{-1, 768},
		{0, 0},
	}
	for _, size := range sizes {
		if _, ok := aspectRatio(size[0], size[1]); ok {
			t.Errorf("expected %dx%d to be rejected", size[0], size[1])
		}
	}
}
