package plot

import (
	"math"
	"testing"
)

func TestSampleCountBounded(t *testing.T) {
	w := Window{Zoom: 1}

	if got := len(Sample(math.Sin, w, 100)); got != 100 {
		t.Errorf("got %d vertices, want 100", got)
	}
	if got := len(Sample(math.Sin, w, MaxVertices*2)); got != MaxVertices {
		t.Errorf("got %d vertices, want clamp to %d", got, MaxVertices)
	}
	if got := len(Sample(math.Sin, w, 0)); got != 2 {
		t.Errorf("got %d vertices, want minimum of 2", got)
	}
}

func TestSampleEndpointsOnWindowEdges(t *testing.T) {
	w := Window{CenterX: 2, Zoom: 4}
	left, right, _, _ := w.Bounds()

	vs := Sample(math.Sin, w, 64)
	if vs[0].Position[0] != left {
		t.Errorf("first sample X %f, want left edge %f", vs[0].Position[0], left)
	}
	if vs[len(vs)-1].Position[0] != right {
		t.Errorf("last sample X %f, want right edge %f", vs[len(vs)-1].Position[0], right)
	}
}

func TestBoundsShrinkWithZoom(t *testing.T) {
	wide := Window{Zoom: 1}
	tight := Window{Zoom: 10}

	wl, wr, _, _ := wide.Bounds()
	tl, tr, _, _ := tight.Bounds()

	if (tr - tl) >= (wr - wl) {
		t.Errorf("zoomed window %f should be narrower than base %f", tr-tl, wr-wl)
	}
	if wr-wl != 2*BaseHalfWidth {
		t.Errorf("base window width %f, want %f", wr-wl, float32(2*BaseHalfWidth))
	}
}

func TestBoundsFollowPan(t *testing.T) {
	w := Window{CenterX: 3, CenterY: -2, Zoom: 1}
	left, right, bottom, top := w.Bounds()

	if (left+right)/2 != 3 {
		t.Errorf("X center %f, want 3", (left+right)/2)
	}
	if (bottom+top)/2 != -2 {
		t.Errorf("Y center %f, want -2", (bottom+top)/2)
	}
}

func TestSampleEvaluatesFunction(t *testing.T) {
	w := Window{Zoom: 1}
	vs := Sample(func(x float64) float64 { return x * 2 }, w, 16)

	for i, v := range vs {
		want := v.Position[0] * 2
		if math.Abs(float64(v.Position[1]-want)) > 1e-5 {
			t.Errorf("sample %d: y=%f, want %f", i, v.Position[1], want)
		}
	}
}
