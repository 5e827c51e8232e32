package view

import (
	"testing"
)

func TestDefaults(t *testing.T) {
	s := New()

	if s.Rotation != 0 {
		t.Errorf("default rotation %f, want 0", s.Rotation)
	}
	if s.Distance != DefaultDistance {
		t.Errorf("default distance %f, want %f", s.Distance, float32(DefaultDistance))
	}
	if s.Zoom != 1 {
		t.Errorf("default zoom %f, want 1", s.Zoom)
	}
	if s.Wave {
		t.Error("wave should be off by default")
	}
}

func TestFlyClamped(t *testing.T) {
	s := New()

	for i := 0; i < 1000; i++ {
		s.Fly(-0.5)
		if s.Distance < MinDistance || s.Distance > MaxDistance {
			t.Fatalf("distance %f left [%f, %f]", s.Distance, float32(MinDistance), float32(MaxDistance))
		}
	}
	if s.Distance != MinDistance {
		t.Errorf("expected distance pinned at %f, got %f", float32(MinDistance), s.Distance)
	}

	for i := 0; i < 1000; i++ {
		s.Fly(0.5)
		if s.Distance < MinDistance || s.Distance > MaxDistance {
			t.Fatalf("distance %f left [%f, %f]", s.Distance, float32(MinDistance), float32(MaxDistance))
		}
	}
	if s.Distance != MaxDistance {
		t.Errorf("expected distance pinned at %f, got %f", float32(MaxDistance), s.Distance)
	}
}

func TestZoomClamped(t *testing.T) {
	s := New()

	for i := 0; i < 1000; i++ {
		s.ZoomBy(1.1)
		if s.Zoom < MinZoom || s.Zoom > MaxZoom {
			t.Fatalf("zoom %f left [%f, %f]", s.Zoom, float32(MinZoom), float32(MaxZoom))
		}
	}
	if s.Zoom != MaxZoom {
		t.Errorf("expected zoom pinned at %f, got %f", float32(MaxZoom), s.Zoom)
	}

	for i := 0; i < 1000; i++ {
		s.ZoomBy(0.9)
		if s.Zoom < MinZoom || s.Zoom > MaxZoom {
			t.Fatalf("zoom %f left [%f, %f]", s.Zoom, float32(MinZoom), float32(MaxZoom))
		}
	}
	if s.Zoom != MinZoom {
		t.Errorf("expected zoom pinned at %f, got %f", float32(MinZoom), s.Zoom)
	}
}

func TestRotationUnclamped(t *testing.T) {
	s := New()
	for i := 0; i < 100; i++ {
		s.Rotate(1)
	}
	if s.Rotation != 100 {
		t.Errorf("rotation %f, want 100", s.Rotation)
	}
	for i := 0; i < 300; i++ {
		s.Rotate(-1)
	}
	if s.Rotation != -200 {
		t.Errorf("rotation %f, want -200", s.Rotation)
	}
}

func TestPanClamped(t *testing.T) {
	s := New()
	for i := 0; i < 10000; i++ {
		s.Pan(1, -1)
	}
	if s.PanX != MaxPan {
		t.Errorf("pan X %f, want %f", s.PanX, float32(MaxPan))
	}
	if s.PanY != MinPan {
		t.Errorf("pan Y %f, want %f", s.PanY, float32(MinPan))
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	s := New()
	s.Rotate(12.5)
	s.Fly(-100)
	s.ZoomBy(100)
	s.Pan(30, -30)
	s.ToggleWave()

	s.Reset()

	if s.Rotation != 0 {
		t.Errorf("rotation after reset %f, want 0", s.Rotation)
	}
	if s.Distance != DefaultDistance {
		t.Errorf("distance after reset %f, want %f", s.Distance, float32(DefaultDistance))
	}
	if s.Zoom != DefaultZoom {
		t.Errorf("zoom after reset %f, want %f", s.Zoom, float32(DefaultZoom))
	}
	if s.PanX != 0 || s.PanY != 0 {
		t.Errorf("pan after reset (%f, %f), want origin", s.PanX, s.PanY)
	}
	if s.Wave {
		t.Error("wave should be off after reset")
	}
}

func TestToggleWave(t *testing.T) {
	s := New()
	s.ToggleWave()
	if !s.Wave {
		t.Error("wave should be on after first toggle")
	}
	s.ToggleWave()
	if s.Wave {
		t.Error("wave should be off after second toggle")
	}
}
