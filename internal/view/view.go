// Package view holds the camera/view parameters shared by the exercises:
// independent accumulators with fixed clamp ranges, a wave-animation toggle,
// and a reset to documented defaults.
package view

// Clamp ranges and defaults.
const (
	DefaultRotation = 0.0
	DefaultDistance = -8.0
	DefaultZoom     = 1.0

	MinDistance = -15.0
	MaxDistance = -2.0

	MinZoom = 0.1
	MaxZoom = 50.0

	MinPan = -50.0
	MaxPan = 50.0
)

// State holds the mutable view parameters. Rotation accumulates unclamped;
// distance, zoom and pan are clamped to their fixed ranges.
type State struct {
	Rotation float32 // Y-axis rotation in radians, unclamped
	Distance float32 // Fly-over distance (negative Z translation)
	Zoom     float32 // 2D plotter zoom factor
	PanX     float32 // 2D plotter pan center
	PanY     float32
	Wave     bool // Wave animation toggle
}

// New returns a State at the documented defaults.
func New() *State {
	s := &State{}
	s.Reset()
	return s
}

// Reset restores all view parameters to their defaults regardless of prior
// state. The wave toggle is switched off as well.
func (s *State) Reset() {
	s.Rotation = DefaultRotation
	s.Distance = DefaultDistance
	s.Zoom = DefaultZoom
	s.PanX = 0
	s.PanY = 0
	s.Wave = false
}

// Rotate adds delta to the rotation accumulator.
func (s *State) Rotate(delta float32) {
	s.Rotation += delta
}

// Fly adjusts the fly-over distance, clamped to [MinDistance, MaxDistance].
func (s *State) Fly(delta float32) {
	s.Distance = clamp(s.Distance+delta, MinDistance, MaxDistance)
}

// ZoomBy scales the zoom factor, clamped to [MinZoom, MaxZoom].
// factor > 1 zooms in, factor < 1 zooms out.
func (s *State) ZoomBy(factor float32) {
	s.Zoom = clamp(s.Zoom*factor, MinZoom, MaxZoom)
}

// Pan moves the pan center, clamped to [MinPan, MaxPan] per axis.
func (s *State) Pan(dx, dy float32) {
	s.PanX = clamp(s.PanX+dx, MinPan, MaxPan)
	s.PanY = clamp(s.PanY+dy, MinPan, MaxPan)
}

// ToggleWave flips the wave animation flag.
func (s *State) ToggleWave() {
	s.Wave = !s.Wave
}

func clamp(v, min, max float32) float32 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
