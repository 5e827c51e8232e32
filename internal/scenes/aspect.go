package scenes

// aspectRatio returns the viewport width/height ratio. It reports false for
// degenerate sizes; a minimized window can report a zero-height drawable.
func aspectRatio(width, height int) (float32, bool) {
	if width <= 0 || height <= 0 {
		return 0, false
	}
	return float32(width) / float32(height), true
}
