package native

import "fmt"

// Color is a normalized RGBA color; every channel is in [0, 1].
type Color struct {
	R, G, B, A float32
}

// ColorFromRGBA builds a color, clamping each channel into [0, 1].
func ColorFromRGBA(r, g, b, a float32) Color {
	return Color{R: unit(r), G: unit(g), B: unit(b), A: unit(a)}
}

// Hex formats the color as #AARRGGBB.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", byte8(c.A), byte8(c.R), byte8(c.G), byte8(c.B))
}

// String returns c.Hex().
func (c Color) String() string { return c.Hex() }

func unit(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func byte8(v float32) uint8 {
	return uint8(unit(v)*255 + 0.5)
}
