package sketch

import (
	"fmt"
	"image/color"
)

// Color is a normalized RGBA color. Channels are always in [0, 1];
// NewColor clamps out-of-range input instead of rejecting it, so a
// slightly off float from an upstream color conversion never aborts
// a stroke.
type Color struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
	Alpha float64 `json:"alpha"`
}

var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}
)

// NewColor builds a Color, clamping each channel into [0, 1].
func NewColor(r, g, b, a float64) Color {
	return Color{clamp01(r), clamp01(g), clamp01(b), clamp01(a)}
}

// Hex renders the color as "#RRGGBB" with uppercase digits. Each
// channel is scaled by 255 and truncated. Alpha is not encoded.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X",
		channelByte(c.Red), channelByte(c.Green), channelByte(c.Blue))
}

// NRGBA converts to the standard library color type for rasterizing.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: channelByte(c.Red),
		G: channelByte(c.Green),
		B: channelByte(c.Blue),
		A: channelByte(c.Alpha),
	}
}

func channelByte(v float64) uint8 {
	return uint8(clamp01(v) * 255)
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
