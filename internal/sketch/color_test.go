package sketch

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#FF0000", NewColor(1, 0, 0, 1).Hex())
	assert.Equal(t, "#000000", NewColor(0, 0, 0, 1).Hex())
	assert.Equal(t, "#FFFFFF", NewColor(1, 1, 1, 1).Hex())
	assert.Equal(t, "#7F7F7F", NewColor(0.5, 0.5, 0.5, 1).Hex())
}

func TestColorHexIgnoresAlpha(t *testing.T) {
	opaque := NewColor(0.2, 0.4, 0.6, 1)
	faint := NewColor(0.2, 0.4, 0.6, 0.1)
	assert.Equal(t, opaque.Hex(), faint.Hex())
}

func TestNewColorClamps(t *testing.T) {
	c := NewColor(1.5, -0.5, 0.25, 2)
	assert.Equal(t, 1.0, c.Red)
	assert.Equal(t, 0.0, c.Green)
	assert.Equal(t, 0.25, c.Blue)
	assert.Equal(t, 1.0, c.Alpha)
}

func TestColorNRGBA(t *testing.T) {
	got := NewColor(1, 0, 0, 0.5).NRGBA()
	assert.Equal(t, color.NRGBA{R: 255, G: 0, B: 0, A: 127}, got)
}
