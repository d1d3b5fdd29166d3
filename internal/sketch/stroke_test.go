package sketch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStroke(t *testing.T) {
	s := NewStroke(Point{X: 10, Y: 10}, Black, 3)
	require.Len(t, s.Points, 1)
	assert.Equal(t, Point{X: 10, Y: 10}, s.Points[0])
	assert.Equal(t, 3.0, s.Width)
	assert.NotEmpty(t, s.ID)

	other := NewStroke(Point{X: 10, Y: 10}, Black, 3)
	assert.NotEqual(t, s.ID, other.ID)
}

func TestNewStrokeSubstitutesDefaultWidth(t *testing.T) {
	assert.Equal(t, DefaultWidth, NewStroke(Point{}, Black, 0).Width)
	assert.Equal(t, DefaultWidth, NewStroke(Point{}, Black, -1.5).Width)
}

func TestPathData(t *testing.T) {
	s := NewStroke(Point{X: 10, Y: 10}, Black, 2)
	s.AppendPoint(Point{X: 20, Y: 20})
	s.AppendPoint(Point{X: 30, Y: 10})
	assert.Equal(t, "M 10,10 L 20,20 L 30,10", s.PathData())
}

func TestPathDataEmptyStroke(t *testing.T) {
	s := &Stroke{}
	assert.Equal(t, "", s.PathData())
	assert.Equal(t, "", s.SVGElement())
}

func TestSVGElement(t *testing.T) {
	s := NewStroke(Point{X: 1, Y: 2}, NewColor(1, 0, 0, 1), 4)
	s.AppendPoint(Point{X: 3, Y: 4})
	el := s.SVGElement()
	assert.Contains(t, el, `d="M 1,2 L 3,4"`)
	assert.Contains(t, el, `stroke="#FF0000"`)
	assert.Contains(t, el, `stroke-width="4"`)
	assert.Contains(t, el, `fill="none"`)
	assert.Contains(t, el, `stroke-linecap="round"`)
	assert.Contains(t, el, `stroke-linejoin="round"`)
}

func TestFormatNum(t *testing.T) {
	assert.Equal(t, "10", FormatNum(10))
	assert.Equal(t, "10.5", FormatNum(10.5))
	assert.Equal(t, "10.25", FormatNum(10.25))
	assert.Equal(t, "10.26", FormatNum(10.256))
	assert.Equal(t, "0.1", FormatNum(0.1))
	assert.Equal(t, "-3.33", FormatNum(-10.0/3))
}
