package sketch

import (
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// DefaultWidth replaces a non-positive stroke width. Widths usually
// come straight from pressure input, so a bad sample falls back to
// the default instead of aborting the stroke.
const DefaultWidth = 2.0

// Stroke is one drawn path: a unique identity, the points in the
// order they were drawn, and the pen style. Points are append-only
// while the stroke is in progress and frozen once the owning Drawing
// finishes it.
type Stroke struct {
	ID     string
	Points []Point
	Color  Color
	Width  float64
}

// NewStroke creates an in-progress stroke starting at start.
func NewStroke(start Point, c Color, width float64) *Stroke {
	if width <= 0 {
		width = DefaultWidth
	}
	return &Stroke{
		ID:     uuid.NewString(),
		Points: []Point{start},
		Color:  c,
		Width:  width,
	}
}

// AppendPoint extends the drawn path.
func (s *Stroke) AppendPoint(p Point) {
	s.Points = append(s.Points, p)
}

// PathData builds SVG path data: "M x0,y0" followed by " L xi,yi"
// for each subsequent point. Empty string for a stroke with no
// points.
func (s *Stroke) PathData() string {
	if len(s.Points) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range s.Points {
		if i == 0 {
			b.WriteString("M ")
		} else {
			b.WriteString(" L ")
		}
		b.WriteString(FormatNum(p.X))
		b.WriteByte(',')
		b.WriteString(FormatNum(p.Y))
	}
	return b.String()
}

// SVGElement wraps the path data in a self-closing <path> element.
// Empty string for a stroke with no points, so a degenerate stroke
// never produces invalid markup.
func (s *Stroke) SVGElement() string {
	d := s.PathData()
	if d == "" {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<path d="`)
	b.WriteString(d)
	b.WriteString(`" stroke="`)
	b.WriteString(s.Color.Hex())
	b.WriteString(`" stroke-width="`)
	b.WriteString(FormatNum(s.Width))
	b.WriteString(`" fill="none" stroke-linecap="round" stroke-linejoin="round"/>`)
	return b.String()
}

// FormatNum renders a coordinate or width with at most two decimal
// places, trailing zeros trimmed.
func FormatNum(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', -1, 64)
}
