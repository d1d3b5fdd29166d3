package export

import (
	"encoding/xml"
	"strings"

	"github.com/roehst/ipad-software-sketches/internal/sketch"
)

// Canvas dimensions used when the drawing never received a real size.
const (
	DefaultCanvasWidth  = 1024.0
	DefaultCanvasHeight = 768.0
)

const svgNamespace = "http://www.w3.org/2000/svg"

// SVG renders the drawing as a complete SVG document: XML
// declaration, an <svg> root sized to the canvas, a full-canvas white
// background rect, then one <path> per finished stroke in insertion
// order. An in-progress stroke is drawn last so a live stroke renders
// on top. The output is well-formed for any drawing state, including
// an empty one.
func SVG(d *sketch.Drawing) string {
	w, h := canvasSize(d)
	ws, hs := sketch.FormatNum(w), sketch.FormatNum(h)

	var b strings.Builder
	b.WriteString(xml.Header)
	b.WriteString(`<svg xmlns="` + svgNamespace + `" width="` + ws +
		`" height="` + hs + `" viewBox="0 0 ` + ws + ` ` + hs + `">` + "\n")
	b.WriteString(`  <rect width="` + ws + `" height="` + hs +
		`" fill="` + sketch.White.Hex() + `"/>` + "\n")

	for _, st := range d.Strokes() {
		writePath(&b, st)
	}
	if cur, ok := d.CurrentStroke(); ok {
		writePath(&b, cur)
	}

	b.WriteString("</svg>\n")
	return b.String()
}

func writePath(b *strings.Builder, s sketch.Stroke) {
	el := s.SVGElement()
	if el == "" {
		return
	}
	b.WriteString("  ")
	b.WriteString(el)
	b.WriteByte('\n')
}

func canvasSize(d *sketch.Drawing) (float64, float64) {
	w, h := d.CanvasSize()
	if w <= 0 || h <= 0 {
		return DefaultCanvasWidth, DefaultCanvasHeight
	}
	return w, h
}
