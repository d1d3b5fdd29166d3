package export

import (
	"github.com/jung-kurt/gofpdf"

	"github.com/roehst/ipad-software-sketches/internal/sketch"
)

// PDF writes the drawing's finished strokes to a single-page PDF at
// path. The canvas is scaled uniformly to fit a landscape A4 page.
// Strokes with fewer than two points have no line segments to draw
// and are skipped.
func PDF(path string, d *sketch.Drawing) error {
	w, h := canvasSize(d)

	pdf := gofpdf.New("L", "pt", "A4", "")
	pdf.AddPage()
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")

	pageW, pageH := pdf.GetPageSize()
	scale := pageW / w
	if s := pageH / h; s < scale {
		scale = s
	}

	for _, st := range d.Strokes() {
		if len(st.Points) < 2 {
			continue
		}
		c := st.Color.NRGBA()
		pdf.SetDrawColor(int(c.R), int(c.G), int(c.B))
		pdf.SetLineWidth(st.Width * scale)
		for i := 1; i < len(st.Points); i++ {
			pdf.Line(
				st.Points[i-1].X*scale, st.Points[i-1].Y*scale,
				st.Points[i].X*scale, st.Points[i].Y*scale,
			)
		}
	}
	return pdf.OutputFileAndClose(path)
}
