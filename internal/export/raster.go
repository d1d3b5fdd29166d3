package export

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"github.com/roehst/ipad-software-sketches/internal/sketch"
)

// Raster renders the drawing into an RGBA image at canvas resolution,
// matching the SVG output: white background, finished strokes in
// insertion order, any in-progress stroke on top, round caps and
// joins. Strokes with fewer than two points have no segments to
// stroke and are skipped.
func Raster(d *sketch.Drawing) *image.RGBA {
	wf, hf := canvasSize(d)
	w, h := int(wf), int(hf)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	stroker := rasterx.NewStroker(w, h, scanner)

	strokes := d.Strokes()
	if cur, ok := d.CurrentStroke(); ok {
		strokes = append(strokes, cur)
	}
	for _, st := range strokes {
		if len(st.Points) < 2 {
			continue
		}
		scanner.SetColor(st.Color.NRGBA())
		stroker.SetStroke(toFixed(st.Width), toFixed(4),
			rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round)
		stroker.Start(fixedPoint(st.Points[0]))
		for _, p := range st.Points[1:] {
			stroker.Line(fixedPoint(p))
		}
		stroker.Stop(false)
		stroker.Draw()
		stroker.Clear()
	}
	return img
}

// PNG encodes the rastered drawing to w.
func PNG(w io.Writer, d *sketch.Drawing) error {
	return png.Encode(w, Raster(d))
}

func toFixed(v float64) fixed.Int26_6 {
	return fixed.Int26_6(v * 64)
}

func fixedPoint(p sketch.Point) fixed.Point26_6 {
	return fixed.Point26_6{X: toFixed(p.X), Y: toFixed(p.Y)}
}
