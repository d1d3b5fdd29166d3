package main

import (
	"flag"
	"log"
	"os"

	"github.com/roehst/ipad-software-sketches/internal/export"
)

// Thin file-conversion adapter around the sketch core: load a saved
// sketch JSON and write it back out in any of the supported export
// formats.
func main() {
	var (
		in     = flag.String("in", "", "sketch JSON file to load")
		svgOut = flag.String("svg", "", "write an SVG export to this path")
		pdfOut = flag.String("pdf", "", "write a PDF export to this path")
		pngOut = flag.String("png", "", "write a PNG export to this path")
		width  = flag.Float64("width", 0, "canvas width (0 uses the 1024 default)")
		height = flag.Float64("height", 0, "canvas height (0 uses the 768 default)")
	)
	flag.Parse()

	if *in == "" {
		flag.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		log.Fatalf("Failed to read %s: %v", *in, err)
	}
	drawing, err := export.FromJSON(string(data))
	if err != nil {
		log.Fatalf("Failed to load sketch: %v", err)
	}
	drawing.SetCanvasSize(*width, *height)
	log.Printf("Loaded %d strokes from %s", drawing.StrokeCount(), *in)

	if *svgOut != "" {
		if err := os.WriteFile(*svgOut, []byte(export.SVG(drawing)), 0o644); err != nil {
			log.Fatalf("Failed to write SVG: %v", err)
		}
		log.Printf("Wrote SVG to %s", *svgOut)
	}
	if *pdfOut != "" {
		if err := export.PDF(*pdfOut, drawing); err != nil {
			log.Fatalf("Failed to write PDF: %v", err)
		}
		log.Printf("Wrote PDF to %s", *pdfOut)
	}
	if *pngOut != "" {
		f, err := os.Create(*pngOut)
		if err != nil {
			log.Fatalf("Failed to create %s: %v", *pngOut, err)
		}
		if err := export.PNG(f, drawing); err != nil {
			f.Close()
			log.Fatalf("Failed to write PNG: %v", err)
		}
		if err := f.Close(); err != nil {
			log.Fatalf("Failed to close %s: %v", *pngOut, err)
		}
		log.Printf("Wrote PNG to %s", *pngOut)
	}
}
