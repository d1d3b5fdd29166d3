package export

import (
	"encoding/json"
	"fmt"

	"github.com/roehst/ipad-software-sketches/internal/sketch"
)

// Wire shapes for the sketch interchange format. Only finished
// strokes are persisted; a half-drawn stroke would come back frozen
// mid-gesture on reload.

type strokeJSON struct {
	ID     string      `json:"id"`
	Points []pointJSON `json:"points"`
	Color  colorJSON   `json:"color"`
	Width  float64     `json:"width"`
}

type pointJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type colorJSON struct {
	Red   float64 `json:"red"`
	Green float64 `json:"green"`
	Blue  float64 `json:"blue"`
	Alpha float64 `json:"alpha"`
}

// JSON serializes the drawing's finished strokes as a JSON array,
// preserving point order. Zero-point strokes emit nothing, and an
// empty drawing serializes to "[]".
func JSON(d *sketch.Drawing) (string, error) {
	strokes := d.Strokes()
	out := make([]strokeJSON, 0, len(strokes))
	for _, st := range strokes {
		if len(st.Points) == 0 {
			continue
		}
		pts := make([]pointJSON, 0, len(st.Points))
		for _, p := range st.Points {
			pts = append(pts, pointJSON{X: p.X, Y: p.Y})
		}
		out = append(out, strokeJSON{
			ID:     st.ID,
			Points: pts,
			Color:  colorJSON{st.Color.Red, st.Color.Green, st.Color.Blue, st.Color.Alpha},
			Width:  st.Width,
		})
	}
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding sketch: %w", err)
	}
	return string(data), nil
}

// Decode shapes use pointer fields so a missing required field is
// distinguishable from a zero value.

type rawStroke struct {
	ID     *string     `json:"id"`
	Points *[]rawPoint `json:"points"`
	Color  *rawColor   `json:"color"`
	Width  *float64    `json:"width"`
}

type rawPoint struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
}

type rawColor struct {
	Red   *float64 `json:"red"`
	Green *float64 `json:"green"`
	Blue  *float64 `json:"blue"`
	Alpha *float64 `json:"alpha"`
}

// FromJSON reconstructs a drawing from previously exported JSON. The
// document must be a JSON array of stroke objects with every required
// field present; a malformed or incomplete document is rejected with
// an error naming the offending stroke, and no drawing is returned in
// that case.
func FromJSON(text string) (*sketch.Drawing, error) {
	var raws []rawStroke
	if err := json.Unmarshal([]byte(text), &raws); err != nil {
		return nil, fmt.Errorf("parsing sketch JSON: %w", err)
	}

	d := sketch.NewDrawing()
	for i, r := range raws {
		st, err := r.toStroke()
		if err != nil {
			return nil, fmt.Errorf("stroke %d: %w", i, err)
		}
		d.AddStroke(st)
	}
	return d, nil
}

func (r rawStroke) toStroke() (sketch.Stroke, error) {
	switch {
	case r.ID == nil || *r.ID == "":
		return sketch.Stroke{}, errMissing("id")
	case r.Points == nil:
		return sketch.Stroke{}, errMissing("points")
	case r.Color == nil:
		return sketch.Stroke{}, errMissing("color")
	case r.Width == nil:
		return sketch.Stroke{}, errMissing("width")
	}

	c := *r.Color
	if c.Red == nil || c.Green == nil || c.Blue == nil || c.Alpha == nil {
		return sketch.Stroke{}, fmt.Errorf("color is missing a channel")
	}

	pts := make([]sketch.Point, 0, len(*r.Points))
	for j, p := range *r.Points {
		if p.X == nil || p.Y == nil {
			return sketch.Stroke{}, fmt.Errorf("point %d is missing a coordinate", j)
		}
		pts = append(pts, sketch.Point{X: *p.X, Y: *p.Y})
	}

	width := *r.Width
	if width <= 0 {
		width = sketch.DefaultWidth
	}

	return sketch.Stroke{
		ID:     *r.ID,
		Points: pts,
		Color:  sketch.NewColor(*c.Red, *c.Green, *c.Blue, *c.Alpha),
		Width:  width,
	}, nil
}

func errMissing(field string) error {
	return fmt.Errorf("missing required field %q", field)
}
