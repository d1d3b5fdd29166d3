package sketch

// Point is a single coordinate sample on a stroke path. Coordinates
// are expected to be finite; the input adapter is responsible for
// filtering out anything else.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}
