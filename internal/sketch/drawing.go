package sketch

import "sync"

// Drawing owns an ordered sequence of finished strokes plus at most
// one in-progress stroke, together with the canvas dimensions the
// input adapter last reported. The finished order is the z-order and
// the document order in every export.
//
// A single producer mutates the drawing, but exports may read from
// another goroutine, so all state is guarded: mutators take the write
// lock, read accessors the read lock, and accessors return copies so
// a finished stroke is never mutated after the fact.
type Drawing struct {
	mu       sync.RWMutex
	finished []Stroke
	current  *Stroke
	width    float64
	height   float64

	// OnStrokeFinished fires after EndStroke commits a stroke to the
	// finished sequence; OnCleared fires after Clear. Both run outside
	// the drawing's lock. Set by the hosting adapter; may be nil.
	OnStrokeFinished func(Stroke)
	OnCleared        func()
}

func NewDrawing() *Drawing {
	return &Drawing{}
}

// StartStroke begins a new in-progress stroke at p. A stroke already
// in progress is replaced; touch streams can lose their end event.
func (d *Drawing) StartStroke(p Point, c Color, width float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.current = NewStroke(p, c, width)
}

// AddPoint extends the in-progress stroke. A stray move event with no
// preceding StartStroke is silently ignored.
func (d *Drawing) AddPoint(p Point) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.current == nil {
		return
	}
	d.current.AppendPoint(p)
}

// EndStroke moves the in-progress stroke to the end of the finished
// sequence if it has at least one point, and discards it otherwise.
// The in-progress slot is cleared either way.
func (d *Drawing) EndStroke() {
	d.mu.Lock()
	var done *Stroke
	if d.current != nil && len(d.current.Points) > 0 {
		d.finished = append(d.finished, *d.current)
		done = d.current
	}
	d.current = nil
	cb := d.OnStrokeFinished
	d.mu.Unlock()

	if done != nil && cb != nil {
		cb(*done)
	}
}

// Clear discards the finished sequence and any in-progress stroke.
func (d *Drawing) Clear() {
	d.mu.Lock()
	d.finished = nil
	d.current = nil
	cb := d.OnCleared
	d.mu.Unlock()

	if cb != nil {
		cb()
	}
}

// AddStroke appends an already-finished stroke, bypassing the
// in-progress slot. Used when loading a saved sketch.
func (d *Drawing) AddStroke(s Stroke) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.finished = append(d.finished, s)
}

// SetCanvasSize records the drawable area's dimensions. Negative
// values are treated as 0, which means "unset, use the default".
func (d *Drawing) SetCanvasSize(width, height float64) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	d.width, d.height = width, height
}

func (d *Drawing) CanvasSize() (width, height float64) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.width, d.height
}

// Strokes returns a copy of the finished sequence, oldest first.
func (d *Drawing) Strokes() []Stroke {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]Stroke, len(d.finished))
	copy(out, d.finished)
	return out
}

// CurrentStroke returns a copy of the in-progress stroke, if any.
func (d *Drawing) CurrentStroke() (Stroke, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.current == nil {
		return Stroke{}, false
	}
	return *d.current, true
}

// StrokeCount reports the number of finished strokes.
func (d *Drawing) StrokeCount() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.finished)
}
