package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roehst/ipad-software-sketches/internal/sketch"
)

func TestPDFWritesFile(t *testing.T) {
	d := sketch.NewDrawing()
	d.StartStroke(sketch.Point{X: 10, Y: 10}, sketch.NewColor(1, 0, 0, 1), 4)
	d.AddPoint(sketch.Point{X: 200, Y: 150})
	d.AddPoint(sketch.Point{X: 400, Y: 80})
	d.EndStroke()

	path := filepath.Join(t.TempDir(), "sketch.pdf")
	require.NoError(t, PDF(path, d))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPDFEmptyDrawing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	require.NoError(t, PDF(path, sketch.NewDrawing()))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
