package preview

import (
	"bytes"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osuushi/tri2tikz/meshfile"
)

func square() *Recorder {
	r := &Recorder{}
	corners := []meshfile.Point{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4}}
	for i, p := range corners {
		r.Node(p)
		r.Segment(meshfile.Segment{From: i, To: (i + 1) % 4, Tag: 2 - i%2}, p, corners[(i+1)%4])
	}
	r.Edge(corners[0], corners[2])
	r.ElementLabel(meshfile.Point{X: 1, Y: 3}, 0)
	r.NodeLabel(corners[2], 2)
	return r
}

func TestRecorder(t *testing.T) {
	r := square()
	assert.False(t, r.Empty())
	assert.Len(t, r.dots, 4)
	assert.Len(t, r.lines, 5)
	assert.Equal(t, strongBoundary, r.lines[0].kind)
	assert.Equal(t, weakBoundary, r.lines[1].kind)
	assert.Equal(t, meshEdge, r.lines[4].kind)
	assert.Equal(t, []label{
		{meshfile.Point{X: 1, Y: 3}, "0", true},
		{meshfile.Point{X: 4, Y: 4}, "2", false},
	}, r.labels)

	minX, minY, maxX, maxY := r.Bounds()
	assert.Equal(t, []float64{0, 0, 4, 4}, []float64{minX, minY, maxX, maxY})
}

func TestWritePNG(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, square().WritePNG(&buf, Options{Size: 100, NodeSize: 1}))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 100, img.Bounds().Dx())
	assert.Equal(t, 100, img.Bounds().Dy())

	// Background
	r, g, b, _ := img.At(2, 2).RGBA()
	assert.Equal(t, []uint32{0xffff, 0xffff, 0xffff}, []uint32{r, g, b})

	// The bottom side is strong, and y points up, so it runs along the bottom
	// padding.
	r, _, _, _ = img.At(50, 80).RGBA()
	assert.Less(t, r, uint32(0x8000))
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "square.png")
	require.NoError(t, square().SavePNG(path, DefaultOptions()))
}

func TestRenderErrors(t *testing.T) {
	_, err := (&Recorder{}).Render(DefaultOptions())
	assert.EqualError(t, err, "nothing to preview")

	_, err = square().Render(Options{Size: 10})
	assert.EqualError(t, err, "preview size 10 too small")
}

func TestRenderSinglePoint(t *testing.T) {
	r := &Recorder{}
	r.Node(meshfile.Point{X: 3, Y: 3})
	c, err := r.Render(Options{Size: 100, NodeSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 40, c.Width())
	assert.Equal(t, 40, c.Height())
}

func TestLineWidthIgnoresScale(t *testing.T) {
	// At the default size the square is scaled by 190, which must not thin
	// the strokes: the strong bottom side stays 2.5px wide on y = 780.
	c, err := square().Render(DefaultOptions())
	require.NoError(t, err)
	img := c.Image()
	for _, y := range []int{779, 780} {
		r, _, _, _ := img.At(400, y).RGBA()
		assert.Less(t, r, uint32(0x4000), "y=%d", y)
	}
	r, _, _, _ := img.At(400, 776).RGBA()
	assert.Equal(t, uint32(0xffff), r)
}

func TestRecorderLabelOffsets(t *testing.T) {
	r := &Recorder{NodeOffset: 1, ElementOffset: 0.5}
	r.ElementLabel(meshfile.Point{X: 1, Y: 1}, 3)
	r.NodeLabel(meshfile.Point{X: 1, Y: 1, Marker: 1}, 7)
	require.Len(t, r.labels, 2)
	assert.InDelta(t, 1.35, r.labels[0].at.X, 1e-12)
	assert.InDelta(t, 0.5, r.labels[0].at.Y, 1e-12)
	assert.Equal(t, "3", r.labels[0].text)
	assert.InDelta(t, 1.7, r.labels[1].at.X, 1e-12)
	assert.InDelta(t, 0.0, r.labels[1].at.Y, 1e-12)
	assert.Equal(t, "7", r.labels[1].text)
}
