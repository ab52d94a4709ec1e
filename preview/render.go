package preview

import (
	"io"
	"math"
	"os"
	"strconv"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"
)

// Padding around the mesh, in pixels
const padding = 20

// Options for Render. Size is the longer side of the image in pixels.
type Options struct {
	Size     int
	NodeSize float64
}

func DefaultOptions() Options {
	return Options{Size: 800, NodeSize: 1.25}
}

// Render draws the recorded commands onto a white canvas with the y axis
// pointing up, scaled so the mesh fills the longer side.
func (r *Recorder) Render(opts Options) (*gg.Context, error) {
	if r.Empty() {
		return nil, errors.New("nothing to preview")
	}
	if opts.Size <= 2*padding {
		return nil, errors.Errorf("preview size %d too small", opts.Size)
	}
	minX, minY, maxX, maxY := r.Bounds()
	extent := math.Max(maxX-minX, maxY-minY)
	scale := 1.0
	if extent > 0 {
		scale = float64(opts.Size-2*padding) / extent
	}

	width := int(math.Ceil(scale*(maxX-minX))) + padding*2
	height := int(math.Ceil(scale*(maxY-minY))) + padding*2
	c := gg.NewContext(width, height)
	c.SetRGB(1, 1, 1)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()

	// Flip the context so the origin is at the bottom left, then pad, scale
	// and move the minimum corner to the origin.
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(padding, padding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)

	// Line widths are in device pixels, unaffected by the scale above.
	for _, l := range r.lines {
		switch l.kind {
		case meshEdge:
			c.SetRGB(0.6, 0.6, 0.6)
			c.SetLineWidth(0.5)
		case weakBoundary:
			c.SetRGB(0, 0, 0)
			c.SetLineWidth(0.75)
		case strongBoundary:
			c.SetRGB(0, 0, 0)
			c.SetLineWidth(2.5)
		}
		c.DrawLine(l.from.X, l.from.Y, l.to.X, l.to.Y)
		c.Stroke()
	}

	c.SetRGB(0, 0, 0)
	for _, p := range r.dots {
		c.DrawCircle(p.X, p.Y, opts.NodeSize/scale)
		c.Fill()
	}

	// Text has to be drawn in device space or it comes out upside down.
	for _, l := range r.labels {
		x, y := c.TransformPoint(l.at.X, l.at.Y)
		if l.element {
			c.SetRGB(1, 0, 0)
		} else {
			c.SetRGB(0, 0, 1)
		}
		c.Push()
		c.Identity()
		c.DrawStringAnchored(l.text, x, y, 0, 1)
		c.Pop()
	}
	return c, nil
}

// WritePNG renders and encodes the preview to w.
func (r *Recorder) WritePNG(w io.Writer, opts Options) error {
	c, err := r.Render(opts)
	if err != nil {
		return err
	}
	return errors.Wrap(c.EncodePNG(w), "encoding preview")
}

// SavePNG renders the preview into a file.
func (r *Recorder) SavePNG(path string, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating preview")
	}
	defer f.Close()
	if err := r.WritePNG(f, opts); err != nil {
		return err
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}

// Show prints a saved preview inline in the terminal (iTerm only).
func Show(path string, w io.Writer) {
	imgcat.CatFile(path, w)
}

func itoa(i int) string {
	return strconv.Itoa(i)
}
