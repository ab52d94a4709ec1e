package internal

import (
	"github.com/pkg/errors"

	"github.com/osuushi/tri2tikz/preview"
	"github.com/osuushi/tri2tikz/tikz"
)

// Extensions of the three input files sharing a name root.
const (
	NodeExt = ".node"
	EleExt  = ".ele"
	PolyExt = ".poly"
)

// Output path meaning standard output.
const Stdout = "-"

type Options struct {
	// Name root; inputs are Root+".node", Root+".ele" and Root+".poly".
	Root string
	// Output file, or Stdout.
	Output string

	LabelNodes    bool
	LabelElements bool
	// Draw only the .poly file, without opening the .node and .ele files.
	PolyOnly bool

	Scale         float64
	NodeSize      float64
	NodeOffset    float64
	ElementOffset float64

	// Echoed into the output preamble.
	Invocation string

	// If set, also render a PNG preview to this path.
	PreviewPath string
	PreviewSize int
	// Print the preview in the terminal after writing it.
	Imgcat bool
}

func DefaultOptions() Options {
	return Options{
		Scale:       1,
		NodeSize:    tikz.DefaultStyle().NodeSize,
		PreviewSize: preview.DefaultOptions().Size,
	}
}

func (o Options) NodePath() string { return o.Root + NodeExt }
func (o Options) ElePath() string  { return o.Root + EleExt }
func (o Options) PolyPath() string { return o.Root + PolyExt }

func (o Options) Validate() error {
	switch {
	case o.Root == "":
		return errors.New("missing input name root")
	case o.Output == "":
		return errors.New("missing output file")
	case o.Scale <= 0:
		return errors.Errorf("scale must be positive, got %g", o.Scale)
	case o.NodeSize < 0:
		return errors.Errorf("node size must not be negative, got %g", o.NodeSize)
	case o.PreviewPath != "" && o.PreviewSize <= 0:
		return errors.Errorf("preview size must be positive, got %d", o.PreviewSize)
	}
	return nil
}

func (o Options) style() tikz.Style {
	style := tikz.DefaultStyle()
	style.NodeSize = o.NodeSize
	style.NodeOffset = o.NodeOffset
	style.ElementOffset = o.ElementOffset
	return style
}
