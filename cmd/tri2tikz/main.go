package main

import (
	"os"
	"strings"

	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/tri2tikz"
	"github.com/osuushi/tri2tikz/report"
)

// Converts .node, .ele, .poly files from Triangle into TikZ format, or just a
// .poly file (i.e. an input to Triangle) with --polyonly.
func main() {
	app, opts, quiet := newApp()
	kingpin.MustParse(app.Parse(os.Args[1:]))
	opts.Invocation = strings.Join(os.Args, " ")

	r := report.Stderr()
	if *quiet {
		r = report.Discard()
	}
	if err := tri2tikz.ConvertFile(*opts, r); err != nil {
		r.Error(err)
		if *quiet {
			app.Errorf("%v", err)
		}
		os.Exit(tri2tikz.ExitCode(err))
	}
}

func newApp() (*kingpin.Application, *tri2tikz.Options, *bool) {
	opts := tri2tikz.DefaultOptions()
	app := kingpin.New("tri2tikz", "Converts .node, .ele, .poly files from Triangle into TikZ format.")

	app.Flag("labelnodes", "Label the nodes with zero-based index.").
		Envar("TRI2TIKZ_LABELNODES").BoolVar(&opts.LabelNodes)
	app.Flag("labelelements", "Label the elements with zero-based index.").
		Envar("TRI2TIKZ_LABELELEMENTS").BoolVar(&opts.LabelElements)
	app.Flag("polyonly", "Build a TikZ figure with the polygon (.poly) only.").
		Envar("TRI2TIKZ_POLYONLY").BoolVar(&opts.PolyOnly)

	app.Flag("scale", "Amount by which to scale the TikZ figure.").
		PlaceHolder("X").Default("1.0").Envar("TRI2TIKZ_SCALE").Float64Var(&opts.Scale)
	app.Flag("nodesize", "Size (in points) of the dots showing nodes.").
		PlaceHolder("X").Default("1.25").Envar("TRI2TIKZ_NODESIZE").Float64Var(&opts.NodeSize)
	app.Flag("nodeoffset", "Offset to use in labeling nodes.").
		PlaceHolder("X").Default("0.0").Envar("TRI2TIKZ_NODEOFFSET").Float64Var(&opts.NodeOffset)
	app.Flag("eleoffset", "Offset to use in labeling elements (triangles).").
		PlaceHolder("X").Default("0.0").Envar("TRI2TIKZ_ELEOFFSET").Float64Var(&opts.ElementOffset)

	app.Flag("preview", "Also render a PNG preview of the figure to this file.").
		PlaceHolder("FILE.png").Envar("TRI2TIKZ_PREVIEW").StringVar(&opts.PreviewPath)
	app.Flag("preview-size", "Longer side of the preview, in pixels.").
		PlaceHolder("PX").Default("800").Envar("TRI2TIKZ_PREVIEW_SIZE").IntVar(&opts.PreviewSize)
	app.Flag("imgcat", "Show the preview in the terminal (iTerm only).").
		BoolVar(&opts.Imgcat)
	quiet := app.Flag("quiet", "Do not report progress.").Short('q').Bool()

	app.Arg("NAMEROOT", "Root of the input file names for .node, .ele, .poly.").
		Required().StringVar(&opts.Root)
	app.Arg("FILENAME", "Output file name, or - for standard output.").
		Required().StringVar(&opts.Output)
	return app, &opts, quiet
}
