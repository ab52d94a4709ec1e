package internal

import (
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/osuushi/tri2tikz/meshfile"
	"github.com/osuushi/tri2tikz/preview"
	"github.com/osuushi/tri2tikz/report"
	"github.com/osuushi/tri2tikz/tikz"
)

// Converter runs the whole pipeline for one set of Options.
type Converter struct {
	Options Options
	Report  *report.Reporter
	// Opens input files. Defaults to os.Open.
	Open func(name string) (io.ReadCloser, error)
	// Where the terminal preview is printed. Defaults to os.Stdout.
	Terminal io.Writer

	// Inputs opened ahead of time by Run, consumed by read.
	inputs map[string]io.ReadCloser
}

func NewConverter(opts Options, r *report.Reporter) *Converter {
	return &Converter{Options: opts, Report: r}
}

// Run converts into the configured output file.
func (c *Converter) Run() (err error) {
	if err := c.Options.Validate(); err != nil {
		return err
	}
	// Every input is opened before the output is created, so a missing input
	// never clobbers an existing picture.
	defer c.closeInputs()
	if err := c.openInputs(); err != nil {
		return err
	}
	if c.Options.Output == Stdout {
		return c.Convert(os.Stdout)
	}

	out, err := os.Create(c.Options.Output)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	defer func() {
		if closeErr := out.Close(); err == nil && closeErr != nil {
			err = errors.Wrapf(closeErr, "closing %s", c.Options.Output)
		}
	}()
	c.Report.Writing(c.Options.Output)
	return c.Convert(out)
}

// Convert writes the TikZ picture for the configured inputs to w. On error,
// whatever was emitted before it is flushed to w but the picture is left
// unclosed.
func (c *Converter) Convert(w io.Writer) error {
	opts := c.Options
	emitter := tikz.NewEmitter(w, opts.style())
	var sink meshfile.Sink = emitter
	var recorder *preview.Recorder
	if opts.PreviewPath != "" {
		recorder = &preview.Recorder{NodeOffset: opts.NodeOffset, ElementOffset: opts.ElementOffset}
		sink = Tee{emitter, recorder}
	}

	emitter.Begin(opts.Invocation, opts.Scale)
	if err := c.draw(sink); err != nil {
		if flushErr := emitter.Flush(); flushErr != nil {
			return errors.Wrapf(err, "output also incomplete (%v)", flushErr)
		}
		return err
	}
	if err := emitter.End(); err != nil {
		return errors.Wrap(err, "writing output")
	}

	if recorder != nil {
		if err := c.savePreview(recorder); err != nil {
			return err
		}
	}
	c.Report.Done()
	return nil
}

func (c *Converter) draw(sink meshfile.Sink) error {
	opts := c.Options
	var nodes *meshfile.PointSet
	if !opts.PolyOnly {
		err := c.read(opts.NodePath(), func(name string, r io.Reader) (err error) {
			nodes, err = meshfile.ReadNodes(name, r, sink)
			if err == nil {
				c.Report.Header("N nodes", nodes.Len())
			}
			return err
		})
		if err != nil {
			return err
		}
	}

	err := c.read(opts.PolyPath(), func(name string, r io.Reader) error {
		poly, err := meshfile.ReadPoly(name, r, nodes, sink)
		if err == nil {
			c.Report.Header("NP boundary nodes", poly.Points.Len())
			c.Report.Header("P boundary segments", poly.Segments)
		}
		return err
	})
	if err != nil || opts.PolyOnly {
		return err
	}

	err = c.read(opts.ElePath(), func(name string, r io.Reader) error {
		n, err := meshfile.ReadElements(name, r, nodes, sink, meshfile.ElementOptions{Label: opts.LabelElements})
		if err == nil {
			c.Report.Header("K elements", n)
		}
		return err
	})
	if err != nil {
		return err
	}

	// Redraw the dots on top of the element edges, labeling them first if
	// asked to.
	for j := 0; j < nodes.Len(); j++ {
		p, _ := nodes.At(j)
		if opts.LabelNodes {
			sink.NodeLabel(p, j)
		}
		sink.Node(p)
	}
	return nil
}

// inputPaths lists the files the configured mode reads, in reading order.
func (c *Converter) inputPaths() []string {
	if c.Options.PolyOnly {
		return []string{c.Options.PolyPath()}
	}
	return []string{c.Options.NodePath(), c.Options.PolyPath(), c.Options.ElePath()}
}

func (c *Converter) open(path string) (io.ReadCloser, error) {
	open := c.Open
	if open == nil {
		open = func(name string) (io.ReadCloser, error) { return os.Open(name) }
	}
	f, err := open(path)
	return f, errors.Wrap(err, "opening input")
}

func (c *Converter) openInputs() error {
	c.inputs = make(map[string]io.ReadCloser)
	for _, path := range c.inputPaths() {
		f, err := c.open(path)
		if err != nil {
			return err
		}
		c.inputs[path] = f
	}
	return nil
}

func (c *Converter) closeInputs() {
	for path, f := range c.inputs {
		f.Close()
		delete(c.inputs, path)
	}
}

// read hands one input file to parse and closes it again. The file is taken
// from those Run opened, or opened here when converting without Run.
func (c *Converter) read(path string, parse func(name string, r io.Reader) error) error {
	c.Report.Reading(path)
	f, ok := c.inputs[path]
	if ok {
		delete(c.inputs, path)
	} else {
		var err error
		if f, err = c.open(path); err != nil {
			return err
		}
	}
	defer f.Close()
	return parse(path, f)
}

func (c *Converter) savePreview(recorder *preview.Recorder) error {
	opts := c.Options
	previewOpts := preview.DefaultOptions()
	previewOpts.Size = opts.PreviewSize
	previewOpts.NodeSize = opts.NodeSize
	c.Report.Writing(opts.PreviewPath)
	if err := recorder.SavePNG(opts.PreviewPath, previewOpts); err != nil {
		return err
	}
	if !opts.Imgcat {
		return nil
	}
	terminal := c.Terminal
	if terminal == nil && opts.Output != Stdout && report.IsTerminal(os.Stdout) {
		terminal = os.Stdout
	}
	if terminal != nil {
		preview.Show(opts.PreviewPath, terminal)
	}
	return nil
}
