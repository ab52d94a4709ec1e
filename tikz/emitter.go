// Package tikz writes mesh drawing commands as a TikZ picture.
package tikz

import (
	"bufio"
	"fmt"
	"io"

	"github.com/osuushi/tri2tikz/meshfile"
)

// Line widths for boundary segments.
const (
	StrongWidth = "2.5pt"
	WeakWidth   = "0.75pt"
)

// Style holds the sizes the emitter applies to every command.
type Style struct {
	// Radius of node dots, in points.
	NodeSize float64
	// Label offsets, in picture units. A label at p with offset d is placed at
	// (p.X + 0.7d, p.Y - d), below and to the right of p.
	NodeOffset    float64
	ElementOffset float64
	// Boundary segment widths, as TikZ dimensions.
	StrongWidth string
	WeakWidth   string
}

func DefaultStyle() Style {
	return Style{
		NodeSize:    1.25,
		StrongWidth: StrongWidth,
		WeakWidth:   WeakWidth,
	}
}

// Emitter is a meshfile.Sink producing one tikzpicture. Write errors are
// sticky: once one occurs every later command is dropped and Close reports it.
type Emitter struct {
	w     *bufio.Writer
	style Style
	err   error
}

var _ meshfile.Sink = (*Emitter)(nil)

func NewEmitter(w io.Writer, style Style) *Emitter {
	if style.StrongWidth == "" {
		style.StrongWidth = StrongWidth
	}
	if style.WeakWidth == "" {
		style.WeakWidth = WeakWidth
	}
	return &Emitter{w: bufio.NewWriter(w), style: style}
}

func (e *Emitter) printf(format string, args ...interface{}) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

// Begin writes the preamble: a comment echoing the command line that produced
// the picture, then the opening of the environment.
func (e *Emitter) Begin(invocation string, scale float64) {
	e.printf("%% created by tri2tikz command line:\n")
	e.printf("%%   %s\n", invocation)
	e.printf("%%\n")
	e.printf("\\begin{tikzpicture}[scale=%f]\n", scale)
}

func (e *Emitter) Node(p meshfile.Point) {
	e.printf("  \\filldraw (%f,%f) circle (%fpt);\n", p.X, p.Y, e.style.NodeSize)
}

func (e *Emitter) Segment(seg meshfile.Segment, from, to meshfile.Point) {
	width := e.style.WeakWidth
	if seg.Essential() {
		width = e.style.StrongWidth
	}
	e.printf("  \\draw[line width=%s] (%f,%f) -- (%f,%f);\n", width, from.X, from.Y, to.X, to.Y)
}

func (e *Emitter) Edge(from, to meshfile.Point) {
	e.printf("  \\draw[gray,very thin] (%f,%f) -- (%f,%f);\n", from.X, from.Y, to.X, to.Y)
}

func (e *Emitter) ElementLabel(at meshfile.Point, index int) {
	e.label(at, e.style.ElementOffset, "red", index)
}

func (e *Emitter) NodeLabel(at meshfile.Point, index int) {
	e.label(at, e.style.NodeOffset, "blue", index)
}

func (e *Emitter) label(at meshfile.Point, offset float64, color string, index int) {
	x, y := Offset(at, offset)
	e.printf("  \\draw (%f,%f) node {\\color{%s} $%d$};\n", x, y, color, index)
}

// Offset gives where a label for p is drawn.
func Offset(p meshfile.Point, d float64) (x, y float64) {
	return p.X + 0.7*d, p.Y - d
}

// End closes the picture and flushes. Nothing may be emitted afterwards.
func (e *Emitter) End() error {
	e.printf("\\end{tikzpicture}\n")
	return e.Flush()
}

// Flush writes out whatever has been buffered without closing the picture,
// which is what happens when conversion stops on an error.
func (e *Emitter) Flush() error {
	if e.err != nil {
		return e.err
	}
	e.err = e.w.Flush()
	return e.err
}
