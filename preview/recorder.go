// Package preview renders the same drawing commands as the TikZ output to a
// PNG, so a mesh can be checked without running LaTeX.
package preview

import (
	"math"

	"github.com/osuushi/tri2tikz/meshfile"
	"github.com/osuushi/tri2tikz/tikz"
)

type lineKind int

const (
	meshEdge lineKind = iota
	weakBoundary
	strongBoundary
)

type line struct {
	from, to meshfile.Point
	kind     lineKind
}

type label struct {
	at      meshfile.Point
	text    string
	element bool
}

// Recorder is a meshfile.Sink that keeps every command in order for Render.
// Labels are recorded where the TikZ output places them, shifted by the same
// offsets.
type Recorder struct {
	NodeOffset    float64
	ElementOffset float64

	dots   []meshfile.Point
	lines  []line
	labels []label
}

var _ meshfile.Sink = (*Recorder)(nil)

func (r *Recorder) Node(p meshfile.Point) {
	r.dots = append(r.dots, p)
}

func (r *Recorder) Segment(seg meshfile.Segment, from, to meshfile.Point) {
	kind := weakBoundary
	if seg.Essential() {
		kind = strongBoundary
	}
	r.lines = append(r.lines, line{from, to, kind})
}

func (r *Recorder) Edge(from, to meshfile.Point) {
	r.lines = append(r.lines, line{from, to, meshEdge})
}

func (r *Recorder) ElementLabel(at meshfile.Point, index int) {
	r.labels = append(r.labels, label{offset(at, r.ElementOffset), itoa(index), true})
}

func (r *Recorder) NodeLabel(at meshfile.Point, index int) {
	r.labels = append(r.labels, label{offset(at, r.NodeOffset), itoa(index), false})
}

func offset(p meshfile.Point, d float64) meshfile.Point {
	x, y := tikz.Offset(p, d)
	return meshfile.Point{X: x, Y: y}
}

func (r *Recorder) Empty() bool {
	return len(r.dots) == 0 && len(r.lines) == 0
}

// Bounds of everything recorded so far. Labels are not included.
func (r *Recorder) Bounds() (minX, minY, maxX, maxY float64) {
	minX = math.Inf(1)
	minY = math.Inf(1)
	maxX = math.Inf(-1)
	maxY = math.Inf(-1)
	grow := func(p meshfile.Point) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, p := range r.dots {
		grow(p)
	}
	for _, l := range r.lines {
		grow(l.from)
		grow(l.to)
	}
	return
}
