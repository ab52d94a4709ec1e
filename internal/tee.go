package internal

import "github.com/osuushi/tri2tikz/meshfile"

// Tee forwards every drawing command to each of its sinks in order.
type Tee []meshfile.Sink

func (t Tee) Node(p meshfile.Point) {
	for _, s := range t {
		s.Node(p)
	}
}

func (t Tee) Segment(seg meshfile.Segment, from, to meshfile.Point) {
	for _, s := range t {
		s.Segment(seg, from, to)
	}
}

func (t Tee) Edge(from, to meshfile.Point) {
	for _, s := range t {
		s.Edge(from, to)
	}
}

func (t Tee) ElementLabel(at meshfile.Point, index int) {
	for _, s := range t {
		s.ElementLabel(at, index)
	}
}

func (t Tee) NodeLabel(at meshfile.Point, index int) {
	for _, s := range t {
		s.NodeLabel(at, index)
	}
}
