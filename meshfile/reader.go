package meshfile

import (
	"io"

	"github.com/pkg/errors"
)

type state int

const (
	awaitingHeader state = iota
	readingPoints
	readingSegments
	done
)

// Every reader below is a small state machine over the significant lines of
// its file. The header line fixes how many records follow; the state changes
// when that many records have been consumed, never on anything in the text
// itself. Whatever follows the last record is left unread.

// ReadNodes parses a .node file, emitting a dot for every point as it goes,
// and returns the points for the readers that index into them.
func ReadNodes(name string, r io.Reader, sink Sink) (points *PointSet, err error) {
	s := newLineScanner(name, r)
	defer func() {
		if thrownErr := handleThrow(recover()); thrownErr != nil {
			points = nil
			err = s.annotate(thrownErr)
		}
	}()

	var declared int
	st := awaitingHeader
	for st != done && s.Scan() {
		fields := s.Fields()
		switch st {
		case awaitingHeader:
			declared = count(fields, "node count")
			points = NewPointSet(declared)
			st = advance(declared, readingPoints, done)
		case readingPoints:
			p := parsePoint(SectionNodes, fields, points.Len()+1)
			points.Add(p)
			sink.Node(p)
			st = advance(declared-points.Len(), readingPoints, done)
		}
	}
	if err := s.Err(); err != nil {
		return nil, err
	}
	if err := s.expectDone(st, points.Len(), declared, "nodes"); err != nil {
		return nil, err
	}
	return points, nil
}

// PolyResult is what a .poly file leaves behind once its records have been
// emitted.
type PolyResult struct {
	// Points declared in the file itself. Nil when the file declares none.
	Points *PointSet
	// Number of segments drawn.
	Segments int
}

// ReadPoly parses a .poly file: its own boundary points (possibly none) and
// then its segments. Segment endpoints are looked up in the file's own points
// when resolve is nil, and in resolve otherwise, which is how a .poly that
// shares the numbering of a separate .node file is drawn.
func ReadPoly(name string, r io.Reader, resolve *PointSet, sink Sink) (result PolyResult, err error) {
	s := newLineScanner(name, r)
	defer func() {
		if thrownErr := handleThrow(recover()); thrownErr != nil {
			result = PolyResult{}
			err = s.annotate(thrownErr)
		}
	}()

	var declaredPoints, declaredSegments int
	var lookup *PointSet
	headers := 0
	st := awaitingHeader
	for st != done && s.Scan() {
		fields := s.Fields()
		switch st {
		case awaitingHeader:
			headers++
			if headers == 1 {
				declaredPoints = count(fields, "node count")
				if declaredPoints > 0 {
					result.Points = NewPointSet(declaredPoints)
					st = readingPoints
				}
				continue
			}
			declaredSegments = count(fields, "segment count")
			lookup = resolve
			if lookup == nil {
				lookup = result.Points
			}
			st = advance(declaredSegments, readingSegments, done)
		case readingPoints:
			p := parsePoint(SectionPolyNodes, fields, result.Points.Len()+1)
			result.Points.Add(p)
			sink.Node(p)
			st = advance(declaredPoints-result.Points.Len(), readingPoints, awaitingHeader)
		case readingSegments:
			checkSequence(SectionPolySegments, fields, result.Segments+1)
			seg := Segment{
				From: vertex(fields, 1, lookup),
				To:   vertex(fields, 2, lookup),
				Tag:  optionalField[int](fields, 3, "boundary type"),
			}
			from, _ := lookup.At(seg.From)
			to, _ := lookup.At(seg.To)
			sink.Segment(seg, from, to)
			result.Segments++
			st = advance(declaredSegments-result.Segments, readingSegments, done)
		}
	}
	if err := s.Err(); err != nil {
		return PolyResult{}, err
	}
	switch {
	case st == readingPoints:
		err = s.truncated(result.Points.Len(), declaredPoints, "nodes")
	case st == awaitingHeader && headers == 1:
		err = errors.Errorf("%s: missing segment header", name)
	default:
		err = s.expectDone(st, result.Segments, declaredSegments, "segments")
	}
	if err != nil {
		return PolyResult{}, err
	}
	return result, nil
}

// ElementOptions controls what ReadElements emits beyond the triangle edges.
type ElementOptions struct {
	Label bool
}

// ReadElements parses a .ele file whose vertices index into points. Each
// triangle is drawn as its three edges and, with opts.Label, its running index
// at the centroid. It returns the number of triangles read.
func ReadElements(name string, r io.Reader, points *PointSet, sink Sink, opts ElementOptions) (n int, err error) {
	s := newLineScanner(name, r)
	defer func() {
		if thrownErr := handleThrow(recover()); thrownErr != nil {
			n = 0
			err = s.annotate(thrownErr)
		}
	}()

	var declared int
	st := awaitingHeader
	for st != done && s.Scan() {
		fields := s.Fields()
		switch st {
		case awaitingHeader:
			declared = count(fields, "element count")
			st = advance(declared, readingPoints, done)
		case readingPoints:
			checkSequence(SectionElements, fields, n+1)
			tri := Triangle{
				A: vertex(fields, 1, points),
				B: vertex(fields, 2, points),
				C: vertex(fields, 3, points),
			}
			for _, e := range tri.Edges() {
				from, _ := points.At(e[0])
				to, _ := points.At(e[1])
				sink.Edge(from, to)
			}
			if opts.Label {
				sink.ElementLabel(Centroid(points, tri), n)
			}
			n++
			st = advance(declared-n, readingPoints, done)
		}
	}
	if err := s.Err(); err != nil {
		return 0, err
	}
	if err := s.expectDone(st, n, declared, "elements"); err != nil {
		return 0, err
	}
	return n, nil
}

// Centroid is the mean of a triangle's three vertices.
func Centroid(points *PointSet, t Triangle) Point {
	var c Point
	for _, v := range [3]int{t.A, t.B, t.C} {
		p, _ := points.At(v)
		c.X += p.X
		c.Y += p.Y
	}
	c.X /= 3
	c.Y /= 3
	return c
}

// advance picks the next state given how many records remain.
func advance(remaining int, more, next state) state {
	if remaining > 0 {
		return more
	}
	return next
}

func (s *lineScanner) expectDone(st state, got, declared int, what string) error {
	switch st {
	case done:
		return nil
	case awaitingHeader:
		return errors.Errorf("%s: missing header", s.name)
	}
	return s.truncated(got, declared, what)
}

func (s *lineScanner) truncated(got, declared int, what string) error {
	return errors.Errorf("%s: file ends after %d of %d %s", s.name, got, declared, what)
}
