package meshfile

// Point is a single vertex read from a .node or .poly file. Marker is the
// boundary marker column, zero when the file carries none.
type Point struct {
	X      float64
	Y      float64
	Marker int
}

// PointSet holds the coordinates of one file in parallel slices, indexed from
// zero. The node file and the poly file each produce their own set, and the two
// are never merged.
type PointSet struct {
	X      []float64
	Y      []float64
	Marker []int
}

func NewPointSet(n int) *PointSet {
	return &PointSet{
		X:      make([]float64, 0, n),
		Y:      make([]float64, 0, n),
		Marker: make([]int, 0, n),
	}
}

func (s *PointSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.X)
}

func (s *PointSet) Add(p Point) {
	s.X = append(s.X, p.X)
	s.Y = append(s.Y, p.Y)
	s.Marker = append(s.Marker, p.Marker)
}

// At returns the point at the zero based index i. The second return value is
// false if i is out of range (including on a nil set).
func (s *PointSet) At(i int) (Point, bool) {
	if i < 0 || i >= s.Len() {
		return Point{}, false
	}
	return Point{X: s.X[i], Y: s.Y[i], Marker: s.Marker[i]}, true
}

// Tag value marking a segment as carrying an essential (Dirichlet) condition.
// Every other tag is a natural (Neumann) boundary.
const EssentialTag = 2

// Segment is one boundary segment from a .poly file, with zero based endpoints.
type Segment struct {
	From int
	To   int
	Tag  int
}

func (s Segment) Essential() bool {
	return s.Tag == EssentialTag
}

// Triangle is one element from a .ele file, with zero based vertices.
type Triangle struct {
	A, B, C int
}

// Edges gives the vertex pairs of the triangle in cyclic order: ab, bc, ca.
func (t Triangle) Edges() [3][2]int {
	return [3][2]int{{t.A, t.B}, {t.B, t.C}, {t.C, t.A}}
}

// Sink receives drawing commands as the readers consume their input. Readers
// never buffer: every record is handed to the sink as soon as it is parsed.
type Sink interface {
	// A vertex dot.
	Node(p Point)
	// A boundary segment between two resolved endpoints.
	Segment(seg Segment, from, to Point)
	// One edge of a mesh triangle.
	Edge(from, to Point)
	// The running index of a triangle, placed at its centroid.
	ElementLabel(at Point, index int)
	// The zero based index of a node, placed at the node.
	NodeLabel(at Point, index int)
}
