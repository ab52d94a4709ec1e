package meshfile

type segmentEvent struct {
	Segment  Segment
	From, To Point
}

type edgeEvent struct {
	From, To Point
}

type labelEvent struct {
	At    Point
	Index int
}

// Sink keeping everything it is given, for assertions.
type recordingSink struct {
	nodes         []Point
	segments      []segmentEvent
	edges         []edgeEvent
	elementLabels []labelEvent
	nodeLabels    []labelEvent
}

func (r *recordingSink) Node(p Point) {
	r.nodes = append(r.nodes, p)
}

func (r *recordingSink) Segment(seg Segment, from, to Point) {
	r.segments = append(r.segments, segmentEvent{seg, from, to})
}

func (r *recordingSink) Edge(from, to Point) {
	r.edges = append(r.edges, edgeEvent{from, to})
}

func (r *recordingSink) ElementLabel(at Point, index int) {
	r.elementLabels = append(r.elementLabels, labelEvent{at, index})
}

func (r *recordingSink) NodeLabel(at Point, index int) {
	r.nodeLabels = append(r.nodeLabels, labelEvent{at, index})
}
