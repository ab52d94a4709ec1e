package tikz

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/osuushi/tri2tikz/meshfile"
)

func TestEmitter(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, Style{NodeSize: 1.25, NodeOffset: 1, ElementOffset: 0.5})
	e.Begin("tri2tikz --labelnodes foo foo.tikz", 2)
	e.Node(meshfile.Point{X: 1, Y: -2.5})
	e.Segment(meshfile.Segment{From: 2, To: 4, Tag: 2}, meshfile.Point{X: 0, Y: 0}, meshfile.Point{X: 1, Y: 1})
	e.Segment(meshfile.Segment{From: 0, To: 1, Tag: 1}, meshfile.Point{X: 1, Y: 1}, meshfile.Point{X: 2, Y: 0})
	e.Edge(meshfile.Point{X: 0.125, Y: 0}, meshfile.Point{X: 3, Y: 4})
	e.ElementLabel(meshfile.Point{X: 1, Y: 1}, 0)
	e.NodeLabel(meshfile.Point{X: 1, Y: 1}, 7)
	assert.NoError(t, e.End())

	expected := `% created by tri2tikz command line:
%   tri2tikz --labelnodes foo foo.tikz
%
\begin{tikzpicture}[scale=2.000000]
  \filldraw (1.000000,-2.500000) circle (1.250000pt);
  \draw[line width=2.5pt] (0.000000,0.000000) -- (1.000000,1.000000);
  \draw[line width=0.75pt] (1.000000,1.000000) -- (2.000000,0.000000);
  \draw[gray,very thin] (0.125000,0.000000) -- (3.000000,4.000000);
  \draw (1.350000,0.500000) node {\color{red} $0$};
  \draw (1.700000,0.000000) node {\color{blue} $7$};
\end{tikzpicture}
`
	assert.Equal(t, expected, buf.String())
}

func TestEmitterCustomWidths(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, Style{StrongWidth: "4pt", WeakWidth: "1pt"})
	e.Segment(meshfile.Segment{Tag: 2}, meshfile.Point{}, meshfile.Point{X: 1})
	e.Segment(meshfile.Segment{Tag: 0}, meshfile.Point{}, meshfile.Point{X: 1})
	assert.NoError(t, e.Flush())
	assert.Equal(t,
		"  \\draw[line width=4pt] (0.000000,0.000000) -- (1.000000,0.000000);\n"+
			"  \\draw[line width=1pt] (0.000000,0.000000) -- (1.000000,0.000000);\n",
		buf.String())
}

func TestEmitterFlushLeavesPictureOpen(t *testing.T) {
	var buf bytes.Buffer
	e := NewEmitter(&buf, DefaultStyle())
	e.Begin("x", 1)
	e.Node(meshfile.Point{})
	assert.NoError(t, e.Flush())
	assert.Contains(t, buf.String(), "\\begin{tikzpicture}[scale=1.000000]\n")
	assert.Contains(t, buf.String(), "circle (1.250000pt);\n")
	assert.NotContains(t, buf.String(), "\\end{tikzpicture}")
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestEmitterStickyError(t *testing.T) {
	e := NewEmitter(failingWriter{}, DefaultStyle())
	e.Begin("x", 1)
	for i := 0; i < 1000; i++ {
		e.Node(meshfile.Point{X: float64(i)})
	}
	assert.EqualError(t, e.End(), "disk full")
	assert.EqualError(t, e.Flush(), "disk full")
}

func TestOffset(t *testing.T) {
	x, y := Offset(meshfile.Point{X: 1, Y: 1}, 0)
	assert.Equal(t, 1.0, x)
	assert.Equal(t, 1.0, y)
	x, y = Offset(meshfile.Point{X: 0, Y: 0}, 2)
	assert.InDelta(t, 1.4, x, 1e-12)
	assert.InDelta(t, -2.0, y, 1e-12)
}
