// Converts the .node, .ele and .poly files of the Triangle mesh generator into
// a TikZ picture for inclusion in a LaTeX document.
//
// Given a name root, the boundary polygon is read from root.poly, the mesh
// nodes from root.node and the triangles from root.ele. Nodes are drawn as
// dots, triangles as thin gray edges, and boundary segments as black lines,
// thick where the segment's boundary marker is 2 (an essential condition) and
// thin otherwise. In poly only mode, just the .poly file is drawn.
package tri2tikz

import (
	"io"

	"github.com/osuushi/tri2tikz/internal"
	"github.com/osuushi/tri2tikz/meshfile"
	"github.com/osuushi/tri2tikz/report"
)

type Options = internal.Options
type SequenceMismatchError = meshfile.SequenceMismatchError

func DefaultOptions() Options {
	return internal.DefaultOptions()
}

// Convert writes the picture for opts to w, reporting nothing.
func Convert(opts Options, w io.Writer) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	return internal.NewConverter(opts, report.Discard()).Convert(w)
}

// ConvertFile writes the picture for opts to opts.Output, reporting progress
// to r (which may be nil).
func ConvertFile(opts Options, r *report.Reporter) error {
	return internal.NewConverter(opts, r).Run()
}

// ExitCode gives the process exit status for an error returned by Convert or
// ConvertFile.
func ExitCode(err error) int {
	return internal.ExitCode(err)
}
