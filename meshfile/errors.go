package meshfile

import (
	"fmt"

	"github.com/pkg/errors"
)

// Section names one of the four record loops in the mesh files.
type Section int

const (
	SectionNodes Section = iota
	SectionPolyNodes
	SectionPolySegments
	SectionElements
)

func (s Section) String() string {
	switch s {
	case SectionNodes:
		return "nodes in node file"
	case SectionPolyNodes:
		return "nodes on polygon"
	case SectionPolySegments:
		return "polygon segments"
	case SectionElements:
		return "elements"
	}
	return fmt.Sprintf("Section(%d)", int(s))
}

// SequenceMismatchError is returned when a record's leading index is not the
// next number in sequence. Triangle numbers records from 1 unless told
// otherwise (-z), and files numbered any other way are rejected.
type SequenceMismatchError struct {
	Section  Section
	Expected int
	Found    int
}

func (e *SequenceMismatchError) Error() string {
	return fmt.Sprintf("indexing wrong in reading %s: expected record %d, found %d", e.Section, e.Expected, e.Found)
}

// Record parsing is a handful of nested helpers, each of which can discover a
// bad field. Rather than threading errors through all of them, the helpers
// throw, and every exported reader recovers the throw into its error result.

type thrown struct {
	err error
}

func throw(err error) {
	panic(thrown{err})
}

func throwf(format string, args ...interface{}) {
	throw(errors.Errorf(format, args...))
}

func handleThrow(r interface{}) error {
	if r != nil {
		if t, ok := r.(thrown); ok {
			return t.err
		}
		panic(r)
	}
	return nil
}
