package internal

import (
	"github.com/pkg/errors"

	"github.com/osuushi/tri2tikz/meshfile"
)

// ExitCode maps a conversion error to a process exit status. Each place a
// sequence mismatch can be found gets its own status so scripts can tell them
// apart; anything else is 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var mismatch *meshfile.SequenceMismatchError
	if errors.As(err, &mismatch) {
		switch mismatch.Section {
		case meshfile.SectionNodes:
			return 2
		case meshfile.SectionPolyNodes:
			return 3
		case meshfile.SectionPolySegments:
			return 4
		case meshfile.SectionElements:
			return 5
		}
	}
	return 1
}
