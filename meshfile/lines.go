package meshfile

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// CommentRune introduces a comment running to the end of the line.
const CommentRune = '#'

// lineScanner yields the whitespace separated fields of each significant line,
// which is any line with something left after stripping its comment.
type lineScanner struct {
	name    string
	scanner *bufio.Scanner
	line    int
	fields  []string
}

func newLineScanner(name string, r io.Reader) *lineScanner {
	return &lineScanner{name: name, scanner: bufio.NewScanner(r)}
}

func (s *lineScanner) Scan() bool {
	for s.scanner.Scan() {
		s.line++
		text := s.scanner.Text()
		if i := strings.IndexRune(text, CommentRune); i >= 0 {
			text = text[:i]
		}
		fields := strings.Fields(text)
		if len(fields) == 0 {
			continue
		}
		s.fields = fields
		return true
	}
	s.fields = nil
	return false
}

func (s *lineScanner) Fields() []string {
	return s.fields
}

func (s *lineScanner) Err() error {
	if err := s.scanner.Err(); err != nil {
		return errors.Wrapf(err, "reading %s", s.name)
	}
	return nil
}

// Annotate an error with the file and line currently being parsed. Sequence
// mismatches are returned untouched so callers can match them by type.
func (s *lineScanner) annotate(err error) error {
	if err == nil {
		return nil
	}
	var mismatch *SequenceMismatchError
	if errors.As(err, &mismatch) {
		return err
	}
	return errors.Wrapf(err, "%s:%d", s.name, s.line)
}
