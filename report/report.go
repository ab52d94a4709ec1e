// Package report prints conversion progress to the console.
package report

import (
	"io"
	"log"
	"os"

	"github.com/logrusorgru/aurora"
	"golang.org/x/term"
)

// Reporter logs progress lines. The zero value and a nil *Reporter are both
// silent.
type Reporter struct {
	logger *log.Logger
	au     aurora.Aurora
}

// New reports to w, with colors when color is true.
func New(w io.Writer, color bool) *Reporter {
	return &Reporter{
		logger: log.New(w, "", 0),
		au:     aurora.NewAurora(color),
	}
}

// Stderr reports to standard error, colored if it is a terminal.
func Stderr() *Reporter {
	return New(os.Stderr, IsTerminal(os.Stderr))
}

func Discard() *Reporter {
	return nil
}

func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func (r *Reporter) enabled() bool {
	return r != nil && r.logger != nil
}

// Writing notes the output file.
func (r *Reporter) Writing(path string) {
	if !r.enabled() {
		return
	}
	r.logger.Printf("writing to %v ...", r.au.Cyan(path))
}

// Reading notes an input file.
func (r *Reporter) Reading(path string) {
	if !r.enabled() {
		return
	}
	r.logger.Printf("reading from %v", r.au.Cyan(path))
}

// Header echoes what a file's header declared.
func (r *Reporter) Header(what string, n int) {
	if !r.enabled() {
		return
	}
	r.logger.Printf("  ... reading %s = %v ...", what, r.au.Green(n))
}

func (r *Reporter) Error(err error) {
	if !r.enabled() {
		return
	}
	r.logger.Printf("%v %v", r.au.Red("ERROR:"), err)
}

func (r *Reporter) Done() {
	if !r.enabled() {
		return
	}
	r.logger.Print(r.au.Bold("done"))
}
