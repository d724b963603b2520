package pipeline

import (
	"errors"
	"fmt"
)

// ErrNoFiles means exclusion left nothing to analyze.
var ErrNoFiles = errors.New("no analyzable files after exclusion")

// PathError is a fatal precondition failure on the analysis root: the path
// is missing, unreadable, not a directory, or excludes down to nothing.
type PathError struct {
	Path string
	Err  error
}

func (e *PathError) Error() string {
	return fmt.Sprintf("path %s: %v", e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	return e.Err
}

// ReadError records a file that could not be read mid-run. Read errors are
// recovered: the file stays in the graph as a node with no outgoing edges
// and the error is reported in the run diagnostics.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}
