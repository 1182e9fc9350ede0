package tags

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidNesting indicates a block was opened inside a different active block.
	ErrInvalidNesting = errors.New("invalid tag nesting")
	// ErrUnmatchedEnd indicates an END tag without a matching open BEGIN tag.
	ErrUnmatchedEnd = errors.New("unmatched end tag")
	// ErrInvalidPrefix indicates a tag prefix that makes tags ambiguous.
	ErrInvalidPrefix = errors.New("invalid tag prefix")
)

// TagError reports a tag violation with the file and line it was found on.
type TagError struct {
	File   string // Name of the file being interpreted
	Line   int    // 1-based line number
	Tag    string // Tag found on the offending line
	Active string // Opening tag of the block active at that point, if any
	Err    error  // ErrInvalidNesting or ErrUnmatchedEnd
}

// Error implements the error interface.
func (e *TagError) Error() string {
	var msg string
	switch {
	case errors.Is(e.Err, ErrInvalidNesting):
		msg = fmt.Sprintf("can not use %s within a %s block", e.Tag, e.Active)
	case errors.Is(e.Err, ErrUnmatchedEnd):
		msg = fmt.Sprintf("can not use %s without a matching begin tag", e.Tag)
	default:
		msg = e.Err.Error()
	}
	return fmt.Sprintf("%s:%d: %s", e.File, e.Line, msg)
}

// Unwrap returns the sentinel error.
func (e *TagError) Unwrap() error {
	return e.Err
}
