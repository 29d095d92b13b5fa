package ssa

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// ErrInvalidTextEncoding is returned when script bytes are not valid UTF-8
var ErrInvalidTextEncoding = errors.New("Script is not valid UTF-8 text")

// LineError represents failure to read one line of a script
type LineError struct {
	// Line is the 1-based line number
	Line    int
	Section string
	Text    string
	Err     error
}

func (e LineError) Error() string {
	return fmt.Sprintf("line %v of [%v] section %q: %v", e.Line, e.Section, e.Text, e.Err)
}

func (e LineError) Unwrap() error {
	return e.Err
}

// MissingHeaderError represents tabular section without Format line
type MissingHeaderError struct {
	Section string
}

func (e MissingHeaderError) Error() string {
	return fmt.Sprintf("missing Format line after [%v] section header", e.Section)
}
