package parse

import (
	"fmt"
	"strconv"
	"strings"
)

// Error represents generic parse failure of construct named <Context>
type Error struct {
	Context string
	Message string
}

func (e Error) Error() string {
	return fmt.Sprintf("parse %v: %v", e.Context, e.Message)
}

// IntError represents failure to parse <Text> as integer
type IntError struct {
	Text string
	Err  error
}

func (e IntError) Error() string {
	return fmt.Sprintf("parse integer from %q: %v", e.Text, e.Err)
}

func (e IntError) Unwrap() error {
	return e.Err
}

// FloatError represents failure to parse <Text> as floating point number
type FloatError struct {
	Text string
	Err  error
}

func (e FloatError) Error() string {
	return fmt.Sprintf("parse float from %q: %v", e.Text, e.Err)
}

func (e FloatError) Unwrap() error {
	return e.Err
}

// Int returns <inp> with surrounding space trimmed parsed as base 10 integer
func Int(inp string) (int64, error) {
	inp = strings.TrimSpace(inp)
	out, err := strconv.ParseInt(inp, 10, 64)
	if err != nil {
		return 0, IntError{Text: inp, Err: err}
	}
	return out, nil
}

// Float returns <inp> with surrounding space trimmed parsed as 64 bit floating point number
func Float(inp string) (float64, error) {
	inp = strings.TrimSpace(inp)
	out, err := strconv.ParseFloat(inp, 64)
	if err != nil {
		return 0, FloatError{Text: inp, Err: err}
	}
	return out, nil
}

// KeyValue returns the part of <line> before the first <sep> and the part after it, both trimmed, and true if <sep>
// is found.
func KeyValue(line, sep string) (string, string, bool) {
	key, value, found := strings.Cut(line, sep)
	if !found {
		return "", "", false
	}
	return strings.TrimSpace(key), strings.TrimSpace(value), true
}

// StripKey returns <line> without the case insensitive <key> and following <sep> with the rest trimmed, and true if
// <line> starts with them.
func StripKey(line, key, sep string) (string, bool) {
	k, v, found := KeyValue(line, sep)
	if !found || !strings.EqualFold(k, key) {
		return "", false
	}
	return v, true
}
