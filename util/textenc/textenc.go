// Package textenc converts scripts saved in legacy charsets to UTF-8
package textenc

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// bom is the UTF-8 byte order mark
var bom = []byte{0xEF, 0xBB, 0xBF}

// StripBOM returns <data> without leading UTF-8 byte order mark
func StripBOM(data []byte) []byte {
	return bytes.TrimPrefix(data, bom)
}

// UnknownCharsetError represents charset name not known to the encoding index
type UnknownCharsetError struct {
	Name string
}

func (e UnknownCharsetError) Error() string {
	return "unknown charset " + e.Name
}

// Decode returns <data> converted from <charset> to UTF-8.
//
// Empty <charset> returns <data> as is.
func Decode(data []byte, charset string) ([]byte, error) {
	if charset == "" {
		return data, nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, UnknownCharsetError{Name: charset}
	}
	out, err := io.ReadAll(transform.NewReader(bytes.NewReader(data), enc.NewDecoder()))
	if err != nil {
		return nil, errors.Wrapf(err, "Decode %v text", charset)
	}
	return out, nil
}

// Valid returns true if <charset> is empty or known to the encoding index
func Valid(charset string) bool {
	if charset == "" {
		return true
	}
	_, err := htmlindex.Get(charset)
	return err == nil
}
