package events

import (
	"fmt"
	"strings"

	"ssa_parser/effect"
	"ssa_parser/record"
	"ssa_parser/timecode"
	"ssa_parser/util/parse"
	"ssa_parser/value"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// EventFormat represents column of Events section
type EventFormat int

const (
	Marked EventFormat = iota
	Layer
	Start
	End
	Style
	Name
	MarginL
	MarginR
	MarginV
	Effect
	Text
)

// Formats lists every event column in declaration order
var Formats = []EventFormat{Marked, Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text}

// aliases maps columns to accepted spellings, canonical first
var aliases = map[EventFormat][]string{
	Marked:  {"Marked"},
	Layer:   {"Layer"},
	Start:   {"Start"},
	End:     {"End"},
	Style:   {"Style"},
	Name:    {"Name", "Actor"},
	MarginL: {"MarginL"},
	MarginR: {"MarginR"},
	MarginV: {"MarginV"},
	Effect:  {"Effect"},
	Text:    {"Text"},
}

// Variants returns every accepted column spelling
func Variants() []string {
	return lo.FlatMap(Formats, func(f EventFormat, _ int) []string {
		return aliases[f]
	})
}

var lookup = record.Lookup(aliases)

// ParseFormat returns column named <name> ignoring case
func ParseFormat(name string) (EventFormat, bool) {
	return lookup(name)
}

// ParseOrder returns column order declared by Format <line>
func ParseOrder(line string) ([]EventFormat, error) {
	return record.ParseHeader(line, lookup, Variants())
}

// String returns canonical column name
func (f EventFormat) String() string {
	if names, ok := aliases[f]; ok {
		return names[0]
	}
	return fmt.Sprintf("EventFormat(%d)", int(f))
}

// defaultStyle is the style name events refer to unless told otherwise
const defaultStyle = "Default"

// DefaultValue returns value written for an unset column
func (f EventFormat) DefaultValue() value.Value {
	switch f {
	case Marked, Layer, MarginL, MarginR, MarginV:
		return value.Int(0)
	case Start, End:
		return value.Duration(0)
	case Style:
		return value.Str(defaultStyle)
	case Effect:
		return value.Effect(effect.NewNone())
	case Text:
		return value.Text("")
	}
	return value.Str("")
}

// markedKey prefixes the Marked column of SSA events
const markedKey = "Marked"

// ParseValue returns typed value of column text <raw>
func (f EventFormat) ParseValue(raw string) (value.Value, error) {
	switch f {
	case Marked:
		if num, ok := parse.StripKey(raw, markedKey, "="); ok {
			raw = num
		}
		i, err := parse.Int(raw)
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(i), nil
	case Layer, MarginL, MarginR, MarginV:
		i, err := parse.Int(raw)
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(i), nil
	case Start, End:
		d, err := timecode.Parse(strings.TrimSpace(raw))
		if err != nil {
			return value.Value{}, errors.Wrap(err, "Parse timecode")
		}
		return value.Duration(d), nil
	case Effect:
		return value.Effect(effect.Parse(raw)), nil
	case Text:
		return value.Text(raw), nil
	}
	return value.Str(strings.TrimSpace(raw)), nil
}

// FormatValue returns column text of <v>
func (f EventFormat) FormatValue(v value.Value) string {
	if f == Marked {
		return markedKey + "=" + v.String()
	}
	return v.String()
}
