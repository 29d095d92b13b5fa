package styles

import (
	"fmt"

	"ssa_parser/record"
	"ssa_parser/util/parse"
	"ssa_parser/value"

	"github.com/samber/lo"
)

// StyleFormat represents column of V4 and V4+ Styles sections
type StyleFormat int

const (
	Name StyleFormat = iota
	Fontname
	Fontsize
	PrimaryColour
	SecondaryColour
	TertiaryColour
	OutlineColour
	BackColour
	Bold
	Italic
	Underline
	StrikeOut
	ScaleX
	ScaleY
	Spacing
	Angle
	BorderStyle
	Outline
	Shadow
	Alignment
	MarginL
	MarginR
	MarginV
	AlphaLevel
	Encoding
)

// Formats lists every style column in declaration order
var Formats = []StyleFormat{
	Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, TertiaryColour, OutlineColour, BackColour, Bold, Italic,
	Underline, StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR,
	MarginV, AlphaLevel, Encoding,
}

// aliases maps columns to accepted spellings, canonical first
var aliases = map[StyleFormat][]string{
	Name:            {"Name"},
	Fontname:        {"Fontname"},
	Fontsize:        {"Fontsize"},
	PrimaryColour:   {"PrimaryColour", "PrimaryColor"},
	SecondaryColour: {"SecondaryColour", "SecondaryColor"},
	TertiaryColour:  {"TertiaryColour", "TertiaryColor"},
	OutlineColour:   {"OutlineColour", "OutlineColor"},
	BackColour:      {"BackColour", "BackColor"},
	Bold:            {"Bold"},
	Italic:          {"Italic"},
	Underline:       {"Underline"},
	StrikeOut:       {"StrikeOut"},
	ScaleX:          {"ScaleX"},
	ScaleY:          {"ScaleY"},
	Spacing:         {"Spacing"},
	Angle:           {"Angle"},
	BorderStyle:     {"BorderStyle"},
	Outline:         {"Outline"},
	Shadow:          {"Shadow"},
	Alignment:       {"Alignment"},
	MarginL:         {"MarginL"},
	MarginR:         {"MarginR"},
	MarginV:         {"MarginV"},
	AlphaLevel:      {"AlphaLevel"},
	Encoding:        {"Encoding"},
}

// Variants returns every accepted column spelling
func Variants() []string {
	return lo.FlatMap(Formats, func(f StyleFormat, _ int) []string {
		return aliases[f]
	})
}

// ParseFormat returns column named <name>, ignoring case and accepting Color for Colour
func ParseFormat(name string) (StyleFormat, bool) {
	return lookup(name)
}

var lookup = record.Lookup(aliases)

// ParseOrder returns column order declared by Format <line>
func ParseOrder(line string) ([]StyleFormat, error) {
	return record.ParseHeader(line, lookup, Variants())
}

// String returns canonical column name
func (f StyleFormat) String() string {
	if names, ok := aliases[f]; ok {
		return names[0]
	}
	return fmt.Sprintf("StyleFormat(%d)", int(f))
}

// blackColour is opaque black in &HAABBGGRR form
const blackColour = "&H00000000"

// DefaultValue returns value written for an unset column
func (f StyleFormat) DefaultValue() value.Value {
	switch f {
	case Name, Fontname:
		return value.Str("")
	case PrimaryColour, SecondaryColour, TertiaryColour, OutlineColour, BackColour:
		return value.Str(blackColour)
	case Bold, Italic, Underline, StrikeOut:
		return value.Int(0)
	case Fontsize, Spacing, Angle, Outline, Shadow, AlphaLevel:
		return value.Float(0)
	case ScaleX, ScaleY:
		return value.Float(100)
	case BorderStyle:
		return value.Int(1)
	case Alignment:
		return value.Int(2)
	case MarginL, MarginR, MarginV:
		return value.Int(10)
	case Encoding:
		return value.Int(134)
	}
	return value.Str("")
}

// ParseValue returns typed value of column text <raw>
func (f StyleFormat) ParseValue(raw string) (value.Value, error) {
	switch f {
	case Bold, Italic, Underline, StrikeOut, BorderStyle, Alignment, MarginL, MarginR, MarginV, Encoding:
		i, err := parse.Int(raw)
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(i), nil
	case Fontsize, ScaleX, ScaleY, Spacing, Angle, Outline, Shadow, AlphaLevel:
		fl, err := parse.Float(raw)
		if err != nil {
			return value.Value{}, err
		}
		return value.Float(fl), nil
	}
	return value.Str(raw), nil
}

// FormatValue returns column text of <v>
func (f StyleFormat) FormatValue(v value.Value) string {
	return v.String()
}
