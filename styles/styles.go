// Package styles implements V4 Styles and V4+ Styles sections
package styles

import (
	"fmt"
	"strings"

	"ssa_parser/record"
	"ssa_parser/util/parse"
	"ssa_parser/util/slice"
	"ssa_parser/value"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// ErrMissingNameColumn is returned when styles order or style record has no Name column
var ErrMissingNameColumn = errors.New("Missing Name column in style")

// InvalidTypeError represents style column holding value of unexpected kind
type InvalidTypeError struct {
	Column   StyleFormat
	Expected string
	Actual   value.Kind
}

func (e InvalidTypeError) Error() string {
	return fmt.Sprintf("style column %v holds %v value, expected %v", e.Column, e.Actual, e.Expected)
}

// DefaultV4PlusOrder returns column order of ASS scripts
func DefaultV4PlusOrder() []StyleFormat {
	return []StyleFormat{
		Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, OutlineColour, BackColour, Bold, Italic, Underline,
		StrikeOut, ScaleX, ScaleY, Spacing, Angle, BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV,
		Encoding,
	}
}

// DefaultV4Order returns column order of SSA scripts
func DefaultV4Order() []StyleFormat {
	return []StyleFormat{
		Name, Fontname, Fontsize, PrimaryColour, SecondaryColour, TertiaryColour, BackColour, Bold, Italic,
		BorderStyle, Outline, Shadow, Alignment, MarginL, MarginR, MarginV, AlphaLevel, Encoding,
	}
}

// Style represents one Style line
type Style struct {
	record.Record[StyleFormat]
}

// Name returns name of the style if Name column holds a string
func (s Style) Name() (string, bool) {
	v, ok := s.Get(Name)
	if !ok {
		return "", false
	}
	return v.AsStr()
}

// Clone returns deep copy of the style
func (s Style) Clone() *Style {
	return &Style{Record: s.Record.Clone()}
}

// named binds style to its name for lookups
type named struct {
	name  string
	style *Style
}

// GetName implements slice.Named
func (n named) GetName() string {
	return n.name
}

// V4Styles represents styles section: column order and styles keyed by unique name
type V4Styles struct {
	order  []StyleFormat
	styles []named
}

// New returns empty styles section with column <order>
func New(order []StyleFormat) (*V4Styles, error) {
	if !lo.Contains(order, Name) {
		return nil, ErrMissingNameColumn
	}
	return &V4Styles{order: append([]StyleFormat(nil), order...)}, nil
}

// NewV4Plus returns empty styles section with default V4+ order
func NewV4Plus() *V4Styles {
	return &V4Styles{order: DefaultV4PlusOrder()}
}

// NewV4 returns empty styles section with default V4 order
func NewV4() *V4Styles {
	return &V4Styles{order: DefaultV4Order()}
}

// Order returns column order of the section
func (ss *V4Styles) Order() []StyleFormat {
	return append([]StyleFormat(nil), ss.order...)
}

// NewStyle returns unset style shaped after section order
func (ss *V4Styles) NewStyle() *Style {
	return &Style{Record: record.New(ss.order)}
}

// Add appends <style>. Duplicate names are kept, lookups return the first one.
func (ss *V4Styles) Add(style *Style) error {
	v, ok := style.Get(Name)
	if !ok {
		return ErrMissingNameColumn
	}
	name, ok := v.AsStr()
	if !ok {
		return InvalidTypeError{Column: Name, Expected: "string", Actual: v.Kind()}
	}
	ss.styles = append(ss.styles, named{name: name, style: style})
	return nil
}

// Get returns the first style named <name>
func (ss *V4Styles) Get(name string) (*Style, bool) {
	n, _, found := slice.FindNamed(ss.styles, name)
	return n.style, found
}

// Remove deletes the first style named <name>. It returns removed style if there was one.
func (ss *V4Styles) Remove(name string) (*Style, bool) {
	n, idx, found := slice.FindNamed(ss.styles, name)
	if !found {
		return nil, false
	}
	ss.styles = append(ss.styles[:idx], ss.styles[idx+1:]...)
	return n.style, true
}

// Clear removes every style keeping the order
func (ss *V4Styles) Clear() {
	ss.styles = nil
}

// Len returns amount of styles
func (ss *V4Styles) Len() int {
	return len(ss.styles)
}

// Styles returns styles in insertion order
func (ss *V4Styles) Styles() []*Style {
	return lo.Map(ss.styles, func(n named, _ int) *Style { return n.style })
}

// Names returns style names in insertion order
func (ss *V4Styles) Names() []string {
	return lo.Map(ss.styles, func(n named, _ int) string { return n.name })
}

// styleKey is the prefix of style lines
const styleKey = "Style"

// ParseLine adds style declared by <line>. It returns false if <line> is not a Style line.
func (ss *V4Styles) ParseLine(line string) (bool, error) {
	data, ok := parse.StripKey(line, styleKey, ":")
	if !ok {
		return false, nil
	}
	style := ss.NewStyle()
	if err := style.Fill(lo.Map(strings.Split(data, ","), func(f string, _ int) string {
		return strings.TrimSpace(f)
	})); err != nil {
		return true, errors.Wrap(err, "Parse style")
	}
	return true, ss.Add(style)
}

// String returns section body: Format line followed by Style lines
func (ss *V4Styles) String() string {
	var sb strings.Builder
	sb.WriteString(record.Header(ss.order))
	sb.WriteString("\n")
	for _, n := range ss.styles {
		sb.WriteString(styleKey + ": " + n.style.String() + "\n")
	}
	return sb.String()
}
