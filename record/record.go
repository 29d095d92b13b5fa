// Package record implements schema shaped records: ordered slots, one per column declared by a section's Format line,
// each holding an optional value.
package record

import (
	"fmt"
	"strings"

	"ssa_parser/util/parse"
	"ssa_parser/value"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Format is a column tag of a tabular section
type Format interface {
	comparable
	fmt.Stringer
	// DefaultValue returns value written for an unset slot
	DefaultValue() value.Value
	// ParseValue returns typed value of column text <raw>
	ParseValue(raw string) (value.Value, error)
	// FormatValue returns column text of <v>
	FormatValue(v value.Value) string
}

// slot represents one column of a record
type slot[F Format] struct {
	format F
	value  value.Value
	set    bool
}

// Record represents one data line of a tabular section.
//
// The set of slots is fixed on creation, only their values change.
type Record[F Format] struct {
	slots []slot[F]
}

// New returns record with an unset slot for every column of <order>
func New[F Format](order []F) Record[F] {
	slots := lo.Map(order, func(f F, _ int) slot[F] {
		return slot[F]{format: f}
	})
	return Record[F]{slots: slots}
}

// find returns index of the first slot with <format> or -1
func (r Record[F]) find(format F) int {
	_, idx, _ := lo.FindIndexOf(r.slots, func(s slot[F]) bool {
		return s.format == format
	})
	return idx
}

// Set stores <v> in the first slot of <format>. It returns false if the record has no such column.
func (r *Record[F]) Set(format F, v value.Value) bool {
	idx := r.find(format)
	if idx < 0 {
		return false
	}
	r.slots[idx].value = v
	r.slots[idx].set = true
	return true
}

// Get returns value of the first slot of <format> and true if it is set
func (r Record[F]) Get(format F) (value.Value, bool) {
	idx := r.find(format)
	if idx < 0 || !r.slots[idx].set {
		return value.Value{}, false
	}
	return r.slots[idx].value, true
}

// GetMut returns pointer to the value of the first slot of <format> or nil if it is unset
func (r *Record[F]) GetMut(format F) *value.Value {
	idx := r.find(format)
	if idx < 0 || !r.slots[idx].set {
		return nil
	}
	return &r.slots[idx].value
}

// Remove unsets the first slot of <format>
func (r *Record[F]) Remove(format F) {
	if idx := r.find(format); idx >= 0 {
		r.slots[idx] = slot[F]{format: format}
	}
}

// Has returns true if the record has a column of <format>
func (r Record[F]) Has(format F) bool {
	return r.find(format) >= 0
}

// Order returns columns of the record
func (r Record[F]) Order() []F {
	return lo.Map(r.slots, func(s slot[F], _ int) F {
		return s.format
	})
}

// Clone returns copy of the record which does not share slots with <r>
func (r Record[F]) Clone() Record[F] {
	slots := make([]slot[F], len(r.slots))
	copy(slots, r.slots)
	return Record[F]{slots: slots}
}

// Fill parses <fields> positionally into slots. Extra fields are ignored, missing ones leave slots unset.
func (r *Record[F]) Fill(fields []string) error {
	for idx, field := range fields {
		if idx >= len(r.slots) {
			break
		}
		format := r.slots[idx].format
		v, err := format.ParseValue(field)
		if err != nil {
			return errors.Wrapf(err, "Parse %v column", format)
		}
		r.slots[idx].value = v
		r.slots[idx].set = true
	}
	return nil
}

// Fields returns text of every column in declared order, using the column default for unset slots
func (r Record[F]) Fields() []string {
	return lo.Map(r.slots, func(s slot[F], _ int) string {
		if !s.set {
			return s.format.FormatValue(s.format.DefaultValue())
		}
		return s.format.FormatValue(s.value)
	})
}

// String returns comma separated fields of the record
func (r Record[F]) String() string {
	return strings.Join(r.Fields(), ",")
}

// UnknownColumnError represents Format line column which does not name a known tag
type UnknownColumnError struct {
	Column   string
	Accepted []string
}

func (e UnknownColumnError) Error() string {
	return fmt.Sprintf("unknown column %q, expected one of: %v", e.Column, strings.Join(e.Accepted, ", "))
}

// FormatKey is the key of column order header lines
const FormatKey = "Format"

// ParseHeader returns column order declared by Format <line>.
//
// <lookup> resolves a trimmed column name, <accepted> lists every spelling reported when it fails.
func ParseHeader[F Format](line string, lookup func(string) (F, bool), accepted []string) ([]F, error) {
	columns, ok := parse.StripKey(line, FormatKey, ":")
	if !ok {
		return nil, parse.Error{Context: "format header", Message: fmt.Sprintf("expected %v: prefix in %q", FormatKey, line)}
	}
	var order []F
	for _, name := range strings.Split(columns, ",") {
		name = strings.TrimSpace(name)
		f, ok := lookup(name)
		if !ok {
			return nil, UnknownColumnError{Column: name, Accepted: accepted}
		}
		order = append(order, f)
	}
	return order, nil
}

// Header returns Format line declaring <order>
func Header[F Format](order []F) string {
	names := lo.Map(order, func(f F, _ int) string {
		return f.String()
	})
	return FormatKey + ": " + strings.Join(names, ", ")
}

// Lookup returns function resolving case insensitive <aliases> of tags, as used by ParseHeader
func Lookup[F Format](aliases map[F][]string) func(string) (F, bool) {
	return func(name string) (F, bool) {
		for f, names := range aliases {
			if lo.ContainsBy(names, func(alias string) bool { return strings.EqualFold(alias, name) }) {
				return f, true
			}
		}
		var zero F
		return zero, false
	}
}
