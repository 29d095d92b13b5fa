// Package value holds the closed set of typed field values of a subtitle script.
package value

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"ssa_parser/effect"
	"ssa_parser/timecode"

	"github.com/samber/lo"
)

// Kind represents value variant
type Kind int

const (
	KindStr Kind = iota
	KindInt
	KindFloat
	KindBoolean
	KindList
	KindDuration
	KindEffect
	KindText
)

var kindNames = [...]string{"Str", "Int", "Float", "Boolean", "List", "Duration", "Effect", "Text"}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value represents one typed field value.
//
// Only the field matching Kind is meaningful. Values of different kinds are never equal and are not converted into
// each other.
type Value struct {
	kind     Kind
	str      string
	num      int64
	float    float64
	boolean  bool
	list     []Value
	duration time.Duration
	effect   effect.Effect
}

// Str returns string value
func Str(s string) Value {
	return Value{kind: KindStr, str: s}
}

// Int returns integer value
func Int(i int64) Value {
	return Value{kind: KindInt, num: i}
}

// Float returns floating point value
func Float(f float64) Value {
	return Value{kind: KindFloat, float: f}
}

// Boolean returns boolean value
func Boolean(b bool) Value {
	return Value{kind: KindBoolean, boolean: b}
}

// List returns list value holding <items>
func List(items ...Value) Value {
	return Value{kind: KindList, list: items}
}

// Duration returns duration value
func Duration(d time.Duration) Value {
	return Value{kind: KindDuration, duration: d}
}

// Effect returns effect value
func Effect(e effect.Effect) Value {
	return Value{kind: KindEffect, effect: e}
}

// Text returns event text value
func Text(s string) Value {
	return Value{kind: KindText, str: s}
}

// Kind returns variant of the value
func (v Value) Kind() Kind {
	return v.kind
}

// AsStr returns string and true if value is Str
func (v Value) AsStr() (string, bool) {
	return v.str, v.kind == KindStr
}

// AsInt returns integer and true if value is Int
func (v Value) AsInt() (int64, bool) {
	return v.num, v.kind == KindInt
}

// AsFloat returns floating point number and true if value is Float
func (v Value) AsFloat() (float64, bool) {
	return v.float, v.kind == KindFloat
}

// AsBool returns boolean and true if value is Boolean
func (v Value) AsBool() (bool, bool) {
	return v.boolean, v.kind == KindBoolean
}

// AsList returns list items and true if value is List
func (v Value) AsList() ([]Value, bool) {
	return v.list, v.kind == KindList
}

// AsDuration returns duration and true if value is Duration
func (v Value) AsDuration() (time.Duration, bool) {
	return v.duration, v.kind == KindDuration
}

// AsEffect returns effect and true if value is Effect
func (v Value) AsEffect() (effect.Effect, bool) {
	return v.effect, v.kind == KindEffect
}

// AsText returns text and true if value is Text
func (v Value) AsText() (string, bool) {
	return v.str, v.kind == KindText
}

// Append adds <items> to the end of list value. It returns false and does nothing if value is not List.
func (v *Value) Append(items ...Value) bool {
	if v.kind != KindList {
		return false
	}
	v.list = append(v.list, items...)
	return true
}

// Equal returns true if <v> and <other> are of the same kind and hold equal data
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindStr, KindText:
		return v.str == other.str
	case KindInt:
		return v.num == other.num
	case KindFloat:
		return v.float == other.float
	case KindBoolean:
		return v.boolean == other.boolean
	case KindList:
		if len(v.list) != len(other.list) {
			return false
		}
		for i := range v.list {
			if !v.list[i].Equal(other.list[i]) {
				return false
			}
		}
		return true
	case KindDuration:
		return v.duration == other.duration
	case KindEffect:
		return v.effect == other.effect
	}
	return false
}

// String returns text form of the value as written to a script
func (v Value) String() string {
	switch v.kind {
	case KindStr, KindText:
		return v.str
	case KindInt:
		return strconv.FormatInt(v.num, 10)
	case KindFloat:
		return strconv.FormatFloat(v.float, 'f', -1, 64)
	case KindBoolean:
		return strconv.FormatBool(v.boolean)
	case KindList:
		items := lo.Map(v.list, func(item Value, _ int) string {
			return item.String()
		})
		return "[" + strings.Join(items, ", ") + "]"
	case KindDuration:
		return timecode.Format(v.duration)
	case KindEffect:
		return v.effect.String()
	}
	return ""
}

// GoString returns value in Kind(data) form for debugging
func (v Value) GoString() string {
	return fmt.Sprintf("%v(%v)", v.kind, v.String())
}
