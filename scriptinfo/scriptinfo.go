// Package scriptinfo implements Script Info section: an ordered property bag with typed accessors for well known keys
package scriptinfo

import (
	"strings"

	"ssa_parser/util/parse"
	"ssa_parser/util/slice"
	"ssa_parser/value"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Property represents one Script Info line
type Property struct {
	Key   string
	Value value.Value
}

// GetName implements slice.Named
func (p Property) GetName() string {
	return p.Key
}

// ScriptInfo represents Script Info section.
//
// Keys are matched ignoring case, properties keep insertion order.
type ScriptInfo struct {
	props []Property
}

// New returns empty Script Info section
func New() *ScriptInfo {
	return &ScriptInfo{}
}

// AddProperty stores <v> under <key>, replacing value of an existing key in place
func (si *ScriptInfo) AddProperty(key string, v value.Value) {
	props, _, idx := slice.FindIndexOrElse(si.props, Property{Key: key}, func(p Property) bool {
		return strings.EqualFold(p.Key, key)
	})
	props[idx].Value = v
	si.props = props
}

// GetProperty returns value stored under <key>
func (si *ScriptInfo) GetProperty(key string) (value.Value, bool) {
	p, _, found := slice.FindNamedFold(si.props, key)
	return p.Value, found
}

// RemoveProperty deletes <key> and returns it's value
func (si *ScriptInfo) RemoveProperty(key string) (value.Value, bool) {
	p, idx, found := slice.FindNamedFold(si.props, key)
	if !found {
		return value.Value{}, false
	}
	si.props = append(si.props[:idx], si.props[idx+1:]...)
	return p.Value, true
}

// Properties returns copy of properties in insertion order
func (si *ScriptInfo) Properties() []Property {
	return append([]Property(nil), si.props...)
}

// Len returns amount of properties
func (si *ScriptInfo) Len() int {
	return len(si.props)
}

// Clear removes every property
func (si *ScriptInfo) Clear() {
	si.props = nil
}

// AddComment appends <text> to the comment list
func (si *ScriptInfo) AddComment(text string) {
	key := string(KeyComment)
	if _, idx, found := slice.FindNamed(si.props, key); found {
		if si.props[idx].Value.Append(value.Str(text)) {
			return
		}
	}
	si.AddProperty(key, value.List(value.Str(text)))
}

// Comments returns comment lines in encounter order
func (si *ScriptInfo) Comments() []string {
	v, ok := si.GetProperty(string(KeyComment))
	if !ok {
		return nil
	}
	items, _ := v.AsList()
	return lo.Map(items, func(item value.Value, _ int) string {
		return item.String()
	})
}

// commentPrefixes mark Script Info comment lines
var commentPrefixes = []string{";", "!"}

// ParseLine stores property or comment declared by <line>. It returns false if <line> is neither of them.
func (si *ScriptInfo) ParseLine(line string) (bool, error) {
	trimmed := strings.TrimSpace(line)
	if prefix, ok := lo.Find(commentPrefixes, func(p string) bool {
		return strings.HasPrefix(trimmed, p)
	}); ok {
		si.AddComment(strings.TrimSpace(strings.TrimPrefix(trimmed, prefix)))
		return true, nil
	}

	key, raw, ok := parse.KeyValue(line, ":")
	if !ok {
		return false, nil
	}
	known, ok := ParseKey(key)
	if !ok {
		si.AddProperty(key, value.Str(raw))
		return true, nil
	}
	v, err := parseKnown(known, raw)
	if err != nil {
		return true, errors.Wrapf(err, "Parse %v property", known)
	}
	si.AddProperty(string(known), v)
	return true, nil
}

// parseKnown returns typed value of well known <key> from <raw> text
func parseKnown(key Key, raw string) (value.Value, error) {
	switch key {
	case KeyPlayResX, KeyPlayResY, KeyPlayDepth, KeyWrapStyle, KeyLayoutResX, KeyLayoutResY:
		i, err := parse.Int(raw)
		if err != nil {
			return value.Value{}, err
		}
		return value.Int(i), nil
	case KeyTimer:
		f, err := parse.Float(raw)
		if err != nil {
			return value.Value{}, err
		}
		return value.Float(f), nil
	case KeyScaledBorderAndShadow:
		return value.Boolean(parseYesNo(raw)), nil
	case KeyScriptType:
		t, err := ParseScriptType(raw)
		if err != nil {
			return value.Value{}, err
		}
		return value.Str(t.String()), nil
	case KeyCollisions:
		c, err := ParseCollisions(raw)
		if err != nil {
			return value.Value{}, err
		}
		return value.Str(c.String()), nil
	}
	return value.Str(raw), nil
}

// String returns section body, one line per property
func (si *ScriptInfo) String() string {
	var sb strings.Builder
	for _, p := range si.props {
		if p.Key == string(KeyComment) {
			items, _ := p.Value.AsList()
			for _, item := range items {
				sb.WriteString("; " + item.String() + "\n")
			}
			continue
		}
		text := p.Value.String()
		if b, ok := p.Value.AsBool(); ok && strings.EqualFold(p.Key, string(KeyScaledBorderAndShadow)) {
			text = formatYesNo(b)
		}
		sb.WriteString(p.Key + ": " + text + "\n")
	}
	return sb.String()
}
