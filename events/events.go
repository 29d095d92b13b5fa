// Package events implements Events section
package events

import (
	"fmt"
	"strings"

	"ssa_parser/record"
	"ssa_parser/util/parse"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// EventType is the line key of an event
type EventType int

const (
	Dialogue EventType = iota
	Comment
	Picture
	Sound
	Movie
	Command
)

// Types lists every event type
var Types = []EventType{Dialogue, Comment, Picture, Sound, Movie, Command}

var typeNames = map[EventType]string{
	Dialogue: "Dialogue",
	Comment:  "Comment",
	Picture:  "Picture",
	Sound:    "Sound",
	Movie:    "Movie",
	Command:  "Command",
}

func (t EventType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EventType(%d)", int(t))
}

// ParseType returns event type named <name> ignoring case
func ParseType(name string) (EventType, bool) {
	return lo.Find(Types, func(t EventType) bool {
		return strings.EqualFold(t.String(), name)
	})
}

// DefaultV4PlusOrder returns column order of ASS scripts
func DefaultV4PlusOrder() []EventFormat {
	return []EventFormat{Layer, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text}
}

// DefaultV4Order returns column order of SSA scripts
func DefaultV4Order() []EventFormat {
	return []EventFormat{Marked, Start, End, Style, Name, MarginL, MarginR, MarginV, Effect, Text}
}

// Event represents one event line
type Event struct {
	Type EventType
	record.Record[EventFormat]
}

// Clone returns deep copy of the event
func (e Event) Clone() *Event {
	return &Event{Type: e.Type, Record: e.Record.Clone()}
}

// String returns event line
func (e Event) String() string {
	return e.Type.String() + ": " + e.Record.String()
}

// Events represents events section: column order and events in script order
type Events struct {
	order  []EventFormat
	events []*Event
}

// New returns empty events section with column <order>
func New(order []EventFormat) *Events {
	return &Events{order: append([]EventFormat(nil), order...)}
}

// NewV4Plus returns empty events section with default V4+ order
func NewV4Plus() *Events {
	return New(DefaultV4PlusOrder())
}

// NewV4 returns empty events section with default V4 order
func NewV4() *Events {
	return New(DefaultV4Order())
}

// Order returns column order of the section
func (es *Events) Order() []EventFormat {
	return append([]EventFormat(nil), es.order...)
}

// NewEvent returns unset event of <eventType> shaped after section order
func (es *Events) NewEvent(eventType EventType) *Event {
	return &Event{Type: eventType, Record: record.New(es.order)}
}

// Push appends <event>
func (es *Events) Push(event *Event) {
	es.events = append(es.events, event)
}

// Get returns event at <idx>
func (es *Events) Get(idx int) (*Event, bool) {
	if idx < 0 || idx >= len(es.events) {
		return nil, false
	}
	return es.events[idx], true
}

// Remove deletes event at <idx> and returns it
func (es *Events) Remove(idx int) (*Event, bool) {
	event, ok := es.Get(idx)
	if !ok {
		return nil, false
	}
	es.events = append(es.events[:idx], es.events[idx+1:]...)
	return event, true
}

// Len returns amount of events
func (es *Events) Len() int {
	return len(es.events)
}

// Events returns events in script order
func (es *Events) Events() []*Event {
	return append([]*Event(nil), es.events...)
}

// Clear removes every event keeping the order
func (es *Events) Clear() {
	es.events = nil
}

// ParseLine appends event declared by <line>. It returns false if <line> is not a key: value line or repeats the
// Format line, and an error if its key is not an event type.
//
// The line is split into as many fields as the order has columns, the last one keeps any remaining commas.
func (es *Events) ParseLine(line string) (bool, error) {
	key, data, ok := parse.KeyValue(line, ":")
	if !ok {
		return false, nil
	}
	if strings.EqualFold(key, record.FormatKey) {
		return false, nil
	}
	eventType, ok := ParseType(key)
	if !ok {
		names := lo.Map(Types, func(t EventType, _ int) string { return t.String() })
		return false, parse.Error{Context: "event type", Message: fmt.Sprintf("invalid event type %q, expected one of %v",
			key, strings.Join(names, ", "))}
	}
	event := es.NewEvent(eventType)
	if len(es.order) > 0 {
		if err := event.Fill(strings.SplitN(data, ",", len(es.order))); err != nil {
			return true, errors.Wrapf(err, "Parse %v event", eventType)
		}
	}
	es.Push(event)
	return true, nil
}

// String returns section body: Format line followed by event lines
func (es *Events) String() string {
	var sb strings.Builder
	sb.WriteString(record.Header(es.order))
	sb.WriteString("\n")
	for _, event := range es.events {
		sb.WriteString(event.String() + "\n")
	}
	return sb.String()
}
