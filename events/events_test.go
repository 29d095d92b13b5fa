package events

import (
	"testing"
	"time"

	"ssa_parser/effect"
	"ssa_parser/record"
	"ssa_parser/timecode"
	"ssa_parser/util/parse"
	"ssa_parser/value"

	"github.com/stretchr/testify/assert"
)

func TestParseFormat(t *testing.T) {
	f, ok := ParseFormat("actor")
	assert.True(t, ok, "should accept Actor alias")
	assert.Exactly(t, Name, f, "should resolve alias to Name")

	f, ok = ParseFormat("MARGINV")
	assert.True(t, ok, "should ignore case")
	assert.Exactly(t, MarginV, f, "should return matching column")

	_, err := ParseOrder("Format: Layer, Start, Finish")
	var colErr record.UnknownColumnError
	assert.ErrorAs(t, err, &colErr, "should reject unknown column")
	assert.Exactly(t, "Finish", colErr.Column, "should report offending column")
	assert.Contains(t, colErr.Accepted, "Actor", "should list every accepted variant")

	_, err = ParseOrder("Layer, Start")
	assert.Error(t, err, "should require Format prefix")
}

func TestParseType(t *testing.T) {
	et, ok := ParseType("dialogue")
	assert.True(t, ok, "should ignore case")
	assert.Exactly(t, Dialogue, et, "should return matching type")

	_, ok = ParseType("Style")
	assert.False(t, ok, "should reject other keys")

	assert.Exactly(t, "Command", Command.String(), "should render type name")
}

func TestEventFormatValues(t *testing.T) {
	v, err := Start.ParseValue("0:00:01.50")
	assert.NoError(t, err, "should parse timecode")
	assert.True(t, value.Duration(1500*time.Millisecond).Equal(v), "should return duration")

	_, err = End.ParseValue("0:61:00.00")
	assert.ErrorIs(t, err, timecode.ErrMinuteRange, "should keep timecode range error")

	v, err = Effect.ParseValue("Scroll up;100;200;100")
	assert.NoError(t, err, "should parse effect")
	assert.True(t, value.Effect(effect.NewScrollUp(100, 200, 100)).Equal(v), "should return effect")

	v, err = Effect.ParseValue("Foo;bar")
	assert.NoError(t, err, "should never fail on effect")
	assert.True(t, value.Effect(effect.NewUnknown("Foo;bar")).Equal(v), "should keep unknown effect")

	v, err = Marked.ParseValue("Marked=1")
	assert.NoError(t, err, "should parse marked prefix")
	assert.True(t, value.Int(1).Equal(v), "should return marked number")
	assert.Exactly(t, "Marked=1", Marked.FormatValue(v), "should render marked prefix")

	v, err = Text.ParseValue(" {\\b1}Hi, there ")
	assert.NoError(t, err, "should keep text")
	assert.True(t, value.Text(" {\\b1}Hi, there ").Equal(v), "should not trim text")

	_, err = Layer.ParseValue("top")
	assert.Error(t, err, "should reject non numeric layer")

	assert.Exactly(t, "Default", Style.FormatValue(Style.DefaultValue()), "should default style name")
	assert.Exactly(t, "0:00:00.00", Start.FormatValue(Start.DefaultValue()), "should default to zero time")
	assert.Exactly(t, "", Effect.FormatValue(Effect.DefaultValue()), "should default to no effect")
}

func TestParseLine(t *testing.T) {
	es := NewV4Plus()

	ok, err := es.ParseLine("Dialogue: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,Hello, world, again")
	assert.True(t, ok, "should recognize dialogue line")
	assert.NoError(t, err, "should parse dialogue line")

	ok, err = es.ParseLine("comment: 1,0:00:03.00,0:00:04.00,Sign,Bob,10,10,10,Karaoke,note")
	assert.True(t, ok, "should recognize comment line in any case")
	assert.NoError(t, err, "should parse comment line")

	ok, err = es.ParseLine("Format: Layer")
	assert.False(t, ok, "should skip repeated Format line")
	assert.NoError(t, err, "should not fail on repeated Format line")

	ok, err = es.ParseLine("Dialog: 0,0:00:01.00,0:00:02.00,Default,,0,0,0,,typo")
	assert.False(t, ok, "should not recognize unknown event type")
	var typeErr parse.Error
	assert.ErrorAs(t, err, &typeErr, "should fail on unknown event type")
	assert.Exactly(t, "event type", typeErr.Context, "should name event type context")
	assert.Contains(t, typeErr.Message, `"Dialog"`, "should report unknown key")

	ok, err = es.ParseLine("Dialogue: 0,bad,0:00:02.00,Default,,0,0,0,,x")
	assert.True(t, ok, "should recognize broken dialogue line")
	assert.Error(t, err, "should fail on bad timecode")

	assert.Exactly(t, 2, es.Len(), "should keep only parsed events")

	first, _ := es.Get(0)
	assert.Exactly(t, Dialogue, first.Type, "should keep event type")
	text, _ := first.Get(Text)
	assert.True(t, value.Text("Hello, world, again").Equal(text), "should keep overflow commas in the last column")
	assert.Exactly(t, 10, len(first.Fields()), "should have as many fields as columns")

	second, _ := es.Get(1)
	eff, _ := second.Get(Effect)
	assert.True(t, value.Effect(effect.NewKaraoke()).Equal(eff), "should parse effect column")

	_, ok = es.Get(2)
	assert.False(t, ok, "should report out of range index")
}

func TestEvents(t *testing.T) {
	es := New([]EventFormat{Start, End, Text})
	e := es.NewEvent(Dialogue)
	e.Set(Text, value.Text("one"))
	es.Push(e)
	e2 := e.Clone()
	e2.Type = Comment
	e2.Set(Text, value.Text("two"))
	es.Push(e2)

	expected := "Format: Start, End, Text\n" +
		"Dialogue: 0:00:00.00,0:00:00.00,one\n" +
		"Comment: 0:00:00.00,0:00:00.00,two\n"
	assert.Exactly(t, expected, es.String(), "should render format and event lines with defaults")

	removed, ok := es.Remove(0)
	assert.True(t, ok, "should remove existing event")
	assert.Same(t, e, removed, "should return removed event")
	assert.Exactly(t, []*Event{e2}, es.Events(), "should keep other events")

	_, ok = es.Remove(5)
	assert.False(t, ok, "should report missing event")

	es.Clear()
	assert.Exactly(t, 0, es.Len(), "should remove every event")
	assert.Exactly(t, []EventFormat{Start, End, Text}, es.Order(), "should keep order on clear")

	assert.Exactly(t, Marked, NewV4().Order()[0], "should start V4 order with Marked")
	assert.Exactly(t, Layer, NewV4Plus().Order()[0], "should start V4+ order with Layer")
}
