package effect

import (
	"testing"

	"ssa_parser/util/parse"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	assert.Exactly(t, NewKaraoke(), Parse("Karaoke"), "should parse karaoke")
	assert.Exactly(t, NewKaraoke(), Parse("karaoke"), "should match keyword case insensitively")

	expected := NewScrollUp(100, 200, 100)
	assert.Exactly(t, expected, Parse("Scroll up;100;200;100"), "should parse scroll up without fade away height")
	assert.False(t, expected.HasFadeAwayHeight, "should not have fade away height")

	expected = NewScrollDown(200, 300, 100).WithFadeAwayHeight(20)
	assert.Exactly(t, expected, Parse("SCROLL DOWN;200;300;100;20"), "should parse scroll down with fade away height")

	expected = Effect{Kind: Banner, Delay: 100, LeftToRight: true, FadeAwayHeight: 50, HasFadeAwayHeight: true}
	assert.Exactly(t, expected, Parse("Banner;100;1;50"), "should parse banner")
	assert.False(t, Parse("Banner;100;0").LeftToRight, "should treat anything but 1 as right to left")
	assert.False(t, Parse("Banner;100;2").LeftToRight, "should treat anything but 1 as right to left")

	assert.Exactly(t, NewNone(), Parse(""), "should parse empty text as none")
	assert.Exactly(t, NewNone(), Parse("  "), "should parse blank text as none")
}

func TestParseUnknown(t *testing.T) {
	assert.Exactly(t, NewUnknown("Foo;bar"), Parse("Foo;bar"), "should keep unknown directive verbatim")
	assert.Exactly(t, NewUnknown("Scroll up;1;2"), Parse("Scroll up;1;2"), "should keep malformed scroll verbatim")
	assert.Exactly(t, NewUnknown("Scroll up;a;2;3"), Parse("Scroll up;a;2;3"), "should keep non numeric scroll verbatim")
	assert.Exactly(t, NewUnknown("Banner;x;1"), Parse("Banner;x;1"), "should keep non numeric banner verbatim")
	assert.Exactly(t, NewBanner(1, true).WithFadeAwayHeight(2), Parse("Banner;1;1;2;3"),
		"should ignore extra numeric banner fields")
	assert.Exactly(t, NewScrollUp(1, 2, 3).WithFadeAwayHeight(4), Parse("Scroll up;1;2;3;4;5;6"),
		"should ignore extra numeric scroll fields")
	assert.Exactly(t, NewUnknown("Banner;1;1;2;x"), Parse("Banner;1;1;2;x"), "should keep banner with non numeric extra")
}

func TestParseStrict(t *testing.T) {
	e, err := ParseStrict("Foo;bar")
	assert.NoError(t, err, "should not fail on unknown directive")
	assert.Exactly(t, NewUnknown("Foo;bar"), e, "should return unknown effect")

	var parseErr parse.Error
	_, err = ParseStrict("Scroll up;100;200")
	assert.True(t, errors.As(err, &parseErr), "should fail on too few scroll fields")
	assert.Exactly(t, "Scroll up effect", parseErr.Context, "should name the directive")

	e, err = ParseStrict("Scroll down;1;2;3;4;5")
	assert.NoError(t, err, "should not fail on extra numeric scroll fields")
	assert.Exactly(t, NewScrollDown(1, 2, 3).WithFadeAwayHeight(4), e, "should ignore extra numeric scroll fields")

	var extraErr parse.IntError
	_, err = ParseStrict("Scroll down;1;2;3;4;z")
	assert.True(t, errors.As(err, &extraErr), "should fail on non numeric extra scroll field")

	var intErr parse.IntError
	_, err = ParseStrict("Scroll down;1;2;3;x")
	assert.True(t, errors.As(err, &intErr), "should fail on non numeric fade away height")
	assert.Exactly(t, "x", intErr.Text, "should keep offending text")

	_, err = ParseStrict("Banner")
	assert.True(t, errors.As(err, &parseErr), "should fail on banner without delay")
}

func TestString(t *testing.T) {
	assert.Exactly(t, "", NewNone().String(), "none should be empty")
	assert.Exactly(t, "Foo;bar", NewUnknown("Foo;bar").String(), "unknown should keep raw text")
	assert.Exactly(t, "Karaoke", NewKaraoke().String())
	assert.Exactly(t, "Scroll up;100;200;100", NewScrollUp(100, 200, 100).String())
	assert.Exactly(t, "Scroll down;1;2;3;4", NewScrollDown(1, 2, 3).WithFadeAwayHeight(4).String())
	assert.Exactly(t, "Banner;100;1;50", NewBanner(100, true).WithFadeAwayHeight(50).String())
	assert.Exactly(t, "Banner;5;0", NewBanner(5, false).String())
}

func TestRoundTrip(t *testing.T) {
	for _, src := range []string{"Karaoke", "Scroll up;100;200;100", "Scroll down;0;480;5;30", "Banner;100;1;50",
		"Banner;3;0", "Foo;bar", "Scroll up;oops"} {
		assert.Exactly(t, src, Parse(src).String(), "should write %q back unchanged", src)
	}
}

func TestKindString(t *testing.T) {
	assert.Exactly(t, "Scroll down", ScrollDown.String())
	assert.Exactly(t, "Kind(42)", Kind(42).String(), "should format unknown kinds")
}
