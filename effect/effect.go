// Package effect implements the karaoke, scroll and banner directives of the event Effect field.
package effect

import (
	"fmt"
	"strconv"
	"strings"

	"ssa_parser/util/parse"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Kind represents effect variant
type Kind int

const (
	None Kind = iota
	Unknown
	Karaoke
	ScrollUp
	ScrollDown
	Banner
)

// keywords maps lowercase directive names to effect kinds
var keywords = map[string]Kind{
	"karaoke":     Karaoke,
	"scroll up":   ScrollUp,
	"scroll down": ScrollDown,
	"banner":      Banner,
}

// String returns directive name of the kind
func (k Kind) String() string {
	switch k {
	case None:
		return "None"
	case Unknown:
		return "Unknown"
	case Karaoke:
		return "Karaoke"
	case ScrollUp:
		return "Scroll up"
	case ScrollDown:
		return "Scroll down"
	case Banner:
		return "Banner"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Effect represents parsed Effect field.
//
// Fields not used by the Kind are left zero, so effects are comparable with ==.
type Effect struct {
	Kind Kind
	// Raw is the original text of an Unknown effect
	Raw string
	// Y1 and Y2 bound the scrolling region of ScrollUp and ScrollDown
	Y1 int
	Y2 int
	// Delay slows scrolling and banner movement down, in 1/1000ths of a second per pixel
	Delay       int
	LeftToRight bool
	// FadeAwayHeight is only meaningful if HasFadeAwayHeight is true
	FadeAwayHeight    int
	HasFadeAwayHeight bool
}

// NewNone returns empty effect
func NewNone() Effect {
	return Effect{Kind: None}
}

// NewUnknown returns effect which keeps unrecognized <raw> text
func NewUnknown(raw string) Effect {
	return Effect{Kind: Unknown, Raw: raw}
}

// NewKaraoke returns karaoke effect
func NewKaraoke() Effect {
	return Effect{Kind: Karaoke}
}

// NewScrollUp returns scroll up effect between <y1> and <y2>
func NewScrollUp(y1, y2, delay int) Effect {
	return Effect{Kind: ScrollUp, Y1: y1, Y2: y2, Delay: delay}
}

// NewScrollDown returns scroll down effect between <y1> and <y2>
func NewScrollDown(y1, y2, delay int) Effect {
	return Effect{Kind: ScrollDown, Y1: y1, Y2: y2, Delay: delay}
}

// NewBanner returns banner effect
func NewBanner(delay int, leftToRight bool) Effect {
	return Effect{Kind: Banner, Delay: delay, LeftToRight: leftToRight}
}

// WithFadeAwayHeight returns copy of <e> with fade away height set to <height>
func (e Effect) WithFadeAwayHeight(height int) Effect {
	e.FadeAwayHeight = height
	e.HasFadeAwayHeight = true
	return e
}

// String returns text encoding of the effect
func (e Effect) String() string {
	var sb strings.Builder
	switch e.Kind {
	case None:
		return ""
	case Unknown:
		return e.Raw
	case Karaoke:
		return "Karaoke"
	case ScrollUp, ScrollDown:
		fmt.Fprintf(&sb, "%v;%d;%d;%d", e.Kind, e.Y1, e.Y2, e.Delay)
	case Banner:
		fmt.Fprintf(&sb, "%v;%d;%d", e.Kind, e.Delay, lo.Ternary(e.LeftToRight, 1, 0))
	}
	if e.HasFadeAwayHeight {
		fmt.Fprintf(&sb, ";%d", e.FadeAwayHeight)
	}
	return sb.String()
}

// Parse returns effect encoded in <src>.
//
// It never fails: blank text is None, and text that is not a well formed directive is kept verbatim as Unknown so it
// is written back unchanged.
func Parse(src string) Effect {
	if strings.TrimSpace(src) == "" {
		return NewNone()
	}
	e, err := ParseStrict(src)
	if err != nil {
		return NewUnknown(src)
	}
	return e
}

// ParseStrict returns effect encoded in <src> and error if a known directive is malformed.
//
// Unrecognized directives are still returned as Unknown without error.
func ParseStrict(src string) (Effect, error) {
	if strings.TrimSpace(src) == "" {
		return NewNone(), nil
	}
	parts := strings.Split(src, ";")
	kind, ok := keywords[strings.ToLower(strings.TrimSpace(parts[0]))]
	if !ok {
		return NewUnknown(src), nil
	}
	switch kind {
	case ScrollUp, ScrollDown:
		return parseScroll(kind, parts)
	case Banner:
		return parseBanner(parts)
	}
	return NewKaraoke(), nil
}

// parseScroll returns scroll effect of <kind> from semicolon separated <parts>.
//
// Numeric parts after fadeawayheight are ignored.
func parseScroll(kind Kind, parts []string) (Effect, error) {
	if len(parts) < 4 {
		return Effect{}, syntaxError(kind, "expected y1;y2;delay[;fadeawayheight]")
	}
	nums, err := ints(kind, parts[1:])
	if err != nil {
		return Effect{}, err
	}
	e := Effect{Kind: kind, Y1: nums[0], Y2: nums[1], Delay: nums[2]}
	if len(nums) > 3 {
		e = e.WithFadeAwayHeight(nums[3])
	}
	return e, nil
}

// parseBanner returns banner effect from semicolon separated <parts>.
//
// Numeric parts after fadeawayheight are ignored.
func parseBanner(parts []string) (Effect, error) {
	if len(parts) < 3 {
		return Effect{}, syntaxError(Banner, "expected delay;lefttoright[;fadeawayheight]")
	}
	nums, err := ints(Banner, parts[1:])
	if err != nil {
		return Effect{}, err
	}
	e := NewBanner(nums[0], nums[1] == 1)
	if len(nums) > 2 {
		e = e.WithFadeAwayHeight(nums[2])
	}
	return e, nil
}

// ints returns every element of <parts> parsed as integer
func ints(kind Kind, parts []string) ([]int, error) {
	out := make([]int, 0, len(parts))
	for _, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, errors.Wrapf(parse.IntError{Text: part, Err: err}, "Parse %v effect", kind)
		}
		out = append(out, n)
	}
	return out, nil
}

// syntaxError returns parse error for malformed effect of <kind>
func syntaxError(kind Kind, msg string) error {
	return parse.Error{Context: kind.String() + " effect", Message: msg}
}
