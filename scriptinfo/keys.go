package scriptinfo

import (
	"fmt"
	"strings"

	"ssa_parser/util/parse"

	"github.com/samber/lo"
)

// Key is the name of a well known Script Info property
type Key string

const (
	KeyComment               Key = ";"
	KeyTitle                 Key = "Title"
	KeyOriginalScript        Key = "Original Script"
	KeyOriginalTranslation   Key = "Original Translation"
	KeyOriginalEditing       Key = "Original Editing"
	KeyOriginalTiming        Key = "Original Timing"
	KeySynchPoint            Key = "Synch Point"
	KeyScriptUpdatedBy       Key = "Script Updated By"
	KeyUpdateDetails         Key = "Update Details"
	KeyScriptType            Key = "ScriptType"
	KeyCollisions            Key = "Collisions"
	KeyPlayResX              Key = "PlayResX"
	KeyPlayResY              Key = "PlayResY"
	KeyPlayDepth             Key = "PlayDepth"
	KeyTimer                 Key = "Timer"
	KeyWrapStyle             Key = "WrapStyle"
	KeyScaledBorderAndShadow Key = "ScaledBorderAndShadow"
	KeyLayoutResX            Key = "LayoutResX"
	KeyLayoutResY            Key = "LayoutResY"
	KeyYCbCrMatrix           Key = "YCbCr Matrix"
)

// Keys lists every well known property except comments
var Keys = []Key{
	KeyTitle, KeyOriginalScript, KeyOriginalTranslation, KeyOriginalEditing, KeyOriginalTiming, KeySynchPoint,
	KeyScriptUpdatedBy, KeyUpdateDetails, KeyScriptType, KeyCollisions, KeyPlayResX, KeyPlayResY, KeyPlayDepth,
	KeyTimer, KeyWrapStyle, KeyScaledBorderAndShadow, KeyLayoutResX, KeyLayoutResY, KeyYCbCrMatrix,
}

// ParseKey returns well known key named <name> ignoring case
func ParseKey(name string) (Key, bool) {
	return lo.Find(Keys, func(k Key) bool {
		return strings.EqualFold(string(k), name)
	})
}

// ScriptType is the SSA format version of a script
type ScriptType int

const (
	V4 ScriptType = iota
	V4Plus
)

// String returns ScriptType property text of the version
func (t ScriptType) String() string {
	switch t {
	case V4:
		return "v4.00"
	case V4Plus:
		return "v4.00+"
	}
	return fmt.Sprintf("ScriptType(%d)", int(t))
}

// UnknownVersionError represents ScriptType text naming no supported version
type UnknownVersionError struct {
	Text string
}

func (e UnknownVersionError) Error() string {
	return fmt.Sprintf("unknown script format version %q, expected %v or %v", e.Text, V4, V4Plus)
}

// ParseScriptType returns version named by <text> ignoring case
func ParseScriptType(text string) (ScriptType, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "v4.00":
		return V4, nil
	case "v4.00+":
		return V4Plus, nil
	}
	return 0, UnknownVersionError{Text: text}
}

// Collisions tells how subtitles are moved to prevent collisions
type Collisions int

const (
	Normal Collisions = iota
	Reverse
)

func (c Collisions) String() string {
	switch c {
	case Normal:
		return "Normal"
	case Reverse:
		return "Reverse"
	}
	return fmt.Sprintf("Collisions(%d)", int(c))
}

// ParseCollisions returns collisions mode named by <text> ignoring case
func ParseCollisions(text string) (Collisions, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "normal":
		return Normal, nil
	case "reverse":
		return Reverse, nil
	}
	return 0, parse.Error{Context: string(KeyCollisions), Message: fmt.Sprintf("expected %v or %v, got %q", Normal,
		Reverse, text)}
}

// parseYesNo returns true if <text> is yes in any case, false otherwise
func parseYesNo(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), "yes")
}

// formatYesNo returns yes or no text of <b>
func formatYesNo(b bool) string {
	return lo.Ternary(b, "yes", "no")
}
