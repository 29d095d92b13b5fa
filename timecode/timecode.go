// Package timecode converts between durations and the H:MM:SS.cc text form used by Start and End event fields.
//
// The fractional part is a decimal fraction of a second: ".88" is 880 ms and ".123" is 123 ms. Format prints
// centiseconds when the duration is a whole number of them and milliseconds otherwise, so Parse(Format(d)) == d for
// every non-negative millisecond-aligned duration.
package timecode

import (
	"fmt"
	"strings"
	"time"

	"ssa_parser/util/parse"

	"github.com/cockroachdb/errors"
)

var (
	ErrHourRange     = errors.New("hour out of range [0, 24)")
	ErrMinuteRange   = errors.New("minute out of range [0, 60)")
	ErrSecondRange   = errors.New("second out of range [0, 60)")
	ErrFractionRange = errors.New("fraction out of range [0, 1000) ms")
)

// Max is the longest duration a timecode can hold
const Max = 24*time.Hour - time.Millisecond

// maxFractionDigits is the amount of fraction digits resolvable at millisecond precision
const maxFractionDigits = 3

// Parse returns duration represented by <src> in H:MM:SS.cc form
func Parse(src string) (time.Duration, error) {
	src = strings.TrimSpace(src)
	clock, fraction, found := strings.Cut(src, ".")
	if !found || strings.Contains(fraction, ".") {
		return 0, parse.Error{Context: "timecode", Message: fmt.Sprintf("invalid format %q, expected H:MM:SS.cc", src)}
	}
	parts := strings.Split(clock, ":")
	if len(parts) != 3 {
		return 0, parse.Error{Context: "timecode", Message: fmt.Sprintf("invalid format %q, expected H:MM:SS.cc", src)}
	}

	h, err := parse.Int(parts[0])
	if err != nil {
		return 0, errors.Wrap(err, "Parse hours")
	}
	if h < 0 || h >= 24 {
		return 0, errors.Wrapf(ErrHourRange, "%q", src)
	}
	m, err := parse.Int(parts[1])
	if err != nil {
		return 0, errors.Wrap(err, "Parse minutes")
	}
	if m < 0 || m >= 60 {
		return 0, errors.Wrapf(ErrMinuteRange, "%q", src)
	}
	s, err := parse.Int(parts[2])
	if err != nil {
		return 0, errors.Wrap(err, "Parse seconds")
	}
	if s < 0 || s >= 60 {
		return 0, errors.Wrapf(ErrSecondRange, "%q", src)
	}
	ms, err := fractionMillis(fraction)
	if err != nil {
		return 0, errors.Wrapf(err, "%q", src)
	}

	total := h*3_600_000 + m*60_000 + s*1_000 + ms
	return time.Duration(total) * time.Millisecond, nil
}

// fractionMillis returns milliseconds represented by decimal <fraction> digits
func fractionMillis(fraction string) (int64, error) {
	if fraction == "" || strings.Trim(fraction, "0123456789") != "" {
		return 0, parse.Error{Context: "timecode fraction", Message: fmt.Sprintf("expected digits, got %q", fraction)}
	}
	if len(fraction) > maxFractionDigits {
		return 0, ErrFractionRange
	}
	ms, err := parse.Int(fraction)
	if err != nil {
		return 0, errors.Wrap(err, "Parse fraction")
	}
	for i := len(fraction); i < maxFractionDigits; i++ {
		ms *= 10
	}
	return ms, nil
}

// Format returns <d> in H:MM:SS.cc form, truncated to milliseconds.
//
// <d> is clamped to [0, Max], so the result always parses back.
func Format(d time.Duration) string {
	total := min(max(d.Milliseconds(), 0), Max.Milliseconds())
	hours := total / 3_600_000
	minutes := (total % 3_600_000) / 60_000
	seconds := (total % 60_000) / 1_000
	millis := total % 1_000
	if millis%10 == 0 {
		return fmt.Sprintf("%d:%02d:%02d.%02d", hours, minutes, seconds, millis/10)
	}
	return fmt.Sprintf("%d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
