package cli

import (
	"os"
	"testing"

	goFlags "github.com/jessevdk/go-flags"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	os.Args = []string{""}
	flags, err := Parse()
	assert.NoError(t, err, "should not return error")
	assert.Exactly(t, ASS, flags.Format, "should default to ass format")
	assert.Exactly(t, "ssa_parser.yaml", flags.ProgramCfgPath, "should have default config path")

	os.Args = []string{"", "--help"}
	_, err = Parse()
	assert.True(t, IsErrOfType(err, goFlags.ErrHelp), "should return help error")

	os.Args = []string{"", "--version"}
	flags, err = Parse()
	assert.NoError(t, err, "should not return error")
	assert.True(t, flags.Version, "flag should be specified")

	os.Args = []string{"", "--logLevel=-1"}
	_, err = Parse()
	assert.Error(t, err, "should return error for negative log level")
	assert.True(t, IsErrOfType(err, goFlags.ErrMarshal), "should return marshal error")

	os.Args = []string{"", "--logLevel=5"}
	flags, err = Parse()
	assert.NoError(t, err, "should not return error")
	assert.Exactly(t, logrus.DebugLevel, flags.LogLevel, "flag should have this value")

	os.Args = []string{"", "--format=xml"}
	_, err = Parse()
	assert.True(t, IsErrOfType(err, goFlags.ErrInvalidChoice), "should reject unknown format")

	os.Args = []string{"", "--programCfgPath=/cfg/path", "--format=json", "a.ass", "https://example.com/b.ssa"}
	flags, err = Parse()
	assert.NoError(t, err, "should not return error")
	assert.Exactly(t, "/cfg/path", flags.ProgramCfgPath, "flag should have this value")
	assert.Exactly(t, JSON, flags.Format, "flag should have this value")
	assert.Exactly(t, []string{"a.ass", "https://example.com/b.ssa"}, flags.Args.Inputs, "should collect inputs")

	os.Args = []string{"", "-i", "a.ass"}
	flags, err = Parse()
	assert.NoError(t, err, "should not return error")
	assert.True(t, flags.InPlace, "flag should be specified")
}

func TestParseConflicts(t *testing.T) {
	var conflictErr ConflictError

	os.Args = []string{"", "--output=out.ass", "a.ass", "b.ass"}
	_, err := Parse()
	assert.ErrorAs(t, err, &conflictErr, "should reject output path for several inputs")

	os.Args = []string{"", "--output=out.ass", "--inPlace", "a.ass"}
	_, err = Parse()
	assert.ErrorAs(t, err, &conflictErr, "should reject output path with in place rewrite")

	os.Args = []string{"", "--format=table", "--inPlace", "a.ass"}
	_, err = Parse()
	assert.ErrorAs(t, err, &conflictErr, "should reject in place rewrite of table format")

	os.Args = []string{"", "--inPlace", "a.ass", "https://example.com/b.ass"}
	_, err = Parse()
	assert.ErrorAs(t, err, &conflictErr, "should reject in place rewrite of URL input")
	assert.Contains(t, conflictErr.Reason, "https://example.com/b.ass", "should name URL input")

	os.Args = []string{"", "--inPlace", "a.ass", `C:\subs\b.ass`}
	_, err = Parse()
	assert.NoError(t, err, "should accept in place rewrite of local files")

	os.Args = []string{"", "--output=out.ass", "a.ass"}
	flags, err := Parse()
	assert.NoError(t, err, "should accept output path for a single input")
	assert.Exactly(t, "out.ass", flags.Output, "flag should have this value")
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://example.com/a.ass"), "should detect HTTPS address")
	assert.True(t, IsURL("HTTP://example.com/a.ass"), "should detect HTTP address in any case")
	assert.False(t, IsURL("subs/a.ass"), "should not treat relative path as URL")
	assert.False(t, IsURL("/home/user/a.ass"), "should not treat absolute path as URL")
	assert.False(t, IsURL(`C:\subs\a.ass`), "should not treat windows path as URL")
	assert.False(t, IsURL("ftp://example.com/a.ass"), "should not treat unsupported scheme as URL")
}
