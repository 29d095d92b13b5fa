package cli

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cockroachdb/errors"
	goFlags "github.com/jessevdk/go-flags"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// OutputFormat represents the way parsed scripts are printed
type OutputFormat string

const (
	// ASS prints scripts back in their own format
	ASS OutputFormat = "ass"
	// JSON prints document snapshot
	JSON OutputFormat = "json"
	// Table prints styles and events as tables
	Table OutputFormat = "table"
)

// Flags represents command line flags
type Flags struct {
	Version        bool         `short:"v" long:"version"        description:"Print the program version"`
	LogLevel       logrus.Level `short:"l" long:"logLevel"       description:"Logging level. Can be from 0 (least verbose) to 6 (most verbose)"`
	ProgramCfgPath string       `short:"c" long:"programCfgPath" description:"Program config file path to read from or initialize a default"`
	Format         OutputFormat `short:"f" long:"format"         description:"Output format" choice:"ass" choice:"json" choice:"table"`
	InPlace        bool         `short:"i" long:"inPlace"        description:"Rewrite local input scripts instead of printing them"`
	Output         string       `short:"o" long:"output"         description:"File path to write the result to. Only for a single input"`
	Args           struct {
		Inputs []string `positional-arg-name:"input" description:"Script to read. Can be a local file or URL"`
	} `positional-args:"yes"`
}

// ConflictError represents error thrown if given flags can not be used together
type ConflictError struct {
	Reason string
}

// Error is used to satisfy golang error interface
func (e ConflictError) Error() string {
	return e.Reason
}

// Parse returns a structure initialized with command line arguments and error if parsing failed
func Parse() (Flags, error) {
	flags := Flags{
		// Set defaults
		LogLevel:       logrus.InfoLevel,
		ProgramCfgPath: "ssa_parser.yaml",
		Format:         ASS,
	}
	parser := goFlags.NewParser(&flags, goFlags.Options(goFlags.Default))
	if _, err := parser.Parse(); err != nil {
		return flags, errors.Wrap(err, "Parse CLI arguments")
	}
	return flags, errors.Wrap(flags.check(), "Check CLI arguments")
}

// check returns ConflictError if flags can not be used together
func (f Flags) check() error {
	if f.Output != "" && len(f.Args.Inputs) > 1 {
		return ConflictError{Reason: "Output path can be set only for a single input"}
	}
	if f.Output != "" && f.InPlace {
		return ConflictError{Reason: "Output path can not be set together with in place rewrite"}
	}
	if f.InPlace && f.Format != ASS {
		return ConflictError{Reason: "In place rewrite is supported only for ass format"}
	}
	if remote, found := lo.Find(f.Args.Inputs, IsURL); found && f.InPlace {
		return ConflictError{Reason: fmt.Sprintf("In place rewrite is supported only for local files, got %v", remote)}
	}
	return nil
}

// IsURL returns true if <input> is a HTTP or HTTPS address rather than a local path
func IsURL(input string) bool {
	u, err := url.Parse(input)
	if err != nil {
		return false
	}
	return lo.Contains([]string{"http", "https"}, strings.ToLower(u.Scheme)) && u.Host != ""
}

// IsErrOfType returns true if <err> is of type <t>
func IsErrOfType(err error, t goFlags.ErrorType) bool {
	goFlagsErr := &goFlags.Error{}
	if ok := errors.As(err, &goFlagsErr); ok && goFlagsErr.Type == t {
		return true
	}
	return false
}
