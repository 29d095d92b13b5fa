package cfg

import (
	_ "embed"
	"fmt"
	"io/fs"
	"os"
	"reflect"
	"strings"
	"time"

	"ssa_parser/scriptinfo"
	"ssa_parser/util/textenc"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

//go:embed default.yaml
var defCfgBytes []byte

// Root represents root settings of the program
type Root struct {
	Input  Input  `koanf:"input"`
	Parse  Parse  `koanf:"parse"`
	Output Output `koanf:"output"`
}

// Input represents script fetching settings
type Input struct {
	// RespTimeout is a time limit for requests fetching scripts by URL
	RespTimeout time.Duration `koanf:"resp_timeout"`

	// InsecureTLS disables certificate verification of HTTPS inputs
	InsecureTLS bool `koanf:"insecure_tls"`
}

// Parse represents script reading settings
type Parse struct {
	// DefaultVersion is the format version used when a script declares none
	DefaultVersion scriptinfo.ScriptType `koanf:"default_version"`

	// UnknownSections tells what to do with lines of unknown bracketed sections
	UnknownSections UnknownSections `koanf:"unknown_sections"`

	// Charset of input scripts. Empty means strict UTF-8.
	Charset string `koanf:"charset"`
}

// Output represents script writing settings
type Output struct {
	// CRLF specifies if lines should end with CRLF instead of LF
	CRLF bool `koanf:"crlf"`

	// Backup specifies if the original script should be copied to <path>.bak before rewriting it in place
	Backup bool `koanf:"backup"`

	// Workers is the amount of scripts processed at the same time
	Workers int `koanf:"workers"`
}

// UnknownSections represents policy for lines of unknown bracketed sections
type UnknownSections string

const (
	// Skip ignores lines until the next known section
	Skip UnknownSections = "skip"
	// Keep feeds lines to the section read before
	Keep UnknownSections = "keep"
)

// DamagedConfigError represents error thrown if program config is missing fields
type DamagedConfigError struct {
	MissingFields []string
}

// Error is used to satisfy golang error interface
func (e DamagedConfigError) Error() string {
	msg := "Existing program config is missing fields. Create new config or add missing fields manually"
	return fmt.Sprintf("%v: %v", msg, strings.Join(e.MissingFields, ", "))
}

// BadValueError represents error thrown if program config field has invalid value
type BadValueError struct {
	Field  string
	Value  any
	Reason string
}

// Error is used to satisfy golang error interface
func (e BadValueError) Error() string {
	return fmt.Sprintf("%v; Field: %v, value: %v", e.Reason, e.Field, e.Value)
}

// Init returns config instance and false if config at <cfgFilePath> already exist.
//
// If config does not exist, creates a default, returns default instance and true.
//
// Can return errors defined in this package: DamagedConfigError, BadValueError.
func Init(log *logrus.Logger, cfgFilePath string) (Root, bool, error) {
	log.Info("Reading program config")

	ko := koanf.New(".")

	loadConfig := func() error {
		return ko.Load(file.Provider(cfgFilePath), yaml.Parser())
	}

	writeDefConfig := func() error {
		return os.WriteFile(cfgFilePath, defCfgBytes, 0644)
	}

	// Load config file into koanf or create a new if not exist
	var root Root
	if err := loadConfig(); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Info("Config file not found, creating a default")
			if err := writeDefConfig(); err != nil {
				return root, false, errors.Wrap(err, "Write default config")
			}
			return NewDefCfg(), true, nil
		} else {
			return root, false, errors.Wrap(err, "Load config")
		}
	}

	// Decode loaded config file into structure
	decoder := mapstructure.ComposeDecodeHookFunc(
		// Parse script format versions
		func(from, to reflect.Type, fromData any) (any, error) {
			if to == reflect.TypeOf(scriptinfo.ScriptType(0)) && from.Kind() == reflect.String {
				return scriptinfo.ParseScriptType(reflect.ValueOf(fromData).String())
			}
			return fromData, nil
		},
		// Default decoders
		mapstructure.StringToTimeDurationHookFunc(),
	)
	metadata := mapstructure.Metadata{}
	err := ko.UnmarshalWithConf("", &root, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			DecodeHook:           decoder,
			ErrorUnused:          true,
			IgnoreUntaggedFields: true,
			Metadata:             &metadata,
			Result:               &root,
			WeaklyTypedInput:     true,
			ZeroFields:           true,
		},
	})
	if err != nil {
		return root, false, errors.Wrap(err, "Decode config")
	}

	// Check if config is damaged
	if len(metadata.Unset) > 0 {
		return root, false, DamagedConfigError{MissingFields: lo.Uniq(metadata.Unset)}
	}

	if err := root.Validate(); err != nil {
		return root, false, errors.Wrap(err, "Validate config")
	}

	return root, false, nil
}

// Validate returns BadValueError if any field of <r> has invalid value
func (r Root) Validate() error {
	if !lo.Contains([]UnknownSections{Skip, Keep}, r.Parse.UnknownSections) {
		return BadValueError{Field: "parse.unknown_sections", Value: r.Parse.UnknownSections,
			Reason: fmt.Sprintf("Expecting '%v' or '%v'", Skip, Keep)}
	}
	if !textenc.Valid(r.Parse.Charset) {
		return BadValueError{Field: "parse.charset", Value: r.Parse.Charset, Reason: "Unknown charset"}
	}
	if r.Input.RespTimeout <= 0 {
		return BadValueError{Field: "input.resp_timeout", Value: r.Input.RespTimeout, Reason: "Expecting positive duration"}
	}
	if r.Output.Workers < 1 {
		return BadValueError{Field: "output.workers", Value: r.Output.Workers, Reason: "Expecting at least 1 worker"}
	}
	return nil
}

// NewDefCfg returns default config as written in "default.yaml" file
func NewDefCfg() Root {
	return Root{
		Input: Input{
			RespTimeout: time.Second * 10,
			InsecureTLS: false,
		},
		Parse: Parse{
			DefaultVersion:  scriptinfo.V4Plus,
			UnknownSections: Skip,
			Charset:         "",
		},
		Output: Output{
			CRLF:    false,
			Backup:  true,
			Workers: 4,
		},
	}
}
