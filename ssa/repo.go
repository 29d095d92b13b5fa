package ssa

import (
	"io"
	"os"
	"strings"

	"ssa_parser/cfg"
	"ssa_parser/util/file"
	"ssa_parser/util/network"
	"ssa_parser/util/textenc"

	"github.com/cockroachdb/errors"
	"github.com/sirupsen/logrus"
	"github.com/utahta/go-openuri"
)

// repo represents dependencies holder for this package
type repo struct {
	log *logrus.Logger
	cfg cfg.Root
}

// NewRepo returns new dependencies holder for this package
func NewRepo(log *logrus.Logger, cfg cfg.Root) repo {
	return repo{log: log, cfg: cfg}
}

// Log used to satisfy deps.Global interface
func (r repo) Log() *logrus.Logger {
	return r.log
}

// Cfg used to satisfy deps.Global interface
func (r repo) Cfg() cfg.Root {
	return r.cfg
}

// Options returns section driver options taken from config
func (r repo) Options() Options {
	return Options{
		DefaultVersion:      r.cfg.Parse.DefaultVersion,
		KeepUnknownSections: r.cfg.Parse.UnknownSections == cfg.Keep,
	}
}

// Parse returns script read from <data> encoded in configured charset
func (r repo) Parse(data []byte) (*File, error) {
	data, err := textenc.Decode(textenc.StripBOM(data), r.cfg.Parse.Charset)
	if err != nil {
		return nil, errors.Wrap(err, "Decode script")
	}
	return ParseWith(r.log, r.Options(), data)
}

// Open returns script read from <input>. It can be a local file or URL.
func (r repo) Open(input string) (*File, error) {
	r.log.Debugf("Opening %v", input)
	httpClient := network.NewHttpClient(r.cfg.Input.InsecureTLS, r.cfg.Input.RespTimeout)
	rc, err := openuri.Open(input, openuri.WithHTTPClient(httpClient))
	if err != nil {
		if errType := network.GetErrType(err); errType != network.Unknown {
			r.log.Debugf("Network error of %v: %v", input, errType)
		}
		return nil, errors.Wrapf(err, "Open script %v", input)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, errors.Wrapf(err, "Read script %v", input)
	}
	f, err := r.Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "Parse script %v", input)
	}
	return f, nil
}

// Render returns script text with configured line endings
func (r repo) Render(f *File) string {
	text := f.String()
	if r.cfg.Output.CRLF {
		text = strings.ReplaceAll(text, "\n", "\r\n")
	}
	return text
}

// Save writes <f> to <path>. Existing file is copied to <path>.bak first if backups are enabled.
func (r repo) Save(f *File, path string) error {
	if r.cfg.Output.Backup {
		if _, err := os.Stat(path); err == nil {
			r.log.Debugf("Backing up %v", path)
			if err := file.Copy(path, path+".bak"); err != nil {
				return errors.Wrap(err, "Back up script")
			}
		}
	}
	if err := os.WriteFile(path, []byte(r.Render(f)), 0644); err != nil {
		return errors.Wrapf(err, "Write script %v", path)
	}
	return nil
}
