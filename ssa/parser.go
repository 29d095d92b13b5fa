package ssa

import (
	"strings"
	"unicode/utf8"

	"ssa_parser/events"
	"ssa_parser/scriptinfo"
	"ssa_parser/styles"
	"ssa_parser/util/logger"
	"ssa_parser/util/textenc"

	"github.com/sirupsen/logrus"
)

// Options tune the section driver
type Options struct {
	// DefaultVersion is used when the script declares none
	DefaultVersion scriptinfo.ScriptType
	// KeepUnknownSections feeds lines of unknown bracketed sections to the section read before instead of skipping them
	KeepUnknownSections bool
}

// DefaultOptions returns options reading V4+ scripts and skipping unknown sections
func DefaultOptions() Options {
	return Options{DefaultVersion: scriptinfo.V4Plus}
}

// Parse returns script read from UTF-8 <data> with default options
func Parse(data []byte) (*File, error) {
	return ParseWith(logger.NewSilent(), DefaultOptions(), data)
}

// ParseWith returns script read from UTF-8 <data>.
//
// Reading stops at the first bad line. Can return errors: ErrInvalidTextEncoding, LineError, MissingHeaderError.
func ParseWith(log *logrus.Logger, opts Options, data []byte) (*File, error) {
	data = textenc.StripBOM(data)
	if !utf8.Valid(data) {
		return nil, ErrInvalidTextEncoding
	}
	p := parser{log: log, opts: opts, lines: strings.Split(string(data), "\n")}
	return p.run()
}

// context represents section the driver currently reads
type context int

const (
	ctxNone context = iota
	ctxScriptInfo
	ctxStyles
	ctxEvents
	ctxFonts
	ctxGraphics
)

// parser holds state of one pass over script lines
type parser struct {
	log   *logrus.Logger
	opts  Options
	lines []string
	idx   int

	ctx         context
	section     string
	version     scriptinfo.ScriptType
	versionSeen bool

	info     *scriptinfo.ScriptInfo
	styles   *styles.V4Styles
	events   *events.Events
	fonts    attachments
	graphics attachments
}

// next returns the next non blank line and it's 1-based number
func (p *parser) next() (string, int, bool) {
	for p.idx < len(p.lines) {
		line := strings.TrimRight(p.lines[p.idx], "\r")
		p.idx++
		if strings.TrimSpace(line) != "" {
			return line, p.idx, true
		}
	}
	return "", 0, false
}

func (p *parser) run() (*File, error) {
	p.info = scriptinfo.New()
	p.fonts = attachments{key: fontKey}
	p.graphics = attachments{key: graphicKey}

	for {
		line, num, ok := p.next()
		if !ok {
			break
		}
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			if err := p.header(trimmed, num); err != nil {
				return nil, err
			}
			continue
		}
		if err := p.data(line, num); err != nil {
			return nil, err
		}
	}

	return p.file(), nil
}

// header switches context to section named by bracketed <line>
func (p *parser) header(line string, num int) error {
	name := strings.TrimSpace(strings.Trim(line, "[]"))
	p.log.Debugf("Line %v: entering [%v] section", num, name)

	switch strings.ToLower(name) {
	case "script info":
		p.switchTo(ctxScriptInfo, ScriptInfoSection)
	case "v4 styles":
		return p.stylesHeader(scriptinfo.V4, V4StylesSection)
	case "v4+ styles":
		return p.stylesHeader(scriptinfo.V4Plus, V4PlusStylesSection)
	case "events":
		return p.eventsHeader()
	case "fonts":
		p.switchTo(ctxFonts, FontsSection)
	case "graphics":
		p.switchTo(ctxGraphics, GraphicsSection)
	default:
		if p.opts.KeepUnknownSections {
			p.log.Warnf("Line %v: unknown section [%v], feeding its lines to [%v]", num, name, p.section)
			return nil
		}
		p.log.Warnf("Line %v: unknown section [%v], skipping it", num, name)
		p.switchTo(ctxNone, name)
	}
	return nil
}

func (p *parser) switchTo(ctx context, section string) {
	p.ctx = ctx
	p.section = section
}

// formatLine returns Format line following a tabular section header
func (p *parser) formatLine(section string) (string, int, error) {
	line, num, ok := p.next()
	if !ok {
		return "", 0, MissingHeaderError{Section: section}
	}
	p.log.Debugf("Line %v: [%v] columns: %v", num, section, strings.TrimSpace(line))
	return line, num, nil
}

func (p *parser) stylesHeader(version scriptinfo.ScriptType, section string) error {
	p.version = version
	p.versionSeen = true
	p.switchTo(ctxStyles, section)

	line, num, err := p.formatLine(section)
	if err != nil {
		return err
	}
	order, err := styles.ParseOrder(line)
	if err != nil {
		return LineError{Line: num, Section: section, Text: line, Err: err}
	}
	ss, err := styles.New(order)
	if err != nil {
		return LineError{Line: num, Section: section, Text: line, Err: err}
	}
	p.styles = ss
	return nil
}

func (p *parser) eventsHeader() error {
	p.switchTo(ctxEvents, EventsSection)

	line, num, err := p.formatLine(EventsSection)
	if err != nil {
		return err
	}
	order, err := events.ParseOrder(line)
	if err != nil {
		return LineError{Line: num, Section: EventsSection, Text: line, Err: err}
	}
	p.events = events.New(order)
	return nil
}

// data dispatches <line> to the reader of current section
func (p *parser) data(line string, num int) error {
	p.log.Tracef("Line %v: %v", num, line)

	var known bool
	var err error
	switch p.ctx {
	case ctxNone:
		return nil
	case ctxScriptInfo:
		known, err = p.info.ParseLine(line)
	case ctxStyles:
		known, err = p.styles.ParseLine(line)
	case ctxEvents:
		known, err = p.events.ParseLine(line)
	case ctxFonts:
		known = p.fonts.parseLine(line)
	case ctxGraphics:
		known = p.graphics.parseLine(line)
	}
	if err != nil {
		return LineError{Line: num, Section: p.section, Text: line, Err: err}
	}
	if !known {
		p.log.Debugf("Line %v: skipping unexpected line in [%v] section", num, p.section)
	}
	return nil
}

// file returns script assembled from read sections
func (p *parser) file() *File {
	if !p.versionSeen {
		p.version = p.opts.DefaultVersion
		if declared, ok := p.info.ScriptType(); ok {
			p.version = declared
		}
	}
	if _, ok := p.info.ScriptType(); !ok {
		p.info.SetScriptType(p.version)
	}

	defStyles, defEvents := defaultSections(p.version)
	if p.styles == nil {
		p.styles = defStyles
	}
	if p.events == nil {
		p.events = defEvents
	}

	return &File{
		Version:    p.version,
		ScriptInfo: p.info,
		Styles:     p.styles,
		Events:     p.events,
		Fonts:      p.fonts.list,
		Graphics:   p.graphics.list,
	}
}
