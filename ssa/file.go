// Package ssa reads and writes SubStation Alpha (.ssa) and Advanced SubStation Alpha (.ass) scripts
package ssa

import (
	"io"
	"strings"

	"ssa_parser/events"
	"ssa_parser/scriptinfo"
	"ssa_parser/styles"

	"github.com/cockroachdb/errors"
)

// Section names as written in bracketed headers
const (
	ScriptInfoSection   = "Script Info"
	V4StylesSection     = "V4 Styles"
	V4PlusStylesSection = "V4+ Styles"
	EventsSection       = "Events"
	FontsSection        = "Fonts"
	GraphicsSection     = "Graphics"
)

// Name keys of attachment lines
const (
	fontKey    = "fontname"
	graphicKey = "filename"
)

// File represents a whole script
type File struct {
	Version    scriptinfo.ScriptType
	ScriptInfo *scriptinfo.ScriptInfo
	Styles     *styles.V4Styles
	Events     *events.Events
	Fonts      []Attachment
	Graphics   []Attachment
}

// New returns empty script of <version> with default column orders and ScriptType set
func New(version scriptinfo.ScriptType) *File {
	f := &File{
		Version:    version,
		ScriptInfo: scriptinfo.New(),
	}
	f.ScriptInfo.SetScriptType(version)
	f.Styles, f.Events = defaultSections(version)
	return f
}

// defaultSections returns empty styles and events sections with default orders of <version>
func defaultSections(version scriptinfo.ScriptType) (*styles.V4Styles, *events.Events) {
	if version == scriptinfo.V4 {
		return styles.NewV4(), events.NewV4()
	}
	return styles.NewV4Plus(), events.NewV4Plus()
}

// StylesSection returns styles section name of <version>
func StylesSection(version scriptinfo.ScriptType) string {
	if version == scriptinfo.V4 {
		return V4StylesSection
	}
	return V4PlusStylesSection
}

// FontNames returns names of embedded fonts
func (f *File) FontNames() []string {
	return attachmentNames(f.Fonts)
}

// GraphicNames returns names of embedded pictures
func (f *File) GraphicNames() []string {
	return attachmentNames(f.Graphics)
}

func attachmentNames(list []Attachment) []string {
	var names []string
	for _, a := range list {
		names = append(names, a.Name)
	}
	return names
}

// String returns script text with LF line endings
func (f *File) String() string {
	var sb strings.Builder
	sb.WriteString("[" + ScriptInfoSection + "]\n")
	sb.WriteString(f.ScriptInfo.String())
	sb.WriteString("\n[" + StylesSection(f.Version) + "]\n")
	sb.WriteString(f.Styles.String())
	sb.WriteString("\n[" + EventsSection + "]\n")
	sb.WriteString(f.Events.String())
	if len(f.Fonts) > 0 {
		sb.WriteString("\n[" + FontsSection + "]\n")
		writeAttachments(&sb, fontKey, f.Fonts)
	}
	if len(f.Graphics) > 0 {
		sb.WriteString("\n[" + GraphicsSection + "]\n")
		writeAttachments(&sb, graphicKey, f.Graphics)
	}
	return sb.String()
}

// WriteTo writes script text to <w>
func (f *File) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, f.String())
	return int64(n), errors.Wrap(err, "Write script")
}
