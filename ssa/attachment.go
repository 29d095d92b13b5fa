package ssa

import (
	"strings"

	"ssa_parser/util/parse"
)

// Attachment represents embedded font or picture: it's name and encoded data lines
type Attachment struct {
	Name string
	Data []string
}

// attachments collects Fonts or Graphics section lines. Each <key> line starts a new attachment.
type attachments struct {
	key  string
	list []Attachment
}

// parseLine adds <line> to the current attachment. It returns false if no attachment is started yet.
func (a *attachments) parseLine(line string) bool {
	if name, ok := parse.StripKey(line, a.key, ":"); ok {
		a.list = append(a.list, Attachment{Name: name})
		return true
	}
	if len(a.list) == 0 {
		return false
	}
	last := &a.list[len(a.list)-1]
	last.Data = append(last.Data, strings.TrimSpace(line))
	return true
}

// writeAttachments writes <list> lines using <key> as name prefix
func writeAttachments(sb *strings.Builder, key string, list []Attachment) {
	for _, a := range list {
		sb.WriteString(key + ": " + a.Name + "\n")
		for _, line := range a.Data {
			sb.WriteString(line + "\n")
		}
	}
}
