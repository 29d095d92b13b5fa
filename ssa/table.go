package ssa

import (
	"ssa_parser/util/tw"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/samber/lo"
)

// WriteTables renders Script Info, styles and events of <f> as tables to <w>
func (r repo) WriteTables(w tw.Writer, f *File) {
	w.SetTitle(ScriptInfoSection)
	w.AppendHeader(table.Row{"Key", "Value"})
	for _, p := range f.ScriptInfo.Properties() {
		w.AppendRow(table.Row{p.Key, p.Value.String()})
	}
	w.Render()

	w.SetTitle(StylesSection(f.Version))
	w.AppendHeader(toRow(columns(f.Styles.Order())))
	for _, s := range f.Styles.Styles() {
		w.AppendRow(toRow(s.Fields()))
	}
	w.Render()

	w.SetTitle(EventsSection)
	w.AppendHeader(append(table.Row{"Type"}, toRow(columns(f.Events.Order()))...))
	for _, e := range f.Events.Events() {
		w.AppendRow(append(table.Row{e.Type.String()}, toRow(e.Fields())...))
	}
	w.Render()
	w.SetTitle("")
}

// toRow returns <fields> as table row
func toRow(fields []string) table.Row {
	return lo.Map(fields, func(f string, _ int) any {
		return f
	})
}
