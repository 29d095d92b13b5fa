package tw

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Writer represents table writer
type Writer struct {
	table.Writer
}

// New returns new table writer rendering to <out>
func New(out io.Writer) Writer {
	tw := table.NewWriter()
	tw.SetOutputMirror(out)
	tw.SetStyle(table.StyleLight)
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Name: "Effect", WidthMax: 30},
		{Name: "Fontname", WidthMax: 30},
		{Name: "Key", WidthMax: 30},
		{Name: "Name", WidthMax: 30},
		{Name: "Style", WidthMax: 30},
		{Name: "Text", WidthMax: 70},
		{Name: "Value", WidthMax: 70},
	})

	return Writer{tw}
}

// Render renders table and resets it
func (w Writer) Render() {
	w.Writer.Render()
	w.ResetHeaders()
	w.ResetRows()
	w.ResetFooters()
}
