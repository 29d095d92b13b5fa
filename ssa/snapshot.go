package ssa

import (
	"ssa_parser/events"
	"ssa_parser/record"
	"ssa_parser/scriptinfo"
	"ssa_parser/styles"

	json "github.com/SCP002/jsonexraw"
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Snapshot represents script prepared for JSON output
type Snapshot struct {
	Version    string             `json:"version"`
	ScriptInfo []PropertySnapshot `json:"script_info"`
	Styles     TableSnapshot      `json:"styles"`
	Events     TableSnapshot      `json:"events"`
	Fonts      []string           `json:"fonts,omitempty"`
	Graphics   []string           `json:"graphics,omitempty"`
}

// PropertySnapshot represents one Script Info property
type PropertySnapshot struct {
	Key   string `json:"key"`
	Kind  string `json:"kind"`
	Value string `json:"value"`
}

// TableSnapshot represents tabular section
type TableSnapshot struct {
	Columns []string      `json:"columns"`
	Rows    []RowSnapshot `json:"rows"`
}

// RowSnapshot represents one record of tabular section
type RowSnapshot struct {
	Type   string   `json:"type,omitempty"`
	Fields []string `json:"fields"`
}

// NewSnapshot returns snapshot of <f>
func NewSnapshot(f *File) Snapshot {
	return Snapshot{
		Version: f.Version.String(),
		ScriptInfo: lo.Map(f.ScriptInfo.Properties(), func(p scriptinfo.Property, _ int) PropertySnapshot {
			return PropertySnapshot{Key: p.Key, Kind: p.Value.Kind().String(), Value: p.Value.String()}
		}),
		Styles: TableSnapshot{
			Columns: columns(f.Styles.Order()),
			Rows: lo.Map(f.Styles.Styles(), func(s *styles.Style, _ int) RowSnapshot {
				return RowSnapshot{Fields: s.Fields()}
			}),
		},
		Events: TableSnapshot{
			Columns: columns(f.Events.Order()),
			Rows: lo.Map(f.Events.Events(), func(e *events.Event, _ int) RowSnapshot {
				return RowSnapshot{Type: e.Type.String(), Fields: e.Fields()}
			}),
		},
		Fonts:    f.FontNames(),
		Graphics: f.GraphicNames(),
	}
}

// columns returns names of <order>
func columns[F record.Format](order []F) []string {
	return lo.Map(order, func(f F, _ int) string {
		return f.String()
	})
}

// MarshalSnapshot returns indented JSON snapshot of <f>
func MarshalSnapshot(f *File) ([]byte, error) {
	out, err := json.MarshalIndent(NewSnapshot(f), "", "    ")
	if err != nil {
		return nil, errors.Wrap(err, "Marshal script snapshot")
	}
	return out, nil
}
