package copier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTDeep(t *testing.T) {
	type Row struct {
		Fields []string
	}
	type Table struct {
		Columns []string
		Rows    []Row
	}

	src := Table{Columns: []string{"Name", "Fontsize"}, Rows: []Row{{Fields: []string{"Default", "20"}}}}
	dst := TDeep(t, src)
	assert.Exactly(t, src, dst, "should copy every field")

	src.Columns[0] = "Fontname"
	src.Rows[0].Fields[1] = "48"
	assert.Exactly(t, "Name", dst.Columns[0], "changes to the source should not modify the copy")
	assert.Exactly(t, "20", dst.Rows[0].Fields[1], "changes to nested source rows should not modify the copy")
}
