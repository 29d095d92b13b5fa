// Package copier makes deep copies of test fixtures, so tests can check that a function leaves its input untouched.
package copier

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/jinzhu/copier"
	"github.com/stretchr/testify/assert"
)

// TDeep returns a deep copy of <src>, failing <t> if it can't be made.
//
// Only exported fields are copied, so it suits plain data such as config roots and document snapshots.
func TDeep[T any](t *testing.T, src T) T {
	var dst T
	err := copier.CopyWithOption(&dst, &src, copier.Option{DeepCopy: true, IgnoreEmpty: true})
	assert.NoError(t, errors.Wrap(err, "Deep copy"), "should copy the source")
	return dst
}
