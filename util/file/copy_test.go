package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCopy(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "script.ass")
	dst := filepath.Join(dir, "script.ass.bak")
	assert.NoError(t, os.WriteFile(src, []byte("[Script Info]\n"), 0644), "should write source")

	err := Copy(src, dst)
	assert.NoError(t, err, "should not return error")

	// Test overwrite
	err = Copy(src, dst)
	assert.NoError(t, err, "should not return error")

	content, err := os.ReadFile(dst)
	assert.NoError(t, err, "should read copy")
	assert.Exactly(t, "[Script Info]\n", string(content), "should copy file content")

	assert.Error(t, Copy(filepath.Join(dir, "missing.ass"), dst), "should fail on missing source")
}
