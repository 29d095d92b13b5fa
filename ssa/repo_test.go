package ssa

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"ssa_parser/cfg"
	"ssa_parser/scriptinfo"
	"ssa_parser/util/logger"

	json "github.com/SCP002/jsonexraw"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/zenizh/go-capturer"
)

func newTestRepo(modify func(*cfg.Root)) repo {
	root := cfg.NewDefCfg()
	if modify != nil {
		modify(&root)
	}
	return NewRepo(logger.NewSilent(), root)
}

func TestRepoOptions(t *testing.T) {
	r := newTestRepo(func(root *cfg.Root) {
		root.Parse.DefaultVersion = scriptinfo.V4
		root.Parse.UnknownSections = cfg.Keep
	})
	assert.Exactly(t, Options{DefaultVersion: scriptinfo.V4, KeepUnknownSections: true}, r.Options(),
		"should take options from config")
	assert.Exactly(t, DefaultOptions(), newTestRepo(nil).Options(), "default config should match default options")
}

func TestRepoParseCharset(t *testing.T) {
	r := newTestRepo(func(root *cfg.Root) {
		root.Parse.Charset = "windows-1251"
	})
	f, err := r.Parse([]byte("[Script Info]\nTitle: \xcf\xf0\xe8\xe2\xe5\xf2\n"))
	assert.NoError(t, err, "should decode configured charset")
	title, _ := f.ScriptInfo.Title()
	assert.Exactly(t, "Привет", title, "should convert title to UTF-8")

	_, err = newTestRepo(nil).Parse([]byte("[Script Info]\nTitle: \xcf\xf0\xe8\xe2\xe5\xf2\n"))
	assert.ErrorIs(t, err, ErrInvalidTextEncoding, "should require UTF-8 without charset")
}

func TestRepoOpen(t *testing.T) {
	r := newTestRepo(nil)

	path := filepath.Join(t.TempDir(), "minimal.ass")
	assert.NoError(t, os.WriteFile(path, []byte(minimalScript), 0644), "should write test script")
	f, err := r.Open(path)
	assert.NoError(t, err, "should open local file")
	assert.Exactly(t, 1, f.Events.Len(), "should read events of local file")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		_, _ = w.Write([]byte(minimalScript))
	}))
	defer srv.Close()
	f, err = r.Open(srv.URL + "/minimal.ass")
	assert.NoError(t, err, "should open URL")
	assert.Exactly(t, []string{"Default"}, f.Styles.Names(), "should read styles of remote script")

	_, err = r.Open(filepath.Join(t.TempDir(), "missing.ass"))
	assert.Error(t, err, "should fail on missing file")
}

func TestRepoSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.ass")
	assert.NoError(t, os.WriteFile(path, []byte(minimalScript), 0644), "should write test script")

	r := newTestRepo(func(root *cfg.Root) {
		root.Output.CRLF = true
		root.Output.Backup = true
	})
	f, err := r.Open(path)
	assert.NoError(t, err, "should open script")
	f.ScriptInfo.SetTitle("Changed")
	assert.NoError(t, r.Save(f, path), "should save script")

	backup, err := os.ReadFile(path + ".bak")
	assert.NoError(t, err, "should write backup")
	assert.Exactly(t, minimalScript, string(backup), "should back up original content")

	saved, err := os.ReadFile(path)
	assert.NoError(t, err, "should read saved script")
	assert.Exactly(t, r.Render(f), string(saved), "should write rendered script")
	assert.Contains(t, string(saved), "Title: Changed\r\n", "should use CRLF line endings")

	reread, err := r.Open(path)
	assert.NoError(t, err, "should read CRLF script back")
	title, _ := reread.ScriptInfo.Title()
	assert.Exactly(t, "Changed", title, "should keep changes")

	fresh := filepath.Join(dir, "fresh.ass")
	assert.NoError(t, newTestRepo(nil).Save(f, fresh), "should save new file")
	assert.NoFileExists(t, fresh+".bak", "should not back up missing file")
}

func TestRepoLogging(t *testing.T) {
	out := capturer.CaptureStderr(func() {
		r := NewRepo(logger.New(logrus.DebugLevel), cfg.NewDefCfg())
		_, err := r.Parse([]byte("[Script Info]\nTitle: x\n[Custom]\nKey: y\n"))
		assert.NoError(t, err, "should parse script")
	})
	assert.Contains(t, out, "entering [Script Info] section", "should log section switch")
	assert.Contains(t, out, "unknown section [Custom], skipping it", "should warn about unknown section")
}

func TestMarshalSnapshot(t *testing.T) {
	f, err := Parse([]byte(minimalScript))
	assert.NoError(t, err, "should parse script")

	out, err := MarshalSnapshot(f)
	assert.NoError(t, err, "should marshal snapshot")

	var snapshot Snapshot
	assert.NoError(t, json.Unmarshal(out, &snapshot), "should unmarshal snapshot")
	assert.Exactly(t, NewSnapshot(f), snapshot, "should keep snapshot content")
	assert.Exactly(t, "v4.00+", snapshot.Version, "should store version")
	assert.Exactly(t, []string{"Layer", "Start", "End", "Style", "Text"}, snapshot.Events.Columns,
		"should store event columns")
	assert.Exactly(t, RowSnapshot{Type: "Dialogue", Fields: []string{"0", "0:00:01.00", "0:00:03.50", "Default",
		"Hello, world"}}, snapshot.Events.Rows[0], "should store event fields")
	assert.Exactly(t, PropertySnapshot{Key: "Title", Kind: "Str", Value: "Minimal"}, snapshot.ScriptInfo[0],
		"should store properties with kind")
}
