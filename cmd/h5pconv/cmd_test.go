package main

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/eduport/internal/h5p"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	fromHTML, pageURL, packagePath, outPath = false, "", "", ""
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestTemplates(t *testing.T) {
	out, _, err := run(t, "templates")
	require.NoError(t, err)
	assert.Contains(t, strings.Split(strings.TrimSpace(out), "\n"), "matchup")
}

func TestConvertWritesPackage(t *testing.T) {
	dir := t.TempDir()
	in := writeFile(t, dir, "a.json", `{"id":"1","title":"Pairs","template":"Match up",
		"content":{"items":[{"term":"cat","definition":"chat"}]}}`)
	dst := filepath.Join(dir, "out.h5p")

	out, _, err := run(t, "convert", in, "-o", dst)
	require.NoError(t, err)
	assert.Contains(t, out, "H5P.MemoryGame")

	b, err := os.ReadFile(dst)
	require.NoError(t, err)
	meta, _, err := h5p.Open(bytes.NewReader(b), int64(len(b)))
	require.NoError(t, err)
	assert.Contains(t, string(meta), `"title": "Pairs"`)
}

func TestConvertUnsupported(t *testing.T) {
	in := writeFile(t, t.TempDir(), "a.json", `{"id":"1","template":"Open the box"}`)
	_, _, err := run(t, "convert", in, "-o", filepath.Join(t.TempDir(), "x.h5p"))
	assert.Error(t, err)
}

func TestPreviewFromHTML(t *testing.T) {
	in := writeFile(t, t.TempDir(), "page.html",
		`<script id="__ACTIVITY_DATA__">{"id":"3","template":"Rank Order","content":{"items":["a","b"]}}</script>`)
	out, stderr, err := run(t, "preview", "--html", in)
	require.NoError(t, err)
	assert.Contains(t, stderr, "script#__ACTIVITY_DATA__")

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "H5P.DragText", doc["h5pJson"].(map[string]any)["mainLibrary"])
}

func TestPreviewFromPackage(t *testing.T) {
	dir := t.TempDir()
	page := writeFile(t, dir, "page.html", `<script>s.activityGuid="g"; s.activityId=Number(77); s.activityTitle="Bank";</script>`)

	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	w, err := zw.Create("template.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(`<data><item><text>2+2?</text><item><text>3</text></item><item><text>4</text><item><text>True</text></item></item></item></data>`))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	pkg := writeFile(t, dir, "activity.zip", buf.String())

	out, _, err := run(t, "preview", page, "--package", pkg)
	require.NoError(t, err)
	assert.Contains(t, out, "H5P.QuestionSet")
	assert.Contains(t, out, "2+2?")
}
