package h5p

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDerivesMainLibrary(t *testing.T) {
	p := New(DragText{TaskDescription: "x"}, Options{
		Title:        "T",
		Dependencies: []Dependency{LibDragText, LibFontAwesome},
	})
	assert.Equal(t, "H5P.DragText", p.Metadata.MainLibrary)
	assert.Equal(t, []Dependency{LibDragText, LibFontAwesome}, p.Metadata.PreloadedDependencies)
	assert.Equal(t, []string{"iframe"}, p.Metadata.EmbedTypes)
	assert.Equal(t, "U", p.Metadata.License)
	assert.Equal(t, "en", p.Metadata.Language)
}

func TestDependencyString(t *testing.T) {
	assert.Equal(t, "H5P.MultiChoice 1.16", LibMultiChoice.String())
	assert.Equal(t, "H5P.Crossword 0.4", LibCrossword.String())
}

func TestBuildAndOpen(t *testing.T) {
	p := New(MemoryGame{Cards: []Card{{Text: "a", MatchAlt: "b"}}}, Options{Title: "Pairs", Language: "de"})
	b, err := Build(p, ArchiveOptions{Author: "someone"})
	require.NoError(t, err)

	meta, content, err := Open(bytes.NewReader(b), int64(len(b)))
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(meta, &m))
	assert.Equal(t, "Pairs", m["title"])
	assert.Equal(t, "de", m["language"])
	assert.Equal(t, "H5P.MemoryGame", m["mainLibrary"])
	assert.Equal(t, "someone", m["author"])
	assert.Equal(t, map[string]any{"majorVersion": 1.0, "minorVersion": 24.0}, m["coreApi"])

	var c map[string]any
	require.NoError(t, json.Unmarshal(content, &c))
	cards := c["cards"].([]any)
	require.Len(t, cards, 1)
	assert.Nil(t, cards[0].(map[string]any)["image"])
}

func TestBuildRejectsMissingContent(t *testing.T) {
	_, err := Build(Package{}, ArchiveOptions{})
	assert.Error(t, err)
}

func TestOpenRejectsForeignZip(t *testing.T) {
	_, _, err := Open(bytes.NewReader([]byte("not a zip")), 9)
	assert.Error(t, err)
}
