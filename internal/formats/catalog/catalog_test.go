package catalog

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/eduport/internal/activity"
	"github.com/mind-engage/eduport/internal/formats"
	"github.com/mind-engage/eduport/internal/h5p"
)

func TestDefaultIsShared(t *testing.T) {
	a, err := Default()
	require.NoError(t, err)
	b, err := Default()
	require.NoError(t, err)
	assert.Same(t, a, b)
}

func TestDispatchKnownKinds(t *testing.T) {
	reg := MustDefault()
	tests := map[string]string{
		"Missing Word":    "H5P.Blanks",
		"Cloze":           "H5P.Blanks",
		"Group Sort":      "H5P.DragText",
		"Match up":        "H5P.MemoryGame",
		"Pairs":           "H5P.MemoryGame",
		"Flashcards":      "H5P.Flashcards",
		"Quiz":            "H5P.QuestionSet",
		"Multiple Choice": "H5P.QuestionSet",
		"True or False":   "H5P.QuestionSet",
		"trueorfals":      "H5P.QuestionSet",
		"Wordsearch":      "H5P.WordSearch",
		"Crossword":       "H5P.Crossword",
		"Anagram":         "H5P.DragWords",
		"Unjumble":        "H5P.DragText",
		"Rank order":      "H5P.DragText",
		"Random Wheel":    "H5P.DragText",
	}
	for kind, lib := range tests {
		res, err := reg.Convert(activity.Activity{Template: kind})
		require.NoError(t, err, kind)
		assert.Equal(t, lib, res.Package.Metadata.MainLibrary, kind)
		assert.Equal(t, lib, res.Package.Content.Library().MachineName, kind)
	}
}

func TestDispatchUnknown(t *testing.T) {
	reg := MustDefault()
	for _, kind := range []string{"Open the box", "", "whack-a-mole"} {
		_, err := reg.Convert(activity.Activity{Template: kind})
		assert.ErrorIs(t, err, formats.ErrUnsupportedTemplate, kind)
	}
}

// Every adapter returns a complete package for empty and malformed input,
// and no container in content.json encodes as null.
func TestTotalOverEmptyInput(t *testing.T) {
	for _, ad := range Adapters() {
		for _, c := range []activity.Content{{}, {Malformed: true}, {Items: []activity.Item{{}}}} {
			res := ad.Convert(activity.Activity{Content: c})
			require.NotNil(t, res.Package.Content, "%T", ad)

			_, content, err := h5p.MarshalBlocks(res.Package, h5p.ArchiveOptions{})
			require.NoError(t, err)
			var doc map[string]any
			require.NoError(t, json.Unmarshal(content, &doc))
			for k, v := range doc {
				assert.NotNil(t, v, "%T field %s", ad, k)
			}
		}
	}
}

func TestEndToEndScenarios(t *testing.T) {
	reg := MustDefault()

	res, err := reg.Convert(activity.Activity{Template: "missing word", Content: activity.Content{Items: []activity.Item{
		{"question": "The capital of France is ___.", "answer": "Paris"},
	}}})
	require.NoError(t, err)
	assert.Equal(t, []string{"<p>The capital of France is *Paris*.</p>"}, res.Package.Content.(h5p.Blanks).Questions)

	res, err = reg.Convert(activity.Activity{Template: "groupsort", Content: activity.Content{Items: []activity.Item{
		{"prompt": "Apple", "answer": "Fruit"},
		{"prompt": "Carrot", "answer": "Veggie"},
		{"prompt": "Banana", "answer": "Fruit"},
	}}})
	require.NoError(t, err)
	tf := res.Package.Content.(h5p.DragText).TextField
	assert.Contains(t, tf, "*Fruit*: :Apple: :Banana:")
	assert.Contains(t, tf, "*Veggie*: :Carrot:")

	res, err = reg.Convert(activity.Activity{Template: "unjumble", Content: activity.Content{Items: []activity.Item{
		{"correct": "the cat sat."},
	}}})
	require.NoError(t, err)
	assert.Equal(t, "*the* *cat* *sat.*", res.Package.Content.(h5p.DragText).TextField)
}
