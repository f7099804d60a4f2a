package crossword

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/eduport/internal/activity"
	"github.com/mind-engage/eduport/internal/h5p"
)

func convert(items ...activity.Item) (h5p.Crossword, []string) {
	res := New().Convert(activity.Activity{Template: "Crossword", Content: activity.Content{Items: items}})
	return res.Package.Content.(h5p.Crossword), res.Warnings
}

func TestTwoWordsCross(t *testing.T) {
	cw, warnings := convert(
		activity.Item{"clue": "c", "answer": "CAT"},
		activity.Item{"clue": "b", "answer": "BAT"},
	)
	require.Len(t, cw.Words, 2)
	assert.Empty(t, warnings)

	orients := map[string]bool{}
	for i, w := range cw.Words {
		orients[w.Orientation] = true
		assert.GreaterOrEqual(t, w.Row, 0)
		assert.GreaterOrEqual(t, w.Col, 0)
		assert.Equal(t, i+1, w.ClueID)
	}
	assert.Equal(t, map[string]bool{"across": true, "down": true}, orients)
}

func TestUnplaceableWordWarns(t *testing.T) {
	cw, warnings := convert(
		activity.Item{"clue": "1", "answer": "AAA"},
		activity.Item{"clue": "2", "answer": "BBB"},
	)
	assert.Len(t, cw.Words, 1)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "BBB")
}

func TestFieldFallbacks(t *testing.T) {
	cw, _ := convert(
		activity.Item{"question": "pet", "definition": "dog"},
		activity.Item{"term": "", "answer": "ignored"},
		activity.Item{"clue": "no answer"},
	)
	require.Len(t, cw.Words, 1)
	assert.Equal(t, h5p.CrosswordWord{Clue: "pet", Answer: "dog", Row: 0, Col: 0, Orientation: "across", ClueID: 1}, cw.Words[0])
}

func TestEmpty(t *testing.T) {
	cw, warnings := convert()
	assert.NotNil(t, cw.Words)
	assert.Empty(t, cw.Words)
	assert.Empty(t, warnings)
	assert.Equal(t, "Complete the crossword puzzle", cw.TaskDescription)
}
