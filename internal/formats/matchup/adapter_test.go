package matchup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/eduport/internal/activity"
	"github.com/mind-engage/eduport/internal/h5p"
)

func TestConvertCards(t *testing.T) {
	res := New().Convert(activity.Activity{Content: activity.Content{Items: []activity.Item{
		{"left": "Dog", "right": "Perro", "leftImage": "img/dog.png"},
		{"term": "Cat", "definition": "Gato", "image": ""},
		{"question": "Bird", "answer": "Pájaro", "image": "  "},
		{},
	}}})
	mg, ok := res.Package.Content.(h5p.MemoryGame)
	require.True(t, ok)
	require.Len(t, mg.Cards, 4)

	assert.Equal(t, h5p.Card{Image: &h5p.Image{Path: "img/dog.png"}, Text: "Dog", MatchAlt: "Perro"}, mg.Cards[0])
	assert.Equal(t, h5p.Card{Text: "Cat", MatchAlt: "Gato"}, mg.Cards[1])
	assert.Nil(t, mg.Cards[2].Image)
	assert.Equal(t, h5p.Card{}, mg.Cards[3])

	assert.Equal(t, h5p.MemoryBehaviour{AllowRetry: true, UseGrid: true, CardsToUse: "all"}, mg.Behaviour)
	assert.Equal(t, "H5P.MemoryGame", res.Package.Metadata.MainLibrary)
}

func TestConvertEmpty(t *testing.T) {
	res := New().Convert(activity.Activity{Content: activity.Content{Malformed: true}})
	mg := res.Package.Content.(h5p.MemoryGame)
	assert.NotNil(t, mg.Cards)
	assert.Empty(t, mg.Cards)
}
