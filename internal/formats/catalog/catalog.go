// Package catalog assembles the registry of every built-in adapter.
package catalog

import (
	"sync"

	"github.com/mind-engage/eduport/internal/formats"
	"github.com/mind-engage/eduport/internal/formats/blanks"
	"github.com/mind-engage/eduport/internal/formats/crossword"
	"github.com/mind-engage/eduport/internal/formats/flashcard"
	"github.com/mind-engage/eduport/internal/formats/groupsort"
	"github.com/mind-engage/eduport/internal/formats/matchup"
	"github.com/mind-engage/eduport/internal/formats/quiz"
	"github.com/mind-engage/eduport/internal/formats/sequence"
	"github.com/mind-engage/eduport/internal/formats/truefalse"
	"github.com/mind-engage/eduport/internal/formats/wordsearch"
)

// Adapters returns a fresh instance of every built-in adapter.
func Adapters() []formats.Adapter {
	return []formats.Adapter{
		blanks.New(),
		groupsort.New(),
		matchup.New(),
		flashcard.New(),
		quiz.New(),
		truefalse.New(),
		wordsearch.New(),
		crossword.New(),
		sequence.NewAnagram(),
		sequence.NewUnjumble(),
		sequence.NewRankOrder(),
		sequence.NewRandomWheel(),
	}
}

var defaultRegistry = sync.OnceValues(func() (*formats.Registry, error) {
	return formats.NewRegistry(Adapters()...)
})

// Default is built on first use and shared afterwards.
func Default() (*formats.Registry, error) { return defaultRegistry() }

// MustDefault panics if the built-in adapters claim overlapping kinds.
func MustDefault() *formats.Registry {
	r, err := Default()
	if err != nil {
		panic(err)
	}
	return r
}
