// Package crossword converts clue/answer lists to H5P.Crossword, laying
// the grid out with the placement engine.
package crossword

import (
	"github.com/mind-engage/eduport/internal/activity"
	"github.com/mind-engage/eduport/internal/formats"
	"github.com/mind-engage/eduport/internal/h5p"
	"github.com/mind-engage/eduport/internal/placement"
)

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (*Adapter) Kinds() []string { return []string{"crossword"} }

// Convert places every clue it can. Words the engine skips are reported
// as warnings and left out of the package.
func (*Adapter) Convert(a activity.Activity) formats.Result {
	clues := make([]placement.Clue, 0, len(a.Content.Items))
	for _, it := range a.Content.Items {
		clues = append(clues, placement.Clue{
			Clue:   it.Resolve(activity.ClueKeys...),
			Answer: it.Resolve(activity.ClueAnswerKeys...),
		})
	}
	layout := placement.Place(clues)

	words := make([]h5p.CrosswordWord, 0, len(layout.Words))
	for _, w := range layout.Words {
		words = append(words, h5p.CrosswordWord{
			Clue:        w.Clue,
			Answer:      w.Answer,
			Row:         w.Row,
			Col:         w.Col,
			Orientation: string(w.Orientation),
			ClueID:      w.SequenceID,
		})
	}
	var warnings []string
	for _, s := range layout.Skipped {
		warnings = append(warnings, s.String())
	}

	content := h5p.Crossword{
		TaskDescription: "Complete the crossword puzzle",
		Words:           words,
	}
	pkg := h5p.New(content, h5p.Options{
		Title:        a.TitleOr("Crossword"),
		Language:     a.Language(),
		Dependencies: []h5p.Dependency{h5p.LibJoubelUI, h5p.LibFontAwesome},
	})
	return formats.Result{Package: pkg, Warnings: warnings}
}
