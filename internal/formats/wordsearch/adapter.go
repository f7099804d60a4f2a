// Package wordsearch converts word search activities to H5P.WordSearch.
// The grid itself is laid out by the player.
package wordsearch

import (
	"strings"

	"github.com/mind-engage/eduport/internal/activity"
	"github.com/mind-engage/eduport/internal/formats"
	"github.com/mind-engage/eduport/internal/h5p"
)

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (*Adapter) Kinds() []string { return []string{"wordsearch", "wordfind"} }

func (*Adapter) Convert(a activity.Activity) formats.Result {
	words := make([]string, 0, len(a.Content.Items))
	for _, it := range a.Content.Items {
		if w := strings.TrimSpace(it.Resolve(activity.SearchKeys...)); w != "" {
			words = append(words, w)
		}
	}
	content := h5p.WordSearch{
		TaskDescription: "Find the hidden words in the grid",
		WordList:        strings.Join(words, ", "),
		Behaviour:       h5p.WordSearchBehaviour{EnableRetry: true, ShowSolutionsButton: true},
		L10n: map[string]string{
			"found":    "Words found: @found of @total",
			"tryAgain": "Try again",
		},
	}
	pkg := h5p.New(content, h5p.Options{
		Title:        a.TitleOr("Word Search"),
		Language:     a.Language(),
		Dependencies: []h5p.Dependency{h5p.LibJoubelUI, h5p.LibFontAwesome},
	})
	return formats.Result{Package: pkg}
}
