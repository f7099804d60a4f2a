// Package flashcard converts flashcard decks to H5P.Flashcards.
package flashcard

import (
	"strings"

	"github.com/mind-engage/eduport/internal/activity"
	"github.com/mind-engage/eduport/internal/formats"
	"github.com/mind-engage/eduport/internal/h5p"
)

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (*Adapter) Kinds() []string { return []string{"flashcard", "flashcards", "cards"} }

func (*Adapter) Convert(a activity.Activity) formats.Result {
	cards := make([]h5p.Flashcard, 0, len(a.Content.Items))
	for _, it := range a.Content.Items {
		cards = append(cards, h5p.Flashcard{
			Text:   it.Resolve(activity.CardFrontKeys...),
			Answer: it.Resolve(activity.CardBackKeys...),
			Image:  h5p.NewImage(strings.TrimSpace(it.Resolve(activity.ImageKeys...))),
			Tip:    it.Text("tip"),
		})
	}
	title := a.TitleOr("Flashcards")
	content := h5p.Flashcards{
		Title:       title,
		Description: "Learn these terms",
		Cards:       cards,
		Behaviour:   h5p.FlashcardsBehaviour{EnableRetry: true, RandomCards: true},
	}
	pkg := h5p.New(content, h5p.Options{
		Title:        title,
		Language:     a.Language(),
		Dependencies: []h5p.Dependency{h5p.LibJoubelUI, h5p.LibFontAwesome},
	})
	return formats.Result{Package: pkg}
}
