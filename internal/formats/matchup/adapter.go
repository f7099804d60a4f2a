// Package matchup converts paired matching activities to H5P.MemoryGame.
package matchup

import (
	"strings"

	"github.com/mind-engage/eduport/internal/activity"
	"github.com/mind-engage/eduport/internal/formats"
	"github.com/mind-engage/eduport/internal/h5p"
)

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (*Adapter) Kinds() []string { return []string{"matchup", "match", "pairs", "matchingpairs"} }

func (*Adapter) Convert(a activity.Activity) formats.Result {
	cards := make([]h5p.Card, 0, len(a.Content.Items))
	for _, it := range a.Content.Items {
		cards = append(cards, h5p.Card{
			Image:    h5p.NewImage(strings.TrimSpace(it.Resolve(activity.MatchImageKeys...))),
			Text:     it.Resolve(activity.MatchPromptKeys...),
			MatchAlt: it.Resolve(activity.MatchAnswerKeys...),
		})
	}
	content := h5p.MemoryGame{
		Cards: cards,
		Behaviour: h5p.MemoryBehaviour{
			AllowRetry: true,
			UseGrid:    true,
			CardsToUse: "all",
		},
	}
	pkg := h5p.New(content, h5p.Options{
		Title:        a.TitleOr("Match Up"),
		Language:     a.Language(),
		Dependencies: []h5p.Dependency{h5p.LibJoubelUI, h5p.LibFontAwesome},
	})
	return formats.Result{Package: pkg}
}
