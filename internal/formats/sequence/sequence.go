// Package sequence holds the adapters that serialize a list of strings as
// asterisk-wrapped drag tokens: anagram, unjumble, rank order and the
// random wheel.
package sequence

import (
	"strings"

	"github.com/mind-engage/eduport/internal/activity"
	"github.com/mind-engage/eduport/internal/formats"
	"github.com/mind-engage/eduport/internal/h5p"
	"github.com/mind-engage/eduport/internal/markup"
)

var (
	_ formats.Adapter = (*Anagram)(nil)
	_ formats.Adapter = (*Unjumble)(nil)
	_ formats.Adapter = (*RankOrder)(nil)
	_ formats.Adapter = (*RandomWheel)(nil)
)

func dragBehaviour(instant bool) *h5p.DragBehaviour {
	b := &h5p.DragBehaviour{EnableRetry: true, EnableSolutionsButton: true}
	if !instant {
		b.InstantFeedback = new(bool)
	}
	return b
}

func pkg(c h5p.Content, a activity.Activity, title string) formats.Result {
	return formats.Result{Package: h5p.New(c, h5p.Options{
		Title:    a.TitleOr(title),
		Language: a.Language(),
	})}
}

// Anagram: one *answer* per line. A missing answer keeps its line as "**".
type Anagram struct{}

func NewAnagram() *Anagram { return &Anagram{} }

func (*Anagram) Kinds() []string { return []string{"anagram"} }

func (*Anagram) Convert(a activity.Activity) formats.Result {
	words := make([]string, 0, len(a.Content.Items))
	for _, it := range a.Content.Items {
		words = append(words, strings.TrimSpace(it.Resolve(activity.AnagramKeys...)))
	}
	c := h5p.DragWords{DragText: h5p.DragText{
		TaskDescription: "Unscramble the letters to form words",
		TextField:       markup.EmphasizeAll(words, "\n"),
		Behaviour:       &h5p.DragBehaviour{EnableRetry: true, EnableSolutionsButton: true},
	}}
	return pkg(c, a, "Anagram")
}

// Unjumble splits the solved sentence on whitespace and wraps every token.
// Punctuation stays attached to its word. The scrambled order in the source
// is ignored. Sentences with no words are dropped.
type Unjumble struct{}

func NewUnjumble() *Unjumble { return &Unjumble{} }

func (*Unjumble) Kinds() []string { return []string{"unjumble", "sentenceunjumble"} }

func (*Unjumble) Convert(a activity.Activity) formats.Result {
	sentences := make([]string, 0, len(a.Content.Items))
	for _, it := range a.Content.Items {
		if s := Sentence(it.Resolve(activity.SentenceKeys...)); s != "" {
			sentences = append(sentences, s)
		}
	}
	c := h5p.DragText{
		TaskDescription: "Arrange the words to form correct sentences",
		TextField:       strings.Join(sentences, "\n\n"),
		Behaviour:       dragBehaviour(true),
	}
	return pkg(c, a, "Unjumble")
}

// Sentence renders "the cat sat." as "*the* *cat* *sat.*".
func Sentence(s string) string {
	return markup.EmphasizeAll(strings.Fields(s), " ")
}

// RankOrder wraps items in their correct order, space separated. Blank
// items are dropped.
type RankOrder struct{}

func NewRankOrder() *RankOrder { return &RankOrder{} }

func (*RankOrder) Kinds() []string { return []string{"rankorder", "ranking"} }

func (*RankOrder) Convert(a activity.Activity) formats.Result {
	ranked := make([]string, 0, len(a.Content.Items))
	for _, it := range a.Content.Items {
		if s := strings.TrimSpace(it.Resolve(activity.RankedKeys...)); s != "" {
			ranked = append(ranked, s)
		}
	}
	c := h5p.DragText{
		TaskDescription: "Put the items in the correct order by dragging them",
		TextField:       markup.EmphasizeAll(ranked, " "),
		Behaviour:       dragBehaviour(false),
	}
	return pkg(c, a, "Rank Order")
}

// RandomWheel lists the wheel segments one per line. Numbers render in
// their shortest decimal form; missing segments keep their line as "**".
type RandomWheel struct{}

func NewRandomWheel() *RandomWheel { return &RandomWheel{} }

func (*RandomWheel) Kinds() []string { return []string{"randomwheel", "spinwheel", "wheel"} }

func (*RandomWheel) Convert(a activity.Activity) formats.Result {
	segments := make([]string, 0, len(a.Content.Items))
	for _, it := range a.Content.Items {
		segments = append(segments, it.Resolve(activity.SegmentKeys...))
	}
	c := h5p.DragText{
		TaskDescription: "The wheel includes these options:",
		TextField:       markup.EmphasizeAll(segments, "\n"),
	}
	return pkg(c, a, "Random Wheel Options")
}
