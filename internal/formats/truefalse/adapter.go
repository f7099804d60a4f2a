// Package truefalse converts true-or-false statement lists to a question
// set of two-answer multi choice questions.
package truefalse

import (
	"fmt"

	"github.com/mind-engage/eduport/internal/activity"
	"github.com/mind-engage/eduport/internal/formats"
	"github.com/mind-engage/eduport/internal/formats/quiz"
	"github.com/mind-engage/eduport/internal/h5p"
)

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

// "trueorfals" is a truncated kind seen in scraped payloads.
func (*Adapter) Kinds() []string { return []string{"truefalse", "trueorfalse", "trueorfals"} }

func (*Adapter) Convert(a activity.Activity) formats.Result {
	questions := make([]h5p.Question, 0, len(a.Content.Items))
	for i, it := range a.Content.Items {
		answer, _ := it.Bool(activity.CorrectFlagKeys...)
		questions = append(questions, quiz.TrueFalseQuestion(
			fmt.Sprintf("%d-tf-mc", i),
			it.Resolve(activity.StatementKeys...),
			answer,
			fmt.Sprintf("Statement %d", i+1),
		))
	}
	content := quiz.NewSet(questions, 50, "Decide if each statement is True or False")
	pkg := h5p.New(content, h5p.Options{
		Title:        a.TitleOr("True or False Quiz"),
		Language:     a.Language(),
		Dependencies: []h5p.Dependency{h5p.LibMultiChoice, h5p.LibFontAwesome, h5p.LibJoubelUI, h5p.LibQuestion},
	})
	return formats.Result{Package: pkg}
}
