// Package quiz converts multiple choice and true/false quizzes to
// H5P.QuestionSet with H5P.MultiChoice sub-content.
package quiz

import (
	"fmt"
	"strings"

	"github.com/mind-engage/eduport/internal/activity"
	"github.com/mind-engage/eduport/internal/formats"
	"github.com/mind-engage/eduport/internal/h5p"
	"github.com/mind-engage/eduport/internal/markup"
)

type Kind string

const (
	MultipleChoice Kind = "multipleChoice"
	TrueFalse      Kind = "trueFalse"
)

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (*Adapter) Kinds() []string {
	return []string{"quiz", "multiplechoice", "gameshowquiz", "quizshow"}
}

func (*Adapter) Convert(a activity.Activity) formats.Result {
	questions := make([]h5p.Question, 0, len(a.Content.Items))
	for i, it := range a.Content.Items {
		prompt := it.Resolve(activity.PromptKeys...)
		title := fmt.Sprintf("Question %d", i+1)
		switch KindOf(it) {
		case TrueFalse:
			correct, _ := it.Bool(activity.CorrectFlagKeys...)
			questions = append(questions, TrueFalseQuestion(fmt.Sprintf("%d-tf", i), prompt, correct, title))
		default:
			questions = append(questions, multipleChoice(i, prompt, it, title))
		}
	}
	content := NewSet(questions, 70, "Answer the following questions")
	pkg := h5p.New(content, h5p.Options{
		Title:        a.TitleOr("Quiz"),
		Language:     a.Language(),
		Dependencies: []h5p.Dependency{h5p.LibMultiChoice, h5p.LibFontAwesome, h5p.LibJoubelUI, h5p.LibQuestion},
	})
	return formats.Result{Package: pkg}
}

// KindOf reads the declared question type, inferring one when absent:
// options mean multiple choice, a boolean flag alone means true/false.
func KindOf(it activity.Item) Kind {
	switch strings.ToLower(strings.TrimSpace(it.Text(activity.QuestionTypeKey))) {
	case "multiplechoice", "mc", "multiple_choice":
		return MultipleChoice
	case "truefalse", "tf", "true_false", "boolean":
		return TrueFalse
	}
	if len(it.List(activity.OptionsKey)) > 0 {
		return MultipleChoice
	}
	if _, ok := it.Bool(activity.CorrectFlagKeys...); ok {
		return TrueFalse
	}
	return MultipleChoice
}

func multipleChoice(i int, prompt string, it activity.Item, title string) h5p.Question {
	opts := it.Strings(activity.OptionsKey)
	correct := CorrectIndex(it, opts)
	answers := make([]h5p.Answer, len(opts))
	for j, o := range opts {
		answers[j] = h5p.Answer{Text: markup.Div(o), Correct: j == correct}
	}
	return h5p.Question{
		Library: h5p.LibMultiChoice.String(),
		Params: &h5p.MultiChoice{
			Question: markup.Paragraph(prompt),
			Answers:  answers,
			Behaviour: h5p.MultiChoiceBehaviour{
				EnableRetry:                true,
				EnableSolutionsButton:      true,
				EnableCheckButton:          true,
				Type:                       "auto",
				RandomAnswers:              true,
				ShowSolutionsRequiresInput: true,
				PassPercentage:             100,
			},
			UI: h5p.MultiChoiceUI(),
		},
		SubContentID: fmt.Sprintf("%d-mc", i),
		Metadata:     h5p.QuestionMetadata{ContentType: "Multiple Choice", License: "U", Title: title},
	}
}

// CorrectIndex returns the 0-based correct option, or -1. An explicit
// index wins even when out of range; otherwise a correctAnswer (or answer)
// naming an option's text, or holding its index, is used.
func CorrectIndex(it activity.Item, opts []string) int {
	if n, ok := it.Int(activity.CorrectIndexKeys...); ok {
		return n
	}
	want := strings.TrimSpace(it.Resolve("correctAnswer", "answer"))
	if want == "" {
		return -1
	}
	for j, o := range opts {
		if strings.TrimSpace(o) == want {
			return j
		}
	}
	for j, o := range opts {
		if strings.EqualFold(strings.TrimSpace(o), want) {
			return j
		}
	}
	if n, ok := it.Int("correctAnswer"); ok {
		return n
	}
	return -1
}

// TrueFalseQuestion builds a two-answer multi choice question where exactly
// one of True/False is correct.
func TrueFalseQuestion(id, prompt string, correct bool, title string) h5p.Question {
	return h5p.Question{
		Library: h5p.LibMultiChoice.String(),
		Params: &h5p.MultiChoice{
			Question: markup.Paragraph(prompt),
			Answers: []h5p.Answer{
				{Text: "True", Correct: correct},
				{Text: "False", Correct: !correct},
			},
			Behaviour: h5p.MultiChoiceBehaviour{
				SingleAnswer:               true,
				EnableRetry:                true,
				EnableSolutionsButton:      true,
				EnableCheckButton:          true,
				ShowSolutionsRequiresInput: true,
				PassPercentage:             100,
			},
			UI: h5p.MultiChoiceUI(),
		},
		SubContentID: id,
		Metadata:     h5p.QuestionMetadata{ContentType: "Multiple Choice", License: "U", Title: title},
	}
}

// NewSet wraps questions in a question set with a two band result page
// split at pass.
func NewSet(questions []h5p.Question, pass int, task string) h5p.QuestionSet {
	if questions == nil {
		questions = []h5p.Question{}
	}
	return h5p.QuestionSet{
		TaskDescription: task,
		ProgressType:    "dots",
		PassPercentage:  pass,
		Questions:       questions,
		EndGame: h5p.EndGame{
			ShowResultPage:     true,
			ShowSolutionButton: true,
			ShowRetryButton:    true,
			NoResultMessage:    "Finished",
			Message:            "Your result:",
			OverallFeedback: []h5p.FeedbackRange{
				{From: 0, To: pass, Feedback: "Keep trying!"},
				{From: pass, To: 100, Feedback: "Great job!"},
			},
		},
	}
}
