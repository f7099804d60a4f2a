// Package blanks converts fill-in-the-blank activities (Missing Word,
// Cloze) to H5P.Blanks.
package blanks

import (
	"strings"

	"github.com/mind-engage/eduport/internal/activity"
	"github.com/mind-engage/eduport/internal/formats"
	"github.com/mind-engage/eduport/internal/h5p"
	"github.com/mind-engage/eduport/internal/markup"
)

// Marker is the blank token. Longer runs of underscores are consumed three
// at a time, left to right, so "____" leaves one "_" after the gap.
const Marker = "___"

// Placeholder fills a blank that has no answer left to consume.
const Placeholder = "?"

// EmptyQuestion is the single entry emitted when there are no items.
const EmptyQuestion = "<p>No questions found</p>"

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (*Adapter) Kinds() []string {
	return []string{"missingword", "cloze", "fillintheblanks", "fillintheblank"}
}

func (*Adapter) Convert(a activity.Activity) formats.Result {
	questions := make([]string, 0, len(a.Content.Items))
	for _, it := range a.Content.Items {
		prompt := it.Resolve(activity.PromptKeys...)
		questions = append(questions, markup.Paragraph(Substitute(prompt, answers(it))))
	}
	if len(questions) == 0 {
		questions = append(questions, EmptyQuestion)
	}

	content := h5p.Blanks{
		Text:      "Fill in the missing words",
		Questions: questions,
		Score:     "Range:0-1",
		Behaviour: h5p.BlanksBehaviour{
			EnableRetry:                true,
			EnableSolutionsButton:      true,
			ShowSolutionsRequiresInput: true,
		},
		L10n: map[string]string{
			"checkAnswer":         "Check",
			"tryAgain":            "Retry",
			"showSolution":        "Show Solution",
			"notFilledOut":        "Please fill in all blanks",
			"answerIsCorrect":     "Correct!",
			"answerIsWrong":       "Incorrect!",
			"answeredCorrectly":   "Answered correctly",
			"answeredIncorrectly": "Answered incorrectly",
			"solutionLabel":       "Solution",
			"inputLabel":          "Fill in the blank",
		},
	}
	pkg := h5p.New(content, h5p.Options{
		Title:      a.TitleOr("Missing Word"),
		Language:   a.Language(),
		EmbedTypes: []string{"div"},
		Dependencies: []h5p.Dependency{
			h5p.LibFontAwesome, h5p.LibFontIcon, h5p.LibJoubelUI,
			h5p.LibQuestion, h5p.LibTransition,
		},
	})
	return formats.Result{Package: pkg}
}

// answers prefers an explicit options list; otherwise the single answer
// slot fills the first blank and any later blanks get Placeholder.
func answers(it activity.Item) []string {
	if opts := it.Strings(activity.OptionsKey); len(opts) > 0 {
		return opts
	}
	return []string{it.Resolve(activity.AnswerKeys...)}
}

// Substitute replaces each Marker, left to right, with the next answer
// wrapped as a gap token. Missing or blank answers render Placeholder.
func Substitute(text string, answers []string) string {
	var b strings.Builder
	next := 0
	for {
		i := strings.Index(text, Marker)
		if i < 0 {
			b.WriteString(text)
			return b.String()
		}
		b.WriteString(text[:i])
		ans := Placeholder
		if next < len(answers) && strings.TrimSpace(answers[next]) != "" {
			ans = answers[next]
		}
		next++
		b.WriteString(markup.Emphasis(ans))
		text = text[i+len(Marker):]
	}
}
