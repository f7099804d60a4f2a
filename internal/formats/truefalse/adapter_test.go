package truefalse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/eduport/internal/activity"
	"github.com/mind-engage/eduport/internal/h5p"
)

func TestConvertStatements(t *testing.T) {
	res := New().Convert(activity.Activity{Content: activity.Content{Items: []activity.Item{
		{"text": "Water boils at 100C", "answer": true},
		{"statement": "The sun is cold", "answer": "false"},
		{"question": ""},
	}}})
	qs, ok := res.Package.Content.(h5p.QuestionSet)
	require.True(t, ok)
	require.Len(t, qs.Questions, 3)

	assert.Equal(t, "0-tf-mc", qs.Questions[0].SubContentID)
	assert.Equal(t, "<p>Water boils at 100C</p>", qs.Questions[0].Params.Question)
	assert.True(t, qs.Questions[0].Params.Answers[0].Correct)
	assert.False(t, qs.Questions[0].Params.Answers[1].Correct)

	assert.False(t, qs.Questions[1].Params.Answers[0].Correct)
	assert.True(t, qs.Questions[1].Params.Answers[1].Correct)
	assert.Equal(t, "Statement 2", qs.Questions[1].Metadata.Title)

	assert.Equal(t, "<p></p>", qs.Questions[2].Params.Question)
	assert.Equal(t, 50, qs.PassPercentage)
	assert.Equal(t, "True or False Quiz", res.Package.Metadata.Title)
}

func TestExactlyOneCorrect(t *testing.T) {
	res := New().Convert(activity.Activity{Content: activity.Content{Items: []activity.Item{
		{"text": "a", "answer": true}, {"text": "b", "answer": false}, {"text": "c"},
	}}})
	for _, q := range res.Package.Content.(h5p.QuestionSet).Questions {
		n := 0
		for _, a := range q.Params.Answers {
			if a.Correct {
				n++
			}
		}
		assert.Equal(t, 1, n, q.SubContentID)
	}
}

func TestConvertEmpty(t *testing.T) {
	res := New().Convert(activity.Activity{})
	qs := res.Package.Content.(h5p.QuestionSet)
	assert.Empty(t, qs.Questions)
	assert.NotNil(t, qs.Questions)
}
