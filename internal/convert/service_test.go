package convert_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/eduport/internal/activity"
	"github.com/mind-engage/eduport/internal/convert"
	"github.com/mind-engage/eduport/internal/formats"
	"github.com/mind-engage/eduport/internal/formats/catalog"
)

func newService(t *testing.T) *convert.Service {
	t.Helper()
	logger := zerolog.New(nil).Level(zerolog.Disabled)
	return convert.New(catalog.MustDefault(), logger)
}

func TestConvert(t *testing.T) {
	svc := newService(t)
	c, err := svc.Convert(context.Background(), activity.Activity{
		ID: "42", Title: "Capitals", Template: "Missing Word",
		Content: activity.Content{Items: []activity.Item{{"question": "___ is big", "answer": "Paris"}}},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, "42", c.SourceID)
	assert.Equal(t, "missingword", c.Kind)
	assert.Equal(t, "Capitals", c.Title)
	assert.Equal(t, "H5P.Blanks", c.Package.Metadata.MainLibrary)
}

func TestConvertUnsupported(t *testing.T) {
	_, err := newService(t).Convert(context.Background(), activity.Activity{Template: "Open the box"})
	assert.ErrorIs(t, err, formats.ErrUnsupportedTemplate)
}

func TestConvertCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newService(t).Convert(ctx, activity.Activity{Template: "quiz"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConvertLogsPlacementWarnings(t *testing.T) {
	var buf bytes.Buffer
	svc := convert.New(catalog.MustDefault(), zerolog.New(&buf))
	c, err := svc.Convert(context.Background(), activity.Activity{
		ID: "cw", Template: "Crossword",
		Content: activity.Content{Items: []activity.Item{
			{"clue": "1", "answer": "AAA"},
			{"clue": "2", "answer": "BBB"},
		}},
	})
	require.NoError(t, err)
	assert.Len(t, c.Warnings, 1)
	assert.Contains(t, buf.String(), `"level":"warn"`)
	assert.Contains(t, buf.String(), "BBB")
}

func TestConvertBatchKeepsOrder(t *testing.T) {
	svc := newService(t)
	var acts []activity.Activity
	for i := 0; i < 20; i++ {
		tmpl := "Rank Order"
		if i%5 == 0 {
			tmpl = "nope"
		}
		acts = append(acts, activity.Activity{
			ID: fmt.Sprint(i), Template: tmpl,
			Content: activity.Content{Items: []activity.Item{{"text": fmt.Sprint(i)}}},
		})
	}
	results := svc.ConvertBatch(context.Background(), acts, 3)
	require.Len(t, results, len(acts))
	for i, r := range results {
		assert.Equal(t, i, r.Index)
		if i%5 == 0 {
			assert.ErrorIs(t, r.Err, formats.ErrUnsupportedTemplate)
			continue
		}
		require.NoError(t, r.Err)
		assert.Equal(t, fmt.Sprint(i), r.Conversion.SourceID)
	}
}

func TestConvertBatchEmpty(t *testing.T) {
	assert.Empty(t, newService(t).ConvertBatch(context.Background(), nil, 0))
}
