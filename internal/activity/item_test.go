package activity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/eduport/internal/activity"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		name string
		item activity.Item
		keys []string
		want string
	}{
		{"first present", activity.Item{"question": "Q", "term": "T"}, []string{"question", "term"}, "Q"},
		{"skips blank", activity.Item{"question": "  ", "term": "T"}, []string{"question", "term"}, "T"},
		{"skips null", activity.Item{"question": nil, "term": "T"}, []string{"question", "term"}, "T"},
		{"number", activity.Item{"text": 45.67}, []string{"text"}, "45.67"},
		{"integral number", activity.Item{"text": float64(123)}, []string{"text"}, "123"},
		{"bool", activity.Item{"answer": true}, []string{"answer"}, "true"},
		{"array index", activity.Item{"options": []any{"a", "b"}}, []string{"question", "options.1"}, "b"},
		{"array index out of range", activity.Item{"options": []any{"a"}}, []string{"options.3"}, ""},
		{"object with text", activity.Item{"answer": map[string]any{"text": "inner"}}, []string{"answer"}, "inner"},
		{"untrimmed value", activity.Item{"question": " Q "}, []string{"question"}, " Q "},
		{"nothing", activity.Item{}, []string{"question", "term"}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.item.Resolve(tt.keys...))
		})
	}
}

func TestItemCoercions(t *testing.T) {
	it := activity.Item{
		"options":      []any{"x", nil, 3.0},
		"correct":      "true",
		"correctIndex": 2.0,
		"idx":          "7",
	}
	assert.Equal(t, []string{"x", "", "3"}, it.Strings("options"))
	assert.Nil(t, it.Strings("missing"))

	b, ok := it.Bool("correct")
	assert.True(t, ok)
	assert.True(t, b)
	_, ok = it.Bool("missing")
	assert.False(t, ok)

	n, ok := it.Int("correctIndex")
	assert.True(t, ok)
	assert.Equal(t, 2, n)
	n, ok = it.Int("idx")
	assert.True(t, ok)
	assert.Equal(t, 7, n)
	_, ok = it.Int("correct")
	assert.False(t, ok)
}

func TestDecodeLenientContent(t *testing.T) {
	a, err := activity.Decode([]byte(`{
		"id": "1", "template": "Rank Order",
		"content": {"items": ["one", 2, null, {"term": "four"}]}
	}`))
	require.NoError(t, err)
	require.Len(t, a.Content.Items, 4)
	assert.False(t, a.Content.Malformed)
	assert.Equal(t, "one", a.Content.Items[0].Text("text"))
	assert.Equal(t, "2", a.Content.Items[1].Text("text"))
	assert.Empty(t, a.Content.Items[2])
	assert.Equal(t, "four", a.Content.Items[3].Resolve(activity.RankedKeys...))
}

func TestDecodeMalformedItems(t *testing.T) {
	for _, doc := range []string{
		`{"id":"1","template":"quiz","content":{"items":"nope"}}`,
		`{"id":"1","template":"quiz","content":{"items":{"a":1}}}`,
		`{"id":"1","template":"quiz","content":"garbage"}`,
	} {
		a, err := activity.Decode([]byte(doc))
		require.NoError(t, err, doc)
		assert.True(t, a.Content.Malformed, doc)
		assert.Empty(t, a.Content.Items, doc)
	}

	a, err := activity.Decode([]byte(`{"id":"1","template":"quiz","content":{}}`))
	require.NoError(t, err)
	assert.False(t, a.Content.Malformed)
}

func TestDefaults(t *testing.T) {
	a := activity.Activity{Title: "  "}
	assert.Equal(t, "Quiz", a.TitleOr("Quiz"))
	assert.Equal(t, "en", a.Language())
	a.Metadata.Language = "fr"
	assert.Equal(t, "fr", a.Language())
}
