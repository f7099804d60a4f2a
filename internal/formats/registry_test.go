package formats_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mind-engage/eduport/internal/activity"
	"github.com/mind-engage/eduport/internal/formats"
	"github.com/mind-engage/eduport/internal/h5p"
)

type stubAdapter struct {
	kinds []string
	title string
}

func (s stubAdapter) Kinds() []string { return s.kinds }

func (s stubAdapter) Convert(a activity.Activity) formats.Result {
	return formats.Result{Package: h5p.New(h5p.DragText{}, h5p.Options{Title: s.title})}
}

func TestNormalizeKind(t *testing.T) {
	tests := map[string]string{
		"Missing Word":    "missingword",
		" MISSING  WORD ": "missingword",
		"True or False":   "trueorfalse",
		"rank\torder\n":   "rankorder",
		"":                "",
		"Group Sort":      "groupsort",
	}
	for in, want := range tests {
		assert.Equal(t, want, formats.NormalizeKind(in), in)
	}
}

func TestRegistryLookup(t *testing.T) {
	reg, err := formats.NewRegistry(
		stubAdapter{kinds: []string{"groupsort"}, title: "g"},
		stubAdapter{kinds: []string{"Missing Word", "cloze"}, title: "m"},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"cloze", "groupsort", "missingword"}, reg.Kinds())

	for _, kind := range []string{"Group Sort", "GROUPSORT", "group sort"} {
		a, err := reg.Lookup(kind)
		require.NoError(t, err, kind)
		assert.Equal(t, "g", a.(stubAdapter).title)
	}

	res, err := reg.Convert(activity.Activity{Template: "Cloze"})
	require.NoError(t, err)
	assert.Equal(t, "m", res.Package.Metadata.Title)
}

func TestRegistryUnsupported(t *testing.T) {
	reg, err := formats.NewRegistry(stubAdapter{kinds: []string{"quiz"}})
	require.NoError(t, err)

	_, err = reg.Lookup("Open the box")
	require.Error(t, err)
	assert.True(t, errors.Is(err, formats.ErrUnsupportedTemplate))

	var ute *formats.UnsupportedTemplateError
	require.True(t, errors.As(err, &ute))
	assert.Equal(t, "Open the box", ute.Template)

	_, err = reg.Convert(activity.Activity{Template: ""})
	assert.ErrorIs(t, err, formats.ErrUnsupportedTemplate)
}

func TestRegistryRejectsDuplicateKinds(t *testing.T) {
	_, err := formats.NewRegistry(
		stubAdapter{kinds: []string{"quiz"}},
		stubAdapter{kinds: []string{"Q U I Z"}},
	)
	assert.Error(t, err)

	_, err = formats.NewRegistry(stubAdapter{kinds: []string{"  "}})
	assert.Error(t, err)
}

func TestRegistryKindsIsACopy(t *testing.T) {
	reg, err := formats.NewRegistry(stubAdapter{kinds: []string{"quiz"}})
	require.NoError(t, err)
	k := reg.Kinds()
	k[0] = "mutated"
	assert.Equal(t, []string{"quiz"}, reg.Kinds())
}
