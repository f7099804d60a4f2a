package formats

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"

	"github.com/mind-engage/eduport/internal/activity"
)

// ErrUnsupportedTemplate matches every *UnsupportedTemplateError via errors.Is.
var ErrUnsupportedTemplate = errors.New("unsupported template")

type UnsupportedTemplateError struct {
	Template string // as declared by the source
}

func (e *UnsupportedTemplateError) Error() string {
	return fmt.Sprintf("unsupported template: %q", e.Template)
}

func (e *UnsupportedTemplateError) Is(target error) bool { return target == ErrUnsupportedTemplate }

// NormalizeKind lowercases s and drops all whitespace, so "Missing Word",
// "missingword" and " MISSING  WORD " select the same adapter.
func NormalizeKind(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, s)
}

// Registry maps normalized kinds to adapters. It is built once and never
// mutated, so it is safe for concurrent use.
type Registry struct {
	byKind map[string]Adapter
	kinds  []string
}

// NewRegistry fails if two adapters claim the same normalized kind or an
// adapter claims a blank kind.
func NewRegistry(adapters ...Adapter) (*Registry, error) {
	r := &Registry{byKind: map[string]Adapter{}}
	for _, a := range adapters {
		for _, k := range a.Kinds() {
			nk := NormalizeKind(k)
			if nk == "" {
				return nil, fmt.Errorf("formats: %T claims a blank kind", a)
			}
			if prev, dup := r.byKind[nk]; dup {
				return nil, fmt.Errorf("formats: kind %q claimed by both %T and %T", nk, prev, a)
			}
			r.byKind[nk] = a
			r.kinds = append(r.kinds, nk)
		}
	}
	sort.Strings(r.kinds)
	return r, nil
}

// Lookup returns the adapter for a declared template kind.
func (r *Registry) Lookup(template string) (Adapter, error) {
	if a, ok := r.byKind[NormalizeKind(template)]; ok {
		return a, nil
	}
	return nil, &UnsupportedTemplateError{Template: template}
}

// Kinds returns every supported normalized kind, sorted.
func (r *Registry) Kinds() []string {
	return append([]string(nil), r.kinds...)
}

// Convert dispatches on a.Template and runs the adapter.
func (r *Registry) Convert(a activity.Activity) (Result, error) {
	ad, err := r.Lookup(a.Template)
	if err != nil {
		return Result{}, err
	}
	return ad.Convert(a), nil
}
