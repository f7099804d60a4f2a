package activity

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Item is a loosely typed source record. No key is guaranteed present.
type Item map[string]any

// Resolve returns the first candidate whose value renders to a non-blank
// string. A candidate "name.N" indexes into the list stored under name.
// The value is returned as written in the source, untrimmed.
func (it Item) Resolve(keys ...string) string {
	for _, k := range keys {
		if s, ok := it.lookup(k); ok && strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// Text renders a single key for display, "" when absent or null.
func (it Item) Text(key string) string {
	s, _ := it.lookup(key)
	return s
}

// Has reports a present, non-null value.
func (it Item) Has(key string) bool {
	v, ok := it[key]
	return ok && v != nil
}

// List returns the raw list under key, or nil when the value is not a list.
func (it Item) List(key string) []any {
	l, _ := it[key].([]any)
	return l
}

// Strings renders every element of the list under key. Null elements
// render as "".
func (it Item) Strings(key string) []string {
	l := it.List(key)
	if l == nil {
		return nil
	}
	out := make([]string, len(l))
	for i, v := range l {
		out[i], _ = render(v)
	}
	return out
}

// Bool reads the first candidate holding a bool or a "true"/"false" string.
func (it Item) Bool(keys ...string) (val bool, ok bool) {
	for _, k := range keys {
		switch t := it[k].(type) {
		case bool:
			return t, true
		case string:
			if b, err := strconv.ParseBool(strings.TrimSpace(t)); err == nil {
				return b, true
			}
		}
	}
	return false, false
}

// Int reads the first candidate holding an integral number or numeric string.
func (it Item) Int(keys ...string) (val int, ok bool) {
	for _, k := range keys {
		switch t := it[k].(type) {
		case float64:
			if t == float64(int(t)) {
				return int(t), true
			}
		case int:
			return t, true
		case json.Number:
			if n, err := t.Int64(); err == nil {
				return int(n), true
			}
		case string:
			if n, err := strconv.Atoi(strings.TrimSpace(t)); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}

func (it Item) lookup(key string) (string, bool) {
	if v, ok := it[key]; ok {
		return render(v)
	}
	name, idx, found := strings.Cut(key, ".")
	if !found {
		return "", false
	}
	n, err := strconv.Atoi(idx)
	if err != nil || n < 0 {
		return "", false
	}
	l := it.List(name)
	if n >= len(l) {
		return "", false
	}
	return render(l[n])
}

// render coerces a JSON scalar to its display form. Objects render through
// their own text-like fields so lists of {text: ...} read like lists of strings.
func render(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", false
	case string:
		return t, true
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), true
	case int:
		return strconv.Itoa(t), true
	case json.Number:
		return t.String(), true
	case bool:
		return strconv.FormatBool(t), true
	case map[string]any:
		s := Item(t).Resolve("text", "term", "label", "value")
		return s, s != ""
	case Item:
		s := t.Resolve("text", "term", "label", "value")
		return s, s != ""
	default:
		return "", false
	}
}
