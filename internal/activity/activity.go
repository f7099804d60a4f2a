package activity

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Activity is one scraped source activity, already normalized by the extractor.
type Activity struct {
	ID       string   `json:"id"`
	URL      string   `json:"url,omitempty"`
	Title    string   `json:"title"`
	Template string   `json:"template"` // free text kind, e.g. "Missing Word"
	Content  Content  `json:"content"`
	Metadata Metadata `json:"metadata"`
}

type Metadata struct {
	Language  string `json:"language,omitempty"`
	Author    string `json:"author,omitempty"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// TitleOr returns the trimmed title or def when the title is blank.
func (a Activity) TitleOr(def string) string {
	if t := strings.TrimSpace(a.Title); t != "" {
		return t
	}
	return def
}

// Language defaults to "en".
func (a Activity) Language() string {
	if l := strings.TrimSpace(a.Metadata.Language); l != "" {
		return l
	}
	return "en"
}

// Content holds the item list of an activity.
//
// Decoding never fails on shape: an "items" value that is not an array
// leaves Items empty and sets Malformed, scalar elements become
// Item{"text": v} and null elements become empty items.
type Content struct {
	Items     []Item
	Groups    []Item
	Settings  map[string]any
	Malformed bool
}

type contentWire struct {
	Items    []Item         `json:"items"`
	Groups   []Item         `json:"groups,omitempty"`
	Settings map[string]any `json:"settings,omitempty"`
}

func (c Content) MarshalJSON() ([]byte, error) {
	w := contentWire{Items: c.Items, Groups: c.Groups, Settings: c.Settings}
	if w.Items == nil {
		w.Items = []Item{}
	}
	return json.Marshal(w)
}

func (c *Content) UnmarshalJSON(b []byte) error {
	*c = Content{}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil || raw == nil {
		c.Malformed = !isNull(b)
		return nil
	}
	var bad bool
	c.Items, bad = decodeList(raw["items"])
	c.Malformed = bad
	c.Groups, _ = decodeList(raw["groups"])
	if s, ok := raw["settings"]; ok {
		_ = json.Unmarshal(s, &c.Settings)
	}
	return nil
}

// decodeList reports bad=true when the value is present but not an array.
func decodeList(b json.RawMessage) (items []Item, bad bool) {
	if len(b) == 0 || isNull(b) {
		return nil, false
	}
	var elems []any
	if err := json.Unmarshal(b, &elems); err != nil {
		return nil, true
	}
	items = make([]Item, 0, len(elems))
	for _, e := range elems {
		items = append(items, toItem(e))
	}
	return items, false
}

func toItem(v any) Item {
	switch t := v.(type) {
	case nil:
		return Item{}
	case map[string]any:
		return Item(t)
	default:
		return Item{"text": t}
	}
}

func isNull(b []byte) bool {
	return bytes.Equal(bytes.TrimSpace(b), []byte("null"))
}

// Decode parses a JSON activity document.
func Decode(b []byte) (Activity, error) {
	var a Activity
	if err := json.Unmarshal(b, &a); err != nil {
		return Activity{}, err
	}
	return a, nil
}
