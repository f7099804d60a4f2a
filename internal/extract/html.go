// Package extract pulls a normalized activity out of an already-fetched
// activity page or activity package. It does no network I/O.
package extract

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/mind-engage/eduport/internal/activity"
)

// ErrNoActivity means no embedded payload carried both an id and a template.
var ErrNoActivity = errors.New("extract: no activity payload found")

var (
	reActivityModel = regexp.MustCompile(`(?s)window\.activityModel\s*=\s*(\{.*?\});`)
	reNextData      = regexp.MustCompile(`(?s)window\.__NEXT_DATA__\s*=\s*JSON\.parse\('(.+?)'\)`)
	reResourceID    = regexp.MustCompile(`/resource/(\d+)`)

	jsUnescaper = strings.NewReplacer(`\'`, `'`, `\"`, `"`, `\\`, `\`)
)

// pattern yields a candidate payload from the parsed page, or nil.
type pattern struct {
	name string
	find func(doc *goquery.Document) map[string]any
}

var patterns = []pattern{
	{"window.activityModel", func(doc *goquery.Document) map[string]any {
		return scanScripts(doc, func(src string) map[string]any {
			if m := reActivityModel.FindStringSubmatch(src); m != nil {
				return decodeObject(m[1])
			}
			return nil
		})
	}},
	{"window.__NEXT_DATA__", func(doc *goquery.Document) map[string]any {
		next := scanScripts(doc, func(src string) map[string]any {
			if m := reNextData.FindStringSubmatch(src); m != nil {
				return decodeObject(jsUnescaper.Replace(m[1]))
			}
			return nil
		})
		if next == nil {
			next = decodeObject(doc.Find("script#__NEXT_DATA__").First().Text())
		}
		return nextActivity(next)
	}},
	{"script#__ACTIVITY_DATA__", func(doc *goquery.Document) map[string]any {
		return decodeObject(doc.Find("script#__ACTIVITY_DATA__").First().Text())
	}},
	{"data-activity-json", func(doc *goquery.Document) map[string]any {
		v, ok := doc.Find("[data-activity-json]").First().Attr("data-activity-json")
		if !ok {
			return nil
		}
		return decodeObject(v)
	}},
}

// FromHTML tries each embedded-payload pattern in order and returns the
// first payload carrying an id and a template. pageURL fills Activity.URL
// when the payload has none.
func FromHTML(html []byte, pageURL string) (activity.Activity, string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return activity.Activity{}, "", fmt.Errorf("parse html: %w", err)
	}
	for _, p := range patterns {
		payload := p.find(doc)
		if payload == nil {
			continue
		}
		a, ok := normalize(payload)
		if !ok {
			continue
		}
		if a.URL == "" {
			a.URL = pageURL
		}
		return a, p.name, nil
	}
	return activity.Activity{}, "", ErrNoActivity
}

func scanScripts(doc *goquery.Document, fn func(string) map[string]any) map[string]any {
	var found map[string]any
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		found = fn(s.Text())
		return found == nil
	})
	return found
}

func nextActivity(next map[string]any) map[string]any {
	props, _ := next["props"].(map[string]any)
	if page, ok := props["pageProps"].(map[string]any); ok {
		if act, ok := page["activity"].(map[string]any); ok {
			return act
		}
	}
	act, _ := props["activity"].(map[string]any)
	return act
}

func decodeObject(s string) map[string]any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	var m map[string]any
	if err := json.Unmarshal([]byte(s), &m); err != nil {
		return nil
	}
	return m
}

// normalize maps the alternate payload field names onto Activity:
// id|activityId, title|name, template|type, content|data.
func normalize(p map[string]any) (activity.Activity, bool) {
	it := activity.Item(p)
	id := strings.TrimSpace(it.Resolve("id", "activityId"))
	tmpl := strings.TrimSpace(it.Resolve("template", "type"))
	if id == "" || tmpl == "" {
		return activity.Activity{}, false
	}
	doc := map[string]any{
		"id":       id,
		"url":      it.Text("url"),
		"title":    it.Resolve("title", "name"),
		"template": tmpl,
		"content":  firstPresent(p, "content", "data"),
		"metadata": firstPresent(p, "metadata"),
	}
	if doc["title"] == "" {
		doc["title"] = "Untitled Activity"
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return activity.Activity{}, false
	}
	a, err := activity.Decode(b)
	if err != nil {
		// metadata of the wrong shape; keep the rest
		delete(doc, "metadata")
		b, _ = json.Marshal(doc)
		if a, err = activity.Decode(b); err != nil {
			return activity.Activity{}, false
		}
	}
	return a, true
}

func firstPresent(p map[string]any, keys ...string) any {
	for _, k := range keys {
		if v, ok := p[k]; ok && v != nil {
			return v
		}
	}
	return nil
}

// ActivityIDFromURL returns the numeric id in a /resource/<id>/... URL.
func ActivityIDFromURL(u string) (string, error) {
	m := reResourceID.FindStringSubmatch(u)
	if m == nil {
		return "", fmt.Errorf("extract: no /resource/<id> in %q", u)
	}
	return m[1], nil
}
