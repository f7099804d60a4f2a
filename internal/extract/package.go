package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/mind-engage/eduport/internal/activity"
)

// ServerModel is the set of assignments the activity page makes on its
// bootstrap object when no JSON payload is embedded.
type ServerModel struct {
	ActivityID    string
	ActivityGUID  string
	TemplateID    string
	ActivityTitle string
}

var (
	reGUID       = regexp.MustCompile(`s\.activityGuid\s*=\s*(["'])(.+?)["']`)
	reID         = regexp.MustCompile(`s\.activityId\s*=\s*Number\((\d+)\)`)
	reTemplateID = regexp.MustCompile(`s\.templateId\s*=\s*Number\((\d+)\)`)
	reTitle      = regexp.MustCompile(`s\.activityTitle\s*=\s*(["'])(.+?)["']`)
)

// ParseServerModel requires at least the guid and the numeric id.
func ParseServerModel(html []byte) (ServerModel, bool) {
	guid := reGUID.FindSubmatch(html)
	id := reID.FindSubmatch(html)
	if guid == nil || id == nil {
		return ServerModel{}, false
	}
	m := ServerModel{
		ActivityGUID: string(guid[2]),
		ActivityID:   string(id[1]),
		TemplateID:   "0",
	}
	if t := reTemplateID.FindSubmatch(html); t != nil {
		m.TemplateID = string(t[1])
	}
	if t := reTitle.FindSubmatch(html); t != nil {
		m.ActivityTitle = string(t[2])
	}
	return m, true
}

// TemplateFile is the entry of an activity package holding the items.
const TemplateFile = "template.xml"

var ErrNoTemplate = errors.New("extract: template.xml not found in activity package")

// FromPackage reads template.xml out of an activity package zip. The
// package layout is
//
//	<data>
//	  <item><text>question</text>
//	    <item><text>option</text><item><text>True</text></item></item>
//	  </item>
//	</data>
//
// where an option whose nested status text contains "True" is correct.
// Packages only carry question banks, so the template is always Quiz.
func FromPackage(zipBytes []byte, m ServerModel) (activity.Activity, error) {
	zr, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return activity.Activity{}, fmt.Errorf("open activity package: %w", err)
	}
	var f *zip.File
	for _, zf := range zr.File {
		if zf.Name == TemplateFile {
			f = zf
			break
		}
	}
	if f == nil {
		return activity.Activity{}, ErrNoTemplate
	}
	rc, err := f.Open()
	if err != nil {
		return activity.Activity{}, err
	}
	defer rc.Close()
	items, err := parseTemplate(rc)
	if err != nil {
		return activity.Activity{}, fmt.Errorf("parse %s: %w", TemplateFile, err)
	}

	title := m.ActivityTitle
	if title == "" {
		title = "Untitled Activity"
	}
	return activity.Activity{
		ID:       m.ActivityID,
		URL:      "https://wordwall.net/resource/" + m.ActivityID,
		Title:    title,
		Template: "Quiz",
		Content:  activity.Content{Items: items, Settings: map[string]any{}},
		Metadata: activity.Metadata{Language: "en"},
	}, nil
}

type xmlData struct {
	XMLName xml.Name  `xml:"data"`
	Items   []xmlItem `xml:"item"`
}

type xmlItem struct {
	Text  xmlText   `xml:"text"`
	Items []xmlItem `xml:"item"`
}

// xmlText collects all character data below the element, so <text><n>Q</n></text>
// and <text><![CDATA[Q]]></text> both read as "Q".
type xmlText string

func (t *xmlText) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	var b strings.Builder
	depth := 0
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch v := tok.(type) {
		case xml.CharData:
			b.Write(v)
		case xml.StartElement:
			depth++
		case xml.EndElement:
			if depth == 0 {
				*t = xmlText(cleanText(b.String()))
				return nil
			}
			depth--
		}
	}
}

var nTags = strings.NewReplacer("<n>", "", "</n>", "")

func cleanText(s string) string { return strings.TrimSpace(nTags.Replace(s)) }

func parseTemplate(r io.Reader) ([]activity.Item, error) {
	var data xmlData
	if err := xml.NewDecoder(r).Decode(&data); err != nil {
		return nil, err
	}
	items := make([]activity.Item, 0, len(data.Items))
	for _, q := range data.Items {
		options := make([]any, 0, len(q.Items))
		var correct string
		for _, o := range q.Items {
			text := string(o.Text)
			options = append(options, text)
			for _, status := range o.Items {
				if strings.Contains(string(status.Text), "True") {
					correct = text
				}
			}
		}
		it := activity.Item{
			"question": string(q.Text),
			"options":  options,
		}
		switch {
		case correct != "":
			it["answer"] = correct
			it["correctAnswer"] = correct
		case len(options) > 0:
			it["answer"] = options[0]
		}
		items = append(items, it)
	}
	return items, nil
}
