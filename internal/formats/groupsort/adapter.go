// Package groupsort converts group classification activities to
// H5P.DragText, one line per group: *Label*: :member: :member:
package groupsort

import (
	"strings"

	"github.com/mind-engage/eduport/internal/activity"
	"github.com/mind-engage/eduport/internal/formats"
	"github.com/mind-engage/eduport/internal/h5p"
	"github.com/mind-engage/eduport/internal/markup"
)

// Sentinel is emitted when no group survives filtering.
const Sentinel = "*Empty Group*: :Empty Item:"

type Adapter struct{}

func New() *Adapter { return &Adapter{} }

func (*Adapter) Kinds() []string { return []string{"groupsort", "categorize"} }

func (*Adapter) Convert(a activity.Activity) formats.Result {
	var gs *groups
	if len(a.Content.Groups) > 0 {
		gs = fromGroups(a.Content.Groups)
	} else {
		gs = fromItems(a.Content.Items)
	}

	content := h5p.DragText{
		TaskDescription: "Drag the items to their correct groups.",
		TextField:       gs.textField(),
		Behaviour: &h5p.DragBehaviour{
			EnableRetry:           true,
			EnableSolutionsButton: true,
			InstantFeedback:       new(bool),
		},
	}
	pkg := h5p.New(content, h5p.Options{
		Title:      a.TitleOr("Group Sort"),
		Language:   a.Language(),
		EmbedTypes: []string{"div"},
	})
	return formats.Result{Package: pkg}
}

// groups is an insertion-ordered label -> members map.
type groups struct {
	order   []string
	members map[string][]string
}

func newGroups() *groups { return &groups{members: map[string][]string{}} }

// set replaces the members of label, keeping its original position.
func (g *groups) set(label string, members []string) {
	if _, ok := g.members[label]; !ok {
		g.order = append(g.order, label)
	}
	g.members[label] = members
}

func (g *groups) add(label, member string) {
	if _, ok := g.members[label]; !ok {
		g.order = append(g.order, label)
	}
	g.members[label] = append(g.members[label], member)
}

func (g *groups) textField() string {
	var lines []string
	for _, label := range g.order {
		members := g.members[label]
		if len(members) == 0 {
			continue
		}
		var b strings.Builder
		b.WriteString(markup.Emphasis(markup.Escape(label)))
		b.WriteString(":")
		for _, m := range members {
			b.WriteString(" ")
			b.WriteString(markup.Dropzone(markup.Escape(m)))
		}
		lines = append(lines, b.String())
	}
	if len(lines) == 0 {
		return Sentinel
	}
	return strings.Join(lines, "\n")
}

// fromItems auto-detects the shape of each item:
//
//	A: prompt is the label, options are the members (replaces)
//	B: prompt is a member, answer names the group (appends)
//	C: {label, items} nested group (replaces)
func fromItems(items []activity.Item) *groups {
	g := newGroups()
	for _, it := range items {
		switch {
		case len(it.List(activity.OptionsKey)) > 0:
			if label := clean(it.Resolve(activity.PromptKeys...)); label != "" {
				g.set(label, members(it.Strings(activity.OptionsKey)))
			}
		case clean(it.Resolve(activity.GroupNameKeys...)) != "":
			label := clean(it.Resolve(activity.GroupNameKeys...))
			if m := clean(it.Resolve(activity.PromptKeys...)); m != "" {
				g.add(label, m)
			}
		case it.List(activity.GroupItemsKey) != nil:
			if label := clean(it.Resolve(activity.GroupLabelKeys...)); label != "" {
				g.set(label, members(it.Strings(activity.GroupItemsKey)))
			}
		}
	}
	return g
}

func fromGroups(list []activity.Item) *groups {
	g := newGroups()
	for _, grp := range list {
		if label := clean(grp.Resolve(activity.GroupLabelKeys...)); label != "" {
			g.set(label, members(grp.Strings(activity.GroupItemsKey)))
		}
	}
	return g
}

func members(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, m := range raw {
		if m = clean(m); m != "" {
			out = append(out, m)
		}
	}
	return out
}

func clean(s string) string { return strings.TrimSpace(s) }
