package h5p

// Metadata is the h5p.json block.
type Metadata struct {
	Title                 string       `json:"title"`
	Language              string       `json:"language"`
	MainLibrary           string       `json:"mainLibrary"`
	EmbedTypes            []string     `json:"embedTypes"`
	License               string       `json:"license"`
	PreloadedDependencies []Dependency `json:"preloadedDependencies"`
}

// Package is a converted activity: metadata plus a content block whose
// shape is fixed by Metadata.MainLibrary.
type Package struct {
	Metadata Metadata
	Content  Content
}

type Options struct {
	Title      string
	Language   string
	EmbedTypes []string // default ["iframe"]
	License    string   // default "U"
	// Extra libraries preloaded after the main library.
	Dependencies []Dependency
}

// New derives mainLibrary and the leading dependency from c so the two
// blocks cannot disagree.
func New(c Content, o Options) Package {
	main := c.Library()
	deps := []Dependency{main}
	for _, d := range o.Dependencies {
		if !containsDep(deps, d) {
			deps = append(deps, d)
		}
	}
	embed := o.EmbedTypes
	if len(embed) == 0 {
		embed = []string{"iframe"}
	}
	lic := o.License
	if lic == "" {
		lic = "U"
	}
	lang := o.Language
	if lang == "" {
		lang = "en"
	}
	return Package{
		Metadata: Metadata{
			Title:                 o.Title,
			Language:              lang,
			MainLibrary:           main.MachineName,
			EmbedTypes:            append([]string(nil), embed...),
			License:               lic,
			PreloadedDependencies: deps,
		},
		Content: c,
	}
}

func containsDep(deps []Dependency, d Dependency) bool {
	for _, x := range deps {
		if x.MachineName == d.MachineName {
			return true
		}
	}
	return false
}
