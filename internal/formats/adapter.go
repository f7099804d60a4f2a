package formats

import (
	"github.com/mind-engage/eduport/internal/activity"
	"github.com/mind-engage/eduport/internal/h5p"
)

// Adapter converts one source template family into an H5P package.
// Convert must be total: missing or malformed fields degrade to defaults
// and never fail the conversion.
type Adapter interface {
	// Kinds lists the normalized template kinds this adapter claims.
	Kinds() []string
	Convert(a activity.Activity) Result
}

// Result is a converted package plus non-fatal diagnostics.
type Result struct {
	Package  h5p.Package
	Warnings []string
}
