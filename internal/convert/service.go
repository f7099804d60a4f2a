package convert

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/mind-engage/eduport/internal/activity"
	"github.com/mind-engage/eduport/internal/formats"
	"github.com/mind-engage/eduport/internal/h5p"
)

// Conversion is the outcome of one successful dispatch.
type Conversion struct {
	ID       string
	SourceID string
	Template string // as declared by the source
	Kind     string // normalized
	Title    string
	Package  h5p.Package
	Warnings []string
	Elapsed  time.Duration
}

// Service runs activities through the adapter registry. Adapters hold no
// state, so one Service serves concurrent callers.
type Service struct {
	reg *formats.Registry
	log zerolog.Logger
}

func New(reg *formats.Registry, log zerolog.Logger) *Service {
	return &Service{reg: reg, log: log}
}

// Kinds lists the supported normalized template kinds.
func (s *Service) Kinds() []string { return s.reg.Kinds() }

// Convert fails only for an unsupported template or a cancelled context.
func (s *Service) Convert(ctx context.Context, a activity.Activity) (Conversion, error) {
	if err := ctx.Err(); err != nil {
		return Conversion{}, err
	}
	start := time.Now()
	ad, err := s.reg.Lookup(a.Template)
	if err != nil {
		s.log.Info().Str("activity_id", a.ID).Str("template", a.Template).Msg("unsupported template")
		return Conversion{}, err
	}
	if a.Content.Malformed {
		s.log.Warn().Str("activity_id", a.ID).Msg("content.items is not a list, converting as empty")
	}
	res := ad.Convert(a)

	c := Conversion{
		ID:       uuid.NewString(),
		SourceID: a.ID,
		Template: a.Template,
		Kind:     formats.NormalizeKind(a.Template),
		Title:    res.Package.Metadata.Title,
		Package:  res.Package,
		Warnings: res.Warnings,
		Elapsed:  time.Since(start),
	}
	for _, w := range c.Warnings {
		s.log.Warn().Str("conversion_id", c.ID).Str("activity_id", a.ID).Msg(w)
	}
	s.log.Debug().
		Str("conversion_id", c.ID).
		Str("kind", c.Kind).
		Str("library", c.Package.Metadata.MainLibrary).
		Int("items", len(a.Content.Items)).
		Dur("elapsed", c.Elapsed).
		Msg("converted")
	return c, nil
}

// BatchResult pairs an input position with its outcome.
type BatchResult struct {
	Index      int
	Conversion Conversion
	Err        error
}

// ConvertBatch converts acts with at most limit in flight. Failures are
// per item; results come back in input order.
func (s *Service) ConvertBatch(ctx context.Context, acts []activity.Activity, limit int) []BatchResult {
	if limit <= 0 {
		limit = 4
	}
	out := make([]BatchResult, len(acts))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, a := range acts {
		i, a := i, a
		g.Go(func() error {
			c, err := s.Convert(gctx, a)
			out[i] = BatchResult{Index: i, Conversion: c, Err: err}
			return nil
		})
	}
	_ = g.Wait()
	return out
}
