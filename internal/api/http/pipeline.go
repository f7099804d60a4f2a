package http

import (
	"bytes"
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mind-engage/eduport/internal/activity"
	"github.com/mind-engage/eduport/internal/convert"
	"github.com/mind-engage/eduport/internal/conversions"
	"github.com/mind-engage/eduport/internal/h5p"
	"github.com/mind-engage/eduport/internal/rbac"
	"github.com/mind-engage/eduport/internal/storage"
)

// Pipeline runs a conversion end to end: quota, dispatch, archive,
// optional blob storage and the ledger record.
type Pipeline struct {
	Svc    *convert.Service
	Ledger conversions.Store
	Blobs  storage.BlobStore // nil disables package storage
	Log    zerolog.Logger

	FreeMonthlyQuota int
	BulkMaxItems     int
	BulkConcurrency  int

	Now func() time.Time
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}

// Output is one finished conversion.
type Output struct {
	Conversion convert.Conversion
	Archive    []byte
	PackageKey string
}

func (p *Pipeline) checkQuota(ctx context.Context, user, tier string) error {
	if tier != rbac.TierFree || user == "" || p.FreeMonthlyQuota <= 0 {
		return nil
	}
	n, err := p.Ledger.CountSince(ctx, user, conversions.MonthStart(p.now()))
	if err != nil {
		return err
	}
	if n >= p.FreeMonthlyQuota {
		return ErrQuotaExceeded
	}
	return nil
}

// Run converts a for user. Unsupported templates are recorded as failed.
func (p *Pipeline) Run(ctx context.Context, user, tier string, a activity.Activity) (Output, error) {
	if err := p.checkQuota(ctx, user, tier); err != nil {
		return Output{}, err
	}
	c, err := p.Svc.Convert(ctx, a)
	if err != nil {
		p.recordFailure(ctx, user, a, err)
		return Output{}, err
	}
	return p.finish(ctx, user, a, c)
}

func (p *Pipeline) finish(ctx context.Context, user string, a activity.Activity, c convert.Conversion) (Output, error) {
	archive, err := h5p.Build(c.Package, h5p.ArchiveOptions{Author: a.Metadata.Author})
	if err != nil {
		return Output{}, err
	}
	out := Output{Conversion: c, Archive: archive}
	if p.Blobs != nil && user != "" {
		key, err := p.Blobs.Put(ctx, storage.PackageKey(user, c.ID), bytes.NewReader(archive))
		if err != nil {
			return Output{}, err
		}
		out.PackageKey = key
	}
	rec := conversions.Record{
		ID:         c.ID,
		UserID:     user,
		SourceID:   a.ID,
		SourceURL:  a.URL,
		Template:   c.Kind,
		Title:      c.Title,
		Status:     conversions.StatusSuccess,
		Warnings:   len(c.Warnings),
		LatencyMs:  c.Elapsed.Milliseconds(),
		PackageKey: out.PackageKey,
		CreatedAt:  p.now(),
	}
	if err := p.Ledger.Put(ctx, rec); err != nil {
		p.Log.Error().Err(err).Str("conversion_id", c.ID).Msg("record conversion")
	}
	return out, nil
}

func (p *Pipeline) recordFailure(ctx context.Context, user string, a activity.Activity, cause error) {
	rec := conversions.Record{
		ID:        uuid.NewString(),
		UserID:    user,
		SourceID:  a.ID,
		SourceURL: a.URL,
		Template:  a.Template,
		Title:     a.Title,
		Status:    conversions.StatusFailed,
		Error:     cause.Error(),
		CreatedAt: p.now(),
	}
	if err := p.Ledger.Put(ctx, rec); err != nil {
		p.Log.Error().Err(err).Str("activity_id", a.ID).Msg("record failed conversion")
	}
}
