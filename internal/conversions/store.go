// Package conversions keeps the per-user history of conversions and
// answers the monthly quota question.
package conversions

import (
	"context"
	"errors"
	"time"
)

type Status string

const (
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

var ErrNotFound = errors.New("conversion not found")

type Record struct {
	ID         string    `json:"id"`
	UserID     string    `json:"userId"`
	SourceID   string    `json:"sourceId"`
	SourceURL  string    `json:"sourceUrl,omitempty"`
	Template   string    `json:"template"`
	Title      string    `json:"title"`
	Status     Status    `json:"status"`
	Error      string    `json:"error,omitempty"`
	Warnings   int       `json:"warnings"`
	LatencyMs  int64     `json:"latencyMs"`
	PackageKey string    `json:"packageKey,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Store interface {
	Put(ctx context.Context, r Record) error
	Get(ctx context.Context, id string) (Record, error)
	// ListByUser returns newest first; limit <= 0 means no limit.
	ListByUser(ctx context.Context, userID string, limit int) ([]Record, error)
	// CountSince counts successful conversions by userID at or after t.
	CountSince(ctx context.Context, userID string, t time.Time) (int, error)
}

// MonthStart is the first instant of t's calendar month in UTC.
func MonthStart(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}
