package conversions

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

// SQLStore works on both sqlite and postgres; both accept $n placeholders.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Put(ctx context.Context, r Record) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	_, err := s.db.ExecContext(ctx, `INSERT INTO conversions
		(id,user_id,source_id,source_url,template,title,status,error,warnings,latency_ms,package_key,created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (id) DO UPDATE SET status=EXCLUDED.status, error=EXCLUDED.error,
			warnings=EXCLUDED.warnings, latency_ms=EXCLUDED.latency_ms, package_key=EXCLUDED.package_key`,
		r.ID, r.UserID, r.SourceID, r.SourceURL, r.Template, r.Title, string(r.Status), r.Error,
		r.Warnings, r.LatencyMs, r.PackageKey, r.CreatedAt.UnixMilli())
	return err
}

const selectCols = `SELECT id,user_id,source_id,source_url,template,title,status,error,warnings,latency_ms,package_key,created_at FROM conversions`

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var r Record
	var status string
	var created int64
	if err := sc.Scan(&r.ID, &r.UserID, &r.SourceID, &r.SourceURL, &r.Template, &r.Title,
		&status, &r.Error, &r.Warnings, &r.LatencyMs, &r.PackageKey, &created); err != nil {
		return Record{}, err
	}
	r.Status = Status(status)
	r.CreatedAt = time.UnixMilli(created).UTC()
	return r, nil
}

func (s *SQLStore) Get(ctx context.Context, id string) (Record, error) {
	r, err := scanRecord(s.db.QueryRowContext(ctx, selectCols+` WHERE id=$1`, id))
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, ErrNotFound
	}
	return r, err
}

func (s *SQLStore) ListByUser(ctx context.Context, userID string, limit int) ([]Record, error) {
	q := selectCols + ` WHERE user_id=$1 ORDER BY created_at DESC, id DESC`
	args := []any{userID}
	if limit > 0 {
		q += ` LIMIT $2`
		args = append(args, limit)
	}
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := []Record{}
	for rows.Next() {
		r, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *SQLStore) CountSince(ctx context.Context, userID string, t time.Time) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM conversions WHERE user_id=$1 AND status=$2 AND created_at >= $3`,
		userID, string(StatusSuccess), t.UnixMilli(),
	).Scan(&n)
	return n, err
}
