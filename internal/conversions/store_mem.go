package conversions

import (
	"context"
	"sort"
	"sync"
	"time"
)

// MemStore backs the offline CLI and tests.
type MemStore struct {
	mu   sync.RWMutex
	recs map[string]Record
}

func NewMemStore() *MemStore {
	return &MemStore{recs: map[string]Record{}}
}

func (m *MemStore) Put(_ context.Context, r Record) error {
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.recs[r.ID] = r
	return nil
}

func (m *MemStore) Get(_ context.Context, id string) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.recs[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return r, nil
}

func (m *MemStore) ListByUser(_ context.Context, userID string, limit int) ([]Record, error) {
	m.mu.RLock()
	out := []Record{}
	for _, r := range m.recs {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	m.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *MemStore) CountSince(_ context.Context, userID string, t time.Time) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := 0
	for _, r := range m.recs {
		if r.UserID == userID && r.Status == StatusSuccess && !r.CreatedAt.Before(t) {
			n++
		}
	}
	return n, nil
}
