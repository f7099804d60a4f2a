package http

import (
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	auth "github.com/mind-engage/eduport/internal/auth/middleware"
	"github.com/mind-engage/eduport/internal/conversions"
	"github.com/mind-engage/eduport/internal/rbac"
	"github.com/mind-engage/eduport/internal/storage"
)

// GET /api/packages/{id}
func DownloadPackageHandler(ledger conversions.Store, bs storage.BlobStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		rec, err := ledger.Get(ctx, chi.URLParam(r, "id"))
		if err != nil {
			writeError(w, err)
			return
		}
		// other users' packages are reported as missing
		if rec.UserID != auth.SubjectFromContext(ctx) && rbac.TierFromContext(ctx) != rbac.TierAdmin {
			writeError(w, conversions.ErrNotFound)
			return
		}
		if rec.PackageKey == "" || bs == nil {
			writeJSON(w, http.StatusNotFound, map[string]string{"error": "package not stored"})
			return
		}
		rc, err := bs.Get(ctx, rec.PackageKey)
		if err != nil {
			writeError(w, err)
			return
		}
		defer rc.Close()
		w.Header().Set("Content-Type", "application/zip")
		w.Header().Set("Content-Disposition", "attachment; filename=\""+fileName(rec.Title, rec.ID)+"\"")
		_, _ = io.Copy(w, rc)
	}
}

// GET /api/conversions?limit=N
func ListConversionsHandler(ledger conversions.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 50
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				writeError(w, badRequest{"limit must be a non-negative integer"})
				return
			}
			limit = n
		}
		ctx := r.Context()
		recs, err := ledger.ListByUser(ctx, auth.SubjectFromContext(ctx), limit)
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"conversions": recs, "count": len(recs)})
	}
}

// DELETE /api/packages?olderThanHours=N
func CleanupPackagesHandler(bs storage.BlobStore, defHours int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		hours := defHours
		if v := r.URL.Query().Get("olderThanHours"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				writeError(w, badRequest{"olderThanHours must be a non-negative integer"})
				return
			}
			hours = n
		}
		if bs == nil {
			writeJSON(w, http.StatusOK, map[string]int{"removed": 0})
			return
		}
		n, err := bs.Cleanup(r.Context(), time.Now().Add(-time.Duration(hours)*time.Hour))
		if err != nil {
			writeError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]int{"removed": n})
	}
}

// Pinger is satisfied by *sql.DB.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// GET /api/health
func HealthHandler(version string, db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, dbState := "healthy", "up"
		if db == nil {
			dbState = "disabled"
		} else {
			ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
			defer cancel()
			if err := db.PingContext(ctx); err != nil {
				status, dbState = "degraded", "down"
			}
		}
		code := http.StatusOK
		if status != "healthy" {
			code = http.StatusServiceUnavailable
		}
		writeJSON(w, code, map[string]any{
			"status":    status,
			"timestamp": time.Now().UTC().Format(time.RFC3339),
			"version":   version,
			"services":  map[string]string{"converter": "up", "database": dbState},
		})
	}
}

// GET /api/templates
func TemplatesHandler(kinds []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"templates": kinds, "count": len(kinds)})
	}
}
