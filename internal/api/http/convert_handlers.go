package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"strconv"
	"strings"

	"github.com/mind-engage/eduport/internal/activity"
	auth "github.com/mind-engage/eduport/internal/auth/middleware"
	"github.com/mind-engage/eduport/internal/convert"
	"github.com/mind-engage/eduport/internal/extract"
	"github.com/mind-engage/eduport/internal/h5p"
	"github.com/mind-engage/eduport/internal/rbac"
)

const maxBody = 10 << 20

type convertRequest struct {
	Activity        json.RawMessage `json:"activity"`
	HTML            string          `json:"html"`
	URL             string          `json:"url"`
	AttestOwnership bool            `json:"attestOwnership"`
}

// activity resolves the request to one activity: an explicit record wins,
// otherwise the embedded payload of the supplied page.
func (req convertRequest) activity() (activity.Activity, error) {
	if !req.AttestOwnership {
		return activity.Activity{}, badRequest{"attestOwnership must be true"}
	}
	if len(req.Activity) > 0 && string(req.Activity) != "null" {
		a, err := activity.Decode(req.Activity)
		if err != nil {
			return activity.Activity{}, badRequest{"activity: " + err.Error()}
		}
		return a, nil
	}
	if strings.TrimSpace(req.HTML) != "" {
		a, _, err := extract.FromHTML([]byte(req.HTML), req.URL)
		return a, err
	}
	return activity.Activity{}, badRequest{"activity or html required"}
}

func decodeConvert(w http.ResponseWriter, r *http.Request) (activity.Activity, error) {
	var req convertRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
		return activity.Activity{}, badRequest{"bad json"}
	}
	return req.activity()
}

var unsafeName = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func fileName(title, id string) string {
	name := strings.Trim(unsafeName.ReplaceAllString(title, "-"), "-")
	if name == "" {
		name = id
	}
	return name + ".h5p"
}

// POST /api/convert
func ConvertHandler(p *Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := decodeConvert(w, r)
		if err != nil {
			writeError(w, err)
			return
		}
		ctx := r.Context()
		out, err := p.Run(ctx, auth.SubjectFromContext(ctx), rbac.TierFromContext(ctx), a)
		if err != nil {
			writeError(w, err)
			return
		}
		c := out.Conversion
		h := w.Header()
		h.Set("Content-Type", "application/zip")
		h.Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName(c.Title, c.ID)))
		h.Set("X-Conversion-Id", c.ID)
		h.Set("X-Conversion-Time-Ms", strconv.FormatInt(c.Elapsed.Milliseconds(), 10))
		h.Set("X-Template-Type", c.Kind)
		h.Set("X-Conversion-Warnings", strconv.Itoa(len(c.Warnings)))
		if out.PackageKey != "" {
			h.Set("X-Package-Key", out.PackageKey)
		}
		h.Set("Content-Length", strconv.Itoa(len(out.Archive)))
		_, _ = w.Write(out.Archive)
	}
}

// POST /api/convert/preview
//
// Preview neither counts against the quota nor records a conversion.
func PreviewHandler(svc *convert.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := decodeConvert(w, r)
		if err != nil {
			writeError(w, err)
			return
		}
		c, err := svc.Convert(r.Context(), a)
		if err != nil {
			writeError(w, err)
			return
		}
		meta, content, err := h5p.MarshalBlocks(c.Package, h5p.ArchiveOptions{Author: a.Metadata.Author})
		if err != nil {
			writeError(w, err)
			return
		}
		warnings := c.Warnings
		if warnings == nil {
			warnings = []string{}
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"template":    c.Kind,
			"h5pJson":     json.RawMessage(meta),
			"contentJson": json.RawMessage(content),
			"warnings":    warnings,
		})
	}
}

type bulkItem struct {
	Index        int    `json:"index"`
	SourceID     string `json:"sourceId,omitempty"`
	ConversionID string `json:"conversionId,omitempty"`
	Template     string `json:"template,omitempty"`
	Status       string `json:"status"`
	Error        string `json:"error,omitempty"`
	Warnings     int    `json:"warnings"`
	PackageKey   string `json:"packageKey,omitempty"`
}

// POST /api/bulk  { "activities": [...], "attestOwnership": true }
func BulkHandler(p *Pipeline) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Activities      []json.RawMessage `json:"activities"`
			AttestOwnership bool              `json:"attestOwnership"`
		}
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
			writeError(w, badRequest{"bad json"})
			return
		}
		switch {
		case !req.AttestOwnership:
			writeError(w, badRequest{"attestOwnership must be true"})
			return
		case len(req.Activities) == 0:
			writeError(w, badRequest{"activities required"})
			return
		case p.BulkMaxItems > 0 && len(req.Activities) > p.BulkMaxItems:
			writeError(w, badRequest{fmt.Sprintf("at most %d activities per request", p.BulkMaxItems)})
			return
		}

		ctx := r.Context()
		user := auth.SubjectFromContext(ctx)
		results := make([]bulkItem, len(req.Activities))
		acts := make([]activity.Activity, 0, len(req.Activities))
		slots := make([]int, 0, len(req.Activities))
		for i, raw := range req.Activities {
			a, err := activity.Decode(raw)
			if err != nil {
				results[i] = bulkItem{Index: i, Status: "failed", Error: err.Error()}
				continue
			}
			acts = append(acts, a)
			slots = append(slots, i)
		}

		for j, br := range p.Svc.ConvertBatch(ctx, acts, p.BulkConcurrency) {
			i := slots[j]
			a := acts[j]
			item := bulkItem{Index: i, SourceID: a.ID, Template: a.Template}
			if br.Err != nil {
				p.recordFailure(ctx, user, a, br.Err)
				item.Status, item.Error = "failed", br.Err.Error()
				results[i] = item
				continue
			}
			out, err := p.finish(ctx, user, a, br.Conversion)
			if err != nil {
				p.Log.Error().Err(err).Str("activity_id", a.ID).Msg("bulk finish")
				item.Status, item.Error = "failed", "internal error"
				results[i] = item
				continue
			}
			item.Status = "success"
			item.ConversionID = out.Conversion.ID
			item.Template = out.Conversion.Kind
			item.Warnings = len(out.Conversion.Warnings)
			item.PackageKey = out.PackageKey
			results[i] = item
		}

		succeeded := 0
		for _, it := range results {
			if it.Status == "success" {
				succeeded++
			}
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"results":   results,
			"total":     len(results),
			"succeeded": succeeded,
			"failed":    len(results) - succeeded,
		})
	}
}
