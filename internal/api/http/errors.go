package http

import (
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"

	"github.com/mind-engage/eduport/internal/conversions"
	"github.com/mind-engage/eduport/internal/extract"
	"github.com/mind-engage/eduport/internal/formats"
)

var ErrQuotaExceeded = errors.New("monthly conversion quota exceeded")

// badRequest marks client input errors.
type badRequest struct{ msg string }

func (e badRequest) Error() string { return e.msg }

func statusOf(err error) int {
	var br badRequest
	switch {
	case errors.As(err, &br):
		return http.StatusBadRequest
	case errors.Is(err, formats.ErrUnsupportedTemplate), errors.Is(err, extract.ErrNoActivity):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrQuotaExceeded):
		return http.StatusTooManyRequests
	case errors.Is(err, conversions.ErrNotFound), errors.Is(err, fs.ErrNotExist):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError hides internal error text behind a generic message.
func writeError(w http.ResponseWriter, err error) {
	code := statusOf(err)
	msg := err.Error()
	if code == http.StatusInternalServerError {
		msg = "internal error"
	}
	writeJSON(w, code, map[string]string{"error": msg})
}
