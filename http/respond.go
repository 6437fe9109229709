package http

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"techimpact/service"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error    string   `json:"error,omitempty"`
	State    string   `json:"state,omitempty"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
}

// writeJSON encodes before touching the response so a failed encode can
// still send a clean 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func writeText(w http.ResponseWriter, contentType, filename, body string) {
	w.Header().Set("Content-Type", contentType)
	if filename != "" {
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(body))
}

// writeCalculationError maps calculator errors to status codes: rejected
// tier schemes are 422, rejected inputs 400, anything else 500.
func writeCalculationError(w http.ResponseWriter, log zerolog.Logger, err error) {
	var tierErr *service.TierError
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &tierErr):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			State:    "Invalid Tiers",
			Errors:   tierErr.Result.Errors,
			Warnings: tierErr.Result.Warnings,
		})
	case errors.As(err, &validationErr):
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Errors:   validationErr.Result.Errors,
			Warnings: validationErr.Result.Warnings,
		})
	default:
		log.Error().Err(err).Msg("calculation failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

func methodNotAllowed(w http.ResponseWriter) {
	http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
}

func badRequestBody(w http.ResponseWriter) {
	http.Error(w, "invalid request body", http.StatusBadRequest)
}
