package http

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/sirupsen/logrus"

	"fincalc/domain"
)

// calculationResponse wraps a calculator result. Result is omitted when the
// status is needs_input.
type calculationResponse struct {
	Status domain.Outcome `json:"status"`
	Result any            `json:"result,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeCalculation(w http.ResponseWriter, logger *logrus.Logger, outcome domain.Outcome, result any) {
	resp := calculationResponse{Status: outcome}
	if outcome == domain.Computed {
		resp.Result = result
	}
	writeJSON(w, logger, http.StatusOK, resp)
}

func writeError(w http.ResponseWriter, logger *logrus.Logger, status int, msg string) {
	writeJSON(w, logger, status, errorResponse{Error: msg})
}

// writeJSON encodes into a buffer first so a failed encoding never leaves a
// half-written response behind.
func writeJSON(w http.ResponseWriter, logger *logrus.Logger, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		logger.WithError(err).Error("error encoding response")
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		logger.WithError(err).Warn("error writing response")
	}
}

// decodeJSON reads the request body into dst, answering 400 on failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, logger *logrus.Logger, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.WithError(err).WithField("path", r.URL.Path).Debug("error decoding request body")
		writeError(w, logger, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}
