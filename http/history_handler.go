package http

import (
	"net/http"
	"strconv"

	"github.com/sirupsen/logrus"

	"fincalc/repository"
	"fincalc/service"
)

type HistoryHandler struct {
	repo   repository.CalculationRepository
	logger *logrus.Logger
}

func NewHistoryHandler(repo repository.CalculationRepository, logger *logrus.Logger) *HistoryHandler {
	return &HistoryHandler{repo: repo, logger: logger}
}

// List returns recent calculations, newest first. ?limit=N caps the count.
func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	limit := service.DefaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeError(w, h.logger, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	records, err := h.repo.List(r.Context(), limit)
	if err != nil {
		h.logger.WithError(err).Error("error listing calculations")
		writeError(w, h.logger, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, h.logger, http.StatusOK, records)
}
