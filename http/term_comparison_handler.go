package http

import (
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"

	"fincalc/domain"
	"fincalc/service"
)

type TermComparisonHandler struct {
	service *service.TermComparisonService
	logger  *logrus.Logger
}

func NewTermComparisonHandler(service *service.TermComparisonService, logger *logrus.Logger) *TermComparisonHandler {
	return &TermComparisonHandler{service: service, logger: logger}
}

func (h *TermComparisonHandler) CompareTerms(w http.ResponseWriter, r *http.Request) {
	contentType := r.Header.Get("Content-Type")
	if !strings.Contains(contentType, "application/json") {
		writeError(w, h.logger, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var input domain.TermComparisonInput
	if !decodeJSON(w, r, h.logger, &input) {
		return
	}

	result, err := h.service.CompareTerms(input)
	if err != nil {
		h.logger.WithError(err).Debug("error comparing terms")
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, h.logger, http.StatusOK, result)
}
