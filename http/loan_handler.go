package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"fincalc/domain"
	"fincalc/service"
)

type LoanHandler struct {
	service *service.LoanService
	logger  *logrus.Logger
}

func NewLoanHandler(service *service.LoanService, logger *logrus.Logger) *LoanHandler {
	return &LoanHandler{service: service, logger: logger}
}

func (h *LoanHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/calculate", h.CalculateLoan).Methods(http.MethodPost)
	r.HandleFunc("/schedule", h.Schedule).Methods(http.MethodPost)
}

func (h *LoanHandler) CalculateLoan(w http.ResponseWriter, r *http.Request) {
	var input domain.LoanInput
	if !decodeJSON(w, r, h.logger, &input) {
		return
	}

	result, outcome, err := h.service.CalculateLoan(r.Context(), input)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	writeCalculation(w, h.logger, outcome, result)
}

func (h *LoanHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var input domain.LoanInput
	if !decodeJSON(w, r, h.logger, &input) {
		return
	}

	entries, outcome, err := h.service.Schedule(r.Context(), input)
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	writeCalculation(w, h.logger, outcome, entries)
}
