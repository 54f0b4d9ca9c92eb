package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"fincalc/domain"
	"fincalc/service"
)

// investmentRequest mirrors domain.InvestmentInput, with compounding on
// unless the client turns it off.
type investmentRequest struct {
	Principal           float64          `json:"principal"`
	MonthlyContribution float64          `json:"monthly_contribution"`
	AnnualRatePercent   float64          `json:"annual_rate_percent"`
	TermYears           float64          `json:"term_years"`
	Compounding         *bool            `json:"compounding"`
	Frequency           domain.Frequency `json:"frequency"`
}

func (req investmentRequest) input() domain.InvestmentInput {
	compounding := true
	if req.Compounding != nil {
		compounding = *req.Compounding
	}
	return domain.InvestmentInput{
		Principal:           req.Principal,
		MonthlyContribution: req.MonthlyContribution,
		AnnualRatePercent:   req.AnnualRatePercent,
		TermYears:           req.TermYears,
		Compounding:         compounding,
		Frequency:           req.Frequency,
	}
}

type InvestmentHandler struct {
	service *service.InvestmentService
	logger  *logrus.Logger
}

func NewInvestmentHandler(service *service.InvestmentService, logger *logrus.Logger) *InvestmentHandler {
	return &InvestmentHandler{service: service, logger: logger}
}

func (h *InvestmentHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/calculate", h.Calculate).Methods(http.MethodPost)
	r.HandleFunc("/compare-frequencies", h.CompareFrequencies).Methods(http.MethodPost)
}

func (h *InvestmentHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req investmentRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	result, outcome, err := h.service.Calculate(r.Context(), req.input())
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	writeCalculation(w, h.logger, outcome, result)
}

func (h *InvestmentHandler) CompareFrequencies(w http.ResponseWriter, r *http.Request) {
	var req investmentRequest
	if !decodeJSON(w, r, h.logger, &req) {
		return
	}

	projections, outcome, err := h.service.CompareFrequencies(r.Context(), req.input())
	if err != nil {
		writeError(w, h.logger, http.StatusBadRequest, err.Error())
		return
	}

	writeCalculation(w, h.logger, outcome, projections)
}
