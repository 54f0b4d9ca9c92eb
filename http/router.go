package http

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Loan           *LoanHandler
	Investment     *InvestmentHandler
	TermComparison *TermComparisonHandler
	History        *HistoryHandler
}

// NewRouter wires every route. Calculation routes are rate limited when a
// limiter is given; /healthz never is.
func NewRouter(h Handlers, limiter *RateLimiter, logger *logrus.Logger) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := router.PathPrefix("/").Subrouter()
	if limiter != nil {
		api.Use(RateLimitMiddleware(limiter, logger))
	}

	loan := api.PathPrefix("/loan").Subrouter()
	h.Loan.RegisterRoutes(loan)
	loan.HandleFunc("/compare-terms", h.TermComparison.CompareTerms).Methods(http.MethodPost)

	h.Investment.RegisterRoutes(api.PathPrefix("/investment").Subrouter())

	api.HandleFunc("/calculations", h.History.List).Methods(http.MethodGet)

	return router
}
