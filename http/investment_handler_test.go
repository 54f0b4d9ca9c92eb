package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

type investmentBody struct {
	Status string `json:"status"`
	Result struct {
		FinalAmount        float64 `json:"final_amount"`
		TotalContributions float64 `json:"total_contributions"`
	} `json:"result"`
}

func TestInvestmentHandler_SimpleInterest(t *testing.T) {
	router, _ := newTestRouter(nil)

	w := post(router, "/investment/calculate", `{
		"principal": 100000,
		"annual_rate_percent": 7,
		"term_years": 10,
		"compounding": false
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body investmentBody
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Status != "ok" || body.Result.FinalAmount != 170000 {
		t.Errorf("unexpected response %+v", body)
	}
}

func TestInvestmentHandler_CompoundsByDefault(t *testing.T) {
	router, _ := newTestRouter(nil)

	w := post(router, "/investment/calculate", `{
		"principal": 100000,
		"annual_rate_percent": 7,
		"term_years": 10,
		"frequency": "daily"
	}`)

	var body investmentBody
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if body.Result.FinalAmount <= 170000 {
		t.Errorf("expected compounding to beat simple interest, got %v", body.Result.FinalAmount)
	}
}

func TestInvestmentHandler_UnknownFrequency(t *testing.T) {
	router, _ := newTestRouter(nil)

	w := post(router, "/investment/calculate", `{"principal": 1, "annual_rate_percent": 7, "term_years": 1, "frequency": "hourly"}`)

	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestInvestmentHandler_NeedsInput(t *testing.T) {
	router, _ := newTestRouter(nil)

	w := post(router, "/investment/calculate", `{}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body investmentBody
	_ = json.NewDecoder(w.Body).Decode(&body)
	if body.Status != "needs_input" {
		t.Errorf("expected needs_input, got %q", body.Status)
	}
}

func TestInvestmentHandler_CompareFrequencies(t *testing.T) {
	router, _ := newTestRouter(nil)

	w := post(router, "/investment/compare-frequencies", `{
		"principal": 10000,
		"monthly_contribution": 1000,
		"annual_rate_percent": 10,
		"term_years": 1
	}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Result []struct {
			Frequency string `json:"frequency"`
		} `json:"result"`
	}
	if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.Result) != 5 || body.Result[0].Frequency != "yearly" || body.Result[4].Frequency != "daily" {
		t.Errorf("unexpected projections %+v", body.Result)
	}
}

func TestHistoryHandler(t *testing.T) {
	router, _ := newTestRouter(nil)

	post(router, "/loan/calculate", `{"principal": 1000, "annual_rate_percent": 5, "term_years": 1}`)
	post(router, "/investment/calculate", `{"principal": 1000, "annual_rate_percent": 5, "term_years": 1}`)

	req := httptest.NewRequest(http.MethodGet, "/calculations?limit=1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var records []struct {
		Kind string `json:"kind"`
	}
	if err := json.NewDecoder(w.Body).Decode(&records); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(records) != 1 || records[0].Kind != "investment" {
		t.Errorf("expected the latest investment record, got %+v", records)
	}

	req = httptest.NewRequest(http.MethodGet, "/calculations?limit=zero", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a bad limit, got %d", w.Code)
	}
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d", w.Code)
	}
}
