package domain

type InvestmentInput struct {
	Principal           float64   `json:"principal"`
	MonthlyContribution float64   `json:"monthly_contribution"`
	AnnualRatePercent   float64   `json:"annual_rate_percent"`
	TermYears           float64   `json:"term_years"`
	Compounding         bool      `json:"compounding"`
	Frequency           Frequency `json:"frequency"`
}

type InvestmentResult struct {
	FinalAmount               float64 `json:"final_amount"`
	TotalContributions        float64 `json:"total_contributions"`
	TotalEarnings             float64 `json:"total_earnings"`
	ReturnOnInvestmentPercent float64 `json:"return_on_investment_percent"`
}

// FrequencyProjection is the outcome of one investment compounded at a
// given frequency.
type FrequencyProjection struct {
	Frequency Frequency        `json:"frequency"`
	Result    InvestmentResult `json:"result"`
}
