package calc

import (
	"math"

	"fincalc/domain"
)

// Loan returns the fixed monthly payment of a fully amortizing fixed-rate
// loan along with its totals.
//
//	r       = annualRatePercent / 100 / 12
//	n       = termYears * 12
//	payment = P * r * (1+r)^n / ((1+r)^n - 1)
//
// A zero rate repays the principal in n equal parts.
func Loan(in domain.LoanInput) (domain.LoanResult, domain.Outcome) {
	if !positive(in.Principal) || !positive(in.TermYears) || !nonNegative(in.AnnualRatePercent) {
		return domain.LoanResult{}, domain.NeedsInput
	}

	r := in.AnnualRatePercent / 100 / 12
	n := in.TermYears * 12

	var payment float64
	growth := math.Pow(1+r, n)
	switch {
	case r == 0 || growth == 1:
		payment = in.Principal / n
	case math.IsInf(growth, 1):
		// limit of the formula as (1+r)^n grows without bound
		payment = in.Principal * r
	default:
		payment = in.Principal * r * growth / (growth - 1)
	}

	total := payment * n
	return domain.LoanResult{
		MonthlyPayment: payment,
		TotalPayment:   total,
		TotalInterest:  total - in.Principal,
	}, domain.Computed
}

// MaxMonths is the longest term that Schedule and Investment step through
// month by month. Longer terms yield domain.NeedsInput.
const MaxMonths = 1200

func positive(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}

func nonNegative(v float64) bool {
	return v >= 0 && !math.IsInf(v, 1)
}
