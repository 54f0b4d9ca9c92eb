package calc

import (
	"math"

	"github.com/shopspring/decimal"

	"fincalc/domain"
)

var monthsPerYearPercent = decimal.NewFromInt(1200)

// Schedule breaks a loan into monthly periods of interest and principal.
//
// The payment from Loan is rounded to cents and interest is charged on the
// remaining balance each month, rounded to cents. The last period repays
// whatever balance is left, so the schedule always ends at exactly zero.
// Only terms covering a whole number of months, up to MaxMonths, are
// scheduled.
func Schedule(in domain.LoanInput) ([]domain.ScheduleEntry, domain.Outcome) {
	res, outcome := Loan(in)
	if outcome != domain.Computed {
		return nil, outcome
	}
	months := in.TermYears * 12
	if months > MaxMonths || months != math.Trunc(months) {
		return nil, domain.NeedsInput
	}
	n := int(months)

	payment := decimal.NewFromFloat(res.MonthlyPayment).Round(2)
	monthlyRate := decimal.NewFromFloat(in.AnnualRatePercent).Div(monthsPerYearPercent)
	remaining := decimal.NewFromFloat(in.Principal).Round(2)

	entries := make([]domain.ScheduleEntry, 0, n)
	for period := 1; period <= n; period++ {
		interest := remaining.Mul(monthlyRate).Round(2)
		principal := payment.Sub(interest)
		if period == n || principal.GreaterThan(remaining) {
			principal = remaining
		}

		remaining = remaining.Sub(principal)

		entries = append(entries, domain.ScheduleEntry{
			Period:           period,
			Payment:          principal.Add(interest),
			Principal:        principal,
			Interest:         interest,
			RemainingBalance: remaining,
		})
	}
	return entries, domain.Computed
}
