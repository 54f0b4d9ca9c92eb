package calc

import (
	"math"

	"fincalc/domain"
)

// Investment projects the value of an initial lump sum plus monthly
// contributions at the end of the term.
//
// With compounding, interest is reinvested in.Frequency times a year and each
// contribution grows for the time left after the month it was made in.
// Without compounding, simple interest accrues on the principal only.
// Terms longer than MaxMonths yield domain.NeedsInput.
func Investment(in domain.InvestmentInput) (domain.InvestmentResult, domain.Outcome) {
	if !positive(in.AnnualRatePercent) || !positive(in.TermYears) || in.TermYears*12 > MaxMonths ||
		!nonNegative(in.Principal) || !nonNegative(in.MonthlyContribution) {
		return domain.InvestmentResult{}, domain.NeedsInput
	}

	rate := in.AnnualRatePercent / 100
	contributions := in.Principal + in.MonthlyContribution*in.TermYears*12

	var final float64
	if in.Compounding {
		periods := in.Frequency.PeriodsPerYear()
		periodicRate := rate / periods
		final = in.Principal*math.Pow(1+periodicRate, in.TermYears*periods) +
			contributionsValue(in.MonthlyContribution, periodicRate, periods, in.TermYears*12)
	} else {
		final = contributions + in.Principal*rate*in.TermYears
	}

	earnings := final - contributions
	var roi float64
	if contributions > 0 {
		roi = earnings / contributions * 100
	}

	return domain.InvestmentResult{
		FinalAmount:               final,
		TotalContributions:        contributions,
		TotalEarnings:             earnings,
		ReturnOnInvestmentPercent: roi,
	}, domain.Computed
}

// contributionsValue sums the future value of every monthly contribution.
// Remaining periods are fractional when the compounding frequency is not
// monthly, so each contribution is grown on its own.
func contributionsValue(monthly, periodicRate, periodsPerYear, months float64) float64 {
	if monthly <= 0 {
		return 0
	}
	var total float64
	for month := 1.0; month <= months; month++ {
		remaining := (months - month) / 12 * periodsPerYear
		total += monthly * math.Pow(1+periodicRate, remaining)
	}
	return total
}

// CompareFrequencies runs the investment with compounding at every frequency,
// from yearly to daily. in.Compounding and in.Frequency are ignored.
func CompareFrequencies(in domain.InvestmentInput) ([]domain.FrequencyProjection, domain.Outcome) {
	in.Compounding = true
	projections := make([]domain.FrequencyProjection, 0, len(domain.Frequencies()))
	for _, f := range domain.Frequencies() {
		in.Frequency = f
		res, outcome := Investment(in)
		if outcome != domain.Computed {
			return nil, outcome
		}
		projections = append(projections, domain.FrequencyProjection{Frequency: f, Result: res})
	}
	return projections, domain.Computed
}
