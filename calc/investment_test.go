package calc

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fincalc/domain"
)

func TestInvestment_SimpleInterest(t *testing.T) {
	res, outcome := Investment(domain.InvestmentInput{
		Principal:         100000,
		AnnualRatePercent: 7,
		TermYears:         10,
		Compounding:       false,
		Frequency:         domain.Daily,
	})
	require.Equal(t, domain.Computed, outcome)

	assert.InDelta(t, 170000, res.FinalAmount, 1e-6)
	assert.Equal(t, 100000.0, res.TotalContributions)
	assert.InDelta(t, 70000, res.TotalEarnings, 1e-6)
	assert.InDelta(t, 70, res.ReturnOnInvestmentPercent, 1e-9)
}

func TestInvestment_SimpleInterestIgnoresContributions(t *testing.T) {
	res, outcome := Investment(domain.InvestmentInput{
		Principal:           1000,
		MonthlyContribution: 100,
		AnnualRatePercent:   10,
		TermYears:           2,
	})
	require.Equal(t, domain.Computed, outcome)

	assert.InDelta(t, 1000+2400+200, res.FinalAmount, 1e-9)
}

func TestInvestment_LumpSumMonthlyCompounding(t *testing.T) {
	res, outcome := Investment(domain.InvestmentInput{
		Principal:         10000,
		AnnualRatePercent: 10,
		TermYears:         1,
		Compounding:       true,
		Frequency:         domain.Monthly,
	})
	require.Equal(t, domain.Computed, outcome)

	assert.InDelta(t, 10000*math.Pow(1+0.1/12, 12), res.FinalAmount, 1e-9)
	assert.InDelta(t, 11047.13, res.FinalAmount, 0.005)
}

func TestInvestment_MonthlyCompoundingMatchesAnnuity(t *testing.T) {
	const contribution, rate, years = 5000.0, 0.07, 10.0
	res, outcome := Investment(domain.InvestmentInput{
		Principal:           100000,
		MonthlyContribution: contribution,
		AnnualRatePercent:   rate * 100,
		TermYears:           years,
		Compounding:         true,
		Frequency:           domain.Monthly,
	})
	require.Equal(t, domain.Computed, outcome)

	// contributions at the end of each month form an ordinary annuity
	i := rate / 12
	n := years * 12
	want := 100000*math.Pow(1+i, n) + contribution*(math.Pow(1+i, n)-1)/i
	assert.InEpsilon(t, want, res.FinalAmount, 1e-9)
}

func TestInvestment_ContributionsGrowForRemainingTime(t *testing.T) {
	res, outcome := Investment(domain.InvestmentInput{
		MonthlyContribution: 100,
		AnnualRatePercent:   12,
		TermYears:           0.25,
		Compounding:         true,
		Frequency:           domain.Daily,
	})
	require.Equal(t, domain.Computed, outcome)

	// three deposits growing for two months, one month and nothing
	daily := 1 + 0.12/365
	want := 100*math.Pow(daily, 2.0/12*365) + 100*math.Pow(daily, 1.0/12*365) + 100
	assert.InDelta(t, want, res.FinalAmount, 1e-9)
	assert.Equal(t, 300.0, res.TotalContributions)
}

func TestInvestment_DailyBeatsYearly(t *testing.T) {
	for _, principal := range []float64{0, 10000, 250000} {
		for _, monthly := range []float64{0, 100, 5000} {
			for _, rate := range []float64{0.5, 7, 25} {
				for _, years := range []float64{0.5, 1, 10, 40} {
					if principal == 0 && monthly == 0 {
						continue
					}
					in := domain.InvestmentInput{
						Principal:           principal,
						MonthlyContribution: monthly,
						AnnualRatePercent:   rate,
						TermYears:           years,
						Compounding:         true,
					}
					name := fmt.Sprintf("%v/%v/%v/%v", principal, monthly, rate, years)

					in.Frequency = domain.Daily
					daily, outcome := Investment(in)
					require.Equal(t, domain.Computed, outcome, name)
					in.Frequency = domain.Yearly
					yearly, _ := Investment(in)

					assert.GreaterOrEqual(t, daily.FinalAmount, yearly.FinalAmount, name)
				}
			}
		}
	}
}

func TestInvestment_ContributionAccounting(t *testing.T) {
	base := domain.InvestmentInput{
		Principal:           12345.67,
		MonthlyContribution: 321.5,
		AnnualRatePercent:   6.25,
		TermYears:           7.5,
	}
	want := base.Principal + base.MonthlyContribution*base.TermYears*12

	check := func(in domain.InvestmentInput) {
		res, outcome := Investment(in)
		require.Equal(t, domain.Computed, outcome)
		assert.Equal(t, want, res.TotalContributions)
		assert.Equal(t, res.FinalAmount-res.TotalContributions, res.TotalEarnings)
		assert.Equal(t, res.TotalEarnings/res.TotalContributions*100, res.ReturnOnInvestmentPercent)
	}

	check(base)
	for _, f := range domain.Frequencies() {
		in := base
		in.Compounding = true
		in.Frequency = f
		check(in)
	}
}

func TestInvestment_ZeroContributionsHasZeroROI(t *testing.T) {
	res, outcome := Investment(domain.InvestmentInput{
		AnnualRatePercent: 5,
		TermYears:         3,
		Compounding:       true,
	})
	require.Equal(t, domain.Computed, outcome)

	assert.Equal(t, 0.0, res.TotalContributions)
	assert.Equal(t, 0.0, res.ReturnOnInvestmentPercent)
}

func TestInvestment_Deterministic(t *testing.T) {
	in := domain.InvestmentInput{
		Principal:           5000,
		MonthlyContribution: 250,
		AnnualRatePercent:   8,
		TermYears:           15,
		Compounding:         true,
		Frequency:           domain.Weekly,
	}
	first, _ := Investment(in)
	second, _ := Investment(in)
	assert.Equal(t, first, second)
}

func TestInvestment_NeedsInput(t *testing.T) {
	cases := map[string]domain.InvestmentInput{
		"all zero":              {},
		"zero rate":             {Principal: 1000, TermYears: 5, Compounding: true},
		"zero term":             {Principal: 1000, AnnualRatePercent: 5},
		"negative principal":    {Principal: -1, AnnualRatePercent: 5, TermYears: 1},
		"negative contribution": {MonthlyContribution: -10, AnnualRatePercent: 5, TermYears: 1},
		"NaN term":              {Principal: 1000, AnnualRatePercent: 5, TermYears: math.NaN()},
		"term too long":         {MonthlyContribution: 1, AnnualRatePercent: 5, TermYears: 1e15, Compounding: true},
		"one month too long":    {Principal: 1000, AnnualRatePercent: 5, TermYears: (MaxMonths + 1) / 12.0},
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			res, outcome := Investment(in)
			assert.Equal(t, domain.NeedsInput, outcome)
			assert.Equal(t, domain.InvestmentResult{}, res)
		})
	}
}

func TestInvestment_LongestTerm(t *testing.T) {
	res, outcome := Investment(domain.InvestmentInput{
		MonthlyContribution: 100,
		AnnualRatePercent:   5,
		TermYears:           MaxMonths / 12,
		Compounding:         true,
		Frequency:           domain.Daily,
	})
	require.Equal(t, domain.Computed, outcome)
	assert.Equal(t, 100.0*MaxMonths, res.TotalContributions)
}

func TestCompareFrequencies(t *testing.T) {
	projections, outcome := CompareFrequencies(domain.InvestmentInput{
		Principal:           10000,
		MonthlyContribution: 1000,
		AnnualRatePercent:   10,
		TermYears:           1,
	})
	require.Equal(t, domain.Computed, outcome)
	require.Len(t, projections, 5)

	assert.Equal(t, domain.Yearly, projections[0].Frequency)
	assert.Equal(t, domain.Daily, projections[4].Frequency)
	for i := 1; i < len(projections); i++ {
		assert.Greater(t, projections[i].Result.FinalAmount, projections[i-1].Result.FinalAmount,
			"%s should beat %s", projections[i].Frequency, projections[i-1].Frequency)
	}

	_, outcome = CompareFrequencies(domain.InvestmentInput{Principal: 10000})
	assert.Equal(t, domain.NeedsInput, outcome)
}
