package service

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"fincalc/calc"
	"fincalc/domain"
)

const (
	PreferenceMinimizeInterest = "minimize_interest"
	PreferenceMinimizePayment  = "minimize_payment"
	PreferenceBalanced         = "balanced"
)

var preferences = map[string]bool{
	PreferenceMinimizeInterest: true,
	PreferenceMinimizePayment:  true,
	PreferenceBalanced:         true,
}

type TermComparisonService struct {
	logger *logrus.Logger
}

func NewTermComparisonService(logger *logrus.Logger) *TermComparisonService {
	return &TermComparisonService{logger: logger}
}

// CompareTerms evaluates every whole-year term in the range and ranks the
// ones whose monthly payment fits the budget.
func (s *TermComparisonService) CompareTerms(
	input domain.TermComparisonInput,
) (domain.TermComparisonResult, error) {

	if input.Principal <= 0 {
		return domain.TermComparisonResult{}, errors.New("invalid principal")
	}
	if input.Principal > MaxLoanAmount {
		return domain.TermComparisonResult{}, fmt.Errorf("%w: principal exceeds the maximum of %.2f", ErrOutOfRange, MaxLoanAmount)
	}
	if input.AnnualRatePercent < 0 {
		return domain.TermComparisonResult{}, errors.New("invalid interest rate")
	}
	if input.AnnualRatePercent > MaxInterestRate {
		return domain.TermComparisonResult{}, fmt.Errorf("%w: interest rate exceeds the maximum of %.2f%%", ErrOutOfRange, MaxInterestRate)
	}
	if input.MinTermYears <= 0 || input.MaxTermYears <= 0 {
		return domain.TermComparisonResult{}, fmt.Errorf("%w: terms must be positive", ErrInvalidRange)
	}
	if input.MinTermYears > input.MaxTermYears {
		return domain.TermComparisonResult{}, fmt.Errorf("%w: minimum term is greater than maximum", ErrInvalidRange)
	}
	if input.MaxTermYears > MaxLoanTermYears {
		return domain.TermComparisonResult{}, fmt.Errorf("%w: maximum term exceeds the limit of %d years", ErrInvalidRange, MaxLoanTermYears)
	}
	if input.MaxTermYears-input.MinTermYears > MaxTermRangeYears {
		return domain.TermComparisonResult{}, fmt.Errorf("%w: range exceeds %d years", ErrInvalidRange, MaxTermRangeYears)
	}
	if input.MaxMonthlyPayment <= 0 {
		return domain.TermComparisonResult{}, errors.New("invalid maximum monthly payment")
	}
	if !preferences[input.Preference] {
		return domain.TermComparisonResult{}, fmt.Errorf("invalid preference %q", input.Preference)
	}

	options := []domain.TermOption{}

	for term := input.MinTermYears; term <= input.MaxTermYears; term++ {
		result, outcome := calc.Loan(domain.LoanInput{
			Principal:         input.Principal,
			AnnualRatePercent: input.AnnualRatePercent,
			TermYears:         float64(term),
		})
		if outcome != domain.Computed {
			s.logger.WithField("term_years", term).Warn("skipping term without a result")
			continue
		}

		if result.MonthlyPayment > input.MaxMonthlyPayment {
			continue
		}

		options = append(options, domain.TermOption{
			TermYears:      term,
			MonthlyPayment: roundTo2Decimals(result.MonthlyPayment),
			TotalInterest:  roundTo2Decimals(result.TotalInterest),
			Score:          s.calculateScore(result, input, term),
			Reason:         reason(input.Preference),
		})
	}

	if len(options) == 0 {
		return domain.TermComparisonResult{}, fmt.Errorf("%w: no term fits a monthly payment of %.2f", ErrInvalidRange, input.MaxMonthlyPayment)
	}

	// best score first, shorter term on ties
	sort.SliceStable(options, func(i, j int) bool {
		return options[i].Score > options[j].Score
	})

	s.logger.WithFields(logrus.Fields{
		"principal":  input.Principal,
		"preference": input.Preference,
		"options":    len(options),
		"best_term":  options[0].TermYears,
	}).Debug("compared loan terms")

	return domain.TermComparisonResult{
		RecommendedTermYears: options[0].TermYears,
		Options:              options,
	}, nil
}

// calculateScore rates a term from 0 to 10 on interest, payment and length,
// weighted by the preference.
func (s *TermComparisonService) calculateScore(
	result domain.LoanResult,
	input domain.TermComparisonInput,
	term int,
) float64 {
	rate := input.AnnualRatePercent / 100
	maxPossibleInterest := input.Principal * rate * float64(input.MaxTermYears)
	minPossibleInterest := input.Principal * rate * float64(input.MinTermYears)
	lowestPayment := input.Principal / float64(input.MaxTermYears*12)

	interestRange := maxPossibleInterest - minPossibleInterest
	paymentRange := input.MaxMonthlyPayment - lowestPayment

	var interestScore, paymentScore, termScore float64
	if interestRange > 0 {
		interestScore = 10.0 * (1.0 - (result.TotalInterest-minPossibleInterest)/interestRange)
	}
	if paymentRange > 0 {
		paymentScore = 10.0 * (1.0 - (result.MonthlyPayment-lowestPayment)/paymentRange)
	}
	if span := input.MaxTermYears - input.MinTermYears; span > 0 {
		termScore = 10.0 * (1.0 - float64(term-input.MinTermYears)/float64(span))
	}

	var score float64
	switch input.Preference {
	case PreferenceMinimizeInterest:
		score = 0.6*interestScore + 0.2*paymentScore + 0.2*termScore
	case PreferenceMinimizePayment:
		score = 0.2*interestScore + 0.6*paymentScore + 0.2*termScore
	case PreferenceBalanced:
		score = 0.4*interestScore + 0.4*paymentScore + 0.2*termScore
	}

	return roundTo2Decimals(score)
}

func reason(preference string) string {
	switch preference {
	case PreferenceMinimizeInterest:
		return "Term chosen to minimize total interest"
	case PreferenceMinimizePayment:
		return "Term chosen to minimize the monthly payment"
	case PreferenceBalanced:
		return "Balance between monthly payment and total cost"
	}
	return "Recommendation based on the given parameters"
}
