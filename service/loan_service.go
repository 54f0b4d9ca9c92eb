package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"fincalc/calc"
	"fincalc/domain"
	"fincalc/repository"
)

type LoanService struct {
	store  calculationStore
	logger *logrus.Logger
}

// NewLoanService creates a new LoanService with the given repository and cache.
func NewLoanService(repo repository.CalculationRepository,
	cache repository.CacheRepository,
	logger *logrus.Logger,
) *LoanService {
	return &LoanService{store: newCalculationStore(repo, cache, logger), logger: logger}
}

// CalculateLoan calculates the loan details based on the input parameters.
// Amounts are rounded to cents. Incomplete input yields domain.NeedsInput
// with a nil error.
func (s *LoanService) CalculateLoan(
	ctx context.Context,
	input domain.LoanInput,
) (domain.LoanResult, domain.Outcome, error) {

	if err := validateLoan(input); err != nil {
		return domain.LoanResult{}, domain.NeedsInput, err
	}

	key, err := cacheKey(domain.KindLoan, input)
	if err != nil {
		s.logger.WithError(err).Warn("loan result will not be cached")
	}

	var result domain.LoanResult
	if !s.store.lookup(ctx, key, &result) {
		raw, outcome := calc.Loan(input)
		if outcome != domain.Computed {
			s.logger.WithField("input", input).Debug("loan needs more input")
			return domain.LoanResult{}, outcome, nil
		}
		result = domain.LoanResult{
			MonthlyPayment: roundTo2Decimals(raw.MonthlyPayment),
			TotalPayment:   roundTo2Decimals(raw.TotalPayment),
			TotalInterest:  roundTo2Decimals(raw.TotalInterest),
		}
		s.store.remember(ctx, key, result)
	}

	// Save the result (not critical if it fails)
	s.store.record(ctx, domain.KindLoan, input, result)

	return result, domain.Computed, nil
}

// Schedule returns the month-by-month amortization of the loan.
func (s *LoanService) Schedule(
	ctx context.Context,
	input domain.LoanInput,
) ([]domain.ScheduleEntry, domain.Outcome, error) {

	if err := validateLoan(input); err != nil {
		return nil, domain.NeedsInput, err
	}

	entries, outcome := calc.Schedule(input)
	if outcome != domain.Computed {
		return nil, outcome, nil
	}

	s.store.record(ctx, domain.KindSchedule, input, map[string]any{
		"periods":       len(entries),
		"first_payment": entries[0].Payment,
		"last_payment":  entries[len(entries)-1].Payment,
	})
	return entries, domain.Computed, nil
}

func validateLoan(input domain.LoanInput) error {
	if input.Principal > MaxLoanAmount {
		return fmt.Errorf("%w: principal exceeds the maximum of %.2f", ErrOutOfRange, MaxLoanAmount)
	}
	if input.AnnualRatePercent > MaxInterestRate {
		return fmt.Errorf("%w: interest rate exceeds the maximum of %.2f%%", ErrOutOfRange, MaxInterestRate)
	}
	if input.TermYears > MaxLoanTermYears {
		return fmt.Errorf("%w: term exceeds the maximum of %d years", ErrOutOfRange, MaxLoanTermYears)
	}
	return nil
}
