package service

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"fincalc/calc"
	"fincalc/domain"
	"fincalc/repository"
)

type InvestmentService struct {
	store  calculationStore
	logger *logrus.Logger
}

func NewInvestmentService(repo repository.CalculationRepository,
	cache repository.CacheRepository,
	logger *logrus.Logger,
) *InvestmentService {
	return &InvestmentService{store: newCalculationStore(repo, cache, logger), logger: logger}
}

// Calculate projects the investment and rounds the figures to cents.
func (s *InvestmentService) Calculate(
	ctx context.Context,
	input domain.InvestmentInput,
) (domain.InvestmentResult, domain.Outcome, error) {

	if err := validateInvestment(input); err != nil {
		return domain.InvestmentResult{}, domain.NeedsInput, err
	}
	if !input.Compounding {
		// frequency is irrelevant to simple interest; share one cache entry
		input.Frequency = domain.FrequencyUnset
	}

	key, err := cacheKey(domain.KindInvestment, input)
	if err != nil {
		s.logger.WithError(err).Warn("investment result will not be cached")
	}

	var result domain.InvestmentResult
	if !s.store.lookup(ctx, key, &result) {
		raw, outcome := calc.Investment(input)
		if outcome != domain.Computed {
			s.logger.WithField("input", input).Debug("investment needs more input")
			return domain.InvestmentResult{}, outcome, nil
		}
		result = roundInvestment(raw)
		s.store.remember(ctx, key, result)
	}

	s.store.record(ctx, domain.KindInvestment, input, result)
	return result, domain.Computed, nil
}

// CompareFrequencies projects the investment under every compounding
// frequency, from yearly to daily.
func (s *InvestmentService) CompareFrequencies(
	ctx context.Context,
	input domain.InvestmentInput,
) ([]domain.FrequencyProjection, domain.Outcome, error) {

	if err := validateInvestment(input); err != nil {
		return nil, domain.NeedsInput, err
	}
	input.Compounding = true
	input.Frequency = domain.FrequencyUnset

	key, err := cacheKey(domain.KindFrequencies, input)
	if err != nil {
		s.logger.WithError(err).Warn("frequency comparison will not be cached")
	}

	var projections []domain.FrequencyProjection
	if !s.store.lookup(ctx, key, &projections) {
		raw, outcome := calc.CompareFrequencies(input)
		if outcome != domain.Computed {
			return nil, outcome, nil
		}
		projections = make([]domain.FrequencyProjection, len(raw))
		for i, p := range raw {
			projections[i] = domain.FrequencyProjection{Frequency: p.Frequency, Result: roundInvestment(p.Result)}
		}
		s.store.remember(ctx, key, projections)
	}

	s.store.record(ctx, domain.KindFrequencies, input, projections)
	return projections, domain.Computed, nil
}

func roundInvestment(r domain.InvestmentResult) domain.InvestmentResult {
	return domain.InvestmentResult{
		FinalAmount:               roundTo2Decimals(r.FinalAmount),
		TotalContributions:        roundTo2Decimals(r.TotalContributions),
		TotalEarnings:             roundTo2Decimals(r.TotalEarnings),
		ReturnOnInvestmentPercent: roundTo2Decimals(r.ReturnOnInvestmentPercent),
	}
}

func validateInvestment(input domain.InvestmentInput) error {
	if input.Principal > MaxInvestmentAmount {
		return fmt.Errorf("%w: principal exceeds the maximum of %.2f", ErrOutOfRange, MaxInvestmentAmount)
	}
	if input.MonthlyContribution > MaxInvestmentAmount {
		return fmt.Errorf("%w: monthly contribution exceeds the maximum of %.2f", ErrOutOfRange, MaxInvestmentAmount)
	}
	if input.AnnualRatePercent > MaxInterestRate {
		return fmt.Errorf("%w: interest rate exceeds the maximum of %.2f%%", ErrOutOfRange, MaxInterestRate)
	}
	if input.TermYears > MaxInvestmentTermYears {
		return fmt.Errorf("%w: term exceeds the maximum of %d years", ErrOutOfRange, MaxInvestmentTermYears)
	}
	return nil
}
