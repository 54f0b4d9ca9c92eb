package repository

import (
	"context"

	"fincalc/domain"
)

type CalculationRepository interface {
	Save(ctx context.Context, record domain.CalculationRecord) error
	// List returns at most limit records, newest first.
	List(ctx context.Context, limit int) ([]domain.CalculationRecord, error)
}
