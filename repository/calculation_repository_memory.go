package repository

import (
	"context"
	"sync"

	"fincalc/domain"
)

// CalculationRepositoryMemory is an in-memory implementation of
// CalculationRepository. It keeps the most recent capacity records.
type CalculationRepositoryMemory struct {
	mu       sync.RWMutex
	capacity int
	data     []domain.CalculationRecord
}

// NewCalculationRepositoryMemory creates a new in-memory calculation
// repository. A capacity below one keeps a single record.
func NewCalculationRepositoryMemory(capacity int) *CalculationRepositoryMemory {
	if capacity < 1 {
		capacity = 1
	}
	return &CalculationRepositoryMemory{
		capacity: capacity,
		data:     []domain.CalculationRecord{},
	}
}

// Save stores the record in memory, dropping the oldest one when full.
func (r *CalculationRepositoryMemory) Save(
	_ context.Context,
	record domain.CalculationRecord,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, record)
	if over := len(r.data) - r.capacity; over > 0 {
		r.data = append(r.data[:0:0], r.data[over:]...)
	}
	return nil
}

func (r *CalculationRepositoryMemory) List(
	_ context.Context,
	limit int,
) ([]domain.CalculationRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if limit <= 0 || limit > len(r.data) {
		limit = len(r.data)
	}
	out := make([]domain.CalculationRecord, 0, limit)
	for i := len(r.data) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.data[i])
	}
	return out, nil
}
