package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"fincalc/domain"
	"fincalc/repository"
)

// roundTo2Decimals rounds a float64 to cents
func roundTo2Decimals(value float64) float64 {
	return decimal.NewFromFloat(value).Round(2).InexactFloat64()
}

// cacheKey derives a stable key from the JSON form of a calculation input.
func cacheKey(kind domain.CalculationKind, input any) (string, error) {
	payload, err := json.Marshal(input)
	if err != nil {
		return "", fmt.Errorf("encode cache key: %w", err)
	}
	return fmt.Sprintf("fincalc:%s:%016x", kind, xxhash.Sum64(payload)), nil
}

// calculationStore bundles the cache and the history shared by the
// calculation services. Failures here are logged and never surface to the
// caller.
type calculationStore struct {
	repo   repository.CalculationRepository
	cache  repository.CacheRepository
	logger *logrus.Logger
	now    func() time.Time
}

func newCalculationStore(
	repo repository.CalculationRepository,
	cache repository.CacheRepository,
	logger *logrus.Logger,
) calculationStore {
	return calculationStore{repo: repo, cache: cache, logger: logger, now: time.Now}
}

// lookup decodes a cached result into dst and reports whether it was found.
func (s calculationStore) lookup(ctx context.Context, key string, dst any) bool {
	if s.cache == nil || key == "" {
		return false
	}
	val, ok := s.cache.Get(ctx, key)
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(val), dst); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("discarding unreadable cache entry")
		return false
	}
	s.logger.WithField("key", key).Debug("cache hit")
	return true
}

func (s calculationStore) remember(ctx context.Context, key string, result any) {
	if s.cache == nil || key == "" {
		return
	}
	payload, err := json.Marshal(result)
	if err != nil {
		s.logger.WithError(err).Warn("failed to encode result for cache")
		return
	}
	if err := s.cache.Set(ctx, key, string(payload)); err != nil {
		s.logger.WithError(err).WithField("key", key).Warn("failed to cache result")
	}
}

func (s calculationStore) record(ctx context.Context, kind domain.CalculationKind, input, result any) {
	if s.repo == nil {
		return
	}
	in, err := json.Marshal(input)
	if err != nil {
		s.logger.WithError(err).Warn("failed to encode calculation input")
		return
	}
	out, err := json.Marshal(result)
	if err != nil {
		s.logger.WithError(err).Warn("failed to encode calculation result")
		return
	}
	rec := domain.CalculationRecord{
		ID:        uuid.New(),
		Kind:      kind,
		CreatedAt: s.now().UTC(),
		Input:     in,
		Result:    out,
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		s.logger.WithError(err).WithField("kind", kind).Warn("failed to save calculation")
	}
}
