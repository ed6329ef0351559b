// Package stats provides an in-memory implementation of the DecodeStatsRepository interface.
package stats

import (
	"context"
	"fmt"
	"sync"

	"hexquantity/internal/core/domain"
	"hexquantity/internal/core/domain/repository"
)

// InMemoryStatsRepo implements the DecodeStatsRepository interface using in-memory counters.
type InMemoryStatsRepo struct {
	mu    sync.RWMutex
	stats domain.DecodeStats
}

// Compile-time check to ensure InMemoryStatsRepo implements repository.DecodeStatsRepository
var _ repository.DecodeStatsRepository = (*InMemoryStatsRepo)(nil)

// NewInMemoryStatsRepo creates a new in-memory stats repository.
func NewInMemoryStatsRepo() *InMemoryStatsRepo {
	return &InMemoryStatsRepo{}
}

// Record increments the counter for outcome.
func (r *InMemoryStatsRepo) Record(_ context.Context, outcome domain.Outcome, bytesOut int) error {
	if bytesOut < 0 {
		return fmt.Errorf("negative byte count %d", bytesOut)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	switch outcome {
	case domain.OutcomeDecoded:
		r.stats.Decoded++
		r.stats.BytesProduced += uint64(bytesOut)
	case domain.OutcomeInvalidCharacter:
		r.stats.InvalidCharacter++
	case domain.OutcomeRejected:
		r.stats.Rejected++
	default:
		return fmt.Errorf("unknown decode outcome %q", outcome)
	}
	return nil
}

// Snapshot returns a copy of the current counters.
func (r *InMemoryStatsRepo) Snapshot(_ context.Context) (domain.DecodeStats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.stats, nil
}
