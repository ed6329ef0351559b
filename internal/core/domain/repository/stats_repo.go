// Package repository defines the storage contracts used by the application layer.
package repository

import (
	"context"

	"hexquantity/internal/core/domain"
)

// DecodeStatsRepository defines the contract for recording decode outcomes.
type DecodeStatsRepository interface {
	// Record stores one decode outcome; bytesOut is the decoded length for successful decodes.
	Record(ctx context.Context, outcome domain.Outcome, bytesOut int) error

	// Snapshot returns the current counters.
	Snapshot(ctx context.Context) (domain.DecodeStats, error)
}
