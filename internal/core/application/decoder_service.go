// Package application contains the core application service logic for hex quantity decoding.
package application

import (
	"context"
	"errors"
	"fmt"

	"hexquantity/internal/config"
	"hexquantity/internal/core/domain"
	"hexquantity/internal/core/domain/repository"
	"hexquantity/internal/logger"
	"hexquantity/pkg/hexquantity"
)

var (
	// ErrInputTooLong is returned when an input exceeds decoder.max_input_length.
	ErrInputTooLong = errors.New("input exceeds maximum length")

	// ErrBatchTooLarge is returned when a batch exceeds decoder.max_batch_size.
	ErrBatchTooLarge = errors.New("batch exceeds maximum size")
)

// DecoderServiceImpl implements the hexquantity.Decoder interface.
type DecoderServiceImpl struct {
	statsRepo repository.DecodeStatsRepository
	logger    logger.AppLogger

	maxInputLength int
	maxBatchSize   int
}

// Compile-time check to ensure DecoderServiceImpl implements hexquantity.Decoder
var _ hexquantity.Decoder = (*DecoderServiceImpl)(nil)

// NewDecoderService creates a new instance of DecoderServiceImpl.
func NewDecoderService(
	statsRepo repository.DecodeStatsRepository,
	appLogger logger.AppLogger,
	cfg config.DecoderConfig,
) (*DecoderServiceImpl, error) {
	if appLogger == nil {
		return nil, errors.New("NewDecoderService: appLogger is nil")
	}
	if statsRepo == nil {
		appLogger.Error("NewDecoderService: statsRepo is nil")
		return nil, errors.New("NewDecoderService: statsRepo is nil")
	}
	if cfg.MaxInputLength < 0 || cfg.MaxBatchSize < 0 {
		return nil, fmt.Errorf("NewDecoderService: negative limits %+v", cfg)
	}

	return &DecoderServiceImpl{
		statsRepo:      statsRepo,
		logger:         appLogger,
		maxInputLength: cfg.MaxInputLength,
		maxBatchSize:   cfg.MaxBatchSize,
	}, nil
}

// Decode decodes a single hex quantity and records the outcome.
func (s *DecoderServiceImpl) Decode(ctx context.Context, input string) (hexquantity.Result, error) {
	if err := ctx.Err(); err != nil {
		return hexquantity.Result{}, err
	}
	return s.decode(ctx, input)
}

// DecodeBatch decodes every input independently. Per-item failures are reported in the item;
// only an oversized batch or a cancelled context fails the whole call.
func (s *DecoderServiceImpl) DecodeBatch(ctx context.Context, inputs []string) ([]hexquantity.BatchItem, error) {
	if s.maxBatchSize > 0 && len(inputs) > s.maxBatchSize {
		s.logger.Warn("Batch rejected", "size", len(inputs), "maxBatchSize", s.maxBatchSize)
		return nil, fmt.Errorf("%w: %d > %d", ErrBatchTooLarge, len(inputs), s.maxBatchSize)
	}

	items := make([]hexquantity.BatchItem, 0, len(inputs))
	for i, input := range inputs {
		if err := ctx.Err(); err != nil {
			s.logger.Warn("Batch decode interrupted", "processed", i, "error", err)
			return nil, fmt.Errorf("batch interrupted after %d items: %w", i, err)
		}

		item := hexquantity.BatchItem{Input: input}
		res, err := s.decode(ctx, input)
		if err != nil {
			item.Error = err.Error()
		} else {
			item.Result = &res
		}
		items = append(items, item)
	}

	s.logger.Debug("Batch decoded", "size", len(inputs))
	return items, nil
}

// Stats returns the counters accumulated by the stats repository.
func (s *DecoderServiceImpl) Stats(ctx context.Context) (hexquantity.Stats, error) {
	snapshot, err := s.statsRepo.Snapshot(ctx)
	if err != nil {
		return hexquantity.Stats{}, fmt.Errorf("failed to get decode stats: %w", err)
	}
	return mapDomainToAPIStats(snapshot), nil
}

func (s *DecoderServiceImpl) decode(ctx context.Context, input string) (hexquantity.Result, error) {
	if s.maxInputLength > 0 && len(input) > s.maxInputLength {
		s.record(ctx, domain.OutcomeRejected, 0)
		return hexquantity.Result{}, fmt.Errorf("%w: %d > %d", ErrInputTooLong, len(input), s.maxInputLength)
	}

	out, err := domain.Decode([]byte(input))
	if err != nil {
		s.record(ctx, domain.OutcomeInvalidCharacter, 0)
		s.logger.Debug("Input rejected by decoder", "length", len(input), "error", err)
		return hexquantity.Result{}, fmt.Errorf("failed to decode hex quantity: %w", err)
	}

	s.record(ctx, domain.OutcomeDecoded, len(out))
	return mapBytesToAPIResult(input, out), nil
}

// record stores the outcome; storage failures are logged and never fail the decode.
func (s *DecoderServiceImpl) record(ctx context.Context, outcome domain.Outcome, bytesOut int) {
	if err := s.statsRepo.Record(ctx, outcome, bytesOut); err != nil {
		s.logger.Warn("Failed to record decode outcome", "outcome", outcome, "error", err)
	}
}
