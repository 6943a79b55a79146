package ratings

import (
	"context"
	"fmt"
	"log/slog"
)

// MaxSummaryBatch caps how many targets one summary lookup may request
const MaxSummaryBatch = 100

// ratingService implements the Service interface
// Validates input, checks target existence, and delegates row work to the
// repository. Aggregates returned to callers always come from Recount.
type ratingService struct {
	repo      Repository
	validator TargetValidator
	logger    *slog.Logger
}

// NewRatingService creates a new rating service instance
func NewRatingService(repo Repository, validator TargetValidator, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &ratingService{
		repo:      repo,
		validator: validator,
		logger:    logger,
	}
}

func (s *ratingService) CastVote(ctx context.Context, voterID int64, targetKind string, targetID int64, kind string) (Aggregate, error) {
	if !ValidTargetKind(targetKind) {
		return Aggregate{}, ErrInvalidTargetKind
	}
	if !ValidKind(kind) {
		return Aggregate{}, ErrInvalidKind
	}

	exists, err := s.validator.TargetExists(ctx, targetKind, targetID)
	if err != nil {
		return Aggregate{}, fmt.Errorf("failed to validate vote target: %w", err)
	}
	if !exists {
		return Aggregate{}, ErrTargetNotFound
	}

	vote := &Vote{
		VoterID:    voterID,
		TargetKind: targetKind,
		TargetID:   targetID,
		Kind:       kind,
	}
	if err := s.repo.Upsert(ctx, vote); err != nil {
		return Aggregate{}, fmt.Errorf("failed to cast vote: %w", err)
	}

	s.logger.Debug("vote cast",
		"voter_id", voterID,
		"target_kind", targetKind,
		"target_id", targetID,
		"kind", kind)

	return s.repo.Recount(ctx, targetKind, targetID)
}

func (s *ratingService) RetractVote(ctx context.Context, voterID int64, targetKind string, targetID int64) (Aggregate, error) {
	if !ValidTargetKind(targetKind) {
		return Aggregate{}, ErrInvalidTargetKind
	}

	exists, err := s.validator.TargetExists(ctx, targetKind, targetID)
	if err != nil {
		return Aggregate{}, fmt.Errorf("failed to validate vote target: %w", err)
	}
	if !exists {
		return Aggregate{}, ErrTargetNotFound
	}

	// Deleting an absent vote is a no-op; the recount below reflects
	// whatever state the row ended in either way
	if err := s.repo.Delete(ctx, voterID, targetKind, targetID); err != nil {
		return Aggregate{}, fmt.Errorf("failed to retract vote: %w", err)
	}

	return s.repo.Recount(ctx, targetKind, targetID)
}

func (s *ratingService) GetSummaries(ctx context.Context, targetKind string, targetIDs []int64, viewerID *int64) ([]Summary, error) {
	if !ValidTargetKind(targetKind) {
		return nil, ErrInvalidTargetKind
	}
	if len(targetIDs) == 0 {
		return nil, ErrNoTargets
	}
	if len(targetIDs) > MaxSummaryBatch {
		return nil, ErrTooManyTargets
	}

	return s.repo.Summaries(ctx, targetKind, targetIDs, viewerID)
}
