package ratings

import "context"

// Service defines the business logic interface for votes
type Service interface {
	// CastVote upserts the voter's single vote for the target, replacing any
	// prior opposite vote. Idempotent: casting the same kind twice yields the
	// same final state. Returns the freshly recounted aggregate.
	CastVote(ctx context.Context, voterID int64, targetKind string, targetID int64, kind string) (Aggregate, error)

	// RetractVote removes the voter's vote from the target. Retracting a
	// non-existent vote is a no-op, not an error. Returns the freshly
	// recounted aggregate.
	RetractVote(ctx context.Context, voterID int64, targetKind string, targetID int64) (Aggregate, error)

	// GetSummaries returns, for each id, aggregate counts plus the viewer's
	// own vote (nil when anonymous or unvoted). One row per input id even for
	// targets with zero votes, ordered by id ascending.
	GetSummaries(ctx context.Context, targetKind string, targetIDs []int64, viewerID *int64) ([]Summary, error)
}

// Repository defines the data access interface for votes
type Repository interface {
	// Upsert inserts the vote or, when the voter already voted on this
	// target, replaces the kind in place (one row per voter+target)
	Upsert(ctx context.Context, vote *Vote) error

	// Delete removes the voter's vote from the target
	// No-op when no such vote exists
	Delete(ctx context.Context, voterID int64, targetKind string, targetID int64) error

	// Recount computes the aggregate by summing vote rows for the target.
	// This is the only counting code path; counts are never maintained
	// incrementally.
	Recount(ctx context.Context, targetKind string, targetID int64) (Aggregate, error)

	// Summaries computes aggregates for a batch of targets with left-join
	// semantics (every input id produces a row), ordered by id ascending,
	// including the viewer's own vote when viewerID is non-nil
	Summaries(ctx context.Context, targetKind string, targetIDs []int64, viewerID *int64) ([]Summary, error)
}
