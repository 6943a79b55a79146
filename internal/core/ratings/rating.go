package ratings

import (
	"context"
	"time"
)

// Vote kinds
const (
	KindLike    = "like"
	KindDislike = "dislike"
)

// Vote target kinds
const (
	TargetPost    = "post"
	TargetComment = "comment"
)

// Vote represents a single user's rating of a post or comment.
// At most one vote exists per (voter, target); casting the opposite
// kind replaces the row rather than adding a second one.
type Vote struct {
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	TargetKind string    `json:"targetKind"`
	Kind       string    `json:"kind" db:"kind"`
	ID         int64     `json:"id" db:"id"`
	VoterID    int64     `json:"voterId" db:"voter_id"`
	TargetID   int64     `json:"targetId"`
}

// Aggregate holds the like/dislike totals for one target.
// Always produced by a fresh recount, never by incrementing a stored counter.
type Aggregate struct {
	Likes    int64 `json:"likes"`
	Dislikes int64 `json:"dislikes"`
}

// Summary is one row of a batch summary lookup: aggregate counts plus the
// viewer's own vote. MyRating is nil for anonymous or unvoted viewers.
type Summary struct {
	MyRating *string `json:"myRating"`
	TargetID int64   `json:"id"`
	Likes    int64   `json:"likes"`
	Dislikes int64   `json:"dislikes"`
}

// TargetValidator validates that vote targets (posts/comments) exist.
// This prevents creating votes on missing or soft-deleted content.
type TargetValidator interface {
	// TargetExists checks if a live post or comment exists with the given id
	TargetExists(ctx context.Context, targetKind string, targetID int64) (bool, error)
}

// ValidTargetKind reports whether kind names a votable target
func ValidTargetKind(kind string) bool {
	return kind == TargetPost || kind == TargetComment
}

// ValidKind reports whether kind is a known vote kind
func ValidKind(kind string) bool {
	return kind == KindLike || kind == KindDislike
}
