package trust

import (
	"context"
	"math"
)

// Score is a user's reputation ratio derived from votes received on their
// solution-marked comments. A nil *Score means no such votes exist, which is
// distinct from a score of zero (a perfectly disliked solution).
type Score struct {
	Ratio    float64 `json:"ratio"`
	Likes    int64   `json:"likes"`
	Dislikes int64   `json:"dislikes"`
}

// Percent returns the ratio as a percentage rounded to 2 decimals,
// e.g. 3 likes / 1 dislike -> 75.00
func (s *Score) Percent() float64 {
	return math.Round(s.Ratio*10000) / 100
}

// Repository defines the data access interface for trust derivation
type Repository interface {
	// SolutionVoteCounts sums votes received on the user's comments flagged
	// is_solution, excluding soft-deleted comments
	SolutionVoteCounts(ctx context.Context, userID int64) (likes, dislikes int64, err error)
}

// Service defines the business logic interface for trust scores
type Service interface {
	// ComputeTrustScore derives the user's reputation ratio.
	// Returns nil (not an error) when the user has no votes on any solution
	// comment. Read-only: never writes back to storage, and races harmlessly
	// with concurrent vote churn.
	ComputeTrustScore(ctx context.Context, userID int64) (*Score, error)
}
