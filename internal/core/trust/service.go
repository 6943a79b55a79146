package trust

import (
	"context"
	"fmt"

	"Shibaboard/internal/core/users"
)

// trustService implements the Service interface
type trustService struct {
	repo     Repository
	userRepo users.Repository
}

// NewTrustService creates a new trust score service instance
func NewTrustService(repo Repository, userRepo users.Repository) Service {
	return &trustService{repo: repo, userRepo: userRepo}
}

func (s *trustService) ComputeTrustScore(ctx context.Context, userID int64) (*Score, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	likes, dislikes, err := s.repo.SolutionVoteCounts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute trust score: %w", err)
	}

	total := likes + dislikes
	if total == 0 {
		// Undefined, not zero: no votes exist on any solution comment
		return nil, nil
	}

	return &Score{
		Ratio:    float64(likes) / float64(total),
		Likes:    likes,
		Dislikes: dislikes,
	}, nil
}
