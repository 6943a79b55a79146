package visibility

import (
	"context"
	"log/slog"
	"time"

	"Shibaboard/internal/core/content"
)

// Sort modes for comment listings
const (
	SortLatest  = "latest"  // created_at desc
	SortOldest  = "oldest"  // created_at asc
	SortPopular = "popular" // total votes desc
	SortRatio   = "ratio"   // likes/(likes+dislikes) desc, ties by created_at asc
)

// ValidSort reports whether sort names a known sort mode
func ValidSort(sort string) bool {
	switch sort {
	case SortLatest, SortOldest, SortPopular, SortRatio:
		return true
	}
	return false
}

// RankedComment is a live comment with its recomputed vote aggregate.
// Popular and ratio orderings are derived from these counts at query time,
// never from cached counters.
type RankedComment struct {
	CreatedAt  time.Time `json:"createdAt"`
	ParentID   *int64    `json:"parentId,omitempty"`
	Body       string    `json:"body"`
	ID         int64     `json:"id"`
	PostID     int64     `json:"postId"`
	AuthorID   int64     `json:"authorId"`
	Likes      int64     `json:"likes"`
	Dislikes   int64     `json:"dislikes"`
	IsSolution bool      `json:"isSolution"`
}

// CommentsResponse reports the gate outcome, the sort mode that produced the
// ordering, and the visible comments. A blocked response carries no items.
type CommentsResponse struct {
	Reason  string          `json:"reason,omitempty"`
	Sort    string          `json:"sort"`
	Items   []RankedComment `json:"items"`
	Allowed bool            `json:"allowed"`
}

// Repository defines the data access interface for ranked comment listings
type Repository interface {
	// ListRanked retrieves live comments on the post with recounted
	// aggregates, ordered by the given sort mode
	ListRanked(ctx context.Context, postID int64, sort string) ([]RankedComment, error)
}

// Service defines the business logic interface for comment visibility
type Service interface {
	// GetVisibleComments gates the listing on the post's age and the viewer's
	// account state, then returns the permitted comments. For anonymous
	// viewers, solution-flagged comments are filtered out of an otherwise
	// allowed result set.
	GetVisibleComments(ctx context.Context, postID int64, viewer *Viewer, sort string) (*CommentsResponse, error)
}

// visibilityService implements the Service interface
type visibilityService struct {
	repo        Repository
	contentRepo content.Repository
	policy      Policy
	logger      *slog.Logger
	now         func() time.Time
}

// NewVisibilityService creates a new visibility service instance
func NewVisibilityService(repo Repository, contentRepo content.Repository, policy Policy, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &visibilityService{
		repo:        repo,
		contentRepo: contentRepo,
		policy:      policy,
		logger:      logger,
		now:         time.Now,
	}
}

func (s *visibilityService) GetVisibleComments(ctx context.Context, postID int64, viewer *Viewer, sort string) (*CommentsResponse, error) {
	if sort == "" {
		sort = SortLatest
	}
	if !ValidSort(sort) {
		return nil, ErrInvalidSort
	}

	post, err := s.contentRepo.GetPost(ctx, postID)
	if err != nil {
		return nil, err
	}

	decision := s.policy.Decide(viewer, post.CreatedAt, s.now().UTC())
	if !decision.Allowed {
		s.logger.Debug("comment listing blocked",
			"post_id", postID,
			"reason", decision.Reason)
		return &CommentsResponse{Sort: sort, Reason: decision.Reason}, nil
	}

	items, err := s.repo.ListRanked(ctx, postID, sort)
	if err != nil {
		return nil, err
	}

	// Anonymous viewers may see that a post has comments, but solution
	// answers are suppressed. Applied as a post-filter on the already
	// permitted set, not as a second gate.
	if viewer == nil {
		items = filterSolutions(items)
	}

	return &CommentsResponse{Allowed: true, Sort: sort, Items: items}, nil
}

func filterSolutions(items []RankedComment) []RankedComment {
	filtered := make([]RankedComment, 0, len(items))
	for _, item := range items {
		if !item.IsSolution {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
