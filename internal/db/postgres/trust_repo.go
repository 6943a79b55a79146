package postgres

import (
	"context"
	"database/sql"

	"Shibaboard/internal/core/trust"
)

type postgresTrustRepo struct {
	db *sql.DB
}

// NewTrustRepository creates a new PostgreSQL trust repository
func NewTrustRepository(db *sql.DB) trust.Repository {
	return &postgresTrustRepo{db: db}
}

// SolutionVoteCounts sums votes received on the user's solution-marked
// comments. Read-only and lock-free; races harmlessly with vote writes.
func (r *postgresTrustRepo) SolutionVoteCounts(ctx context.Context, userID int64) (int64, int64, error) {
	query := `
		SELECT
			COUNT(v.id) FILTER (WHERE v.kind = 'like'),
			COUNT(v.id) FILTER (WHERE v.kind = 'dislike')
		FROM comments c
		JOIN votes v ON v.comment_id = c.id
		WHERE c.author_id = $1
			AND c.is_solution = TRUE
			AND c.is_deleted = FALSE
	`

	var likes, dislikes int64
	if err := r.db.QueryRowContext(ctx, query, userID).Scan(&likes, &dislikes); err != nil {
		return 0, 0, wrapErr("count solution votes", err)
	}
	return likes, dislikes, nil
}
