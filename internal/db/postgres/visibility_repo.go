package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"Shibaboard/internal/core/visibility"
)

// commentOrderings routes a validated sort mode to its ORDER BY clause.
// Popular and ratio order over the aggregates recomputed in this query,
// never over cached counters.
var commentOrderings = map[string]string{
	visibility.SortLatest:  "c.created_at DESC",
	visibility.SortOldest:  "c.created_at ASC",
	visibility.SortPopular: "(likes + dislikes) DESC, c.created_at ASC",
	visibility.SortRatio:   "CASE WHEN likes + dislikes = 0 THEN 0 ELSE likes::float / (likes + dislikes) END DESC, c.created_at ASC",
}

type postgresVisibilityRepo struct {
	db *sql.DB
}

// NewVisibilityRepository creates a new PostgreSQL visibility repository
func NewVisibilityRepository(db *sql.DB) visibility.Repository {
	return &postgresVisibilityRepo{db: db}
}

// ListRanked retrieves live comments on the post with their vote aggregates
// recounted in the same query the ordering is computed from
func (r *postgresVisibilityRepo) ListRanked(ctx context.Context, postID int64, sort string) ([]visibility.RankedComment, error) {
	ordering, ok := commentOrderings[sort]
	if !ok {
		return nil, visibility.ErrInvalidSort
	}

	query := fmt.Sprintf(`
		SELECT id, post_id, author_id, parent_comment_id, body,
			is_solution, created_at, likes, dislikes
		FROM (
			SELECT c.id, c.post_id, c.author_id, c.parent_comment_id, c.body,
				c.is_solution, c.created_at,
				COUNT(v.id) FILTER (WHERE v.kind = 'like') AS likes,
				COUNT(v.id) FILTER (WHERE v.kind = 'dislike') AS dislikes
			FROM comments c
			LEFT JOIN votes v ON v.comment_id = c.id
			WHERE c.post_id = $1 AND c.is_deleted = FALSE
			GROUP BY c.id
		) c
		ORDER BY %s
	`, ordering)

	rows, err := r.db.QueryContext(ctx, query, postID)
	if err != nil {
		return nil, wrapErr("list ranked comments", err)
	}
	defer func() { _ = rows.Close() }()

	var result []visibility.RankedComment
	for rows.Next() {
		var comment visibility.RankedComment
		var parentID sql.NullInt64
		err := rows.Scan(
			&comment.ID, &comment.PostID, &comment.AuthorID, &parentID,
			&comment.Body, &comment.IsSolution, &comment.CreatedAt,
			&comment.Likes, &comment.Dislikes,
		)
		if err != nil {
			return nil, wrapErr("scan ranked comment", err)
		}
		if parentID.Valid {
			comment.ParentID = &parentID.Int64
		}
		result = append(result, comment)
	}

	if err = rows.Err(); err != nil {
		return nil, wrapErr("iterate ranked comments", err)
	}
	return result, nil
}
