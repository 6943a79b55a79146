package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"Shibaboard/internal/core/ratings"
)

// targetColumns routes a validated target kind to the votes column holding
// the foreign key. Values are fixed identifiers, never user input, so the
// queries below stay parameterized.
var targetColumns = map[string]string{
	ratings.TargetPost:    "post_id",
	ratings.TargetComment: "comment_id",
}

type postgresRatingRepo struct {
	db *sql.DB
}

// NewRatingRepository creates a new PostgreSQL rating repository
func NewRatingRepository(db *sql.DB) ratings.Repository {
	return &postgresRatingRepo{db: db}
}

// Upsert inserts the vote or replaces the voter's existing vote on the same
// target. The unique (voter_id, target) constraint makes the replace atomic.
func (r *postgresRatingRepo) Upsert(ctx context.Context, vote *ratings.Vote) error {
	col, ok := targetColumns[vote.TargetKind]
	if !ok {
		return ratings.ErrInvalidTargetKind
	}

	query := fmt.Sprintf(`
		INSERT INTO votes (voter_id, %s, kind)
		VALUES ($1, $2, $3)
		ON CONFLICT (voter_id, %s) DO UPDATE SET kind = EXCLUDED.kind
		RETURNING id, created_at
	`, col, col)

	err := r.db.QueryRowContext(ctx, query, vote.VoterID, vote.TargetID, vote.Kind).
		Scan(&vote.ID, &vote.CreatedAt)
	if err != nil {
		return wrapErr("upsert vote", err)
	}
	return nil
}

// Delete removes the voter's vote from the target.
// Idempotent: zero rows affected is a successful no-op.
func (r *postgresRatingRepo) Delete(ctx context.Context, voterID int64, targetKind string, targetID int64) error {
	col, ok := targetColumns[targetKind]
	if !ok {
		return ratings.ErrInvalidTargetKind
	}

	query := fmt.Sprintf(`DELETE FROM votes WHERE voter_id = $1 AND %s = $2`, col)

	if _, err := r.db.ExecContext(ctx, query, voterID, targetID); err != nil {
		return wrapErr("delete vote", err)
	}
	return nil
}

// Recount computes the aggregate with a fresh sum over vote rows.
// Every count the system reports flows through this query.
func (r *postgresRatingRepo) Recount(ctx context.Context, targetKind string, targetID int64) (ratings.Aggregate, error) {
	col, ok := targetColumns[targetKind]
	if !ok {
		return ratings.Aggregate{}, ratings.ErrInvalidTargetKind
	}

	query := fmt.Sprintf(`
		SELECT
			COUNT(*) FILTER (WHERE kind = 'like'),
			COUNT(*) FILTER (WHERE kind = 'dislike')
		FROM votes
		WHERE %s = $1
	`, col)

	var agg ratings.Aggregate
	if err := r.db.QueryRowContext(ctx, query, targetID).Scan(&agg.Likes, &agg.Dislikes); err != nil {
		return ratings.Aggregate{}, wrapErr("recount votes", err)
	}
	return agg, nil
}

// Summaries computes aggregates for a batch of targets. Left-join semantics:
// unnest of the input ids drives the query, so every requested id produces a
// row even with zero votes. Ordered by input id ascending.
func (r *postgresRatingRepo) Summaries(ctx context.Context, targetKind string, targetIDs []int64, viewerID *int64) ([]ratings.Summary, error) {
	col, ok := targetColumns[targetKind]
	if !ok {
		return nil, ratings.ErrInvalidTargetKind
	}

	query := fmt.Sprintf(`
		SELECT
			t.id,
			COUNT(v.id) FILTER (WHERE v.kind = 'like'),
			COUNT(v.id) FILTER (WHERE v.kind = 'dislike'),
			MAX(v.kind) FILTER (WHERE v.voter_id = $2)
		FROM unnest($1::bigint[]) AS t(id)
		LEFT JOIN votes v ON v.%s = t.id
		GROUP BY t.id
		ORDER BY t.id ASC
	`, col)

	viewer := sql.NullInt64{}
	if viewerID != nil {
		viewer = sql.NullInt64{Int64: *viewerID, Valid: true}
	}

	rows, err := r.db.QueryContext(ctx, query, pq.Array(targetIDs), viewer)
	if err != nil {
		return nil, wrapErr("query vote summaries", err)
	}
	defer func() { _ = rows.Close() }()

	var result []ratings.Summary
	for rows.Next() {
		var summary ratings.Summary
		var myRating sql.NullString
		if err := rows.Scan(&summary.TargetID, &summary.Likes, &summary.Dislikes, &myRating); err != nil {
			return nil, wrapErr("scan vote summary", err)
		}
		if myRating.Valid {
			summary.MyRating = &myRating.String
		}
		result = append(result, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, wrapErr("iterate vote summaries", err)
	}
	return result, nil
}
