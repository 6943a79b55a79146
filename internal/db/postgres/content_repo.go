package postgres

import (
	"context"
	"database/sql"

	"Shibaboard/internal/core/content"
)

type postgresContentRepo struct {
	db *sql.DB
}

// NewContentRepository creates a new PostgreSQL content repository
// Serves the shared read model: soft-deleted rows are invisible here
func NewContentRepository(db *sql.DB) content.Repository {
	return &postgresContentRepo{db: db}
}

func (r *postgresContentRepo) GetPost(ctx context.Context, id int64) (*content.Post, error) {
	query := `
		SELECT id, author_id, title, body, is_deleted, created_at
		FROM posts
		WHERE id = $1 AND is_deleted = FALSE
	`

	var post content.Post
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&post.ID, &post.AuthorID, &post.Title, &post.Body,
		&post.IsDeleted, &post.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, content.ErrPostNotFound
	}
	if err != nil {
		return nil, wrapErr("get post", err)
	}
	return &post, nil
}

func (r *postgresContentRepo) GetComment(ctx context.Context, id int64) (*content.Comment, error) {
	query := `
		SELECT id, post_id, author_id, parent_comment_id, body,
			is_solution, is_deleted, created_at
		FROM comments
		WHERE id = $1 AND is_deleted = FALSE
	`

	var comment content.Comment
	var parentID sql.NullInt64
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.PostID, &comment.AuthorID, &parentID,
		&comment.Body, &comment.IsSolution, &comment.IsDeleted, &comment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, content.ErrCommentNotFound
	}
	if err != nil {
		return nil, wrapErr("get comment", err)
	}
	if parentID.Valid {
		comment.ParentID = &parentID.Int64
	}
	return &comment, nil
}

func (r *postgresContentRepo) PostExists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM posts WHERE id = $1 AND is_deleted = FALSE)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, wrapErr("check post existence", err)
	}
	return exists, nil
}

func (r *postgresContentRepo) CommentExists(ctx context.Context, id int64) (bool, error) {
	query := `SELECT EXISTS (SELECT 1 FROM comments WHERE id = $1 AND is_deleted = FALSE)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		return false, wrapErr("check comment existence", err)
	}
	return exists, nil
}
