package postgres

import (
	"context"
	"database/sql"
	"log"

	"Shibaboard/internal/core/moderation"
)

type postgresModerationRepo struct {
	db *sql.DB
}

// NewModerationRepository creates a new PostgreSQL moderation repository
// Every method here is a single transaction; notification dispatch belongs
// to the service layer, strictly after commit
func NewModerationRepository(db *sql.DB) moderation.Repository {
	return &postgresModerationRepo{db: db}
}

// CascadeDeletePost atomically soft-deletes the post and its live comments
// and appends the audit record. The post row is locked and re-checked inside
// the transaction so two concurrent deletes cannot both succeed.
func (r *postgresModerationRepo) CascadeDeletePost(ctx context.Context, postID, adminID int64) (*moderation.PostDeletion, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, wrapErr("begin transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && rollbackErr != sql.ErrTxDone {
			log.Printf("Failed to rollback transaction: %v", rollbackErr)
		}
	}()

	// Precondition under lock: only a live post can be deleted
	var ownerID int64
	err = tx.QueryRowContext(ctx,
		`SELECT author_id FROM posts WHERE id = $1 AND is_deleted = FALSE FOR UPDATE`,
		postID,
	).Scan(&ownerID)
	if err == sql.ErrNoRows {
		return nil, moderation.ErrPostNotFound
	}
	if err != nil {
		return nil, wrapErr("lock post", err)
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE posts SET is_deleted = TRUE WHERE id = $1`, postID); err != nil {
		return nil, wrapErr("delete post", err)
	}

	result, err := tx.ExecContext(ctx,
		`UPDATE comments SET is_deleted = TRUE WHERE post_id = $1 AND is_deleted = FALSE`,
		postID)
	if err != nil {
		return nil, wrapErr("cascade delete comments", err)
	}
	commentsDeleted, err := result.RowsAffected()
	if err != nil {
		return nil, wrapErr("count cascaded comments", err)
	}

	if err = appendAdminAction(ctx, tx, adminID, moderation.ActionDeletePost, "post", postID); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, wrapErr("commit post deletion", err)
	}

	return &moderation.PostDeletion{
		PostID:          postID,
		OwnerID:         ownerID,
		CommentsDeleted: commentsDeleted,
	}, nil
}

// DeleteComment atomically soft-deletes a single comment and appends the
// audit record. No cascade exists beneath a comment.
func (r *postgresModerationRepo) DeleteComment(ctx context.Context, commentID, adminID int64) (*moderation.CommentDeletion, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, wrapErr("begin transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && rollbackErr != sql.ErrTxDone {
			log.Printf("Failed to rollback transaction: %v", rollbackErr)
		}
	}()

	var ownerID, postID int64
	err = tx.QueryRowContext(ctx,
		`SELECT author_id, post_id FROM comments WHERE id = $1 AND is_deleted = FALSE FOR UPDATE`,
		commentID,
	).Scan(&ownerID, &postID)
	if err == sql.ErrNoRows {
		return nil, moderation.ErrCommentNotFound
	}
	if err != nil {
		return nil, wrapErr("lock comment", err)
	}

	if _, err = tx.ExecContext(ctx,
		`UPDATE comments SET is_deleted = TRUE WHERE id = $1`, commentID); err != nil {
		return nil, wrapErr("delete comment", err)
	}

	if err = appendAdminAction(ctx, tx, adminID, moderation.ActionDeleteComment, "comment", commentID); err != nil {
		return nil, err
	}

	if err = tx.Commit(); err != nil {
		return nil, wrapErr("commit comment deletion", err)
	}

	return &moderation.CommentDeletion{
		CommentID: commentID,
		OwnerID:   ownerID,
		PostID:    postID,
	}, nil
}

// SetBanned toggles the banned flag under a row lock so two concurrent
// admins cannot produce conflicting audit trails
func (r *postgresModerationRepo) SetBanned(ctx context.Context, userID, adminID int64, banned bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return wrapErr("begin transaction", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && rollbackErr != sql.ErrTxDone {
			log.Printf("Failed to rollback transaction: %v", rollbackErr)
		}
	}()

	var currentlyBanned bool
	err = tx.QueryRowContext(ctx,
		`SELECT is_banned FROM users WHERE id = $1 FOR UPDATE`, userID,
	).Scan(&currentlyBanned)
	if err == sql.ErrNoRows {
		return moderation.ErrUserNotFound
	}
	if err != nil {
		return wrapErr("lock user", err)
	}

	if currentlyBanned == banned {
		if banned {
			return moderation.ErrAlreadyBanned
		}
		return moderation.ErrNotBanned
	}

	if banned {
		_, err = tx.ExecContext(ctx,
			`UPDATE users SET is_banned = TRUE, banned_at = NOW() WHERE id = $1`, userID)
	} else {
		_, err = tx.ExecContext(ctx,
			`UPDATE users SET is_banned = FALSE, banned_at = NULL WHERE id = $1`, userID)
	}
	if err != nil {
		return wrapErr("update ban state", err)
	}

	action := moderation.ActionBanUser
	if !banned {
		action = moderation.ActionUnbanUser
	}
	if err = appendAdminAction(ctx, tx, adminID, action, "user", userID); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return wrapErr("commit ban state", err)
	}
	return nil
}

// appendAdminAction writes one append-only audit log row inside the caller's
// transaction
func appendAdminAction(ctx context.Context, tx *sql.Tx, adminID int64, action, targetKind string, targetID int64) error {
	_, err := tx.ExecContext(ctx, `
		INSERT INTO admin_actions (admin_id, action, target_kind, target_id)
		VALUES ($1, $2, $3, $4)
	`, adminID, action, targetKind, targetID)
	if err != nil {
		return wrapErr("append admin action", err)
	}
	return nil
}
