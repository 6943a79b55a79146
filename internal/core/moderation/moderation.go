package moderation

import "context"

// Admin action kinds recorded in the append-only audit log
const (
	ActionDeletePost    = "delete_post"
	ActionDeleteComment = "delete_comment"
	ActionBanUser       = "ban_user"
	ActionUnbanUser     = "unban_user"
)

// PostDeletion describes the outcome of a committed post cascade
type PostDeletion struct {
	PostID          int64 `json:"postId"`
	OwnerID         int64 `json:"ownerId"`
	CommentsDeleted int64 `json:"commentsDeleted"`
}

// CommentDeletion describes the outcome of a committed comment removal
type CommentDeletion struct {
	CommentID int64 `json:"commentId"`
	OwnerID   int64 `json:"ownerId"`
	PostID    int64 `json:"postId"`
}

// Repository defines the transactional data access interface for moderation.
// Every method runs as a single database transaction: the precondition check,
// the state flips, and the audit log append either all commit or all roll
// back. Notification dispatch is NOT part of these transactions; the service
// layer performs it strictly after commit.
type Repository interface {
	// CascadeDeletePost marks the post and all of its live comments deleted
	// and appends one audit record. The post row is locked (FOR UPDATE) and
	// checked inside the transaction so two concurrent deletes cannot both
	// succeed. Returns ErrPostNotFound when the post is missing or already
	// deleted; no audit record is written in that case.
	CascadeDeletePost(ctx context.Context, postID, adminID int64) (*PostDeletion, error)

	// DeleteComment is the single-entity analogue of CascadeDeletePost
	// (nothing cascades beneath a comment)
	DeleteComment(ctx context.Context, commentID, adminID int64) (*CommentDeletion, error)

	// SetBanned toggles the user's banned flag under a row lock and appends
	// an audit record. Returns ErrAlreadyBanned / ErrNotBanned when the flag
	// already has the requested value.
	SetBanned(ctx context.Context, userID, adminID int64, banned bool) error
}

// Service defines the business logic interface for admin moderation
type Service interface {
	// DeletePost cascades a soft delete over the post and its comments, then
	// notifies the post owner (best-effort, after commit)
	DeletePost(ctx context.Context, adminID, postID int64) (*PostDeletion, error)

	// DeleteComment soft-deletes a single comment, then notifies its owner
	DeleteComment(ctx context.Context, adminID, commentID int64) (*CommentDeletion, error)

	// BanUser sanctions an account and notifies it
	BanUser(ctx context.Context, adminID, userID int64) error

	// UnbanUser lifts a sanction and notifies the account
	UnbanUser(ctx context.Context, adminID, userID int64) error
}
