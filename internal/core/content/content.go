package content

import (
	"context"
	"time"
)

// Post represents a post row as seen by the moderation core.
// Posts are never physically removed; is_deleted hides them.
type Post struct {
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	Title     string    `json:"title" db:"title"`
	Body      string    `json:"body" db:"body"`
	ID        int64     `json:"id" db:"id"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
	IsDeleted bool      `json:"isDeleted" db:"is_deleted"`
}

// Comment represents a comment row. ParentID is set for replies to
// another comment; every comment belongs to exactly one post.
type Comment struct {
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	ParentID   *int64    `json:"parentId,omitempty" db:"parent_comment_id"`
	Body       string    `json:"body" db:"body"`
	ID         int64     `json:"id" db:"id"`
	PostID     int64     `json:"postId" db:"post_id"`
	AuthorID   int64     `json:"authorId" db:"author_id"`
	IsSolution bool      `json:"isSolution" db:"is_solution"`
	IsDeleted  bool      `json:"isDeleted" db:"is_deleted"`
}

// Repository defines the shared read model for posts and comments.
// Soft-deleted rows are treated as nonexistent by every method here;
// the moderation repository is the only writer of is_deleted.
type Repository interface {
	// GetPost retrieves a live post by id
	// Returns ErrPostNotFound for missing or soft-deleted posts
	GetPost(ctx context.Context, id int64) (*Post, error)

	// GetComment retrieves a live comment by id
	// Returns ErrCommentNotFound for missing or soft-deleted comments
	GetComment(ctx context.Context, id int64) (*Comment, error)

	// PostExists reports whether a live post with this id exists
	PostExists(ctx context.Context, id int64) (bool, error)

	// CommentExists reports whether a live comment with this id exists
	CommentExists(ctx context.Context, id int64) (bool, error)
}
