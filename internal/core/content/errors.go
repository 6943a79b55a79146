package content

import "errors"

var (
	// ErrPostNotFound indicates the post doesn't exist or is soft-deleted
	ErrPostNotFound = errors.New("post not found")

	// ErrCommentNotFound indicates the comment doesn't exist or is soft-deleted
	ErrCommentNotFound = errors.New("comment not found")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound) ||
		errors.Is(err, ErrCommentNotFound)
}
