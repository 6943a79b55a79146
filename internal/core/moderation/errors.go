package moderation

import "errors"

var (
	// ErrPostNotFound indicates the post is missing or already deleted
	ErrPostNotFound = errors.New("post not found")

	// ErrCommentNotFound indicates the comment is missing or already deleted
	ErrCommentNotFound = errors.New("comment not found")

	// ErrUserNotFound indicates the sanction target doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrAlreadyBanned indicates the user is already banned
	ErrAlreadyBanned = errors.New("user is already banned")

	// ErrNotBanned indicates the user is not currently banned
	ErrNotBanned = errors.New("user is not banned")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrPostNotFound) ||
		errors.Is(err, ErrCommentNotFound) ||
		errors.Is(err, ErrUserNotFound)
}

// IsConflict checks if an error is a state conflict
func IsConflict(err error) bool {
	return errors.Is(err, ErrAlreadyBanned) ||
		errors.Is(err, ErrNotBanned)
}
