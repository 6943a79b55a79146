package ratings

import "errors"

var (
	// ErrTargetNotFound indicates the post/comment being voted on doesn't exist
	ErrTargetNotFound = errors.New("vote target not found")

	// ErrInvalidTargetKind indicates the target kind is not "post" or "comment"
	ErrInvalidTargetKind = errors.New("invalid target kind: must be 'post' or 'comment'")

	// ErrInvalidKind indicates the vote kind is not "like" or "dislike"
	ErrInvalidKind = errors.New("invalid vote kind: must be 'like' or 'dislike'")

	// ErrNoTargets indicates a summary lookup with an empty id list
	ErrNoTargets = errors.New("at least one target id is required")

	// ErrTooManyTargets indicates a summary lookup exceeding the batch cap
	ErrTooManyTargets = errors.New("too many target ids requested")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTargetNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidTargetKind) ||
		errors.Is(err, ErrInvalidKind) ||
		errors.Is(err, ErrNoTargets) ||
		errors.Is(err, ErrTooManyTargets)
}
