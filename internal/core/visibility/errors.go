package visibility

import "errors"

var (
	// ErrInvalidSort indicates an unknown sort mode was requested
	ErrInvalidSort = errors.New("invalid sort: must be 'latest', 'oldest', 'popular' or 'ratio'")
)

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidSort)
}
