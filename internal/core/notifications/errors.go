package notifications

import "errors"

var (
	// ErrNotificationNotFound indicates the notification doesn't exist or
	// belongs to a different recipient
	ErrNotificationNotFound = errors.New("notification not found")

	// ErrInvalidRecipient indicates the recipient id is missing or invalid
	ErrInvalidRecipient = errors.New("invalid notification recipient")

	// ErrInvalidType indicates the notification type is not a known constant
	ErrInvalidType = errors.New("invalid notification type")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotificationNotFound)
}
