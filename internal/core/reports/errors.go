package reports

import "errors"

var (
	// ErrUnauthenticated indicates the reporter identity is missing
	ErrUnauthenticated = errors.New("authentication required to file a report")

	// ErrInvalidTargetKind indicates the target kind is not "user", "post" or "comment"
	ErrInvalidTargetKind = errors.New("invalid target kind: must be 'user', 'post' or 'comment'")

	// ErrReasonTooShort indicates the trimmed reason is under the minimum length
	ErrReasonTooShort = errors.New("report reason must be at least 3 characters")

	// ErrSelfReport indicates a user tried to report their own account
	ErrSelfReport = errors.New("cannot report yourself")

	// ErrTargetNotFound indicates the reported content is missing or soft-deleted
	ErrTargetNotFound = errors.New("report target not found")

	// ErrDuplicateReport indicates the reporter already reported this target
	// within the dedup window
	ErrDuplicateReport = errors.New("target already reported recently")

	// ErrReportNotFound indicates the report doesn't exist
	ErrReportNotFound = errors.New("report not found")

	// ErrInvalidStatus indicates an unknown report status
	ErrInvalidStatus = errors.New("invalid report status: must be 'pending', 'accepted' or 'rejected'")

	// ErrInvalidTransition indicates a disallowed status transition
	ErrInvalidTransition = errors.New("invalid report status transition")
)

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTargetNotFound) ||
		errors.Is(err, ErrReportNotFound)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidTargetKind) ||
		errors.Is(err, ErrReasonTooShort) ||
		errors.Is(err, ErrInvalidStatus)
}

// IsConflict checks if an error is a conflict error
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicateReport) ||
		errors.Is(err, ErrSelfReport) ||
		errors.Is(err, ErrInvalidTransition)
}
