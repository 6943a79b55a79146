package reports

import (
	"context"
	"time"
)

// Report target kinds
const (
	TargetUser    = "user"
	TargetPost    = "post"
	TargetComment = "comment"
)

// Report statuses
const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
	StatusRejected = "rejected"
)

// MinReasonLength is the minimum trimmed length of a report reason
const MinReasonLength = 3

// DefaultDedupWindow is the default sliding window within which a reporter
// may not re-report the same target
const DefaultDedupWindow = 24 * time.Hour

// Report represents an abuse report row
type Report struct {
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
	TargetKind string    `json:"targetKind" db:"target_kind"`
	Reason     string    `json:"reason" db:"reason"`
	Status     string    `json:"status" db:"status"`
	ID         int64     `json:"id" db:"id"`
	ReporterID int64     `json:"reporterId" db:"reporter_id"`
	TargetID   int64     `json:"targetId" db:"target_id"`
}

// ValidTargetKind reports whether kind names a reportable target
func ValidTargetKind(kind string) bool {
	return kind == TargetUser || kind == TargetPost || kind == TargetComment
}

// ValidStatus reports whether status is a known report status
func ValidStatus(status string) bool {
	return status == StatusPending || status == StatusAccepted || status == StatusRejected
}

// AllowedTransition encodes the status machine: pending resolves to a
// terminal state, and a terminal state may be explicitly re-opened
func AllowedTransition(from, to string) bool {
	switch from {
	case StatusPending:
		return to == StatusAccepted || to == StatusRejected
	case StatusAccepted, StatusRejected:
		return to == StatusPending
	}
	return false
}

// Repository defines the data access interface for reports
type Repository interface {
	// Create persists a new report and fills in id/created_at/updated_at
	Create(ctx context.Context, report *Report) error

	// HasRecent reports whether the reporter already has a report on the
	// same target created at or after the since timestamp (sliding window)
	HasRecent(ctx context.Context, reporterID int64, targetKind string, targetID int64, since time.Time) (bool, error)

	// UpdateStatus transitions the report in a single transaction: the row
	// is locked (FOR UPDATE) and the transition validated against the locked
	// status, so two concurrent admins cannot both resolve the same report.
	// Returns ErrReportNotFound or ErrInvalidTransition.
	UpdateStatus(ctx context.Context, id int64, status string) (*Report, error)
}

// Service defines the business logic interface for report intake
type Service interface {
	// FileReport validates, deduplicates and persists an abuse report at
	// status pending, then fans out an alert to active admins (best-effort;
	// a fan-out failure never fails the filing)
	FileReport(ctx context.Context, reporterID *int64, targetKind string, targetID int64, reason string) (*Report, error)

	// UpdateStatus transitions a report between statuses. Admin-only.
	// pending -> accepted|rejected resolves; accepted|rejected -> pending
	// explicitly re-opens. The reporter is notified of resolutions.
	UpdateStatus(ctx context.Context, reportID, adminID int64, newStatus string) (*Report, error)
}
