package notifications

import (
	"context"
	"time"
)

// Notification type constants
// The type string is what clients switch on to render the notice
const (
	TypePostRemoved     = "post_removed"
	TypeCommentRemoved  = "comment_removed"
	TypeReportFiled     = "report_filed"
	TypeReportResolved  = "report_resolved"
	TypeAccountBanned   = "account_banned"
	TypeAccountUnbanned = "account_unbanned"
)

// Notification represents an in-app notice row.
// Created as a side effect of moderation actions and report intake;
// the only mutation after creation is the read-state transition.
type Notification struct {
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`
	Type        string    `json:"type" db:"type"`
	Message     string    `json:"message" db:"message"`
	Link        string    `json:"link,omitempty" db:"link"`
	ID          int64     `json:"id" db:"id"`
	RecipientID int64     `json:"recipientId" db:"recipient_id"`
	IsRead      bool      `json:"isRead" db:"is_read"`
}

// Dispatcher is the narrow boundary consumed by the moderation and report
// services. Delivery is best-effort: callers invoke Enqueue strictly after
// their own transaction commits and log (never propagate) failures.
type Dispatcher interface {
	Enqueue(ctx context.Context, recipientID int64, notifType, message, link string) error
}

// Repository defines the data access interface for notifications
type Repository interface {
	// Insert persists a new unread notification
	Insert(ctx context.Context, n *Notification) error

	// ListByRecipient retrieves a user's notifications, newest first
	ListByRecipient(ctx context.Context, recipientID int64, limit int) ([]*Notification, error)

	// MarkRead flips is_read on a notification owned by recipientID
	// Returns ErrNotificationNotFound if the row is missing or owned by someone else
	MarkRead(ctx context.Context, recipientID, notificationID int64) error
}

// Service defines the business logic interface for notifications
type Service interface {
	Dispatcher

	// List retrieves a user's notifications, newest first
	List(ctx context.Context, recipientID int64, limit int) ([]*Notification, error)

	// MarkRead marks one of the user's notifications as read
	MarkRead(ctx context.Context, recipientID, notificationID int64) error
}
