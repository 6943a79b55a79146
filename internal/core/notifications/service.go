package notifications

import (
	"context"
	"fmt"
	"log/slog"
)

// DefaultListLimit caps how many notifications a single list call returns
const DefaultListLimit = 50

var knownTypes = map[string]struct{}{
	TypePostRemoved:     {},
	TypeCommentRemoved:  {},
	TypeReportFiled:     {},
	TypeReportResolved:  {},
	TypeAccountBanned:   {},
	TypeAccountUnbanned: {},
}

// notificationService implements the Service interface
type notificationService struct {
	repo   Repository
	logger *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(repo Repository, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &notificationService{repo: repo, logger: logger}
}

// Enqueue persists an unread notification for later delivery.
// Callers treat this as fire-and-forget; it must only be invoked after the
// transaction that caused the notice has committed.
func (s *notificationService) Enqueue(ctx context.Context, recipientID int64, notifType, message, link string) error {
	if recipientID <= 0 {
		return ErrInvalidRecipient
	}
	if _, ok := knownTypes[notifType]; !ok {
		return fmt.Errorf("%w: %s", ErrInvalidType, notifType)
	}

	n := &Notification{
		RecipientID: recipientID,
		Type:        notifType,
		Message:     message,
		Link:        link,
	}
	if err := s.repo.Insert(ctx, n); err != nil {
		return fmt.Errorf("failed to enqueue notification: %w", err)
	}
	return nil
}

func (s *notificationService) List(ctx context.Context, recipientID int64, limit int) ([]*Notification, error) {
	if recipientID <= 0 {
		return nil, ErrInvalidRecipient
	}
	if limit <= 0 || limit > DefaultListLimit {
		limit = DefaultListLimit
	}
	return s.repo.ListByRecipient(ctx, recipientID, limit)
}

func (s *notificationService) MarkRead(ctx context.Context, recipientID, notificationID int64) error {
	if recipientID <= 0 {
		return ErrInvalidRecipient
	}
	return s.repo.MarkRead(ctx, recipientID, notificationID)
}
