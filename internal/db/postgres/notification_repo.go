package postgres

import (
	"context"
	"database/sql"

	"Shibaboard/internal/core/notifications"
)

type postgresNotificationRepo struct {
	db *sql.DB
}

// NewNotificationRepository creates a new PostgreSQL notification repository
func NewNotificationRepository(db *sql.DB) notifications.Repository {
	return &postgresNotificationRepo{db: db}
}

func (r *postgresNotificationRepo) Insert(ctx context.Context, n *notifications.Notification) error {
	query := `
		INSERT INTO notifications (recipient_id, type, message, link)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_read, created_at
	`

	err := r.db.QueryRowContext(ctx, query,
		n.RecipientID, n.Type, n.Message, n.Link,
	).Scan(&n.ID, &n.IsRead, &n.CreatedAt)
	if err != nil {
		return wrapErr("insert notification", err)
	}
	return nil
}

func (r *postgresNotificationRepo) ListByRecipient(ctx context.Context, recipientID int64, limit int) ([]*notifications.Notification, error) {
	query := `
		SELECT id, recipient_id, type, message, link, is_read, created_at
		FROM notifications
		WHERE recipient_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`

	rows, err := r.db.QueryContext(ctx, query, recipientID, limit)
	if err != nil {
		return nil, wrapErr("list notifications", err)
	}
	defer func() { _ = rows.Close() }()

	var result []*notifications.Notification
	for rows.Next() {
		var n notifications.Notification
		err := rows.Scan(
			&n.ID, &n.RecipientID, &n.Type, &n.Message,
			&n.Link, &n.IsRead, &n.CreatedAt,
		)
		if err != nil {
			return nil, wrapErr("scan notification", err)
		}
		result = append(result, &n)
	}

	if err = rows.Err(); err != nil {
		return nil, wrapErr("iterate notifications", err)
	}
	return result, nil
}

// MarkRead flips is_read on a notification owned by recipientID.
// The recipient check is part of the WHERE clause, so marking another
// user's notification reads as not found.
func (r *postgresNotificationRepo) MarkRead(ctx context.Context, recipientID, notificationID int64) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE
		WHERE id = $1 AND recipient_id = $2
	`

	result, err := r.db.ExecContext(ctx, query, notificationID, recipientID)
	if err != nil {
		return wrapErr("mark notification read", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return wrapErr("check mark read result", err)
	}
	if rowsAffected == 0 {
		return notifications.ErrNotificationNotFound
	}
	return nil
}
