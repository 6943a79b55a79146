package moderation

import (
	"context"
	"fmt"
	"log/slog"

	"Shibaboard/internal/core/notifications"
)

// moderationService implements the Service interface
// The repository owns the transaction; this layer owns the post-commit
// side effects. A notification failure is logged and swallowed so it can
// neither roll back a committed deletion nor surface to the admin.
type moderationService struct {
	repo       Repository
	dispatcher notifications.Dispatcher
	logger     *slog.Logger
}

// NewModerationService creates a new moderation service instance
func NewModerationService(repo Repository, dispatcher notifications.Dispatcher, logger *slog.Logger) Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &moderationService{
		repo:       repo,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

func (s *moderationService) DeletePost(ctx context.Context, adminID, postID int64) (*PostDeletion, error) {
	result, err := s.repo.CascadeDeletePost(ctx, postID, adminID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("post removed by admin",
		"admin_id", adminID,
		"post_id", result.PostID,
		"owner_id", result.OwnerID,
		"comments_deleted", result.CommentsDeleted)

	s.notify(ctx, result.OwnerID, notifications.TypePostRemoved,
		"Your post was removed by a moderator.",
		fmt.Sprintf("/posts/%d", result.PostID))

	return result, nil
}

func (s *moderationService) DeleteComment(ctx context.Context, adminID, commentID int64) (*CommentDeletion, error) {
	result, err := s.repo.DeleteComment(ctx, commentID, adminID)
	if err != nil {
		return nil, err
	}

	s.logger.Info("comment removed by admin",
		"admin_id", adminID,
		"comment_id", result.CommentID,
		"owner_id", result.OwnerID)

	s.notify(ctx, result.OwnerID, notifications.TypeCommentRemoved,
		"Your comment was removed by a moderator.",
		fmt.Sprintf("/posts/%d", result.PostID))

	return result, nil
}

func (s *moderationService) BanUser(ctx context.Context, adminID, userID int64) error {
	if err := s.repo.SetBanned(ctx, userID, adminID, true); err != nil {
		return err
	}

	s.logger.Info("user banned", "admin_id", adminID, "user_id", userID)

	s.notify(ctx, userID, notifications.TypeAccountBanned,
		"Your account has been suspended by a moderator.", "")
	return nil
}

func (s *moderationService) UnbanUser(ctx context.Context, adminID, userID int64) error {
	if err := s.repo.SetBanned(ctx, userID, adminID, false); err != nil {
		return err
	}

	s.logger.Info("user unbanned", "admin_id", adminID, "user_id", userID)

	s.notify(ctx, userID, notifications.TypeAccountUnbanned,
		"Your account suspension has been lifted.", "")
	return nil
}

// notify dispatches a post-commit notification, logging delivery failures
// instead of propagating them
func (s *moderationService) notify(ctx context.Context, recipientID int64, notifType, message, link string) {
	if err := s.dispatcher.Enqueue(ctx, recipientID, notifType, message, link); err != nil {
		s.logger.Error("failed to enqueue notification",
			"recipient_id", recipientID,
			"type", notifType,
			"error", err)
	}
}
