package moderation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"Shibaboard/internal/core/notifications"
)

type mockModerationRepository struct {
	mock.Mock
}

func (m *mockModerationRepository) CascadeDeletePost(ctx context.Context, postID, adminID int64) (*PostDeletion, error) {
	args := m.Called(ctx, postID, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*PostDeletion), args.Error(1)
}

func (m *mockModerationRepository) DeleteComment(ctx context.Context, commentID, adminID int64) (*CommentDeletion, error) {
	args := m.Called(ctx, commentID, adminID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CommentDeletion), args.Error(1)
}

func (m *mockModerationRepository) SetBanned(ctx context.Context, userID, adminID int64, banned bool) error {
	args := m.Called(ctx, userID, adminID, banned)
	return args.Error(0)
}

type mockDispatcher struct {
	mock.Mock
}

func (m *mockDispatcher) Enqueue(ctx context.Context, recipientID int64, notifType, message, link string) error {
	args := m.Called(ctx, recipientID, notifType, message, link)
	return args.Error(0)
}

func TestDeletePost_NotifiesOwnerAfterCommit(t *testing.T) {
	repo := new(mockModerationRepository)
	dispatcher := new(mockDispatcher)
	service := NewModerationService(repo, dispatcher, nil)

	repo.On("CascadeDeletePost", mock.Anything, int64(1), int64(99)).
		Return(&PostDeletion{PostID: 1, OwnerID: 5, CommentsDeleted: 3}, nil)
	dispatcher.On("Enqueue", mock.Anything, int64(5), notifications.TypePostRemoved, mock.Anything, mock.Anything).
		Return(nil)

	result, err := service.DeletePost(context.Background(), 99, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(3), result.CommentsDeleted)
	dispatcher.AssertExpectations(t)
}

func TestDeletePost_NotFoundSkipsNotification(t *testing.T) {
	repo := new(mockModerationRepository)
	dispatcher := new(mockDispatcher)
	service := NewModerationService(repo, dispatcher, nil)

	repo.On("CascadeDeletePost", mock.Anything, int64(1), int64(99)).
		Return(nil, ErrPostNotFound)

	_, err := service.DeletePost(context.Background(), 99, 1)

	assert.ErrorIs(t, err, ErrPostNotFound)
	assert.True(t, IsNotFound(err))
	dispatcher.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDeletePost_NotificationFailureSwallowed(t *testing.T) {
	repo := new(mockModerationRepository)
	dispatcher := new(mockDispatcher)
	service := NewModerationService(repo, dispatcher, nil)

	repo.On("CascadeDeletePost", mock.Anything, int64(1), int64(99)).
		Return(&PostDeletion{PostID: 1, OwnerID: 5}, nil)
	dispatcher.On("Enqueue", mock.Anything, int64(5), notifications.TypePostRemoved, mock.Anything, mock.Anything).
		Return(errors.New("dispatcher down"))

	// The deletion committed; a notification failure must not surface
	result, err := service.DeletePost(context.Background(), 99, 1)

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.PostID)
}

func TestDeleteComment_NotifiesOwner(t *testing.T) {
	repo := new(mockModerationRepository)
	dispatcher := new(mockDispatcher)
	service := NewModerationService(repo, dispatcher, nil)

	repo.On("DeleteComment", mock.Anything, int64(10), int64(99)).
		Return(&CommentDeletion{CommentID: 10, OwnerID: 6, PostID: 1}, nil)
	dispatcher.On("Enqueue", mock.Anything, int64(6), notifications.TypeCommentRemoved, mock.Anything, mock.Anything).
		Return(nil)

	result, err := service.DeleteComment(context.Background(), 99, 10)

	require.NoError(t, err)
	assert.Equal(t, int64(1), result.PostID)
	dispatcher.AssertExpectations(t)
}

func TestBanUser_NotifiesTarget(t *testing.T) {
	repo := new(mockModerationRepository)
	dispatcher := new(mockDispatcher)
	service := NewModerationService(repo, dispatcher, nil)

	repo.On("SetBanned", mock.Anything, int64(5), int64(99), true).Return(nil)
	dispatcher.On("Enqueue", mock.Anything, int64(5), notifications.TypeAccountBanned, mock.Anything, "").
		Return(nil)

	require.NoError(t, service.BanUser(context.Background(), 99, 5))
	dispatcher.AssertExpectations(t)
}

func TestBanUser_AlreadyBanned(t *testing.T) {
	repo := new(mockModerationRepository)
	dispatcher := new(mockDispatcher)
	service := NewModerationService(repo, dispatcher, nil)

	repo.On("SetBanned", mock.Anything, int64(5), int64(99), true).Return(ErrAlreadyBanned)

	err := service.BanUser(context.Background(), 99, 5)

	assert.ErrorIs(t, err, ErrAlreadyBanned)
	assert.True(t, IsConflict(err))
	dispatcher.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUnbanUser_NotifiesTarget(t *testing.T) {
	repo := new(mockModerationRepository)
	dispatcher := new(mockDispatcher)
	service := NewModerationService(repo, dispatcher, nil)

	repo.On("SetBanned", mock.Anything, int64(5), int64(99), false).Return(nil)
	dispatcher.On("Enqueue", mock.Anything, int64(5), notifications.TypeAccountUnbanned, mock.Anything, "").
		Return(nil)

	require.NoError(t, service.UnbanUser(context.Background(), 99, 5))
	dispatcher.AssertExpectations(t)
}
