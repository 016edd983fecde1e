package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/forumapi/forum-api/domain"
)

// ThreadUsecase is a mock type for the domain.ThreadUsecase type
type ThreadUsecase struct {
	mock.Mock
}

// AddThread provides a mock function with given fields: ctx, t
func (_m *ThreadUsecase) AddThread(ctx context.Context, t domain.RegisterThread) (domain.RegisteredThread, error) {
	ret := _m.Called(ctx, t)
	return ret.Get(0).(domain.RegisteredThread), ret.Error(1)
}

// GetThread provides a mock function with given fields: ctx, threadID
func (_m *ThreadUsecase) GetThread(ctx context.Context, threadID string) (domain.ReturnedThread, error) {
	ret := _m.Called(ctx, threadID)
	return ret.Get(0).(domain.ReturnedThread), ret.Error(1)
}

// CommentUsecase is a mock type for the domain.CommentUsecase type
type CommentUsecase struct {
	mock.Mock
}

// AddComment provides a mock function with given fields: ctx, c
func (_m *CommentUsecase) AddComment(ctx context.Context, c domain.RegisterComment) (domain.RegisteredComment, error) {
	ret := _m.Called(ctx, c)
	return ret.Get(0).(domain.RegisteredComment), ret.Error(1)
}

// DeleteComment provides a mock function with given fields: ctx, threadID, commentID, userID
func (_m *CommentUsecase) DeleteComment(ctx context.Context, threadID, commentID, userID string) error {
	ret := _m.Called(ctx, threadID, commentID, userID)
	return ret.Error(0)
}

// ReplyUsecase is a mock type for the domain.ReplyUsecase type
type ReplyUsecase struct {
	mock.Mock
}

// AddReply provides a mock function with given fields: ctx, r
func (_m *ReplyUsecase) AddReply(ctx context.Context, r domain.RegisterCommentReply) (domain.RegisteredCommentReply, error) {
	ret := _m.Called(ctx, r)
	return ret.Get(0).(domain.RegisteredCommentReply), ret.Error(1)
}

// DeleteReply provides a mock function with given fields: ctx, threadID, commentID, replyID, userID
func (_m *ReplyUsecase) DeleteReply(ctx context.Context, threadID, commentID, replyID, userID string) error {
	ret := _m.Called(ctx, threadID, commentID, replyID, userID)
	return ret.Error(0)
}

// LikeUsecase is a mock type for the domain.LikeUsecase type
type LikeUsecase struct {
	mock.Mock
}

// LikeComment provides a mock function with given fields: ctx, threadID, commentID, userID
func (_m *LikeUsecase) LikeComment(ctx context.Context, threadID, commentID, userID string) (bool, error) {
	ret := _m.Called(ctx, threadID, commentID, userID)
	return ret.Bool(0), ret.Error(1)
}
