package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/forumapi/forum-api/domain"
)

// CommentRepository is a mock type for the domain.CommentRepository type
type CommentRepository struct {
	mock.Mock
}

// AddComment provides a mock function with given fields: ctx, c
func (_m *CommentRepository) AddComment(ctx context.Context, c domain.RegisterComment) (domain.RegisteredComment, error) {
	ret := _m.Called(ctx, c)
	return ret.Get(0).(domain.RegisteredComment), ret.Error(1)
}

// GetCommentByID provides a mock function with given fields: ctx, commentID
func (_m *CommentRepository) GetCommentByID(ctx context.Context, commentID string) (domain.ReturnedComment, error) {
	ret := _m.Called(ctx, commentID)
	return ret.Get(0).(domain.ReturnedComment), ret.Error(1)
}

// GetCommentsByThreadID provides a mock function with given fields: ctx, threadID
func (_m *CommentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.ReturnedComment, error) {
	ret := _m.Called(ctx, threadID)

	var r0 []domain.ReturnedComment
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.ReturnedComment)
	}
	return r0, ret.Error(1)
}

// VerifyCommentByID provides a mock function with given fields: ctx, commentID
func (_m *CommentRepository) VerifyCommentByID(ctx context.Context, commentID string) error {
	ret := _m.Called(ctx, commentID)
	return ret.Error(0)
}

// VerifyCommentOwner provides a mock function with given fields: ctx, commentID, userID
func (_m *CommentRepository) VerifyCommentOwner(ctx context.Context, commentID, userID string) error {
	ret := _m.Called(ctx, commentID, userID)
	return ret.Error(0)
}

// DeleteComment provides a mock function with given fields: ctx, commentID, userID
func (_m *CommentRepository) DeleteComment(ctx context.Context, commentID, userID string) error {
	ret := _m.Called(ctx, commentID, userID)
	return ret.Error(0)
}

// NewCommentRepository creates a new instance of CommentRepository and registers
// a cleanup function to assert the mocks expectations.
func NewCommentRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *CommentRepository {
	m := &CommentRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
