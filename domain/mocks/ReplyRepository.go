package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/forumapi/forum-api/domain"
)

// ReplyRepository is a mock type for the domain.ReplyRepository type
type ReplyRepository struct {
	mock.Mock
}

// AddReply provides a mock function with given fields: ctx, r
func (_m *ReplyRepository) AddReply(ctx context.Context, r domain.RegisterReply) (domain.RegisteredReply, error) {
	ret := _m.Called(ctx, r)
	return ret.Get(0).(domain.RegisteredReply), ret.Error(1)
}

// GetReplyByID provides a mock function with given fields: ctx, replyID
func (_m *ReplyRepository) GetReplyByID(ctx context.Context, replyID string) (domain.ReturnedReply, error) {
	ret := _m.Called(ctx, replyID)
	return ret.Get(0).(domain.ReturnedReply), ret.Error(1)
}

// GetRepliesByCommentID provides a mock function with given fields: ctx, commentID
func (_m *ReplyRepository) GetRepliesByCommentID(ctx context.Context, commentID string) ([]domain.ReturnedReply, error) {
	ret := _m.Called(ctx, commentID)

	var r0 []domain.ReturnedReply
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]domain.ReturnedReply)
	}
	return r0, ret.Error(1)
}

// VerifyReplyByID provides a mock function with given fields: ctx, replyID
func (_m *ReplyRepository) VerifyReplyByID(ctx context.Context, replyID string) error {
	ret := _m.Called(ctx, replyID)
	return ret.Error(0)
}

// VerifyReplyOwner provides a mock function with given fields: ctx, replyID, userID
func (_m *ReplyRepository) VerifyReplyOwner(ctx context.Context, replyID, userID string) error {
	ret := _m.Called(ctx, replyID, userID)
	return ret.Error(0)
}

// DeleteReply provides a mock function with given fields: ctx, replyID, userID
func (_m *ReplyRepository) DeleteReply(ctx context.Context, replyID, userID string) error {
	ret := _m.Called(ctx, replyID, userID)
	return ret.Error(0)
}

// NewReplyRepository creates a new instance of ReplyRepository and registers
// a cleanup function to assert the mocks expectations.
func NewReplyRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ReplyRepository {
	m := &ReplyRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
