package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// LikeRepository is a mock type for the domain.LikeRepository type
type LikeRepository struct {
	mock.Mock
}

// AddLike provides a mock function with given fields: ctx, commentID, userID
func (_m *LikeRepository) AddLike(ctx context.Context, commentID, userID string) error {
	ret := _m.Called(ctx, commentID, userID)
	return ret.Error(0)
}

// RemoveLike provides a mock function with given fields: ctx, commentID, userID
func (_m *LikeRepository) RemoveLike(ctx context.Context, commentID, userID string) error {
	ret := _m.Called(ctx, commentID, userID)
	return ret.Error(0)
}

// VerifyLikeByCommentID provides a mock function with given fields: ctx, commentID, userID
func (_m *LikeRepository) VerifyLikeByCommentID(ctx context.Context, commentID, userID string) (bool, error) {
	ret := _m.Called(ctx, commentID, userID)
	return ret.Bool(0), ret.Error(1)
}

// GetLikeCountByCommentID provides a mock function with given fields: ctx, commentID
func (_m *LikeRepository) GetLikeCountByCommentID(ctx context.Context, commentID string) (int64, error) {
	ret := _m.Called(ctx, commentID)
	return ret.Get(0).(int64), ret.Error(1)
}

// NewLikeRepository creates a new instance of LikeRepository and registers
// a cleanup function to assert the mocks expectations.
func NewLikeRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *LikeRepository {
	m := &LikeRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
