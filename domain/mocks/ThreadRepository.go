package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/forumapi/forum-api/domain"
)

// ThreadRepository is a mock type for the domain.ThreadRepository type
type ThreadRepository struct {
	mock.Mock
}

// AddThread provides a mock function with given fields: ctx, t
func (_m *ThreadRepository) AddThread(ctx context.Context, t domain.RegisterThread) (domain.RegisteredThread, error) {
	ret := _m.Called(ctx, t)
	return ret.Get(0).(domain.RegisteredThread), ret.Error(1)
}

// GetThreadByID provides a mock function with given fields: ctx, threadID
func (_m *ThreadRepository) GetThreadByID(ctx context.Context, threadID string) (domain.ReturnedThread, error) {
	ret := _m.Called(ctx, threadID)
	return ret.Get(0).(domain.ReturnedThread), ret.Error(1)
}

// VerifyThreadByID provides a mock function with given fields: ctx, threadID
func (_m *ThreadRepository) VerifyThreadByID(ctx context.Context, threadID string) error {
	ret := _m.Called(ctx, threadID)
	return ret.Error(0)
}

// NewThreadRepository creates a new instance of ThreadRepository and registers
// a cleanup function to assert the mocks expectations.
func NewThreadRepository(t interface {
	mock.TestingT
	Cleanup(func())
}) *ThreadRepository {
	m := &ThreadRepository{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
