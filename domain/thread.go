package domain

import "context"

// RegisterThread is the payload to create a thread
type RegisterThread struct {
	Title string `json:"title" validate:"required"`
	Body  string `json:"body" validate:"required"`
	Owner string `json:"owner" validate:"required"`
}

// Validate checks every required property is present.
func (t RegisterThread) Validate() error {
	return validateEntity(EntityRegisterThread, t)
}

// RegisteredThread is what AddThread reports back to the caller
type RegisteredThread struct {
	ID    string `json:"id" validate:"required"`
	Title string `json:"title" validate:"required"`
	Owner string `json:"owner" validate:"required"`
}

// Validate checks every required property is present.
func (t RegisteredThread) Validate() error {
	return validateEntity(EntityRegisteredThread, t)
}

// ThreadRecord is a thread header as read from storage, joined with its author's username
type ThreadRecord struct {
	ID       string `json:"id" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Body     string `json:"body" validate:"required"`
	Date     string `json:"date" validate:"required"`
	Username string `json:"username" validate:"required"`
}

// ReturnedThread is the read view of a thread with its comments
type ReturnedThread struct {
	ID       string            `json:"id"`
	Title    string            `json:"title"`
	Body     string            `json:"body"`
	Date     string            `json:"date"`
	Username string            `json:"username"`
	Comments []ReturnedComment `json:"comments"`
}

// NewReturnedThread validates rec and builds a thread view without comments.
func NewReturnedThread(rec ThreadRecord) (ReturnedThread, error) {
	if err := validateEntity(EntityReturnedThread, rec); err != nil {
		return ReturnedThread{}, err
	}
	return ReturnedThread{
		ID:       rec.ID,
		Title:    rec.Title,
		Body:     rec.Body,
		Date:     rec.Date,
		Username: rec.Username,
		Comments: []ReturnedComment{},
	}, nil
}

// ThreadRepository defines the contract for thread persistence
type ThreadRepository interface {
	// AddThread stores a new thread owned by t.Owner.
	AddThread(ctx context.Context, t RegisterThread) (RegisteredThread, error)

	// GetThreadByID returns the thread header.
	// Returns ErrNotFound if the thread doesn't exist.
	GetThreadByID(ctx context.Context, threadID string) (ReturnedThread, error)

	// VerifyThreadByID returns ErrNotFound if the thread doesn't exist.
	VerifyThreadByID(ctx context.Context, threadID string) error
}

// ThreadUsecase is the business contract for threads
type ThreadUsecase interface {
	AddThread(ctx context.Context, t RegisterThread) (RegisteredThread, error)
	// GetThread returns the thread with its comments, replies and like counts, oldest first.
	GetThread(ctx context.Context, threadID string) (ReturnedThread, error)
}
