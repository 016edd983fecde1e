package domain

import "context"

// DeletedCommentContent replaces the content of a soft-deleted comment
const DeletedCommentContent = "**comment deleted**"

// RegisterComment is the payload to create a comment on a thread
type RegisterComment struct {
	Content  string `json:"content" validate:"required"`
	ThreadID string `json:"threadId" validate:"required"`
	UserID   string `json:"userId" validate:"required"`
}

// Validate checks every required property is present.
func (c RegisterComment) Validate() error {
	return validateEntity(EntityRegisterComment, c)
}

// RegisteredComment is what AddComment reports back to the caller
type RegisteredComment struct {
	ID      string `json:"id" validate:"required"`
	Content string `json:"content" validate:"required"`
	Owner   string `json:"owner" validate:"required"`
}

// Validate checks every required property is present.
func (c RegisteredComment) Validate() error {
	return validateEntity(EntityRegisteredComment, c)
}

// CommentRecord is a comment row as read from storage, before projection
type CommentRecord struct {
	ID       string `json:"id" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Username string `json:"username" validate:"required"`
	Date     string `json:"date" validate:"required"`
	IsDelete bool   `json:"isDelete"`
}

// ReturnedComment is the read view of a comment.
// Soft-deleted comments never expose their original content.
type ReturnedComment struct {
	ID        string          `json:"id"`
	Username  string          `json:"username"`
	Date      string          `json:"date"`
	Content   string          `json:"content"`
	LikeCount int64           `json:"likeCount"`
	Replies   []ReturnedReply `json:"replies"`
}

// NewReturnedComment validates rec and projects it into a view.
func NewReturnedComment(rec CommentRecord) (ReturnedComment, error) {
	if err := validateEntity(EntityReturnedComment, rec); err != nil {
		return ReturnedComment{}, err
	}

	content := rec.Content
	if rec.IsDelete {
		content = DeletedCommentContent
	}

	return ReturnedComment{
		ID:       rec.ID,
		Username: rec.Username,
		Date:     rec.Date,
		Content:  content,
		Replies:  []ReturnedReply{},
	}, nil
}

// CommentRepository defines the contract for comment persistence
type CommentRepository interface {
	AddComment(ctx context.Context, c RegisterComment) (RegisteredComment, error)

	// GetCommentByID returns ErrNotFound if the comment doesn't exist.
	GetCommentByID(ctx context.Context, commentID string) (ReturnedComment, error)

	// GetCommentsByThreadID returns the thread's comments, oldest first.
	GetCommentsByThreadID(ctx context.Context, threadID string) ([]ReturnedComment, error)

	// VerifyCommentByID returns ErrNotFound if the comment doesn't exist.
	VerifyCommentByID(ctx context.Context, commentID string) error

	// VerifyCommentOwner returns ErrNotFound if the comment doesn't exist
	// and ErrForbidden if userID is not its author.
	VerifyCommentOwner(ctx context.Context, commentID, userID string) error

	// DeleteComment soft-deletes the comment after checking userID owns it.
	DeleteComment(ctx context.Context, commentID, userID string) error
}

// CommentUsecase is the business contract for comments
type CommentUsecase interface {
	AddComment(ctx context.Context, c RegisterComment) (RegisteredComment, error)
	DeleteComment(ctx context.Context, threadID, commentID, userID string) error
}
