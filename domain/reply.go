package domain

import "context"

// DeletedReplyContent replaces the content of a soft-deleted reply
const DeletedReplyContent = "**reply deleted**"

// RegisterReply is the payload the reply storage needs
type RegisterReply struct {
	Content   string `json:"content" validate:"required"`
	CommentID string `json:"commentId" validate:"required"`
	UserID    string `json:"userId" validate:"required"`
}

// Validate checks every required property is present.
func (r RegisterReply) Validate() error {
	return validateEntity(EntityRegisterReply, r)
}

// RegisteredReply is what AddReply reports back to the caller
type RegisteredReply struct {
	ID      string `json:"id" validate:"required"`
	Content string `json:"content" validate:"required"`
	Owner   string `json:"owner" validate:"required"`
}

// Validate checks every required property is present.
func (r RegisteredReply) Validate() error {
	return validateEntity(EntityRegisteredReply, r)
}

// RegisterCommentReply is a reply addressed by thread and comment, as a
// client posts it.
type RegisterCommentReply struct {
	Content   string `json:"content" validate:"required"`
	ThreadID  string `json:"threadId" validate:"required"`
	CommentID string `json:"commentId" validate:"required"`
	UserID    string `json:"userId" validate:"required"`
}

// Validate checks every required property is present.
func (r RegisterCommentReply) Validate() error {
	return validateEntity(EntityRegisterCommentReply, r)
}

// Reply drops the thread id once the thread has been verified.
func (r RegisterCommentReply) Reply() RegisterReply {
	return RegisterReply{
		Content:   r.Content,
		CommentID: r.CommentID,
		UserID:    r.UserID,
	}
}

// RegisteredCommentReply is the view returned for a reply added through a thread.
type RegisteredCommentReply = RegisteredReply

// ReplyRecord is a reply row as read from storage, before projection
type ReplyRecord struct {
	ID       string `json:"id" validate:"required"`
	Content  string `json:"content" validate:"required"`
	Username string `json:"username" validate:"required"`
	Date     string `json:"date" validate:"required"`
	IsDelete bool   `json:"isDelete"`
}

// ReturnedReply is the read view of a reply
type ReturnedReply struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Username string `json:"username"`
}

// NewReturnedReply validates rec and projects it into a view.
func NewReturnedReply(rec ReplyRecord) (ReturnedReply, error) {
	if err := validateEntity(EntityReturnedReply, rec); err != nil {
		return ReturnedReply{}, err
	}

	content := rec.Content
	if rec.IsDelete {
		content = DeletedReplyContent
	}

	return ReturnedReply{
		ID:       rec.ID,
		Content:  content,
		Date:     rec.Date,
		Username: rec.Username,
	}, nil
}

// ReplyRepository defines the contract for reply persistence
type ReplyRepository interface {
	AddReply(ctx context.Context, r RegisterReply) (RegisteredReply, error)

	// GetReplyByID returns ErrNotFound if the reply doesn't exist.
	GetReplyByID(ctx context.Context, replyID string) (ReturnedReply, error)

	// GetRepliesByCommentID returns the comment's replies, oldest first.
	GetRepliesByCommentID(ctx context.Context, commentID string) ([]ReturnedReply, error)

	// VerifyReplyByID returns ErrNotFound if the reply doesn't exist.
	VerifyReplyByID(ctx context.Context, replyID string) error

	// VerifyReplyOwner returns ErrNotFound if the reply doesn't exist
	// and ErrForbidden if userID is not its author.
	VerifyReplyOwner(ctx context.Context, replyID, userID string) error

	// DeleteReply soft-deletes the reply after checking userID owns it.
	DeleteReply(ctx context.Context, replyID, userID string) error
}

// ReplyUsecase is the business contract for replies
type ReplyUsecase interface {
	AddReply(ctx context.Context, r RegisterCommentReply) (RegisteredCommentReply, error)
	DeleteReply(ctx context.Context, threadID, commentID, replyID, userID string) error
}
