package domain

import "context"

// UnimplementedThreadRepository returns ErrNotImplemented from every method.
// Embed it in test doubles that only need part of the contract.
type UnimplementedThreadRepository struct{}

var _ ThreadRepository = UnimplementedThreadRepository{}

func (UnimplementedThreadRepository) AddThread(context.Context, RegisterThread) (RegisteredThread, error) {
	return RegisteredThread{}, ErrNotImplemented
}

func (UnimplementedThreadRepository) GetThreadByID(context.Context, string) (ReturnedThread, error) {
	return ReturnedThread{}, ErrNotImplemented
}

func (UnimplementedThreadRepository) VerifyThreadByID(context.Context, string) error {
	return ErrNotImplemented
}

// UnimplementedCommentRepository returns ErrNotImplemented from every method.
type UnimplementedCommentRepository struct{}

var _ CommentRepository = UnimplementedCommentRepository{}

func (UnimplementedCommentRepository) AddComment(context.Context, RegisterComment) (RegisteredComment, error) {
	return RegisteredComment{}, ErrNotImplemented
}

func (UnimplementedCommentRepository) GetCommentByID(context.Context, string) (ReturnedComment, error) {
	return ReturnedComment{}, ErrNotImplemented
}

func (UnimplementedCommentRepository) GetCommentsByThreadID(context.Context, string) ([]ReturnedComment, error) {
	return nil, ErrNotImplemented
}

func (UnimplementedCommentRepository) VerifyCommentByID(context.Context, string) error {
	return ErrNotImplemented
}

func (UnimplementedCommentRepository) VerifyCommentOwner(context.Context, string, string) error {
	return ErrNotImplemented
}

func (UnimplementedCommentRepository) DeleteComment(context.Context, string, string) error {
	return ErrNotImplemented
}

// UnimplementedReplyRepository returns ErrNotImplemented from every method.
type UnimplementedReplyRepository struct{}

var _ ReplyRepository = UnimplementedReplyRepository{}

func (UnimplementedReplyRepository) AddReply(context.Context, RegisterReply) (RegisteredReply, error) {
	return RegisteredReply{}, ErrNotImplemented
}

func (UnimplementedReplyRepository) GetReplyByID(context.Context, string) (ReturnedReply, error) {
	return ReturnedReply{}, ErrNotImplemented
}

func (UnimplementedReplyRepository) GetRepliesByCommentID(context.Context, string) ([]ReturnedReply, error) {
	return nil, ErrNotImplemented
}

func (UnimplementedReplyRepository) VerifyReplyByID(context.Context, string) error {
	return ErrNotImplemented
}

func (UnimplementedReplyRepository) VerifyReplyOwner(context.Context, string, string) error {
	return ErrNotImplemented
}

func (UnimplementedReplyRepository) DeleteReply(context.Context, string, string) error {
	return ErrNotImplemented
}

// UnimplementedLikeRepository returns ErrNotImplemented from every method.
type UnimplementedLikeRepository struct{}

var _ LikeRepository = UnimplementedLikeRepository{}

func (UnimplementedLikeRepository) AddLike(context.Context, string, string) error {
	return ErrNotImplemented
}

func (UnimplementedLikeRepository) RemoveLike(context.Context, string, string) error {
	return ErrNotImplemented
}

func (UnimplementedLikeRepository) VerifyLikeByCommentID(context.Context, string, string) (bool, error) {
	return false, ErrNotImplemented
}

func (UnimplementedLikeRepository) GetLikeCountByCommentID(context.Context, string) (int64, error) {
	return 0, ErrNotImplemented
}
