package reply

import (
	"context"

	"github.com/forumapi/forum-api/domain"
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
}

func NewService(t domain.ThreadRepository, c domain.CommentRepository, r domain.ReplyRepository) *service {
	return &service{
		threadRepo:  t,
		commentRepo: c,
		replyRepo:   r,
	}
}

func (s *service) AddReply(ctx context.Context, p domain.RegisterCommentReply) (domain.RegisteredCommentReply, error) {
	if err := p.Validate(); err != nil {
		return domain.RegisteredCommentReply{}, err
	}
	if err := s.threadRepo.VerifyThreadByID(ctx, p.ThreadID); err != nil {
		return domain.RegisteredCommentReply{}, err
	}
	if err := s.commentRepo.VerifyCommentByID(ctx, p.CommentID); err != nil {
		return domain.RegisteredCommentReply{}, err
	}
	return s.replyRepo.AddReply(ctx, p.Reply())
}

func (s *service) DeleteReply(ctx context.Context, threadID, commentID, replyID, userID string) error {
	if err := s.threadRepo.VerifyThreadByID(ctx, threadID); err != nil {
		return err
	}
	if err := s.commentRepo.VerifyCommentByID(ctx, commentID); err != nil {
		return err
	}
	return s.replyRepo.DeleteReply(ctx, replyID, userID)
}

var _ domain.ReplyUsecase = (*service)(nil)
