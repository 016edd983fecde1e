package comment

import (
	"context"

	"github.com/forumapi/forum-api/domain"
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
}

func (s *service) AddComment(ctx context.Context, p domain.RegisterComment) (domain.RegisteredComment, error) {
	if err := p.Validate(); err != nil {
		return domain.RegisteredComment{}, err
	}
	if err := s.threadRepo.VerifyThreadByID(ctx, p.ThreadID); err != nil {
		return domain.RegisteredComment{}, err
	}
	return s.commentRepo.AddComment(ctx, p)
}

// DeleteComment leaves ownership and existence of the comment to the
// repository, which checks both in the same transaction as the delete.
func (s *service) DeleteComment(ctx context.Context, threadID, commentID, userID string) error {
	if err := s.threadRepo.VerifyThreadByID(ctx, threadID); err != nil {
		return err
	}
	return s.commentRepo.DeleteComment(ctx, commentID, userID)
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(threadRepo domain.ThreadRepository, commentRepo domain.CommentRepository) *service {
	return &service{
		threadRepo:  threadRepo,
		commentRepo: commentRepo,
	}
}
