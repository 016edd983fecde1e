package like

import (
	"context"

	"github.com/forumapi/forum-api/domain"
)

type service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	likeRepo    domain.LikeRepository
}

func NewService(t domain.ThreadRepository, c domain.CommentRepository, l domain.LikeRepository) *service {
	return &service{
		threadRepo:  t,
		commentRepo: c,
		likeRepo:    l,
	}
}

// LikeComment toggles: a liked comment is unliked and the other way round.
// It reports whether the user likes the comment afterwards.
func (s *service) LikeComment(ctx context.Context, threadID, commentID, userID string) (bool, error) {
	if err := s.threadRepo.VerifyThreadByID(ctx, threadID); err != nil {
		return false, err
	}
	if err := s.commentRepo.VerifyCommentByID(ctx, commentID); err != nil {
		return false, err
	}

	liked, err := s.likeRepo.VerifyLikeByCommentID(ctx, commentID, userID)
	if err != nil {
		return false, err
	}

	if liked {
		if err := s.likeRepo.RemoveLike(ctx, commentID, userID); err != nil {
			return true, err
		}
		return false, nil
	}

	if err := s.likeRepo.AddLike(ctx, commentID, userID); err != nil {
		return false, err
	}
	return true, nil
}

var _ domain.LikeUsecase = (*service)(nil)
