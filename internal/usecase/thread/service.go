package thread

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/forumapi/forum-api/domain"
)

// DefaultFanoutLimit bounds the per-comment fetches GetThread runs at once
const DefaultFanoutLimit = 8

type Service struct {
	threadRepo  domain.ThreadRepository
	commentRepo domain.CommentRepository
	replyRepo   domain.ReplyRepository
	likeRepo    domain.LikeRepository
	fanout      int
}

var _ domain.ThreadUsecase = (*Service)(nil)

// NewService will create a new thread service object.
// A fanout below 1 falls back to DefaultFanoutLimit.
func NewService(t domain.ThreadRepository, c domain.CommentRepository, r domain.ReplyRepository, l domain.LikeRepository, fanout int) *Service {
	if fanout < 1 {
		fanout = DefaultFanoutLimit
	}
	return &Service{
		threadRepo:  t,
		commentRepo: c,
		replyRepo:   r,
		likeRepo:    l,
		fanout:      fanout,
	}
}

func (s *Service) AddThread(ctx context.Context, p domain.RegisterThread) (domain.RegisteredThread, error) {
	if err := p.Validate(); err != nil {
		return domain.RegisteredThread{}, err
	}
	return s.threadRepo.AddThread(ctx, p)
}

func (s *Service) GetThread(ctx context.Context, threadID string) (domain.ReturnedThread, error) {
	thread, err := s.threadRepo.GetThreadByID(ctx, threadID)
	if err != nil {
		return domain.ReturnedThread{}, err
	}

	comments, err := s.commentRepo.GetCommentsByThreadID(ctx, threadID)
	if err != nil {
		return domain.ReturnedThread{}, err
	}
	if comments == nil {
		comments = []domain.ReturnedComment{}
	}

	if err := s.fillCommentDetails(ctx, comments); err != nil {
		return domain.ReturnedThread{}, err
	}

	thread.Comments = comments
	return thread, nil
}

// fillCommentDetails loads replies and like counts of every comment
// concurrently. Each goroutine only writes its own slot, so the order the
// comments query returned is kept.
func (s *Service) fillCommentDetails(ctx context.Context, comments []domain.ReturnedComment) error {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.fanout)

	for i := range comments {
		g.Go(func() error {
			commentID := comments[i].ID

			replies, err := s.replyRepo.GetRepliesByCommentID(ctx, commentID)
			if err != nil {
				return err
			}
			if replies == nil {
				replies = []domain.ReturnedReply{}
			}

			count, err := s.likeRepo.GetLikeCountByCommentID(ctx, commentID)
			if err != nil {
				return err
			}

			comments[i].Replies = replies
			comments[i].LikeCount = count
			return nil
		})
	}

	return g.Wait()
}
