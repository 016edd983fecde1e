package relational

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/forumapi/forum-api/domain"
	"github.com/forumapi/forum-api/internal/repository"
	"github.com/forumapi/forum-api/internal/repository/relational/model"
)

const replyColumns = "r.id, r.content, r.date, r.is_delete, COALESCE(u.username, '') AS username"

type replyRepository struct {
	DB    *gorm.DB
	newID repository.IDGenerator
	now   repository.Clock
}

func NewReplyRepository(db *gorm.DB, newID repository.IDGenerator, now repository.Clock) *replyRepository {
	return &replyRepository{
		DB:    db,
		newID: newID,
		now:   now,
	}
}

func (r *replyRepository) AddReply(ctx context.Context, p domain.RegisterReply) (domain.RegisteredReply, error) {
	reply := model.NewReplyFromDomain(p, repository.PrefixReply+r.newID(), r.now())
	if err := r.DB.WithContext(ctx).Omit(clause.Associations).Create(reply).Error; err != nil {
		return domain.RegisteredReply{}, err
	}

	added := reply.ToRegistered()
	if err := added.Validate(); err != nil {
		return domain.RegisteredReply{}, err
	}
	return added, nil
}

func (r *replyRepository) joined(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).
		Table("replies AS r").
		Select(replyColumns).
		Joins("LEFT JOIN users AS u ON u.id = r.user_id")
}

func (r *replyRepository) GetReplyByID(ctx context.Context, replyID string) (domain.ReturnedReply, error) {
	var row model.ReplyRow
	err := r.joined(ctx).Where("r.id = ?", replyID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ReturnedReply{}, fmt.Errorf("reply %s: %w", replyID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.ReturnedReply{}, err
	}
	return domain.NewReturnedReply(row.ToRecord())
}

func (r *replyRepository) GetRepliesByCommentID(ctx context.Context, commentID string) ([]domain.ReturnedReply, error) {
	var rows []model.ReplyRow
	err := r.joined(ctx).
		Where("r.comment_id = ?", commentID).
		Order("r.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.ReturnedReply, 0, len(rows))
	for i := range rows {
		reply, err := domain.NewReturnedReply(rows[i].ToRecord())
		if err != nil {
			return nil, err
		}
		res = append(res, reply)
	}
	return res, nil
}

func (r *replyRepository) VerifyReplyByID(ctx context.Context, replyID string) error {
	return exists(r.DB.WithContext(ctx), &model.Reply{}, "reply", replyID)
}

func (r *replyRepository) VerifyReplyOwner(ctx context.Context, replyID, userID string) error {
	return checkOwner(r.DB.WithContext(ctx), &model.Reply{}, "reply", replyID, userID, false)
}

func (r *replyRepository) DeleteReply(ctx context.Context, replyID, userID string) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkOwner(tx, &model.Reply{}, "reply", replyID, userID, true); err != nil {
			return err
		}
		return tx.Model(&model.Reply{}).
			Where("id = ?", replyID).
			Update("is_delete", true).Error
	})
}

var _ domain.ReplyRepository = (*replyRepository)(nil)
