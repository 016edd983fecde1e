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

type threadRepository struct {
	DB    *gorm.DB
	newID repository.IDGenerator
	now   repository.Clock
}

func NewThreadRepository(db *gorm.DB, newID repository.IDGenerator, now repository.Clock) *threadRepository {
	return &threadRepository{
		DB:    db,
		newID: newID,
		now:   now,
	}
}

func (t *threadRepository) AddThread(ctx context.Context, p domain.RegisterThread) (domain.RegisteredThread, error) {
	thread := model.NewThreadFromDomain(p, repository.PrefixThread+t.newID(), t.now())
	if err := t.DB.WithContext(ctx).Omit(clause.Associations).Create(thread).Error; err != nil {
		return domain.RegisteredThread{}, err
	}

	added := thread.ToRegistered()
	if err := added.Validate(); err != nil {
		return domain.RegisteredThread{}, err
	}
	return added, nil
}

func (t *threadRepository) GetThreadByID(ctx context.Context, threadID string) (domain.ReturnedThread, error) {
	if err := t.VerifyThreadByID(ctx, threadID); err != nil {
		return domain.ReturnedThread{}, err
	}

	var row model.ThreadRow
	err := t.DB.WithContext(ctx).
		Table("threads AS t").
		Select("t.id, t.title, t.body, t.date, COALESCE(u.username, '') AS username").
		Joins("LEFT JOIN users AS u ON u.id = t.owner").
		Where("t.id = ?", threadID).
		Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ReturnedThread{}, fmt.Errorf("thread %s: %w", threadID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.ReturnedThread{}, err
	}

	return domain.NewReturnedThread(row.ToRecord())
}

func (t *threadRepository) VerifyThreadByID(ctx context.Context, threadID string) error {
	return exists(t.DB.WithContext(ctx), &model.Thread{}, "thread", threadID)
}

var _ domain.ThreadRepository = (*threadRepository)(nil)
