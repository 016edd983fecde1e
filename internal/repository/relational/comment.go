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

const commentColumns = "c.id, c.content, c.date, c.is_delete, COALESCE(u.username, '') AS username"

type commentRepository struct {
	DB    *gorm.DB
	newID repository.IDGenerator
	now   repository.Clock
}

func NewCommentRepository(db *gorm.DB, newID repository.IDGenerator, now repository.Clock) *commentRepository {
	return &commentRepository{
		DB:    db,
		newID: newID,
		now:   now,
	}
}

func (c *commentRepository) AddComment(ctx context.Context, p domain.RegisterComment) (domain.RegisteredComment, error) {
	comment := model.NewCommentFromDomain(p, repository.PrefixComment+c.newID(), c.now())
	if err := c.DB.WithContext(ctx).Omit(clause.Associations).Create(comment).Error; err != nil {
		return domain.RegisteredComment{}, err
	}

	added := comment.ToRegistered()
	if err := added.Validate(); err != nil {
		return domain.RegisteredComment{}, err
	}
	return added, nil
}

func (c *commentRepository) joined(ctx context.Context) *gorm.DB {
	return c.DB.WithContext(ctx).
		Table("comments AS c").
		Select(commentColumns).
		Joins("LEFT JOIN users AS u ON u.id = c.user_id")
}

func (c *commentRepository) GetCommentByID(ctx context.Context, commentID string) (domain.ReturnedComment, error) {
	var row model.CommentRow
	err := c.joined(ctx).Where("c.id = ?", commentID).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ReturnedComment{}, fmt.Errorf("comment %s: %w", commentID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.ReturnedComment{}, err
	}
	return domain.NewReturnedComment(row.ToRecord())
}

func (c *commentRepository) GetCommentsByThreadID(ctx context.Context, threadID string) ([]domain.ReturnedComment, error) {
	var rows []model.CommentRow
	err := c.joined(ctx).
		Where("c.thread_id = ?", threadID).
		Order("c.date ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.ReturnedComment, 0, len(rows))
	for i := range rows {
		comment, err := domain.NewReturnedComment(rows[i].ToRecord())
		if err != nil {
			return nil, err
		}
		res = append(res, comment)
	}
	return res, nil
}

func (c *commentRepository) VerifyCommentByID(ctx context.Context, commentID string) error {
	return exists(c.DB.WithContext(ctx), &model.Comment{}, "comment", commentID)
}

func (c *commentRepository) VerifyCommentOwner(ctx context.Context, commentID, userID string) error {
	return checkOwner(c.DB.WithContext(ctx), &model.Comment{}, "comment", commentID, userID, false)
}

// DeleteComment flips is_delete; the row itself is kept so replies and
// likes stay attached.
func (c *commentRepository) DeleteComment(ctx context.Context, commentID, userID string) error {
	return c.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := checkOwner(tx, &model.Comment{}, "comment", commentID, userID, true); err != nil {
			return err
		}
		return tx.Model(&model.Comment{}).
			Where("id = ?", commentID).
			Update("is_delete", true).Error
	})
}

var _ domain.CommentRepository = (*commentRepository)(nil)
