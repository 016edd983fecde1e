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

type likeRepository struct {
	DB    *gorm.DB
	newID repository.IDGenerator
}

func NewLikeRepository(db *gorm.DB, newID repository.IDGenerator) *likeRepository {
	return &likeRepository{
		DB:    db,
		newID: newID,
	}
}

func (l *likeRepository) AddLike(ctx context.Context, commentID, userID string) error {
	like := &model.Like{
		ID:        repository.PrefixLike + l.newID(),
		CommentID: commentID,
		UserID:    userID,
	}

	result := l.DB.WithContext(ctx).Omit(clause.Associations).Create(like)
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("like on comment %s: %w", commentID, domain.ErrInvariant)
	}
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("like on comment %s: %w", commentID, domain.ErrInvariant)
	}
	return nil
}

func (l *likeRepository) RemoveLike(ctx context.Context, commentID, userID string) error {
	return l.DB.WithContext(ctx).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Delete(&model.Like{}).Error
}

func (l *likeRepository) VerifyLikeByCommentID(ctx context.Context, commentID, userID string) (bool, error) {
	var n int64
	err := l.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("comment_id = ? AND user_id = ?", commentID, userID).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (l *likeRepository) GetLikeCountByCommentID(ctx context.Context, commentID string) (int64, error) {
	var n int64
	err := l.DB.WithContext(ctx).
		Model(&model.Like{}).
		Where("comment_id = ?", commentID).
		Count(&n).Error
	if err != nil {
		return 0, err
	}
	return n, nil
}

var _ domain.LikeRepository = (*likeRepository)(nil)
