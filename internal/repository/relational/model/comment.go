package model

import (
	"time"

	"github.com/forumapi/forum-api/domain"
	"github.com/forumapi/forum-api/internal/repository"
)

type Comment struct {
	ID       string    `gorm:"primaryKey;size:50"`
	Content  string    `gorm:"type:text;not null"`
	Date     time.Time `gorm:"not null"`
	ThreadID string    `gorm:"column:thread_id;size:50;not null;index"`
	UserID   string    `gorm:"column:user_id;size:50;not null;index"`
	IsDelete bool      `gorm:"column:is_delete;not null;default:false"`

	Thread Thread `gorm:"constraint:OnDelete:CASCADE"`
	User   User   `gorm:"constraint:OnDelete:CASCADE"`
}

func (Comment) TableName() string {
	return "comments"
}

func NewCommentFromDomain(c domain.RegisterComment, id string, date time.Time) *Comment {
	return &Comment{
		ID:       id,
		Content:  c.Content,
		Date:     date,
		ThreadID: c.ThreadID,
		UserID:   c.UserID,
	}
}

func (m *Comment) ToRegistered() domain.RegisteredComment {
	return domain.RegisteredComment{
		ID:      m.ID,
		Content: m.Content,
		Owner:   m.UserID,
	}
}

// CommentRow is a comment joined with its author's username
type CommentRow struct {
	ID       string
	Content  string
	Date     time.Time
	IsDelete bool
	Username string
}

func (r *CommentRow) ToRecord() domain.CommentRecord {
	return domain.CommentRecord{
		ID:       r.ID,
		Content:  r.Content,
		Username: r.Username,
		Date:     repository.FormatDate(r.Date),
		IsDelete: r.IsDelete,
	}
}
