package model

import (
	"time"

	"github.com/forumapi/forum-api/domain"
	"github.com/forumapi/forum-api/internal/repository"
)

type Reply struct {
	ID        string    `gorm:"primaryKey;size:50"`
	Content   string    `gorm:"type:text;not null"`
	Date      time.Time `gorm:"not null"`
	CommentID string    `gorm:"column:comment_id;size:50;not null;index"`
	UserID    string    `gorm:"column:user_id;size:50;not null;index"`
	IsDelete  bool      `gorm:"column:is_delete;not null;default:false"`

	Comment Comment `gorm:"constraint:OnDelete:CASCADE"`
	User    User    `gorm:"constraint:OnDelete:CASCADE"`
}

func (Reply) TableName() string {
	return "replies"
}

func NewReplyFromDomain(r domain.RegisterReply, id string, date time.Time) *Reply {
	return &Reply{
		ID:        id,
		Content:   r.Content,
		Date:      date,
		CommentID: r.CommentID,
		UserID:    r.UserID,
	}
}

func (m *Reply) ToRegistered() domain.RegisteredReply {
	return domain.RegisteredReply{
		ID:      m.ID,
		Content: m.Content,
		Owner:   m.UserID,
	}
}

// ReplyRow is a reply joined with its author's username
type ReplyRow struct {
	ID       string
	Content  string
	Date     time.Time
	IsDelete bool
	Username string
}

func (r *ReplyRow) ToRecord() domain.ReplyRecord {
	return domain.ReplyRecord{
		ID:       r.ID,
		Content:  r.Content,
		Username: r.Username,
		Date:     repository.FormatDate(r.Date),
		IsDelete: r.IsDelete,
	}
}
