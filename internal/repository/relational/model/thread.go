package model

import (
	"time"

	"github.com/forumapi/forum-api/domain"
	"github.com/forumapi/forum-api/internal/repository"
)

type Thread struct {
	ID    string    `gorm:"primaryKey;size:50"`
	Title string    `gorm:"type:text;not null"`
	Body  string    `gorm:"type:text;not null"`
	Date  time.Time `gorm:"not null"`
	Owner string    `gorm:"size:50;not null;index"`

	User User `gorm:"foreignKey:Owner;constraint:OnDelete:CASCADE"`
}

func (Thread) TableName() string {
	return "threads"
}

func NewThreadFromDomain(t domain.RegisterThread, id string, date time.Time) *Thread {
	return &Thread{
		ID:    id,
		Title: t.Title,
		Body:  t.Body,
		Date:  date,
		Owner: t.Owner,
	}
}

func (m *Thread) ToRegistered() domain.RegisteredThread {
	return domain.RegisteredThread{
		ID:    m.ID,
		Title: m.Title,
		Owner: m.Owner,
	}
}

// ThreadRow is a thread header joined with the owner's username
type ThreadRow struct {
	ID       string
	Title    string
	Body     string
	Date     time.Time
	Username string
}

func (r *ThreadRow) ToRecord() domain.ThreadRecord {
	return domain.ThreadRecord{
		ID:       r.ID,
		Title:    r.Title,
		Body:     r.Body,
		Date:     repository.FormatDate(r.Date),
		Username: r.Username,
	}
}
