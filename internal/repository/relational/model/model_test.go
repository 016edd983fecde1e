package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/forumapi/forum-api/domain"
)

func TestCommentRowToRecord(t *testing.T) {
	row := CommentRow{
		ID:       "comment-123",
		Content:  "a comment",
		Date:     time.Date(2021, 8, 8, 7, 22, 33, 555_000_000, time.UTC),
		IsDelete: true,
		Username: "dicoding",
	}

	assert.Equal(t, domain.CommentRecord{
		ID:       "comment-123",
		Content:  "a comment",
		Username: "dicoding",
		Date:     "2021-08-08T07:22:33.555Z",
		IsDelete: true,
	}, row.ToRecord())
}

func TestNewThreadFromDomain(t *testing.T) {
	now := time.Now()
	m := NewThreadFromDomain(domain.RegisterThread{Title: "t", Body: "b", Owner: "user-1"}, "thread-1", now)

	assert.Equal(t, "user-1", m.Owner)
	assert.Equal(t, now, m.Date)
	assert.Equal(t, domain.RegisteredThread{ID: "thread-1", Title: "t", Owner: "user-1"}, m.ToRegistered())
}

func TestReplyToRegistered(t *testing.T) {
	m := NewReplyFromDomain(domain.RegisterReply{Content: "r", CommentID: "comment-1", UserID: "user-2"}, "reply-1", time.Now())

	assert.Equal(t, domain.RegisteredReply{ID: "reply-1", Content: "r", Owner: "user-2"}, m.ToRegistered())
}

func TestAllOrder(t *testing.T) {
	all := All()

	assert.Len(t, all, 5)
	assert.IsType(t, &User{}, all[0])
	assert.IsType(t, &Like{}, all[4])
}
