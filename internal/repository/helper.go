package repository

import (
	"time"

	"github.com/google/uuid"
)

// id prefixes, one per entity
const (
	PrefixThread  = "thread-"
	PrefixComment = "comment-"
	PrefixReply   = "reply-"
	PrefixLike    = "like-"
)

// DateLayout is how creation dates leave storage: RFC 3339, UTC, milliseconds.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

// IDGenerator returns a fresh unique suffix for an entity id.
type IDGenerator func() string

// Clock returns the current time. Adapters stamp creation dates with it.
type Clock func() time.Time

// NewUUID is the default IDGenerator.
func NewUUID() string {
	return uuid.NewString()
}

// FormatDate renders t with DateLayout.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}
