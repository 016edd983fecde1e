package response

import "github.com/forumapi/forum-api/domain"

// Added is the view of a freshly created comment or reply
type Added struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Owner   string `json:"owner"`
}

func NewAddedCommentFromDomain(c domain.RegisteredComment) Added {
	return Added{ID: c.ID, Content: c.Content, Owner: c.Owner}
}

func NewAddedReplyFromDomain(r domain.RegisteredCommentReply) Added {
	return Added{ID: r.ID, Content: r.Content, Owner: r.Owner}
}

type Comment struct {
	ID        string  `json:"id"`
	Username  string  `json:"username"`
	Date      string  `json:"date"`
	Content   string  `json:"content"`
	LikeCount int64   `json:"likeCount"`
	Replies   []Reply `json:"replies"`
}

type Reply struct {
	ID       string `json:"id"`
	Content  string `json:"content"`
	Date     string `json:"date"`
	Username string `json:"username"`
}

// NewCommentFromDomain: Domain -> Response
func NewCommentFromDomain(c domain.ReturnedComment) Comment {
	replies := make([]Reply, 0, len(c.Replies))
	for _, r := range c.Replies {
		replies = append(replies, Reply{
			ID:       r.ID,
			Content:  r.Content,
			Date:     r.Date,
			Username: r.Username,
		})
	}
	return Comment{
		ID:        c.ID,
		Username:  c.Username,
		Date:      c.Date,
		Content:   c.Content,
		LikeCount: c.LikeCount,
		Replies:   replies,
	}
}
