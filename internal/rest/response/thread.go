package response

import "github.com/forumapi/forum-api/domain"

type AddedThread struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Owner string `json:"owner"`
}

func NewAddedThreadFromDomain(t domain.RegisteredThread) AddedThread {
	return AddedThread{
		ID:    t.ID,
		Title: t.Title,
		Owner: t.Owner,
	}
}

type Thread struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	Date     string    `json:"date"`
	Username string    `json:"username"`
	Comments []Comment `json:"comments"`
}

// NewThreadFromDomain: Domain -> Response
func NewThreadFromDomain(t domain.ReturnedThread) Thread {
	comments := make([]Comment, 0, len(t.Comments))
	for i := range t.Comments {
		comments = append(comments, NewCommentFromDomain(t.Comments[i]))
	}
	return Thread{
		ID:       t.ID,
		Title:    t.Title,
		Body:     t.Body,
		Date:     t.Date,
		Username: t.Username,
		Comments: comments,
	}
}
