package request

import "github.com/forumapi/forum-api/domain"

type Thread struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// ToDomain: Request -> Domain
func (r *Thread) ToDomain(owner string) domain.RegisterThread {
	return domain.RegisterThread{
		Title: r.Title,
		Body:  r.Body,
		Owner: owner,
	}
}
