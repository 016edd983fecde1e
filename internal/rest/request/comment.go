package request

import "github.com/forumapi/forum-api/domain"

// Comment is the body of both a new comment and a new reply
type Comment struct {
	Content string `json:"content"`
}

// ToDomain: Request -> Domain
func (r *Comment) ToDomain(threadID, userID string) domain.RegisterComment {
	return domain.RegisterComment{
		Content:  r.Content,
		ThreadID: threadID,
		UserID:   userID,
	}
}

func (r *Comment) ToReply(threadID, commentID, userID string) domain.RegisterCommentReply {
	return domain.RegisterCommentReply{
		Content:   r.Content,
		ThreadID:  threadID,
		CommentID: commentID,
		UserID:    userID,
	}
}
