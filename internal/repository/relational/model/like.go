package model

// Like marks that a user likes a comment; the row existing is the like
type Like struct {
	ID        string `gorm:"primaryKey;size:50"`
	CommentID string `gorm:"column:comment_id;size:50;not null;uniqueIndex:idx_likes_comment_user"`
	UserID    string `gorm:"column:user_id;size:50;not null;uniqueIndex:idx_likes_comment_user"`

	Comment Comment `gorm:"constraint:OnDelete:CASCADE"`
	User    User    `gorm:"constraint:OnDelete:CASCADE"`
}

func (Like) TableName() string {
	return "likes"
}

// All lists the models in migration order.
func All() []any {
	return []any{
		&User{},
		&Thread{},
		&Comment{},
		&Reply{},
		&Like{},
	}
}
