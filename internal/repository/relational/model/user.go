package model

// User is the account table owned by the authentication service.
// It is migrated here only so the forum tables can reference it.
type User struct {
	ID       string `gorm:"primaryKey;size:50"`
	Username string `gorm:"size:50;not null;uniqueIndex"`
	Fullname string `gorm:"type:text;not null"`
}

func (User) TableName() string {
	return "users"
}
