package model

import "time"

// Like records that a user liked a post. The composite unique index
// guarantees at most one like per (user, post) pair.
type Like struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_likes_user_post"`
	PostID    uint      `json:"post_id" gorm:"not null;uniqueIndex:idx_likes_user_post"`
	CreatedAt time.Time `json:"created_at"`

	User *User `json:"-" gorm:"constraint:OnDelete:CASCADE"`
}
