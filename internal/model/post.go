package model

import "time"

// MaxPostContentLength is the upper bound for post content, in characters.
const MaxPostContentLength = 2000

// Post represents a feed entry owned by exactly one user. LikesCount and
// CommentsCount are denormalized; the like toggle keeps LikesCount in sync
// with the likes table inside a single transaction.
type Post struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        uint      `json:"user_id" gorm:"not null;index"`
	Content       string    `json:"content" gorm:"type:text;not null"`
	LikesCount    int       `json:"likes_count" gorm:"not null;default:0"`
	CommentsCount int       `json:"comments_count" gorm:"not null;default:0"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	// Relations
	User     *User     `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Likes    []Like    `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

// PostWithAuthor is a feed row: a post joined with its author's display
// fields. This is the shape every listing endpoint serves.
type PostWithAuthor struct {
	ID            uint      `json:"id"`
	Content       string    `json:"content"`
	LikesCount    int       `json:"likes_count"`
	CommentsCount int       `json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
	UserID        uint      `json:"user_id"`
	UserName      string    `json:"user_name"`
	UserAvatar    string    `json:"user_avatar"`
}
