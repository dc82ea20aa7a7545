package models

import (
	"time"
)

// Like holds at most one row per (user, post) pair.
type Like struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_likes_pair;index:idx_likes_user" json:"user_id"`
	PostID    uint      `gorm:"not null;uniqueIndex:idx_likes_pair;index:idx_likes_post" json:"post_id"`
	CreatedAt time.Time `json:"created_at"`
}
