package models

import (
	"time"
)

type Comment struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID      uint      `gorm:"not null" json:"user_id"`
	PostID      uint      `gorm:"not null" json:"post_id"`
	CommentText string    `gorm:"type:text;not null" json:"comment_text"`
	LikesCount  int       `gorm:"default:0" json:"likes_count"`
	CreatedAt   time.Time `json:"created_at"`
}
