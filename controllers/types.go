package controllers

import (
	"time"

	"github.com/lib/pq"
)

// PostRow is a post joined with its author's public columns, the shape the
// feed, user-posts and single-post endpoints return.
type PostRow struct {
	ID              uint           `json:"id"`
	UserID          uint           `json:"user_id"`
	VideoURL        string         `json:"video_url"`
	ThumbnailURL    string         `json:"thumbnail_url"`
	Caption         string         `json:"caption"`
	MusicName       string         `json:"music_name"`
	Hashtags        pq.StringArray `json:"hashtags" gorm:"type:text[]"`
	LikesCount      int            `json:"likes_count"`
	CommentsCount   int            `json:"comments_count"`
	SharesCount     int            `json:"shares_count"`
	ViewsCount      int            `json:"views_count"`
	CreatedAt       time.Time      `json:"created_at"`
	Username        string         `json:"username"`
	DisplayName     string         `json:"display_name"`
	ProfileImageURL string         `json:"profile_image_url"`
}

// CommentRow is a comment joined with its author's public columns.
type CommentRow struct {
	ID              uint      `json:"id"`
	UserID          uint      `json:"user_id"`
	PostID          uint      `json:"post_id"`
	CommentText     string    `json:"comment_text"`
	LikesCount      int       `json:"likes_count"`
	CreatedAt       time.Time `json:"created_at"`
	Username        string    `json:"username"`
	DisplayName     string    `json:"display_name"`
	ProfileImageURL string    `json:"profile_image_url"`
}
