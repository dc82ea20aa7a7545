package models

import (
	"time"

	"github.com/lib/pq"
)

type Post struct {
	ID            uint           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID        uint           `gorm:"not null;index:idx_posts_user_id" json:"user_id"`
	VideoURL      string         `gorm:"type:text;not null" json:"video_url"`
	ThumbnailURL  string         `gorm:"type:text" json:"thumbnail_url"`
	Caption       string         `gorm:"type:text" json:"caption"`
	MusicName     string         `gorm:"type:varchar(200)" json:"music_name"`
	Hashtags      pq.StringArray `gorm:"type:text[]" json:"hashtags"`
	LikesCount    int            `gorm:"default:0" json:"likes_count"`
	CommentsCount int            `gorm:"default:0" json:"comments_count"`
	SharesCount   int            `gorm:"default:0" json:"shares_count"`
	ViewsCount    int            `gorm:"default:0" json:"views_count"`
	CreatedAt     time.Time      `gorm:"index:idx_posts_created_at,sort:desc" json:"created_at"`

	Comments []Comment `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
	Likes    []Like    `json:"-" gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}
