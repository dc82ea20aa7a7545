package models

import (
	"time"
)

type User struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Username        string    `gorm:"type:varchar(50);unique;not null" json:"username"`
	Email           string    `gorm:"type:varchar(100);unique;not null" json:"email"`
	PasswordHash    string    `gorm:"type:varchar(255);not null" json:"-"` // Never expose the hash in JSON
	DisplayName     string    `gorm:"type:varchar(100)" json:"display_name"`
	Bio             string    `gorm:"type:text" json:"bio"`
	ProfileImageURL string    `gorm:"type:text" json:"profile_image_url"`
	FollowersCount  int       `gorm:"default:0" json:"followers_count"`
	FollowingCount  int       `gorm:"default:0" json:"following_count"`
	LikesCount      int       `gorm:"default:0" json:"likes_count"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	Posts    []Post    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Comments []Comment `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	Likes    []Like    `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
