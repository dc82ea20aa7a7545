package controllers

import (
	"log"
	"net/http"

	"github.com/clipstream/api-go/counters"
	"github.com/clipstream/api-go/models"
	"github.com/clipstream/api-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

type UpdateProfileRequest struct {
	DisplayName     *string `json:"displayName"`
	Bio             *string `json:"bio"`
	ProfileImageURL *string `json:"profileImageUrl"`
}

func (uc *UserController) GetUser(c *gin.Context) {
	username := c.Param("username")

	var user models.User
	if err := uc.DB.Where("username = ?", username).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Get user error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                user.ID,
		"username":          user.Username,
		"display_name":      user.DisplayName,
		"bio":               user.Bio,
		"profile_image_url": user.ProfileImageURL,
		"followers_count":   user.FollowersCount,
		"following_count":   user.FollowingCount,
		"likes_count":       user.LikesCount,
		"created_at":        user.CreatedAt,
	})
}

func (uc *UserController) GetUserPosts(c *gin.Context) {
	username := c.Param("username")
	limit, offset := utils.Pagination(c)

	var posts []PostRow
	err := uc.DB.Model(&models.Post{}).
		Select("posts.*, users.username, users.display_name, users.profile_image_url").
		Joins("JOIN users ON posts.user_id = users.id").
		Where("users.username = ?", username).
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		log.Printf("Get user posts error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get posts"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

func (uc *UserController) UpdateProfile(c *gin.Context) {
	user := utils.GetUser(c)
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if req.DisplayName != nil {
		updates["display_name"] = *req.DisplayName
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.ProfileImageURL != nil {
		updates["profile_image_url"] = *req.ProfileImageURL
	}

	if len(updates) > 0 {
		if err := uc.DB.Model(&models.User{}).Where("id = ?", user.UserID).
			Updates(updates).Error; err != nil {
			log.Printf("Update profile error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
	}

	var updated models.User
	if err := uc.DB.First(&updated, user.UserID).Error; err != nil {
		log.Printf("Update profile error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":                updated.ID,
		"username":          updated.Username,
		"display_name":      updated.DisplayName,
		"bio":               updated.Bio,
		"profile_image_url": updated.ProfileImageURL,
	})
}

func (uc *UserController) FollowUser(c *gin.Context) {
	username := c.Param("username")
	follower := utils.GetUser(c)

	var target models.User
	if err := uc.DB.Where("username = ?", username).First(&target).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if follower.UserID == target.ID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot follow yourself"})
		return
	}

	if _, err := counters.ApplyFollow(uc.DB, follower.UserID, target.ID); err != nil {
		log.Printf("Follow error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to follow user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Followed successfully"})
}

func (uc *UserController) UnfollowUser(c *gin.Context) {
	username := c.Param("username")
	follower := utils.GetUser(c)

	var target models.User
	if err := uc.DB.Where("username = ?", username).First(&target).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	if err := counters.RemoveFollow(uc.DB, follower.UserID, target.ID); err != nil {
		log.Printf("Unfollow error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unfollow user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unfollowed successfully"})
}
