package controllers

import (
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/clipstream/api-go/counters"
	"github.com/clipstream/api-go/models"
	"github.com/clipstream/api-go/utils"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type PostController struct {
	DB *gorm.DB
}

func NewPostController(db *gorm.DB) *PostController {
	return &PostController{DB: db}
}

type CreatePostRequest struct {
	VideoURL     string `json:"videoUrl"`
	ThumbnailURL string `json:"thumbnailUrl"`
	Caption      string `json:"caption"`
	MusicName    string `json:"musicName"`
}

type CreateCommentRequest struct {
	CommentText string `json:"commentText"`
}

func (pc *PostController) GetFeed(c *gin.Context) {
	limit, offset := utils.Pagination(c)

	var posts []PostRow
	err := pc.DB.Model(&models.Post{}).
		Select("posts.*, users.username, users.display_name, users.profile_image_url").
		Joins("JOIN users ON posts.user_id = users.id").
		Order("posts.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&posts).Error
	if err != nil {
		log.Printf("Get feed error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get feed"})
		return
	}

	c.JSON(http.StatusOK, posts)
}

// GetPost returns a single post and bumps its view counter as a side
// effect. The response carries the pre-bump count, matching a read taken
// just before the view registered.
func (pc *PostController) GetPost(c *gin.Context) {
	postID := c.Param("postId")

	var post PostRow
	err := pc.DB.Model(&models.Post{}).
		Select("posts.*, users.username, users.display_name, users.profile_image_url").
		Joins("JOIN users ON posts.user_id = users.id").
		Where("posts.id = ?", postID).
		First(&post).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		log.Printf("Get post error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get post"})
		return
	}

	if err := counters.ApplyView(pc.DB, post.ID); err != nil {
		log.Printf("Get post error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get post"})
		return
	}

	c.JSON(http.StatusOK, post)
}

func (pc *PostController) CreatePost(c *gin.Context) {
	user := utils.GetUser(c)
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.VideoURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Video URL is required"})
		return
	}

	post := models.Post{
		UserID:       user.UserID,
		VideoURL:     req.VideoURL,
		ThumbnailURL: req.ThumbnailURL,
		Caption:      req.Caption,
		MusicName:    req.MusicName,
		Hashtags:     utils.ExtractHashtags(req.Caption),
	}

	if err := pc.DB.Create(&post).Error; err != nil {
		log.Printf("Create post error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create post"})
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (pc *PostController) LikePost(c *gin.Context) {
	postID, err := parseID(c.Param("postId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	user := utils.GetUser(c)

	if _, err := counters.ApplyLike(pc.DB, user.UserID, postID); err != nil {
		log.Printf("Like post error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to like post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Liked successfully"})
}

func (pc *PostController) UnlikePost(c *gin.Context) {
	postID, err := parseID(c.Param("postId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	user := utils.GetUser(c)

	if err := counters.RemoveLike(pc.DB, user.UserID, postID); err != nil {
		log.Printf("Unlike post error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to unlike post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Unliked successfully"})
}

func (pc *PostController) GetComments(c *gin.Context) {
	postID := c.Param("postId")
	limit, offset := utils.Pagination(c)

	var comments []CommentRow
	err := pc.DB.Model(&models.Comment{}).
		Select("comments.*, users.username, users.display_name, users.profile_image_url").
		Joins("JOIN users ON comments.user_id = users.id").
		Where("comments.post_id = ?", postID).
		Order("comments.created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&comments).Error
	if err != nil {
		log.Printf("Get comments error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

func (pc *PostController) CreateComment(c *gin.Context) {
	postID, err := parseID(c.Param("postId"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
		return
	}
	user := utils.GetUser(c)

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.CommentText) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Comment text is required"})
		return
	}

	comment := models.Comment{
		UserID:      user.UserID,
		PostID:      postID,
		CommentText: req.CommentText,
	}

	if err := counters.ApplyComment(pc.DB, &comment); err != nil {
		log.Printf("Add comment error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add comment"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// DeletePost removes the post; dependent likes and comments go with it via
// the store's cascade constraints.
func (pc *PostController) DeletePost(c *gin.Context) {
	postID := c.Param("postId")
	user := utils.GetUser(c)

	var post models.Post
	if err := pc.DB.First(&post, "id = ?", postID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Post not found"})
			return
		}
		log.Printf("Delete post error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	if post.UserID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Unauthorized"})
		return
	}

	if err := pc.DB.Delete(&post).Error; err != nil {
		log.Printf("Delete post error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted successfully"})
}

func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	return uint(id), err
}
