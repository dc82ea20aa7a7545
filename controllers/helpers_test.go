package controllers

import (
	"io"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/clipstream/api-go/middleware"
	"github.com/clipstream/api-go/models"
	"github.com/clipstream/api-go/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Setenv("JWT_SECRET", "test-secret-key")
	os.Exit(m.Run())
}

// setupTestDB creates an in-memory SQLite database with foreign keys on so
// cascade deletes behave like the Postgres schema.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:?_foreign_keys=on"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Post{}, &models.Follow{}, &models.Like{}, &models.Comment{}))

	return db
}

// setupRouter wires the API routes the same way routes.SetupRoutes does.
func setupRouter(db *gorm.DB, store ObjectStore) *gin.Engine {
	r := gin.New()

	authController := NewAuthController(db)
	userController := NewUserController(db)
	postController := NewPostController(db)

	public := r.Group("/api")
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())

	public.POST("/auth/register", authController.Register)
	public.POST("/auth/login", authController.Login)

	public.GET("/users/:username", userController.GetUser)
	public.GET("/users/:username/posts", userController.GetUserPosts)
	protected.PUT("/users/profile", userController.UpdateProfile)
	protected.POST("/users/:username/follow", userController.FollowUser)
	protected.DELETE("/users/:username/follow", userController.UnfollowUser)

	public.GET("/posts/feed", postController.GetFeed)
	public.GET("/posts/:postId", postController.GetPost)
	public.GET("/posts/:postId/comments", postController.GetComments)
	protected.POST("/posts", postController.CreatePost)
	protected.POST("/posts/:postId/like", postController.LikePost)
	protected.DELETE("/posts/:postId/like", postController.UnlikePost)
	protected.POST("/posts/:postId/comments", postController.CreateComment)
	protected.DELETE("/posts/:postId", postController.DeletePost)

	if store != nil {
		videoController := NewVideoController(store)
		protected.POST("/videos/upload", videoController.UploadVideo)
		protected.POST("/videos/upload-thumbnail", videoController.UploadThumbnail)
		public.GET("/videos/*fileName", videoController.GetVideoURL)
	}

	return r
}

func createTestUser(t *testing.T, db *gorm.DB, username string) (models.User, string) {
	t.Helper()

	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "x",
	}
	require.NoError(t, db.Create(&user).Error)

	token, err := utils.GenerateToken(user.ID, user.Username)
	require.NoError(t, err)

	return user, token
}

func performRequest(r *gin.Engine, method, path string, body io.Reader, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
