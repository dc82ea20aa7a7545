package routes

import (
	"net/http"
	"time"

	"github.com/clipstream/api-go/controllers"
	"github.com/clipstream/api-go/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, store controllers.ObjectStore) {
	// Initialize controllers
	authController := controllers.NewAuthController(db)
	userController := controllers.NewUserController(db)
	postController := controllers.NewPostController(db)
	videoController := controllers.NewVideoController(store)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	public := r.Group("/api")
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())

	auth := public.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	SetupUserRoutes(public, protected, userController)
	SetupPostRoutes(public, protected, postController)
	SetupVideoRoutes(public, protected, videoController)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Route not found"})
	})
}
