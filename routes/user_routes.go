package routes

import (
	"github.com/clipstream/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupUserRoutes(public, protected *gin.RouterGroup, userController *controllers.UserController) {
	public.GET("/users/:username", userController.GetUser)
	public.GET("/users/:username/posts", userController.GetUserPosts)

	protected.PUT("/users/profile", userController.UpdateProfile)
	protected.POST("/users/:username/follow", userController.FollowUser)
	protected.DELETE("/users/:username/follow", userController.UnfollowUser)
}
