package routes

import (
	"github.com/clipstream/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupPostRoutes(public, protected *gin.RouterGroup, postController *controllers.PostController) {
	public.GET("/posts/feed", postController.GetFeed)
	public.GET("/posts/:postId", postController.GetPost)
	public.GET("/posts/:postId/comments", postController.GetComments)

	protected.POST("/posts", postController.CreatePost)
	protected.POST("/posts/:postId/like", postController.LikePost)
	protected.DELETE("/posts/:postId/like", postController.UnlikePost)
	protected.POST("/posts/:postId/comments", postController.CreateComment)
	protected.DELETE("/posts/:postId", postController.DeletePost)
}
