package routes

import (
	"github.com/clipstream/api-go/controllers"
	"github.com/gin-gonic/gin"
)

func SetupVideoRoutes(public, protected *gin.RouterGroup, videoController *controllers.VideoController) {
	protected.POST("/videos/upload", videoController.UploadVideo)
	protected.POST("/videos/upload-thumbnail", videoController.UploadThumbnail)

	// Wildcard so stored keys with a namespace prefix resolve.
	public.GET("/videos/*fileName", videoController.GetVideoURL)
}
