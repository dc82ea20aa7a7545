package controllers

import (
	"context"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/clipstream/api-go/storage"
	"github.com/gin-gonic/gin"
)

// maxUploadSize caps video and thumbnail payloads at 100 MiB.
const maxUploadSize = 100 * 1024 * 1024

// ObjectStore is the slice of the blob store the video endpoints need.
type ObjectStore interface {
	Store(ctx context.Context, namespace, contentType, filename string, body io.Reader, size int64) (string, error)
	PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error)
}

type VideoController struct {
	Store ObjectStore
}

func NewVideoController(store ObjectStore) *VideoController {
	return &VideoController{Store: store}
}

func (vc *VideoController) UploadVideo(c *gin.Context) {
	url, key, ok := vc.upload(c, "video", "videos", "video/")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"videoUrl": url,
		"fileName": key,
	})
}

func (vc *VideoController) UploadThumbnail(c *gin.Context) {
	url, key, ok := vc.upload(c, "thumbnail", "thumbnails", "image/")
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"thumbnailUrl": url,
		"fileName":     key,
	})
}

// upload stores one multipart file and returns the canonical object URL
// (presigned, query stripped; the bucket policy keeps it readable) plus the
// storage key. On failure it writes the error response and returns ok=false.
func (vc *VideoController) upload(c *gin.Context, field, namespace, typePrefix string) (string, string, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No " + field + " file provided"})
		return "", "", false
	}

	if fileHeader.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File size exceeds limit"})
		return "", "", false
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, typePrefix) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only " + strings.TrimSuffix(typePrefix, "/") + " files are allowed"})
		return "", "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		log.Printf("Upload error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload " + field})
		return "", "", false
	}
	defer file.Close()

	key, err := vc.Store.Store(c.Request.Context(), namespace, contentType, fileHeader.Filename, file, fileHeader.Size)
	if err != nil {
		log.Printf("Upload error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload " + field})
		return "", "", false
	}

	url, err := vc.Store.PresignGet(c.Request.Context(), key, storage.PresignTTL)
	if err != nil {
		log.Printf("Upload error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload " + field})
		return "", "", false
	}

	return strings.SplitN(url, "?", 2)[0], key, true
}

// GetVideoURL issues a fresh presigned read URL for a stored object. The
// route is a wildcard so prefixed keys like videos/<uuid>.mp4 resolve.
func (vc *VideoController) GetVideoURL(c *gin.Context) {
	fileName := strings.TrimPrefix(c.Param("fileName"), "/")
	if fileName == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "File name is required"})
		return
	}

	url, err := vc.Store.PresignGet(c.Request.Context(), fileName, storage.PresignTTL)
	if err != nil {
		log.Printf("Get video URL error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get video URL"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
