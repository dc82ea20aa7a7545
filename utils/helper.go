package utils

import (
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

var hashtagPattern = regexp.MustCompile(`#(\w+)`)

// ExtractHashtags pulls #tags out of a caption, without the leading '#'.
func ExtractHashtags(text string) []string {
	matches := hashtagPattern.FindAllStringSubmatch(text, -1)
	hashtags := make([]string, 0, len(matches))
	for _, match := range matches {
		hashtags = append(hashtags, match[1])
	}
	return hashtags
}

// Pagination reads limit/offset query parameters with defaults 20/0,
// clamping limit to [1,100] and offset to >= 0. Malformed values fall back
// to the defaults instead of erroring.
func Pagination(c *gin.Context) (limit, offset int) {
	limit = defaultPageSize
	if raw := c.Query("limit"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			limit = v
		}
	}
	if limit < 1 {
		limit = 1
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	if raw := c.Query("offset"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			offset = v
		}
	}

	return limit, offset
}
