package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestExtractHashtags(t *testing.T) {
	tests := []struct {
		name     string
		caption  string
		expected []string
	}{
		{"none", "plain caption", []string{}},
		{"single", "check this #golang", []string{"golang"}},
		{"multiple", "#fyp my clip #golang_tips now", []string{"fyp", "golang_tips"}},
		{"empty", "", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ExtractHashtags(tt.caption))
		})
	}
}

func TestPagination(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"defaults", "", 20, 0},
		{"explicit", "limit=5&offset=10", 5, 10},
		{"clamped high", "limit=5000", 100, 0},
		{"clamped low", "limit=0&offset=-3", 1, 0},
		{"malformed", "limit=abc&offset=xyz", 20, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)

			limit, offset := Pagination(c)
			assert.Equal(t, tt.wantLimit, limit)
			assert.Equal(t, tt.wantOffset, offset)
		})
	}
}
