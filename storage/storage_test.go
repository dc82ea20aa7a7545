package storage

import (
	"context"
	"net/url"
	"strings"
	"testing"

	"github.com/clipstream/api-go/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient() *Client {
	return New(&config.StorageConfig{
		Endpoint:   "localhost",
		Port:       "9000",
		UseSSL:     false,
		AccessKey:  "test-access",
		SecretKey:  "test-secret",
		BucketName: "tiktok-videos",
	})
}

func TestObjectKey(t *testing.T) {
	key := objectKey("videos", "my clip.mp4")
	assert.True(t, strings.HasPrefix(key, "videos/"))
	assert.True(t, strings.HasSuffix(key, ".mp4"))

	// No extension on the original name means none on the key.
	key = objectKey("thumbnails", "thumb")
	assert.True(t, strings.HasPrefix(key, "thumbnails/"))
	assert.NotContains(t, key, ".")

	// Keys are unique per call.
	assert.NotEqual(t, objectKey("videos", "a.mp4"), objectKey("videos", "a.mp4"))
}

// Presigning is pure request signing, no round-trip to the store.
func TestPresignGet(t *testing.T) {
	c := testClient()

	signed, err := c.PresignGet(context.Background(), "videos/abc.mp4", PresignTTL)
	require.NoError(t, err)

	u, err := url.Parse(signed)
	require.NoError(t, err)

	assert.Equal(t, "http", u.Scheme)
	assert.Equal(t, "localhost:9000", u.Host)
	// Path-style addressing: bucket then key.
	assert.Equal(t, "/tiktok-videos/videos/abc.mp4", u.Path)
	assert.Equal(t, "86400", u.Query().Get("X-Amz-Expires"))
	assert.NotEmpty(t, u.Query().Get("X-Amz-Signature"))
}
