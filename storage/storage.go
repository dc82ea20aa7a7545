package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/clipstream/api-go/config"
	"github.com/google/uuid"
)

// PresignTTL is the single expiry window for read URLs issued by the API.
const PresignTTL = 24 * time.Hour

// Client wraps an S3-compatible object store (MinIO in deployments)
// holding video and thumbnail blobs.
type Client struct {
	s3Client  *s3.Client
	presigner *s3.PresignClient
	bucket    string
}

func New(cfg *config.StorageConfig) *Client {
	scheme := "http"
	if cfg.UseSSL {
		scheme = "https"
	}

	s3Client := s3.New(s3.Options{
		BaseEndpoint: aws.String(fmt.Sprintf("%s://%s:%s", scheme, cfg.Endpoint, cfg.Port)),
		Credentials: credentials.NewStaticCredentialsProvider(
			cfg.AccessKey,
			cfg.SecretKey,
			"",
		),
		Region:       "us-east-1",
		UsePathStyle: true,
	})

	return &Client{
		s3Client:  s3Client,
		presigner: s3.NewPresignClient(s3Client),
		bucket:    cfg.BucketName,
	}
}

// EnsureBucket creates the bucket if it does not exist and applies a
// public-read policy so canonical object URLs stay fetchable without
// credentials.
func (c *Client) EnsureBucket(ctx context.Context) error {
	_, err := c.s3Client.HeadBucket(ctx, &s3.HeadBucketInput{
		Bucket: aws.String(c.bucket),
	})
	if err == nil {
		return nil
	}

	if _, err := c.s3Client.CreateBucket(ctx, &s3.CreateBucketInput{
		Bucket: aws.String(c.bucket),
	}); err != nil {
		return fmt.Errorf("create bucket %s: %w", c.bucket, err)
	}

	policy := fmt.Sprintf(`{
		"Version": "2012-10-17",
		"Statement": [
			{
				"Effect": "Allow",
				"Principal": {"AWS": ["*"]},
				"Action": ["s3:GetObject"],
				"Resource": ["arn:aws:s3:::%s/*"]
			}
		]
	}`, c.bucket)

	if _, err := c.s3Client.PutBucketPolicy(ctx, &s3.PutBucketPolicyInput{
		Bucket: aws.String(c.bucket),
		Policy: aws.String(policy),
	}); err != nil {
		return fmt.Errorf("set bucket policy %s: %w", c.bucket, err)
	}

	return nil
}

// Store writes the payload under a fresh key in the given namespace,
// keeping the original file extension.
func (c *Client) Store(ctx context.Context, namespace, contentType, filename string, body io.Reader, size int64) (string, error) {
	key := objectKey(namespace, filename)

	_, err := c.s3Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(c.bucket),
		Key:           aws.String(key),
		Body:          body,
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return "", err
	}

	return key, nil
}

// PresignGet issues a time-limited anonymous read URL for one key.
func (c *Client) PresignGet(ctx context.Context, key string, ttl time.Duration) (string, error) {
	req, err := c.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(c.bucket),
		Key:    aws.String(key),
	}, func(opts *s3.PresignOptions) {
		opts.Expires = ttl
	})
	if err != nil {
		return "", err
	}

	return req.URL, nil
}

func objectKey(namespace, filename string) string {
	return fmt.Sprintf("%s/%s%s", namespace, uuid.New().String(), filepath.Ext(filename))
}
