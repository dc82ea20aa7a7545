package config

import (
	"os"
)

type StorageConfig struct {
	Endpoint   string
	Port       string
	UseSSL     bool
	AccessKey  string
	SecretKey  string
	BucketName string
}

func GetStorageConfig() *StorageConfig {
	port := os.Getenv("MINIO_PORT")
	if port == "" {
		port = "9000"
	}
	bucket := os.Getenv("MINIO_BUCKET_NAME")
	if bucket == "" {
		bucket = "tiktok-videos"
	}

	return &StorageConfig{
		Endpoint:   os.Getenv("MINIO_ENDPOINT"),
		Port:       port,
		UseSSL:     os.Getenv("MINIO_USE_SSL") == "true",
		AccessKey:  os.Getenv("MINIO_ACCESS_KEY"),
		SecretKey:  os.Getenv("MINIO_SECRET_KEY"),
		BucketName: bucket,
	}
}
