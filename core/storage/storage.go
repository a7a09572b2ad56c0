package storage

import (
	"bytes"
	"context"
	"fmt"

	"talentsched/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// IStorage persists generated artifacts (calendar exports) to object
// storage.
type IStorage interface {
	Upload(ctx context.Context, key string, body []byte, contentType string) (string, error)
}

type StorageConfig struct {
	Region    string
	Bucket    string
	AccessKey string
	SecretKey string
	// Endpoint overrides the S3 endpoint for MinIO-style deployments.
	Endpoint string
}

type Storage struct {
	client *s3.Client
	bucket string
}

func NewStorage(cfg StorageConfig) *Storage {
	options := s3.Options{
		Region: cfg.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	}
	if cfg.Endpoint != "" {
		options.BaseEndpoint = aws.String(cfg.Endpoint)
		options.UsePathStyle = true
	}

	return &Storage{
		client: s3.New(options),
		bucket: cfg.Bucket,
	}
}

func (s *Storage) Upload(ctx context.Context, key string, body []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		logger.Error("Storage:Upload:Error:", err)
		return "", err
	}

	logger.Info("Storage:Upload", "key", key, "bytes", len(body))
	return fmt.Sprintf("s3://%s/%s", s.bucket, key), nil
}
