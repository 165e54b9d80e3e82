package storage

import (
	"context"
	"fmt"
	"mime/multipart"

	appconfig "makerskills-api/core/config"
	"makerskills-api/core/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

type s3Storage struct {
	client *s3.Client
	bucket string
	region string
}

func newS3Storage(cfg appconfig.UploadConfig) (Storage, error) {
	if cfg.S3Bucket == "" || cfg.S3Region == "" {
		return nil, fmt.Errorf("s3 backend requires UPLOAD_S3_BUCKET and UPLOAD_S3_REGION")
	}

	client := s3.New(s3.Options{
		Region: cfg.S3Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
		),
	})

	return &s3Storage{
		client: client,
		bucket: cfg.S3Bucket,
		region: cfg.S3Region,
	}, nil
}

func (s *s3Storage) Save(file *multipart.FileHeader, module string, kind Kind) (string, error) {
	if appErr := ValidateExtension(file.Filename, kind); appErr != nil {
		return "", appErr
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	key := module + "/" + randomName(file.Filename)
	_, err = s.client.PutObject(context.Background(), &s3.PutObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
		Body:   src,
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload to s3: %w", err)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

func (s *s3Storage) Remove(publicPath string) error {
	prefix := fmt.Sprintf("https://%s.s3.%s.amazonaws.com/", s.bucket, s.region)
	if len(publicPath) <= len(prefix) || publicPath[:len(prefix)] != prefix {
		return nil
	}
	key := publicPath[len(prefix):]
	_, err := s.client.DeleteObject(context.Background(), &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.Warn("Storage:S3:Remove", "key", key, "error", err)
	}
	return err
}
