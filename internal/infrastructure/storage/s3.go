package storage

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"

	"fruitarians-api/internal/config"
	"fruitarians-api/internal/domain/user"
	"fruitarians-api/internal/logger"

	"github.com/aws/aws-sdk-go-v2/aws"
	awscfg "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/feature/s3/manager"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type putAPI interface {
	Upload(ctx context.Context, input *s3.PutObjectInput, opts ...func(*manager.Uploader)) (*manager.UploadOutput, error)
}

type deleteAPI interface {
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
}

// S3Uploader stores resized profile pictures in an S3 compatible bucket.
type S3Uploader struct {
	put      putAPI
	del      deleteAPI
	bucket   string
	baseURL  string
	maxWidth int
}

func NewS3Uploader(ctx context.Context, cfg config.StorageConfig) (*S3Uploader, error) {
	awsConfig, err := awscfg.LoadDefaultConfig(ctx, awscfg.WithRegion(cfg.Region))
	if err != nil {
		return nil, fmt.Errorf("failed to load aws config: %w", err)
	}

	client := s3.NewFromConfig(awsConfig, func(o *s3.Options) {
		if cfg.Endpoint != "" {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
			o.UsePathStyle = true
		}
	})

	return newS3Uploader(manager.NewUploader(client), client, cfg), nil
}

func newS3Uploader(put putAPI, del deleteAPI, cfg config.StorageConfig) *S3Uploader {
	return &S3Uploader{
		put:      put,
		del:      del,
		bucket:   cfg.Bucket,
		baseURL:  publicBaseURL(cfg),
		maxWidth: cfg.MaxWidth,
	}
}

func (u *S3Uploader) Upload(ctx context.Context, image user.ImageUpload) (string, error) {
	data, err := prepareImage(image.Data, u.maxWidth)
	if err != nil {
		return "", err
	}

	key := fmt.Sprintf("%s/%s/%s.jpg", image.Role, image.UserID, uuid.NewString())
	_, err = u.put.Upload(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String("image/jpeg"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to put object: %w", err)
	}

	if image.Replace {
		u.removePrevious(ctx, image.PreviousURL)
	}

	return u.baseURL + "/" + key, nil
}

// removePrevious deletes the replaced picture when it lives in this bucket.
// Failures only leave an orphaned object behind.
func (u *S3Uploader) removePrevious(ctx context.Context, previousURL string) {
	key, ok := strings.CutPrefix(previousURL, u.baseURL+"/")
	if !ok || key == "" {
		return
	}

	_, err := u.del.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(u.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		logger.Warn("Failed to delete replaced profile image",
			zap.String("event", "image_delete_failed"),
			zap.String("key", key),
			zap.Error(err),
		)
	}
}

func publicBaseURL(cfg config.StorageConfig) string {
	switch {
	case cfg.PublicBaseURL != "":
		return strings.TrimRight(cfg.PublicBaseURL, "/")
	case cfg.Endpoint != "":
		return strings.TrimRight(cfg.Endpoint, "/") + "/" + url.PathEscape(cfg.Bucket)
	default:
		return fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.Bucket, cfg.Region)
	}
}
