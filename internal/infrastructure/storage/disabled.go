package storage

import (
	"context"
	"errors"

	"fruitarians-api/internal/domain/user"
)

var ErrStorageDisabled = errors.New("image storage is not configured")

// DisabledUploader rejects every upload; used when no bucket is configured.
type DisabledUploader struct{}

func (DisabledUploader) Upload(context.Context, user.ImageUpload) (string, error) {
	return "", ErrStorageDisabled
}
