package user

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")

	ErrTokenInvalid = errors.New("token is invalid")
	ErrUploadFailed = errors.New("image upload failed")
)
