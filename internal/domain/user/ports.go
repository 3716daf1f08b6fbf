package user

import "context"

//go:generate mockgen -source=ports.go -destination=mocks/ports_mock.go -package=mocks

// ImageUpload is a profile picture handed to the Uploader.
type ImageUpload struct {
	UserID      string
	Role        string
	Filename    string
	ContentType string
	Data        []byte
	// Replace is set when the account already has a picture at PreviousURL.
	Replace     bool
	PreviousURL string
}

// Uploader stores profile images and returns their public URL.
type Uploader interface {
	Upload(ctx context.Context, image ImageUpload) (string, error)
}

type Recipient struct {
	Email string
	Name  string
}

// Mailer delivers forgotten-password tokens.
type Mailer interface {
	SendPasswordReset(ctx context.Context, to Recipient, token string) error
}
