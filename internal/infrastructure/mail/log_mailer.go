package mail

import (
	"context"

	"fruitarians-api/internal/domain/user"
	"fruitarians-api/internal/logger"

	"go.uber.org/zap"
)

// LogMailer records reset tokens in the log instead of delivering them.
type LogMailer struct{}

func (LogMailer) SendPasswordReset(_ context.Context, to user.Recipient, token string) error {
	logger.Info("Password reset mail not delivered, mail provider not configured",
		zap.String("event", "reset_mail_skipped"),
		zap.String("email", to.Email),
	)
	logger.Debug("Password reset token", zap.String("token", token))
	return nil
}
