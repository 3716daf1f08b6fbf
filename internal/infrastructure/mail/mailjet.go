package mail

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"
	"time"

	"fruitarians-api/internal/config"
	"fruitarians-api/internal/domain/user"
	"fruitarians-api/internal/logger"

	"github.com/cenkalti/backoff/v4"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

const (
	sendPath        = "/v3.1/send"
	resetSubject    = "Forget Password Token"
	requestTimeout  = 10 * time.Second
	retryMaxElapsed = 30 * time.Second
)

var resetBody = template.Must(template.New("reset").Parse(
	`<p>Kode Lupa Password Anda</p><br><h3>Token : {{.Token}}</h3><br>` +
		`<p>Silahkan tulis kode Anda dikolom yang disediakan</p><p>Kode berlaku {{.Minutes}} Menit</p>`,
))

type address struct {
	Email string `json:"Email"`
	Name  string `json:"Name,omitempty"`
}

type message struct {
	From     address   `json:"From"`
	To       []address `json:"To"`
	Subject  string    `json:"Subject"`
	TextPart string    `json:"TextPart"`
	HTMLPart string    `json:"HTMLPart"`
}

type sendRequest struct {
	Messages []message `json:"Messages"`
}

// MailjetClient sends transactional mail through the Mailjet v3.1 send API.
type MailjetClient struct {
	http       *http.Client
	cfg        config.MailConfig
	tokenTTL   time.Duration
	cb         *gobreaker.CircuitBreaker
	newBackOff func() backoff.BackOff
}

func NewMailjetClient(cfg config.MailConfig, tokenTTL time.Duration) *MailjetClient {
	st := gobreaker.Settings{
		Name:        "mailjet",
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Info("circuit breaker state",
				zap.String("name", name),
				zap.String("from", from.String()),
				zap.String("to", to.String()),
			)
		},
	}

	return &MailjetClient{
		http:     &http.Client{Timeout: requestTimeout},
		cfg:      cfg,
		tokenTTL: tokenTTL,
		cb:       gobreaker.NewCircuitBreaker(st),
		newBackOff: func() backoff.BackOff {
			b := backoff.NewExponentialBackOff()
			b.MaxElapsedTime = retryMaxElapsed
			return b
		},
	}
}

func (m *MailjetClient) SendPasswordReset(ctx context.Context, to user.Recipient, token string) error {
	var body bytes.Buffer
	err := resetBody.Execute(&body, struct {
		Token   string
		Minutes int
	}{Token: token, Minutes: int(m.tokenTTL / time.Minute)})
	if err != nil {
		return fmt.Errorf("failed to render mail body: %w", err)
	}

	payload, err := json.Marshal(sendRequest{Messages: []message{{
		From:     address{Email: m.cfg.FromEmail, Name: m.cfg.FromName},
		To:       []address{{Email: to.Email, Name: to.Name}},
		Subject:  resetSubject,
		HTMLPart: body.String(),
	}}})
	if err != nil {
		return fmt.Errorf("failed to encode mail: %w", err)
	}

	_, err = m.cb.Execute(func() (interface{}, error) {
		return nil, m.sendWithRetry(ctx, payload)
	})
	if err != nil {
		return fmt.Errorf("failed to send password reset mail: %w", err)
	}

	logger.Info("Password reset mail sent",
		zap.String("event", "reset_mail_sent"),
		zap.String("email", to.Email),
	)
	return nil
}

func (m *MailjetClient) sendWithRetry(ctx context.Context, payload []byte) error {
	url := strings.TrimRight(m.cfg.BaseURL, "/") + sendPath

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Content-Type", "application/json")
		req.SetBasicAuth(m.cfg.APIKey, m.cfg.APISecret)

		resp, err := m.http.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()
		_, _ = io.Copy(io.Discard, resp.Body)

		switch {
		case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("mailjet responded %d", resp.StatusCode)
		case resp.StatusCode >= 400:
			return backoff.Permanent(fmt.Errorf("mailjet rejected message: %d", resp.StatusCode))
		}
		return nil
	}

	err := backoff.Retry(operation, backoff.WithContext(m.newBackOff(), ctx))
	var permanent *backoff.PermanentError
	if errors.As(err, &permanent) {
		return permanent.Err
	}
	return err
}
