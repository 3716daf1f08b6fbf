package mail

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"fruitarians-api/internal/config"
	"fruitarians-api/internal/domain/user"

	"github.com/cenkalti/backoff/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL string) *MailjetClient {
	c := NewMailjetClient(config.MailConfig{
		APIKey:    "key",
		APISecret: "secret",
		FromEmail: "noreply@fruitarians.id",
		FromName:  "Fruitarians",
		BaseURL:   baseURL,
	}, 15*time.Minute)
	c.newBackOff = func() backoff.BackOff {
		return backoff.WithMaxRetries(&backoff.ZeroBackOff{}, 2)
	}
	return c
}

func TestSendPasswordReset(t *testing.T) {
	var got sendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v3.1/send", r.URL.Path)
		key, secret, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "key", key)
		assert.Equal(t, "secret", secret)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := newTestClient(server.URL).SendPasswordReset(context.Background(),
		user.Recipient{Email: "pembeli@buah.id", Name: "Pembeli"}, "tok.en.value")
	require.NoError(t, err)

	require.Len(t, got.Messages, 1)
	msg := got.Messages[0]
	assert.Equal(t, "Forget Password Token", msg.Subject)
	assert.Equal(t, "pembeli@buah.id", msg.To[0].Email)
	assert.Contains(t, msg.HTMLPart, "Token : tok.en.value")
	assert.Contains(t, msg.HTMLPart, "Kode berlaku 15 Menit")
}

func TestSendPasswordResetRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	err := newTestClient(server.URL).SendPasswordReset(context.Background(), user.Recipient{Email: "a@b.id"}, "t")
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestSendPasswordResetDoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	err := newTestClient(server.URL).SendPasswordReset(context.Background(), user.Recipient{Email: "a@b.id"}, "t")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestLogMailerNeverFails(t *testing.T) {
	assert.NoError(t, LogMailer{}.SendPasswordReset(context.Background(), user.Recipient{Email: "a@b.id"}, "t"))
}
