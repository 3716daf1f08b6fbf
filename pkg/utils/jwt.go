package utils

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AudienceAccess        = "access"
	AudiencePasswordReset = "password_reset"

	resetNonceBytes = 12
)

var ErrInvalidJWT = errors.New("invalid or expired token")

// Claims are carried by bearer access tokens.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// ResetClaims are carried by forgotten-password tokens. Token mirrors the nonce
// stored on the user record.
type ResetClaims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Token  string `json:"token"`
	jwt.RegisteredClaims
}

func GenerateAccessToken(userID, email, role, secret string, ttl time.Duration) (string, int64, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)

	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Audience:  jwt.ClaimStrings{AudienceAccess},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", 0, fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, expiresAt.Unix(), nil
}

func ValidateToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	if err := parse(tokenString, secret, AudienceAccess, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func GenerateResetToken(userID, email, nonce, secret string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := ResetClaims{
		UserID: userID,
		Email:  email,
		Token:  nonce,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Audience:  jwt.ClaimStrings{AudiencePasswordReset},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign reset token: %w", err)
	}
	return signed, nil
}

func ValidateResetToken(tokenString, secret string) (*ResetClaims, error) {
	claims := &ResetClaims{}
	if err := parse(tokenString, secret, AudiencePasswordReset, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// GenerateNonce returns 12 random bytes, hex encoded.
func GenerateNonce() (string, error) {
	b := make([]byte, resetNonceBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(b), nil
}

func parse(tokenString, secret, audience string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidJWT, err)
	}
	if !token.Valid {
		return ErrInvalidJWT
	}
	return nil
}
