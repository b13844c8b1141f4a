// Package auth implements the server-side login check for the dashboard:
// a shared password verified against a bcrypt hash, exchanged for a
// short-lived HMAC-signed bearer token.
package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidToken    = errors.New("invalid token")
	ErrExpiredToken    = errors.New("token expired")
	ErrInvalidPassword = errors.New("invalid password")
	ErrAuthNotEnabled  = errors.New("authentication is not configured")
	ErrWeakTokenSecret = errors.New("token secret must be at least 16 bytes")
	ErrMissingTokenTTL = errors.New("token ttl must be positive")
	ErrMissingPassword = errors.New("password must not be empty")
	ErrBadPasswordHash = errors.New("password hash is not a valid bcrypt hash")
)

// TokenIssuer mints and verifies expiry-stamped tokens of the form
// base64url(unixExpiry) "." base64url(HMAC-SHA256(unixExpiry)).
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if len(secret) < 16 {
		return nil, ErrWeakTokenSecret
	}
	if ttl <= 0 {
		return nil, ErrMissingTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue returns a token valid until now+ttl, and its expiry.
func (i *TokenIssuer) Issue(now time.Time) (string, time.Time) {
	expiry := now.Add(i.ttl)
	payload := strconv.FormatInt(expiry.Unix(), 10)
	return encodeSegment([]byte(payload)) + "." + encodeSegment(i.sign(payload)), expiry
}

// Verify checks signature and expiry.
func (i *TokenIssuer) Verify(token string, now time.Time) error {
	parts := strings.Split(token, ".")
	if len(parts) != 2 {
		return ErrInvalidToken
	}
	payload, err := decodeSegment(parts[0])
	if err != nil {
		return ErrInvalidToken
	}
	sig, err := decodeSegment(parts[1])
	if err != nil {
		return ErrInvalidToken
	}
	if !hmac.Equal(sig, i.sign(string(payload))) {
		return ErrInvalidToken
	}
	expiry, err := strconv.ParseInt(string(payload), 10, 64)
	if err != nil {
		return ErrInvalidToken
	}
	if now.Unix() >= expiry {
		return ErrExpiredToken
	}
	return nil
}

func (i *TokenIssuer) sign(payload string) []byte {
	mac := hmac.New(sha256.New, i.secret)
	mac.Write([]byte(payload))
	return mac.Sum(nil)
}

func encodeSegment(b []byte) string {
	return base64.RawURLEncoding.EncodeToString(b)
}

func decodeSegment(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}

// CheckPassword compares a candidate password against the configured bcrypt
// hash.
func CheckPassword(hash, password string) error {
	if password == "" {
		return ErrMissingPassword
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
		return ErrInvalidPassword
	}
	if err != nil {
		return fmt.Errorf("%w: %v", ErrBadPasswordHash, err)
	}
	return nil
}
