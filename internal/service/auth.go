package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var (
	ErrInvalidToken   = errors.New("invalid token")
	ErrExpiredToken   = errors.New("expired token")
	ErrInvalidOwnerID = errors.New("invalid owner id")
)

const tokenValidity = 7 * 24 * time.Hour

func validateOwnerID(ownerID string) error {
	if ownerID == "" {
		return fmt.Errorf("must not be empty")
	}
	if len(ownerID) > 64 {
		return fmt.Errorf("must be at most 64 characters")
	}
	for _, r := range ownerID {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' && r != '-' && r != '.' {
			return fmt.Errorf("must contain only letters, numbers, dots, underscores, and hyphens")
		}
	}
	return nil
}

// AuthService issues and checks bearer tokens of the form
// timestamp:ownerID:signature.
type AuthService struct {
	secretKey string
	now       func() time.Time
}

func NewAuthService(secretKey string) *AuthService {
	return &AuthService{
		secretKey: secretKey,
		now:       time.Now,
	}
}

func (s *AuthService) sign(timestamp, ownerID string) string {
	mac := hmac.New(sha256.New, []byte(s.secretKey))
	mac.Write([]byte(timestamp + ":" + ownerID))
	return base64.URLEncoding.EncodeToString(mac.Sum(nil))
}

func (s *AuthService) GenerateToken(ownerID string) (string, error) {
	if err := validateOwnerID(ownerID); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidOwnerID, err)
	}

	timestamp := strconv.FormatInt(s.now().Unix(), 10)
	return timestamp + ":" + ownerID + ":" + s.sign(timestamp, ownerID), nil
}

// ValidateToken returns the owner id carried by a valid token.
func (s *AuthService) ValidateToken(token string) (string, error) {
	parts := strings.Split(token, ":")
	if len(parts) != 3 {
		return "", ErrInvalidToken
	}

	timestamp, ownerID, signature := parts[0], parts[1], parts[2]
	if validateOwnerID(ownerID) != nil {
		return "", ErrInvalidToken
	}

	expectedSignature := s.sign(timestamp, ownerID)
	if !hmac.Equal([]byte(signature), []byte(expectedSignature)) {
		return "", ErrInvalidToken
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return "", ErrInvalidToken
	}

	expirationTime := time.Unix(ts, 0).Add(tokenValidity)
	if s.now().After(expirationTime) {
		return "", ErrExpiredToken
	}

	return ownerID, nil
}
