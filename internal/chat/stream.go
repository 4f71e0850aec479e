package chat

import (
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrMissingUserID = errors.New("userId is required")
	ErrNotConfigured = errors.New("chat is not configured")
)

// StreamTokens creates Stream Chat user tokens: HS256 JWTs with a
// user_id claim signed with the application's API secret.
type StreamTokens struct {
	apiKey    string
	apiSecret []byte
}

func NewStreamTokens(apiKey, apiSecret string) *StreamTokens {
	return &StreamTokens{apiKey: apiKey, apiSecret: []byte(apiSecret)}
}

func (s *StreamTokens) APIKey() string { return s.apiKey }

func (s *StreamTokens) CreateToken(userID string) (string, error) {
	if userID == "" {
		return "", ErrMissingUserID
	}
	if len(s.apiSecret) == 0 {
		return "", ErrNotConfigured
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
	})
	return token.SignedString(s.apiSecret)
}
