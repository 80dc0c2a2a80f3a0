// internal/services/session_service.go
package services

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/javajoker/storefront/internal/utils"
)

// SessionService issues the bearer tokens that key a browser to its cart.
type SessionService struct {
	ttl time.Duration
}

type Session struct {
	ID        string    `json:"session_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

func NewSessionService(ttl time.Duration) *SessionService {
	return &SessionService{ttl: ttl}
}

func (s *SessionService) Create() (*Session, error) {
	id := uuid.NewString()
	token, err := utils.GenerateSessionToken(id, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to sign session token: %w", err)
	}

	return &Session{
		ID:        id,
		Token:     token,
		ExpiresAt: time.Now().Add(s.ttl),
	}, nil
}

func (s *SessionService) Resolve(token string) (string, error) {
	claims, err := utils.ValidateSessionToken(token)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidSession, err)
	}
	return claims.SessionID, nil
}
