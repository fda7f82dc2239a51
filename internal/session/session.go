// Package session holds the bearer-token session store backing the API
// auth middleware. Sessions live in Redis with a sliding TTL and carry
// the authenticated user's role, so independent handlers never read
// shared mutable auth state directly.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"marketplace-service/internal/redisclient"

	"github.com/google/uuid"
)

// ErrNotFound is returned for unknown or expired tokens.
var ErrNotFound = errors.New("session not found")

// Session is the payload stored per bearer token
type Session struct {
	UserID    int64     `json:"user_id"`
	Role      string    `json:"role"`
	VendorID  int64     `json:"vendor_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Store persists sessions in Redis
type Store struct {
	redis *redisclient.Client
	ttl   time.Duration
}

// NewStore creates a session store with the given TTL
func NewStore(redis *redisclient.Client, ttl time.Duration) *Store {
	return &Store{redis: redis, ttl: ttl}
}

// Create issues a new token for the session and stores it.
func (s *Store) Create(ctx context.Context, sess *Session) (string, error) {
	sess.CreatedAt = time.Now()

	payload, err := json.Marshal(sess)
	if err != nil {
		return "", fmt.Errorf("failed to marshal session: %w", err)
	}

	token := uuid.New().String()
	if err := s.redis.SetSession(ctx, token, payload, s.ttl); err != nil {
		return "", fmt.Errorf("failed to store session: %w", err)
	}
	return token, nil
}

// Get resolves a bearer token to its session. Returns ErrNotFound for
// unknown or expired tokens.
func (s *Store) Get(ctx context.Context, token string) (*Session, error) {
	payload, err := s.redis.GetSession(ctx, token)
	if err == redisclient.ErrCacheMiss {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(payload, &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sess, nil
}

// Clear invalidates a token (logout, or after an upstream 401).
func (s *Store) Clear(ctx context.Context, token string) error {
	return s.redis.ClearSession(ctx, token)
}
