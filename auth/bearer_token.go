package auth

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// TokenSource fetches a fresh bearer token, e.g. from an OIDC provider.
type TokenSource func(ctx context.Context) (string, error)

// BearerTokenStrategy authenticates with short-lived bearer tokens. Tokens are
// cached for the configured lifespan; concurrent callers share one fetch.
type BearerTokenStrategy struct {
	source   TokenSource
	lifespan time.Duration

	mu      sync.RWMutex
	cached  *cachedToken
	pending chan struct{}
}

type cachedToken struct {
	token     string
	expiresAt time.Time
}

// BearerTokenOption configures a BearerTokenStrategy.
type BearerTokenOption func(*BearerTokenStrategy)

// WithTokenLifespan sets how long a fetched token is reused (default 290 seconds).
func WithTokenLifespan(d time.Duration) BearerTokenOption {
	return func(s *BearerTokenStrategy) {
		s.lifespan = d
	}
}

// WithInitialToken seeds the cache so the first request needs no fetch.
func WithInitialToken(token string) BearerTokenOption {
	return func(s *BearerTokenStrategy) {
		s.cached = &cachedToken{token: token, expiresAt: time.Now().Add(s.lifespan)}
	}
}

// NewBearerTokenStrategy creates a new bearer token strategy.
// Options are applied in order, so WithTokenLifespan should precede WithInitialToken.
func NewBearerTokenStrategy(source TokenSource, opts ...BearerTokenOption) *BearerTokenStrategy {
	s := &BearerTokenStrategy{
		source:   source,
		lifespan: 290 * time.Second,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// GetToken returns the cached token, fetching a new one if it has expired.
func (s *BearerTokenStrategy) GetToken(ctx context.Context) (string, error) {
	s.mu.RLock()
	if s.cached != nil && time.Now().Before(s.cached.expiresAt) {
		token := s.cached.token
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	if pending := s.pending; pending != nil {
		s.mu.Unlock()
		select {
		case <-pending:
		case <-ctx.Done():
			return "", ctx.Err()
		}
		return s.GetToken(ctx)
	}
	pending := make(chan struct{})
	s.pending = pending
	s.mu.Unlock()

	token, err := s.fetch(ctx)

	s.mu.Lock()
	s.pending = nil
	close(pending)
	if err == nil {
		s.cached = &cachedToken{token: token, expiresAt: time.Now().Add(s.lifespan)}
	}
	s.mu.Unlock()

	return token, err
}

func (s *BearerTokenStrategy) fetch(ctx context.Context) (string, error) {
	if s.source == nil {
		return "", fmt.Errorf("no bearer token available and no token source configured")
	}
	token, err := s.source(ctx)
	if err != nil {
		return "", fmt.Errorf("fetching bearer token: %w", err)
	}
	if token == "" {
		return "", fmt.Errorf("token source returned an empty token")
	}
	return token, nil
}

// SetToken replaces the cached token.
func (s *BearerTokenStrategy) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = &cachedToken{token: token, expiresAt: time.Now().Add(s.lifespan)}
}

// Invalidate drops the cached token.
func (s *BearerTokenStrategy) Invalidate() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cached = nil
}

// ApplyAuth sets "Authorization: Bearer <token>".
func (s *BearerTokenStrategy) ApplyAuth(req *http.Request, token string) {
	req.Header.Set("Authorization", "Bearer "+token)
}

// HandleAuthError handles 401 errors by invalidating the cache and fetching a new token.
func (s *BearerTokenStrategy) HandleAuthError(ctx context.Context, statusCode int, attempt int, maxAttempts int) (string, error) {
	if statusCode != http.StatusUnauthorized || attempt >= maxAttempts-1 {
		return "", nil
	}
	if s.source == nil {
		return "", nil
	}

	s.Invalidate()
	return s.GetToken(ctx)
}
