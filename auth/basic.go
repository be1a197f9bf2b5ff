package auth

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"reflect"
)

// BasicAuthStrategy authenticates with a username and password.
type BasicAuthStrategy struct {
	token string
}

// NewBasicAuthStrategy creates a new basic authentication strategy.
//
// Example:
//
//	strategy := auth.NewBasicAuthStrategy("admin", "admin")
func NewBasicAuthStrategy(username, password string) *BasicAuthStrategy {
	return &BasicAuthStrategy{token: encodePair(username, password)}
}

// GetToken returns the encoded credentials.
func (s *BasicAuthStrategy) GetToken(ctx context.Context) (string, error) {
	return s.token, nil
}

// ApplyAuth sets "Authorization: Basic <token>".
func (s *BasicAuthStrategy) ApplyAuth(req *http.Request, token string) {
	req.Header.Set("Authorization", "Basic "+token)
}

// HandleAuthError never retries: a rejected password does not become valid.
func (s *BasicAuthStrategy) HandleAuthError(ctx context.Context, statusCode int, attempt int, maxAttempts int) (string, error) {
	return "", nil
}

// APIKeyStrategy authenticates with an ApiKey credential.
type APIKeyStrategy struct {
	token string
}

// NewAPIKeyStrategy creates a strategy from an already encoded key.
func NewAPIKeyStrategy(encoded string) *APIKeyStrategy {
	return &APIKeyStrategy{token: encoded}
}

// NewAPIKeyPairStrategy creates a strategy from a key id and secret.
func NewAPIKeyPairStrategy(id, key string) *APIKeyStrategy {
	return &APIKeyStrategy{token: encodePair(id, key)}
}

// GetToken returns the encoded key.
func (s *APIKeyStrategy) GetToken(ctx context.Context) (string, error) {
	return s.token, nil
}

// ApplyAuth sets "Authorization: ApiKey <token>".
func (s *APIKeyStrategy) ApplyAuth(req *http.Request, token string) {
	req.Header.Set("Authorization", "ApiKey "+token)
}

// HandleAuthError never retries.
func (s *APIKeyStrategy) HandleAuthError(ctx context.Context, statusCode int, attempt int, maxAttempts int) (string, error) {
	return "", nil
}

// BasicHeader builds an Authorization header value for a per-request
// http_auth override. A string is taken as already encoded; a two-element
// list or array is encoded as base64("user:password").
func BasicHeader(v any) (string, error) {
	token, err := credential(v)
	if err != nil {
		return "", fmt.Errorf("http_auth: %w", err)
	}
	return "Basic " + token, nil
}

// APIKeyHeader builds an Authorization header value for a per-request
// api_key override, with the same encoding rules as BasicHeader.
func APIKeyHeader(v any) (string, error) {
	token, err := credential(v)
	if err != nil {
		return "", fmt.Errorf("api_key: %w", err)
	}
	return "ApiKey " + token, nil
}

func credential(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return t, nil
	case []byte:
		return string(t), nil
	case []string:
		if len(t) != 2 {
			return "", fmt.Errorf("expected 2 elements, got %d", len(t))
		}
		return encodePair(t[0], t[1]), nil
	case [2]string:
		return encodePair(t[0], t[1]), nil
	}
	rv := reflect.ValueOf(v)
	if (rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array) && rv.Len() == 2 {
		return encodePair(fmt.Sprint(rv.Index(0).Interface()), fmt.Sprint(rv.Index(1).Interface())), nil
	}
	return "", fmt.Errorf("unsupported credential type %T", v)
}

func encodePair(a, b string) string {
	return base64.StdEncoding.EncodeToString([]byte(a + ":" + b))
}
