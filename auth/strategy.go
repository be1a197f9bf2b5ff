// Package auth provides authentication strategies for OpenSearch clusters.
//
// The security plugin accepts three schemes on the REST layer:
//
//   - Basic: internal users or LDAP-backed users with a password
//   - ApiKey: base64("id:key") keys issued by an identity provider
//   - Bearer: JWT / OIDC access tokens that expire and must be refreshed
//
// # Basic
//
//	c, _ := osclient.New(
//	    osclient.WithAddresses("https://localhost:9200"),
//	    osclient.WithBasicAuth("admin", "admin"),
//	)
//
// # Bearer tokens
//
// A [TokenSource] is called whenever the cached token has expired, and again
// after the cluster answers 401:
//
//	c, _ := osclient.New(
//	    osclient.WithAddresses("https://localhost:9200"),
//	    osclient.WithBearerTokenSource(func(ctx context.Context) (string, error) {
//	        return idp.AccessToken(ctx)
//	    }, auth.WithTokenLifespan(5*time.Minute)),
//	)
//
// Per-request credentials (the http_auth and api_key call options) override
// the configured strategy for a single call; see [BasicHeader] and [APIKeyHeader].
package auth

import (
	"context"
	"net/http"
)

// Strategy defines the interface for authentication strategies.
//
// The SDK provides three built-in implementations:
//   - [BasicAuthStrategy]: username and password
//   - [APIKeyStrategy]: ApiKey credentials
//   - [BearerTokenStrategy]: cached, refreshable bearer tokens
type Strategy interface {
	// GetToken returns the credential to send with the next request.
	GetToken(ctx context.Context) (string, error)

	// ApplyAuth sets the Authorization header for the token.
	ApplyAuth(req *http.Request, token string)

	// HandleAuthError is called when the cluster answers 401 Unauthorized.
	// It returns a fresh token to retry with, or "" when no retry should happen.
	HandleAuthError(ctx context.Context, statusCode int, attempt int, maxAttempts int) (string, error)
}
