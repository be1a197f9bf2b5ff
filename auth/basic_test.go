package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBasicAuthStrategy(t *testing.T) {
	strategy := NewBasicAuthStrategy("admin", "secret")

	token, err := strategy.GetToken(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "YWRtaW46c2VjcmV0" {
		t.Errorf("GetToken() = %q, want %q", token, "YWRtaW46c2VjcmV0")
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	strategy.ApplyAuth(req, token)
	if got := req.Header.Get("Authorization"); got != "Basic YWRtaW46c2VjcmV0" {
		t.Errorf("Authorization = %q", got)
	}

	retry, err := strategy.HandleAuthError(context.Background(), http.StatusUnauthorized, 0, 3)
	if err != nil || retry != "" {
		t.Errorf("HandleAuthError() = (%q, %v), want no retry", retry, err)
	}
}

func TestAPIKeyStrategy(t *testing.T) {
	t.Run("encoded key is used verbatim", func(t *testing.T) {
		strategy := NewAPIKeyStrategy("already-encoded")
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		token, _ := strategy.GetToken(context.Background())
		strategy.ApplyAuth(req, token)
		if got := req.Header.Get("Authorization"); got != "ApiKey already-encoded" {
			t.Errorf("Authorization = %q", got)
		}
	})

	t.Run("id and key are encoded", func(t *testing.T) {
		strategy := NewAPIKeyPairStrategy("id", "key")
		token, _ := strategy.GetToken(context.Background())
		if token != "aWQ6a2V5" {
			t.Errorf("GetToken() = %q, want %q", token, "aWQ6a2V5")
		}
	})
}

func TestCredentialHeaders(t *testing.T) {
	tests := []struct {
		name    string
		fn      func(any) (string, error)
		value   any
		want    string
		wantErr bool
	}{
		{"basic string verbatim", BasicHeader, "dXNlcjpwYXNz", "Basic dXNlcjpwYXNz", false},
		{"basic slice pair", BasicHeader, []string{"user", "pass"}, "Basic dXNlcjpwYXNz", false},
		{"basic array pair", BasicHeader, [2]string{"user", "pass"}, "Basic dXNlcjpwYXNz", false},
		{"basic any pair", BasicHeader, []any{"user", "pass"}, "Basic dXNlcjpwYXNz", false},
		{"basic wrong arity", BasicHeader, []string{"user"}, "", true},
		{"api key pair", APIKeyHeader, []string{"id", "key"}, "ApiKey aWQ6a2V5", false},
		{"api key string", APIKeyHeader, "abc", "ApiKey abc", false},
		{"api key unsupported", APIKeyHeader, 42, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(tt.value)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}
