package osclient

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/go-logr/logr/funcr"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DrewBradfordXYZ/osclient-go/config"
)

type capturedRequest struct {
	path   string
	auth   string
	header http.Header
}

func capturingServer(t *testing.T) (*httptest.Server, func() []capturedRequest) {
	t.Helper()
	var (
		mu  sync.Mutex
		got []capturedRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		got = append(got, capturedRequest{path: r.URL.EscapedPath(), auth: r.Header.Get("Authorization"), header: r.Header.Clone()})
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"UP"}`))
	}))
	t.Cleanup(srv.Close)
	return srv, func() []capturedRequest {
		mu.Lock()
		defer mu.Unlock()
		return append([]capturedRequest(nil), got...)
	}
}

func TestNew_BasicAuth(t *testing.T) {
	srv, requests := capturingServer(t)
	c, err := New(WithAddresses(srv.URL), WithBasicAuth("admin", "pw"), WithHeader("X-Env", "test"))
	require.NoError(t, err)

	_, err = c.Security.Health(context.Background())
	require.NoError(t, err)

	got := requests()
	require.Len(t, got, 1)
	assert.Equal(t, "/_plugins/_security/health", got[0].path)
	assert.Equal(t, "Basic "+base64.StdEncoding.EncodeToString([]byte("admin:pw")), got[0].auth)
	assert.Equal(t, "test", got[0].header.Get("X-Env"))
}

func TestNew_APIKey(t *testing.T) {
	srv, requests := capturingServer(t)
	c, err := New(WithAddresses(srv.URL), WithAPIKey("ZW5jb2RlZA=="))
	require.NoError(t, err)

	_, err = c.Tasks.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ApiKey ZW5jb2RlZA==", requests()[0].auth)
}

func TestNew_InvalidAddress(t *testing.T) {
	_, err := New(WithAddresses("not a url"))
	assert.Error(t, err)
}

func TestNew_RateLimit(t *testing.T) {
	srv, requests := capturingServer(t)
	c, err := New(WithAddresses(srv.URL), WithRateLimit(0.001, 1))
	require.NoError(t, err)

	_, err = c.Tasks.List(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err = c.Tasks.List(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Len(t, requests(), 1)
}

func TestNew_Metrics(t *testing.T) {
	srv, _ := capturingServer(t)
	reg := prometheus.NewRegistry()
	c, err := New(WithAddresses(srv.URL), WithMetrics(reg))
	require.NoError(t, err)

	_, err = c.GetAllPits(context.Background())
	require.NoError(t, err)

	families, err := reg.Gather()
	require.NoError(t, err)
	names := map[string]bool{}
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["osclient_requests_total"])
	assert.True(t, names["osclient_request_duration_seconds"])
}

func TestNew_DebugLoggerAndDeprecation(t *testing.T) {
	srv, _ := capturingServer(t)
	var (
		mu    sync.Mutex
		lines []string
	)
	l := funcr.New(func(prefix, args string) {
		mu.Lock()
		defer mu.Unlock()
		lines = append(lines, args)
	}, funcr.Options{})

	c, err := New(WithAddresses(srv.URL), WithLogger(l), WithDebug(true))
	require.NoError(t, err)

	_, err = c.ListAllPointInTime(context.Background())
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	joined := ""
	for _, line := range lines {
		joined += line + "\n"
	}
	assert.Contains(t, joined, "list_all_point_in_time")
	assert.Contains(t, joined, "request completed")
}

func TestNewFromConfig(t *testing.T) {
	srv, requests := capturingServer(t)
	cfg := &config.Config{
		Addresses:        []string{srv.URL},
		Username:         "admin",
		Password:         "secret",
		MaxRetries:       1,
		RequestTimeout:   time.Second,
		StrictParams:     true,
		ThrottleRequests: 10,
		ThrottleWindow:   time.Second,
	}

	c, err := NewFromConfig(cfg)
	require.NoError(t, err)

	_, err = c.Snapshot.GetRepository(context.Background(), "backups")
	require.NoError(t, err)
	got := requests()
	require.Len(t, got, 1)
	assert.Equal(t, "/_snapshot/backups", got[0].path)
	assert.Equal(t, "Basic "+base64.StdEncoding.EncodeToString([]byte("admin:secret")), got[0].auth)

	_, err = c.Snapshot.GetRepository(context.Background(), "backups", Param("bogus", 1))
	assert.True(t, IsValidationError(err))
	assert.Len(t, requests(), 1)
}

func TestNewFromConfig_Invalid(t *testing.T) {
	_, err := NewFromConfig(&config.Config{})
	assert.Error(t, err)

	_, err = NewFromConfig(&config.Config{Addresses: []string{"http://a:9200"}, CACertFile: "/does/not/exist.pem"})
	assert.Error(t, err)
}

func TestReexports(t *testing.T) {
	assert.NotEmpty(t, Endpoints())
	assert.NotEmpty(t, Deprecations())
	assert.Equal(t, 0, StatusCode(nil))
}
