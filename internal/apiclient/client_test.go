package apiclient

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/launchdarkly/go-test-helpers/v2/httphelpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spec-kit/mock-bank-api/internal/auth"
	"github.com/spec-kit/mock-bank-api/internal/config"
	"github.com/spec-kit/mock-bank-api/internal/server"
)

func withMockAPI(t *testing.T, action func(baseURL string)) {
	t.Helper()
	srv := server.New(config.AppConfig{IDStrategy: config.IDStrategySequence}, zaptest.NewLogger(t))
	httphelpers.WithServer(adaptor.FiberApp(srv.App), func(ts *httptest.Server) {
		action(ts.URL)
	})
}

func TestClientRoundTrip(t *testing.T) {
	withMockAPI(t, func(baseURL string) {
		ctx := context.Background()
		c := New(Options{BaseURL: baseURL + "/", Token: "dummy-token"})

		require.NoError(t, c.WaitForReset(ctx, 3, 10*time.Millisecond))

		res, err := c.Post(ctx, "/api/users", map[string]any{"name": "Ann", "email": "ann@x.com", "accountType": "basic"})
		require.NoError(t, err)
		require.Equal(t, http.StatusCreated, res.Status)
		created, err := res.Object()
		require.NoError(t, err)

		res, err = c.Put(ctx, "/api/users/"+created["id"].(string), map[string]any{"name": "Updated Name"})
		require.NoError(t, err)
		updated, err := res.Object()
		require.NoError(t, err)
		assert.Equal(t, "Updated Name", updated["name"])

		res, err = c.Delete(ctx, "/api/users/"+created["id"].(string))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, res.Status)
		assert.Error(t, res.JSON(&map[string]any{}))

		res, err = c.Get(ctx, "/api/users/"+created["id"].(string))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, res.Status)
	})
}

func TestAnonymousClientIsRejected(t *testing.T) {
	withMockAPI(t, func(baseURL string) {
		c := New(Options{BaseURL: baseURL, Token: "dummy-token"}).Anonymous()
		res, err := c.Post(context.Background(), "/api/users", map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, res.Status)
	})
}

func TestWaitForResetGivesUp(t *testing.T) {
	httphelpers.WithServer(httphelpers.HandlerWithStatus(http.StatusServiceUnavailable), func(ts *httptest.Server) {
		c := New(Options{BaseURL: ts.URL})
		err := c.WaitForReset(context.Background(), 2, time.Millisecond)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "503")
	})
}

func TestRequestsAreRecorded(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	var console bytes.Buffer

	withMockAPI(t, func(baseURL string) {
		c := New(Options{BaseURL: baseURL, Token: "t", APILog: zap.New(core), Console: &console})
		_, err := c.Post(context.Background(), "/api/transactions", map[string]any{"amount": 100})
		require.NoError(t, err)
	})

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, "/api/transactions", fields["path"])
	assert.Equal(t, int64(http.StatusBadRequest), fields["status"])
	assert.JSONEq(t, `{"message":"missing required fields"}`, fields["res"].(string))
	assert.Equal(t, "[API] POST /api/transactions 400\n", console.String())
}

func TestNewFromConfigMintsTokenAndWritesAPILog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "reports", "api.log")

	withMockAPI(t, func(baseURL string) {
		cfg := &config.Config{
			Auth: config.AuthConfig{TokenSecret: "secret", TokenTTLMinutes: 5},
			Client: config.ClientConfig{
				BaseURL:    baseURL,
				EnvName:    "test",
				LogAPI:     true,
				APILogPath: logPath,
			},
		}
		c, closeFn, err := NewFromConfig(cfg, nil)
		require.NoError(t, err)
		defer closeFn()

		claims, err := auth.NewTokenManager("secret", 5).ParseToken(c.token)
		require.NoError(t, err)
		assert.Equal(t, "test", claims.Environment)

		res, err := c.Get(context.Background(), "/api/transactions/u-1")
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.Status)
	})

	f, err := os.Open(logPath)
	require.NoError(t, err)
	defer f.Close()
	scanner := bufio.NewScanner(f)
	require.True(t, scanner.Scan())
	var line map[string]any
	require.NoError(t, json.Unmarshal(scanner.Bytes(), &line))
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, float64(200), line["status"])
	assert.Equal(t, "test", line["env"])
}

func TestNewFromConfigKeepsConfiguredToken(t *testing.T) {
	c, closeFn, err := NewFromConfig(&config.Config{Client: config.ClientConfig{Token: "fixed"}}, nil)
	require.NoError(t, err)
	defer closeFn()
	assert.Equal(t, "fixed", c.token)
	assert.Nil(t, c.apiLog)
}
