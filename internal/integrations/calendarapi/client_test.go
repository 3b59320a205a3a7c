package calendarapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestClient(serverURL string) *Client {
	return NewClient(serverURL, "client-id", "client-secret", "https://app.example.com/callback", 5*time.Second, nopLogger{})
}

func TestExchangeCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/oauth/token", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "authorization_code", r.Form.Get("grant_type"))
		assert.Equal(t, "the-code", r.Form.Get("code"))
		assert.Equal(t, "client-id", r.Form.Get("client_id"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"at","refresh_token":"rt","expires_in":3600}`))
	}))
	defer server.Close()

	token, err := newTestClient(server.URL).ExchangeCode(context.Background(), "the-code")
	require.NoError(t, err)
	assert.Equal(t, "at", token.AccessToken)
	assert.Equal(t, "rt", token.RefreshToken)

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, now.Add(time.Hour), token.ExpiresAt(now))
}

func TestExchangeCode_Rejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant","error_description":"code expired"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).ExchangeCode(context.Background(), "stale-code")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCodeRejected)
}

func TestRefreshToken(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
		assert.Equal(t, "old-rt", r.Form.Get("refresh_token"))

		_, _ = w.Write([]byte(`{"access_token":"new-at","refresh_token":"new-rt","expires_in":3600}`))
	}))
	defer server.Close()

	token, err := newTestClient(server.URL).RefreshToken(context.Background(), "old-rt")
	require.NoError(t, err)
	assert.Equal(t, "new-at", token.AccessToken)
}

func TestFetchBusyBlocks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/busy", r.URL.Path)
		assert.Equal(t, "Bearer the-token", r.Header.Get("Authorization"))
		assert.NotEmpty(t, r.URL.Query().Get("from"))
		assert.NotEmpty(t, r.URL.Query().Get("to"))

		_, _ = w.Write([]byte(`{"busy":[
			{"start":"2026-09-14T09:00:00Z","end":"2026-09-14T12:00:00Z","summary":"Wedding"},
			{"start":"2026-09-20T00:00:00Z","end":"2026-09-21T00:00:00Z"}
		]}`))
	}))
	defer server.Close()

	from := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 1, 0)

	blocks, err := newTestClient(server.URL).FetchBusyBlocks(context.Background(), "the-token", from, to)
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, "Wedding", blocks[0].Summary)
	assert.Equal(t, time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC), blocks[0].Start)
}

func TestFetchBusyBlocks_TokenRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL).FetchBusyBlocks(context.Background(), "bad", time.Now(), time.Now())
	assert.ErrorIs(t, err, ErrUnauthorized)
}
