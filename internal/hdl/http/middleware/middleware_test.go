package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/avolkov/taskgate/internal/auth/jwt"
	"github.com/avolkov/taskgate/internal/config"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCodec(accessTTL time.Duration) *jwt.Core {
	conf := config.Config{}
	conf.Auth.AccessSecret = "test-access-secret"
	conf.Auth.RefreshSecret = "test-refresh-secret"
	conf.Auth.AccessDuration = accessTTL
	conf.Auth.RefreshDuration = time.Hour
	conf.Auth.Issuer = "taskgate-test"

	return jwt.New(conf)
}

func TestMiddleware_Auth(t *testing.T) {
	codec := testCodec(time.Minute)

	validToken, err := codec.NewAccess(context.Background(), "alice")
	require.NoError(t, err)

	expiredCodec := testCodec(-time.Minute)
	expiredToken, err := expiredCodec.NewAccess(context.Background(), "alice")
	require.NoError(t, err)

	var gotUsername string
	next := http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotUsername, _ = r.Context().Value(config.UsernameKey).(string)
			w.WriteHeader(http.StatusOK)
		},
	)

	tests := []struct {
		name     string
		header   string
		status   int
		username string
	}{
		{
			name:     "Success",
			header:   "Bearer " + validToken,
			status:   http.StatusOK,
			username: "alice",
		},
		{
			name:   "NoHeader",
			header: "",
			status: http.StatusUnauthorized,
		},
		{
			name:   "NoBearerPrefix",
			header: validToken,
			status: http.StatusUnauthorized,
		},
		{
			name:   "EmptyToken",
			header: "Bearer ",
			status: http.StatusUnauthorized,
		},
		{
			name:   "GarbageToken",
			header: "Bearer not.a.token",
			status: http.StatusForbidden,
		},
		{
			name:   "ExpiredToken",
			header: "Bearer " + expiredToken,
			status: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotUsername = ""

			req := httptest.NewRequest(http.MethodGet, "/auth", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			Auth(codec)(next).ServeHTTP(rec, req)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.username, gotUsername)
		})
	}
}

func TestMiddleware_Auth_RefreshTokenRejected(t *testing.T) {
	codec := testCodec(time.Minute)

	// A refresh token must not open the gate: it is signed with the
	// refresh secret.
	refresh, err := codec.NewRefresh(context.Background(), "alice", uuid.New())
	require.NoError(t, err)

	next := http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		},
	)

	req := httptest.NewRequest(http.MethodGet, "/auth", nil)
	req.Header.Set("Authorization", "Bearer "+refresh)
	rec := httptest.NewRecorder()

	Auth(codec)(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestMiddleware_Device(t *testing.T) {
	var gotDevice string
	next := http.HandlerFunc(
		func(w http.ResponseWriter, r *http.Request) {
			gotDevice, _ = r.Context().Value(config.DeviceKey).(string)
			w.WriteHeader(http.StatusOK)
		},
	)

	tests := []struct {
		name     string
		ua       string
		expected string
	}{
		{
			name:     "UserAgent",
			ua:       "test-user-agent",
			expected: "test-user-agent",
		},
		{
			name:     "NoUserAgent",
			ua:       "",
			expected: config.UnknownDevice,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotDevice = ""

			req := httptest.NewRequest(http.MethodPost, "/public/login", nil)
			if tt.ua != "" {
				req.Header.Set("User-Agent", tt.ua)
			}
			rec := httptest.NewRecorder()

			Device(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.expected, gotDevice)
		})
	}
}
