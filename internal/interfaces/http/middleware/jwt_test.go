package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/infrastructure/auth"
	"github.com/nutritrack/backend/internal/infrastructure/config"
	"github.com/nutritrack/backend/internal/infrastructure/logger"
	"github.com/nutritrack/backend/internal/interfaces/http/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTService(accessTTL time.Duration) *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-at-least-32-chars",
		RefreshSecret:          "test-refresh-secret-key-32-chars",
		AccessTokenExpiration:  accessTTL,
		RefreshTokenExpiration: 7 * 24 * time.Hour,
		Issuer:                 "nutritrack-test",
	})
}

func issue(t *testing.T, svc *auth.JWTService, role string) (*auth.TokenPair, uuid.UUID) {
	t.Helper()
	userID := uuid.New()
	pair, err := svc.GenerateTokenPair(auth.Subject{UserID: userID, Username: "alice", Role: role})
	require.NoError(t, err)
	return pair, userID
}

func newJWTRouter(cfg JWTConfig, extra ...gin.HandlerFunc) *gin.Engine {
	router := gin.New()
	router.Use(JWTAuth(cfg))
	handlers := append(extra, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"user_id":     GetUserID(c).String(),
			"log_user_id": logger.UserID(c.Request.Context()),
		})
	})
	router.GET("/test", handlers...)
	router.GET("/ws", handlers...)
	router.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/swagger/index.html", func(c *gin.Context) { c.Status(http.StatusOK) })
	return router
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp dto.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotNil(t, resp.Error)
	return resp.Error.Code
}

func TestJWTAuth_ValidToken(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)
	pair, userID := issue(t, svc, "user")
	router := newJWTRouter(JWTConfig{Tokens: svc})

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+pair.AccessToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, userID.String(), body["user_id"])
	assert.Equal(t, userID.String(), body["log_user_id"])
}

func TestJWTAuth_Rejections(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)
	pair, _ := issue(t, svc, "user")
	expired := newTestJWTService(-time.Minute)
	expiredPair, _ := issue(t, expired, "user")

	tests := []struct {
		name   string
		header string
		code   string
	}{
		{"missing header", "", dto.ErrCodeUnauthorized},
		{"wrong scheme", "Basic abc", dto.ErrCodeTokenInvalid},
		{"empty bearer", BearerPrefix, dto.ErrCodeTokenInvalid},
		{"garbage token", BearerPrefix + "not-a-jwt", dto.ErrCodeTokenInvalid},
		{"refresh token", BearerPrefix + pair.RefreshToken, dto.ErrCodeTokenInvalid},
		{"expired token", BearerPrefix + expiredPair.AccessToken, dto.ErrCodeTokenExpired},
	}

	router := newJWTRouter(JWTConfig{Tokens: svc})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.header != "" {
				req.Header.Set(AuthHeaderKey, tt.header)
			}
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, tt.code, errorCode(t, w))
		})
	}
}

func TestJWTAuth_Skips(t *testing.T) {
	router := newJWTRouter(JWTConfig{
		Tokens:           newTestJWTService(time.Minute),
		SkipPaths:        []string{"/health"},
		SkipPathPrefixes: []string{"/swagger"},
	})

	for _, path := range []string{"/health", "/swagger/index.html"} {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestJWTAuth_QueryToken(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)
	pair, _ := issue(t, svc, "user")
	router := newJWTRouter(JWTConfig{Tokens: svc, QueryTokenPaths: []string{"/ws"}})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ws?token="+pair.AccessToken, nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test?token="+pair.AccessToken, nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuth_Blacklist(t *testing.T) {
	ctx := context.Background()
	svc := newTestJWTService(15 * time.Minute)

	t.Run("revoked jti", func(t *testing.T) {
		bl := auth.NewInMemoryTokenBlacklist()
		pair, _ := issue(t, svc, "user")
		claims, err := svc.ValidateAccessToken(pair.AccessToken)
		require.NoError(t, err)
		require.NoError(t, bl.Revoke(ctx, claims.ID, time.Minute))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+pair.AccessToken)
		w := httptest.NewRecorder()
		newJWTRouter(JWTConfig{Tokens: svc, Blacklist: bl}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, dto.ErrCodeTokenRevoked, errorCode(t, w))
	})

	t.Run("user revoked after issue", func(t *testing.T) {
		bl := auth.NewInMemoryTokenBlacklist()
		pair, userID := issue(t, svc, "user")
		require.NoError(t, bl.RevokeUser(ctx, userID.String(), time.Hour))

		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+pair.AccessToken)
		w := httptest.NewRecorder()
		newJWTRouter(JWTConfig{Tokens: svc, Blacklist: bl}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("lookup failure fails open", func(t *testing.T) {
		pair, _ := issue(t, svc, "user")
		req := httptest.NewRequest(http.MethodGet, "/test", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+pair.AccessToken)
		w := httptest.NewRecorder()
		newJWTRouter(JWTConfig{Tokens: svc, Blacklist: failingBlacklist{}}).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})
}

type failingBlacklist struct{}

func (failingBlacklist) Revoke(context.Context, string, time.Duration) error { return errBackend }
func (failingBlacklist) IsRevoked(context.Context, string) (bool, error) { return false, errBackend }
func (failingBlacklist) Claim(context.Context, string, time.Duration) (bool, error) {
	return false, errBackend
}
func (failingBlacklist) RevokeUser(context.Context, string, time.Duration) error {
	return errBackend
}
func (failingBlacklist) IsUserRevoked(context.Context, string, time.Time) (bool, error) {
	return false, errBackend
}

var errBackend = errors.New("redis down")

func TestRequireRole(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)
	router := newJWTRouter(JWTConfig{Tokens: svc}, RequireRole("admin"))

	userPair, _ := issue(t, svc, "user")
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+userPair.AccessToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, dto.ErrCodeForbidden, errorCode(t, w))

	adminPair, _ := issue(t, svc, "admin")
	req = httptest.NewRequest(http.MethodGet, "/test", nil)
	req.Header.Set(AuthHeaderKey, BearerPrefix+adminPair.AccessToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetClaims_Absent(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	assert.Nil(t, GetClaims(c))
	assert.Equal(t, uuid.Nil, GetUserID(c))
}
