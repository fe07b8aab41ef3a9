package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/nutritrack/backend/internal/infrastructure/persistence"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePool struct {
	pingErr error
}

func (f fakePool) Ping(context.Context) error { return f.pingErr }

func (f fakePool) Stats() (persistence.ConnectionStats, error) {
	return persistence.ConnectionStats{MaxOpenConnections: 25, OpenConnections: 3}, nil
}

func healthStatus(t *testing.T, db PoolStats, cache Pinger) (int, HealthStatus) {
	t.Helper()
	h := NewHealthHandler(db, cache, "1.2.3")
	r := gin.New()
	r.GET("/health", h.Health)
	w := perform(t, r, http.MethodGet, "/health", nil)
	var body HealthStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestHealthHandler(t *testing.T) {
	up := PingFunc(func(context.Context) error { return nil })
	down := PingFunc(func(context.Context) error { return errors.New("refused") })

	t.Run("healthy", func(t *testing.T) {
		code, body := healthStatus(t, fakePool{}, up)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "healthy", body.Status)
		assert.Equal(t, "1.2.3", body.Version)
		require.NotNil(t, body.Pool)
		assert.Equal(t, 3, body.Pool.OpenConnections)
	})

	t.Run("cache down degrades", func(t *testing.T) {
		code, body := healthStatus(t, fakePool{}, down)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "degraded", body.Status)
		assert.Equal(t, "down", body.Cache)
	})

	t.Run("database down", func(t *testing.T) {
		code, body := healthStatus(t, fakePool{pingErr: errors.New("refused")}, nil)
		assert.Equal(t, http.StatusServiceUnavailable, code)
		assert.Equal(t, "unhealthy", body.Status)
		assert.Empty(t, body.Cache)
		assert.Nil(t, body.Pool)
	})
}

func TestHealthHandler_Ping(t *testing.T) {
	h := NewHealthHandler(fakePool{}, nil, "")
	r := gin.New()
	r.GET("/ping", h.Ping)
	w := perform(t, r, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"pong"}`, w.Body.String())
}
