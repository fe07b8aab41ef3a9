package realtime

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/nutritrack/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestServer(t *testing.T, hub *Hub, userID uuid.UUID) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := hub.Upgrader().Upgrade(w, r, nil)
		if err != nil {
			return
		}
		hub.Serve(conn, userID)
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitForConnections(t *testing.T, hub *Hub, userID uuid.UUID, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.Connections(userID) == n }, 2*time.Second, 10*time.Millisecond)
}

func TestHub_SendToUser(t *testing.T) {
	hub := NewHub(config.RealtimeConfig{PingInterval: time.Second}, zap.NewNop())
	t.Cleanup(hub.Close)
	userID := uuid.New()
	url := newTestServer(t, hub, userID)

	first := dial(t, url)
	second := dial(t, url)
	waitForConnections(t, hub, userID, 2)

	sent := hub.SendToUser(userID, "summary.recomputed", map[string]int{"total_entries": 3})
	assert.Equal(t, 2, sent)

	for _, conn := range []*websocket.Conn{first, second} {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
		_, raw, err := conn.ReadMessage()
		require.NoError(t, err)

		var msg struct {
			Type string         `json:"type"`
			Data map[string]int `json:"data"`
		}
		require.NoError(t, json.Unmarshal(raw, &msg))
		assert.Equal(t, "summary.recomputed", msg.Type)
		assert.Equal(t, 3, msg.Data["total_entries"])
	}

	assert.Zero(t, hub.SendToUser(uuid.New(), "summary.recomputed", nil), "other users have no connections")
}

func TestHub_UnregistersOnDisconnect(t *testing.T) {
	hub := NewHub(config.RealtimeConfig{}, zap.NewNop())
	t.Cleanup(hub.Close)
	userID := uuid.New()
	url := newTestServer(t, hub, userID)

	conn := dial(t, url)
	waitForConnections(t, hub, userID, 1)

	require.NoError(t, conn.Close())
	waitForConnections(t, hub, userID, 0)
}

func TestHub_CloseRejectsNewConnections(t *testing.T) {
	hub := NewHub(config.RealtimeConfig{}, zap.NewNop())
	userID := uuid.New()
	url := newTestServer(t, hub, userID)

	conn := dial(t, url)
	waitForConnections(t, hub, userID, 1)
	hub.Close()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err := conn.ReadMessage()
	assert.True(t, websocket.IsCloseError(err, websocket.CloseNormalClosure), "got %v", err)

	late := dial(t, url)
	require.NoError(t, late.SetReadDeadline(time.Now().Add(2*time.Second)))
	_, _, err = late.ReadMessage()
	assert.Error(t, err)
	assert.Zero(t, hub.Connections(userID))
}

func TestHub_CheckOrigin(t *testing.T) {
	hub := NewHub(config.RealtimeConfig{AllowedOrigins: []string{"https://app.example.com"}}, zap.NewNop())

	tests := []struct {
		origin string
		want   bool
	}{
		{"", true},
		{"https://app.example.com", true},
		{"http://api.example.com", true},
		{"https://evil.example.com", false},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "http://api.example.com/api/v1/ws", nil)
		if tt.origin != "" {
			r.Header.Set("Origin", tt.origin)
		}
		assert.Equal(t, tt.want, hub.checkOrigin(r), tt.origin)
	}
}
