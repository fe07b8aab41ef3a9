package testutil

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	shared.BaseDomainEvent
}

func newTestEvent(eventType string) *testEvent {
	return &testEvent{BaseDomainEvent: shared.NewBaseDomainEvent(eventType, "Test", uuid.New(), uuid.New())}
}

func TestNewTestUUID_IsStable(t *testing.T) {
	assert.Equal(t, NewTestUUID("user"), NewTestUUID("user"))
	assert.NotEqual(t, NewTestUUID("user"), NewTestUUID("other"))
}

func TestRecordingHandler(t *testing.T) {
	h := NewRecordingHandler("A", "B")
	assert.Equal(t, []string{"A", "B"}, h.EventTypes())

	require.NoError(t, h.Handle(context.Background(), newTestEvent("A")))
	require.NoError(t, h.Handle(context.Background(), newTestEvent("B")))
	require.NoError(t, h.Handle(context.Background(), newTestEvent("A")))

	assert.Equal(t, 2, h.Count("A"))
	assert.Equal(t, 3, h.Count(""))
	assert.Len(t, h.Handled(), 3)

	h.SetError(assert.AnError)
	assert.ErrorIs(t, h.Handle(context.Background(), newTestEvent("A")), assert.AnError)

	h.Reset()
	assert.Zero(t, h.Count(""))
	assert.NoError(t, h.Handle(context.Background(), newTestEvent("A")))
}

func TestWaitForCondition(t *testing.T) {
	var n atomic.Int32
	go func() {
		time.Sleep(20 * time.Millisecond)
		n.Store(1)
	}()
	RequireEventually(t, func() bool { return n.Load() == 1 }, time.Second)

	assert.False(t, WaitForCondition(func() bool { return false }, 20*time.Millisecond, 5*time.Millisecond))
}

func TestAPIClient(t *testing.T) {
	engine := gin.New()
	engine.POST("/echo", func(c *gin.Context) {
		var body map[string]string
		if err := c.ShouldBindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": gin.H{"code": "ERR_VALIDATION", "message": err.Error()}})
			return
		}
		body["auth"] = c.GetHeader("Authorization")
		c.JSON(http.StatusOK, gin.H{"success": true, "data": body})
	})

	client := NewAPIClient(t, engine).WithToken("abc")
	env := client.JSON(http.MethodPost, "/echo", map[string]string{"hello": "world"}, http.StatusOK)
	assert.True(t, env.Success)
	assert.Empty(t, env.ErrorCode())

	data := DecodeData[map[string]string](t, env)
	assert.Equal(t, "world", data["hello"])
	assert.Equal(t, "Bearer abc", data["auth"])

	w := NewAPIClient(t, engine).Do(http.MethodPost, "/echo", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
