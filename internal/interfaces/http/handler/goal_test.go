package handler

import (
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/application/nutrition"
	domain "github.com/nutritrack/backend/internal/domain/nutrition"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGoalHandler(t *testing.T) {
	userID := uuid.New()
	svc := new(mockGoals)
	h := NewGoalHandler(svc)
	r := newEngine(userID)
	r.GET("/nutrition/goals", h.Get)
	r.PUT("/nutrition/goals", h.Set)

	t.Run("get", func(t *testing.T) {
		svc.On("Get", mock.Anything, userID).Return(&nutrition.GoalResponse{UserID: userID, DailyCalories: 2000, SetBy: domain.GoalSetByUser}, nil).Once()

		w := perform(t, r, http.MethodGet, "/nutrition/goals", nil)

		require.Equal(t, http.StatusOK, w.Code)
		got := decodeData[nutrition.GoalResponse](t, w)
		assert.InDelta(t, 2000, got.DailyCalories, 0.001)
	})

	t.Run("set marks the caller as source", func(t *testing.T) {
		req := nutrition.SetGoalRequest{DailyCalories: 1800, DailyProtein: 120, DailyCarbs: 200, DailyFat: 60}
		svc.On("Set", mock.Anything, userID, req, domain.GoalSetByUser).
			Return(&nutrition.GoalResponse{DailyCalories: 1800, SetBy: domain.GoalSetByUser}, nil).Once()

		w := perform(t, r, http.MethodPut, "/nutrition/goals", req)

		assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
	})

	t.Run("out of range calories", func(t *testing.T) {
		w := perform(t, r, http.MethodPut, "/nutrition/goals", map[string]any{"daily_calories": 100})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	svc.AssertExpectations(t)
}
