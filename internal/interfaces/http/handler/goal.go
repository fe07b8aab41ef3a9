package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/application/nutrition"
	domain "github.com/nutritrack/backend/internal/domain/nutrition"
)

// GoalUseCases reads and replaces a user's goal
type GoalUseCases interface {
	Get(ctx context.Context, userID uuid.UUID) (*nutrition.GoalResponse, error)
	Set(ctx context.Context, userID uuid.UUID, req nutrition.SetGoalRequest, setBy domain.GoalSource) (*nutrition.GoalResponse, error)
}

// GoalHandler serves the caller's own goal
type GoalHandler struct {
	BaseHandler
	goals GoalUseCases
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goals GoalUseCases) *GoalHandler {
	return &GoalHandler{goals: goals}
}

// Get godoc
// @Summary      Active goal
// @Tags         goals
// @Produce      json
// @Success      200 {object} APIResponse[nutrition.GoalResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /goals [get]
func (h *GoalHandler) Get(c *gin.Context) {
	userID, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	goal, err := h.goals.Get(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, goal)
}

// Set godoc
// @Summary      Set or replace the goal
// @Description  With calculate=true the targets are derived from the profile fields
// @Tags         goals
// @Accept       json
// @Produce      json
// @Param        request body nutrition.SetGoalRequest true "Goal"
// @Success      200 {object} APIResponse[nutrition.GoalResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /goals [put]
func (h *GoalHandler) Set(c *gin.Context) {
	userID, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	var req nutrition.SetGoalRequest
	if !h.BindJSON(c, &req) {
		return
	}
	goal, err := h.goals.Set(c.Request.Context(), userID, req, domain.GoalSetByUser)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, goal)
}
