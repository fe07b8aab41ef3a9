package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/application/activity"
	"github.com/nutritrack/backend/internal/domain/shared"
)

// ActivityFeed lists a user's recent actions
type ActivityFeed interface {
	List(ctx context.Context, userID uuid.UUID, q activity.ListQuery) (shared.Paginated[activity.Response], error)
}

// ActivityHandler serves the caller's activity feed
type ActivityHandler struct {
	BaseHandler
	feed ActivityFeed
}

// NewActivityHandler creates a new ActivityHandler
func NewActivityHandler(feed ActivityFeed) *ActivityHandler {
	return &ActivityHandler{feed: feed}
}

// List godoc
// @Summary      Recent activity
// @Tags         activities
// @Produce      json
// @Param        type  query string false "Activity type"
// @Param        page  query int    false "Page" default(1)
// @Param        limit query int    false "Page size" default(20)
// @Success      200 {object} APIResponse[[]activity.Response]
// @Security     BearerAuth
// @Router       /activities [get]
func (h *ActivityHandler) List(c *gin.Context) {
	userID, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	var q activity.ListQuery
	if !h.BindQuery(c, &q) {
		return
	}
	page, err := h.feed.List(c.Request.Context(), userID, q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Paginated(c, &page)
}
