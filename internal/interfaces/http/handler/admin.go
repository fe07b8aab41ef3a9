package handler

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/application/admin"
	"github.com/nutritrack/backend/internal/application/identity"
	"github.com/nutritrack/backend/internal/application/nutrition"
	domain "github.com/nutritrack/backend/internal/domain/nutrition"
	"github.com/nutritrack/backend/internal/domain/shared"
)

// UserAdministration manages accounts on behalf of an administrator
type UserAdministration interface {
	List(ctx context.Context, q identity.UserListQuery) (shared.Paginated[identity.UserResponse], error)
	Get(ctx context.Context, id uuid.UUID) (*identity.UserResponse, error)
	Update(ctx context.Context, actorID, id uuid.UUID, req identity.UpdateUserRequest) (*identity.UserResponse, error)
	Delete(ctx context.Context, actorID, id uuid.UUID) error
}

// Analytics answers the admin dashboards and exports
type Analytics interface {
	SystemStats(ctx context.Context, q admin.RangeQuery) (*admin.SystemStats, error)
	UserAnalytics(ctx context.Context, q admin.RangeQuery) (*admin.UserAnalytics, error)
	NutritionAnalytics(ctx context.Context, q admin.RangeQuery) (*admin.NutritionAnalytics, error)
	FoodAnalytics(ctx context.Context) (*admin.FoodAnalytics, error)
	ExportUsers(ctx context.Context, q admin.ExportQuery) (*admin.ExportResult, error)
}

// AdminHandler serves the administrator endpoints
type AdminHandler struct {
	BaseHandler
	users     UserAdministration
	goals     GoalUseCases
	analytics Analytics
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(users UserAdministration, goals GoalUseCases, analytics Analytics) *AdminHandler {
	return &AdminHandler{users: users, goals: goals, analytics: analytics}
}

// ListUsers godoc
// @Summary      List accounts
// @Tags         admin
// @Produce      json
// @Param        search    query string false "Username or email"
// @Param        role      query string false "user or admin"
// @Param        is_active query bool   false "Active filter"
// @Param        page      query int    false "Page" default(1)
// @Param        limit     query int    false "Page size" default(20)
// @Success      200 {object} APIResponse[[]identity.UserResponse]
// @Security     BearerAuth
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c *gin.Context) {
	var q identity.UserListQuery
	if !h.BindQuery(c, &q) {
		return
	}
	page, err := h.users.List(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Paginated(c, &page)
}

// GetUser godoc
// @Summary      Get an account
// @Tags         admin
// @Produce      json
// @Param        id path string true "User ID"
// @Success      200 {object} APIResponse[identity.UserResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/users/{id} [get]
func (h *AdminHandler) GetUser(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}
	user, err := h.users.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// UpdateUser godoc
// @Summary      Edit an account
// @Description  Role changes and deactivation revoke the user's tokens
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id      path string true "User ID"
// @Param        request body identity.UpdateUserRequest true "Changed fields"
// @Success      200 {object} APIResponse[identity.UserResponse]
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c *gin.Context) {
	actorID, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	id, ok := h.PathID(c)
	if !ok {
		return
	}
	var req identity.UpdateUserRequest
	if !h.BindJSON(c, &req) {
		return
	}
	user, err := h.users.Update(c.Request.Context(), actorID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, user)
}

// DeleteUser godoc
// @Summary      Delete an account
// @Tags         admin
// @Param        id path string true "User ID"
// @Success      204
// @Failure      422 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c *gin.Context) {
	actorID, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	id, ok := h.PathID(c)
	if !ok {
		return
	}
	if err := h.users.Delete(c.Request.Context(), actorID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// SetUserGoal godoc
// @Summary      Set a user's goal
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id      path string true "User ID"
// @Param        request body nutrition.SetGoalRequest true "Goal"
// @Success      200 {object} APIResponse[nutrition.GoalResponse]
// @Security     BearerAuth
// @Router       /admin/users/{id}/goals [put]
func (h *AdminHandler) SetUserGoal(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}
	var req nutrition.SetGoalRequest
	if !h.BindJSON(c, &req) {
		return
	}
	if _, err := h.users.Get(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	goal, err := h.goals.Set(c.Request.Context(), id, req, domain.GoalSetByAdmin)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, goal)
}

// SystemStats godoc
// @Summary      System wide counters
// @Tags         admin
// @Produce      json
// @Param        start_date query string false "Entry window start"
// @Param        end_date   query string false "Entry window end"
// @Success      200 {object} APIResponse[admin.SystemStats]
// @Security     BearerAuth
// @Router       /admin/stats/system [get]
func (h *AdminHandler) SystemStats(c *gin.Context) {
	rangeQuery(h, c, h.analytics.SystemStats)
}

// UserAnalytics godoc
// @Summary      Signups per day
// @Tags         admin
// @Produce      json
// @Param        start_date query string false "Window start"
// @Param        end_date   query string false "Window end"
// @Success      200 {object} APIResponse[admin.UserAnalytics]
// @Security     BearerAuth
// @Router       /admin/analytics/users [get]
func (h *AdminHandler) UserAnalytics(c *gin.Context) {
	rangeQuery(h, c, h.analytics.UserAnalytics)
}

// NutritionAnalytics godoc
// @Summary      Nutrition totals per day across all users
// @Tags         admin
// @Produce      json
// @Param        start_date query string false "Window start"
// @Param        end_date   query string false "Window end"
// @Success      200 {object} APIResponse[admin.NutritionAnalytics]
// @Security     BearerAuth
// @Router       /admin/analytics/nutrition [get]
func (h *AdminHandler) NutritionAnalytics(c *gin.Context) {
	rangeQuery(h, c, h.analytics.NutritionAnalytics)
}

func rangeQuery[T any](h *AdminHandler, c *gin.Context, fn func(context.Context, admin.RangeQuery) (*T, error)) {
	var q admin.RangeQuery
	if !h.BindQuery(c, &q) {
		return
	}
	out, err := fn(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, out)
}

// FoodAnalytics godoc
// @Summary      Catalog breakdown
// @Tags         admin
// @Produce      json
// @Success      200 {object} APIResponse[admin.FoodAnalytics]
// @Security     BearerAuth
// @Router       /admin/analytics/foods [get]
func (h *AdminHandler) FoodAnalytics(c *gin.Context) {
	out, err := h.analytics.FoodAnalytics(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, out)
}

// ExportUsers godoc
// @Summary      Export accounts
// @Description  json answers inline. csv and xlsx answer with a download link when storage is configured, otherwise with the file.
// @Tags         admin
// @Produce      json,text/csv,application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        format query string false "json, csv or xlsx" default(json)
// @Success      200 {object} APIResponse[admin.ExportResult]
// @Security     BearerAuth
// @Router       /admin/export/users [get]
func (h *AdminHandler) ExportUsers(c *gin.Context) {
	var q admin.ExportQuery
	if !h.BindQuery(c, &q) {
		return
	}
	result, err := h.analytics.ExportUsers(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if result.Format == admin.FormatJSON || result.Uploaded() {
		h.Success(c, result)
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(http.StatusOK, result.ContentType, result.Data)
}
