package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/application/nutrition"
	"github.com/nutritrack/backend/internal/domain/shared"
)

// EntryUseCases is what NutritionHandler needs for entry CRUD
type EntryUseCases interface {
	Create(ctx context.Context, userID uuid.UUID, req nutrition.CreateEntryRequest) (*nutrition.EntryResponse, error)
	List(ctx context.Context, userID uuid.UUID, q nutrition.ListEntriesQuery) (*shared.Paginated[nutrition.EntryResponse], error)
	Get(ctx context.Context, userID, id uuid.UUID) (*nutrition.EntryResponse, error)
	Update(ctx context.Context, userID, id uuid.UUID, req nutrition.UpdateEntryRequest) (*nutrition.EntryResponse, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// NutritionHandler serves the user's food log
type NutritionHandler struct {
	BaseHandler
	entries EntryUseCases
}

// NewNutritionHandler creates a new NutritionHandler
func NewNutritionHandler(entries EntryUseCases) *NutritionHandler {
	return &NutritionHandler{entries: entries}
}

// Create godoc
// @Summary      Log a food entry
// @Description  Saves the entry and recomputes the summary of its day
// @Tags         nutrition
// @Accept       json
// @Produce      json
// @Param        request body nutrition.CreateEntryRequest true "Entry"
// @Success      201 {object} APIResponse[nutrition.EntryResponse]
// @Failure      400 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /nutrition [post]
func (h *NutritionHandler) Create(c *gin.Context) {
	userID, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	var req nutrition.CreateEntryRequest
	if !h.BindJSON(c, &req) {
		return
	}
	entry, err := h.entries.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, entry)
}

// List godoc
// @Summary      List food entries
// @Tags         nutrition
// @Produce      json
// @Param        date        query string false "Single day, YYYY-MM-DD"
// @Param        start_date  query string false "Window start"
// @Param        end_date    query string false "Window end"
// @Param        meal_type   query string false "breakfast, lunch, dinner or snack"
// @Param        page        query int    false "Page" default(1)
// @Param        limit       query int    false "Page size" default(10)
// @Success      200 {object} APIResponse[[]nutrition.EntryResponse]
// @Security     BearerAuth
// @Router       /nutrition [get]
func (h *NutritionHandler) List(c *gin.Context) {
	userID, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	var q nutrition.ListEntriesQuery
	if !h.BindQuery(c, &q) {
		return
	}
	page, err := h.entries.List(c.Request.Context(), userID, q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Paginated(c, page)
}

// Get godoc
// @Summary      Get a food entry
// @Tags         nutrition
// @Produce      json
// @Param        id path string true "Entry ID"
// @Success      200 {object} APIResponse[nutrition.EntryResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /nutrition/{id} [get]
func (h *NutritionHandler) Get(c *gin.Context) {
	userID, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	id, ok := h.PathID(c)
	if !ok {
		return
	}
	entry, err := h.entries.Get(c.Request.Context(), userID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entry)
}

// Update godoc
// @Summary      Update a food entry
// @Description  Recomputes the old day and, when the date moved, the new day
// @Tags         nutrition
// @Accept       json
// @Produce      json
// @Param        id      path string true "Entry ID"
// @Param        request body nutrition.UpdateEntryRequest true "Changed fields"
// @Success      200 {object} APIResponse[nutrition.EntryResponse]
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /nutrition/{id} [put]
func (h *NutritionHandler) Update(c *gin.Context) {
	userID, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	id, ok := h.PathID(c)
	if !ok {
		return
	}
	var req nutrition.UpdateEntryRequest
	if !h.BindJSON(c, &req) {
		return
	}
	entry, err := h.entries.Update(c.Request.Context(), userID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, entry)
}

// Delete godoc
// @Summary      Delete a food entry
// @Tags         nutrition
// @Param        id path string true "Entry ID"
// @Success      204
// @Failure      404 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /nutrition/{id} [delete]
func (h *NutritionHandler) Delete(c *gin.Context) {
	userID, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	id, ok := h.PathID(c)
	if !ok {
		return
	}
	if err := h.entries.Delete(c.Request.Context(), userID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
