package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/application/catalog"
	domain "github.com/nutritrack/backend/internal/domain/catalog"
	"github.com/nutritrack/backend/internal/domain/shared"
)

// FoodUseCases is the food catalog
type FoodUseCases interface {
	Create(ctx context.Context, adminID uuid.UUID, req catalog.CreateFoodRequest) (*catalog.FoodResponse, error)
	List(ctx context.Context, q catalog.FoodListQuery) (*shared.Paginated[catalog.FoodResponse], error)
	Get(ctx context.Context, id uuid.UUID) (*catalog.FoodResponse, error)
	Update(ctx context.Context, id uuid.UUID, req catalog.UpdateFoodRequest) (*catalog.FoodResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Search(ctx context.Context, query string, limit int) ([]catalog.FoodResponse, error)
	Popular(ctx context.Context, limit int) ([]catalog.FoodResponse, error)
	Categories(ctx context.Context) ([]domain.CategoryStat, error)
	SetVerification(ctx context.Context, adminID, id uuid.UUID, req catalog.VerifyFoodRequest) (*catalog.FoodResponse, error)
}

// SearchQuery is a free text catalog lookup
type SearchQuery struct {
	Q     string `form:"q" binding:"required,min=1,max=100"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=50"`
}

// LimitQuery caps a short list
type LimitQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=50"`
}

// FoodHandler serves the food catalog
type FoodHandler struct {
	BaseHandler
	foods FoodUseCases
}

// NewFoodHandler creates a new FoodHandler
func NewFoodHandler(foods FoodUseCases) *FoodHandler {
	return &FoodHandler{foods: foods}
}

// Search godoc
// @Summary      Search public verified foods
// @Tags         foods
// @Produce      json
// @Param        q     query string true  "Matches name, brand, description or tags"
// @Param        limit query int    false "Max results" default(50)
// @Success      200 {object} APIResponse[[]catalog.FoodResponse]
// @Router       /foods/search [get]
func (h *FoodHandler) Search(c *gin.Context) {
	var q SearchQuery
	if !h.BindQuery(c, &q) {
		return
	}
	foods, err := h.foods.Search(c.Request.Context(), q.Q, q.Limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, foods)
}

// Popular godoc
// @Summary      Most used foods
// @Tags         foods
// @Produce      json
// @Param        limit query int false "Max results" default(20)
// @Success      200 {object} APIResponse[[]catalog.FoodResponse]
// @Router       /foods/popular [get]
func (h *FoodHandler) Popular(c *gin.Context) {
	var q LimitQuery
	if !h.BindQuery(c, &q) {
		return
	}
	foods, err := h.foods.Popular(c.Request.Context(), q.Limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, foods)
}

// Categories godoc
// @Summary      Categories with food counts
// @Tags         foods
// @Produce      json
// @Success      200 {object} APIResponse[[]domain.CategoryStat]
// @Router       /foods/categories [get]
func (h *FoodHandler) Categories(c *gin.Context) {
	stats, err := h.foods.Categories(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, stats)
}

// List godoc
// @Summary      List foods
// @Tags         foods
// @Produce      json
// @Param        search      query string false "Free text"
// @Param        category    query string false "Category"
// @Param        is_verified query bool   false "Verification filter"
// @Param        is_public   query bool   false "Visibility filter"
// @Param        page        query int    false "Page" default(1)
// @Param        limit       query int    false "Page size" default(20)
// @Success      200 {object} APIResponse[[]catalog.FoodResponse]
// @Security     BearerAuth
// @Router       /foods [get]
func (h *FoodHandler) List(c *gin.Context) {
	var q catalog.FoodListQuery
	if !h.BindQuery(c, &q) {
		return
	}
	page, err := h.foods.List(c.Request.Context(), q)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	Paginated(c, page)
}

// Get godoc
// @Summary      Get a food
// @Tags         foods
// @Produce      json
// @Param        id path string true "Food ID"
// @Success      200 {object} APIResponse[catalog.FoodResponse]
// @Failure      404 {object} ErrorResponse
// @Router       /foods/{id} [get]
func (h *FoodHandler) Get(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}
	food, err := h.foods.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, food)
}

// Create godoc
// @Summary      Add a food (admin)
// @Tags         foods
// @Accept       json
// @Produce      json
// @Param        request body catalog.CreateFoodRequest true "Food"
// @Success      201 {object} APIResponse[catalog.FoodResponse]
// @Failure      409 {object} ErrorResponse
// @Security     BearerAuth
// @Router       /foods [post]
func (h *FoodHandler) Create(c *gin.Context) {
	adminID, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	var req catalog.CreateFoodRequest
	if !h.BindJSON(c, &req) {
		return
	}
	food, err := h.foods.Create(c.Request.Context(), adminID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, food)
}

// Update godoc
// @Summary      Update a food (admin)
// @Tags         foods
// @Accept       json
// @Produce      json
// @Param        id      path string true "Food ID"
// @Param        request body catalog.UpdateFoodRequest true "Changed fields"
// @Success      200 {object} APIResponse[catalog.FoodResponse]
// @Security     BearerAuth
// @Router       /foods/{id} [put]
func (h *FoodHandler) Update(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}
	var req catalog.UpdateFoodRequest
	if !h.BindJSON(c, &req) {
		return
	}
	food, err := h.foods.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, food)
}

// Delete godoc
// @Summary      Delete a food (admin)
// @Tags         foods
// @Param        id path string true "Food ID"
// @Success      204
// @Security     BearerAuth
// @Router       /foods/{id} [delete]
func (h *FoodHandler) Delete(c *gin.Context) {
	id, ok := h.PathID(c)
	if !ok {
		return
	}
	if err := h.foods.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Verify godoc
// @Summary      Verify or unverify a food (admin)
// @Tags         foods
// @Accept       json
// @Produce      json
// @Param        id      path string true "Food ID"
// @Param        request body catalog.VerifyFoodRequest true "Verification"
// @Success      200 {object} APIResponse[catalog.FoodResponse]
// @Security     BearerAuth
// @Router       /foods/{id}/verify [patch]
func (h *FoodHandler) Verify(c *gin.Context) {
	adminID, ok := h.CurrentUser(c)
	if !ok {
		return
	}
	id, ok := h.PathID(c)
	if !ok {
		return
	}
	var req catalog.VerifyFoodRequest
	if !h.BindJSON(c, &req) {
		return
	}
	food, err := h.foods.SetVerification(c.Request.Context(), adminID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, food)
}
