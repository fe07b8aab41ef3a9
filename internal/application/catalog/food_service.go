// Package catalog implements the food catalog use cases
package catalog

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/catalog"
	"github.com/nutritrack/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Verification note recorded on foods added by an administrator
const adminAddedNote = "Added by administrator"

// FoodService handles catalog operations
type FoodService struct {
	foods     catalog.FoodRepository
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewFoodService creates a new FoodService
func NewFoodService(foods catalog.FoodRepository, publisher shared.EventPublisher, logger *zap.Logger) *FoodService {
	return &FoodService{foods: foods, publisher: publisher, logger: logger}
}

// Create adds a food. Foods added by an administrator start out verified.
func (s *FoodService) Create(ctx context.Context, adminID uuid.UUID, req CreateFoodRequest) (*FoodResponse, error) {
	if err := s.checkBarcode(ctx, req.Barcode, uuid.Nil); err != nil {
		return nil, err
	}

	food, err := catalog.NewFood(adminID, catalog.FoodInput{
		Name:        req.Name,
		Brand:       req.Brand,
		Category:    req.Category,
		ServingSize: req.ServingSize,
		ServingUnit: req.ServingUnit,
		Nutrition:   req.Nutrition.facts(),
		IsPublic:    req.IsPublic,
		Barcode:     req.Barcode,
		Description: req.Description,
		Tags:        req.Tags,
	})
	if err != nil {
		return nil, err
	}
	if err := food.Verify(adminID, adminAddedNote); err != nil {
		return nil, err
	}
	if err := s.foods.Create(ctx, food); err != nil {
		return nil, err
	}

	s.publish(ctx, food)
	s.logger.Info("Food added to catalog",
		zap.String("food_id", food.ID.String()),
		zap.String("name", food.Name),
	)
	resp := ToFoodResponse(food)
	return &resp, nil
}

// List returns one page of the catalog
func (s *FoodService) List(ctx context.Context, q FoodListQuery) (*shared.Paginated[FoodResponse], error) {
	filter := catalog.FoodFilter{
		Filter:     shared.Filter{Page: q.Page, PageSize: q.Limit, Search: strings.TrimSpace(q.Search)}.Normalize(catalog.DefaultPageSize, catalog.MaxPageSize),
		Category:   catalog.Category(q.Category),
		IsVerified: q.IsVerified,
		IsPublic:   q.IsPublic,
	}
	foods, total, err := s.foods.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(ToFoodResponses(foods), total, filter.Page, filter.PageSize)
	return &page, nil
}

// Get returns one food
func (s *FoodService) Get(ctx context.Context, id uuid.UUID) (*FoodResponse, error) {
	food, err := s.foods.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToFoodResponse(food)
	return &resp, nil
}

// Update edits a food
func (s *FoodService) Update(ctx context.Context, id uuid.UUID, req UpdateFoodRequest) (*FoodResponse, error) {
	food, err := s.foods.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Barcode != nil {
		if err := s.checkBarcode(ctx, *req.Barcode, id); err != nil {
			return nil, err
		}
	}

	update := catalog.FoodUpdate{
		Name:        req.Name,
		Brand:       req.Brand,
		Category:    req.Category,
		ServingSize: req.ServingSize,
		ServingUnit: req.ServingUnit,
		IsPublic:    req.IsPublic,
		Barcode:     req.Barcode,
		Description: req.Description,
		Tags:        req.Tags,
	}
	if req.Nutrition != nil {
		facts := req.Nutrition.facts()
		update.Nutrition = &facts
	}
	if err := food.Update(update); err != nil {
		return nil, err
	}
	if err := s.foods.Update(ctx, food); err != nil {
		return nil, err
	}
	resp := ToFoodResponse(food)
	return &resp, nil
}

// Delete removes a food. Entries that referenced it keep their copied values.
func (s *FoodService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.foods.FindByID(ctx, id); err != nil {
		return err
	}
	return s.foods.Delete(ctx, id)
}

// Search matches public verified foods by name, brand, description or tag
func (s *FoodService) Search(ctx context.Context, query string, limit int) ([]FoodResponse, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, shared.InvalidInput("Search query is required")
	}
	if limit <= 0 || limit > catalog.MaxSearchResults {
		limit = catalog.MaxSearchResults
	}
	foods, err := s.foods.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return ToFoodResponses(foods), nil
}

// Popular returns the most used public verified foods
func (s *FoodService) Popular(ctx context.Context, limit int) ([]FoodResponse, error) {
	if limit <= 0 {
		limit = catalog.DefaultPopularSize
	}
	limit = min(limit, catalog.MaxPageSize)
	foods, err := s.foods.Popular(ctx, limit)
	if err != nil {
		return nil, err
	}
	return ToFoodResponses(foods), nil
}

// Categories lists every category with its count of listed foods,
// including empty ones, busiest first
func (s *FoodService) Categories(ctx context.Context) ([]catalog.CategoryStat, error) {
	stats, err := s.foods.CategoryStats(ctx, true)
	if err != nil {
		return nil, err
	}
	seen := make(map[catalog.Category]bool, len(stats))
	for _, st := range stats {
		seen[st.Category] = true
	}
	for _, c := range catalog.Categories {
		if !seen[c] {
			stats = append(stats, catalog.CategoryStat{Category: c})
		}
	}
	return stats, nil
}

// SetVerification verifies or unverifies a food
func (s *FoodService) SetVerification(ctx context.Context, adminID, id uuid.UUID, req VerifyFoodRequest) (*FoodResponse, error) {
	food, err := s.foods.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.Verified {
		err = food.Verify(adminID, req.Notes)
	} else {
		err = food.Unverify(req.Notes)
	}
	if err != nil {
		return nil, err
	}
	if err := s.foods.Update(ctx, food); err != nil {
		return nil, err
	}
	resp := ToFoodResponse(food)
	return &resp, nil
}

// IncrementUsage bumps the usage count of a food picked for an entry
func (s *FoodService) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	return s.foods.IncrementUsage(ctx, id)
}

func (s *FoodService) checkBarcode(ctx context.Context, barcode string, excludeID uuid.UUID) error {
	barcode = strings.TrimSpace(barcode)
	if barcode == "" {
		return nil
	}
	exists, err := s.foods.ExistsByBarcode(ctx, barcode, excludeID)
	if err != nil {
		return err
	}
	if exists {
		return catalog.ErrDuplicateBarcode
	}
	return nil
}

func (s *FoodService) publish(ctx context.Context, food *catalog.Food) {
	events := food.PullDomainEvents()
	if s.publisher == nil || len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish food events", zap.Error(err))
	}
}
