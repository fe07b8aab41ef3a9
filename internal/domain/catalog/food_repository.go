package catalog

import (
	"context"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/shared"
)

// Catalog errors
var (
	ErrFoodNotFound     = shared.NotFound("Food")
	ErrDuplicateBarcode = shared.NewDomainError(shared.ErrAlreadyExists.Code, "Food with this barcode already exists")
)

// Default and maximum result sizes for catalog queries
const (
	DefaultPageSize    = 20
	MaxPageSize        = 50
	MaxSearchResults   = 50
	DefaultPopularSize = 20
)

// FoodFilter narrows a catalog listing
type FoodFilter struct {
	shared.Filter
	Category   Category
	IsVerified *bool
	IsPublic   *bool
}

// CategoryStat aggregates the foods of one category
type CategoryStat struct {
	Category     Category `json:"category"`
	Count        int64    `json:"count"`
	AverageUsage float64  `json:"average_usage"`
}

// VerificationCounts splits the catalog by verification state
type VerificationCounts struct {
	Verified   int64 `json:"verified"`
	Unverified int64 `json:"unverified"`
}

// FoodRepository persists catalog foods
type FoodRepository interface {
	Create(ctx context.Context, food *Food) error
	Update(ctx context.Context, food *Food) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Food, error)

	// ExistsByBarcode ignores the food with excludeID so updates can keep their own barcode
	ExistsByBarcode(ctx context.Context, barcode string, excludeID uuid.UUID) (bool, error)

	// List returns one page ordered by usage desc then created desc
	List(ctx context.Context, filter FoodFilter) ([]*Food, int64, error)

	// Search matches name, brand, description or tags of listed foods,
	// ordered by usage desc then name
	Search(ctx context.Context, query string, limit int) ([]*Food, error)

	// Popular returns listed foods ordered by usage desc then created desc
	Popular(ctx context.Context, limit int) ([]*Food, error)

	// IncrementUsage bumps usage_count in place
	IncrementUsage(ctx context.Context, id uuid.UUID) error

	// CategoryStats groups foods by category, count desc.
	// listedOnly restricts to public verified foods.
	CategoryStats(ctx context.Context, listedOnly bool) ([]CategoryStat, error)

	VerificationCounts(ctx context.Context) (VerificationCounts, error)
	Count(ctx context.Context) (int64, error)
}
