package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/catalog"
)

// NutritionFactsRequest carries per 100g values
type NutritionFactsRequest struct {
	Calories     float64 `json:"calories" binding:"gte=0,lte=1000"`
	Protein      float64 `json:"protein" binding:"gte=0,lte=100"`
	Carbs        float64 `json:"carbs" binding:"gte=0,lte=100"`
	Fat          float64 `json:"fat" binding:"gte=0,lte=100"`
	Fiber        float64 `json:"fiber" binding:"gte=0,lte=50"`
	Sugar        float64 `json:"sugar" binding:"gte=0,lte=100"`
	Sodium       float64 `json:"sodium" binding:"gte=0,lte=5000"`
	Cholesterol  float64 `json:"cholesterol" binding:"gte=0,lte=1000"`
	SaturatedFat float64 `json:"saturated_fat" binding:"gte=0,lte=50"`
	TransFat     float64 `json:"trans_fat" binding:"gte=0,lte=10"`
}

func (r NutritionFactsRequest) facts() catalog.NutritionFacts {
	return catalog.NutritionFacts(r)
}

// CreateFoodRequest represents a request to add a catalog food
type CreateFoodRequest struct {
	Name        string                `json:"name" binding:"required,min=1,max=100"`
	Brand       string                `json:"brand" binding:"max=50"`
	Category    string                `json:"category" binding:"required,foodcategory"`
	ServingSize string                `json:"serving_size" binding:"required,min=1,max=20"`
	ServingUnit string                `json:"serving_unit" binding:"omitempty,oneof=g ml cup piece slice tbsp tsp oz lb"`
	Nutrition   NutritionFactsRequest `json:"nutrition_per_100g" binding:"required"`
	IsPublic    *bool                 `json:"is_public"`
	Barcode     string                `json:"barcode" binding:"max=20"`
	Description string                `json:"description" binding:"max=1000"`
	Tags        []string              `json:"tags" binding:"max=10,dive,max=30"`
}

// UpdateFoodRequest represents a partial edit of a catalog food
type UpdateFoodRequest struct {
	Name        *string                `json:"name" binding:"omitempty,min=1,max=100"`
	Brand       *string                `json:"brand" binding:"omitempty,max=50"`
	Category    *string                `json:"category" binding:"omitempty,foodcategory"`
	ServingSize *string                `json:"serving_size" binding:"omitempty,min=1,max=20"`
	ServingUnit *string                `json:"serving_unit" binding:"omitempty,oneof=g ml cup piece slice tbsp tsp oz lb"`
	Nutrition   *NutritionFactsRequest `json:"nutrition_per_100g"`
	IsPublic    *bool                  `json:"is_public"`
	Barcode     *string                `json:"barcode" binding:"omitempty,max=20"`
	Description *string                `json:"description" binding:"omitempty,max=1000"`
	Tags        []string               `json:"tags" binding:"omitempty,max=10,dive,max=30"`
}

// VerifyFoodRequest sets the verification state of a food
type VerifyFoodRequest struct {
	Verified bool   `json:"is_verified"`
	Notes    string `json:"notes" binding:"max=500"`
}

// FoodListQuery filters the catalog listing
type FoodListQuery struct {
	Search     string `form:"search" binding:"max=100"`
	Category   string `form:"category" binding:"omitempty,foodcategory"`
	IsVerified *bool  `form:"is_verified"`
	IsPublic   *bool  `form:"is_public"`
	Page       int    `form:"page" binding:"omitempty,min=1"`
	Limit      int    `form:"limit" binding:"omitempty,min=1,max=50"`
}

// FoodResponse represents a food in API responses
type FoodResponse struct {
	ID                uuid.UUID              `json:"id"`
	Name              string                 `json:"name"`
	Brand             string                 `json:"brand,omitempty"`
	DisplayName       string                 `json:"display_name"`
	Category          catalog.Category       `json:"category"`
	ServingSize       string                 `json:"serving_size"`
	ServingUnit       catalog.ServingUnit    `json:"serving_unit"`
	Nutrition         catalog.NutritionFacts `json:"nutrition_per_100g"`
	IsPublic          bool                   `json:"is_public"`
	Barcode           string                 `json:"barcode,omitempty"`
	Description       string                 `json:"description,omitempty"`
	Tags              []string               `json:"tags"`
	UsageCount        int64                  `json:"usage_count"`
	IsVerified        bool                   `json:"is_verified"`
	VerifiedBy        *uuid.UUID             `json:"verified_by,omitempty"`
	VerifiedAt        *time.Time             `json:"verified_at,omitempty"`
	VerificationNotes string                 `json:"verification_notes,omitempty"`
	AddedBy           uuid.UUID              `json:"added_by"`
	CreatedAt         time.Time              `json:"created_at"`
	UpdatedAt         time.Time              `json:"updated_at"`
}

// ToFoodResponse converts a domain food
func ToFoodResponse(f *catalog.Food) FoodResponse {
	tags := f.Tags
	if tags == nil {
		tags = []string{}
	}
	return FoodResponse{
		ID:                f.ID,
		Name:              f.Name,
		Brand:             f.Brand,
		DisplayName:       f.DisplayName(),
		Category:          f.Category,
		ServingSize:       f.ServingSize,
		ServingUnit:       f.ServingUnit,
		Nutrition:         f.Nutrition,
		IsPublic:          f.IsPublic,
		Barcode:           f.Barcode,
		Description:       f.Description,
		Tags:              tags,
		UsageCount:        f.UsageCount,
		IsVerified:        f.Verification.Verified,
		VerifiedBy:        f.Verification.VerifiedBy,
		VerifiedAt:        f.Verification.VerifiedAt,
		VerificationNotes: f.Verification.Notes,
		AddedBy:           f.AddedBy,
		CreatedAt:         f.CreatedAt,
		UpdatedAt:         f.UpdatedAt,
	}
}

// ToFoodResponses converts a slice of domain foods
func ToFoodResponses(foods []*catalog.Food) []FoodResponse {
	out := make([]FoodResponse, len(foods))
	for i, f := range foods {
		out[i] = ToFoodResponse(f)
	}
	return out
}
