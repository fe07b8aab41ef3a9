// Package catalog holds the curated food database users pick entries from.
package catalog

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/shared"
)

// Category groups foods for browsing
type Category string

const (
	CategoryFruits      Category = "fruits"
	CategoryVegetables  Category = "vegetables"
	CategoryGrains      Category = "grains"
	CategoryProteins    Category = "proteins"
	CategoryDairy       Category = "dairy"
	CategoryNutsSeeds   Category = "nuts_seeds"
	CategoryBeverages   Category = "beverages"
	CategorySnacks      Category = "snacks"
	CategoryFastFood    Category = "fast_food"
	CategoryDesserts    Category = "desserts"
	CategoryOilsFats    Category = "oils_fats"
	CategorySpicesHerbs Category = "spices_herbs"
	CategoryOther       Category = "other"
)

// Categories lists every category in display order
var Categories = []Category{
	CategoryFruits, CategoryVegetables, CategoryGrains, CategoryProteins,
	CategoryDairy, CategoryNutsSeeds, CategoryBeverages, CategorySnacks,
	CategoryFastFood, CategoryDesserts, CategoryOilsFats, CategorySpicesHerbs,
	CategoryOther,
}

// IsValid reports whether c is a known category
func (c Category) IsValid() bool {
	for _, k := range Categories {
		if c == k {
			return true
		}
	}
	return false
}

// ServingUnit is the unit a serving size is expressed in
type ServingUnit string

const (
	UnitGram       ServingUnit = "g"
	UnitMilliliter ServingUnit = "ml"
	UnitCup        ServingUnit = "cup"
	UnitPiece      ServingUnit = "piece"
	UnitSlice      ServingUnit = "slice"
	UnitTablespoon ServingUnit = "tbsp"
	UnitTeaspoon   ServingUnit = "tsp"
	UnitOunce      ServingUnit = "oz"
	UnitPound      ServingUnit = "lb"
)

// IsValid reports whether u is a known serving unit
func (u ServingUnit) IsValid() bool {
	switch u {
	case UnitGram, UnitMilliliter, UnitCup, UnitPiece, UnitSlice,
		UnitTablespoon, UnitTeaspoon, UnitOunce, UnitPound:
		return true
	}
	return false
}

const (
	maxNameLength        = 100
	maxBrandLength       = 50
	maxServingSizeLength = 20
	maxBarcodeLength     = 20
	maxDescriptionLength = 1000
	maxTags              = 10
	maxTagLength         = 30
	maxVerifyNotesLength = 500
)

// NutritionFacts are per 100g values
type NutritionFacts struct {
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fat          float64 `json:"fat"`
	Fiber        float64 `json:"fiber"`
	Sugar        float64 `json:"sugar"`
	Sodium       float64 `json:"sodium"`
	Cholesterol  float64 `json:"cholesterol"`
	SaturatedFat float64 `json:"saturated_fat"`
	TransFat     float64 `json:"trans_fat"`
}

func (n NutritionFacts) validate() error {
	checks := []struct {
		name  string
		value float64
		max   float64
	}{
		{"calories", n.Calories, 1000},
		{"protein", n.Protein, 100},
		{"carbs", n.Carbs, 100},
		{"fat", n.Fat, 100},
		{"fiber", n.Fiber, 50},
		{"sugar", n.Sugar, 100},
		{"sodium", n.Sodium, 5000},
		{"cholesterol", n.Cholesterol, 1000},
		{"saturated fat", n.SaturatedFat, 50},
		{"trans fat", n.TransFat, 10},
	}
	for _, c := range checks {
		if c.value < 0 {
			return shared.InvalidInput(fmt.Sprintf("%s per 100g cannot be negative", c.name))
		}
		if c.value > c.max {
			return shared.InvalidInput(fmt.Sprintf("%s per 100g cannot exceed %g", c.name, c.max))
		}
	}
	return nil
}

// Verification records who vouched for a food's data
type Verification struct {
	Verified   bool
	VerifiedBy *uuid.UUID
	VerifiedAt *time.Time
	Notes      string
}

// Food is a catalog item
type Food struct {
	shared.BaseAggregateRoot
	Name         string
	Brand        string
	Category     Category
	ServingSize  string
	ServingUnit  ServingUnit
	Nutrition    NutritionFacts
	IsPublic     bool
	Barcode      string
	Description  string
	Tags         []string
	UsageCount   int64
	Verification Verification
	AddedBy      uuid.UUID
}

// FoodInput carries the fields of a new food
type FoodInput struct {
	Name        string
	Brand       string
	Category    string
	ServingSize string
	ServingUnit string
	Nutrition   NutritionFacts
	IsPublic    *bool
	Barcode     string
	Description string
	Tags        []string
}

// FoodUpdate carries a partial edit; nil fields are left unchanged
type FoodUpdate struct {
	Name        *string
	Brand       *string
	Category    *string
	ServingSize *string
	ServingUnit *string
	Nutrition   *NutritionFacts
	IsPublic    *bool
	Barcode     *string
	Description *string
	Tags        []string
}

// NewFood validates input and creates a food added by addedBy
func NewFood(addedBy uuid.UUID, in FoodInput) (*Food, error) {
	if addedBy == uuid.Nil {
		return nil, shared.InvalidInput("Food must record who added it")
	}
	f := &Food{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		AddedBy:           addedBy,
		IsPublic:          true,
	}
	if in.IsPublic != nil {
		f.IsPublic = *in.IsPublic
	}
	f.Name = strings.TrimSpace(in.Name)
	f.Brand = strings.TrimSpace(in.Brand)
	f.Category = Category(strings.TrimSpace(in.Category))
	f.ServingSize = strings.TrimSpace(in.ServingSize)
	f.ServingUnit = ServingUnit(strings.TrimSpace(in.ServingUnit))
	if f.ServingUnit == "" {
		f.ServingUnit = UnitGram
	}
	f.Nutrition = in.Nutrition
	f.Barcode = strings.TrimSpace(in.Barcode)
	f.Description = strings.TrimSpace(in.Description)
	f.Tags = normalizeTags(in.Tags)

	if err := f.validate(); err != nil {
		return nil, err
	}
	f.AddDomainEvent(NewFoodAddedEvent(f))
	return f, nil
}

// Update applies a partial edit. The food is unchanged when validation fails.
func (f *Food) Update(u FoodUpdate) error {
	next := *f
	if u.Name != nil {
		next.Name = strings.TrimSpace(*u.Name)
	}
	if u.Brand != nil {
		next.Brand = strings.TrimSpace(*u.Brand)
	}
	if u.Category != nil {
		next.Category = Category(strings.TrimSpace(*u.Category))
	}
	if u.ServingSize != nil {
		next.ServingSize = strings.TrimSpace(*u.ServingSize)
	}
	if u.ServingUnit != nil {
		next.ServingUnit = ServingUnit(strings.TrimSpace(*u.ServingUnit))
	}
	if u.Nutrition != nil {
		next.Nutrition = *u.Nutrition
	}
	if u.IsPublic != nil {
		next.IsPublic = *u.IsPublic
	}
	if u.Barcode != nil {
		next.Barcode = strings.TrimSpace(*u.Barcode)
	}
	if u.Description != nil {
		next.Description = strings.TrimSpace(*u.Description)
	}
	if u.Tags != nil {
		next.Tags = normalizeTags(u.Tags)
	}
	if err := next.validate(); err != nil {
		return err
	}

	f.Name = next.Name
	f.Brand = next.Brand
	f.Category = next.Category
	f.ServingSize = next.ServingSize
	f.ServingUnit = next.ServingUnit
	f.Nutrition = next.Nutrition
	f.IsPublic = next.IsPublic
	f.Barcode = next.Barcode
	f.Description = next.Description
	f.Tags = next.Tags
	f.IncrementVersion()
	return nil
}

// Verify marks the food as checked by an admin
func (f *Food) Verify(by uuid.UUID, notes string) error {
	if utf8.RuneCountInString(notes) > maxVerifyNotesLength {
		return shared.InvalidInput("Verification notes cannot exceed 500 characters")
	}
	now := time.Now()
	f.Verification = Verification{
		Verified:   true,
		VerifiedBy: &by,
		VerifiedAt: &now,
		Notes:      strings.TrimSpace(notes),
	}
	f.IncrementVersion()
	return nil
}

// Unverify clears the verification, keeping the notes
func (f *Food) Unverify(notes string) error {
	if utf8.RuneCountInString(notes) > maxVerifyNotesLength {
		return shared.InvalidInput("Verification notes cannot exceed 500 characters")
	}
	f.Verification = Verification{Notes: strings.TrimSpace(notes)}
	f.IncrementVersion()
	return nil
}

// IncrementUsage counts one more entry logged against this food
func (f *Food) IncrementUsage() {
	f.UsageCount++
	f.Touch()
}

// IsListed reports whether regular users can find the food in search
func (f *Food) IsListed() bool {
	return f.IsPublic && f.Verification.Verified
}

// DisplayName prefixes the brand when there is one
func (f *Food) DisplayName() string {
	if f.Brand == "" {
		return f.Name
	}
	return f.Brand + " - " + f.Name
}

func (f *Food) validate() error {
	if f.Name == "" {
		return shared.NewDomainError("INVALID_NAME", "Food name is required")
	}
	if utf8.RuneCountInString(f.Name) > maxNameLength {
		return shared.NewDomainError("INVALID_NAME", "Food name cannot exceed 100 characters")
	}
	if utf8.RuneCountInString(f.Brand) > maxBrandLength {
		return shared.InvalidInput("Brand name cannot exceed 50 characters")
	}
	if !f.Category.IsValid() {
		return shared.NewDomainError("INVALID_CATEGORY", "Invalid food category")
	}
	if f.ServingSize == "" {
		return shared.InvalidInput("Serving size is required")
	}
	if utf8.RuneCountInString(f.ServingSize) > maxServingSizeLength {
		return shared.InvalidInput("Serving size cannot exceed 20 characters")
	}
	if !f.ServingUnit.IsValid() {
		return shared.InvalidInput("Invalid serving unit")
	}
	if err := f.Nutrition.validate(); err != nil {
		return err
	}
	if len(f.Barcode) > maxBarcodeLength {
		return shared.InvalidInput("Barcode cannot exceed 20 characters")
	}
	if utf8.RuneCountInString(f.Description) > maxDescriptionLength {
		return shared.InvalidInput("Description cannot exceed 1000 characters")
	}
	if len(f.Tags) > maxTags {
		return shared.InvalidInput("A food cannot have more than 10 tags")
	}
	for _, t := range f.Tags {
		if utf8.RuneCountInString(t) > maxTagLength {
			return shared.InvalidInput(fmt.Sprintf("Tag %q cannot exceed 30 characters", t))
		}
	}
	return nil
}

// normalizeTags trims, lowercases and drops empty or repeated tags
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
