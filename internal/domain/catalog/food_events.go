package catalog

import (
	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/shared"
)

// Aggregate type constant for Food
const AggregateTypeFood = "Food"

// Food domain event types
const (
	EventTypeFoodAdded = "FoodAdded"
)

// FoodAddedEvent is published when a food enters the catalog
type FoodAddedEvent struct {
	shared.BaseDomainEvent
	FoodID   uuid.UUID `json:"food_id"`
	Name     string    `json:"name"`
	Category Category  `json:"category"`
}

// NewFoodAddedEvent creates a new FoodAddedEvent
func NewFoodAddedEvent(f *Food) *FoodAddedEvent {
	return &FoodAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeFoodAdded, AggregateTypeFood, f.ID, f.AddedBy),
		FoodID:          f.ID,
		Name:            f.Name,
		Category:        f.Category,
	}
}
