package nutrition

import (
	"time"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/shared"
)

// Aggregate type constants
const (
	AggregateTypeEntry   = "NutritionEntry"
	AggregateTypeGoal    = "NutritionGoal"
	AggregateTypeSummary = "DailySummary"
)

// Event type constants
const (
	EventTypeEntryAdded        = "NutritionEntryAdded"
	EventTypeEntryUpdated      = "NutritionEntryUpdated"
	EventTypeEntryDeleted      = "NutritionEntryDeleted"
	EventTypeGoalUpdated       = "NutritionGoalUpdated"
	EventTypeSummaryRecomputed = "DailySummaryRecomputed"
)

// EntryAddedEvent is published after an entry is logged
type EntryAddedEvent struct {
	shared.BaseDomainEvent
	EntryID  uuid.UUID  `json:"entry_id"`
	UserID   uuid.UUID  `json:"user_id"`
	FoodItem string     `json:"food_item"`
	MealType MealType   `json:"meal_type"`
	FoodID   *uuid.UUID `json:"food_id,omitempty"`
	Date     time.Time  `json:"date"`
}

// NewEntryAddedEvent creates a new EntryAddedEvent
func NewEntryAddedEvent(e *Entry) *EntryAddedEvent {
	return &EntryAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeEntryAdded, AggregateTypeEntry, e.ID, e.UserID),
		EntryID:         e.ID,
		UserID:          e.UserID,
		FoodItem:        e.FoodItem,
		MealType:        e.MealType,
		FoodID:          e.FoodID,
		Date:            e.Date,
	}
}

// EntryUpdatedEvent is published after an entry is edited
type EntryUpdatedEvent struct {
	shared.BaseDomainEvent
	EntryID      uuid.UUID `json:"entry_id"`
	UserID       uuid.UUID `json:"user_id"`
	FoodItem     string    `json:"food_item"`
	Date         time.Time `json:"date"`
	PreviousDate time.Time `json:"previous_date"`
}

// NewEntryUpdatedEvent creates a new EntryUpdatedEvent
func NewEntryUpdatedEvent(e *Entry, previousDate time.Time) *EntryUpdatedEvent {
	return &EntryUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeEntryUpdated, AggregateTypeEntry, e.ID, e.UserID),
		EntryID:         e.ID,
		UserID:          e.UserID,
		FoodItem:        e.FoodItem,
		Date:            e.Date,
		PreviousDate:    previousDate,
	}
}

// EntryDeletedEvent is published after an entry is removed
type EntryDeletedEvent struct {
	shared.BaseDomainEvent
	EntryID  uuid.UUID `json:"entry_id"`
	UserID   uuid.UUID `json:"user_id"`
	FoodItem string    `json:"food_item"`
	Date     time.Time `json:"date"`
}

// NewEntryDeletedEvent creates a new EntryDeletedEvent
func NewEntryDeletedEvent(e *Entry) *EntryDeletedEvent {
	return &EntryDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeEntryDeleted, AggregateTypeEntry, e.ID, e.UserID),
		EntryID:         e.ID,
		UserID:          e.UserID,
		FoodItem:        e.FoodItem,
		Date:            e.Date,
	}
}

// GoalUpdatedEvent is published when a goal is created or replaced
type GoalUpdatedEvent struct {
	shared.BaseDomainEvent
	GoalID  uuid.UUID  `json:"goal_id"`
	UserID  uuid.UUID  `json:"user_id"`
	Targets Nutrients  `json:"targets"`
	SetBy   GoalSource `json:"set_by"`
}

// NewGoalUpdatedEvent creates a new GoalUpdatedEvent
func NewGoalUpdatedEvent(g *Goal) *GoalUpdatedEvent {
	return &GoalUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeGoalUpdated, AggregateTypeGoal, g.ID, g.UserID),
		GoalID:          g.ID,
		UserID:          g.UserID,
		Targets:         g.Targets,
		SetBy:           g.SetBy,
	}
}

// SummaryRecomputedEvent is published after a summary upsert lands
type SummaryRecomputedEvent struct {
	shared.BaseDomainEvent
	Summary *Summary `json:"summary"`
}

// NewSummaryRecomputedEvent creates a new SummaryRecomputedEvent
func NewSummaryRecomputedEvent(s *Summary) *SummaryRecomputedEvent {
	return &SummaryRecomputedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSummaryRecomputed, AggregateTypeSummary, s.ID, s.UserID),
		Summary:         s,
	}
}
