package nutrition

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/shared"
)

const (
	maxFoodItemLength = 100
	maxQuantityLength = 20
	maxNotesLength    = 500
)

// Entry is one logged food consumption event
type Entry struct {
	shared.BaseAggregateRoot
	UserID    uuid.UUID
	FoodItem  string
	Quantity  string
	Date      time.Time
	Nutrients Nutrients
	MealType  MealType
	FoodID    *uuid.UUID
	Notes     string
}

// EntryInput carries the user supplied fields of a new entry
type EntryInput struct {
	FoodItem  string
	Quantity  string
	Date      time.Time
	Nutrients Nutrients
	MealType  string
	FoodID    *uuid.UUID
	Notes     string
}

// EntryUpdate carries a partial edit; nil fields are left unchanged
type EntryUpdate struct {
	FoodItem  *string
	Quantity  *string
	Date      *time.Time
	Nutrients *Nutrients
	MealType  *string
	FoodID    *uuid.UUID
	Notes     *string
}

// NewEntry validates input and creates an entry owned by userID
func NewEntry(userID uuid.UUID, in EntryInput) (*Entry, error) {
	if userID == uuid.Nil {
		return nil, ErrMissingUser
	}
	if in.Date.IsZero() {
		return nil, ErrMissingDate
	}
	foodItem := strings.TrimSpace(in.FoodItem)
	if err := validateFoodItem(foodItem); err != nil {
		return nil, err
	}
	quantity := strings.TrimSpace(in.Quantity)
	if err := validateQuantity(quantity); err != nil {
		return nil, err
	}
	if err := in.Nutrients.validateWithin(entryCaps); err != nil {
		return nil, err
	}
	notes := strings.TrimSpace(in.Notes)
	if err := validateNotes(notes); err != nil {
		return nil, err
	}

	e := &Entry{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		UserID:            userID,
		FoodItem:          foodItem,
		Quantity:          quantity,
		Date:              in.Date,
		Nutrients:         in.Nutrients,
		MealType:          ParseMealType(in.MealType),
		FoodID:            in.FoodID,
		Notes:             notes,
	}
	e.AddDomainEvent(NewEntryAddedEvent(e))
	return e, nil
}

// Apply validates and applies a partial update.
// It returns the entry date as it was before the update.
func (e *Entry) Apply(u EntryUpdate) (time.Time, error) {
	previous := e.Date

	next := *e
	if u.FoodItem != nil {
		next.FoodItem = strings.TrimSpace(*u.FoodItem)
		if err := validateFoodItem(next.FoodItem); err != nil {
			return previous, err
		}
	}
	if u.Quantity != nil {
		next.Quantity = strings.TrimSpace(*u.Quantity)
		if err := validateQuantity(next.Quantity); err != nil {
			return previous, err
		}
	}
	if u.Date != nil {
		if u.Date.IsZero() {
			return previous, ErrMissingDate
		}
		next.Date = *u.Date
	}
	if u.Nutrients != nil {
		if err := u.Nutrients.validateWithin(entryCaps); err != nil {
			return previous, err
		}
		next.Nutrients = *u.Nutrients
	}
	if u.MealType != nil {
		next.MealType = ParseMealType(*u.MealType)
	}
	if u.FoodID != nil {
		id := *u.FoodID
		next.FoodID = &id
	}
	if u.Notes != nil {
		next.Notes = strings.TrimSpace(*u.Notes)
		if err := validateNotes(next.Notes); err != nil {
			return previous, err
		}
	}

	e.FoodItem = next.FoodItem
	e.Quantity = next.Quantity
	e.Date = next.Date
	e.Nutrients = next.Nutrients
	e.MealType = next.MealType
	e.FoodID = next.FoodID
	e.Notes = next.Notes
	e.IncrementVersion()
	e.AddDomainEvent(NewEntryUpdatedEvent(e, previous))
	return previous, nil
}

// MarkDeleted records the deletion event on the aggregate
func (e *Entry) MarkDeleted() {
	e.AddDomainEvent(NewEntryDeletedEvent(e))
}

// IsOwnedBy reports whether userID owns the entry
func (e *Entry) IsOwnedBy(userID uuid.UUID) bool {
	return e.UserID == userID
}

func validateFoodItem(s string) error {
	if s == "" {
		return shared.InvalidInput("Food item is required")
	}
	if utf8.RuneCountInString(s) > maxFoodItemLength {
		return shared.InvalidInput("Food item cannot exceed 100 characters")
	}
	return nil
}

func validateQuantity(s string) error {
	if s == "" {
		return shared.InvalidInput("Quantity is required")
	}
	if utf8.RuneCountInString(s) > maxQuantityLength {
		return shared.InvalidInput("Quantity cannot exceed 20 characters")
	}
	return nil
}

func validateNotes(s string) error {
	if utf8.RuneCountInString(s) > maxNotesLength {
		return shared.InvalidInput("Notes cannot exceed 500 characters")
	}
	return nil
}
