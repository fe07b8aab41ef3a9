// Package activity records what users did, for their feed and for admins.
package activity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/shared"
)

// Type classifies an activity
type Type string

const (
	TypeEntryAdded     Type = "nutrition_entry_added"
	TypeEntryUpdated   Type = "nutrition_entry_updated"
	TypeEntryDeleted   Type = "nutrition_entry_deleted"
	TypeGoalUpdated    Type = "goal_updated"
	TypeProfileUpdated Type = "profile_updated"
	TypeFoodAdded      Type = "food_added"
	TypeLogin          Type = "login"
	TypeLogout         Type = "logout"
)

// IsValid reports whether t is a known activity type
func (t Type) IsValid() bool {
	switch t {
	case TypeEntryAdded, TypeEntryUpdated, TypeEntryDeleted, TypeGoalUpdated,
		TypeProfileUpdated, TypeFoodAdded, TypeLogin, TypeLogout:
		return true
	}
	return false
}

// Activity is an append-only feed record
type Activity struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Type        Type
	Description string
	Metadata    map[string]any
	IPAddress   string
	UserAgent   string
	CreatedAt   time.Time
}

// New validates and creates an activity
func New(userID uuid.UUID, typ Type, description string, metadata map[string]any) (*Activity, error) {
	if userID == uuid.Nil {
		return nil, shared.InvalidInput("Activity requires a user")
	}
	if !typ.IsValid() {
		return nil, shared.InvalidInput("Unknown activity type: " + string(typ))
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, shared.InvalidInput("Activity description is required")
	}
	if metadata == nil {
		metadata = map[string]any{}
	}
	return &Activity{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        typ,
		Description: description,
		Metadata:    metadata,
		CreatedAt:   time.Now(),
	}, nil
}

// Filter narrows the activity feed
type Filter struct {
	shared.Filter
	Type Type
}

// Repository persists activities
type Repository interface {
	Create(ctx context.Context, a *Activity) error
	// ListByUser returns newest first plus the total count
	ListByUser(ctx context.Context, userID uuid.UUID, filter Filter) ([]*Activity, int64, error)
	// CountUsersSince counts distinct users with any activity at or after since
	CountUsersSince(ctx context.Context, since time.Time) (int64, error)
}
