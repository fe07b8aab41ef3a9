// Package activity builds the per-user activity feed from domain events
package activity

import (
	"context"
	"fmt"
	"time"

	"github.com/nutritrack/backend/internal/domain/activity"
	"github.com/nutritrack/backend/internal/domain/catalog"
	"github.com/nutritrack/backend/internal/domain/identity"
	"github.com/nutritrack/backend/internal/domain/nutrition"
	"github.com/nutritrack/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Recorder turns user-facing domain events into activity rows
type Recorder struct {
	activities activity.Repository
	logger     *zap.Logger
}

// NewRecorder creates a new Recorder
func NewRecorder(activities activity.Repository, logger *zap.Logger) *Recorder {
	return &Recorder{activities: activities, logger: logger.Named("activity_recorder")}
}

// EventTypes implements shared.EventHandler
func (r *Recorder) EventTypes() []string {
	return []string{
		nutrition.EventTypeEntryAdded,
		nutrition.EventTypeEntryUpdated,
		nutrition.EventTypeEntryDeleted,
		nutrition.EventTypeGoalUpdated,
		identity.EventTypeUserUpdated,
		identity.EventTypeUserLoggedIn,
		identity.EventTypeUserLoggedOut,
		catalog.EventTypeFoodAdded,
	}
}

// Handle implements shared.EventHandler. Events it does not know are ignored.
func (r *Recorder) Handle(ctx context.Context, evt shared.DomainEvent) error {
	a, err := r.toActivity(evt)
	if err != nil {
		return err
	}
	if a == nil {
		return nil
	}
	if err := r.activities.Create(ctx, a); err != nil {
		return fmt.Errorf("record %s activity: %w", a.Type, err)
	}
	return nil
}

func (r *Recorder) toActivity(evt shared.DomainEvent) (*activity.Activity, error) {
	meta := map[string]any{"event_id": evt.EventID().String()}

	switch e := evt.(type) {
	case *nutrition.EntryAddedEvent:
		meta["entry_id"] = e.EntryID.String()
		meta["meal_type"] = string(e.MealType)
		meta["date"] = e.Date.Format(time.DateOnly)
		if e.FoodID != nil {
			meta["food_id"] = e.FoodID.String()
		}
		return activity.New(e.UserID, activity.TypeEntryAdded,
			fmt.Sprintf("Added %s to %s", e.FoodItem, e.MealType), meta)

	case *nutrition.EntryUpdatedEvent:
		meta["entry_id"] = e.EntryID.String()
		meta["date"] = e.Date.Format(time.DateOnly)
		return activity.New(e.UserID, activity.TypeEntryUpdated,
			fmt.Sprintf("Updated %s", e.FoodItem), meta)

	case *nutrition.EntryDeletedEvent:
		meta["entry_id"] = e.EntryID.String()
		meta["date"] = e.Date.Format(time.DateOnly)
		return activity.New(e.UserID, activity.TypeEntryDeleted,
			fmt.Sprintf("Deleted %s", e.FoodItem), meta)

	case *nutrition.GoalUpdatedEvent:
		meta["goal_id"] = e.GoalID.String()
		meta["set_by"] = string(e.SetBy)
		meta["calories"] = e.Targets.Calories
		return activity.New(e.UserID, activity.TypeGoalUpdated, "Updated nutrition goals", meta)

	case *identity.UserUpdatedEvent:
		meta["fields"] = e.Fields
		meta["actor_id"] = e.ActorID().String()
		return activity.New(e.AggregateID(), activity.TypeProfileUpdated, "Profile updated", meta)

	case *identity.UserSessionEvent:
		typ, desc := activity.TypeLogin, "Logged in"
		if e.EventType() == identity.EventTypeUserLoggedOut {
			typ, desc = activity.TypeLogout, "Logged out"
		}
		a, err := activity.New(e.AggregateID(), typ, desc, meta)
		if err != nil {
			return nil, err
		}
		a.IPAddress = e.IP
		a.UserAgent = e.UserAgent
		return a, nil

	case *catalog.FoodAddedEvent:
		meta["food_id"] = e.FoodID.String()
		meta["category"] = string(e.Category)
		return activity.New(e.ActorID(), activity.TypeFoodAdded,
			fmt.Sprintf("Added %s to the food catalog", e.Name), meta)
	}

	r.logger.Debug("No activity mapping for event", zap.String("event_type", evt.EventType()))
	return nil, nil
}

var _ shared.EventHandler = (*Recorder)(nil)
