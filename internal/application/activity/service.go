package activity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/activity"
	"github.com/nutritrack/backend/internal/domain/shared"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// ListQuery filters the activity feed
type ListQuery struct {
	Type  string `form:"type" binding:"omitempty,oneof=nutrition_entry_added nutrition_entry_updated nutrition_entry_deleted goal_updated profile_updated food_added login logout"`
	Page  int    `form:"page" binding:"omitempty,min=1"`
	Limit int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

// Response represents one feed item
type Response struct {
	ID          uuid.UUID      `json:"id"`
	Type        activity.Type  `json:"type"`
	Description string         `json:"description"`
	Metadata    map[string]any `json:"metadata"`
	IPAddress   string         `json:"ip_address,omitempty"`
	UserAgent   string         `json:"user_agent,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// ToResponse converts a domain activity
func ToResponse(a *activity.Activity) Response {
	return Response{
		ID:          a.ID,
		Type:        a.Type,
		Description: a.Description,
		Metadata:    a.Metadata,
		IPAddress:   a.IPAddress,
		UserAgent:   a.UserAgent,
		CreatedAt:   a.CreatedAt,
	}
}

// Service reads the activity feed
type Service struct {
	activities activity.Repository
}

// NewService creates a new Service
func NewService(activities activity.Repository) *Service {
	return &Service{activities: activities}
}

// List returns the user's activities, newest first
func (s *Service) List(ctx context.Context, userID uuid.UUID, q ListQuery) (shared.Paginated[Response], error) {
	filter := activity.Filter{
		Filter: shared.Filter{Page: q.Page, PageSize: q.Limit}.Normalize(DefaultPageSize, MaxPageSize),
		Type:   activity.Type(q.Type),
	}

	items, total, err := s.activities.ListByUser(ctx, userID, filter)
	if err != nil {
		return shared.Paginated[Response]{}, err
	}
	out := make([]Response, len(items))
	for i, a := range items {
		out[i] = ToResponse(a)
	}
	return shared.NewPaginated(out, total, filter.Page, filter.PageSize), nil
}
