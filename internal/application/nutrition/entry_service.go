package nutrition

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/nutrition"
	"github.com/nutritrack/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// Entry listing page sizes
const (
	DefaultEntryPageSize = 10
	MaxEntryPageSize     = 100
)

// FoodUsageCounter bumps the popularity of a catalog food
type FoodUsageCounter interface {
	IncrementUsage(ctx context.Context, id uuid.UUID) error
}

// EntryService handles the food log of a user. Every mutation recomputes
// the affected days through the roll-up engine before returning.
type EntryService struct {
	entries   nutrition.EntryRepository
	engine    *RollupEngine
	foods     FoodUsageCounter
	publisher shared.EventPublisher
	metrics   Metrics
	now       func() time.Time
	logger    *zap.Logger
}

// NewEntryService creates a new EntryService. foods and publisher may be nil.
func NewEntryService(
	entries nutrition.EntryRepository,
	engine *RollupEngine,
	foods FoodUsageCounter,
	publisher shared.EventPublisher,
	metrics Metrics,
	logger *zap.Logger,
) *EntryService {
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &EntryService{
		entries:   entries,
		engine:    engine,
		foods:     foods,
		publisher: publisher,
		metrics:   metrics,
		now:       time.Now,
		logger:    logger,
	}
}

// Create logs a new entry and recomputes its day
func (s *EntryService) Create(ctx context.Context, userID uuid.UUID, req CreateEntryRequest) (*EntryResponse, error) {
	date := s.now()
	if req.Date != "" {
		d, err := nutrition.ParseDate(req.Date, s.engine.Location())
		if err != nil {
			return nil, err
		}
		date = d
	}

	entry, err := nutrition.NewEntry(userID, nutrition.EntryInput{
		FoodItem:  req.FoodItem,
		Quantity:  req.Quantity,
		Date:      date,
		Nutrients: req.nutrients(),
		MealType:  req.MealType,
		FoodID:    req.FoodID,
		Notes:     req.Notes,
	})
	if err != nil {
		return nil, err
	}
	if err := s.entries.Save(ctx, entry); err != nil {
		return nil, err
	}
	if _, err := s.engine.Recompute(ctx, userID, entry.Date); err != nil {
		return nil, err
	}

	if entry.FoodID != nil && s.foods != nil {
		if err := s.foods.IncrementUsage(ctx, *entry.FoodID); err != nil {
			s.logger.Warn("Failed to increment food usage",
				zap.String("food_id", entry.FoodID.String()),
				zap.Error(err),
			)
		}
	}

	s.metrics.EntryLogged(ctx, string(entry.MealType))
	s.publishEvents(ctx, entry)

	resp := ToEntryResponse(entry)
	return &resp, nil
}

// List returns one page of the user's entries, newest first
func (s *EntryService) List(ctx context.Context, userID uuid.UUID, q ListEntriesQuery) (*shared.Paginated[EntryResponse], error) {
	filter := nutrition.EntryFilter{
		Filter: shared.Filter{Page: q.Page, PageSize: q.Limit}.Normalize(DefaultEntryPageSize, MaxEntryPageSize),
	}
	if q.MealType != "" {
		filter.MealType = nutrition.ParseMealType(q.MealType)
	}

	loc := s.engine.Location()
	switch {
	case q.Date != "":
		d, err := nutrition.ParseDate(q.Date, loc)
		if err != nil {
			return nil, err
		}
		day := nutrition.DayKey(d, loc)
		filter.From, filter.To = &day.Start, &day.End
	default:
		if q.StartDate != "" {
			d, err := nutrition.ParseDate(q.StartDate, loc)
			if err != nil {
				return nil, err
			}
			start := nutrition.DayKey(d, loc).Start
			filter.From = &start
		}
		if q.EndDate != "" {
			d, err := nutrition.ParseDate(q.EndDate, loc)
			if err != nil {
				return nil, err
			}
			end := nutrition.DayKey(d, loc).End
			filter.To = &end
		}
		if filter.From != nil && filter.To != nil && filter.From.After(*filter.To) {
			return nil, nutrition.ErrInvalidRange
		}
	}

	entries, total, err := s.entries.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}
	page := shared.NewPaginated(ToEntryResponses(entries), total, filter.Page, filter.PageSize)
	return &page, nil
}

// Get returns one of the user's entries
func (s *EntryService) Get(ctx context.Context, userID, id uuid.UUID) (*EntryResponse, error) {
	entry, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := ToEntryResponse(entry)
	return &resp, nil
}

// Update edits an entry and recomputes its old day, plus its new day when
// the edit moved it
func (s *EntryService) Update(ctx context.Context, userID, id uuid.UUID, req UpdateEntryRequest) (*EntryResponse, error) {
	entry, err := s.owned(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	update := nutrition.EntryUpdate{
		FoodItem:  req.FoodItem,
		Quantity:  req.Quantity,
		Nutrients: req.nutrients(entry.Nutrients),
		MealType:  req.MealType,
		FoodID:    req.FoodID,
		Notes:     req.Notes,
	}
	if req.Date != nil {
		d, err := nutrition.ParseDate(*req.Date, s.engine.Location())
		if err != nil {
			return nil, err
		}
		update.Date = &d
	}

	previous, err := entry.Apply(update)
	if err != nil {
		return nil, err
	}
	if err := s.entries.Save(ctx, entry); err != nil {
		return nil, err
	}

	if _, err := s.engine.Recompute(ctx, userID, previous); err != nil {
		return nil, err
	}
	if !nutrition.SameDay(previous, entry.Date, s.engine.Location()) {
		if _, err := s.engine.Recompute(ctx, userID, entry.Date); err != nil {
			return nil, err
		}
	}

	s.publishEvents(ctx, entry)
	resp := ToEntryResponse(entry)
	return &resp, nil
}

// Delete removes an entry and recomputes its day. The day's summary is
// kept, with zero totals when the entry was the last one.
func (s *EntryService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	entry, err := s.owned(ctx, userID, id)
	if err != nil {
		return err
	}
	if err := s.entries.Delete(ctx, entry.ID); err != nil {
		return err
	}
	if _, err := s.engine.Recompute(ctx, userID, entry.Date); err != nil {
		return err
	}
	entry.MarkDeleted()
	s.publishEvents(ctx, entry)
	return nil
}

// owned loads an entry and hides it from everyone but its owner
func (s *EntryService) owned(ctx context.Context, userID, id uuid.UUID) (*nutrition.Entry, error) {
	entry, err := s.entries.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, nutrition.ErrEntryNotFound
		}
		return nil, err
	}
	if !entry.IsOwnedBy(userID) {
		return nil, nutrition.ErrEntryNotFound
	}
	return entry, nil
}

func (s *EntryService) publishEvents(ctx context.Context, entry *nutrition.Entry) {
	events := entry.PullDomainEvents()
	if s.publisher == nil || len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish entry events", zap.Error(err))
	}
}
