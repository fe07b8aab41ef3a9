package nutrition

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/nutrition"
	"github.com/nutritrack/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// MockEntryRepository is a mock implementation of nutrition.EntryRepository
type MockEntryRepository struct {
	mock.Mock
}

func (m *MockEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*nutrition.Entry, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nutrition.Entry), args.Error(1)
}

func (m *MockEntryRepository) FindByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*nutrition.Entry, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*nutrition.Entry), args.Error(1)
}

func (m *MockEntryRepository) List(ctx context.Context, userID uuid.UUID, filter nutrition.EntryFilter) ([]*nutrition.Entry, int64, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]*nutrition.Entry), args.Get(1).(int64), args.Error(2)
}

func (m *MockEntryRepository) SumByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (nutrition.PeriodTotals, error) {
	args := m.Called(ctx, userID, from, to)
	return args.Get(0).(nutrition.PeriodTotals), args.Error(1)
}

func (m *MockEntryRepository) Save(ctx context.Context, entry *nutrition.Entry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

// MockGoalRepository is a mock implementation of nutrition.GoalRepository
type MockGoalRepository struct {
	mock.Mock
}

func (m *MockGoalRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*nutrition.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nutrition.Goal), args.Error(1)
}

func (m *MockGoalRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*nutrition.Goal, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nutrition.Goal), args.Error(1)
}

func (m *MockGoalRepository) Save(ctx context.Context, goal *nutrition.Goal) error {
	return m.Called(ctx, goal).Error(0)
}

// MockSummaryRepository is a mock implementation of nutrition.SummaryRepository.
// Upsert echoes its argument unless the expectation returns a summary.
type MockSummaryRepository struct {
	mock.Mock
}

func (m *MockSummaryRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*nutrition.Summary, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*nutrition.Summary), args.Error(1)
}

func (m *MockSummaryRepository) FindByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*nutrition.Summary, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*nutrition.Summary), args.Error(1)
}

func (m *MockSummaryRepository) Upsert(ctx context.Context, summary *nutrition.Summary) (*nutrition.Summary, error) {
	args := m.Called(ctx, summary)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	if stored, ok := args.Get(0).(*nutrition.Summary); ok {
		return stored, nil
	}
	return summary, nil
}

// MockPublisher is a mock implementation of shared.EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Publish(ctx context.Context, events ...shared.DomainEvent) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

// MockMetrics is a mock implementation of Metrics
type MockMetrics struct {
	mock.Mock
}

func (m *MockMetrics) EntryLogged(ctx context.Context, mealType string) {
	m.Called(ctx, mealType)
}

func (m *MockMetrics) Recomputed(ctx context.Context, d time.Duration, failed bool) {
	m.Called(ctx, d, failed)
}

// MockFoodUsageCounter is a mock implementation of FoodUsageCounter
type MockFoodUsageCounter struct {
	mock.Mock
}

func (m *MockFoodUsageCounter) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func eventTypes(events []shared.DomainEvent) []string {
	out := make([]string, len(events))
	for i, e := range events {
		out[i] = e.EventType()
	}
	return out
}

func publishedTypes(m *MockPublisher) []string {
	var out []string
	for _, call := range m.Calls {
		if call.Method == "Publish" {
			out = append(out, eventTypes(call.Arguments.Get(1).([]shared.DomainEvent))...)
		}
	}
	return out
}
