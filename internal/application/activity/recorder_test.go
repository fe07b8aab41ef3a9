package activity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/activity"
	"github.com/nutritrack/backend/internal/domain/catalog"
	"github.com/nutritrack/backend/internal/domain/identity"
	"github.com/nutritrack/backend/internal/domain/nutrition"
	"github.com/nutritrack/backend/internal/domain/shared"
	"github.com/nutritrack/backend/internal/infrastructure/cache"
	"github.com/nutritrack/backend/internal/infrastructure/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockActivityRepository is a mock implementation of activity.Repository
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) Create(ctx context.Context, a *activity.Activity) error {
	return m.Called(ctx, a).Error(0)
}

func (m *MockActivityRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter activity.Filter) ([]*activity.Activity, int64, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]*activity.Activity), args.Get(1).(int64), args.Error(2)
}

func (m *MockActivityRepository) CountUsersSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockActivityRepository) created() []*activity.Activity {
	var out []*activity.Activity
	for _, call := range m.Calls {
		if call.Method == "Create" {
			out = append(out, call.Arguments.Get(1).(*activity.Activity))
		}
	}
	return out
}

func newEntry(t *testing.T, userID uuid.UUID) *nutrition.Entry {
	t.Helper()
	e, err := nutrition.NewEntry(userID, nutrition.EntryInput{
		FoodItem:  "Oatmeal",
		Quantity:  "1 bowl",
		Date:      time.Date(2024, 3, 10, 8, 0, 0, 0, time.UTC),
		Nutrients: nutrition.Nutrients{Calories: 300},
		MealType:  "breakfast",
	})
	require.NoError(t, err)
	return e
}

func TestRecorder_Handle(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	entry := newEntry(t, userID)

	user, err := identity.NewUser("sam_k", "sam@example.com", "password123", identity.RoleUser)
	require.NoError(t, err)
	login := identity.NewUserLoggedInEvent(user)
	login.IP = "192.168.1.4"
	login.UserAgent = "curl/8"

	food, err := catalog.NewFood(userID, catalog.FoodInput{Name: "Quinoa", Category: "grains", ServingSize: "100"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		event    shared.DomainEvent
		wantUser uuid.UUID
		wantType activity.Type
		wantDesc string
	}{
		{"entry added", nutrition.NewEntryAddedEvent(entry), userID, activity.TypeEntryAdded, "Added Oatmeal to breakfast"},
		{"entry updated", nutrition.NewEntryUpdatedEvent(entry, entry.Date), userID, activity.TypeEntryUpdated, "Updated Oatmeal"},
		{"entry deleted", nutrition.NewEntryDeletedEvent(entry), userID, activity.TypeEntryDeleted, "Deleted Oatmeal"},
		{"login", login, user.ID, activity.TypeLogin, "Logged in"},
		{"logout", identity.NewUserLoggedOutEvent(user), user.ID, activity.TypeLogout, "Logged out"},
		{"profile", identity.NewUserUpdatedEvent(user, uuid.New(), []string{"email"}), user.ID, activity.TypeProfileUpdated, "Profile updated"},
		{"food added", catalog.NewFoodAddedEvent(food), userID, activity.TypeFoodAdded, "Added Quinoa to the food catalog"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockActivityRepository)
			repo.On("Create", ctx, mock.Anything).Return(nil)

			require.NoError(t, NewRecorder(repo, zap.NewNop()).Handle(ctx, tt.event))

			created := repo.created()
			require.Len(t, created, 1)
			assert.Equal(t, tt.wantUser, created[0].UserID)
			assert.Equal(t, tt.wantType, created[0].Type)
			assert.Equal(t, tt.wantDesc, created[0].Description)
			assert.Equal(t, tt.event.EventID().String(), created[0].Metadata["event_id"])
		})
	}

	t.Run("login keeps client details", func(t *testing.T) {
		repo := new(MockActivityRepository)
		repo.On("Create", ctx, mock.Anything).Return(nil)

		require.NoError(t, NewRecorder(repo, zap.NewNop()).Handle(ctx, login))

		a := repo.created()[0]
		assert.Equal(t, "192.168.1.4", a.IPAddress)
		assert.Equal(t, "curl/8", a.UserAgent)
	})

	t.Run("unmapped events are ignored", func(t *testing.T) {
		repo := new(MockActivityRepository)
		summary := &nutrition.Summary{UserID: userID}

		require.NoError(t, NewRecorder(repo, zap.NewNop()).Handle(ctx, nutrition.NewSummaryRecomputedEvent(summary)))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("store failure is returned", func(t *testing.T) {
		repo := new(MockActivityRepository)
		repo.On("Create", ctx, mock.Anything).Return(errors.New("db down"))

		err := NewRecorder(repo, zap.NewNop()).Handle(ctx, nutrition.NewEntryAddedEvent(entry))
		assert.ErrorContains(t, err, "db down")
	})
}

func TestRecorder_RedeliveredEventsRecordOnce(t *testing.T) {
	ctx := context.Background()
	repo := new(MockActivityRepository)
	repo.On("Create", ctx, mock.Anything).Return(nil)

	store := cache.NewInMemoryIdempotencyStore(time.Minute)
	t.Cleanup(func() { _ = store.Close() })
	handler := event.NewIdempotentHandler(NewRecorder(repo, zap.NewNop()), store, shared.DefaultIdempotencyConfig(), zap.NewNop())

	evt := nutrition.NewEntryAddedEvent(newEntry(t, uuid.New()))
	require.NoError(t, handler.Handle(ctx, evt))
	require.NoError(t, handler.Handle(ctx, evt))

	assert.Len(t, repo.created(), 1)
	assert.Equal(t, int64(1), handler.Stats().Duplicate)
}

func TestService_List(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	repo := new(MockActivityRepository)
	a, err := activity.New(userID, activity.TypeLogin, "Logged in", nil)
	require.NoError(t, err)

	repo.On("ListByUser", ctx, userID, mock.MatchedBy(func(f activity.Filter) bool {
		return f.Page == 2 && f.PageSize == DefaultPageSize && f.Type == activity.TypeLogin
	})).Return([]*activity.Activity{a}, int64(21), nil)

	page, err := NewService(repo).List(ctx, userID, ListQuery{Type: "login", Page: 2})

	require.NoError(t, err)
	assert.Equal(t, 2, page.TotalPages)
	assert.False(t, page.HasNext)
	require.Len(t, page.Items, 1)
	assert.Equal(t, activity.TypeLogin, page.Items[0].Type)
}
