package handler

import (
	"context"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/application/activity"
	"github.com/nutritrack/backend/internal/application/admin"
	"github.com/nutritrack/backend/internal/application/catalog"
	"github.com/nutritrack/backend/internal/application/identity"
	"github.com/nutritrack/backend/internal/application/nutrition"
	domaincatalog "github.com/nutritrack/backend/internal/domain/catalog"
	domain "github.com/nutritrack/backend/internal/domain/nutrition"
	"github.com/nutritrack/backend/internal/domain/shared"
	"github.com/stretchr/testify/mock"
)

// ptr returns the first mock return as *T, nil when unset
func ptr[T any](args mock.Arguments) *T {
	if v := args.Get(0); v != nil {
		return v.(*T)
	}
	return nil
}

type mockAuth struct{ mock.Mock }

func (m *mockAuth) Register(ctx context.Context, req identity.RegisterRequest, client identity.ClientInfo) (*identity.AuthResponse, error) {
	args := m.Called(ctx, req, client)
	return ptr[identity.AuthResponse](args), args.Error(1)
}

func (m *mockAuth) Login(ctx context.Context, req identity.LoginRequest, client identity.ClientInfo) (*identity.AuthResponse, error) {
	args := m.Called(ctx, req, client)
	return ptr[identity.AuthResponse](args), args.Error(1)
}

func (m *mockAuth) Refresh(ctx context.Context, req identity.RefreshRequest) (*identity.AuthResponse, error) {
	args := m.Called(ctx, req)
	return ptr[identity.AuthResponse](args), args.Error(1)
}

func (m *mockAuth) Logout(ctx context.Context, in identity.LogoutInput) error {
	return m.Called(ctx, in).Error(0)
}

func (m *mockAuth) Me(ctx context.Context, userID uuid.UUID) (*identity.UserResponse, error) {
	args := m.Called(ctx, userID)
	return ptr[identity.UserResponse](args), args.Error(1)
}

type mockEntries struct{ mock.Mock }

func (m *mockEntries) Create(ctx context.Context, userID uuid.UUID, req nutrition.CreateEntryRequest) (*nutrition.EntryResponse, error) {
	args := m.Called(ctx, userID, req)
	return ptr[nutrition.EntryResponse](args), args.Error(1)
}

func (m *mockEntries) List(ctx context.Context, userID uuid.UUID, q nutrition.ListEntriesQuery) (*shared.Paginated[nutrition.EntryResponse], error) {
	args := m.Called(ctx, userID, q)
	return ptr[shared.Paginated[nutrition.EntryResponse]](args), args.Error(1)
}

func (m *mockEntries) Get(ctx context.Context, userID, id uuid.UUID) (*nutrition.EntryResponse, error) {
	args := m.Called(ctx, userID, id)
	return ptr[nutrition.EntryResponse](args), args.Error(1)
}

func (m *mockEntries) Update(ctx context.Context, userID, id uuid.UUID, req nutrition.UpdateEntryRequest) (*nutrition.EntryResponse, error) {
	args := m.Called(ctx, userID, id, req)
	return ptr[nutrition.EntryResponse](args), args.Error(1)
}

func (m *mockEntries) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return m.Called(ctx, userID, id).Error(0)
}

type mockReports struct{ mock.Mock }

func (m *mockReports) DailySummary(ctx context.Context, userID uuid.UUID, date string) (*nutrition.SummaryResponse, error) {
	args := m.Called(ctx, userID, date)
	return ptr[nutrition.SummaryResponse](args), args.Error(1)
}

func (m *mockReports) RecomputeDaily(ctx context.Context, userID uuid.UUID, date string) (*nutrition.SummaryResponse, error) {
	args := m.Called(ctx, userID, date)
	return ptr[nutrition.SummaryResponse](args), args.Error(1)
}

func (m *mockReports) GoalsProgress(ctx context.Context, userID uuid.UUID, date string) (*nutrition.ProgressResponse, error) {
	args := m.Called(ctx, userID, date)
	return ptr[nutrition.ProgressResponse](args), args.Error(1)
}

func (m *mockReports) Report(ctx context.Context, userID uuid.UUID, q nutrition.ReportQuery) (*nutrition.ReportResponse, error) {
	args := m.Called(ctx, userID, q)
	return ptr[nutrition.ReportResponse](args), args.Error(1)
}

func (m *mockReports) ReportPDF(ctx context.Context, userID uuid.UUID, q nutrition.ReportQuery) ([]byte, error) {
	args := m.Called(ctx, userID, q)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}

func (m *mockReports) Chart(ctx context.Context, userID uuid.UUID, q nutrition.ChartQuery) (*nutrition.ChartResponse, error) {
	args := m.Called(ctx, userID, q)
	return ptr[nutrition.ChartResponse](args), args.Error(1)
}

func (m *mockReports) StatsOverview(ctx context.Context, userID uuid.UUID, q nutrition.StatsQuery) (*nutrition.StatsOverview, error) {
	args := m.Called(ctx, userID, q)
	return ptr[nutrition.StatsOverview](args), args.Error(1)
}

type mockGoals struct{ mock.Mock }

func (m *mockGoals) Get(ctx context.Context, userID uuid.UUID) (*nutrition.GoalResponse, error) {
	args := m.Called(ctx, userID)
	return ptr[nutrition.GoalResponse](args), args.Error(1)
}

func (m *mockGoals) Set(ctx context.Context, userID uuid.UUID, req nutrition.SetGoalRequest, setBy domain.GoalSource) (*nutrition.GoalResponse, error) {
	args := m.Called(ctx, userID, req, setBy)
	return ptr[nutrition.GoalResponse](args), args.Error(1)
}

type mockFoods struct{ mock.Mock }

func (m *mockFoods) Create(ctx context.Context, adminID uuid.UUID, req catalog.CreateFoodRequest) (*catalog.FoodResponse, error) {
	args := m.Called(ctx, adminID, req)
	return ptr[catalog.FoodResponse](args), args.Error(1)
}

func (m *mockFoods) List(ctx context.Context, q catalog.FoodListQuery) (*shared.Paginated[catalog.FoodResponse], error) {
	args := m.Called(ctx, q)
	return ptr[shared.Paginated[catalog.FoodResponse]](args), args.Error(1)
}

func (m *mockFoods) Get(ctx context.Context, id uuid.UUID) (*catalog.FoodResponse, error) {
	args := m.Called(ctx, id)
	return ptr[catalog.FoodResponse](args), args.Error(1)
}

func (m *mockFoods) Update(ctx context.Context, id uuid.UUID, req catalog.UpdateFoodRequest) (*catalog.FoodResponse, error) {
	args := m.Called(ctx, id, req)
	return ptr[catalog.FoodResponse](args), args.Error(1)
}

func (m *mockFoods) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockFoods) Search(ctx context.Context, query string, limit int) ([]catalog.FoodResponse, error) {
	args := m.Called(ctx, query, limit)
	out, _ := args.Get(0).([]catalog.FoodResponse)
	return out, args.Error(1)
}

func (m *mockFoods) Popular(ctx context.Context, limit int) ([]catalog.FoodResponse, error) {
	args := m.Called(ctx, limit)
	out, _ := args.Get(0).([]catalog.FoodResponse)
	return out, args.Error(1)
}

func (m *mockFoods) Categories(ctx context.Context) ([]domaincatalog.CategoryStat, error) {
	args := m.Called(ctx)
	out, _ := args.Get(0).([]domaincatalog.CategoryStat)
	return out, args.Error(1)
}

func (m *mockFoods) SetVerification(ctx context.Context, adminID, id uuid.UUID, req catalog.VerifyFoodRequest) (*catalog.FoodResponse, error) {
	args := m.Called(ctx, adminID, id, req)
	return ptr[catalog.FoodResponse](args), args.Error(1)
}

type mockUsers struct{ mock.Mock }

func (m *mockUsers) List(ctx context.Context, q identity.UserListQuery) (shared.Paginated[identity.UserResponse], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(shared.Paginated[identity.UserResponse]), args.Error(1)
}

func (m *mockUsers) Get(ctx context.Context, id uuid.UUID) (*identity.UserResponse, error) {
	args := m.Called(ctx, id)
	return ptr[identity.UserResponse](args), args.Error(1)
}

func (m *mockUsers) Update(ctx context.Context, actorID, id uuid.UUID, req identity.UpdateUserRequest) (*identity.UserResponse, error) {
	args := m.Called(ctx, actorID, id, req)
	return ptr[identity.UserResponse](args), args.Error(1)
}

func (m *mockUsers) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	return m.Called(ctx, actorID, id).Error(0)
}

type mockAnalytics struct{ mock.Mock }

func (m *mockAnalytics) SystemStats(ctx context.Context, q admin.RangeQuery) (*admin.SystemStats, error) {
	args := m.Called(ctx, q)
	return ptr[admin.SystemStats](args), args.Error(1)
}

func (m *mockAnalytics) UserAnalytics(ctx context.Context, q admin.RangeQuery) (*admin.UserAnalytics, error) {
	args := m.Called(ctx, q)
	return ptr[admin.UserAnalytics](args), args.Error(1)
}

func (m *mockAnalytics) NutritionAnalytics(ctx context.Context, q admin.RangeQuery) (*admin.NutritionAnalytics, error) {
	args := m.Called(ctx, q)
	return ptr[admin.NutritionAnalytics](args), args.Error(1)
}

func (m *mockAnalytics) FoodAnalytics(ctx context.Context) (*admin.FoodAnalytics, error) {
	args := m.Called(ctx)
	return ptr[admin.FoodAnalytics](args), args.Error(1)
}

func (m *mockAnalytics) ExportUsers(ctx context.Context, q admin.ExportQuery) (*admin.ExportResult, error) {
	args := m.Called(ctx, q)
	return ptr[admin.ExportResult](args), args.Error(1)
}

type mockFeed struct{ mock.Mock }

func (m *mockFeed) List(ctx context.Context, userID uuid.UUID, q activity.ListQuery) (shared.Paginated[activity.Response], error) {
	args := m.Called(ctx, userID, q)
	return args.Get(0).(shared.Paginated[activity.Response]), args.Error(1)
}
