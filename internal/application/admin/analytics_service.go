// Package admin implements the administrator dashboard: system statistics,
// analytics and data export.
package admin

import (
	"context"
	"fmt"
	"time"

	"github.com/nutritrack/backend/internal/domain/activity"
	"github.com/nutritrack/backend/internal/domain/catalog"
	"github.com/nutritrack/backend/internal/domain/identity"
	"github.com/nutritrack/backend/internal/domain/nutrition"
	"github.com/nutritrack/backend/internal/domain/report"
	"github.com/nutritrack/backend/internal/domain/shared"
	"go.uber.org/zap"
)

const (
	popularFoodCount = 10
	exportBatchSize  = 500
	exportPrefix     = "exports/"
)

// ExportStorage stores export files and hands out time limited links
type ExportStorage interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) error
	GenerateDownloadURL(ctx context.Context, key string, expiresIn time.Duration) (string, time.Time, error)
}

// AnalyticsService answers the admin dashboard queries
type AnalyticsService struct {
	users      identity.UserRepository
	foods      catalog.FoodRepository
	activities activity.Repository
	analytics  report.AnalyticsRepository
	storage    ExportStorage
	logger     *zap.Logger
	loc        *time.Location
	now        func() time.Time
}

// Option configures an AnalyticsService
type Option func(*AnalyticsService)

// WithExportStorage uploads CSV and XLSX exports instead of streaming them
func WithExportStorage(storage ExportStorage) Option {
	return func(s *AnalyticsService) { s.storage = storage }
}

// WithLocation sets the timezone that "today" and "this month" refer to
func WithLocation(loc *time.Location) Option {
	return func(s *AnalyticsService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(
	users identity.UserRepository,
	foods catalog.FoodRepository,
	activities activity.Repository,
	analytics report.AnalyticsRepository,
	logger *zap.Logger,
	opts ...Option,
) *AnalyticsService {
	s := &AnalyticsService{
		users:      users,
		foods:      foods,
		activities: activities,
		analytics:  analytics,
		logger:     logger,
		loc:        time.UTC,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SystemStats counts users, foods and entries. The entry count honours the
// optional range; the other counts are global.
func (s *AnalyticsService) SystemStats(ctx context.Context, q RangeQuery) (*SystemStats, error) {
	rng, err := s.parseRange(q)
	if err != nil {
		return nil, err
	}
	now := s.now().In(s.loc)
	today := nutrition.DayKey(now, s.loc).Start
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, s.loc)

	stats := &SystemStats{GeneratedAt: now}
	if stats.TotalUsers, err = s.users.Count(ctx, time.Time{}, time.Time{}); err != nil {
		return nil, err
	}
	if stats.TotalFoods, err = s.foods.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalEntries, err = s.analytics.CountEntries(ctx, rng); err != nil {
		return nil, err
	}
	if stats.NewUsersThisMonth, err = s.users.Count(ctx, monthStart, time.Time{}); err != nil {
		return nil, err
	}
	if stats.ActiveUsersToday, err = s.activities.CountUsersSince(ctx, today); err != nil {
		return nil, err
	}
	if stats.LoggedInToday, err = s.users.CountActiveSince(ctx, today); err != nil {
		return nil, err
	}
	return stats, nil
}

// UserAnalytics returns signups per day
func (s *AnalyticsService) UserAnalytics(ctx context.Context, q RangeQuery) (*UserAnalytics, error) {
	rng, err := s.parseRange(q)
	if err != nil {
		return nil, err
	}
	days, err := s.analytics.SignupsPerDay(ctx, rng)
	if err != nil {
		return nil, err
	}
	out := &UserAnalytics{Signups: days}
	for _, d := range days {
		out.Total += d.Count
	}
	return out, nil
}

// NutritionAnalytics returns every user's logged nutrition per day
func (s *AnalyticsService) NutritionAnalytics(ctx context.Context, q RangeQuery) (*NutritionAnalytics, error) {
	rng, err := s.parseRange(q)
	if err != nil {
		return nil, err
	}
	days, err := s.analytics.NutritionPerDay(ctx, rng)
	if err != nil {
		return nil, err
	}
	return &NutritionAnalytics{Days: days}, nil
}

// FoodAnalytics describes category distribution, top foods and verification
func (s *AnalyticsService) FoodAnalytics(ctx context.Context) (*FoodAnalytics, error) {
	categories, err := s.foods.CategoryStats(ctx, false)
	if err != nil {
		return nil, err
	}
	popular, err := s.foods.Popular(ctx, popularFoodCount)
	if err != nil {
		return nil, err
	}
	verification, err := s.foods.VerificationCounts(ctx)
	if err != nil {
		return nil, err
	}

	out := &FoodAnalytics{
		Categories:   categories,
		Popular:      make([]PopularFood, len(popular)),
		Verification: verification,
	}
	for i, f := range popular {
		out.Popular[i] = PopularFood{
			ID:         f.ID,
			Name:       f.Name,
			Brand:      f.Brand,
			Category:   f.Category,
			UsageCount: f.UsageCount,
		}
	}
	return out, nil
}

// ExportUsers dumps every account. JSON is returned inline; CSV and XLSX are
// uploaded when export storage is configured and streamed otherwise.
func (s *AnalyticsService) ExportUsers(ctx context.Context, q ExportQuery) (*ExportResult, error) {
	format := q.Format
	if format == "" {
		format = FormatJSON
	}

	rows, err := s.exportRows(ctx)
	if err != nil {
		return nil, err
	}
	stamp := s.now().UTC().Format("20060102T150405Z")
	result := &ExportResult{
		Format:   format,
		Filename: fmt.Sprintf("users-%s.%s", stamp, format),
		Count:    len(rows),
	}

	switch format {
	case FormatJSON:
		result.Users = rows
		result.ContentType = "application/json"
		return result, nil
	case FormatCSV:
		result.ContentType = contentTypeCSV
		result.Data, err = encodeCSV(rows)
	case FormatXLSX:
		result.ContentType = contentTypeXLSX
		result.Data, err = encodeXLSX(rows)
	default:
		return nil, shared.InvalidInput("Export format must be json, csv or xlsx")
	}
	if err != nil {
		return nil, err
	}

	if s.storage == nil {
		return result, nil
	}
	key := exportPrefix + result.Filename
	if err := s.storage.Upload(ctx, key, result.Data, result.ContentType); err != nil {
		return nil, fmt.Errorf("upload export: %w", err)
	}
	url, expiresAt, err := s.storage.GenerateDownloadURL(ctx, key, 0)
	if err != nil {
		return nil, fmt.Errorf("presign export: %w", err)
	}
	result.DownloadURL = url
	result.ExpiresAt = &expiresAt
	result.Data = nil

	s.logger.Info("User export uploaded",
		zap.String("key", key),
		zap.Int("count", result.Count))
	return result, nil
}

func (s *AnalyticsService) exportRows(ctx context.Context) ([]UserExportRow, error) {
	filter := identity.NewUserFilter()
	filter.PageSize = exportBatchSize
	filter.OrderBy = "created_at"
	filter.OrderDir = "asc"

	var rows []UserExportRow
	for {
		users, total, err := s.users.FindAll(ctx, filter)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			rows = append(rows, UserExportRow{
				ID:        u.ID,
				Username:  u.Username,
				Email:     u.Email,
				Role:      u.Role,
				Active:    u.Active,
				CreatedAt: u.CreatedAt,
			})
		}
		if len(users) < filter.PageSize || int64(len(rows)) >= total {
			return rows, nil
		}
		filter.Page++
	}
}

// parseRange turns optional dates into whole-day bounds
func (s *AnalyticsService) parseRange(q RangeQuery) (report.Range, error) {
	var rng report.Range
	if q.StartDate != "" {
		t, err := nutrition.ParseDate(q.StartDate, s.loc)
		if err != nil {
			return rng, err
		}
		rng.From = nutrition.DayKey(t, s.loc).Start
	}
	if q.EndDate != "" {
		t, err := nutrition.ParseDate(q.EndDate, s.loc)
		if err != nil {
			return rng, err
		}
		rng.To = nutrition.DayKey(t, s.loc).End
	}
	if !rng.From.IsZero() && !rng.To.IsZero() && rng.From.After(rng.To) {
		return rng, nutrition.ErrInvalidRange
	}
	return rng, nil
}
