package persistence

import (
	"context"

	"github.com/nutritrack/backend/internal/domain/report"
	"github.com/nutritrack/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormAnalyticsRepository implements report.AnalyticsRepository with
// postgres date bucketing
type GormAnalyticsRepository struct {
	db *gorm.DB
}

// NewGormAnalyticsRepository creates a new GormAnalyticsRepository
func NewGormAnalyticsRepository(db *gorm.DB) *GormAnalyticsRepository {
	return &GormAnalyticsRepository{db: db}
}

func applyRange(query *gorm.DB, column string, r report.Range) *gorm.DB {
	if !r.From.IsZero() {
		query = query.Where(column+" >= ?", r.From)
	}
	if !r.To.IsZero() {
		query = query.Where(column+" <= ?", r.To)
	}
	return query
}

// SignupsPerDay counts users by creation day
func (r *GormAnalyticsRepository) SignupsPerDay(ctx context.Context, rng report.Range) ([]report.DailyCount, error) {
	var rows []report.DailyCount
	query := r.db.WithContext(ctx).Model(&models.UserModel{}).
		Select("TO_CHAR(DATE(created_at), 'YYYY-MM-DD') AS date, COUNT(*) AS count")
	err := applyRange(query, "created_at", rng).
		Group("DATE(created_at)").
		Order("DATE(created_at) ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapQuery("signups per day", err)
	}
	return rows, nil
}

// NutritionPerDay sums every user's entries by entry day
func (r *GormAnalyticsRepository) NutritionPerDay(ctx context.Context, rng report.Range) ([]report.DailyNutrition, error) {
	var rows []report.DailyNutrition
	query := r.db.WithContext(ctx).Model(&models.EntryModel{}).
		Select(`TO_CHAR(DATE(date), 'YYYY-MM-DD') AS date,
			COUNT(*) AS entry_count,
			COUNT(DISTINCT user_id) AS user_count,
			COALESCE(SUM(calories), 0) AS total_calories,
			COALESCE(SUM(protein), 0) AS total_protein,
			COALESCE(SUM(carbs), 0) AS total_carbs,
			COALESCE(SUM(fat), 0) AS total_fat`)
	err := applyRange(query, "date", rng).
		Group("DATE(date)").
		Order("DATE(date) ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, wrapQuery("nutrition per day", err)
	}
	return rows, nil
}

// CountEntries counts entries dated inside the range
func (r *GormAnalyticsRepository) CountEntries(ctx context.Context, rng report.Range) (int64, error) {
	var count int64
	err := applyRange(r.db.WithContext(ctx).Model(&models.EntryModel{}), "date", rng).Count(&count).Error
	return count, wrapQuery("count entries", err)
}

var _ report.AnalyticsRepository = (*GormAnalyticsRepository)(nil)
