package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/activity"
	"github.com/nutritrack/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormActivityRepository implements activity.Repository using GORM
type GormActivityRepository struct {
	db *gorm.DB
}

// NewGormActivityRepository creates a new GormActivityRepository
func NewGormActivityRepository(db *gorm.DB) *GormActivityRepository {
	return &GormActivityRepository{db: db}
}

// Create appends an activity
func (r *GormActivityRepository) Create(ctx context.Context, a *activity.Activity) error {
	model, err := models.ActivityModelFromDomain(a)
	if err != nil {
		return wrapQuery("encode activity metadata", err)
	}
	return wrapQuery("create activity", r.db.WithContext(ctx).Create(model).Error)
}

// ListByUser returns one page of the user's feed, newest first
func (r *GormActivityRepository) ListByUser(ctx context.Context, userID uuid.UUID, filter activity.Filter) ([]*activity.Activity, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ActivityModel{}).Where("user_id = ?", userID)
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapQuery("count activities", err)
	}

	var rows []models.ActivityModel
	if err := query.Order("created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, wrapQuery("list activities", err)
	}
	items := make([]*activity.Activity, len(rows))
	for i := range rows {
		items[i] = rows[i].ToDomain()
	}
	return items, total, nil
}

// CountUsersSince counts distinct users with activity at or after since
func (r *GormActivityRepository) CountUsersSince(ctx context.Context, since time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ActivityModel{}).
		Where("created_at >= ?", since).
		Distinct("user_id").
		Count(&count).Error
	return count, wrapQuery("count active users", err)
}

var _ activity.Repository = (*GormActivityRepository)(nil)
