package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/nutrition"
	"github.com/nutritrack/backend/internal/domain/shared"
	"github.com/nutritrack/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormGoalRepository implements nutrition.GoalRepository using GORM
type GormGoalRepository struct {
	db *gorm.DB
}

// NewGormGoalRepository creates a new GormGoalRepository
func NewGormGoalRepository(db *gorm.DB) *GormGoalRepository {
	return &GormGoalRepository{db: db}
}

// FindActiveByUser returns the user's goal when it is active
func (r *GormGoalRepository) FindActiveByUser(ctx context.Context, userID uuid.UUID) (*nutrition.Goal, error) {
	var model models.GoalModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&model).Error; err != nil {
		return nil, wrapQuery("find active goal", notFound(err, nutrition.ErrGoalNotFound))
	}
	return model.ToDomain(), nil
}

// FindByUser returns the user's goal whether or not it is active
func (r *GormGoalRepository) FindByUser(ctx context.Context, userID uuid.UUID) (*nutrition.Goal, error) {
	var model models.GoalModel
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&model).Error; err != nil {
		return nil, wrapQuery("find goal", notFound(err, nutrition.ErrGoalNotFound))
	}
	return model.ToDomain(), nil
}

// Save inserts or updates the goal. A second goal row for the same user
// violates the unique index and surfaces as ALREADY_EXISTS.
func (r *GormGoalRepository) Save(ctx context.Context, goal *nutrition.Goal) error {
	err := r.db.WithContext(ctx).Save(models.GoalModelFromDomain(goal)).Error
	return wrapQuery("save goal", duplicate(err, shared.ErrAlreadyExists))
}

var _ nutrition.GoalRepository = (*GormGoalRepository)(nil)
