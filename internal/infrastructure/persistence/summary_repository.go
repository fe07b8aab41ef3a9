package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/nutrition"
	"github.com/nutritrack/backend/internal/domain/shared"
	"github.com/nutritrack/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var errSummaryNotFound = shared.NotFound("Daily summary")

// GormSummaryRepository implements nutrition.SummaryRepository using GORM
type GormSummaryRepository struct {
	db *gorm.DB
}

// NewGormSummaryRepository creates a new GormSummaryRepository
func NewGormSummaryRepository(db *gorm.DB) *GormSummaryRepository {
	return &GormSummaryRepository{db: db}
}

// FindByUserAndDate returns the stored summary of one day, or a NOT_FOUND
// domain error when the day has never been computed
func (r *GormSummaryRepository) FindByUserAndDate(ctx context.Context, userID uuid.UUID, date time.Time) (*nutrition.Summary, error) {
	var model models.SummaryModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&model).Error; err != nil {
		return nil, wrapQuery("find summary", notFound(err, errSummaryNotFound))
	}
	return model.ToDomain(), nil
}

// FindByUserAndRange returns stored summaries dated in [from, to], oldest first
func (r *GormSummaryRepository) FindByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*nutrition.Summary, error) {
	var rows []models.SummaryModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC").
		Find(&rows).Error; err != nil {
		return nil, wrapQuery("find summaries", err)
	}
	summaries := make([]*nutrition.Summary, len(rows))
	for i := range rows {
		summaries[i] = rows[i].ToDomain()
	}
	return summaries, nil
}

// Upsert writes every computed column of the (user, date) row in a single
// INSERT .. ON CONFLICT statement and returns the stored row. Concurrent
// writers for the same day resolve last writer wins.
func (r *GormSummaryRepository) Upsert(ctx context.Context, summary *nutrition.Summary) (*nutrition.Summary, error) {
	model := models.SummaryModelFromDomain(summary)
	now := time.Now().UTC()
	if model.ID == uuid.Nil {
		model.ID = uuid.New()
	}
	if model.CreatedAt.IsZero() {
		model.CreatedAt = now
	}
	model.UpdatedAt = now

	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns(models.SummaryComputedColumns()),
	}).Create(model).Error
	if err != nil {
		return nil, wrapQuery("upsert summary", err)
	}
	return r.FindByUserAndDate(ctx, summary.UserID, summary.Date)
}

var _ nutrition.SummaryRepository = (*GormSummaryRepository)(nil)
