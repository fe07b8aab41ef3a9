package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/nutrition"
	"github.com/nutritrack/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormEntryRepository implements nutrition.EntryRepository using GORM
type GormEntryRepository struct {
	db *gorm.DB
}

// NewGormEntryRepository creates a new GormEntryRepository
func NewGormEntryRepository(db *gorm.DB) *GormEntryRepository {
	return &GormEntryRepository{db: db}
}

// FindByID finds an entry by ID
func (r *GormEntryRepository) FindByID(ctx context.Context, id uuid.UUID) (*nutrition.Entry, error) {
	var model models.EntryModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, wrapQuery("find entry", notFound(err, nutrition.ErrEntryNotFound))
	}
	return model.ToDomain(), nil
}

// FindByUserAndRange returns the user's entries dated in [from, to], oldest first
func (r *GormEntryRepository) FindByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*nutrition.Entry, error) {
	var rows []models.EntryModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Order("date ASC, created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, wrapQuery("find entries", err)
	}
	return entriesToDomain(rows), nil
}

// List returns one page of the user's entries, newest first
func (r *GormEntryRepository) List(ctx context.Context, userID uuid.UUID, filter nutrition.EntryFilter) ([]*nutrition.Entry, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.EntryModel{}).Where("user_id = ?", userID)
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}
	if filter.MealType != "" {
		query = query.Where("meal_type = ?", filter.MealType)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapQuery("count entries", err)
	}

	var rows []models.EntryModel
	if err := query.
		Order("date DESC, created_at DESC").
		Offset(filter.Offset()).
		Limit(filter.PageSize).
		Find(&rows).Error; err != nil {
		return nil, 0, wrapQuery("list entries", err)
	}
	return entriesToDomain(rows), total, nil
}

// SumByUserAndRange totals the user's entries dated in [from, to]
func (r *GormEntryRepository) SumByUserAndRange(ctx context.Context, userID uuid.UUID, from, to time.Time) (nutrition.PeriodTotals, error) {
	var row struct {
		models.NutrientColumns
		EntryCount int64
	}
	err := r.db.WithContext(ctx).Model(&models.EntryModel{}).
		Select(`COALESCE(SUM(calories), 0) AS calories,
			COALESCE(SUM(protein), 0) AS protein,
			COALESCE(SUM(carbs), 0) AS carbs,
			COALESCE(SUM(fat), 0) AS fat,
			COALESCE(SUM(fiber), 0) AS fiber,
			COALESCE(SUM(sugar), 0) AS sugar,
			COALESCE(SUM(sodium), 0) AS sodium,
			COUNT(*) AS entry_count`).
		Where("user_id = ? AND date >= ? AND date <= ?", userID, from, to).
		Scan(&row).Error
	if err != nil {
		return nutrition.PeriodTotals{}, wrapQuery("sum entries", err)
	}
	return nutrition.PeriodTotals{
		Totals:     nutrition.Nutrients(row.NutrientColumns),
		EntryCount: row.EntryCount,
	}, nil
}

// Save inserts or updates an entry
func (r *GormEntryRepository) Save(ctx context.Context, entry *nutrition.Entry) error {
	return wrapQuery("save entry", r.db.WithContext(ctx).Save(models.EntryModelFromDomain(entry)).Error)
}

// Delete removes an entry
func (r *GormEntryRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.EntryModel{}, "id = ?", id)
	if result.Error != nil {
		return wrapQuery("delete entry", result.Error)
	}
	if result.RowsAffected == 0 {
		return nutrition.ErrEntryNotFound
	}
	return nil
}

func entriesToDomain(rows []models.EntryModel) []*nutrition.Entry {
	entries := make([]*nutrition.Entry, len(rows))
	for i := range rows {
		entries[i] = rows[i].ToDomain()
	}
	return entries
}

var _ nutrition.EntryRepository = (*GormEntryRepository)(nil)
