package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/catalog"
	"github.com/nutritrack/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

const listedCondition = "is_public = ? AND is_verified = ?"

// GormFoodRepository implements catalog.FoodRepository using GORM
type GormFoodRepository struct {
	db *gorm.DB
}

// NewGormFoodRepository creates a new GormFoodRepository
func NewGormFoodRepository(db *gorm.DB) *GormFoodRepository {
	return &GormFoodRepository{db: db}
}

// Create inserts a food
func (r *GormFoodRepository) Create(ctx context.Context, food *catalog.Food) error {
	err := r.db.WithContext(ctx).Create(models.FoodModelFromDomain(food)).Error
	return wrapQuery("create food", duplicate(err, catalog.ErrDuplicateBarcode))
}

// Update saves every column of an existing food
func (r *GormFoodRepository) Update(ctx context.Context, food *catalog.Food) error {
	result := r.db.WithContext(ctx).Save(models.FoodModelFromDomain(food))
	if result.Error != nil {
		return wrapQuery("update food", duplicate(result.Error, catalog.ErrDuplicateBarcode))
	}
	if result.RowsAffected == 0 {
		return catalog.ErrFoodNotFound
	}
	return nil
}

// Delete removes a food. Entries keep their food_id, which the schema nulls.
func (r *GormFoodRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.FoodModel{}, "id = ?", id)
	if result.Error != nil {
		return wrapQuery("delete food", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrFoodNotFound
	}
	return nil
}

// FindByID finds a food by ID
func (r *GormFoodRepository) FindByID(ctx context.Context, id uuid.UUID) (*catalog.Food, error) {
	var model models.FoodModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		return nil, wrapQuery("find food", notFound(err, catalog.ErrFoodNotFound))
	}
	return model.ToDomain(), nil
}

// ExistsByBarcode reports whether another food carries barcode
func (r *GormFoodRepository) ExistsByBarcode(ctx context.Context, barcode string, excludeID uuid.UUID) (bool, error) {
	if barcode == "" {
		return false, nil
	}
	query := r.db.WithContext(ctx).Model(&models.FoodModel{}).Where("barcode = ?", barcode)
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, wrapQuery("check barcode", err)
	}
	return count > 0, nil
}

// List returns one page of foods plus the total count
func (r *GormFoodRepository) List(ctx context.Context, filter catalog.FoodFilter) ([]*catalog.Food, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.FoodModel{})
	if filter.Search != "" {
		query = matchText(query, filter.Search)
	}
	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.IsVerified != nil {
		query = query.Where("is_verified = ?", *filter.IsVerified)
	}
	if filter.IsPublic != nil {
		query = query.Where("is_public = ?", *filter.IsPublic)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapQuery("count foods", err)
	}

	order := "usage_count DESC, created_at DESC"
	if filter.OrderBy != "" {
		order = orderClause(filter.OrderBy, filter.OrderDir, FoodSortFields, "usage_count")
	}
	var rows []models.FoodModel
	if err := query.Order(order).Offset(filter.Offset()).Limit(filter.PageSize).Find(&rows).Error; err != nil {
		return nil, 0, wrapQuery("list foods", err)
	}
	return foodsToDomain(rows), total, nil
}

// Search matches listed foods by name, brand, description or tag
func (r *GormFoodRepository) Search(ctx context.Context, query string, limit int) ([]*catalog.Food, error) {
	var rows []models.FoodModel
	err := matchText(r.db.WithContext(ctx).Where(listedCondition, true, true), query).
		Order("usage_count DESC, name ASC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, wrapQuery("search foods", err)
	}
	return foodsToDomain(rows), nil
}

// Popular returns the most used listed foods
func (r *GormFoodRepository) Popular(ctx context.Context, limit int) ([]*catalog.Food, error) {
	var rows []models.FoodModel
	if err := r.db.WithContext(ctx).
		Where(listedCondition, true, true).
		Order("usage_count DESC, created_at DESC").
		Limit(limit).
		Find(&rows).Error; err != nil {
		return nil, wrapQuery("popular foods", err)
	}
	return foodsToDomain(rows), nil
}

// IncrementUsage bumps usage_count without loading the row
func (r *GormFoodRepository) IncrementUsage(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.FoodModel{}).
		Where("id = ?", id).
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1"))
	if result.Error != nil {
		return wrapQuery("increment food usage", result.Error)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrFoodNotFound
	}
	return nil
}

// CategoryStats groups foods by category, largest first
func (r *GormFoodRepository) CategoryStats(ctx context.Context, listedOnly bool) ([]catalog.CategoryStat, error) {
	query := r.db.WithContext(ctx).Model(&models.FoodModel{}).
		Select("category, COUNT(*) AS count, COALESCE(AVG(usage_count), 0) AS average_usage")
	if listedOnly {
		query = query.Where(listedCondition, true, true)
	}
	var stats []catalog.CategoryStat
	if err := query.Group("category").Order("count DESC, category ASC").Scan(&stats).Error; err != nil {
		return nil, wrapQuery("food category stats", err)
	}
	return stats, nil
}

// VerificationCounts splits the catalog by verification state
func (r *GormFoodRepository) VerificationCounts(ctx context.Context) (catalog.VerificationCounts, error) {
	var counts catalog.VerificationCounts
	err := r.db.WithContext(ctx).Model(&models.FoodModel{}).
		Select(`COALESCE(SUM(CASE WHEN is_verified THEN 1 ELSE 0 END), 0) AS verified,
			COALESCE(SUM(CASE WHEN is_verified THEN 0 ELSE 1 END), 0) AS unverified`).
		Scan(&counts).Error
	return counts, wrapQuery("food verification counts", err)
}

// Count returns the catalog size
func (r *GormFoodRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.FoodModel{}).Count(&count).Error
	return count, wrapQuery("count foods", err)
}

func matchText(query *gorm.DB, text string) *gorm.DB {
	pattern := "%" + text + "%"
	return query.Where(
		"name ILIKE ? OR brand ILIKE ? OR description ILIKE ? OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE ?)",
		pattern, pattern, pattern, pattern,
	)
}

func foodsToDomain(rows []models.FoodModel) []*catalog.Food {
	foods := make([]*catalog.Food, len(rows))
	for i := range rows {
		foods[i] = rows[i].ToDomain()
	}
	return foods
}

var _ catalog.FoodRepository = (*GormFoodRepository)(nil)
