package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/catalog"
	"github.com/nutritrack/backend/internal/domain/identity"
	"github.com/nutritrack/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormFoodRepository_IncrementUsage(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewGormFoodRepository(db)
	id := uuid.New()

	mock.ExpectExec(`UPDATE "foods" SET "usage_count"=usage_count \+ 1 WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	require.NoError(t, repo.IncrementUsage(context.Background(), id))

	mock.ExpectExec(`UPDATE "foods" SET "usage_count"=usage_count \+ 1 WHERE id = \$1`).
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))
	assert.ErrorIs(t, repo.IncrementUsage(context.Background(), id), catalog.ErrFoodNotFound)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormFoodRepository_Popular(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewGormFoodRepository(db)

	rows := sqlmock.NewRows([]string{"id", "name", "category", "serving_size", "serving_unit", "calories", "is_public", "is_verified", "usage_count", "tags"}).
		AddRow(uuid.New(), "Banana", "fruits", "118", "g", 89.0, true, true, int64(42), "{snack,fruit}")
	mock.ExpectQuery(`SELECT \* FROM "foods" WHERE is_public = \$1 AND is_verified = \$2 ORDER BY usage_count DESC, created_at DESC LIMIT \$3`).
		WithArgs(true, true, 20).
		WillReturnRows(rows)

	foods, err := repo.Popular(context.Background(), catalog.DefaultPopularSize)
	require.NoError(t, err)
	require.Len(t, foods, 1)
	assert.Equal(t, "Banana", foods[0].Name)
	assert.Equal(t, int64(42), foods[0].UsageCount)
	assert.Equal(t, []string{"snack", "fruit"}, foods[0].Tags)
	assert.True(t, foods[0].IsListed())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormFoodRepository_ExistsByBarcode(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewGormFoodRepository(db)
	self := uuid.New()

	exists, err := repo.ExistsByBarcode(context.Background(), "", self)
	require.NoError(t, err)
	assert.False(t, exists)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "foods" WHERE barcode = \$1 AND id <> \$2`).
		WithArgs("0123456789", self).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	exists, err = repo.ExistsByBarcode(context.Background(), "0123456789", self)
	require.NoError(t, err)
	assert.True(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_FindByEmail(t *testing.T) {
	db, mock := newMockGorm(t)
	repo := NewGormUserRepository(db)

	t.Run("lowercases the lookup", func(t *testing.T) {
		id := uuid.New()
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1 ORDER BY "users"."id" LIMIT \$2`).
			WithArgs("ana@example.com", 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "email", "role", "active"}).
				AddRow(id, "ana", "ana@example.com", "admin", true))

		u, err := repo.FindByEmail(context.Background(), "  Ana@Example.com ")
		require.NoError(t, err)
		assert.Equal(t, id, u.ID)
		assert.True(t, u.IsAdmin())
	})

	t.Run("missing user", func(t *testing.T) {
		mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.FindByEmail(context.Background(), "nobody@example.com")
		assert.ErrorIs(t, err, identity.ErrUserNotFound)
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("connection failure is wrapped", func(t *testing.T) {
		cause := errors.New("connection refused")
		mock.ExpectQuery(`SELECT \* FROM "users"`).WillReturnError(cause)

		_, err := repo.FindByEmail(context.Background(), "ana@example.com")
		assert.ErrorIs(t, err, cause)
		assert.Contains(t, err.Error(), "find user by email")
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}
