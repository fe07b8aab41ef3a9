package activity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	userID := uuid.New()

	a, err := New(userID, TypeLogin, "  User logged in ", nil)
	require.NoError(t, err)
	assert.Equal(t, "User logged in", a.Description)
	assert.NotNil(t, a.Metadata)
	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.False(t, a.CreatedAt.IsZero())

	_, err = New(uuid.Nil, TypeLogin, "x", nil)
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = New(userID, Type("jumped"), "x", nil)
	assert.ErrorIs(t, err, shared.ErrInvalidInput)

	_, err = New(userID, TypeLogout, "", nil)
	assert.ErrorIs(t, err, shared.ErrInvalidInput)
}
