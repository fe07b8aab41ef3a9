package identity

import (
	"strings"
	"testing"

	"github.com/nutritrack/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("creates active user with hashed password", func(t *testing.T) {
		user, err := NewUser("alice", "Alice@Example.com ", "secret123", "")

		require.NoError(t, err)
		assert.Equal(t, "alice", user.Username)
		assert.Equal(t, "alice@example.com", user.Email)
		assert.Equal(t, RoleUser, user.Role)
		assert.True(t, user.Active)
		assert.NotEqual(t, "secret123", user.PasswordHash)
		assert.True(t, user.VerifyPassword("secret123"))
		assert.False(t, user.VerifyPassword("wrong-password"))

		events := user.GetDomainEvents()
		require.Len(t, events, 1)
		_, ok := events[0].(*UserRegisteredEvent)
		assert.True(t, ok)
	})

	t.Run("creates admin", func(t *testing.T) {
		user, err := NewUser("root", "root@example.com", "secret123", RoleAdmin)

		require.NoError(t, err)
		assert.True(t, user.IsAdmin())
	})

	tests := []struct {
		name     string
		username string
		email    string
		password string
		role     Role
		code     string
	}{
		{"empty username", "", "a@example.com", "secret123", RoleUser, "INVALID_USERNAME"},
		{"short username", "ab", "a@example.com", "secret123", RoleUser, "INVALID_USERNAME"},
		{"long username", strings.Repeat("a", 51), "a@example.com", "secret123", RoleUser, "INVALID_USERNAME"},
		{"username with spaces", "bad name", "a@example.com", "secret123", RoleUser, "INVALID_USERNAME"},
		{"bad email", "alice", "not-an-email", "secret123", RoleUser, "INVALID_EMAIL"},
		{"empty email", "alice", "", "secret123", RoleUser, "INVALID_EMAIL"},
		{"short password", "alice", "a@example.com", "short", RoleUser, "INVALID_PASSWORD"},
		{"unknown role", "alice", "a@example.com", "secret123", Role("owner"), "INVALID_ROLE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.username, tt.email, tt.password, tt.role)

			require.Error(t, err)
			var de *shared.DomainError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.code, de.Code)
		})
	}
}

func TestUser_Mutations(t *testing.T) {
	user, err := NewUser("alice", "alice@example.com", "secret123", RoleUser)
	require.NoError(t, err)
	startVersion := user.Version

	t.Run("set password", func(t *testing.T) {
		require.NoError(t, user.SetPassword("another-secret"))
		assert.True(t, user.VerifyPassword("another-secret"))
		assert.False(t, user.VerifyPassword("secret123"))
		assert.Error(t, user.SetPassword("tiny"))
	})

	t.Run("change role", func(t *testing.T) {
		require.NoError(t, user.ChangeRole(RoleAdmin))
		assert.True(t, user.IsAdmin())
		assert.ErrorIs(t, user.ChangeRole("superuser"), ErrInvalidRole)
	})

	t.Run("change email normalizes", func(t *testing.T) {
		require.NoError(t, user.ChangeEmail("  NEW@Example.com"))
		assert.Equal(t, "new@example.com", user.Email)
	})

	t.Run("deactivate and activate", func(t *testing.T) {
		user.Deactivate()
		assert.False(t, user.Active)
		v := user.Version
		user.Deactivate()
		assert.Equal(t, v, user.Version, "deactivating twice is a no-op")
		user.Activate()
		assert.True(t, user.Active)
	})

	t.Run("record login", func(t *testing.T) {
		user.ClearDomainEvents()
		user.RecordLogin()
		require.NotNil(t, user.LastLoginAt)
		require.Len(t, user.GetDomainEvents(), 1)
		assert.Equal(t, EventTypeUserLoggedIn, user.GetDomainEvents()[0].EventType())
	})

	assert.Greater(t, user.Version, startVersion)
}
