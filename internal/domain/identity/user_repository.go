package identity

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/shared"
)

// Identity errors
var (
	ErrUserNotFound       = shared.NotFound("User")
	ErrInvalidRole        = shared.NewDomainError("INVALID_ROLE", "Role must be either 'user' or 'admin'")
	ErrInvalidCredentials = shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	ErrAccountInactive    = shared.NewDomainError("ACCOUNT_INACTIVE", "Account is deactivated")
	ErrUsernameTaken      = shared.NewDomainError("USERNAME_EXISTS", "Username already exists")
	ErrEmailTaken         = shared.NewDomainError("EMAIL_EXISTS", "Email already exists")
)

// UserRepository defines the interface for user persistence
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *User) error

	// Update updates an existing user
	Update(ctx context.Context, user *User) error

	// Delete deletes a user by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by lowercased email
	FindByEmail(ctx context.Context, email string) (*User, error)

	// FindAll returns one page of users plus the total count
	FindAll(ctx context.Context, filter UserFilter) ([]*User, int64, error)

	// ExistsByUsername checks if a username already exists
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// ExistsByEmail checks if an email already exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)

	// Count returns the number of users created in [from, to); zero bounds are open
	Count(ctx context.Context, from, to time.Time) (int64, error)

	// CountActiveSince returns users whose last login is at or after since
	CountActiveSince(ctx context.Context, since time.Time) (int64, error)
}

// UserFilter contains filter options for querying users
type UserFilter struct {
	shared.Filter
	Role   Role
	Active *bool
}

// NewUserFilter creates a new UserFilter with default values
func NewUserFilter() UserFilter {
	return UserFilter{Filter: shared.DefaultFilter()}
}
