package identity

import (
	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/shared"
)

// Aggregate type constant for User
const AggregateTypeUser = "User"

// User domain event types
const (
	EventTypeUserRegistered = "UserRegistered"
	EventTypeUserLoggedIn   = "UserLoggedIn"
	EventTypeUserLoggedOut  = "UserLoggedOut"
	EventTypeUserUpdated    = "UserUpdated"
)

// UserRegisteredEvent is published when an account is created
type UserRegisteredEvent struct {
	shared.BaseDomainEvent
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
}

// NewUserRegisteredEvent creates a new UserRegisteredEvent
func NewUserRegisteredEvent(u *User) *UserRegisteredEvent {
	return &UserRegisteredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserRegistered, AggregateTypeUser, u.ID, u.ID),
		Username:        u.Username,
		Email:           u.Email,
		Role:            u.Role,
	}
}

// UserSessionEvent is published on login and logout. IP and UserAgent are
// filled by the transport layer.
type UserSessionEvent struct {
	shared.BaseDomainEvent
	Username  string `json:"username"`
	IP        string `json:"ip,omitempty"`
	UserAgent string `json:"user_agent,omitempty"`
}

// NewUserLoggedInEvent creates a login session event
func NewUserLoggedInEvent(u *User) *UserSessionEvent {
	return &UserSessionEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserLoggedIn, AggregateTypeUser, u.ID, u.ID),
		Username:        u.Username,
	}
}

// NewUserLoggedOutEvent creates a logout session event
func NewUserLoggedOutEvent(u *User) *UserSessionEvent {
	return &UserSessionEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserLoggedOut, AggregateTypeUser, u.ID, u.ID),
		Username:        u.Username,
	}
}

// UserUpdatedEvent is published when profile fields change
type UserUpdatedEvent struct {
	shared.BaseDomainEvent
	Username string   `json:"username"`
	Fields   []string `json:"fields"`
}

// NewUserUpdatedEvent creates a new UserUpdatedEvent; actorID is who made the change
func NewUserUpdatedEvent(u *User, actorID uuid.UUID, fields []string) *UserUpdatedEvent {
	return &UserUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeUserUpdated, AggregateTypeUser, u.ID, actorID),
		Username:        u.Username,
		Fields:          fields,
	}
}
