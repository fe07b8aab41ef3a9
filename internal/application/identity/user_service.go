package identity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/identity"
	"github.com/nutritrack/backend/internal/domain/shared"
	"github.com/nutritrack/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

const (
	DefaultUserPageSize = 10
	MaxUserPageSize     = 100
)

// ErrSelfModification is returned when an admin tries to demote, deactivate or delete their own account
var ErrSelfModification = shared.NewDomainError(shared.ErrInvalidState.Code, "Administrators cannot demote, deactivate or delete their own account")

// UserService is the admin-facing account management service
type UserService struct {
	users     identity.UserRepository
	blacklist auth.TokenBlacklist
	publisher shared.EventPublisher
	logger    *zap.Logger
	// revokeTTL must outlive the longest token so revocations are never forgotten early
	revokeTTL time.Duration
}

// NewUserService creates a new UserService
func NewUserService(
	users identity.UserRepository,
	blacklist auth.TokenBlacklist,
	publisher shared.EventPublisher,
	logger *zap.Logger,
	revokeTTL time.Duration,
) *UserService {
	return &UserService{
		users:     users,
		blacklist: blacklist,
		publisher: publisher,
		logger:    logger,
		revokeTTL: revokeTTL,
	}
}

// List returns one page of users
func (s *UserService) List(ctx context.Context, q UserListQuery) (shared.Paginated[UserResponse], error) {
	filter := identity.NewUserFilter()
	filter.Page = q.Page
	filter.PageSize = q.Limit
	filter.Search = strings.TrimSpace(q.Search)
	filter.Role = identity.Role(q.Role)
	filter.Active = q.Active
	filter.Filter = filter.Normalize(DefaultUserPageSize, MaxUserPageSize)

	users, total, err := s.users.FindAll(ctx, filter)
	if err != nil {
		return shared.Paginated[UserResponse]{}, err
	}
	return shared.NewPaginated(ToUserResponses(users), total, filter.Page, filter.PageSize), nil
}

// Get returns one user
func (s *UserService) Get(ctx context.Context, id uuid.UUID) (*UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

// Update applies an admin edit. Deactivating or demoting an account revokes
// its outstanding tokens.
func (s *UserService) Update(ctx context.Context, actorID, id uuid.UUID, req UpdateUserRequest) (*UserResponse, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var changed []string
	revoke := false

	if req.Username != nil && strings.TrimSpace(*req.Username) != user.Username {
		taken, err := s.users.ExistsByUsername(ctx, strings.TrimSpace(*req.Username))
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, identity.ErrUsernameTaken
		}
		if err := user.Rename(*req.Username); err != nil {
			return nil, err
		}
		changed = append(changed, "username")
	}
	if req.Email != nil && !strings.EqualFold(strings.TrimSpace(*req.Email), user.Email) {
		taken, err := s.users.ExistsByEmail(ctx, strings.ToLower(strings.TrimSpace(*req.Email)))
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, identity.ErrEmailTaken
		}
		if err := user.ChangeEmail(*req.Email); err != nil {
			return nil, err
		}
		changed = append(changed, "email")
	}
	if req.Role != nil && identity.Role(*req.Role) != user.Role {
		if id == actorID {
			return nil, ErrSelfModification
		}
		if err := user.ChangeRole(identity.Role(*req.Role)); err != nil {
			return nil, err
		}
		changed = append(changed, "role")
		revoke = true
	}
	if req.IsActive != nil && *req.IsActive != user.Active {
		if *req.IsActive {
			user.Activate()
		} else {
			if id == actorID {
				return nil, ErrSelfModification
			}
			user.Deactivate()
			revoke = true
		}
		changed = append(changed, "is_active")
	}

	if len(changed) == 0 {
		resp := ToUserResponse(user)
		return &resp, nil
	}
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	if revoke {
		s.revoke(ctx, user.ID)
	}

	user.AddDomainEvent(identity.NewUserUpdatedEvent(user, actorID, changed))
	s.publish(ctx, user)

	s.logger.Info("User updated by admin",
		zap.String("user_id", user.ID.String()),
		zap.String("actor_id", actorID.String()),
		zap.Strings("fields", changed))

	resp := ToUserResponse(user)
	return &resp, nil
}

// Delete removes an account and, through cascading deletes, all of its data
func (s *UserService) Delete(ctx context.Context, actorID, id uuid.UUID) error {
	if id == actorID {
		return ErrSelfModification
	}
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.revoke(ctx, id)

	s.logger.Info("User deleted",
		zap.String("user_id", id.String()),
		zap.String("actor_id", actorID.String()))
	return nil
}

func (s *UserService) revoke(ctx context.Context, userID uuid.UUID) {
	if err := s.blacklist.RevokeUser(ctx, userID.String(), s.revokeTTL); err != nil {
		s.logger.Error("Failed to revoke user tokens",
			zap.String("user_id", userID.String()),
			zap.Error(err))
	}
}

func (s *UserService) publish(ctx context.Context, user *identity.User) {
	events := user.PullDomainEvents()
	if s.publisher == nil || len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish user events", zap.Error(err))
	}
}
