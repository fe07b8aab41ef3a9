// Package identity implements account registration, sessions and user administration
package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/domain/identity"
	"github.com/nutritrack/backend/internal/domain/shared"
	"github.com/nutritrack/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// Token errors surfaced to clients
var (
	ErrTokenInvalid = shared.NewDomainError("TOKEN_INVALID", "Invalid or expired token")
	ErrTokenRevoked = shared.NewDomainError("TOKEN_REVOKED", "Token has been revoked")
)

// AuthService handles registration and session lifecycle
type AuthService struct {
	users     identity.UserRepository
	tokens    *auth.JWTService
	blacklist auth.TokenBlacklist
	publisher shared.EventPublisher
	logger    *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	users identity.UserRepository,
	tokens *auth.JWTService,
	blacklist auth.TokenBlacklist,
	publisher shared.EventPublisher,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		blacklist: blacklist,
		publisher: publisher,
		logger:    logger,
	}
}

// Register creates a regular user account and signs it in
func (s *AuthService) Register(ctx context.Context, req RegisterRequest, client ClientInfo) (*AuthResponse, error) {
	taken, err := s.users.ExistsByUsername(ctx, strings.TrimSpace(req.Username))
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, identity.ErrUsernameTaken
	}
	taken, err = s.users.ExistsByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, identity.ErrEmailTaken
	}

	user, err := identity.NewUser(req.Username, req.Email, req.Password, identity.RoleUser)
	if err != nil {
		return nil, err
	}
	user.RecordLogin()
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	tokens, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, user, client)

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return &AuthResponse{User: ToUserResponse(user), Tokens: tokens}, nil
}

// Login verifies credentials and issues a token pair. Unknown emails and
// wrong passwords yield the same error.
func (s *AuthService) Login(ctx context.Context, req LoginRequest, client ClientInfo) (*AuthResponse, error) {
	s.logger.Info("Login attempt", zap.String("ip", client.IP))

	user, err := s.users.FindByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, identity.ErrInvalidCredentials
		}
		return nil, err
	}
	if !user.VerifyPassword(req.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("user_id", user.ID.String()))
		return nil, identity.ErrInvalidCredentials
	}
	if !user.Active {
		s.logger.Warn("Login rejected for inactive account", zap.String("user_id", user.ID.String()))
		return nil, identity.ErrAccountInactive
	}

	user.RecordLogin()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	tokens, err := s.issue(user)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, user, client)

	s.logger.Info("User logged in",
		zap.String("user_id", user.ID.String()),
		zap.String("username", user.Username))

	return &AuthResponse{User: ToUserResponse(user), Tokens: tokens}, nil
}

// Refresh exchanges a refresh token for a new pair. The account is reloaded
// so role changes and deactivation take effect. Each refresh token is
// redeemable once.
func (s *AuthService) Refresh(ctx context.Context, req RefreshRequest) (*AuthResponse, error) {
	claims, err := s.tokens.ValidateRefreshToken(req.RefreshToken)
	if err != nil {
		s.logger.Debug("Refresh token rejected", zap.Error(err))
		return nil, ErrTokenInvalid
	}
	if err := s.checkRevoked(ctx, claims); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.UserUUID())
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, ErrTokenInvalid
		}
		return nil, err
	}
	if !user.Active {
		return nil, identity.ErrAccountInactive
	}

	// spend the refresh token before issuing, so concurrent replays get one pair
	claimed, err := s.blacklist.Claim(ctx, claims.ID, claims.RemainingTTL())
	if err != nil {
		return nil, err
	}
	if !claimed {
		s.logger.Warn("Refresh token replayed", zap.String("user_id", claims.UserID))
		return nil, ErrTokenRevoked
	}

	tokens, err := s.issue(user)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{User: ToUserResponse(user), Tokens: tokens}, nil
}

// Logout blacklists the presented access token until it would have expired
func (s *AuthService) Logout(ctx context.Context, in LogoutInput) error {
	if in.TokenID != "" {
		if err := s.blacklist.Revoke(ctx, in.TokenID, in.ExpiresIn); err != nil {
			return err
		}
	}

	user, err := s.users.FindByID(ctx, in.UserID)
	if err != nil {
		// the token is already revoked; a missing user only loses the activity row
		s.logger.Warn("Logout for unknown user", zap.String("user_id", in.UserID.String()), zap.Error(err))
		return nil
	}
	user.AddDomainEvent(identity.NewUserLoggedOutEvent(user))
	s.publish(ctx, user, in.Client)

	s.logger.Info("User logged out", zap.String("user_id", in.UserID.String()))
	return nil
}

// Me returns the caller's account
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*UserResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := ToUserResponse(user)
	return &resp, nil
}

func (s *AuthService) issue(user *identity.User) (*auth.TokenPair, error) {
	tokens, err := s.tokens.GenerateTokenPair(auth.Subject{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}
	return tokens, nil
}

func (s *AuthService) checkRevoked(ctx context.Context, claims *auth.Claims) error {
	revoked, err := s.blacklist.IsRevoked(ctx, claims.ID)
	if err != nil {
		return err
	}
	if revoked {
		return ErrTokenRevoked
	}
	revoked, err = s.blacklist.IsUserRevoked(ctx, claims.UserID, claims.IssuedAtTime())
	if err != nil {
		return err
	}
	if revoked {
		return ErrTokenRevoked
	}
	return nil
}

// publish stamps session events with the client and flushes the user's events
func (s *AuthService) publish(ctx context.Context, user *identity.User, client ClientInfo) {
	events := user.PullDomainEvents()
	for _, e := range events {
		if session, ok := e.(*identity.UserSessionEvent); ok {
			session.IP = client.IP
			session.UserAgent = client.UserAgent
		}
	}
	if s.publisher == nil || len(events) == 0 {
		return
	}
	if err := s.publisher.Publish(ctx, events...); err != nil {
		s.logger.Warn("Failed to publish user events", zap.Error(err))
	}
}
