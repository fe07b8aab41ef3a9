package middleware

import (
	"context"
	"errors"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/nutritrack/backend/internal/infrastructure/auth"
	"github.com/nutritrack/backend/internal/infrastructure/logger"
	"github.com/nutritrack/backend/internal/interfaces/http/dto"
	"go.uber.org/zap"
)

// JWT context keys
const (
	JWTClaimsKey  = "jwt_claims"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
	// QueryTokenParam carries the access token where headers cannot be set, such as websocket upgrades
	QueryTokenParam = "token"
)

// AccessTokenValidator verifies access tokens
type AccessTokenValidator interface {
	ValidateAccessToken(token string) (*auth.Claims, error)
}

// JWTConfig holds configuration for the JWT middleware
type JWTConfig struct {
	Tokens           AccessTokenValidator
	Blacklist        auth.TokenBlacklist
	SkipPaths        []string
	SkipPathPrefixes []string
	QueryTokenPaths  []string
	Logger           *zap.Logger
}

// JWTAuth authenticates requests with a bearer access token. Revoked tokens
// and tokens issued before a user wide revocation are rejected. A blacklist
// lookup failure is logged and the request proceeds.
func JWTAuth(cfg JWTConfig) gin.HandlerFunc {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if slices.Contains(cfg.SkipPaths, path) {
			c.Next()
			return
		}
		for _, prefix := range cfg.SkipPathPrefixes {
			if strings.HasPrefix(path, prefix) {
				c.Next()
				return
			}
		}

		token, err := extractToken(c, slices.Contains(cfg.QueryTokenPaths, path))
		if err != nil {
			abortAuth(c, log, err)
			return
		}

		claims, err := cfg.Tokens.ValidateAccessToken(token)
		if err != nil {
			abortAuth(c, log, err)
			return
		}

		ctx := c.Request.Context()
		if cfg.Blacklist != nil && isRevoked(ctx, log, cfg.Blacklist, claims) {
			abortAuth(c, log, auth.ErrTokenRevoked)
			return
		}

		c.Set(JWTClaimsKey, claims)
		c.Request = c.Request.WithContext(logger.WithUserID(ctx, claims.UserID))
		c.Next()
	}
}

func extractToken(c *gin.Context, allowQuery bool) (string, error) {
	header := c.GetHeader(AuthHeaderKey)
	if header == "" && allowQuery {
		if token := c.Query(QueryTokenParam); token != "" {
			return token, nil
		}
	}
	if header == "" {
		return "", errMissingToken
	}
	token, ok := strings.CutPrefix(header, BearerPrefix)
	if !ok || token == "" {
		return "", auth.ErrInvalidToken
	}
	return token, nil
}

var errMissingToken = errors.New("missing authorization header")

func isRevoked(ctx context.Context, log *zap.Logger, bl auth.TokenBlacklist, claims *auth.Claims) bool {
	if claims.ID != "" {
		revoked, err := bl.IsRevoked(ctx, claims.ID)
		if err != nil {
			log.Error("Failed to check token blacklist", zap.String("jti", claims.ID), zap.Error(err))
		} else if revoked {
			return true
		}
	}
	revoked, err := bl.IsUserRevoked(ctx, claims.UserID, claims.IssuedAtTime())
	if err != nil {
		log.Error("Failed to check user revocation", zap.String("user_id", claims.UserID), zap.Error(err))
		return false
	}
	return revoked
}

func abortAuth(c *gin.Context, log *zap.Logger, err error) {
	code, message := dto.ErrCodeUnauthorized, "Authentication required"
	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		code, message = dto.ErrCodeTokenExpired, "Token has expired"
	case errors.Is(err, auth.ErrTokenRevoked):
		code, message = dto.ErrCodeTokenRevoked, "Token has been revoked"
	case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrInvalidTokenType),
		errors.Is(err, auth.ErrInvalidClaims), errors.Is(err, auth.ErrTokenNotYetValid):
		code, message = dto.ErrCodeTokenInvalid, "Invalid token"
	}
	log.Debug("Authentication failed", zap.Error(err), zap.String("path", c.Request.URL.Path))
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponseWithRequestID(code, message, GetRequestID(c)))
}

// GetClaims returns the authenticated claims, nil on public routes
func GetClaims(c *gin.Context) *auth.Claims {
	if v, ok := c.Get(JWTClaimsKey); ok {
		if claims, ok := v.(*auth.Claims); ok {
			return claims
		}
	}
	return nil
}

// GetUserID returns the authenticated user id, uuid.Nil when absent
func GetUserID(c *gin.Context) uuid.UUID {
	if claims := GetClaims(c); claims != nil {
		return claims.UserUUID()
	}
	return uuid.Nil
}

// RequireRole allows only users holding one of roles
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeUnauthorized, "Authentication required", GetRequestID(c)))
			return
		}
		if !slices.Contains(roles, claims.Role) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				dto.NewErrorResponseWithRequestID(dto.ErrCodeForbidden, "Insufficient role", GetRequestID(c)))
			return
		}
		c.Next()
	}
}
