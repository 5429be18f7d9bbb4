package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"trackd/internal/application/user/usecases"
	"trackd/internal/infrastructure/auth"
	"trackd/internal/shared/constants"
	"trackd/internal/shared/errors"
	"trackd/internal/shared/logger"
	"trackd/internal/shared/utils"
)

// AuthMiddleware verifies the identity provider's bearer token and
// resolves it to a local user. The user row is created on first sight
// and its profile refreshed on every request, so downstream handlers
// always see a 15-digit entity ID in the context.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	ensureUser usecases.EnsureUserExecutor
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, ensureUser usecases.EnsureUserExecutor, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		ensureUser: ensureUser,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthenticatedError("missing authorization token"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			utils.ErrorResponseWithError(c, errors.NewUnauthenticatedError("invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(parts[1])
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponseWithError(c, errors.NewUnauthenticatedError("invalid or expired token"))
			c.Abort()
			return
		}

		resolved, err := m.ensureUser.Execute(c.Request.Context(), usecases.EnsureUserCommand{
			Subject: claims.Subject,
			Name:    claims.Name,
			Email:   claims.Email,
			Picture: claims.Picture,
		})
		if err != nil {
			m.logger.Errorw("failed to resolve authenticated user", "subject", claims.Subject, "error", err)
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, resolved.ID)
		c.Set(constants.ContextKeyExternalID, claims.Subject)

		c.Next()
	}
}
