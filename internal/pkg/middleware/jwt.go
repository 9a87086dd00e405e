package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/ecocycle/ecocycle/internal/pkg/jwt"
	"github.com/ecocycle/ecocycle/internal/pkg/models"
	"github.com/ecocycle/ecocycle/internal/utils"
)

const (
	// UserIDContextKey is where the authenticated caller id lives in the echo context
	UserIDContextKey = "user_id"
	// TokenContextKey is where the raw bearer token lives, forwarded to downstream services
	TokenContextKey = "user_token"

	bearerPrefix = "Bearer "
)

// publicPathPrefixes lists route prefixes that pass through unauthenticated:
// the identity authority's endpoints, documentation, health checks and the
// generic error endpoint. Internal routes skip JWT because they carry their
// own API key guard.
var publicPathPrefixes = []string{
	"/auth",
	"/docs",
	"/swagger",
	"/health",
	"/ping",
	"/ready",
	"/internal",
}

func isPublicPath(path string) bool {
	if path == "/error" {
		return true
	}
	for _, prefix := range publicPathPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// JWTAuthMiddleware authenticates every non-public route. On success the
// caller's numeric user id and the raw token are attached to the context.
func JWTAuthMiddleware(config models.JWTConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if isPublicPath(c.Request().URL.Path) {
				return next(c)
			}

			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return utils.UnauthorizedResponse(c, "Authorization header is required")
			}

			if !strings.HasPrefix(authHeader, bearerPrefix) {
				return utils.UnauthorizedResponse(c, "Invalid authorization format")
			}

			tokenString := authHeader[len(bearerPrefix):]

			userID, err := jwtpkg.ValidateToken(tokenString, config.Secret)
			if err != nil {
				return utils.UnauthorizedResponse(c, "Invalid token")
			}

			c.Set(UserIDContextKey, userID)
			c.Set(TokenContextKey, tokenString)

			return next(c)
		}
	}
}

// CallerID extracts the authenticated user id set by JWTAuthMiddleware.
// Its absence on a protected route is a programming error.
func CallerID(c echo.Context) (int64, bool) {
	userID, ok := c.Get(UserIDContextKey).(int64)
	return userID, ok
}

// CallerToken extracts the raw bearer token set by JWTAuthMiddleware
func CallerToken(c echo.Context) string {
	token, _ := c.Get(TokenContextKey).(string)
	return token
}
