package middleware

import (
	"net/http"
	"strings"

	"property-service/internal/model"
	"property-service/internal/store"
	"property-service/pkg/jwtutil"
	"property-service/pkg/logger"
	"property-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// currentUserKey is where the resolved user lands in the echo context.
const currentUserKey = "current_user"

// SessionMiddleware validates the bearer token and resolves the current
// user from the record store, so handlers always see the live record
// (including a freshly assigned unit) rather than stale claims.
func SessionMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromContext(c)

		// Get the Authorization header
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Error("Missing Authorization header")
			prometheus.RecordAuthError("missing_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "missing authorization token"})
		}

		// Check if it's a Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Error("Invalid Authorization header format")
			prometheus.RecordAuthError("invalid_auth_format")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid authorization format, expected Bearer token"})
		}

		// Validate the token
		claims, err := jwtutil.ValidateToken(parts[1])
		if err != nil {
			log.Error("Invalid session token", zap.Error(err))
			prometheus.RecordAuthError("invalid_token")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "invalid or expired token"})
		}

		// Resolve the user from the record store
		state, err := store.Get().Load()
		if err != nil {
			log.Error("Failed to load state for session", zap.Error(err))
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": "failed to resolve session"})
		}

		u := state.User(claims.UserID)
		if u == nil {
			log.Error("Session user no longer exists", zap.String("user_id", claims.UserID))
			prometheus.RecordAuthError("unknown_user")
			return c.JSON(http.StatusUnauthorized, echo.Map{"error": "account not found"})
		}

		user := *u
		c.Set(currentUserKey, &user)

		return next(c)
	}
}

// CurrentUser returns the user resolved by SessionMiddleware, or nil.
func CurrentUser(c echo.Context) *model.User {
	if u, ok := c.Get(currentUserKey).(*model.User); ok {
		return u
	}
	return nil
}

// RequireStaff rejects tenants; agent/admin-only routes sit behind it.
func RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		u := CurrentUser(c)
		if u == nil || (u.Role != model.RoleAgent && u.Role != model.RoleAdmin) {
			prometheus.RecordAuthError("forbidden_role")
			return c.JSON(http.StatusForbidden, echo.Map{"error": "agent or admin role required"})
		}
		return next(c)
	}
}
