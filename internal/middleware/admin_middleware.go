package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"storefront/internal/model"
	"storefront/internal/service"
	"storefront/internal/utils"
)

var errNotAdmin = errors.New("admin access is required")

// RoleLookup resolves the stored role of a user
type RoleLookup interface {
	Role(ctx context.Context, userID int) (string, error)
}

// AdminMiddleware authenticates the caller and then requires the ADMIN role.
// Both stages run here, so mounting it alone is enough to protect a route.
func AdminMiddleware(jwtUtil *utils.JWTUtil, roles RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := Authenticate(c, jwtUtil)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}
		setIdentity(c, claims)

		if err := requireAdmin(c.Request.Context(), roles, claims.UserID); err != nil {
			if errors.Is(err, errNotAdmin) || errors.Is(err, service.ErrUserNotFound) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden: admin access is required"})
				return
			}
			zerolog.Ctx(c.Request.Context()).Error().Err(err).Int("user_id", claims.UserID).Msg("role lookup failed")
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Something went wrong"})
			return
		}
		c.Next()
	}
}

func requireAdmin(ctx context.Context, roles RoleLookup, userID int) error {
	role, err := roles.Role(ctx, userID)
	if err != nil {
		return err
	}
	if role != model.RoleAdmin {
		return errNotAdmin
	}
	return nil
}
