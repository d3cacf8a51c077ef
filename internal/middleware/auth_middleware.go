package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"storefront/internal/utils"
)

const (
	AuthUserKey  = "authUserID"
	AuthEmailKey = "authEmail"
)

var (
	ErrMissingAuthHeader   = errors.New("authorization header required")
	ErrMalformedAuthHeader = errors.New("invalid authorization header format")
)

// Authenticate is the identity stage shared by every protected route. It
// reads "Authorization: Bearer <token>" and returns the verified claims.
func Authenticate(c *gin.Context, jwtUtil *utils.JWTUtil) (*utils.JWTClaims, error) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, ErrMissingAuthHeader
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return nil, ErrMalformedAuthHeader
	}

	return jwtUtil.ValidateToken(parts[1])
}

// JWTAuthMiddleware creates a middleware for JWT authentication
func JWTAuthMiddleware(jwtUtil *utils.JWTUtil) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := Authenticate(c, jwtUtil)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}
		setIdentity(c, claims)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	zerolog.Ctx(c.Request.Context()).Debug().Err(err).Msg("authentication failed")

	message := "Not authorized, token failed"
	if errors.Is(err, ErrMissingAuthHeader) || errors.Is(err, ErrMalformedAuthHeader) {
		message = "Not authorized, no token"
	}
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": message})
}

func setIdentity(c *gin.Context, claims *utils.JWTClaims) {
	c.Set(AuthUserKey, claims.UserID)
	c.Set(AuthEmailKey, claims.Email)
}

// AuthUserID returns the id attached by the identity stage
func AuthUserID(c *gin.Context) (int, bool) {
	v, exists := c.Get(AuthUserKey)
	if !exists {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

// AuthEmail returns the email attached by the identity stage
func AuthEmail(c *gin.Context) string {
	return c.GetString(AuthEmailKey)
}
