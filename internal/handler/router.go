package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"storefront/internal/middleware"
	"storefront/internal/service"
	"storefront/internal/utils"
)

// Pinger reports database reachability for /health
type Pinger interface {
	Ping(ctx context.Context) error
}

// Services bundles everything the HTTP layer talks to
type Services struct {
	Auth    service.AuthService
	Users   service.UserService
	Product service.ProductService
	Orders  service.OrderService
	Catalog service.CatalogService
}

// NewRouter builds the gin engine with middleware and every route mounted
func NewRouter(svc Services, jwtUtil *utils.JWTUtil, db Pinger, log zerolog.Logger) *gin.Engine {
	useJSONFieldNames()

	router := gin.New()
	router.Use(middleware.RequestLogger(log), middleware.Recovery(), middleware.CORS())

	jwtAuthMW := middleware.JWTAuthMiddleware(jwtUtil)
	adminMW := middleware.AdminMiddleware(jwtUtil, svc.Users)

	root := router.Group("")
	NewAuthHandler(svc.Auth).RegisterAuthRoutes(root)
	NewUserHandler(svc.Users).RegisterUserRoutes(root, jwtAuthMW)
	NewProductHandler(svc.Product).RegisterProductRoutes(root, adminMW)
	NewOrderHandler(svc.Orders).RegisterOrderRoutes(root, jwtAuthMW)
	NewCatalogHandler(svc.Catalog).RegisterCatalogRoutes(root, adminMW)

	router.GET("/health", health(db))
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"message": "Route not found"})
	})

	return router
}

func health(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			zerolog.Ctx(c.Request.Context()).Warn().Err(err).Msg("database ping failed")
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	}
}
