package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"storefront/internal/service"
)

const internalErrorMessage = "Something went wrong"

// respondError maps service errors to a status and a {"message"} body.
// Anything unclassified is logged and hidden behind a generic 500.
func respondError(c *gin.Context, err error) {
	var verr *service.ValidationError
	switch {
	case errors.As(err, &verr):
		body := gin.H{"message": verr.Message}
		if verr.Field != "" {
			body["field"] = verr.Field
		}
		c.JSON(http.StatusBadRequest, body)
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid email or password"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden: you can only access your own resources"})
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "User not found"})
	case errors.Is(err, service.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
	case errors.Is(err, service.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Order not found"})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, gin.H{"message": "Email already exists"})
	case errors.Is(err, service.ErrUserHasOrders):
		c.JSON(http.StatusConflict, gin.H{"message": "User has existing orders and cannot be deleted"})
	case errors.Is(err, service.ErrProductInUse):
		c.JSON(http.StatusConflict, gin.H{"message": "Product is referenced by existing orders"})
	case errors.Is(err, service.ErrNoFulfillmentCapacity):
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("order rejected")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "No fulfillment capacity: no employees available to assign the order"})
	default:
		zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": internalErrorMessage})
	}
}

// paramID parses a positive integer path parameter and writes a 400 when it
// is not one.
func paramID(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid ID format", "field": name})
		return 0, false
	}
	return id, true
}
