package handler

import (
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// OrderHandler places and reads the caller's orders
type OrderHandler struct {
	service service.OrderService
}

func NewOrderHandler(s service.OrderService) *OrderHandler {
	return &OrderHandler{service: s}
}

func (h *OrderHandler) Create(c *gin.Context) {
	userID, _ := middleware.AuthUserID(c)

	var req model.CreateOrderRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	order, err := h.service.Create(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, order)
}

func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, _ := middleware.AuthUserID(c)

	orders, err := h.service.ListMine(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Get(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	userID, _ := middleware.AuthUserID(c)

	order, err := h.service.Get(c.Request.Context(), id, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// RegisterOrderRoutes registers order routes, all behind authentication
func (h *OrderHandler) RegisterOrderRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	orders := rg.Group("/orders", authMW)
	{
		orders.POST("", h.Create)
		orders.GET("", h.ListMine)
		orders.GET("/:id", h.Get)
	}
}
