package handler

import (
	"net/http"

	"storefront/internal/model"
	"storefront/internal/service"

	"github.com/gin-gonic/gin"
)

// CatalogHandler exposes reference data and the employee pool
type CatalogHandler struct {
	service service.CatalogService
}

func NewCatalogHandler(s service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

func (h *CatalogHandler) Categories(c *gin.Context) {
	categories, err := h.service.Categories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (h *CatalogHandler) PaymentMethods(c *gin.Context) {
	methods, err := h.service.PaymentMethods(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, methods)
}

func (h *CatalogHandler) Employees(c *gin.Context) {
	employees, err := h.service.Employees(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *CatalogHandler) CreateEmployee(c *gin.Context) {
	var req model.CreateEmployeeRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, err)
		return
	}

	employee, err := h.service.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

// RegisterCatalogRoutes registers reference data and employee routes
func (h *CatalogHandler) RegisterCatalogRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	rg.GET("/categories", h.Categories)
	rg.GET("/payment-methods", h.PaymentMethods)

	employees := rg.Group("/employees", adminMW)
	{
		employees.GET("", h.Employees)
		employees.POST("", h.CreateEmployee)
	}
}
