package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kethil/tempursarihubstore-sub000/internal/api/dto"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
	"github.com/kethil/tempursarihubstore-sub000/internal/service"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

type ProductHandler struct {
	service service.ProductService
	log     *logger.Logger
}

func NewProductHandler(service service.ProductService, log *logger.Logger) *ProductHandler {
	return &ProductHandler{service: service, log: log}
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateProduct(ctx, &req)
	if err != nil {
		h.log.Error("Failed to create product", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *ProductHandler) GetProduct(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.service.GetProduct(ctx, c.Param("id"))
	if err != nil {
		h.log.Error("Failed to get product", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	ctx := c.Request.Context()
	var filter types.ProductFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.log.Error("Failed to bind query", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListProducts(ctx, &filter)
	if err != nil {
		h.log.Error("Failed to list products", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateProduct(ctx, c.Param("id"), &req)
	if err != nil {
		h.log.Error("Failed to update product", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.service.DeleteProduct(ctx, c.Param("id")); err != nil {
		h.log.Error("Failed to delete product", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}
