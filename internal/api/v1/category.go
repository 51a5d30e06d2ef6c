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

type CategoryHandler struct {
	service service.CategoryService
	log     *logger.Logger
}

func NewCategoryHandler(service service.CategoryService, log *logger.Logger) *CategoryHandler {
	return &CategoryHandler{service: service, log: log}
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateCategory(ctx, &req)
	if err != nil {
		h.log.Error("Failed to create category", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CategoryHandler) GetCategory(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.service.GetCategory(ctx, c.Param("id"))
	if err != nil {
		h.log.Error("Failed to get category", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CategoryHandler) ListCategories(c *gin.Context) {
	ctx := c.Request.Context()
	var filter types.QueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.log.Error("Failed to bind query", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListCategories(ctx, &filter)
	if err != nil {
		h.log.Error("Failed to list categories", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateCategory(ctx, c.Param("id"), &req)
	if err != nil {
		h.log.Error("Failed to update category", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.service.DeleteCategory(ctx, c.Param("id")); err != nil {
		h.log.Error("Failed to delete category", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
