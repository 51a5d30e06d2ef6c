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

type OrderHandler struct {
	service service.OrderService
	log     *logger.Logger
}

func NewOrderHandler(service service.OrderService, log *logger.Logger) *OrderHandler {
	return &OrderHandler{service: service, log: log}
}

func (h *OrderHandler) Checkout(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.Checkout(ctx, &req)
	if err != nil {
		h.log.Error("Failed to checkout", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *OrderHandler) GetOrder(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.service.GetOrder(ctx, c.Param("id"))
	if err != nil {
		h.log.Error("Failed to get order", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TrackOrder is the public tracking endpoint keyed by order number.
func (h *OrderHandler) TrackOrder(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.service.TrackOrder(ctx, c.Param("number"))
	if err != nil {
		h.log.Error("Failed to track order", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) ListOrders(c *gin.Context) {
	ctx := c.Request.Context()
	var filter types.OrderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.log.Error("Failed to bind query", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListOrders(ctx, &filter)
	if err != nil {
		h.log.Error("Failed to list orders", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListMyOrders scopes the listing to the authenticated account.
func (h *OrderHandler) ListMyOrders(c *gin.Context) {
	ctx := c.Request.Context()
	var filter types.OrderFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.log.Error("Failed to bind query", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}
	filter.UserID = types.GetUserID(ctx)

	resp, err := h.service.ListOrders(ctx, &filter)
	if err != nil {
		h.log.Error("Failed to list orders", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateStatus(ctx, c.Param("id"), &req)
	if err != nil {
		h.log.Error("Failed to update order status", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) BulkUpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.BulkUpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	if err := h.service.BulkUpdateStatus(ctx, &req); err != nil {
		h.log.Error("Failed to bulk update order status", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Orders updated successfully"})
}

func (h *OrderHandler) GetStatusHistory(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.service.GetStatusHistory(ctx, c.Param("id"))
	if err != nil {
		h.log.Error("Failed to get order status history", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"history": resp})
}
