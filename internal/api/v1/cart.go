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

type CartHandler struct {
	service service.CartService
	log     *logger.Logger
}

func NewCartHandler(service service.CartService, log *logger.Logger) *CartHandler {
	return &CartHandler{service: service, log: log}
}

// sessionID resolves the cart session token from the query or the
// session header set by the request middleware.
func sessionID(c *gin.Context) string {
	if id := c.Query("session_id"); id != "" {
		return id
	}
	return types.GetSessionID(c.Request.Context())
}

func (h *CartHandler) AddItem(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.AddItem(ctx, &req)
	if err != nil {
		h.log.Error("Failed to add cart item", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CartHandler) UpdateItem(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateItem(ctx, c.Param("id"), &req)
	if err != nil {
		h.log.Error("Failed to update cart item", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CartHandler) RemoveItem(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.service.RemoveItem(ctx, c.Param("id")); err != nil {
		h.log.Error("Failed to remove cart item", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

func (h *CartHandler) GetCart(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.service.GetCart(ctx, sessionID(c))
	if err != nil {
		h.log.Error("Failed to get cart", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CartHandler) ClearCart(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.service.ClearCart(ctx, sessionID(c)); err != nil {
		h.log.Error("Failed to clear cart", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}
