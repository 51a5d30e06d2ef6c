package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kethil/tempursarihubstore-sub000/internal/api/dto"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
	"github.com/kethil/tempursarihubstore-sub000/internal/service"
)

type AuthHandler struct {
	service service.AuthService
	log     *logger.Logger
}

func NewAuthHandler(service service.AuthService, log *logger.Logger) *AuthHandler {
	return &AuthHandler{service: service, log: log}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.SignUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.SignUp(ctx, &req)
	if err != nil {
		h.log.Error("Failed to sign up", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *AuthHandler) Login(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.Login(ctx, &req)
	if err != nil {
		h.log.Error("Failed to login", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
