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

type ProfileHandler struct {
	service service.ProfileService
	log     *logger.Logger
}

func NewProfileHandler(service service.ProfileService, log *logger.Logger) *ProfileHandler {
	return &ProfileHandler{service: service, log: log}
}

func (h *ProfileHandler) GetMyProfile(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.service.GetProfile(ctx, types.GetUserID(ctx))
	if err != nil {
		h.log.Error("Failed to get profile", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProfileHandler) UpdateMyProfile(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateProfile(ctx, types.GetUserID(ctx), &req)
	if err != nil {
		h.log.Error("Failed to update profile", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
