package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
	"github.com/kethil/tempursarihubstore-sub000/internal/s3"
)

type HealthHandler struct {
	s3  s3.Service
	log *logger.Logger
}

func NewHealthHandler(s3Service s3.Service, log *logger.Logger) *HealthHandler {
	return &HealthHandler{s3: s3Service, log: log}
}

// Health reports liveness plus whether document storage is reachable.
func (h *HealthHandler) Health(c *gin.Context) {
	storage := "disabled"
	if h.s3 != nil {
		storage = "ok"
		if _, err := h.s3.Exists(c.Request.Context(), ".healthcheck"); err != nil {
			h.log.Errorw("storage probe failed", "error", err)
			storage = "unreachable"
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"storage": storage,
	})
}
