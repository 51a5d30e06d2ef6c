package v1

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kethil/tempursarihubstore-sub000/internal/api/dto"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
	"github.com/kethil/tempursarihubstore-sub000/internal/service"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

type ServiceRequestHandler struct {
	service service.ServiceRequestService
	log     *logger.Logger
}

func NewServiceRequestHandler(service service.ServiceRequestService, log *logger.Logger) *ServiceRequestHandler {
	return &ServiceRequestHandler{service: service, log: log}
}

func (h *ServiceRequestHandler) CreateRequest(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.CreateServiceRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.CreateRequest(ctx, &req)
	if err != nil {
		h.log.Error("Failed to create service request", "error", err)
		c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

func (h *ServiceRequestHandler) GetRequest(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.service.GetRequest(ctx, c.Param("id"))
	if err != nil {
		h.log.Error("Failed to get service request", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// TrackRequest is the public tracking endpoint keyed by request number.
func (h *ServiceRequestHandler) TrackRequest(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.service.TrackRequest(ctx, c.Param("number"))
	if err != nil {
		h.log.Error("Failed to track service request", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ServiceRequestHandler) ListRequests(c *gin.Context) {
	ctx := c.Request.Context()
	var filter types.ServiceRequestFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.log.Error("Failed to bind query", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.ListRequests(ctx, &filter)
	if err != nil {
		h.log.Error("Failed to list service requests", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ListMyRequests scopes the listing to the authenticated account.
func (h *ServiceRequestHandler) ListMyRequests(c *gin.Context) {
	ctx := c.Request.Context()
	var filter types.ServiceRequestFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.log.Error("Failed to bind query", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid filter parameters").
			Mark(ierr.ErrValidation))
		return
	}
	filter.UserID = types.GetUserID(ctx)

	resp, err := h.service.ListRequests(ctx, &filter)
	if err != nil {
		h.log.Error("Failed to list service requests", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ServiceRequestHandler) UpdateStatus(c *gin.Context) {
	ctx := c.Request.Context()
	var req dto.UpdateServiceRequestStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log.Error("Failed to bind JSON", "error", err)
		c.Error(ierr.WithError(err).
			WithHint("Invalid request format").
			Mark(ierr.ErrValidation))
		return
	}

	resp, err := h.service.UpdateStatus(ctx, c.Param("id"), &req)
	if err != nil {
		h.log.Error("Failed to update service request status", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// ResendNotification re-fires the current-status notification.
func (h *ServiceRequestHandler) ResendNotification(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.service.ResendNotification(ctx, c.Param("id")); err != nil {
		h.log.Error("Failed to resend notification", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Notification queued"})
}

// UploadDocument accepts one multipart file and stores it, returning
// the metadata the caller embeds in a request submission.
func (h *ServiceRequestHandler) UploadDocument(c *gin.Context) {
	ctx := c.Request.Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("A file form field is required").
			Mark(ierr.ErrValidation))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Failed to read uploaded file").
			Mark(ierr.ErrValidation))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.Error(ierr.WithError(err).
			WithHint("Failed to read uploaded file").
			Mark(ierr.ErrValidation))
		return
	}

	doc, err := h.service.UploadDocument(ctx, &dto.UploadDocumentRequest{
		Kind:        types.DocumentKind(c.PostForm("kind")),
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	})
	if err != nil {
		h.log.Error("Failed to upload document", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// ListDocuments returns the uploaded attachments of a request.
func (h *ServiceRequestHandler) ListDocuments(c *gin.Context) {
	ctx := c.Request.Context()
	resp, err := h.service.GetRequest(ctx, c.Param("id"))
	if err != nil {
		h.log.Error("Failed to get service request", "error", err)
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"documents": resp.Documents})
}
