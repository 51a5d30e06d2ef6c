package dto

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/servicerequest"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

// CreateServiceRequestRequest represents the request payload for
// submitting a new document application
type CreateServiceRequestRequest struct {
	ApplicantName string             `json:"applicant_name" binding:"required"`
	NIK           string             `json:"nik" binding:"required"`
	Phone         string             `json:"phone" binding:"required"`
	ServiceType   types.ServiceType  `json:"service_type" binding:"required"`
	Documents     types.DocumentList `json:"documents"`
}

// UploadDocumentRequest carries one attachment received from a
// multipart form before the request itself is submitted.
type UploadDocumentRequest struct {
	Kind        types.DocumentKind
	FileName    string
	ContentType string
	Data        []byte
}

func (r *UploadDocumentRequest) Validate() error {
	if r.Kind == "" {
		r.Kind = types.DocumentKindFile
	}
	if r.Kind != types.DocumentKindFile && r.Kind != types.DocumentKindImage {
		return ierr.NewErrorf("invalid document kind: %s", r.Kind).
			WithHint("Document kind must be file or image").
			Mark(ierr.ErrValidation)
	}
	if len(r.Data) == 0 {
		return ierr.NewError("document file is required").
			WithHint("Attach a non-empty file").
			Mark(ierr.ErrValidation)
	}
	if r.ContentType == "" {
		return ierr.NewError("document content type is required").
			WithHint("Uploaded documents must carry a content type").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// UpdateServiceRequestStatusRequest represents the operator-side status
// mutation. Notes are optional and shown to the applicant.
type UpdateServiceRequestStatusRequest struct {
	RequestStatus types.RequestStatus `json:"request_status" binding:"required"`
	Notes         string              `json:"notes"`
}

// ServiceRequestResponse represents the service request response structure
type ServiceRequestResponse struct {
	ID            string              `json:"id"`
	RequestNumber string              `json:"request_number"`
	ApplicantName string              `json:"applicant_name"`
	NIK           string              `json:"nik"`
	Phone         string              `json:"phone"`
	ServiceType   types.ServiceType   `json:"service_type"`
	ServiceName   string              `json:"service_name"`
	RequestStatus types.RequestStatus `json:"request_status"`
	StatusDisplay string              `json:"status_display"`
	Notes         string              `json:"notes,omitempty"`
	Documents     types.DocumentList  `json:"documents,omitempty"`
	UserID        *string             `json:"user_id,omitempty"`
	OperatorID    *string             `json:"operator_id,omitempty"`
	CompletedAt   *time.Time          `json:"completed_at,omitempty"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

type ListServiceRequestsResponse = types.ListResponse[*ServiceRequestResponse]

func ToServiceRequestResponse(r *servicerequest.ServiceRequest) *ServiceRequestResponse {
	return &ServiceRequestResponse{
		ID:            r.ID,
		RequestNumber: r.RequestNumber,
		ApplicantName: r.ApplicantName,
		NIK:           r.NIK,
		Phone:         r.Phone,
		ServiceType:   r.ServiceType,
		ServiceName:   r.ServiceType.Display(),
		RequestStatus: r.RequestStatus,
		StatusDisplay: r.RequestStatus.Display(),
		Notes:         r.Notes,
		Documents:     r.Documents,
		UserID:        r.UserID,
		OperatorID:    r.OperatorID,
		CompletedAt:   r.CompletedAt,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func (r *CreateServiceRequestRequest) Validate() error {
	return validator.New().Struct(r)
}

func (r *UpdateServiceRequestStatusRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	return r.RequestStatus.Validate()
}

// ToServiceRequest converts the request payload to a domain record with
// a freshly generated request number.
func (r *CreateServiceRequestRequest) ToServiceRequest(ctx context.Context) *servicerequest.ServiceRequest {
	req := &servicerequest.ServiceRequest{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SERVICE_REQUEST),
		RequestNumber: types.GenerateRequestNumber(),
		ApplicantName: r.ApplicantName,
		NIK:           r.NIK,
		Phone:         r.Phone,
		ServiceType:   r.ServiceType,
		RequestStatus: types.RequestStatusPending,
		Documents:     r.Documents,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
	if types.IsAuthenticated(ctx) {
		userID := types.GetUserID(ctx)
		req.UserID = &userID
	}
	return req
}
