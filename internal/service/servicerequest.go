package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/kethil/tempursarihubstore-sub000/internal/api/dto"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/servicerequest"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	notificationPayload "github.com/kethil/tempursarihubstore-sub000/internal/notification/payload"
	"github.com/kethil/tempursarihubstore-sub000/internal/s3"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

type ServiceRequestService interface {
	CreateRequest(ctx context.Context, req *dto.CreateServiceRequestRequest) (*dto.ServiceRequestResponse, error)
	GetRequest(ctx context.Context, id string) (*dto.ServiceRequestResponse, error)
	TrackRequest(ctx context.Context, requestNumber string) (*dto.ServiceRequestResponse, error)
	ListRequests(ctx context.Context, filter *types.ServiceRequestFilter) (*dto.ListServiceRequestsResponse, error)
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateServiceRequestStatusRequest) (*dto.ServiceRequestResponse, error)
	ResendNotification(ctx context.Context, id string) error
	UploadDocument(ctx context.Context, req *dto.UploadDocumentRequest) (*types.Document, error)
}

type serviceRequestService struct {
	ServiceParams
}

func NewServiceRequestService(params ServiceParams) ServiceRequestService {
	return &serviceRequestService{ServiceParams: params}
}

func (s *serviceRequestService) CreateRequest(ctx context.Context, req *dto.CreateServiceRequestRequest) (*dto.ServiceRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record := req.ToServiceRequest(ctx)
	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := s.ServiceRequestRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	s.publishRequestEvent(ctx, types.EventRequestCreated, record, "")

	return dto.ToServiceRequestResponse(record), nil
}

func (s *serviceRequestService) GetRequest(ctx context.Context, id string) (*dto.ServiceRequestResponse, error) {
	record, err := s.ServiceRequestRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToServiceRequestResponse(record), nil
}

// TrackRequest is the public lookup by request number that citizens use
// to follow their application.
func (s *serviceRequestService) TrackRequest(ctx context.Context, requestNumber string) (*dto.ServiceRequestResponse, error) {
	if requestNumber == "" {
		return nil, ierr.NewError("request number is required").
			WithHint("Provide the request number from your submission receipt").
			Mark(ierr.ErrValidation)
	}

	record, err := s.ServiceRequestRepo.GetByRequestNumber(ctx, requestNumber)
	if err != nil {
		return nil, err
	}
	return dto.ToServiceRequestResponse(record), nil
}

func (s *serviceRequestService) ListRequests(ctx context.Context, filter *types.ServiceRequestFilter) (*dto.ListServiceRequestsResponse, error) {
	if filter == nil {
		filter = types.NewServiceRequestFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.ServiceRequestRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.ServiceRequestRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ServiceRequestResponse, 0, len(records))
	for _, record := range records {
		items = append(items, dto.ToServiceRequestResponse(record))
	}

	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

// UpdateStatus applies an operator's status change. A change publishes
// exactly one notification event; setting the same status again
// publishes nothing.
func (s *serviceRequestService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateServiceRequestStatusRequest) (*dto.ServiceRequestResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record, err := s.ServiceRequestRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	oldStatus := record.RequestStatus
	record.RequestStatus = req.RequestStatus
	if req.Notes != "" {
		record.Notes = req.Notes
	}
	record.UpdatedAt = time.Now().UTC()
	record.UpdatedBy = types.GetUserID(ctx)

	if operatorID := types.GetUserID(ctx); operatorID != types.DefaultUserID {
		record.OperatorID = &operatorID
	}
	if req.RequestStatus == types.RequestStatusCompleted && record.CompletedAt == nil {
		now := time.Now().UTC()
		record.CompletedAt = &now
	}

	if err := s.ServiceRequestRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	if oldStatus != record.RequestStatus {
		s.publishRequestEvent(ctx, types.EventRequestStatusChanged, record, oldStatus)
	}

	return dto.ToServiceRequestResponse(record), nil
}

// ResendNotification re-fires the notification for the request's
// current status.
func (s *serviceRequestService) ResendNotification(ctx context.Context, id string) error {
	record, err := s.ServiceRequestRepo.Get(ctx, id)
	if err != nil {
		return err
	}

	s.publishRequestEvent(ctx, types.EventRequestStatusChanged, record, "")
	return nil
}

// UploadDocument stores one attachment and returns the metadata the
// caller embeds in its submission. Paths are prefixed with a fresh
// document ID so uploads never collide.
func (s *serviceRequestService) UploadDocument(ctx context.Context, req *dto.UploadDocumentRequest) (*types.Document, error) {
	if s.S3 == nil {
		return nil, ierr.NewError("document storage is disabled").
			WithHint("Document upload is not available").
			Mark(ierr.ErrInvalidOperation)
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("requests/%s/%s",
		types.GenerateUUIDWithPrefix(types.UUID_PREFIX_DOCUMENT),
		sanitizeFileName(req.FileName),
	)

	var object *s3.Object
	switch req.Kind {
	case types.DocumentKindImage:
		object = s3.NewImageObject(path, req.Data, req.ContentType)
	default:
		object = s3.NewFileObject(path, req.Data, req.ContentType)
	}

	if err := s.S3.Upload(ctx, object); err != nil {
		return nil, err
	}

	doc := &types.Document{
		Kind:        object.Kind,
		Path:        path,
		ContentType: req.ContentType,
	}
	if url := s.S3.PublicURL(path); url != "" {
		doc.URL = url
	} else if url, err := s.S3.GetPresignedUrl(ctx, path); err == nil {
		doc.URL = url
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

func sanitizeFileName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return "document"
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, name)
}

// publishRequestEvent publishes on the notification bus. Publish
// failures are logged and swallowed so the mutation result already
// committed is returned to the caller regardless.
func (s *serviceRequestService) publishRequestEvent(ctx context.Context, eventName string, record *servicerequest.ServiceRequest, oldStatus types.RequestStatus) {
	payload, err := json.Marshal(&notificationPayload.RequestEventPayload{
		RequestID:     record.ID,
		RequestNumber: record.RequestNumber,
		ApplicantName: record.ApplicantName,
		Phone:         record.Phone,
		ServiceType:   record.ServiceType,
		OldStatus:     oldStatus,
		NewStatus:     record.RequestStatus,
		Notes:         record.Notes,
	})
	if err != nil {
		s.Logger.Errorw("failed to encode request event payload",
			"error", err,
			"request_id", record.ID,
		)
		return
	}

	event := &types.NotificationEvent{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_NOTIFICATION_EVENT),
		EventName: eventName,
		UserID:    types.GetUserID(ctx),
		Timestamp: time.Now().UTC(),
		Payload:   payload,
	}

	if err := s.NotificationPublisher.PublishNotification(ctx, event); err != nil {
		s.Logger.Errorw("failed to publish request event",
			"error", err,
			"event_name", eventName,
			"request_id", record.ID,
		)
	}
}
