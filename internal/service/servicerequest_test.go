package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/kethil/tempursarihubstore-sub000/internal/api/dto"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/servicerequest"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	notificationPayload "github.com/kethil/tempursarihubstore-sub000/internal/notification/payload"
	"github.com/kethil/tempursarihubstore-sub000/internal/testutil"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

type ServiceRequestServiceSuite struct {
	testutil.BaseServiceTestSuite
	service     ServiceRequestService
	requestRepo *testutil.InMemoryServiceRequestStore
	storage     *testutil.MockStorageService
}

func TestServiceRequestService(t *testing.T) {
	suite.Run(t, new(ServiceRequestServiceSuite))
}

func (s *ServiceRequestServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
}

func (s *ServiceRequestServiceSuite) setupService() {
	stores := s.GetStores()
	s.requestRepo = stores.ServiceRequestRepo.(*testutil.InMemoryServiceRequestStore)
	s.storage = testutil.NewMockStorageService()

	s.service = NewServiceRequestService(ServiceParams{
		Logger:                s.GetLogger(),
		Config:                s.GetConfig(),
		DB:                    s.GetDB(),
		S3:                    s.storage,
		AuthRepo:              stores.AuthRepo,
		ProfileRepo:           stores.ProfileRepo,
		ServiceRequestRepo:    stores.ServiceRequestRepo,
		ProductRepo:           stores.ProductRepo,
		CategoryRepo:          stores.CategoryRepo,
		CartRepo:              stores.CartRepo,
		OrderRepo:             stores.OrderRepo,
		NotificationPublisher: s.GetPublisher(),
		Client:                s.GetHTTPClient(),
	})
}

func (s *ServiceRequestServiceSuite) publishedEvents() []*types.NotificationEvent {
	msgs := s.GetPubSub().GetMessages(s.GetConfig().Notification.Topic)
	events := make([]*types.NotificationEvent, 0, len(msgs))
	for _, msg := range msgs {
		var event types.NotificationEvent
		s.NoError(json.Unmarshal(msg.Payload, &event))
		events = append(events, &event)
	}
	return events
}

func (s *ServiceRequestServiceSuite) TestCreateRequest() {
	resp, err := s.service.CreateRequest(s.GetContext(), &dto.CreateServiceRequestRequest{
		ApplicantName: "Siti Aminah",
		NIK:           "3507126012990001",
		Phone:         "081234567890",
		ServiceType:   types.ServiceTypeKTP,
	})
	s.NoError(err)
	s.NotNil(resp)
	s.NotEmpty(resp.ID)
	s.NotEmpty(resp.RequestNumber)
	s.Equal(types.RequestStatusPending, resp.RequestStatus)

	events := s.publishedEvents()
	s.Len(events, 1)
	s.Equal(types.EventRequestCreated, events[0].EventName)

	payload, err := notificationPayload.ParseRequestEventPayload(events[0].Payload)
	s.NoError(err)
	s.Equal(resp.RequestNumber, payload.RequestNumber)
	s.Equal("081234567890", payload.Phone)
}

func (s *ServiceRequestServiceSuite) TestCreateRequestInvalidNIK() {
	_, err := s.service.CreateRequest(s.GetContext(), &dto.CreateServiceRequestRequest{
		ApplicantName: "Siti Aminah",
		NIK:           "12345",
		Phone:         "081234567890",
		ServiceType:   types.ServiceTypeKTP,
	})
	s.Error(err)
	s.Empty(s.publishedEvents())
}

func (s *ServiceRequestServiceSuite) TestUpdateStatusPublishesOnce() {
	created, err := s.service.CreateRequest(s.GetContext(), &dto.CreateServiceRequestRequest{
		ApplicantName: "Budi Santoso",
		NIK:           "3507121503880002",
		Phone:         "081299887766",
		ServiceType:   types.ServiceTypeSuratDomisili,
	})
	s.NoError(err)

	resp, err := s.service.UpdateStatus(s.GetContext(), created.ID, &dto.UpdateServiceRequestStatusRequest{
		RequestStatus: types.RequestStatusOnProcess,
		Notes:         "Sedang diverifikasi",
	})
	s.NoError(err)
	s.Equal(types.RequestStatusOnProcess, resp.RequestStatus)
	s.Equal("Sedang diverifikasi", resp.Notes)

	events := s.publishedEvents()
	s.Len(events, 2) // creation + status change
	s.Equal(types.EventRequestStatusChanged, events[1].EventName)

	payload, err := notificationPayload.ParseRequestEventPayload(events[1].Payload)
	s.NoError(err)
	s.Equal(types.RequestStatusPending, payload.OldStatus)
	s.Equal(types.RequestStatusOnProcess, payload.NewStatus)
}

func (s *ServiceRequestServiceSuite) TestUpdateStatusSameStatusPublishesNothing() {
	created, err := s.service.CreateRequest(s.GetContext(), &dto.CreateServiceRequestRequest{
		ApplicantName: "Budi Santoso",
		NIK:           "3507121503880002",
		Phone:         "081299887766",
		ServiceType:   types.ServiceTypeKK,
	})
	s.NoError(err)
	s.Len(s.publishedEvents(), 1)

	_, err = s.service.UpdateStatus(s.GetContext(), created.ID, &dto.UpdateServiceRequestStatusRequest{
		RequestStatus: types.RequestStatusPending,
	})
	s.NoError(err)
	s.Len(s.publishedEvents(), 1)
}

func (s *ServiceRequestServiceSuite) TestUpdateStatusCompletedSetsCompletedAt() {
	created, err := s.service.CreateRequest(s.GetContext(), &dto.CreateServiceRequestRequest{
		ApplicantName: "Budi Santoso",
		NIK:           "3507121503880002",
		Phone:         "081299887766",
		ServiceType:   types.ServiceTypeKTP,
	})
	s.NoError(err)

	resp, err := s.service.UpdateStatus(s.GetContext(), created.ID, &dto.UpdateServiceRequestStatusRequest{
		RequestStatus: types.RequestStatusCompleted,
	})
	s.NoError(err)
	s.NotNil(resp.CompletedAt)
}

func (s *ServiceRequestServiceSuite) TestResendNotification() {
	created, err := s.service.CreateRequest(s.GetContext(), &dto.CreateServiceRequestRequest{
		ApplicantName: "Siti Aminah",
		NIK:           "3507126012990001",
		Phone:         "081234567890",
		ServiceType:   types.ServiceTypeKTP,
	})
	s.NoError(err)
	s.Len(s.publishedEvents(), 1)

	s.NoError(s.service.ResendNotification(s.GetContext(), created.ID))

	events := s.publishedEvents()
	s.Len(events, 2)
	s.Equal(types.EventRequestStatusChanged, events[1].EventName)

	payload, err := notificationPayload.ParseRequestEventPayload(events[1].Payload)
	s.NoError(err)
	s.Equal(types.RequestStatusPending, payload.NewStatus)
}

func (s *ServiceRequestServiceSuite) TestTrackRequest() {
	created, err := s.service.CreateRequest(s.GetContext(), &dto.CreateServiceRequestRequest{
		ApplicantName: "Siti Aminah",
		NIK:           "3507126012990001",
		Phone:         "081234567890",
		ServiceType:   types.ServiceTypeSuratUsaha,
	})
	s.NoError(err)

	resp, err := s.service.TrackRequest(s.GetContext(), created.RequestNumber)
	s.NoError(err)
	s.Equal(created.ID, resp.ID)

	_, err = s.service.TrackRequest(s.GetContext(), "REQ-20200101-UNKNOWN")
	s.Error(err)
	s.True(ierr.IsNotFound(err))

	_, err = s.service.TrackRequest(s.GetContext(), "")
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ServiceRequestServiceSuite) TestListRequestsFiltered() {
	ctx := s.GetContext()
	for _, status := range []types.RequestStatus{
		types.RequestStatusPending,
		types.RequestStatusOnProcess,
		types.RequestStatusCompleted,
	} {
		record := &servicerequest.ServiceRequest{
			ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_SERVICE_REQUEST),
			RequestNumber: types.GenerateRequestNumber(),
			ApplicantName: "Warga Tempursari",
			NIK:           "3507126012990001",
			Phone:         "081234567890",
			ServiceType:   types.ServiceTypeKTP,
			RequestStatus: status,
			BaseModel:     types.GetDefaultBaseModel(ctx),
		}
		s.NoError(s.requestRepo.Create(ctx, record))
	}

	filter := types.NewServiceRequestFilter()
	filter.RequestStatuses = []types.RequestStatus{types.RequestStatusPending}
	resp, err := s.service.ListRequests(ctx, filter)
	s.NoError(err)
	s.Equal(1, resp.Pagination.Total)
	s.Len(resp.Items, 1)

	resp, err = s.service.ListRequests(ctx, nil)
	s.NoError(err)
	s.Equal(3, resp.Pagination.Total)
}

func (s *ServiceRequestServiceSuite) TestUpdateStatusUnknownRequest() {
	_, err := s.service.UpdateStatus(s.GetContext(), "req_missing", &dto.UpdateServiceRequestStatusRequest{
		RequestStatus: types.RequestStatusOnProcess,
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *ServiceRequestServiceSuite) TestUploadDocument() {
	doc, err := s.service.UploadDocument(s.GetContext(), &dto.UploadDocumentRequest{
		Kind:        types.DocumentKindImage,
		FileName:    "Foto KTP.JPG",
		ContentType: "image/jpeg",
		Data:        []byte("jpeg-bytes"),
	})
	s.NoError(err)
	s.Equal(types.DocumentKindImage, doc.Kind)
	s.Contains(doc.Path, "requests/doc_")
	s.Contains(doc.Path, "foto-ktp.jpg")
	s.Equal("https://storage.test/"+doc.Path, doc.URL)

	stored := s.storage.GetObject(doc.Path)
	s.NotNil(stored)
	s.Equal("image/jpeg", stored.ContentType)
	s.Equal([]byte("jpeg-bytes"), stored.Data)
}

func (s *ServiceRequestServiceSuite) TestUploadDocumentPresignedFallback() {
	s.storage.PublicBaseURL = ""

	doc, err := s.service.UploadDocument(s.GetContext(), &dto.UploadDocumentRequest{
		FileName:    "surat-pengantar.pdf",
		ContentType: "application/pdf",
		Data:        []byte("pdf-bytes"),
	})
	s.NoError(err)
	s.Equal(types.DocumentKindFile, doc.Kind)
	s.Contains(doc.URL, "presigned")
	s.Contains(doc.URL, doc.Path)
}

func (s *ServiceRequestServiceSuite) TestUploadDocumentEmptyFile() {
	_, err := s.service.UploadDocument(s.GetContext(), &dto.UploadDocumentRequest{
		FileName:    "kosong.pdf",
		ContentType: "application/pdf",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *ServiceRequestServiceSuite) TestUploadDocumentStorageDisabled() {
	stores := s.GetStores()
	disabled := NewServiceRequestService(ServiceParams{
		Logger:                s.GetLogger(),
		Config:                s.GetConfig(),
		DB:                    s.GetDB(),
		ServiceRequestRepo:    stores.ServiceRequestRepo,
		NotificationPublisher: s.GetPublisher(),
	})

	_, err := disabled.UploadDocument(s.GetContext(), &dto.UploadDocumentRequest{
		FileName:    "surat.pdf",
		ContentType: "application/pdf",
		Data:        []byte("pdf-bytes"),
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *ServiceRequestServiceSuite) TestCreateRequestSurvivesDeadBus() {
	s.GetPubSub().PublishErr = errors.New("bus is down")

	resp, err := s.service.CreateRequest(s.GetContext(), &dto.CreateServiceRequestRequest{
		ApplicantName: "Siti Aminah",
		NIK:           "3507126012990001",
		Phone:         "081234567890",
		ServiceType:   types.ServiceTypeKTP,
	})
	s.NoError(err)
	s.NotNil(resp)

	stored, err := s.requestRepo.Get(s.GetContext(), resp.ID)
	s.NoError(err)
	s.Equal(resp.RequestNumber, stored.RequestNumber)
	s.Empty(s.publishedEvents())
}

func (s *ServiceRequestServiceSuite) TestUpdateStatusSurvivesDeadBus() {
	created, err := s.service.CreateRequest(s.GetContext(), &dto.CreateServiceRequestRequest{
		ApplicantName: "Budi Santoso",
		NIK:           "3507121503880002",
		Phone:         "081299887766",
		ServiceType:   types.ServiceTypeSuratDomisili,
	})
	s.NoError(err)

	s.GetPubSub().PublishErr = errors.New("bus is down")

	resp, err := s.service.UpdateStatus(s.GetContext(), created.ID, &dto.UpdateServiceRequestStatusRequest{
		RequestStatus: types.RequestStatusOnProcess,
	})
	s.NoError(err)
	s.Equal(types.RequestStatusOnProcess, resp.RequestStatus)

	stored, err := s.requestRepo.Get(s.GetContext(), created.ID)
	s.NoError(err)
	s.Equal(types.RequestStatusOnProcess, stored.RequestStatus)
}
