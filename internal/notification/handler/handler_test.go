package handler

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kethil/tempursarihubstore-sub000/internal/config"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
	"github.com/kethil/tempursarihubstore-sub000/internal/notification/payload"
	"github.com/kethil/tempursarihubstore-sub000/internal/testutil"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
	"github.com/kethil/tempursarihubstore-sub000/internal/whatsapp"
)

func newTestHandler(t *testing.T, httpClient *testutil.MockHTTPClient) *handler {
	t.Helper()

	cfg := &config.Configuration{
		Notification: config.NotificationConfig{
			Topic:  "service_requests",
			PubSub: types.MemoryPubSub,
		},
		WhatsApp: config.WhatsAppConfig{
			GatewayURL: "http://waha.local",
			Session:    "default",
			APIKey:     "test-api-key",
		},
	}

	h, err := NewHandler(
		testutil.NewInMemoryPubSub(),
		cfg,
		whatsapp.NewClient(cfg, httpClient, logger.NewNopLogger()),
		logger.NewNopLogger(),
	)
	require.NoError(t, err)
	return h.(*handler)
}

func requestEventMessage(t *testing.T, eventName string) *message.Message {
	t.Helper()

	body, err := json.Marshal(&payload.RequestEventPayload{
		RequestID:     "req_01",
		RequestNumber: "REQ-20250115-X4K9QZ",
		ApplicantName: "Siti Aminah",
		Phone:         "081234567890",
		ServiceType:   types.ServiceTypeKTP,
		NewStatus:     types.RequestStatusPending,
	})
	require.NoError(t, err)

	event, err := json.Marshal(&types.NotificationEvent{
		ID:        "notif_01",
		EventName: eventName,
		Timestamp: time.Now().UTC(),
		Payload:   body,
	})
	require.NoError(t, err)

	return message.NewMessage(watermill.NewUUID(), event)
}

func TestProcessMessageDeliversText(t *testing.T) {
	httpClient := testutil.NewMockHTTPClient()
	httpClient.RegisterResponse("sendText", testutil.MockResponse{StatusCode: 200})
	h := newTestHandler(t, httpClient)

	err := h.processMessage(requestEventMessage(t, types.EventRequestCreated))
	require.NoError(t, err)

	requests := httpClient.Requests()
	require.Len(t, requests, 1)
	assert.Contains(t, string(requests[0].Body), "6281234567890@c.us")
	assert.Contains(t, string(requests[0].Body), "REQ-20250115-X4K9QZ")
	assert.Contains(t, string(requests[0].Body), "telah kami terima")
}

func TestProcessMessageMalformedEventNeverRetried(t *testing.T) {
	httpClient := testutil.NewMockHTTPClient()
	h := newTestHandler(t, httpClient)

	err := h.processMessage(message.NewMessage(watermill.NewUUID(), []byte("{not json")))
	assert.NoError(t, err)
	assert.Empty(t, httpClient.Requests())
}

func TestProcessMessageBadPayloadSwallowed(t *testing.T) {
	httpClient := testutil.NewMockHTTPClient()
	h := newTestHandler(t, httpClient)

	event, err := json.Marshal(&types.NotificationEvent{
		ID:        "notif_02",
		EventName: types.EventRequestCreated,
		Timestamp: time.Now().UTC(),
		Payload:   json.RawMessage(`"not an object"`),
	})
	require.NoError(t, err)

	err = h.processMessage(message.NewMessage(watermill.NewUUID(), event))
	assert.NoError(t, err)
	assert.Empty(t, httpClient.Requests())
}

func TestProcessMessageGatewayFailureSwallowed(t *testing.T) {
	httpClient := testutil.NewMockHTTPClient()
	httpClient.RegisterResponse("sendText", testutil.MockResponse{
		StatusCode: 500,
		Body:       []byte("gateway exploded"),
	})
	h := newTestHandler(t, httpClient)

	err := h.processMessage(requestEventMessage(t, types.EventRequestStatusChanged))
	assert.NoError(t, err)
	assert.Len(t, httpClient.Requests(), 1)
}
