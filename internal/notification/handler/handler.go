package handler

import (
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/kethil/tempursarihubstore-sub000/internal/config"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
	"github.com/kethil/tempursarihubstore-sub000/internal/notification/payload"
	"github.com/kethil/tempursarihubstore-sub000/internal/pubsub"
	pubsubRouter "github.com/kethil/tempursarihubstore-sub000/internal/pubsub/router"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
	"github.com/kethil/tempursarihubstore-sub000/internal/whatsapp"
)

// Handler consumes notification events and dispatches WhatsApp messages.
type Handler interface {
	RegisterHandler(router *pubsubRouter.Router)
}

type handler struct {
	pubSub   pubsub.PubSub
	config   *config.NotificationConfig
	whatsapp whatsapp.Client
	logger   *logger.Logger
}

func NewHandler(
	pubSub pubsub.PubSub,
	cfg *config.Configuration,
	whatsappClient whatsapp.Client,
	logger *logger.Logger,
) (Handler, error) {
	return &handler{
		pubSub:   pubSub,
		config:   &cfg.Notification,
		whatsapp: whatsappClient,
		logger:   logger,
	}, nil
}

func (h *handler) RegisterHandler(router *pubsubRouter.Router) {
	router.AddNoPublishHandler(
		"notification_handler",
		h.config.Topic,
		h.pubSub,
		h.processMessage,
	)
}

func (h *handler) processMessage(msg *message.Message) error {
	ctx := msg.Context()

	var event types.NotificationEvent
	if err := json.Unmarshal(msg.Payload, &event); err != nil {
		h.logger.Errorw("failed to unmarshal notification event",
			"error", err,
			"message_uuid", msg.UUID,
		)
		// malformed events are never retried
		return nil
	}

	requestPayload, err := payload.ParseRequestEventPayload(event.Payload)
	if err != nil {
		h.logger.Errorw("failed to decode request event payload",
			"error", err,
			"message_uuid", msg.UUID,
			"event_name", event.EventName,
		)
		return nil
	}

	text := payload.ComposeMessage(event.EventName, requestPayload)

	// Delivery failures are logged and swallowed here. The mutation
	// that published this event already returned to its caller and a
	// dead gateway must never surface as a request failure.
	if err := h.whatsapp.Send(ctx, requestPayload.Phone, text); err != nil {
		h.logger.Errorw("failed to deliver request notification",
			"error", err,
			"message_uuid", msg.UUID,
			"event_name", event.EventName,
			"request_number", requestPayload.RequestNumber,
		)
		return nil
	}

	h.logger.Infow("request notification dispatched",
		"message_uuid", msg.UUID,
		"event_name", event.EventName,
		"request_number", requestPayload.RequestNumber,
	)
	return nil
}
