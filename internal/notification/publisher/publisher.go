package publisher

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/kethil/tempursarihubstore-sub000/internal/config"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
	"github.com/kethil/tempursarihubstore-sub000/internal/pubsub"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

// NotificationPublisher produces request events on the notification topic.
type NotificationPublisher interface {
	PublishNotification(ctx context.Context, event *types.NotificationEvent) error
}

type notificationPublisher struct {
	pubSub pubsub.PubSub
	config *config.NotificationConfig
	logger *logger.Logger
}

func NewPublisher(
	pubSub pubsub.PubSub,
	cfg *config.Configuration,
	logger *logger.Logger,
) (NotificationPublisher, error) {
	return &notificationPublisher{
		pubSub: pubSub,
		config: &cfg.Notification,
		logger: logger,
	}, nil
}

func (p *notificationPublisher) PublishNotification(ctx context.Context, event *types.NotificationEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	messageID := event.ID
	if messageID == "" {
		messageID = watermill.NewUUID()
	}

	msg := message.NewMessage(messageID, payload)
	msg.Metadata.Set("event_name", event.EventName)

	p.logger.Debugw("publishing notification event",
		"event_id", event.ID,
		"event_name", event.EventName,
		"topic", p.config.Topic,
	)

	if err := p.pubSub.Publish(ctx, p.config.Topic, msg); err != nil {
		p.logger.Errorw("failed to publish notification event",
			"error", err,
			"event_id", event.ID,
			"event_name", event.EventName,
		)
		return err
	}

	return nil
}
