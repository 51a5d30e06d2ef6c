package notification

import (
	"github.com/kethil/tempursarihubstore-sub000/internal/config"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
	"github.com/kethil/tempursarihubstore-sub000/internal/notification/handler"
	"github.com/kethil/tempursarihubstore-sub000/internal/notification/publisher"
	"github.com/kethil/tempursarihubstore-sub000/internal/pubsub"
	"github.com/kethil/tempursarihubstore-sub000/internal/pubsub/memory"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
	"go.uber.org/fx"
)

// Module provides the notification pipeline dependencies.
var Module = fx.Options(
	fx.Provide(
		providePubSub,
		publisher.NewPublisher,
		handler.NewHandler,
	),
)

func providePubSub(
	cfg *config.Configuration,
	logger *logger.Logger,
) pubsub.PubSub {
	switch cfg.Notification.PubSub {
	case types.MemoryPubSub:
		return memory.NewPubSub(cfg, logger)
	}
	panic("unsupported pubsub type")
}
