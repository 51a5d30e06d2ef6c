package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/kethil/tempursarihubstore-sub000/internal/api"
	v1 "github.com/kethil/tempursarihubstore-sub000/internal/api/v1"
	"github.com/kethil/tempursarihubstore-sub000/internal/config"
	"github.com/kethil/tempursarihubstore-sub000/internal/httpclient"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
	"github.com/kethil/tempursarihubstore-sub000/internal/notification"
	notificationHandler "github.com/kethil/tempursarihubstore-sub000/internal/notification/handler"
	"github.com/kethil/tempursarihubstore-sub000/internal/postgres"
	pubsubRouter "github.com/kethil/tempursarihubstore-sub000/internal/pubsub/router"
	"github.com/kethil/tempursarihubstore-sub000/internal/repository"
	"github.com/kethil/tempursarihubstore-sub000/internal/rest/middleware"
	"github.com/kethil/tempursarihubstore-sub000/internal/s3"
	"github.com/kethil/tempursarihubstore-sub000/internal/service"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
	"github.com/kethil/tempursarihubstore-sub000/internal/validator"
	"github.com/kethil/tempursarihubstore-sub000/internal/whatsapp"
)

func init() {
	// Set UTC timezone for the entire application
	time.Local = time.UTC
}

func main() {
	var opts []fx.Option

	// Core dependencies
	opts = append(opts,
		fx.Provide(
			// Validator
			validator.NewValidator,

			// Config
			config.NewConfig,

			// Logger
			logger.NewLogger,

			// Postgres
			postgres.NewDB,
			provideDBClient,

			// Object storage
			s3.NewService,

			// HTTP Client
			httpclient.NewDefaultClient,

			// WhatsApp gateway
			whatsapp.NewClient,

			// Repositories
			repository.NewAuthRepository,
			repository.NewProfileRepository,
			repository.NewServiceRequestRepository,
			repository.NewProductRepository,
			repository.NewCategoryRepository,
			repository.NewCartRepository,
			repository.NewOrderRepository,

			// PubSub
			pubsubRouter.NewRouter,
		),
	)

	// Notification module (must be initialised before services)
	opts = append(opts, notification.Module)

	// Service layer
	opts = append(opts,
		fx.Provide(
			service.NewServiceParams,

			service.NewAuthService,
			service.NewProfileService,
			service.NewServiceRequestService,
			service.NewProductService,
			service.NewCategoryService,
			service.NewCartService,
			service.NewOrderService,
		),
	)

	// API
	opts = append(opts,
		fx.Provide(
			provideHandlers,
			providePermissionMiddleware,
			provideRouter,
		),
		fx.Invoke(startServer),
	)

	app := fx.New(opts...)
	app.Run()
}

func provideHandlers(
	cfg *config.Configuration,
	logger *logger.Logger,
	s3Service s3.Service,
	authService service.AuthService,
	profileService service.ProfileService,
	serviceRequestService service.ServiceRequestService,
	productService service.ProductService,
	categoryService service.CategoryService,
	cartService service.CartService,
	orderService service.OrderService,
) api.Handlers {
	return api.Handlers{
		Health:         v1.NewHealthHandler(s3Service, logger),
		Auth:           v1.NewAuthHandler(authService, logger),
		ServiceRequest: v1.NewServiceRequestHandler(serviceRequestService, logger),
		Product:        v1.NewProductHandler(productService, logger),
		Category:       v1.NewCategoryHandler(categoryService, logger),
		Cart:           v1.NewCartHandler(cartService, logger),
		Order:          v1.NewOrderHandler(orderService, logger),
		Profile:        v1.NewProfileHandler(profileService, logger),
	}
}

func provideDBClient(db *postgres.DB) postgres.IClient {
	return db
}

func providePermissionMiddleware(profileService service.ProfileService, logger *logger.Logger) *middleware.PermissionMiddleware {
	return middleware.NewPermissionMiddleware(profileService, logger)
}

func provideRouter(
	handlers api.Handlers,
	cfg *config.Configuration,
	logger *logger.Logger,
	permission *middleware.PermissionMiddleware,
) *gin.Engine {
	return api.NewRouter(handlers, cfg, logger, permission)
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	r *gin.Engine,
	router *pubsubRouter.Router,
	handler notificationHandler.Handler,
	log *logger.Logger,
) {
	mode := cfg.Deployment.Mode
	if mode == "" {
		mode = types.ModeLocal
	}

	switch mode {
	case types.ModeLocal, types.ModeAPI:
		startAPIServer(lc, r, cfg, log)
		startMessageRouter(lc, router, handler, log)
	default:
		log.Fatalf("Unknown deployment mode: %s", mode)
	}
}

func startAPIServer(
	lc fx.Lifecycle,
	r *gin.Engine,
	cfg *config.Configuration,
	log *logger.Logger,
) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info("Starting API server...")
			go func() {
				if err := r.Run(cfg.Server.Address); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down server...")
			return nil
		},
	})
}

func startMessageRouter(
	lc fx.Lifecycle,
	router *pubsubRouter.Router,
	handler notificationHandler.Handler,
	logger *logger.Logger,
) {
	// Register handlers before starting the router
	handler.RegisterHandler(router)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			logger.Info("starting message router")
			go func() {
				if err := router.Run(); err != nil {
					logger.Errorw("message router failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("stopping message router")
			return router.Close()
		},
	})
}
