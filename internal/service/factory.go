package service

import (
	"github.com/kethil/tempursarihubstore-sub000/internal/config"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/auth"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/cart"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/category"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/order"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/product"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/profile"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/servicerequest"
	"github.com/kethil/tempursarihubstore-sub000/internal/httpclient"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
	notificationPublisher "github.com/kethil/tempursarihubstore-sub000/internal/notification/publisher"
	"github.com/kethil/tempursarihubstore-sub000/internal/postgres"
	"github.com/kethil/tempursarihubstore-sub000/internal/s3"
)

// ServiceParams holds common dependencies for services
type ServiceParams struct {
	Logger *logger.Logger
	Config *config.Configuration
	DB     postgres.IClient
	S3     s3.Service

	// Repositories
	AuthRepo           auth.Repository
	ProfileRepo        profile.Repository
	ServiceRequestRepo servicerequest.Repository
	ProductRepo        product.Repository
	CategoryRepo       category.Repository
	CartRepo           cart.Repository
	OrderRepo          order.Repository

	// Publishers
	NotificationPublisher notificationPublisher.NotificationPublisher

	// http client
	Client httpclient.Client
}

func NewServiceParams(
	logger *logger.Logger,
	config *config.Configuration,
	db postgres.IClient,
	s3Service s3.Service,
	authRepo auth.Repository,
	profileRepo profile.Repository,
	serviceRequestRepo servicerequest.Repository,
	productRepo product.Repository,
	categoryRepo category.Repository,
	cartRepo cart.Repository,
	orderRepo order.Repository,
	notificationPub notificationPublisher.NotificationPublisher,
	client httpclient.Client,
) ServiceParams {
	return ServiceParams{
		Logger:                logger,
		Config:                config,
		DB:                    db,
		S3:                    s3Service,
		AuthRepo:              authRepo,
		ProfileRepo:           profileRepo,
		ServiceRequestRepo:    serviceRequestRepo,
		ProductRepo:           productRepo,
		CategoryRepo:          categoryRepo,
		CartRepo:              cartRepo,
		OrderRepo:             orderRepo,
		NotificationPublisher: notificationPub,
		Client:                client,
	}
}
