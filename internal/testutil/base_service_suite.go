package testutil

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/kethil/tempursarihubstore-sub000/internal/config"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/auth"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/cart"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/category"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/order"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/product"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/profile"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/servicerequest"
	"github.com/kethil/tempursarihubstore-sub000/internal/logger"
	notificationPublisher "github.com/kethil/tempursarihubstore-sub000/internal/notification/publisher"
	"github.com/kethil/tempursarihubstore-sub000/internal/postgres"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
	"github.com/kethil/tempursarihubstore-sub000/internal/validator"
)

// Stores holds all the repository interfaces for testing
type Stores struct {
	AuthRepo           auth.Repository
	ProfileRepo        profile.Repository
	ServiceRequestRepo servicerequest.Repository
	ProductRepo        product.Repository
	CategoryRepo       category.Repository
	CartRepo           cart.Repository
	OrderRepo          order.Repository
}

// BaseServiceTestSuite provides common functionality for all service test suites
type BaseServiceTestSuite struct {
	suite.Suite
	ctx        context.Context
	stores     Stores
	pubsub     *InMemoryPubSub
	publisher  notificationPublisher.NotificationPublisher
	httpClient *MockHTTPClient
	db         postgres.IClient
	logger     *logger.Logger
	config     *config.Configuration
	now        time.Time
}

// SetupSuite is called once before running the tests in the suite
func (s *BaseServiceTestSuite) SetupSuite() {
	validator.NewValidator()

	cfg := &config.Configuration{
		Logging: config.LoggingConfig{
			Level: types.LogLevelInfo,
		},
		Auth: config.AuthConfig{
			Provider: types.AuthProviderLocal,
			Secret:   "test-secret",
		},
		Notification: config.NotificationConfig{
			Topic:      "service_requests",
			PubSub:     types.MemoryPubSub,
			MaxRetries: 3,
		},
		WhatsApp: config.WhatsAppConfig{
			GatewayURL: "http://waha.local",
			APIKey:     "test-api-key",
			Session:    "default",
		},
	}
	var err error
	s.config = cfg
	s.logger, err = logger.NewLogger(cfg)
	if err != nil {
		s.T().Fatalf("failed to create logger: %v", err)
	}
}

// SetupTest is called before each test
func (s *BaseServiceTestSuite) SetupTest() {
	s.setupContext()
	s.setupStores()
	s.now = time.Now().UTC()
}

// TearDownTest is called after each test
func (s *BaseServiceTestSuite) TearDownTest() {
	s.clearStores()
}

func (s *BaseServiceTestSuite) setupContext() {
	s.ctx = context.Background()
	s.ctx = context.WithValue(s.ctx, types.CtxUserID, types.DefaultUserID)
	s.ctx = context.WithValue(s.ctx, types.CtxRequestID, types.GenerateUUID())
}

func (s *BaseServiceTestSuite) setupStores() {
	s.stores = Stores{
		AuthRepo:           NewInMemoryAuthRepository(),
		ProfileRepo:        NewInMemoryProfileStore(),
		ServiceRequestRepo: NewInMemoryServiceRequestStore(),
		ProductRepo:        NewInMemoryProductStore(),
		CategoryRepo:       NewInMemoryCategoryStore(),
		CartRepo:           NewInMemoryCartStore(),
		OrderRepo:          NewInMemoryOrderStore(),
	}

	s.db = NewMockPostgresClient(s.logger)
	s.httpClient = NewMockHTTPClient()
	s.pubsub = NewInMemoryPubSub()

	publisher, err := notificationPublisher.NewPublisher(s.pubsub, s.config, s.logger)
	if err != nil {
		s.T().Fatalf("failed to create notification publisher: %v", err)
	}
	s.publisher = publisher
}

func (s *BaseServiceTestSuite) clearStores() {
	s.stores.AuthRepo.(*InMemoryAuthRepository).Clear()
	s.stores.ProfileRepo.(*InMemoryProfileStore).Clear()
	s.stores.ServiceRequestRepo.(*InMemoryServiceRequestStore).Clear()
	s.stores.ProductRepo.(*InMemoryProductStore).Clear()
	s.stores.CategoryRepo.(*InMemoryCategoryStore).Clear()
	s.stores.CartRepo.(*InMemoryCartStore).Clear()
	s.stores.OrderRepo.(*InMemoryOrderStore).Clear()
	s.httpClient.Clear()
	s.pubsub.ClearMessages()
}

// ClearStores resets all test repositories
func (s *BaseServiceTestSuite) ClearStores() {
	s.clearStores()
}

// GetContext returns the test context
func (s *BaseServiceTestSuite) GetContext() context.Context {
	return s.ctx
}

// SetContext overrides the test context, ex to simulate a signed-in user
func (s *BaseServiceTestSuite) SetContext(ctx context.Context) {
	s.ctx = ctx
}

// GetConfig returns the test configuration
func (s *BaseServiceTestSuite) GetConfig() *config.Configuration {
	return s.config
}

// GetStores returns all test repositories
func (s *BaseServiceTestSuite) GetStores() Stores {
	return s.stores
}

// GetPublisher returns the test notification publisher
func (s *BaseServiceTestSuite) GetPublisher() notificationPublisher.NotificationPublisher {
	return s.publisher
}

// GetPubSub returns the in-memory pubsub backing the publisher
func (s *BaseServiceTestSuite) GetPubSub() *InMemoryPubSub {
	return s.pubsub
}

// GetHTTPClient returns the mock HTTP client
func (s *BaseServiceTestSuite) GetHTTPClient() *MockHTTPClient {
	return s.httpClient
}

// GetDB returns the test database client
func (s *BaseServiceTestSuite) GetDB() postgres.IClient {
	return s.db
}

// GetLogger returns the test logger
func (s *BaseServiceTestSuite) GetLogger() *logger.Logger {
	return s.logger
}

// GetNow returns the current test time
func (s *BaseServiceTestSuite) GetNow() time.Time {
	return s.now.UTC()
}

// GetUUID returns a new UUID string
func (s *BaseServiceTestSuite) GetUUID() string {
	return types.GenerateUUID()
}
