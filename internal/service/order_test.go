package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/kethil/tempursarihubstore-sub000/internal/api/dto"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/order"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/product"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/testutil"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

type OrderServiceSuite struct {
	testutil.BaseServiceTestSuite
	service     OrderService
	cartService CartService
	orderRepo   *testutil.InMemoryOrderStore
	productRepo *testutil.InMemoryProductStore
	cartRepo    *testutil.InMemoryCartStore
	testProduct *product.Product
}

func TestOrderService(t *testing.T) {
	suite.Run(t, new(OrderServiceSuite))
}

func (s *OrderServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
	s.setupTestData()
}

func (s *OrderServiceSuite) setupService() {
	stores := s.GetStores()
	s.orderRepo = stores.OrderRepo.(*testutil.InMemoryOrderStore)
	s.productRepo = stores.ProductRepo.(*testutil.InMemoryProductStore)
	s.cartRepo = stores.CartRepo.(*testutil.InMemoryCartStore)

	params := ServiceParams{
		Logger:                s.GetLogger(),
		Config:                s.GetConfig(),
		DB:                    s.GetDB(),
		AuthRepo:              stores.AuthRepo,
		ProfileRepo:           stores.ProfileRepo,
		ServiceRequestRepo:    stores.ServiceRequestRepo,
		ProductRepo:           stores.ProductRepo,
		CategoryRepo:          stores.CategoryRepo,
		CartRepo:              stores.CartRepo,
		OrderRepo:             stores.OrderRepo,
		NotificationPublisher: s.GetPublisher(),
		Client:                s.GetHTTPClient(),
	}
	s.service = NewOrderService(params)
	s.cartService = NewCartService(params)
}

func (s *OrderServiceSuite) setupTestData() {
	s.testProduct = &product.Product{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRODUCT),
		Name:          "Beras Organik",
		Price:         decimal.NewFromInt(15000),
		Stock:         50,
		Unit:          "kg",
		ProductStatus: types.ProductStatusPublished,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.productRepo.Create(s.GetContext(), s.testProduct))
}

func (s *OrderServiceSuite) fillCart(sessionID string, quantity int) {
	_, err := s.cartService.AddItem(s.GetContext(), &dto.AddCartItemRequest{
		SessionID: sessionID,
		ProductID: s.testProduct.ID,
		Quantity:  quantity,
	})
	s.NoError(err)
}

func (s *OrderServiceSuite) checkoutRequest(sessionID string) *dto.CheckoutRequest {
	return &dto.CheckoutRequest{
		SessionID:     sessionID,
		CustomerName:  "Siti Aminah",
		Phone:         "081234567890",
		Address:       "Dusun Krajan RT 02 RW 01",
		PaymentMethod: "cod",
	}
}

func (s *OrderServiceSuite) TestCheckout() {
	s.fillCart("sess-1", 3)

	resp, err := s.service.Checkout(s.GetContext(), s.checkoutRequest("sess-1"))
	s.NoError(err)
	s.NotEmpty(resp.OrderNumber)
	s.Equal(types.OrderStatusPending, resp.OrderStatus)
	s.Equal(types.PaymentStatusUnpaid, resp.PaymentStatus)
	s.Len(resp.Items, 1)
	s.True(resp.Total.Equal(decimal.NewFromInt(45000)))
	s.True(resp.Items[0].LineTotal.Equal(decimal.NewFromInt(45000)))

	// cart is cleared after order placement
	items, err := s.cartRepo.ListBySession(s.GetContext(), "sess-1")
	s.NoError(err)
	s.Empty(items)

	// initial history row written
	history, err := s.orderRepo.ListStatusHistory(s.GetContext(), resp.ID)
	s.NoError(err)
	s.Len(history, 1)
	s.Equal(types.OrderStatusPending, history[0].ToStatus)
}

func (s *OrderServiceSuite) TestCheckoutEmptyCart() {
	_, err := s.service.Checkout(s.GetContext(), s.checkoutRequest("sess-empty"))
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *OrderServiceSuite) TestCheckoutUnavailableProduct() {
	s.fillCart("sess-2", 1)

	s.testProduct.ProductStatus = types.ProductStatusOutOfStock
	s.NoError(s.productRepo.Update(s.GetContext(), s.testProduct))

	_, err := s.service.Checkout(s.GetContext(), s.checkoutRequest("sess-2"))
	s.Error(err)
}

func (s *OrderServiceSuite) TestCheckoutRetriesAsGuestWhenInsertRefused() {
	userID := "user_123"
	ctx := context.WithValue(s.GetContext(), types.CtxUserID, userID)

	s.fillCart("sess-3", 2)

	// Refuse inserts that carry a user id, as row level security would.
	s.orderRepo.CreateHook = func(o *order.Order) error {
		if o.UserID != nil {
			return ierr.NewError("permission denied for table orders").
				WithHint("Insert refused").
				Mark(ierr.ErrPermissionDenied)
		}
		return nil
	}

	resp, err := s.service.Checkout(ctx, s.checkoutRequest("sess-3"))
	s.NoError(err)
	s.Nil(resp.UserID)
	s.NotEmpty(resp.OrderNumber)
}

func (s *OrderServiceSuite) TestCheckoutFailsWhenGuestRetryRefused() {
	ctx := context.WithValue(s.GetContext(), types.CtxUserID, "user_123")

	s.fillCart("sess-4", 1)

	s.orderRepo.CreateHook = func(o *order.Order) error {
		return ierr.NewError("permission denied for table orders").
			WithHint("Insert refused").
			Mark(ierr.ErrPermissionDenied)
	}

	_, err := s.service.Checkout(ctx, s.checkoutRequest("sess-4"))
	s.Error(err)
}

func (s *OrderServiceSuite) TestUpdateStatusAppendsHistory() {
	s.fillCart("sess-5", 1)
	created, err := s.service.Checkout(s.GetContext(), s.checkoutRequest("sess-5"))
	s.NoError(err)

	paid := types.PaymentStatusPaid
	resp, err := s.service.UpdateStatus(s.GetContext(), created.ID, &dto.UpdateOrderStatusRequest{
		OrderStatus:   types.OrderStatusConfirmed,
		PaymentStatus: &paid,
		Note:          "pembayaran diterima",
	})
	s.NoError(err)
	s.Equal(types.OrderStatusConfirmed, resp.OrderStatus)
	s.Equal(types.PaymentStatusPaid, resp.PaymentStatus)

	history, err := s.orderRepo.ListStatusHistory(s.GetContext(), created.ID)
	s.NoError(err)
	s.Len(history, 2)
	s.Equal(types.OrderStatusPending, history[1].FromStatus)
	s.Equal(types.OrderStatusConfirmed, history[1].ToStatus)
	s.Equal("pembayaran diterima", history[1].Note)
}

func (s *OrderServiceSuite) TestUpdateStatusSameStatusNoHistory() {
	s.fillCart("sess-6", 1)
	created, err := s.service.Checkout(s.GetContext(), s.checkoutRequest("sess-6"))
	s.NoError(err)

	_, err = s.service.UpdateStatus(s.GetContext(), created.ID, &dto.UpdateOrderStatusRequest{
		OrderStatus: types.OrderStatusPending,
	})
	s.NoError(err)

	history, err := s.orderRepo.ListStatusHistory(s.GetContext(), created.ID)
	s.NoError(err)
	s.Len(history, 1)
}

func (s *OrderServiceSuite) TestBulkUpdateStatus() {
	var ids []string
	for i, sess := range []string{"sess-7", "sess-8"} {
		s.fillCart(sess, i+1)
		created, err := s.service.Checkout(s.GetContext(), s.checkoutRequest(sess))
		s.NoError(err)
		ids = append(ids, created.ID)
	}

	err := s.service.BulkUpdateStatus(s.GetContext(), &dto.BulkUpdateOrderStatusRequest{
		OrderIDs:    ids,
		OrderStatus: types.OrderStatusConfirmed,
		Note:        "batch confirmed",
	})
	s.NoError(err)

	for _, id := range ids {
		resp, err := s.service.GetOrder(s.GetContext(), id)
		s.NoError(err)
		s.Equal(types.OrderStatusConfirmed, resp.OrderStatus)
	}
}

func (s *OrderServiceSuite) TestBulkUpdateStatusUnknownOrder() {
	err := s.service.BulkUpdateStatus(s.GetContext(), &dto.BulkUpdateOrderStatusRequest{
		OrderIDs:    []string{"order_missing"},
		OrderStatus: types.OrderStatusConfirmed,
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *OrderServiceSuite) TestTrackOrder() {
	s.fillCart("sess-9", 1)
	created, err := s.service.Checkout(s.GetContext(), s.checkoutRequest("sess-9"))
	s.NoError(err)

	resp, err := s.service.TrackOrder(s.GetContext(), created.OrderNumber)
	s.NoError(err)
	s.Equal(created.ID, resp.ID)

	_, err = s.service.TrackOrder(s.GetContext(), "ORD-20200101-UNKNOWN")
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *OrderServiceSuite) TestListOrdersByStatus() {
	s.fillCart("sess-10", 1)
	_, err := s.service.Checkout(s.GetContext(), s.checkoutRequest("sess-10"))
	s.NoError(err)

	filter := types.NewOrderFilter()
	filter.OrderStatuses = []types.OrderStatus{types.OrderStatusPending}
	resp, err := s.service.ListOrders(s.GetContext(), filter)
	s.NoError(err)
	s.Equal(1, resp.Pagination.Total)

	filter.OrderStatuses = []types.OrderStatus{types.OrderStatusDelivered}
	resp, err = s.service.ListOrders(s.GetContext(), filter)
	s.NoError(err)
	s.Equal(0, resp.Pagination.Total)
}
