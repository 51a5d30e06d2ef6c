package service

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"

	"github.com/kethil/tempursarihubstore-sub000/internal/api/dto"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/product"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/testutil"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

type CartServiceSuite struct {
	testutil.BaseServiceTestSuite
	service     CartService
	productRepo *testutil.InMemoryProductStore
	cartRepo    *testutil.InMemoryCartStore
	testProduct *product.Product
}

func TestCartService(t *testing.T) {
	suite.Run(t, new(CartServiceSuite))
}

func (s *CartServiceSuite) SetupTest() {
	s.BaseServiceTestSuite.SetupTest()
	s.setupService()
	s.setupTestData()
}

func (s *CartServiceSuite) setupService() {
	stores := s.GetStores()
	s.productRepo = stores.ProductRepo.(*testutil.InMemoryProductStore)
	s.cartRepo = stores.CartRepo.(*testutil.InMemoryCartStore)

	s.service = NewCartService(ServiceParams{
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
	})
}

func (s *CartServiceSuite) setupTestData() {
	s.testProduct = &product.Product{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRODUCT),
		Name:          "Gula Aren",
		Price:         decimal.NewFromInt(25000),
		Stock:         10,
		Unit:          "bungkus",
		ProductStatus: types.ProductStatusPublished,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.productRepo.Create(s.GetContext(), s.testProduct))
}

func (s *CartServiceSuite) TestAddItem() {
	resp, err := s.service.AddItem(s.GetContext(), &dto.AddCartItemRequest{
		SessionID: "sess-1",
		ProductID: s.testProduct.ID,
		Quantity:  2,
	})
	s.NoError(err)
	s.Equal(2, resp.Quantity)
	s.Equal("Gula Aren", resp.ProductName)
	s.True(resp.LineTotal.Equal(decimal.NewFromInt(50000)))
}

func (s *CartServiceSuite) TestAddItemBumpsExistingLine() {
	for range 2 {
		_, err := s.service.AddItem(s.GetContext(), &dto.AddCartItemRequest{
			SessionID: "sess-1",
			ProductID: s.testProduct.ID,
			Quantity:  1,
		})
		s.NoError(err)
	}

	items, err := s.cartRepo.ListBySession(s.GetContext(), "sess-1")
	s.NoError(err)
	s.Len(items, 1)
	s.Equal(2, items[0].Quantity)
}

func (s *CartServiceSuite) TestAddItemUnavailableProduct() {
	s.testProduct.Stock = 0
	s.NoError(s.productRepo.Update(s.GetContext(), s.testProduct))

	_, err := s.service.AddItem(s.GetContext(), &dto.AddCartItemRequest{
		SessionID: "sess-1",
		ProductID: s.testProduct.ID,
		Quantity:  1,
	})
	s.Error(err)
	s.True(ierr.IsInvalidOperation(err))
}

func (s *CartServiceSuite) TestAddItemUnknownProduct() {
	_, err := s.service.AddItem(s.GetContext(), &dto.AddCartItemRequest{
		SessionID: "sess-1",
		ProductID: "prod_missing",
		Quantity:  1,
	})
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *CartServiceSuite) TestGetCartTotals() {
	second := &product.Product{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_PRODUCT),
		Name:          "Kopi Robusta",
		Price:         decimal.NewFromInt(40000),
		Stock:         5,
		Unit:          "bungkus",
		ProductStatus: types.ProductStatusPublished,
		BaseModel:     types.GetDefaultBaseModel(s.GetContext()),
	}
	s.NoError(s.productRepo.Create(s.GetContext(), second))

	for _, req := range []*dto.AddCartItemRequest{
		{SessionID: "sess-1", ProductID: s.testProduct.ID, Quantity: 2},
		{SessionID: "sess-1", ProductID: second.ID, Quantity: 1},
	} {
		_, err := s.service.AddItem(s.GetContext(), req)
		s.NoError(err)
	}

	resp, err := s.service.GetCart(s.GetContext(), "sess-1")
	s.NoError(err)
	s.Len(resp.Items, 2)
	s.Equal(3, resp.TotalItems)
	s.True(resp.TotalAmount.Equal(decimal.NewFromInt(90000)))
}

func (s *CartServiceSuite) TestGetCartSkipsRemovedProducts() {
	_, err := s.service.AddItem(s.GetContext(), &dto.AddCartItemRequest{
		SessionID: "sess-1",
		ProductID: s.testProduct.ID,
		Quantity:  1,
	})
	s.NoError(err)

	s.NoError(s.productRepo.Delete(s.GetContext(), s.testProduct.ID))

	resp, err := s.service.GetCart(s.GetContext(), "sess-1")
	s.NoError(err)
	s.Empty(resp.Items)
	s.Equal(0, resp.TotalItems)
}

func (s *CartServiceSuite) TestUpdateItem() {
	added, err := s.service.AddItem(s.GetContext(), &dto.AddCartItemRequest{
		SessionID: "sess-1",
		ProductID: s.testProduct.ID,
		Quantity:  1,
	})
	s.NoError(err)

	resp, err := s.service.UpdateItem(s.GetContext(), added.ID, &dto.UpdateCartItemRequest{Quantity: 4})
	s.NoError(err)
	s.Equal(4, resp.Quantity)
	s.True(resp.LineTotal.Equal(decimal.NewFromInt(100000)))
}

func (s *CartServiceSuite) TestRemoveItem() {
	added, err := s.service.AddItem(s.GetContext(), &dto.AddCartItemRequest{
		SessionID: "sess-1",
		ProductID: s.testProduct.ID,
		Quantity:  1,
	})
	s.NoError(err)

	s.NoError(s.service.RemoveItem(s.GetContext(), added.ID))

	err = s.service.RemoveItem(s.GetContext(), added.ID)
	s.Error(err)
	s.True(ierr.IsNotFound(err))
}

func (s *CartServiceSuite) TestClearCart() {
	_, err := s.service.AddItem(s.GetContext(), &dto.AddCartItemRequest{
		SessionID: "sess-1",
		ProductID: s.testProduct.ID,
		Quantity:  2,
	})
	s.NoError(err)

	s.NoError(s.service.ClearCart(s.GetContext(), "sess-1"))

	items, err := s.cartRepo.ListBySession(s.GetContext(), "sess-1")
	s.NoError(err)
	s.Empty(items)
}

func (s *CartServiceSuite) TestGetCartRequiresSession() {
	_, err := s.service.GetCart(s.GetContext(), "")
	s.Error(err)
	s.True(ierr.IsValidation(err))
}
