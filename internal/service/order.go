package service

import (
	"context"
	"time"

	"github.com/kethil/tempursarihubstore-sub000/internal/api/dto"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/cart"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/order"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
	"github.com/shopspring/decimal"
)

type OrderService interface {
	Checkout(ctx context.Context, req *dto.CheckoutRequest) (*dto.OrderResponse, error)
	GetOrder(ctx context.Context, id string) (*dto.OrderResponse, error)
	TrackOrder(ctx context.Context, orderNumber string) (*dto.OrderResponse, error)
	ListOrders(ctx context.Context, filter *types.OrderFilter) (*dto.ListOrdersResponse, error)
	UpdateStatus(ctx context.Context, id string, req *dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error)
	BulkUpdateStatus(ctx context.Context, req *dto.BulkUpdateOrderStatusRequest) error
	GetStatusHistory(ctx context.Context, id string) ([]*dto.OrderStatusHistoryResponse, error)
}

type orderService struct {
	ServiceParams
}

func NewOrderService(params ServiceParams) OrderService {
	return &orderService{ServiceParams: params}
}

// Checkout snapshots the session cart into an order. The order, its
// items and the initial history row are written in one transaction and
// the cart is cleared on success.
func (s *orderService) Checkout(ctx context.Context, req *dto.CheckoutRequest) (*dto.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	cartItems, err := s.CartRepo.ListBySession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}
	if len(cartItems) == 0 {
		return nil, ierr.NewError("cart is empty").
			WithHint("Add products to the cart before checking out").
			Mark(ierr.ErrValidation)
	}

	record, err := s.buildOrder(ctx, req, cartItems)
	if err != nil {
		return nil, err
	}

	if err := s.placeOrder(ctx, record); err != nil {
		// Accounts without insert rights on orders fall back to an
		// anonymous order so the citizen can still buy.
		if ierr.IsPermissionDenied(err) && record.UserID != nil {
			s.Logger.Warnw("authenticated order insert refused, retrying as guest",
				"order_number", record.OrderNumber,
				"user_id", *record.UserID,
			)
			record.UserID = nil
			if err := s.placeOrder(ctx, record); err != nil {
				return nil, ierr.WithError(err).
					WithHint("We hit a technical issue placing your order, please try again later").
					Mark(ierr.ErrSystem)
			}
		} else {
			return nil, err
		}
	}

	if err := s.CartRepo.DeleteBySession(ctx, req.SessionID); err != nil {
		s.Logger.Errorw("failed to clear cart after checkout",
			"error", err,
			"session_id", req.SessionID,
			"order_number", record.OrderNumber,
		)
	}

	return dto.ToOrderResponse(record), nil
}

func (s *orderService) buildOrder(ctx context.Context, req *dto.CheckoutRequest, cartItems []*cart.CartItem) (*order.Order, error) {
	record := &order.Order{
		ID:            types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ORDER),
		OrderNumber:   types.GenerateOrderNumber(),
		SessionID:     req.SessionID,
		CustomerName:  req.CustomerName,
		Phone:         req.Phone,
		Address:       req.Address,
		OrderStatus:   types.OrderStatusPending,
		PaymentStatus: types.PaymentStatusUnpaid,
		PaymentMethod: req.PaymentMethod,
		Notes:         req.Notes,
		Subtotal:      decimal.Zero,
		Total:         decimal.Zero,
		BaseModel:     types.GetDefaultBaseModel(ctx),
	}
	if types.IsAuthenticated(ctx) {
		userID := types.GetUserID(ctx)
		record.UserID = &userID
	}

	for _, item := range cartItems {
		product, err := s.ProductRepo.Get(ctx, item.ProductID)
		if err != nil {
			return nil, err
		}
		if !product.IsAvailable() {
			return nil, ierr.NewErrorf("product %s is no longer available", product.Name).
				WithHint("Remove unavailable products from the cart and try again").
				Mark(ierr.ErrInvalidOperation)
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		record.Items = append(record.Items, &order.OrderItem{
			ID:          types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ORDER_ITEM),
			OrderID:     record.ID,
			ProductID:   product.ID,
			ProductName: product.Name,
			Price:       product.Price,
			Quantity:    item.Quantity,
			LineTotal:   lineTotal,
		})
		record.Subtotal = record.Subtotal.Add(lineTotal)
	}
	record.Total = record.Subtotal

	if err := record.Validate(); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *orderService) placeOrder(ctx context.Context, record *order.Order) error {
	return s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.OrderRepo.Create(ctx, record); err != nil {
			return err
		}
		return s.OrderRepo.AddStatusHistory(ctx, &order.StatusHistory{
			ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ORDER_STATUS_HISTORY),
			OrderID:    record.ID,
			FromStatus: types.OrderStatusPending,
			ToStatus:   types.OrderStatusPending,
			ChangedBy:  types.GetUserID(ctx),
			Note:       "order placed",
			CreatedAt:  time.Now().UTC(),
		})
	})
}

func (s *orderService) GetOrder(ctx context.Context, id string) (*dto.OrderResponse, error) {
	record, err := s.OrderRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToOrderResponse(record), nil
}

// TrackOrder is the public lookup by order number.
func (s *orderService) TrackOrder(ctx context.Context, orderNumber string) (*dto.OrderResponse, error) {
	if orderNumber == "" {
		return nil, ierr.NewError("order number is required").
			WithHint("Provide the order number from your purchase receipt").
			Mark(ierr.ErrValidation)
	}

	record, err := s.OrderRepo.GetByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}
	return dto.ToOrderResponse(record), nil
}

func (s *orderService) ListOrders(ctx context.Context, filter *types.OrderFilter) (*dto.ListOrdersResponse, error) {
	if filter == nil {
		filter = types.NewOrderFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.OrderRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.OrderRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.OrderResponse, 0, len(records))
	for _, record := range records {
		items = append(items, dto.ToOrderResponse(record))
	}

	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

// UpdateStatus applies an operator's status change and appends the
// audit history row in the same transaction.
func (s *orderService) UpdateStatus(ctx context.Context, id string, req *dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record, err := s.OrderRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	fromStatus := record.OrderStatus
	record.OrderStatus = req.OrderStatus
	if req.PaymentStatus != nil {
		record.PaymentStatus = *req.PaymentStatus
	}
	record.UpdatedAt = time.Now().UTC()
	record.UpdatedBy = types.GetUserID(ctx)

	err = s.DB.WithTx(ctx, func(ctx context.Context) error {
		if err := s.OrderRepo.Update(ctx, record); err != nil {
			return err
		}
		if fromStatus == record.OrderStatus {
			return nil
		}
		return s.OrderRepo.AddStatusHistory(ctx, &order.StatusHistory{
			ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ORDER_STATUS_HISTORY),
			OrderID:    record.ID,
			FromStatus: fromStatus,
			ToStatus:   record.OrderStatus,
			ChangedBy:  types.GetUserID(ctx),
			Note:       req.Note,
			CreatedAt:  time.Now().UTC(),
		})
	})
	if err != nil {
		return nil, err
	}

	return dto.ToOrderResponse(record), nil
}

// BulkUpdateStatus moves several orders to the same status in one
// transaction; any failure rolls back the whole batch.
func (s *orderService) BulkUpdateStatus(ctx context.Context, req *dto.BulkUpdateOrderStatusRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	return s.DB.WithTx(ctx, func(ctx context.Context) error {
		for _, id := range req.OrderIDs {
			record, err := s.OrderRepo.Get(ctx, id)
			if err != nil {
				return err
			}

			fromStatus := record.OrderStatus
			if fromStatus == req.OrderStatus {
				continue
			}

			record.OrderStatus = req.OrderStatus
			record.UpdatedAt = time.Now().UTC()
			record.UpdatedBy = types.GetUserID(ctx)

			if err := s.OrderRepo.Update(ctx, record); err != nil {
				return err
			}
			if err := s.OrderRepo.AddStatusHistory(ctx, &order.StatusHistory{
				ID:         types.GenerateUUIDWithPrefix(types.UUID_PREFIX_ORDER_STATUS_HISTORY),
				OrderID:    record.ID,
				FromStatus: fromStatus,
				ToStatus:   record.OrderStatus,
				ChangedBy:  types.GetUserID(ctx),
				Note:       req.Note,
				CreatedAt:  time.Now().UTC(),
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *orderService) GetStatusHistory(ctx context.Context, id string) ([]*dto.OrderStatusHistoryResponse, error) {
	if _, err := s.OrderRepo.Get(ctx, id); err != nil {
		return nil, err
	}

	history, err := s.OrderRepo.ListStatusHistory(ctx, id)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.OrderStatusHistoryResponse, 0, len(history))
	for _, h := range history {
		items = append(items, dto.ToOrderStatusHistoryResponse(h))
	}
	return items, nil
}
