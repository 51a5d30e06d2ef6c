package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/order"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
	"github.com/shopspring/decimal"
)

// CheckoutRequest represents the request payload for placing an order
// from the current cart session
type CheckoutRequest struct {
	SessionID     string `json:"session_id" binding:"required"`
	CustomerName  string `json:"customer_name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Address       string `json:"address" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
	Notes         string `json:"notes"`
}

// UpdateOrderStatusRequest represents an operator-side order status mutation
type UpdateOrderStatusRequest struct {
	OrderStatus   types.OrderStatus    `json:"order_status" binding:"required"`
	PaymentStatus *types.PaymentStatus `json:"payment_status,omitempty"`
	Note          string               `json:"note"`
}

// BulkUpdateOrderStatusRequest updates several orders in one transaction
type BulkUpdateOrderStatusRequest struct {
	OrderIDs    []string          `json:"order_ids" binding:"required,min=1" validate:"min=1"`
	OrderStatus types.OrderStatus `json:"order_status" binding:"required"`
	Note        string            `json:"note"`
}

type OrderItemResponse struct {
	ID          string          `json:"id"`
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	LineTotal   decimal.Decimal `json:"line_total"`
}

type OrderResponse struct {
	ID            string               `json:"id"`
	OrderNumber   string               `json:"order_number"`
	SessionID     string               `json:"session_id,omitempty"`
	UserID        *string              `json:"user_id,omitempty"`
	CustomerName  string               `json:"customer_name"`
	Phone         string               `json:"phone"`
	Address       string               `json:"address"`
	OrderStatus   types.OrderStatus    `json:"order_status"`
	PaymentStatus types.PaymentStatus  `json:"payment_status"`
	PaymentMethod string               `json:"payment_method"`
	Subtotal      decimal.Decimal      `json:"subtotal"`
	Total         decimal.Decimal      `json:"total"`
	Notes         string               `json:"notes,omitempty"`
	Items         []*OrderItemResponse `json:"items,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`
}

type OrderStatusHistoryResponse struct {
	ID         string            `json:"id"`
	FromStatus types.OrderStatus `json:"from_status"`
	ToStatus   types.OrderStatus `json:"to_status"`
	ChangedBy  string            `json:"changed_by"`
	Note       string            `json:"note,omitempty"`
	CreatedAt  time.Time         `json:"created_at"`
}

type ListOrdersResponse = types.ListResponse[*OrderResponse]

func ToOrderResponse(o *order.Order) *OrderResponse {
	resp := &OrderResponse{
		ID:            o.ID,
		OrderNumber:   o.OrderNumber,
		SessionID:     o.SessionID,
		UserID:        o.UserID,
		CustomerName:  o.CustomerName,
		Phone:         o.Phone,
		Address:       o.Address,
		OrderStatus:   o.OrderStatus,
		PaymentStatus: o.PaymentStatus,
		PaymentMethod: o.PaymentMethod,
		Subtotal:      o.Subtotal,
		Total:         o.Total,
		Notes:         o.Notes,
		CreatedAt:     o.CreatedAt,
		UpdatedAt:     o.UpdatedAt,
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, &OrderItemResponse{
			ID:          item.ID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Price:       item.Price,
			Quantity:    item.Quantity,
			LineTotal:   item.LineTotal,
		})
	}
	return resp
}

func ToOrderStatusHistoryResponse(h *order.StatusHistory) *OrderStatusHistoryResponse {
	return &OrderStatusHistoryResponse{
		ID:         h.ID,
		FromStatus: h.FromStatus,
		ToStatus:   h.ToStatus,
		ChangedBy:  h.ChangedBy,
		Note:       h.Note,
		CreatedAt:  h.CreatedAt,
	}
}

func (r *CheckoutRequest) Validate() error {
	return validator.New().Struct(r)
}

func (r *UpdateOrderStatusRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	if err := r.OrderStatus.Validate(); err != nil {
		return err
	}
	if r.PaymentStatus != nil {
		return r.PaymentStatus.Validate()
	}
	return nil
}

func (r *BulkUpdateOrderStatusRequest) Validate() error {
	if err := validator.New().Struct(r); err != nil {
		return err
	}
	return r.OrderStatus.Validate()
}
