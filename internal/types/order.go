package types

import (
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
)

// OrderStatus is the fulfilment status of a shop order.
type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusConfirmed  OrderStatus = "confirmed"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusShipped    OrderStatus = "shipped"
	OrderStatusDelivered  OrderStatus = "delivered"
	OrderStatusCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Validate() error {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return nil
	}
	return ierr.NewErrorf("invalid order status: %s", s).
		WithHint("Unknown order status").
		Mark(ierr.ErrValidation)
}

// PaymentStatus tracks payment state independently from fulfilment.
type PaymentStatus string

const (
	PaymentStatusUnpaid   PaymentStatus = "unpaid"
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

func (s PaymentStatus) Validate() error {
	switch s {
	case PaymentStatusUnpaid, PaymentStatusPending, PaymentStatusPaid, PaymentStatusRefunded:
		return nil
	}
	return ierr.NewErrorf("invalid payment status: %s", s).
		WithHint("Unknown payment status").
		Mark(ierr.ErrValidation)
}

// OrderFilter filters order listings.
type OrderFilter struct {
	*QueryFilter
	*TimeRangeFilter
	OrderStatuses   []OrderStatus   `json:"order_statuses,omitempty" form:"order_statuses"`
	PaymentStatuses []PaymentStatus `json:"payment_statuses,omitempty" form:"payment_statuses"`
	UserID          string          `json:"user_id,omitempty" form:"user_id"`
	SessionID       string          `json:"session_id,omitempty" form:"session_id"`
	Search          string          `json:"search,omitempty" form:"search"`
}

func NewOrderFilter() *OrderFilter {
	return &OrderFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func (f *OrderFilter) Validate() error {
	if f.QueryFilter != nil {
		if err := f.QueryFilter.Validate(); err != nil {
			return err
		}
	}
	if f.TimeRangeFilter != nil {
		if err := f.TimeRangeFilter.Validate(); err != nil {
			return err
		}
	}
	for _, status := range f.OrderStatuses {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	for _, status := range f.PaymentStatuses {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (f *OrderFilter) GetLimit() int {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

func (f *OrderFilter) GetOffset() int {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOffset()
	}
	return f.QueryFilter.GetOffset()
}

func (f *OrderFilter) IsUnlimited() bool {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().IsUnlimited()
	}
	return f.QueryFilter.IsUnlimited()
}
