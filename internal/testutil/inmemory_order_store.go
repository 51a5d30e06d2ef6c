package testutil

import (
	"context"
	"strings"
	"sync"

	"github.com/kethil/tempursarihubstore-sub000/internal/domain/order"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

// InMemoryOrderStore is an in-memory implementation of order.Repository
type InMemoryOrderStore struct {
	*InMemoryStore[*order.Order]

	historyMu sync.RWMutex
	history   map[string][]*order.StatusHistory

	// CreateHook, when set, is consulted before every Create. Tests use
	// it to simulate row level security refusing authenticated inserts.
	CreateHook func(o *order.Order) error
}

func NewInMemoryOrderStore() *InMemoryOrderStore {
	return &InMemoryOrderStore{
		InMemoryStore: NewInMemoryStore[*order.Order](),
		history:       make(map[string][]*order.StatusHistory),
	}
}

func orderFilterFn(ctx context.Context, o *order.Order, filter interface{}) bool {
	if o.Status == types.StatusDeleted {
		return false
	}

	f, ok := filter.(*types.OrderFilter)
	if !ok || f == nil {
		return true
	}

	if len(f.OrderStatuses) > 0 {
		matched := false
		for _, status := range f.OrderStatuses {
			if o.OrderStatus == status {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if len(f.PaymentStatuses) > 0 {
		matched := false
		for _, status := range f.PaymentStatuses {
			if o.PaymentStatus == status {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}

	if f.UserID != "" && (o.UserID == nil || *o.UserID != f.UserID) {
		return false
	}

	if f.SessionID != "" && o.SessionID != f.SessionID {
		return false
	}

	if f.Search != "" {
		search := strings.ToLower(f.Search)
		if !strings.Contains(strings.ToLower(o.CustomerName), search) &&
			!strings.Contains(strings.ToLower(o.OrderNumber), search) {
			return false
		}
	}

	return true
}

func orderSortFn(i, j *order.Order) bool {
	return i.CreatedAt.After(j.CreatedAt)
}

func (s *InMemoryOrderStore) Create(ctx context.Context, o *order.Order) error {
	if s.CreateHook != nil {
		if err := s.CreateHook(o); err != nil {
			return err
		}
	}
	if err := s.InMemoryStore.Create(ctx, o.ID, o); err != nil {
		return ierr.WithError(err).
			WithHint("Failed to create order").
			Mark(ierr.ErrDatabase)
	}
	return nil
}

func (s *InMemoryOrderStore) Get(ctx context.Context, id string) (*order.Order, error) {
	o, err := s.InMemoryStore.Get(ctx, id)
	if err != nil || o.Status == types.StatusDeleted {
		return nil, ierr.NewError("order not found").
			WithHint("The order may have been removed").
			Mark(ierr.ErrNotFound)
	}
	return o, nil
}

func (s *InMemoryOrderStore) GetByOrderNumber(ctx context.Context, orderNumber string) (*order.Order, error) {
	orders, _ := s.InMemoryStore.List(ctx, nil, nil, nil)
	for _, o := range orders {
		if o.OrderNumber == orderNumber && o.Status != types.StatusDeleted {
			return o, nil
		}
	}
	return nil, ierr.NewError("order not found").
		WithHint("Check that the order number is correct").
		Mark(ierr.ErrNotFound)
}

func (s *InMemoryOrderStore) List(ctx context.Context, filter *types.OrderFilter) ([]*order.Order, error) {
	return s.InMemoryStore.List(ctx, filter, orderFilterFn, orderSortFn)
}

func (s *InMemoryOrderStore) Count(ctx context.Context, filter *types.OrderFilter) (int, error) {
	return s.InMemoryStore.Count(ctx, filter, orderFilterFn)
}

func (s *InMemoryOrderStore) Update(ctx context.Context, o *order.Order) error {
	if err := s.InMemoryStore.Update(ctx, o.ID, o); err != nil {
		return ierr.NewError("order not found").
			WithHint("The order may have been removed").
			Mark(ierr.ErrNotFound)
	}
	return nil
}

func (s *InMemoryOrderStore) AddStatusHistory(ctx context.Context, h *order.StatusHistory) error {
	s.historyMu.Lock()
	defer s.historyMu.Unlock()
	s.history[h.OrderID] = append(s.history[h.OrderID], h)
	return nil
}

func (s *InMemoryOrderStore) ListStatusHistory(ctx context.Context, orderID string) ([]*order.StatusHistory, error) {
	s.historyMu.RLock()
	defer s.historyMu.RUnlock()
	return append([]*order.StatusHistory{}, s.history[orderID]...), nil
}

// Clear resets orders and history between tests
func (s *InMemoryOrderStore) Clear() {
	s.InMemoryStore.Clear()
	s.historyMu.Lock()
	defer s.historyMu.Unlock()
	s.history = make(map[string][]*order.StatusHistory)
	s.CreateHook = nil
}
