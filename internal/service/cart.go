package service

import (
	"context"
	"time"

	"github.com/kethil/tempursarihubstore-sub000/internal/api/dto"
	"github.com/kethil/tempursarihubstore-sub000/internal/domain/cart"
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

type CartService interface {
	AddItem(ctx context.Context, req *dto.AddCartItemRequest) (*dto.CartItemResponse, error)
	UpdateItem(ctx context.Context, id string, req *dto.UpdateCartItemRequest) (*dto.CartItemResponse, error)
	RemoveItem(ctx context.Context, id string) error
	GetCart(ctx context.Context, sessionID string) (*dto.CartResponse, error)
	ClearCart(ctx context.Context, sessionID string) error
}

type cartService struct {
	ServiceParams
}

func NewCartService(params ServiceParams) CartService {
	return &cartService{ServiceParams: params}
}

// AddItem adds a product to the session cart. Adding a product already
// in the cart bumps the quantity of the existing line instead of
// creating a duplicate.
func (s *cartService) AddItem(ctx context.Context, req *dto.AddCartItemRequest) (*dto.CartItemResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	product, err := s.ProductRepo.Get(ctx, req.ProductID)
	if err != nil {
		return nil, err
	}
	if !product.IsAvailable() {
		return nil, ierr.NewError("product is not available").
			WithHint("This product is out of stock or not for sale").
			Mark(ierr.ErrInvalidOperation)
	}

	existing, err := s.CartRepo.ListBySession(ctx, req.SessionID)
	if err != nil {
		return nil, err
	}

	for _, line := range existing {
		if line.ProductID == req.ProductID {
			line.Quantity += req.Quantity
			line.UpdatedAt = time.Now().UTC()
			if err := s.CartRepo.Update(ctx, line); err != nil {
				return nil, err
			}
			return dto.ToCartItemResponse(line, product), nil
		}
	}

	item := &cart.CartItem{
		ID:        types.GenerateUUIDWithPrefix(types.UUID_PREFIX_CART_ITEM),
		SessionID: req.SessionID,
		ProductID: req.ProductID,
		Quantity:  req.Quantity,
		BaseModel: types.GetDefaultBaseModel(ctx),
	}
	if types.IsAuthenticated(ctx) {
		userID := types.GetUserID(ctx)
		item.UserID = &userID
	}
	if err := item.Validate(); err != nil {
		return nil, err
	}

	if err := s.CartRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return dto.ToCartItemResponse(item, product), nil
}

func (s *cartService) UpdateItem(ctx context.Context, id string, req *dto.UpdateCartItemRequest) (*dto.CartItemResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	item, err := s.CartRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	item.Quantity = req.Quantity
	item.UpdatedAt = time.Now().UTC()
	if err := s.CartRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	product, err := s.ProductRepo.Get(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}

	return dto.ToCartItemResponse(item, product), nil
}

func (s *cartService) RemoveItem(ctx context.Context, id string) error {
	if _, err := s.CartRepo.Get(ctx, id); err != nil {
		return err
	}
	return s.CartRepo.Delete(ctx, id)
}

// GetCart returns the session's cart lines joined with current product
// data plus the summary totals.
func (s *cartService) GetCart(ctx context.Context, sessionID string) (*dto.CartResponse, error) {
	if sessionID == "" {
		return nil, ierr.NewError("session id is required").
			WithHint("A cart session token is required").
			Mark(ierr.ErrValidation)
	}

	items, err := s.CartRepo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	resp := &dto.CartResponse{Items: make([]*dto.CartItemResponse, 0, len(items))}
	lines := make([]cart.Line, 0, len(items))

	for _, item := range items {
		product, err := s.ProductRepo.Get(ctx, item.ProductID)
		if err != nil {
			if ierr.IsNotFound(err) {
				// product was removed from the shop; skip the stale line
				continue
			}
			return nil, err
		}
		resp.Items = append(resp.Items, dto.ToCartItemResponse(item, product))
		lines = append(lines, cart.Line{Price: product.Price, Quantity: item.Quantity})
	}

	summary := cart.Summarize(lines)
	resp.TotalItems = summary.TotalItems
	resp.TotalAmount = summary.TotalAmount
	return resp, nil
}

func (s *cartService) ClearCart(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return ierr.NewError("session id is required").
			WithHint("A cart session token is required").
			Mark(ierr.ErrValidation)
	}
	return s.CartRepo.DeleteBySession(ctx, sessionID)
}
