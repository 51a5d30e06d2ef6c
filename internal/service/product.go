package service

import (
	"context"
	"time"

	"github.com/kethil/tempursarihubstore-sub000/internal/api/dto"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error)
	GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error)
	ListProducts(ctx context.Context, filter *types.ProductFilter) (*dto.ListProductsResponse, error)
	UpdateProduct(ctx context.Context, id string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error)
	DeleteProduct(ctx context.Context, id string) error
}

type productService struct {
	ServiceParams
}

func NewProductService(params ServiceParams) ProductService {
	return &productService{ServiceParams: params}
}

func (s *productService) CreateProduct(ctx context.Context, req *dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record := req.ToProduct(ctx)
	if err := record.Validate(); err != nil {
		return nil, err
	}

	if err := s.ProductRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return dto.ToProductResponse(record), nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (*dto.ProductResponse, error) {
	record, err := s.ProductRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToProductResponse(record), nil
}

func (s *productService) ListProducts(ctx context.Context, filter *types.ProductFilter) (*dto.ListProductsResponse, error) {
	if filter == nil {
		filter = types.NewProductFilter()
	}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := s.ProductRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	total, err := s.ProductRepo.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.ProductResponse, 0, len(records))
	for _, record := range records {
		items = append(items, dto.ToProductResponse(record))
	}

	resp := types.NewListResponse(items, total, filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, req *dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	record, err := s.ProductRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(record)
	if err := record.Validate(); err != nil {
		return nil, err
	}

	record.UpdatedAt = time.Now().UTC()
	record.UpdatedBy = types.GetUserID(ctx)

	if err := s.ProductRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	return dto.ToProductResponse(record), nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	if _, err := s.ProductRepo.Get(ctx, id); err != nil {
		return err
	}
	return s.ProductRepo.Delete(ctx, id)
}
