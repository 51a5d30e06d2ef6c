package service

import (
	"context"
	"time"

	"github.com/kethil/tempursarihubstore-sub000/internal/api/dto"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

type CategoryService interface {
	CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error)
	GetCategory(ctx context.Context, id string) (*dto.CategoryResponse, error)
	ListCategories(ctx context.Context, filter *types.QueryFilter) (*dto.ListCategoriesResponse, error)
	UpdateCategory(ctx context.Context, id string, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error)
	DeleteCategory(ctx context.Context, id string) error
}

type categoryService struct {
	ServiceParams
}

func NewCategoryService(params ServiceParams) CategoryService {
	return &categoryService{ServiceParams: params}
}

func (s *categoryService) CreateCategory(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	record := req.ToCategory(ctx)
	if err := s.CategoryRepo.Create(ctx, record); err != nil {
		return nil, err
	}

	return dto.ToCategoryResponse(record), nil
}

func (s *categoryService) GetCategory(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	record, err := s.CategoryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.ToCategoryResponse(record), nil
}

func (s *categoryService) ListCategories(ctx context.Context, filter *types.QueryFilter) (*dto.ListCategoriesResponse, error) {
	if filter == nil {
		filter = types.NewNoLimitQueryFilter()
	}

	records, err := s.CategoryRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*dto.CategoryResponse, 0, len(records))
	for _, record := range records {
		items = append(items, dto.ToCategoryResponse(record))
	}

	resp := types.NewListResponse(items, len(items), filter.GetLimit(), filter.GetOffset())
	return &resp, nil
}

func (s *categoryService) UpdateCategory(ctx context.Context, id string, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	record, err := s.CategoryRepo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	req.Apply(record)
	record.UpdatedAt = time.Now().UTC()
	record.UpdatedBy = types.GetUserID(ctx)

	if err := s.CategoryRepo.Update(ctx, record); err != nil {
		return nil, err
	}

	return dto.ToCategoryResponse(record), nil
}

func (s *categoryService) DeleteCategory(ctx context.Context, id string) error {
	if _, err := s.CategoryRepo.Get(ctx, id); err != nil {
		return err
	}
	return s.CategoryRepo.Delete(ctx, id)
}
