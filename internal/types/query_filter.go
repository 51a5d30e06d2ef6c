package types

import (
	"time"

	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/samber/lo"
)

const (
	FilterDefaultLimit = 50
	FilterMaxLimit     = 1000

	OrderDesc = "desc"
	OrderAsc  = "asc"
)

// BaseFilter defines common filtering capabilities
type BaseFilter interface {
	GetLimit() int
	GetOffset() int
	Validate() error
	IsUnlimited() bool
}

// QueryFilter represents a generic query filter with optional fields
type QueryFilter struct {
	Limit  *int    `json:"limit,omitempty" form:"limit"`
	Offset *int    `json:"offset,omitempty" form:"offset"`
	Status *Status `json:"status,omitempty" form:"status"`
	Sort   *string `json:"sort,omitempty" form:"sort"`
	Order  *string `json:"order,omitempty" form:"order"`
}

// NewDefaultQueryFilter returns the default pagination and ordering
func NewDefaultQueryFilter() *QueryFilter {
	return &QueryFilter{
		Limit:  lo.ToPtr(FilterDefaultLimit),
		Offset: lo.ToPtr(0),
		Status: lo.ToPtr(StatusPublished),
		Sort:   lo.ToPtr("created_at"),
		Order:  lo.ToPtr(OrderDesc),
	}
}

// NewNoLimitQueryFilter returns a filter with no pagination limits
func NewNoLimitQueryFilter() *QueryFilter {
	return &QueryFilter{
		Status: lo.ToPtr(StatusPublished),
		Sort:   lo.ToPtr("created_at"),
		Order:  lo.ToPtr(OrderDesc),
	}
}

func (f QueryFilter) GetLimit() int {
	if f.Limit == nil {
		return FilterDefaultLimit
	}
	return *f.Limit
}

func (f QueryFilter) GetOffset() int {
	if f.Offset == nil {
		return 0
	}
	return *f.Offset
}

func (f QueryFilter) GetStatus() Status {
	if f.Status == nil {
		return StatusPublished
	}
	return *f.Status
}

func (f QueryFilter) GetSort() string {
	if f.Sort == nil {
		return "created_at"
	}
	return *f.Sort
}

func (f QueryFilter) GetOrder() string {
	if f.Order == nil {
		return OrderDesc
	}
	return *f.Order
}

func (f QueryFilter) IsUnlimited() bool {
	return f.Limit == nil && f.Offset == nil
}

func (f QueryFilter) Validate() error {
	if f.Limit != nil && (*f.Limit < 1 || *f.Limit > FilterMaxLimit) {
		return ierr.NewError("invalid limit").
			WithHintf("Limit must be between 1 and %d", FilterMaxLimit).
			Mark(ierr.ErrValidation)
	}
	if f.Offset != nil && *f.Offset < 0 {
		return ierr.NewError("invalid offset").
			WithHint("Offset must not be negative").
			Mark(ierr.ErrValidation)
	}
	if f.Order != nil && *f.Order != OrderAsc && *f.Order != OrderDesc {
		return ierr.NewError("invalid order").
			WithHint("Order must be asc or desc").
			Mark(ierr.ErrValidation)
	}
	return nil
}

// TimeRangeFilter restricts listings to a creation time window
type TimeRangeFilter struct {
	StartTime *time.Time `json:"start_time,omitempty" form:"start_time" time_format:"2006-01-02T15:04:05Z07:00"`
	EndTime   *time.Time `json:"end_time,omitempty" form:"end_time" time_format:"2006-01-02T15:04:05Z07:00"`
}

func (f TimeRangeFilter) Validate() error {
	if f.StartTime != nil && f.EndTime != nil && f.EndTime.Before(*f.StartTime) {
		return ierr.NewError("invalid time range").
			WithHint("End time must not be before start time").
			Mark(ierr.ErrValidation)
	}
	return nil
}
