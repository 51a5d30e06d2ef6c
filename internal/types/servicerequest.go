package types

import (
	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
)

// RequestStatus is the lifecycle status of a service request.
// The write path permits any transition; completed and cancelled are
// terminal by business meaning only.
type RequestStatus string

const (
	RequestStatusPending   RequestStatus = "pending"
	RequestStatusOnProcess RequestStatus = "on_process"
	RequestStatusCompleted RequestStatus = "completed"
	RequestStatusCancelled RequestStatus = "cancelled"
)

func (s RequestStatus) Validate() error {
	switch s {
	case RequestStatusPending, RequestStatusOnProcess, RequestStatusCompleted, RequestStatusCancelled:
		return nil
	}
	return ierr.NewErrorf("invalid request status: %s", s).
		WithHint("Allowed statuses are pending, on_process, completed and cancelled").
		Mark(ierr.ErrValidation)
}

// Display returns the Indonesian-facing label used in notifications.
func (s RequestStatus) Display() string {
	switch s {
	case RequestStatusPending:
		return "Menunggu Diproses"
	case RequestStatusOnProcess:
		return "Sedang Diproses"
	case RequestStatusCompleted:
		return "Selesai"
	case RequestStatusCancelled:
		return "Dibatalkan"
	default:
		return string(s)
	}
}

// ServiceType is the fixed set of village administrative documents a
// citizen can request.
type ServiceType string

const (
	ServiceTypeKTP            ServiceType = "ktp"
	ServiceTypeKK             ServiceType = "kk"
	ServiceTypeAktaKelahiran  ServiceType = "akta_kelahiran"
	ServiceTypeAktaKematian   ServiceType = "akta_kematian"
	ServiceTypeSuratPindah    ServiceType = "surat_pindah"
	ServiceTypeSuratUsaha     ServiceType = "surat_keterangan_usaha"
	ServiceTypeSuratDomisili  ServiceType = "surat_keterangan_domisili"
	ServiceTypeSuratPengantar ServiceType = "surat_pengantar"
)

func (t ServiceType) Validate() error {
	switch t {
	case ServiceTypeKTP, ServiceTypeKK, ServiceTypeAktaKelahiran, ServiceTypeAktaKematian,
		ServiceTypeSuratPindah, ServiceTypeSuratUsaha, ServiceTypeSuratDomisili, ServiceTypeSuratPengantar:
		return nil
	}
	return ierr.NewErrorf("invalid service type: %s", t).
		WithHint("Unknown document service type").
		Mark(ierr.ErrValidation)
}

// Display returns the human-readable document name used in
// notifications and tracking views.
func (t ServiceType) Display() string {
	switch t {
	case ServiceTypeKTP:
		return "KTP (Kartu Tanda Penduduk)"
	case ServiceTypeKK:
		return "Kartu Keluarga"
	case ServiceTypeAktaKelahiran:
		return "Akta Kelahiran"
	case ServiceTypeAktaKematian:
		return "Akta Kematian"
	case ServiceTypeSuratPindah:
		return "Surat Keterangan Pindah"
	case ServiceTypeSuratUsaha:
		return "Surat Keterangan Usaha"
	case ServiceTypeSuratDomisili:
		return "Surat Keterangan Domisili"
	case ServiceTypeSuratPengantar:
		return "Surat Pengantar"
	default:
		return string(t)
	}
}

// ServiceRequestFilter filters service request listings.
type ServiceRequestFilter struct {
	*QueryFilter
	*TimeRangeFilter
	RequestStatuses []RequestStatus `json:"request_statuses,omitempty" form:"request_statuses"`
	ServiceType     ServiceType     `json:"service_type,omitempty" form:"service_type"`
	UserID          string          `json:"user_id,omitempty" form:"user_id"`
	Search          string          `json:"search,omitempty" form:"search"`
}

func NewServiceRequestFilter() *ServiceRequestFilter {
	return &ServiceRequestFilter{
		QueryFilter: NewDefaultQueryFilter(),
	}
}

func (f *ServiceRequestFilter) Validate() error {
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
	for _, status := range f.RequestStatuses {
		if err := status.Validate(); err != nil {
			return err
		}
	}
	if f.ServiceType != "" {
		if err := f.ServiceType.Validate(); err != nil {
			return err
		}
	}
	return nil
}

func (f *ServiceRequestFilter) GetLimit() int {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetLimit()
	}
	return f.QueryFilter.GetLimit()
}

func (f *ServiceRequestFilter) GetOffset() int {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().GetOffset()
	}
	return f.QueryFilter.GetOffset()
}

func (f *ServiceRequestFilter) IsUnlimited() bool {
	if f.QueryFilter == nil {
		return NewDefaultQueryFilter().IsUnlimited()
	}
	return f.QueryFilter.IsUnlimited()
}
