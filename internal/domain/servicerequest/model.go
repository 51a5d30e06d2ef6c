package servicerequest

import (
	"regexp"
	"time"

	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

// ServiceRequest represents one citizen's application for a village
// administrative document.
type ServiceRequest struct {
	// ID is the unique identifier for the request
	ID string `db:"id" json:"id"`

	// RequestNumber is the human-readable reference assigned at creation.
	// It is immutable and is what citizens quote when tracking a request.
	RequestNumber string `db:"request_number" json:"request_number"`

	// ApplicantName is the citizen's full name
	ApplicantName string `db:"applicant_name" json:"applicant_name"`

	// NIK is the 16 digit national identity number
	NIK string `db:"nik" json:"nik"`

	// Phone is the addressing key for all outbound notifications
	Phone string `db:"phone" json:"phone"`

	// ServiceType is the requested document kind
	ServiceType types.ServiceType `db:"service_type" json:"service_type"`

	// RequestStatus is the lifecycle status of the request
	RequestStatus types.RequestStatus `db:"request_status" json:"request_status"`

	// Notes holds optional operator notes shown to the applicant
	Notes string `db:"notes" json:"notes"`

	// Documents are uploaded attachment references
	Documents types.DocumentList `db:"documents" json:"documents"`

	// UserID links the submitting account when the applicant was logged in
	UserID *string `db:"user_id" json:"user_id,omitempty"`

	// OperatorID links the operator handling the request
	OperatorID *string `db:"operator_id" json:"operator_id,omitempty"`

	// CompletedAt is set when the request reaches completed
	CompletedAt *time.Time `db:"completed_at" json:"completed_at,omitempty"`

	types.BaseModel
}

var nikPattern = regexp.MustCompile(`^[0-9]{16}$`)

// ValidateNIK rejects any value that is not exactly 16 digits.
func ValidateNIK(nik string) error {
	if !nikPattern.MatchString(nik) {
		return ierr.NewError("invalid NIK").
			WithHint("NIK must be exactly 16 digits").
			Mark(ierr.ErrValidation)
	}
	return nil
}

func (r *ServiceRequest) Validate() error {
	if r.ApplicantName == "" {
		return ierr.NewError("applicant name is required").
			WithHint("Applicant name must not be empty").
			Mark(ierr.ErrValidation)
	}
	if err := ValidateNIK(r.NIK); err != nil {
		return err
	}
	if r.Phone == "" {
		return ierr.NewError("phone number is required").
			WithHint("A phone number is needed to send status notifications").
			Mark(ierr.ErrValidation)
	}
	if err := r.ServiceType.Validate(); err != nil {
		return err
	}
	if err := r.RequestStatus.Validate(); err != nil {
		return err
	}
	return r.Documents.Validate()
}
