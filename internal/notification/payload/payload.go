package payload

import (
	"encoding/json"

	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

// RequestEventPayload carries the post-mutation request snapshot and,
// for status changes, the status it moved from.
type RequestEventPayload struct {
	RequestID     string              `json:"request_id"`
	RequestNumber string              `json:"request_number"`
	ApplicantName string              `json:"applicant_name"`
	Phone         string              `json:"phone"`
	ServiceType   types.ServiceType   `json:"service_type"`
	OldStatus     types.RequestStatus `json:"old_status,omitempty"`
	NewStatus     types.RequestStatus `json:"new_status"`
	Notes         string              `json:"notes,omitempty"`
}

func ParseRequestEventPayload(raw json.RawMessage) (*RequestEventPayload, error) {
	var payload RequestEventPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to decode request event payload").
			Mark(ierr.ErrValidation)
	}
	return &payload, nil
}
