package servicerequest

import (
	"testing"

	"github.com/stretchr/testify/assert"

	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
	"github.com/kethil/tempursarihubstore-sub000/internal/types"
)

func TestValidateNIK(t *testing.T) {
	testCases := []struct {
		name    string
		nik     string
		wantErr bool
	}{
		{name: "valid", nik: "3507126012990001"},
		{name: "too_short", nik: "350712601299", wantErr: true},
		{name: "too_long", nik: "35071260129900011", wantErr: true},
		{name: "non_digits", nik: "35071260129900ab", wantErr: true},
		{name: "empty", nik: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateNIK(tc.nik)
			if tc.wantErr {
				assert.Error(t, err)
				assert.True(t, ierr.IsValidation(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func validRequest() *ServiceRequest {
	return &ServiceRequest{
		ID:            "req_01",
		RequestNumber: "REQ-20250115-X4K9QZ",
		ApplicantName: "Siti Aminah",
		NIK:           "3507126012990001",
		Phone:         "081234567890",
		ServiceType:   types.ServiceTypeKTP,
		RequestStatus: types.RequestStatusPending,
	}
}

func TestServiceRequestValidate(t *testing.T) {
	assert.NoError(t, validRequest().Validate())

	req := validRequest()
	req.ApplicantName = ""
	assert.Error(t, req.Validate())

	req = validRequest()
	req.Phone = ""
	assert.Error(t, req.Validate())

	req = validRequest()
	req.ServiceType = "surat_palsu"
	assert.Error(t, req.Validate())

	req = validRequest()
	req.RequestStatus = "unknown"
	assert.Error(t, req.Validate())
}
