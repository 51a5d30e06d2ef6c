package postgres

import (
	"fmt"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
)

func TestMarkWriteError(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{
			name:  "row level security refusal maps to permission denied",
			err:   &pq.Error{Code: "42501", Message: "new row violates row-level security policy"},
			check: ierr.IsPermissionDenied,
		},
		{
			name:  "unique violation maps to already exists",
			err:   &pq.Error{Code: "23505", Message: "duplicate key value"},
			check: ierr.IsAlreadyExists,
		},
		{
			name:  "other driver errors stay database errors",
			err:   &pq.Error{Code: "23503", Message: "foreign key violation"},
			check: ierr.IsDatabase,
		},
		{
			name:  "non driver errors stay database errors",
			err:   fmt.Errorf("connection reset"),
			check: ierr.IsDatabase,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := markWriteError(tt.err, "write failed")
			assert.True(t, tt.check(err))
		})
	}
}
