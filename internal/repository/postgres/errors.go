package postgres

import (
	"errors"

	"github.com/lib/pq"

	ierr "github.com/kethil/tempursarihubstore-sub000/internal/errors"
)

// markWriteError translates driver error classes into application
// sentinels. Row level security refusals map to the permission
// sentinel so callers can branch on them, unique violations map to
// already-exists, everything else stays a database error.
func markWriteError(err error, hint string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "42501": // insufficient_privilege
			return ierr.WithError(err).
				WithHint(hint).
				Mark(ierr.ErrPermissionDenied)
		case "23505": // unique_violation
			return ierr.WithError(err).
				WithHint(hint).
				Mark(ierr.ErrAlreadyExists)
		}
	}
	return ierr.WithError(err).
		WithHint(hint).
		Mark(ierr.ErrDatabase)
}
