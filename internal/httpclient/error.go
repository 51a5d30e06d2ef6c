package httpclient

import (
	goerrors "errors"
	"fmt"

	"github.com/kethil/tempursarihubstore-sub000/internal/errors"
)

// Error represents an HTTP client error carrying the gateway response
type Error struct {
	StatusCode int
	Response   []byte
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: status %d", errors.ErrCodeHTTPClient, e.StatusCode)
}

// Is lets errors.Is match against the http client sentinel
func (e *Error) Is(target error) bool {
	return target == errors.ErrHTTPClient
}

// NewError creates a new HTTP client error
func NewError(statusCode int, response []byte) *Error {
	return &Error{
		StatusCode: statusCode,
		Response:   response,
	}
}

// IsHTTPError checks if an error is an HTTP client error
func IsHTTPError(err error) (*Error, bool) {
	var httpErr *Error
	if goerrors.As(err, &httpErr) {
		return httpErr, true
	}
	return nil, false
}
