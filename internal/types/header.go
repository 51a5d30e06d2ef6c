package types

const (
	HeaderAuthorization = "Authorization"
	HeaderRequestID     = "X-Request-ID"
	HeaderSessionID     = "X-Session-ID"
)
