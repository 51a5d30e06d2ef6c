package types

// Status is a type for the lifecycle status of a persisted resource.
// This is used to soft delete rows and to determine if they should be
// included in queries.
type Status string

const (
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
	StatusDeleted   Status = "deleted"
)

// UserRole drives the role gate on the admin surface.
type UserRole string

const (
	UserRoleUser     UserRole = "user"
	UserRoleOperator UserRole = "operator"
	UserRoleAdmin    UserRole = "admin"
)

func (r UserRole) Validate() bool {
	switch r {
	case UserRoleUser, UserRoleOperator, UserRoleAdmin:
		return true
	}
	return false
}

// IsStaff reports whether the role may access the admin surface.
func (r UserRole) IsStaff() bool {
	return r == UserRoleOperator || r == UserRoleAdmin
}

// AuthProvider is the authentication provider backing sessions.
type AuthProvider string

const (
	AuthProviderSupabase AuthProvider = "supabase"
	AuthProviderLocal    AuthProvider = "local"
)

// RunMode is the deployment mode of the process.
type RunMode string

const (
	ModeLocal RunMode = "local"
	ModeAPI   RunMode = "api"
)

// LogLevel is the logging verbosity.
type LogLevel string

const (
	LogLevelDebug LogLevel = "debug"
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// PubSubType selects the message bus implementation for the
// notification pipeline.
type PubSubType string

const (
	MemoryPubSub PubSubType = "memory"
)
