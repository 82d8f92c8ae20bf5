package constants

// Context keys
const (
	ContextKeyUserID       = "user_id"
	ContextKeyOrganization = "organization"
)

// TenantHeader carries the organization slug that selects the tenant context.
const TenantHeader = "X-Organization-Slug"

// Authentication
const (
	SessionCookieName = "pms_session"
	MinPasswordLength = 8
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 50
	MaxPageSize     = 200
)
