package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination
	DefaultTicketCount = 20
	MaxTicketCount     = 100

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"
	HeaderXForwardedFor = "X-Forwarded-For"
	HeaderUserAgent     = "User-Agent"

	// Content Types
	ContentTypeJSON = "application/json"
	ContentTypeForm = "application/x-www-form-urlencoded"

	// Context keys
	ContextKeyUserID     = "user_id"
	ContextKeyExternalID = "external_id"
	ContextKeyRequestID  = "request_id"

	// Database table names
	TableUsers               = "users"
	TableTickets             = "tickets"
	TableComments            = "comments"
	TableUserAssignments     = "userassignments"
	TableTicketModifications = "ticketmodifications"
	TableProjects            = "projects"

	// Entity ID format
	EntityIDLength = 15

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthenticated     = "Authentication required"
	ErrMsgForbidden           = "You do not have access to this resource"
	ErrMsgValidationFailed    = "Validation failed"
	ErrMsgConflict            = "Resource already exists"
)
