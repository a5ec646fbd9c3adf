package constant

import (
	"time"
)

const (
	ContextGuest = "guest"
	ContextSeed  = "seed"
)

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyUserID    contextKey = "user_id"
	ContextKeyUserEmail contextKey = "user_email"
	ContextKeyUserRole  contextKey = "user_role"
	ContextKeyTokenID   contextKey = "token_id"
	ContextKeyLanguage  contextKey = "language"
)

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

const (
	RequestParamPage     = "page"
	RequestParamLimit    = "limit"
	RequestParamSortBy   = "sort_by"
	RequestParamSortDir  = "sort_dir"
	RequestParamLanguage = "lang"
	RequestParamSearch   = "search"
	RequestParamStatus   = "status"
	RequestParamFrom     = "from"
	RequestParamTo       = "to"
)

const (
	RequestParamID   = "id"
	RequestParamSlug = "slug"
	RequestMaxMemory = 10 << 20 // 10 MB
)

const (
	DefaultValuePage    = 1
	DefaultValueLimit   = 10
	MaxValueLimit       = 100
	DefaultValueSortBy  = "created_at"
	DefaultValueSortDir = "DESC"
)

const (
	FieldCreatedAt  = "created_at"
	FieldCreatedBy  = "created_by"
	FieldModifiedAt = "modified_at"
	FieldModifiedBy = "modified_by"
)

const (
	PqErrorCodeUniqueViolation   = "23505"
	PqErrorCodeFkViolation       = "23503"
	PqErrorCodeInvalidTextFormat = "22P02"
)

const (
	DateFormat    = time.RFC3339
	DateOnly      = time.DateOnly
	TimeOfDayOnly = "15:04"
)

const (
	MinutesToSeconds = 60
)

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelEventScopeName      = "event"
	OtelExternalScopeName   = "external"

	OtelQueryAttributeKey = "query"
)

const (
	RequestHeaderAuthorization      = "Authorization"
	RequestHeaderAcceptLanguage     = "Accept-Language"
	RequestHeaderContentLanguage    = "Content-Language"
	RequestHeaderUserAgent          = "User-Agent"
	RequestHeaderContentType        = "Content-Type"
	RequestHeaderRateLimit          = "X-RateLimit-Limit"
	RequestHeaderRateLimitRemaining = "X-RateLimit-Remaining"
	RequestHeaderRateLimitWindow    = "X-RateLimit-Window"
	RequestHeaderRequestID          = "X-Request-ID"
	RequestHeaderForwardedFor       = "X-Forwarded-For"
	RequestHeaderRealIP             = "X-Real-IP"
	RequestHeaderAPIKey             = "X-API-Key"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseStatusSuccess = "success"
	ResponseStatusFail    = "fail"
	ResponseStatusError   = "error"
)

const (
	ResponseErrorPrepareShutdown      = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy            = "SERVER UNHEALTHY"
	ResponseErrorRequestLimitExceeded = "REQUEST LIMIT EXCEEDED"
	ResponseErrorInternal             = "Something went wrong"
	ResponseErrorRouteNotFound        = "Route not found"
	ResponseErrorMethodNotAllowed     = "Method not allowed"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

const (
	EventBookingCreated       = "booking.created"
	EventBookingStatusChanged = "booking.status_changed"
	EventContactSubmitted     = "contact.submitted"
)

// CacheKeyDashboard prefixes the cached admin dashboard, cleared whenever bookings, users,
// services or contacts change.
const CacheKeyDashboard = "dashboard"

const (
	HealthStatusUp   = "up"
	HealthStatusDown = "down"
)

const (
	Asterix = "*"
	Empty   = ""
)
