package moneydashboard

import "github.com/MKhiriev/moneydashboard/internal/adapter"

// Error types returned by Client methods. Match them with errors.As; all of
// them also match ErrDashboard with errors.Is.
type (
	// TokenNotFoundError: the landing page could not be fetched or carried
	// no anti-forgery token. No login was attempted.
	TokenNotFoundError = adapter.TokenNotFoundError
	// LoginFailedError: the credential exchange failed. ErrorCode is set
	// when the service rejected the login itself.
	LoginFailedError = adapter.LoginFailedError
	// RequestError: an authenticated data request failed.
	RequestError = adapter.RequestError
)

// ErrDashboard matches every error returned by Client methods.
var ErrDashboard = adapter.ErrDashboard

// Causes chained inside the error types, derived from HTTP status codes.
var (
	ErrBadRequest          = adapter.ErrBadRequest
	ErrUnauthorized        = adapter.ErrUnauthorized
	ErrForbidden           = adapter.ErrForbidden
	ErrNotFound            = adapter.ErrNotFound
	ErrInternalServerError = adapter.ErrInternalServerError
	ErrBadGateway          = adapter.ErrBadGateway
	ErrUnexpectedStatus    = adapter.ErrUnexpectedStatus
	ErrTokenFieldMissing   = adapter.ErrTokenFieldMissing
	ErrTrailingData        = adapter.ErrTrailingData
)
