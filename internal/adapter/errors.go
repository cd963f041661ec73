package adapter

import (
	"errors"
	"fmt"
)

// ErrDashboard is matched by every error this package returns.
var ErrDashboard = errors.New("moneydashboard request failed")

// Causes derived from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedStatus    = errors.New("unexpected status")
)

var (
	// ErrTokenFieldMissing means the landing page has no usable
	// verification token input.
	ErrTokenFieldMissing = errors.New("verification token field missing")
	// ErrNoSession is returned by data calls made before any successful login.
	ErrNoSession = errors.New("no authenticated session")
	// ErrTrailingData means a JSON response body continued after its
	// document.
	ErrTrailingData = errors.New("unexpected data after JSON document")
)

// TokenNotFoundError is returned when the anti-forgery token cannot be
// obtained from the landing page.
type TokenNotFoundError struct {
	Err error
}

func (e *TokenNotFoundError) Error() string {
	if e.Err == nil {
		return "verification token not found"
	}
	return fmt.Sprintf("verification token not found: %v", e.Err)
}

func (e *TokenNotFoundError) Unwrap() error { return e.Err }

func (e *TokenNotFoundError) Is(target error) bool { return target == ErrDashboard }

// LoginFailedError is returned when the credential exchange fails.
//
// Err is set for transport, status and decoding failures. When the service
// itself rejects the login, Err is nil and ErrorCode holds the code it
// reported.
type LoginFailedError struct {
	ErrorCode any
	Err       error
}

func (e *LoginFailedError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("login failed: %v", e.Err)
	}
	return fmt.Sprintf("login failed (error code: %v)", e.ErrorCode)
}

func (e *LoginFailedError) Unwrap() error { return e.Err }

func (e *LoginFailedError) Is(target error) bool { return target == ErrDashboard }

// RequestError is returned when an authenticated data call fails. Op names
// the call ("get accounts", "get transactions").
type RequestError struct {
	Op  string
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

func (e *RequestError) Is(target error) bool { return target == ErrDashboard }
