package models

// LoginResponse is the body returned by the login endpoint.
type LoginResponse struct {
	// IsSuccess is true when the credentials were accepted.
	IsSuccess bool `json:"IsSuccess"`

	// ErrorCode is service-defined and opaque; it is only logged and
	// surfaced on the login error.
	ErrorCode any `json:"ErrorCode"`
}

// AccountList is the decoded account listing, passed through unmodified.
type AccountList = any

// TransactionList is the decoded transaction listing, passed through unmodified.
type TransactionList = any
