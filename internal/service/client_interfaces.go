package service

import (
	"context"

	"github.com/MKhiriev/moneydashboard/internal/utils"
	"github.com/MKhiriev/moneydashboard/models"
)

// ClientSessionService defines the session-authenticated client contract.
// Every operation runs a full login cycle first; sessions are never reused
// between calls because the service expires them after a few minutes.
// Implementations are not safe for concurrent use.
type ClientSessionService interface {
	// EnsureAuthenticatedSession fetches a new verification token, logs in on
	// a fresh session and returns that session. Returns the adapter's
	// TokenNotFoundError or LoginFailedError unchanged on failure.
	EnsureAuthenticatedSession(ctx context.Context) (*utils.HTTPClient, error)

	// ListAccounts logs in and returns the account listing as decoded JSON.
	ListAccounts(ctx context.Context) (models.AccountList, error)

	// ListTransactions logs in and returns up to limit transactions as
	// decoded JSON. A limit <= 0 selects the configured default.
	ListTransactions(ctx context.Context, limit int) (models.TransactionList, error)

	// Token returns the verification token of the current session.
	Token() string

	// Session returns the current session without logging in, or nil before
	// the first successful login.
	Session() *utils.HTTPClient
}
