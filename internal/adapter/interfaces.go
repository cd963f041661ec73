// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the Money
// Dashboard web service.
//
// The primary abstraction is [DashboardAdapter], which hides the session
// cookie handling, anti-forgery token extraction and HTTP status mapping from
// the service layer. The package ships one implementation backed by resty
// ([NewHTTPDashboardAdapter]).
//
// Failures are reported as [*TokenNotFoundError], [*LoginFailedError] or
// [*RequestError]; all of them match [ErrDashboard] with [errors.Is], and
// status-derived causes can be matched against the sentinel values in
// errors.go (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/moneydashboard/internal/utils"
	"github.com/MKhiriev/moneydashboard/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/dashboard_adapter_mock.go -package=mock

// DashboardAdapter defines the calls made against the Money Dashboard
// endpoints. Implementations own the current session and verification token
// and replace both together only when a login succeeds.
type DashboardAdapter interface {
	// FetchVerificationToken opens a fresh session, loads the landing page
	// and returns the anti-forgery token found in its markup together with
	// the cookies that session received. Returns [*TokenNotFoundError] when
	// the page cannot be fetched or carries no token.
	FetchVerificationToken(ctx context.Context) (models.Landing, error)

	// Login opens a second fresh session and posts creds with the token and
	// cookie snapshot from landing. On success the new session and token
	// become current and the session is returned. Returns
	// [*LoginFailedError] otherwise; the current session is left untouched.
	Login(ctx context.Context, creds models.Credentials, landing models.Landing) (*utils.HTTPClient, error)

	// GetAccounts fetches the account listing using the current session.
	GetAccounts(ctx context.Context) (models.AccountList, error)

	// GetTransactions fetches up to limit transactions using the current
	// session.
	GetTransactions(ctx context.Context, limit int) (models.TransactionList, error)

	// Session returns the current authenticated session, or nil before the
	// first successful login.
	Session() *utils.HTTPClient

	// Token returns the current verification token, or an empty string
	// before the first successful login.
	Token() string
}
