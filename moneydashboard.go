// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package moneydashboard is a client for the unofficial Money Dashboard web
// API.
//
// The service authenticates with a session cookie and an anti-forgery token
// scraped from its landing page. Sessions expire after a few minutes, so
// every call made through [Client] performs a complete login first: fetch
// the landing page on one session, post the credentials from a second,
// fresh session presenting the first session's cookies, then issue the
// request on the second session.
//
// A Client is not safe for concurrent use. Serialize calls or create one
// Client per goroutine.
//
//	client := moneydashboard.New(models.Credentials{Email: email, Password: password})
//	accounts, err := client.Accounts(ctx)
package moneydashboard

import (
	"context"
	"fmt"

	"github.com/MKhiriev/moneydashboard/internal/adapter"
	"github.com/MKhiriev/moneydashboard/internal/config"
	"github.com/MKhiriev/moneydashboard/internal/logger"
	"github.com/MKhiriev/moneydashboard/internal/service"
	"github.com/MKhiriev/moneydashboard/models"
	"github.com/go-resty/resty/v2"
)

// BaseURL is the Money Dashboard host every request is sent to.
const BaseURL = adapter.BaseURL

// DefaultTransactionsLimit is used by [Client.Transactions] when limit <= 0
// and no other default was configured.
const DefaultTransactionsLimit = config.DefaultTransactionsLimit

// Client talks to Money Dashboard on behalf of one account.
type Client struct {
	services *service.ClientServices
	logger   *logger.Logger
}

// New returns a Client for creds. Without options it logs nothing, sets no
// request timeout and uses http.DefaultTransport.
func New(creds models.Credentials, opts ...Option) *Client {
	cfg := config.NewClientConfig(&config.StructuredConfig{})
	cfg.Credentials = creds

	o := &options{logger: logger.Nop()}
	for _, opt := range opts {
		opt(o)
	}
	o.apply(cfg)

	return newClient(cfg, o.logger)
}

// NewFromConfig returns a Client configured from a .env file, the
// environment and an optional JSON file (see the internal config package for
// the variable names). Logging goes to stdout at the configured level. opts
// are applied on top of the loaded configuration.
func NewFromConfig(opts ...Option) (*Client, error) {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	lvl, err := logger.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	o := &options{logger: logger.NewLogger(cfg.Log.Role).WithLevel(lvl)}
	for _, opt := range opts {
		opt(o)
	}
	o.apply(cfg)

	return newClient(cfg, o.logger), nil
}

func newClient(cfg *config.ClientConfig, log *logger.Logger) *Client {
	dashboardAdapter := adapter.NewHTTPDashboardAdapter(cfg.Adapter, log)

	return &Client{
		services: service.NewClientServices(cfg, dashboardAdapter, log),
		logger:   log,
	}
}

// Session logs in and returns the authenticated session. The returned client
// carries the session cookies; requests made with it must also send the
// header "__requestverificationtoken" set to [Client.Token].
func (c *Client) Session(ctx context.Context) (*resty.Client, error) {
	session, err := c.services.SessionService.EnsureAuthenticatedSession(ctx)
	if err != nil {
		return nil, err
	}

	return session.Client, nil
}

// Accounts logs in and returns the account listing exactly as the service
// sent it, decoded from JSON. Numbers are json.Number values.
func (c *Client) Accounts(ctx context.Context) (models.AccountList, error) {
	return c.services.SessionService.ListAccounts(ctx)
}

// Transactions logs in and returns up to limit transactions exactly as the
// service sent them, decoded from JSON. A limit <= 0 selects the configured
// default ([DefaultTransactionsLimit] unless changed).
func (c *Client) Transactions(ctx context.Context, limit int) (models.TransactionList, error) {
	return c.services.SessionService.ListTransactions(ctx, limit)
}

// Token returns the verification token of the last successful login, or an
// empty string before the first one.
func (c *Client) Token() string {
	return c.services.SessionService.Token()
}
