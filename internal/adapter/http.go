package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/MKhiriev/moneydashboard/internal/config"
	"github.com/MKhiriev/moneydashboard/internal/logger"
	"github.com/MKhiriev/moneydashboard/internal/utils"
	"github.com/MKhiriev/moneydashboard/models"
	"github.com/go-resty/resty/v2"
)

// BaseURL is the only host the client talks to.
const BaseURL = "https://my.moneydashboard.com"

const (
	landingPath      = "/landing"
	loginPath        = "/landing/login"
	accountsPath     = "/api/Account/"
	transactionsPath = "/transaction/GetTransactions"

	verificationTokenHeader = "__requestverificationtoken"
)

type httpDashboardAdapter struct {
	sessionOpts utils.HTTPClientOptions

	session *utils.HTTPClient
	token   string

	logger *logger.Logger
}

// NewHTTPDashboardAdapter constructs the resty implementation of
// [DashboardAdapter]. Every session it opens gets the request timeout and
// transport from adapterCfg; both are optional.
func NewHTTPDashboardAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) DashboardAdapter {
	return newHTTPDashboardAdapter(BaseURL, adapterCfg, logger)
}

func newHTTPDashboardAdapter(baseURL string, adapterCfg config.ClientAdapter, logger *logger.Logger) *httpDashboardAdapter {
	return &httpDashboardAdapter{
		sessionOpts: utils.HTTPClientOptions{
			BaseURL:   baseURL,
			Timeout:   adapterCfg.RequestTimeout,
			Transport: adapterCfg.Transport,
		},
		logger: logger,
	}
}

func (h *httpDashboardAdapter) newSession() *utils.HTTPClient {
	return utils.NewHTTPClient(h.sessionOpts)
}

// Session implements [DashboardAdapter].
func (h *httpDashboardAdapter) Session() *utils.HTTPClient {
	return h.session
}

// Token implements [DashboardAdapter].
func (h *httpDashboardAdapter) Token() string {
	return h.token
}

// FetchVerificationToken implements [DashboardAdapter]. The session used for
// GET /landing is discarded once its cookies have been snapshotted. The
// snapshot holds every cookie set during the exchange, redirects included,
// whatever path it was scoped to.
func (h *httpDashboardAdapter) FetchVerificationToken(ctx context.Context) (models.Landing, error) {
	log := logger.FromContextOr(ctx, h.logger)

	session := h.newSession()
	resp, err := session.R().
		SetContext(ctx).
		Get(landingPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to fetch landing page")
		return models.Landing{}, &TokenNotFoundError{Err: fmt.Errorf("landing request: %w", err)}
	}
	if err = mapHTTPError(resp); err != nil {
		log.Error().Err(err).Msg("failed to fetch landing page")
		return models.Landing{}, &TokenNotFoundError{Err: err}
	}

	token, err := extractVerificationToken(resp.Body())
	if err != nil {
		log.Error().Err(err).Msg("verification token not found on landing page")
		return models.Landing{}, &TokenNotFoundError{Err: err}
	}

	return models.Landing{
		Token:   token,
		Cookies: utils.ReceivedCookieString(resp.RawResponse),
	}, nil
}

// Login implements [DashboardAdapter]. It POSTs creds to /landing/login from
// a session distinct from the one that fetched the token, presenting that
// session's cookies explicitly.
func (h *httpDashboardAdapter) Login(ctx context.Context, creds models.Credentials, landing models.Landing) (*utils.HTTPClient, error) {
	log := logger.FromContextOr(ctx, h.logger)
	log.Info().Object("credentials", creds).Msg("logging in")

	session := h.newSession()
	req := session.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetHeader("X-Requested-With", "XMLHttpRequest").
		SetHeader(verificationTokenHeader, landing.Token).
		SetBody(creds)
	if landing.Cookies != "" {
		req.SetHeader("Cookie", landing.Cookies)
	}

	resp, err := req.Post(loginPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to login")
		return nil, &LoginFailedError{Err: fmt.Errorf("login request: %w", err)}
	}
	if err = mapHTTPError(resp); err != nil {
		log.Error().Err(err).Msg("failed to login")
		return nil, &LoginFailedError{Err: err}
	}

	var loginResp models.LoginResponse
	if err = json.Unmarshal(resp.Body(), &loginResp); err != nil {
		log.Error().Err(err).Msg("failed to decode login response")
		return nil, &LoginFailedError{Err: fmt.Errorf("decode login response: %w", err)}
	}

	if !loginResp.IsSuccess {
		log.Error().Interface("error_code", loginResp.ErrorCode).Msg("failed to login")
		return nil, &LoginFailedError{ErrorCode: loginResp.ErrorCode}
	}

	h.session = session
	h.token = landing.Token
	return session, nil
}

// GetAccounts implements [DashboardAdapter]. It GETs /api/Account/.
func (h *httpDashboardAdapter) GetAccounts(ctx context.Context) (models.AccountList, error) {
	logger.FromContextOr(ctx, h.logger).Info().Msg("getting accounts")

	return h.getJSON(ctx, "get accounts", accountsPath, nil)
}

// GetTransactions implements [DashboardAdapter]. It GETs
// /transaction/GetTransactions?limitTo=<limit>.
func (h *httpDashboardAdapter) GetTransactions(ctx context.Context, limit int) (models.TransactionList, error) {
	logger.FromContextOr(ctx, h.logger).Info().Int("limit", limit).Msg("getting transactions")

	return h.getJSON(ctx, "get transactions", transactionsPath, map[string]string{
		"limitTo": strconv.Itoa(limit),
	})
}

func (h *httpDashboardAdapter) getJSON(ctx context.Context, op, path string, query map[string]string) (any, error) {
	log := logger.FromContextOr(ctx, h.logger)

	req, err := h.authedRequest(ctx)
	if err != nil {
		log.Error().Err(err).Str("op", op).Msg("request failed")
		return nil, &RequestError{Op: op, Err: err}
	}

	resp, err := req.
		SetQueryParams(query).
		Get(path)
	if err != nil {
		log.Error().Err(err).Str("op", op).Msg("request failed")
		return nil, &RequestError{Op: op, Err: fmt.Errorf("%s request: %w", op, err)}
	}
	if err = mapHTTPError(resp); err != nil {
		log.Error().Err(err).Str("op", op).Msg("request failed")
		return nil, &RequestError{Op: op, Err: err}
	}

	payload, err := decodeJSON(resp.Body())
	if err != nil {
		log.Error().Err(err).Str("op", op).Msg("request failed")
		return nil, &RequestError{Op: op, Err: fmt.Errorf("decode %s response: %w", op, err)}
	}

	return payload, nil
}

// authedRequest builds a request on the current session carrying the
// verification token header.
func (h *httpDashboardAdapter) authedRequest(ctx context.Context) (*resty.Request, error) {
	if h.session == nil {
		return nil, ErrNoSession
	}

	return h.session.R().
		SetContext(ctx).
		SetHeader(verificationTokenHeader, h.token), nil
}

// decodeJSON decodes an arbitrary JSON document. Numbers stay json.Number so
// large identifiers survive untouched. Anything but whitespace after the
// document is an error.
func decodeJSON(body []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}

	var trailing json.RawMessage
	if err := dec.Decode(&trailing); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}

	return payload, nil
}
