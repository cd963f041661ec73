package moneydashboard_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/moneydashboard"
	"github.com/MKhiriev/moneydashboard/internal/testserver"
	"github.com/MKhiriev/moneydashboard/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCreds = models.Credentials{Email: "user@example.com", Password: "hunter2"}

func newTestClient(t *testing.T, opts ...moneydashboard.Option) (*moneydashboard.Client, *testserver.Server) {
	t.Helper()
	srv := testserver.New(testCreds.Email, testCreds.Password)
	t.Cleanup(srv.Close)

	opts = append([]moneydashboard.Option{moneydashboard.WithTransport(srv.Transport())}, opts...)
	return moneydashboard.New(testCreds, opts...), srv
}

func TestClient_Session(t *testing.T) {
	client, srv := newTestClient(t)
	assert.Empty(t, client.Token())

	session, err := client.Session(context.Background())
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "token-1", client.Token())
	assert.Equal(t, []string{testserver.LandingPath, testserver.LoginPath}, srv.Paths())

	// the returned session is usable for further authenticated calls
	resp, err := session.R().
		SetHeader(testserver.TokenHeader, client.Token()).
		Get(moneydashboard.BaseURL + testserver.AccountsPath)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
}

func TestClient_Accounts(t *testing.T) {
	client, srv := newTestClient(t)

	accounts, err := client.Accounts(context.Background())
	require.NoError(t, err)

	list, ok := accounts.([]any)
	require.True(t, ok)
	require.Len(t, list, 1)
	account := list[0].(map[string]any)
	assert.Equal(t, "Current Account", account["Name"])
	assert.Equal(t, json.Number("125.5"), account["Balance"])

	assert.Equal(t, []string{
		testserver.LandingPath, testserver.LoginPath, testserver.AccountsPath,
	}, srv.Paths())
}

func TestClient_ConsecutiveReadsLogInEachTime(t *testing.T) {
	client, srv := newTestClient(t)
	ctx := context.Background()

	_, err := client.Accounts(ctx)
	require.NoError(t, err)
	first := client.Token()

	_, err = client.Accounts(ctx)
	require.NoError(t, err)
	second := client.Token()

	assert.Equal(t, 2, srv.Count(testserver.LandingPath))
	assert.Equal(t, 2, srv.Count(testserver.LoginPath))
	assert.Equal(t, 2, srv.Count(testserver.AccountsPath))
	assert.NotEqual(t, first, second)
}

func TestClient_Transactions(t *testing.T) {
	tests := []struct {
		name      string
		opts      []moneydashboard.Option
		limit     int
		wantQuery string
	}{
		{name: "explicit limit", limit: 5, wantQuery: "limitTo=5"},
		{name: "zero selects default", limit: 0, wantQuery: "limitTo=999"},
		{name: "negative selects default", limit: -1, wantQuery: "limitTo=999"},
		{
			name:      "configured default",
			opts:      []moneydashboard.Option{moneydashboard.WithTransactionsLimit(50)},
			limit:     0,
			wantQuery: "limitTo=50",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, srv := newTestClient(t, tt.opts...)

			_, err := client.Transactions(context.Background(), tt.limit)
			require.NoError(t, err)

			reqs := srv.Requests()
			require.Len(t, reqs, 3)
			assert.Equal(t, testserver.TransactionsPath, reqs[2].Path)
			assert.Equal(t, tt.wantQuery, reqs[2].RawQuery)
		})
	}
}

func TestClient_TransactionsPassThrough(t *testing.T) {
	client, _ := newTestClient(t)

	got, err := client.Transactions(context.Background(), 5)
	require.NoError(t, err)

	encoded, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"transactions":[{"id":1}]}`, string(encoded))
}

func TestClient_WrongPassword(t *testing.T) {
	srv := testserver.New(testCreds.Email, testCreds.Password)
	t.Cleanup(srv.Close)
	client := moneydashboard.New(
		models.Credentials{Email: testCreds.Email, Password: "wrong"},
		moneydashboard.WithTransport(srv.Transport()),
	)

	session, err := client.Session(context.Background())
	assert.Nil(t, session)

	var loginErr *moneydashboard.LoginFailedError
	require.ErrorAs(t, err, &loginErr)
	assert.Equal(t, "InvalidCredentials", loginErr.ErrorCode)
	assert.ErrorIs(t, err, moneydashboard.ErrDashboard)
	assert.Empty(t, client.Token())

	_, err = client.Accounts(context.Background())
	require.ErrorAs(t, err, &loginErr)
	assert.Zero(t, srv.Count(testserver.AccountsPath))
}

func TestClient_LoginHTTPError(t *testing.T) {
	client, srv := newTestClient(t)
	srv.SetLoginResponse(http.StatusInternalServerError, `oops`)

	_, err := client.Transactions(context.Background(), 5)

	var loginErr *moneydashboard.LoginFailedError
	require.ErrorAs(t, err, &loginErr)
	assert.ErrorIs(t, err, moneydashboard.ErrInternalServerError)
	assert.Zero(t, srv.Count(testserver.TransactionsPath))
}

func TestClient_MissingToken(t *testing.T) {
	client, srv := newTestClient(t)
	srv.SetLandingHTML(`<html><body>maintenance</body></html>`)

	_, err := client.Accounts(context.Background())

	var tokenErr *moneydashboard.TokenNotFoundError
	require.ErrorAs(t, err, &tokenErr)
	assert.ErrorIs(t, err, moneydashboard.ErrTokenFieldMissing)
	assert.Zero(t, srv.Count(testserver.LoginPath))
}

func TestClient_RequestError(t *testing.T) {
	client, srv := newTestClient(t)
	srv.SetAccountsResponse(http.StatusForbidden, `{"message":"nope"}`)

	_, err := client.Accounts(context.Background())

	var reqErr *moneydashboard.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.ErrorIs(t, err, moneydashboard.ErrForbidden)
	assert.ErrorIs(t, err, moneydashboard.ErrDashboard)
	// the login itself succeeded
	assert.Equal(t, "token-1", client.Token())
}

func TestClient_RequestTimeout(t *testing.T) {
	client, _ := newTestClient(t,
		moneydashboard.WithTransport(roundTripperFunc(func(r *http.Request) (*http.Response, error) {
			<-r.Context().Done()
			return nil, r.Context().Err()
		})),
		moneydashboard.WithRequestTimeout(50*time.Millisecond),
	)

	_, err := client.Session(context.Background())

	var tokenErr *moneydashboard.TokenNotFoundError
	require.ErrorAs(t, err, &tokenErr)
	assert.Error(t, tokenErr.Unwrap())
}

func TestClient_WithLogger(t *testing.T) {
	var buf bytes.Buffer
	client, _ := newTestClient(t, moneydashboard.WithLogger(zerolog.New(&buf)))

	_, err := client.Accounts(context.Background())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "logging in")
	assert.Contains(t, out, "getting accounts")
	assert.Contains(t, out, "login_cycle")
	assert.Contains(t, out, testCreds.Email)
	assert.NotContains(t, out, testCreds.Password)
}

func TestNewFromConfig(t *testing.T) {
	t.Run("credentials from environment", func(t *testing.T) {
		srv := testserver.New(testCreds.Email, testCreds.Password)
		t.Cleanup(srv.Close)
		t.Setenv("MONEYDASHBOARD_EMAIL", testCreds.Email)
		t.Setenv("MONEYDASHBOARD_PASSWORD", testCreds.Password)
		t.Setenv("APP_TRANSACTIONS_LIMIT", "7")
		t.Setenv("LOG_LEVEL", "disabled")

		client, err := moneydashboard.NewFromConfig(moneydashboard.WithTransport(srv.Transport()))
		require.NoError(t, err)

		_, err = client.Transactions(context.Background(), 0)
		require.NoError(t, err)
		reqs := srv.Requests()
		require.Len(t, reqs, 3)
		assert.Equal(t, "limitTo=7", reqs[2].RawQuery)
	})

	t.Run("zerolog package settings untouched", func(t *testing.T) {
		t.Setenv("MONEYDASHBOARD_EMAIL", testCreds.Email)
		t.Setenv("MONEYDASHBOARD_PASSWORD", testCreds.Password)
		fieldName := zerolog.CallerFieldName

		_, err := moneydashboard.NewFromConfig()
		require.NoError(t, err)

		assert.Equal(t, fieldName, zerolog.CallerFieldName)
	})

	t.Run("missing credentials", func(t *testing.T) {
		t.Setenv("MONEYDASHBOARD_EMAIL", "")
		t.Setenv("MONEYDASHBOARD_PASSWORD", "")

		client, err := moneydashboard.NewFromConfig()
		assert.Nil(t, client)
		assert.Error(t, err)
	})
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

