// Package testserver runs an in-process stand-in for the Money Dashboard
// endpoints. It issues one verification token and session cookie per landing
// page view, accepts a login only when that token and cookie are presented
// together, and serves the data endpoints only to the session the login
// created.
package testserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
)

const (
	LandingPath      = "/landing"
	LoginPath        = "/landing/login"
	AccountsPath     = "/api/Account/"
	TransactionsPath = "/transaction/GetTransactions"

	SessionCookie = "ASP.NET_SessionId"
	AuthCookie    = ".ASPXAUTH"
	TokenHeader   = "__requestverificationtoken"
)

// DefaultAccounts and DefaultTransactions are served by the data endpoints
// unless overridden.
const (
	DefaultAccounts     = `[{"Id":1,"Name":"Current Account","Balance":125.5}]`
	DefaultTransactions = `{"transactions":[{"id":1}]}`
)

// Request is one recorded call.
type Request struct {
	Method   string
	Path     string
	RawQuery string
	Header   http.Header
	Body     []byte
}

type response struct {
	status int
	body   string
}

// Server is the fake service. The zero value is not usable; call New.
type Server struct {
	*httptest.Server

	mu       sync.Mutex
	email    string
	password string

	landingHTML  *string
	login        *response
	accounts     response
	transactions response

	seq      int
	sessions map[string]string // landing session cookie -> token issued with it
	authed   map[string]string // auth cookie -> token it was issued for
	requests []Request
}

// New starts a server accepting the given credentials.
func New(email, password string) *Server {
	s := &Server{
		email:        email,
		password:     password,
		accounts:     response{status: http.StatusOK, body: DefaultAccounts},
		transactions: response{status: http.StatusOK, body: DefaultTransactions},
		sessions:     make(map[string]string),
		authed:       make(map[string]string),
	}

	mux := http.NewServeMux()
	mux.HandleFunc(LandingPath, s.handleLanding)
	mux.HandleFunc(LoginPath, s.handleLogin)
	mux.HandleFunc(AccountsPath, s.handleData(func() response { return s.accounts }))
	mux.HandleFunc(TransactionsPath, s.handleData(func() response { return s.transactions }))

	s.Server = httptest.NewServer(s.record(mux))
	return s
}

// SetLandingHTML replaces the generated landing page with a fixed body.
func (s *Server) SetLandingHTML(html string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.landingHTML = &html
}

// SetLoginResponse makes every login answer with status and body, bypassing
// credential checks.
func (s *Server) SetLoginResponse(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.login = &response{status: status, body: body}
}

// ResetLoginResponse restores credential-checking login handling.
func (s *Server) ResetLoginResponse() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.login = nil
}

// SetAccountsResponse overrides the accounts endpoint reply.
func (s *Server) SetAccountsResponse(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts = response{status: status, body: body}
}

// SetTransactionsResponse overrides the transactions endpoint reply.
func (s *Server) SetTransactionsResponse(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.transactions = response{status: status, body: body}
}

// Requests returns a copy of every recorded request in arrival order.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// Count returns how many requests hit path.
func (s *Server) Count(path string) int {
	n := 0
	for _, r := range s.Requests() {
		if r.Path == path {
			n++
		}
	}
	return n
}

// Paths returns the path of every recorded request in arrival order.
func (s *Server) Paths() []string {
	reqs := s.Requests()
	out := make([]string, 0, len(reqs))
	for _, r := range reqs {
		out = append(out, r.Path)
	}
	return out
}

// Transport returns a RoundTripper that sends every request to this server
// whatever host it was addressed to.
func (s *Server) Transport() http.RoundTripper {
	target, _ := url.Parse(s.URL)
	return &rewriteTransport{target: target, next: http.DefaultTransport}
}

type rewriteTransport struct {
	target *url.URL
	next   http.RoundTripper
}

func (t *rewriteTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	r = r.Clone(r.Context())
	r.URL.Scheme = t.target.Scheme
	r.URL.Host = t.target.Host
	r.Host = t.target.Host
	return t.next.RoundTrip(r)
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()

		s.mu.Lock()
		s.requests = append(s.requests, Request{
			Method:   r.Method,
			Path:     r.URL.Path,
			RawQuery: r.URL.RawQuery,
			Header:   r.Header.Clone(),
			Body:     body,
		})
		s.mu.Unlock()

		r.Body = io.NopCloser(bytes.NewReader(body))
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleLanding(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	s.seq++
	n := s.seq
	sessionID := fmt.Sprintf("session-%d", n)
	token := fmt.Sprintf("token-%d", n)
	s.sessions[sessionID] = token
	fixed := s.landingHTML
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{Name: SessionCookie, Value: sessionID, Path: "/"})
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	if fixed != nil {
		_, _ = io.WriteString(w, *fixed)
		return
	}
	_, _ = fmt.Fprintf(w, `<!DOCTYPE html><html><body>
<form id="login" method="post">
<input name="__RequestVerificationToken" type="hidden" value="%s" />
<input name="Email" type="email" />
</form></body></html>`, token)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	fixed := s.login
	s.mu.Unlock()
	if fixed != nil {
		writeJSON(w, fixed.status, fixed.body)
		return
	}

	if r.Header.Get("X-Requested-With") != "XMLHttpRequest" {
		writeJSON(w, http.StatusBadRequest, `{"message":"ajax only"}`)
		return
	}

	token := r.Header.Get(TokenHeader)
	sessionCookie, err := r.Cookie(SessionCookie)
	s.mu.Lock()
	issued, known := "", false
	if err == nil {
		issued, known = s.sessions[sessionCookie.Value]
	}
	s.mu.Unlock()
	if !known || token == "" || issued != token {
		writeJSON(w, http.StatusBadRequest, `{"message":"anti-forgery token mismatch"}`)
		return
	}

	var creds struct {
		Email    string `json:"Email"`
		Password string `json:"Password"`
	}
	if err = json.NewDecoder(r.Body).Decode(&creds); err != nil {
		writeJSON(w, http.StatusBadRequest, `{"message":"bad body"}`)
		return
	}
	if creds.Email != s.email || creds.Password != s.password {
		writeJSON(w, http.StatusOK, `{"IsSuccess":false,"ErrorCode":"InvalidCredentials"}`)
		return
	}

	s.mu.Lock()
	s.seq++
	auth := fmt.Sprintf("auth-%d", s.seq)
	s.authed[auth] = token
	s.mu.Unlock()

	http.SetCookie(w, &http.Cookie{Name: AuthCookie, Value: auth, Path: "/"})
	writeJSON(w, http.StatusOK, `{"IsSuccess":true,"ErrorCode":null}`)
}

func (s *Server) handleData(reply func() response) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		auth, err := r.Cookie(AuthCookie)
		s.mu.Lock()
		token, ok := "", false
		if err == nil {
			token, ok = s.authed[auth.Value]
		}
		resp := reply()
		s.mu.Unlock()

		if !ok || r.Header.Get(TokenHeader) != token {
			writeJSON(w, http.StatusUnauthorized, `{"message":"not authenticated"}`)
			return
		}

		writeJSON(w, resp.status, resp.body)
	}
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}
