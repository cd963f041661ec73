package utils

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/publicsuffix"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly and owns a
// private cookie jar, so one HTTPClient is one upstream session.
//
// Example usage:
//
//	client := utils.NewHTTPClient(utils.HTTPClientOptions{})
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// HTTPClientOptions is the transport configuration surface of a session.
// Zero values keep resty defaults: no timeout and http.DefaultTransport.
type HTTPClientOptions struct {
	BaseURL   string
	Timeout   time.Duration
	Transport http.RoundTripper
}

// NewHTTPClient creates and returns a new HTTPClient instance.
//
// Each call returns an independent client with its own configuration,
// connection pool and cookie jar, so cookies set on one client are never
// visible to another.
func NewHTTPClient(opts HTTPClientOptions) *HTTPClient {
	client := resty.New()

	// cookiejar.New only fails on a broken options value.
	jar, _ := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	client.SetCookieJar(jar)

	if opts.BaseURL != "" {
		client.SetBaseURL(strings.TrimRight(opts.BaseURL, "/"))
	}
	if opts.Timeout > 0 {
		client.SetTimeout(opts.Timeout)
	}
	if opts.Transport != nil {
		client.SetTransport(opts.Transport)
	}

	return &HTTPClient{Client: client}
}

// CookieString returns the cookies the session would send to rawURL, joined
// as "name=value; name=value". It returns an empty string when the jar holds
// nothing for that URL or rawURL cannot be parsed.
func (c *HTTPClient) CookieString(rawURL string) string {
	jar := c.GetClient().Jar
	if jar == nil {
		return ""
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}

	cookies := jar.Cookies(u)
	pairs := make([]string, 0, len(cookies))
	for _, cookie := range cookies {
		pairs = append(pairs, cookie.Name+"="+cookie.Value)
	}

	return strings.Join(pairs, "; ")
}

// ReceivedCookieString returns every cookie set by resp and by the redirect
// responses that led to it, joined as "name=value; name=value" in the order
// they were first set. A later Set-Cookie for the same name replaces the
// value; one that expires the cookie removes it. Path and domain are
// ignored, so the result is everything a fresh session holds after the
// exchange.
func ReceivedCookieString(resp *http.Response) string {
	var chain []*http.Response
	for r := resp; r != nil; {
		chain = append(chain, r)
		if r.Request == nil {
			break
		}
		r = r.Request.Response
	}

	now := time.Now()
	var names []string
	values := make(map[string]string)
	for i := len(chain) - 1; i >= 0; i-- {
		for _, cookie := range chain[i].Cookies() {
			if cookie.MaxAge < 0 || (!cookie.Expires.IsZero() && cookie.Expires.Before(now)) {
				delete(values, cookie.Name)
				continue
			}
			if !slices.Contains(names, cookie.Name) {
				names = append(names, cookie.Name)
			}
			values[cookie.Name] = cookie.Value
		}
	}

	pairs := make([]string, 0, len(values))
	for _, name := range names {
		if value, ok := values[name]; ok {
			pairs = append(pairs, name+"="+value)
		}
	}

	return strings.Join(pairs, "; ")
}
