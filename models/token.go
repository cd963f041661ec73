package models

// Landing is the result of the token-acquisition step of a login cycle.
//
// Token is the anti-forgery value found in the landing page markup and
// Cookies is the cookie snapshot of the session that fetched it, already
// joined as "name=value; name=value". Both belong to one session instance
// and are never reused in a later cycle.
type Landing struct {
	Token   string
	Cookies string
}
