package models

import (
	"strings"

	"github.com/rs/zerolog"
)

// Credentials holds the login pair used for every authentication cycle.
// The JSON form is the body expected by the login endpoint.
type Credentials struct {
	// Email is the account login.
	Email string `json:"Email"`

	// Password is sent as-is in the login body.
	// It must never reach logs; see MarshalZerologObject.
	Password string `json:"Password"`
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler so credentials
// can be attached to log events without leaking the password.
func (c Credentials) MarshalZerologObject(e *zerolog.Event) {
	e.Str("email", c.Email).Bool("password_set", c.Password != "")
}

// IsComplete reports whether both email and password are present. A blank
// email counts as missing.
func (c Credentials) IsComplete() bool {
	return strings.TrimSpace(c.Email) != "" && c.Password != ""
}
