// Package utils provides general-purpose helpers used across the client:
// the per-session HTTP client with its own cookie jar and the identifier
// generator used for log correlation.
package utils
