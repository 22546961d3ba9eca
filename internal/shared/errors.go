// Package shared defines sentinel errors used across catkeeper layers.
// Callers should use errors.Is to match these values.
package shared

import "errors"

var (

	// repository-level errors
	ErrNotFound = errors.New("not found")
	ErrDatabase = errors.New("database error")

	// remote-source errors
	ErrNetwork = errors.New("network error")
	ErrServer  = errors.New("server error")

	// catch-all for genuinely unexpected failures
	ErrUnknown = errors.New("unknown error")
)
