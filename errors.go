// Package llmutils - errors.go
// Defines client-construction and request-shaping errors.

package llmutils

import "errors"

var (
	ErrMissingCredentials = errors.New("missing provider credentials")
	ErrUnknownProvider    = errors.New("unknown provider")
	ErrUnsupportedRole    = errors.New("unsupported message role")
)

var ErrNoSinkWriter = errors.New("sink has no writer")
