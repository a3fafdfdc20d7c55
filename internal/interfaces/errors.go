// Package interfaces defines service contracts for Folio
package interfaces

import "errors"

var (
	// ErrNotSupported reports that the server does not implement an
	// optional endpoint, such as the consolidated analysis payload.
	ErrNotSupported = errors.New("endpoint not supported by server")

	// ErrSuperseded reports that a request was abandoned because a
	// newer request for the same resource replaced it.
	ErrSuperseded = errors.New("request superseded by newer request")
)
