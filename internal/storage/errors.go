package storage

import "errors"

var (
	// ErrUnavailable indicates the storage medium rejected the operation
	// (disabled, read-only, or over quota). Callers treat it as a soft
	// failure; it never carries a raw driver error across the package
	// boundary unexamined.
	ErrUnavailable = errors.New("storage medium unavailable")

	// ErrInvalidImport indicates an import payload that failed parsing or
	// validation. The message is meant for display.
	ErrInvalidImport = errors.New("invalid import data")
)
