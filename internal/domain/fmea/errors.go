package fmea

import "errors"

var (
	// ErrItemNotFound indicates the item id doesn't exist in the working copy.
	ErrItemNotFound = errors.New("fmea item not found")
	// ErrInvalidInput indicates a malformed import payload.
	ErrInvalidInput = errors.New("invalid fmea input")
)
