package mcp

import (
	"errors"
	"fmt"

	"github.com/ricky-aufvaa/dfmea/internal/domain/fmea"
	"github.com/ricky-aufvaa/dfmea/internal/domain/project"
	"github.com/ricky-aufvaa/dfmea/internal/storage"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Unknown errors map to
// nil so callers can pass them through untouched.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, project.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "Check the project ID or list projects"}
	case errors.Is(err, project.ErrNoCurrentProject):
		return &APIError{Code: "NO_CURRENT_PROJECT", Message: "no project is currently open", RecoveryHint: "Create or load a project first"}
	case errors.Is(err, project.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), RecoveryHint: "Check the request fields"}
	case errors.Is(err, fmea.ErrItemNotFound):
		return &APIError{Code: "ITEM_NOT_FOUND", Message: "FMEA item not found", RecoveryHint: "Check the item ID or list items"}
	case errors.Is(err, fmea.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error(), RecoveryHint: "Check the payload format"}
	case errors.Is(err, storage.ErrInvalidImport):
		return &APIError{Code: "INVALID_IMPORT", Message: err.Error(), RecoveryHint: "Check the exported document"}
	case errors.Is(err, storage.ErrUnavailable):
		return &APIError{Code: "STORAGE_UNAVAILABLE", Message: "storage is unavailable", RecoveryHint: "Check the database path and permissions"}
	default:
		return nil
	}
}

// mapErr converts a domain error into its MCP form, passing unknown errors
// through unchanged.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
