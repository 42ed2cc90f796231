package mcp

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricky-aufvaa/dfmea/internal/domain/fmea"
	"github.com/ricky-aufvaa/dfmea/internal/domain/project"
	"github.com/ricky-aufvaa/dfmea/internal/storage"
)

func newWiredServices(t *testing.T) Services {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	store, err := storage.New(context.Background(), storage.NewMemoryMedium(), logger)
	require.NoError(t, err)
	t.Cleanup(store.StopAutoSave)

	items := fmea.NewService(store, store.Preferences().DefaultRPNThresholds, logger)
	coord := project.NewCoordinator(store, items, logger)

	return Services{Projects: coord, Items: items, Data: store}
}

func TestNewServerRegistersTools(t *testing.T) {
	svcs := newWiredServices(t)
	server := NewServer(Config{Services: svcs, Logger: slog.New(slog.NewTextHandler(io.Discard, nil))})
	assert.NotNil(t, server)
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code string
	}{
		{"project not found", project.ErrProjectNotFound, "PROJECT_NOT_FOUND"},
		{"no current project", project.ErrNoCurrentProject, "NO_CURRENT_PROJECT"},
		{"invalid project input", project.ErrInvalidInput, "INVALID_INPUT"},
		{"item not found", fmea.ErrItemNotFound, "ITEM_NOT_FOUND"},
		{"invalid item input", fmea.ErrInvalidInput, "INVALID_INPUT"},
		{"invalid import", storage.ErrInvalidImport, "INVALID_IMPORT"},
		{"storage unavailable", storage.ErrUnavailable, "STORAGE_UNAVAILABLE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			apiErr := MapError(tt.err)
			require.NotNil(t, apiErr)
			assert.Equal(t, tt.code, apiErr.Code)
			assert.NotEmpty(t, apiErr.RecoveryHint)
		})
	}

	assert.Nil(t, MapError(nil))
	assert.Nil(t, MapError(errors.New("unmapped")))
}

func TestMapErrorWrappedErrors(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), project.ErrProjectNotFound)
	apiErr := MapError(wrapped)
	require.NotNil(t, apiErr)
	assert.Equal(t, "PROJECT_NOT_FOUND", apiErr.Code)
}
