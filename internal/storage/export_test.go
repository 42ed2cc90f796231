package storage

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricky-aufvaa/dfmea/internal/domain/fmea"
	"github.com/ricky-aufvaa/dfmea/internal/domain/project"
)

func TestExportImportRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	src, err := s.CreateProject(ctx, project.Draft{
		Name:        "Brakes",
		Description: "air brake study",
		Items:       []fmea.Item{{ID: "i1", Component: "Brake Valve", FailureMode: "Sticking", RPN: 108}},
	})
	require.NoError(t, err)

	exported, err := s.ExportProject(ctx, src.ID)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(exported), &envelope))
	assert.Equal(t, "Brakes", envelope["name"])
	assert.Equal(t, fmea.ExportVersion, envelope["version"])
	assert.Contains(t, envelope, "exportedAt")

	imported, err := s.ImportProject(ctx, exported)
	require.NoError(t, err)

	assert.NotEqual(t, src.ID, imported.ID)
	assert.Equal(t, src.Name, imported.Name)
	require.NotNil(t, imported.ImportedAt)
	require.Len(t, imported.Items, 1)
	assert.Equal(t, "Brake Valve", imported.Items[0].Component)

	// The import becomes the current project.
	assert.Equal(t, imported.ID, s.CurrentProject().ID)
}

func TestExportProjectCurrent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.ExportProject(ctx, "")
	assert.ErrorIs(t, err, project.ErrNoCurrentProject)

	_, err = s.CreateProject(ctx, project.Draft{Name: "Brakes"})
	require.NoError(t, err)

	exported, err := s.ExportProject(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, exported, `"Brakes"`)
}

func TestImportProjectRejectsBadPayloads(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.ImportProject(ctx, "{not json")
	assert.ErrorIs(t, err, ErrInvalidImport)

	_, err = s.ImportProject(ctx, `{"description":"no name"}`)
	assert.ErrorIs(t, err, ErrInvalidImport)
}

func TestImportProjectDefaultsSettings(t *testing.T) {
	s := newTestStore(t)

	imported, err := s.ImportProject(context.Background(), `{"name":"Bare"}`)
	require.NoError(t, err)
	assert.Equal(t, project.DefaultSettings(), imported.Settings)
	assert.NotNil(t, imported.Items)
}

func TestExportAllData(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateProject(ctx, project.Draft{Name: "A"})
	require.NoError(t, err)
	_, err = s.CreateProject(ctx, project.Draft{Name: "B"})
	require.NoError(t, err)

	backup, err := s.ExportAllData(ctx)
	require.NoError(t, err)

	var parsed backupExport
	require.NoError(t, json.Unmarshal([]byte(backup), &parsed))
	assert.Len(t, parsed.Projects, 2)
	assert.Equal(t, fmea.ExportVersion, parsed.Version)
	assert.Equal(t, s.Preferences().Theme, parsed.Preferences.Theme)
}

func TestClearAllData(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateProject(ctx, project.Draft{Name: "Brakes"})
	require.NoError(t, err)
	theme := "dark"
	require.NoError(t, s.UpdatePreferences(ctx, project.PreferencesPatch{Theme: &theme}))

	require.NoError(t, s.ClearAllData(ctx))

	all, err := s.AllProjects(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
	assert.Nil(t, s.CurrentProject())
	assert.Equal(t, project.DefaultPreferences(), s.Preferences())
}

func TestStorageStats(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	stats, err := s.StorageStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, stats.ProjectCount)
	assert.Equal(t, "None", stats.CurrentProject)
	assert.True(t, stats.StorageAvailable)

	_, err = s.CreateProject(ctx, project.Draft{Name: "Brakes"})
	require.NoError(t, err)

	stats, err = s.StorageStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.ProjectCount)
	assert.Equal(t, "Brakes", stats.CurrentProject)
	assert.Positive(t, stats.TotalSize)
	assert.NotEmpty(t, stats.TotalSizeFormatted)
}

func TestFormatBytes(t *testing.T) {
	assert.Equal(t, "0 Bytes", formatBytes(0))
	assert.Equal(t, "512 Bytes", formatBytes(512))
	assert.Equal(t, "1 KB", formatBytes(1024))
	assert.Equal(t, "1.5 KB", formatBytes(1536))
	assert.Equal(t, "1 MB", formatBytes(1024*1024))
	assert.Equal(t, "2.25 GB", formatBytes(2415919104))
}
