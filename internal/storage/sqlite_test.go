package storage

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricky-aufvaa/dfmea/internal/domain/project"
)

func TestSQLiteMediumRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dfmea.db")
	m, err := OpenSQLite(path)
	require.NoError(t, err)
	defer m.Close()

	ctx := context.Background()
	assert.True(t, m.Available())

	_, ok, err := m.Get(ctx, "dfmea_projects")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, m.Set(ctx, "dfmea_projects", `[]`))
	val, ok, err := m.Get(ctx, "dfmea_projects")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[]`, val)

	// Set overwrites the previous value.
	require.NoError(t, m.Set(ctx, "dfmea_projects", `[{"id":"p1"}]`))
	val, _, err = m.Get(ctx, "dfmea_projects")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"p1"}]`, val)

	require.NoError(t, m.Delete(ctx, "dfmea_projects"))
	_, ok, err = m.Get(ctx, "dfmea_projects")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteMediumPersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dfmea.db")
	ctx := context.Background()

	m, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, m.Set(ctx, "dfmea_preferences", `{"theme":"dark"}`))
	require.NoError(t, m.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	val, ok, err := reopened.Get(ctx, "dfmea_preferences")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"theme":"dark"}`, val)
}

func TestStoreOverSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dfmea.db")
	m, err := OpenSQLite(path)
	require.NoError(t, err)
	defer m.Close()

	s, err := New(context.Background(), m, nil)
	require.NoError(t, err)
	t.Cleanup(s.StopAutoSave)

	proj, err := s.CreateProject(context.Background(), project.Draft{Name: "Brakes"})
	require.NoError(t, err)

	loaded, err := s.LoadProject(context.Background(), proj.ID)
	require.NoError(t, err)
	assert.Equal(t, "Brakes", loaded.Name)
}
