package integration_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ricky-aufvaa/dfmea/internal/domain/fmea"
	"github.com/ricky-aufvaa/dfmea/internal/domain/project"
	"github.com/ricky-aufvaa/dfmea/internal/domain/system"
	"github.com/ricky-aufvaa/dfmea/internal/storage"
)

type testEnv struct {
	medium *storage.SQLiteMedium
	store  *storage.Store
	items  *fmea.Service
	coord  *project.Coordinator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dfmea.db")
	medium, err := storage.OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = medium.Close() })

	store, err := storage.New(context.Background(), medium, nil)
	require.NoError(t, err)
	t.Cleanup(store.StopAutoSave)

	items := fmea.NewService(store, store.Preferences().DefaultRPNThresholds, nil)
	coord := project.NewCoordinator(store, items, nil)

	return &testEnv{medium: medium, store: store, items: items, coord: coord}
}

func TestIntegration_AuthoringWorkflow(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	proj, err := env.coord.CreateProject(ctx, project.Draft{Name: "Air Brake Study"})
	require.NoError(t, err)

	tpl := system.TemplateByID("air_brake")
	require.NotNil(t, tpl)
	require.NoError(t, env.store.SaveSystem(ctx, system.FromTemplate(*tpl)))

	item := env.items.Create(ctx, fmea.CreateRequest{
		Component:   "Brake Valve",
		Function:    "Modulate air pressure",
		FailureMode: "Sticking",
		Severity:    9,
		Occurrence:  3,
		Detection:   4,
	})
	require.Equal(t, 108, item.RPN)

	require.NoError(t, env.coord.SaveCurrentProject(ctx))

	// A second stack over the same database sees the saved state.
	reopened, err := storage.New(ctx, env.medium, nil)
	require.NoError(t, err)
	t.Cleanup(reopened.StopAutoSave)

	loaded, err := reopened.LoadProject(ctx, proj.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.System)
	assert.Equal(t, "Air Brake System", loaded.System.Name)
	require.Len(t, loaded.Items, 1)
	assert.Equal(t, 108, loaded.Items[0].RPN)
}

func TestIntegration_ProjectSwitchingIsolatesWorksheets(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	first, err := env.coord.CreateProject(ctx, project.Draft{Name: "First"})
	require.NoError(t, err)
	env.items.Create(ctx, fmea.CreateRequest{Component: "A", Function: "f", FailureMode: "m"})
	require.NoError(t, env.coord.SaveCurrentProject(ctx))

	_, err = env.coord.CreateProject(ctx, project.Draft{Name: "Second"})
	require.NoError(t, err)
	assert.Empty(t, env.items.All())

	env.items.Create(ctx, fmea.CreateRequest{Component: "B", Function: "f", FailureMode: "m"})
	env.items.Create(ctx, fmea.CreateRequest{Component: "C", Function: "f", FailureMode: "m"})
	require.NoError(t, env.coord.SaveCurrentProject(ctx))

	// Switching back hydrates the first project's single item.
	loaded, err := env.coord.LoadProject(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "First", loaded.Name)
	require.Len(t, env.items.All(), 1)
	assert.Equal(t, "A", env.items.All()[0].Component)
}

func TestIntegration_ExportImportAcrossProjects(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.coord.CreateProject(ctx, project.Draft{Name: "Source"})
	require.NoError(t, err)
	env.items.Create(ctx, fmea.CreateRequest{
		Component: "Brake Valve", Function: "f", FailureMode: "m",
		Severity: 5, Occurrence: 5, Detection: 5,
	})

	exported, err := env.coord.ExportProject(ctx, "")
	require.NoError(t, err)

	imported, err := env.coord.ImportProject(ctx, exported, "")
	require.NoError(t, err)
	assert.Equal(t, "Source (Imported)", imported.Name)

	// The import is now current and its worksheet is live.
	require.Len(t, env.items.All(), 1)
	assert.Equal(t, 125, env.items.All()[0].RPN)
}

func TestIntegration_PreferenceThresholdsFlowIntoStatistics(t *testing.T) {
	ctx := context.Background()
	env := newTestEnv(t)

	_, err := env.coord.CreateProject(ctx, project.Draft{Name: "Thresholds"})
	require.NoError(t, err)
	env.items.Create(ctx, fmea.CreateRequest{
		Component: "A", Function: "f", FailureMode: "m",
		Severity: 6, Occurrence: 6, Detection: 3, // RPN 108
	})

	stats, err := env.coord.ProjectStatistics(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FMEA.MediumRiskItems)

	// Tightening the high threshold below 108 reclassifies the item
	// everywhere at once, without a project switch in between.
	require.NoError(t, env.coord.UpdatePreferences(ctx, project.PreferencesPatch{
		DefaultRPNThresholds: &fmea.RiskThresholds{Low: 20, Medium: 50, High: 100, Critical: 200},
	}))

	stats, err = env.coord.ProjectStatistics(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FMEA.HighRiskItems)
	assert.Zero(t, stats.FMEA.MediumRiskItems)

	assert.Equal(t, fmea.RiskHigh, env.items.Thresholds().Classify(108))
	itemStats := env.items.Statistics()
	assert.Equal(t, 1, itemStats.HighRiskItems)
	assert.Zero(t, itemStats.MediumRiskItems)
}
