package project_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ricky-aufvaa/dfmea/internal/domain/fmea"
	"github.com/ricky-aufvaa/dfmea/internal/domain/project"
	"github.com/ricky-aufvaa/dfmea/internal/domain/system"
	"github.com/ricky-aufvaa/dfmea/internal/mocks"
)

func newCoordinator(t *testing.T) (*project.Coordinator, *mocks.ProjectStore, *mocks.ItemManager) {
	t.Helper()
	store := new(mocks.ProjectStore)
	items := new(mocks.ItemManager)
	return project.NewCoordinator(store, items, nil), store, items
}

func TestCreateProjectHydratesWorkingCopy(t *testing.T) {
	coord, store, items := newCoordinator(t)
	ctx := context.Background()

	created := &project.Project{
		ID:    "p1",
		Name:  "Brakes",
		Items: []fmea.Item{{ID: "i1", Component: "Brake Valve"}},
	}
	store.On("CreateProject", ctx, mock.Anything).Return(created, nil)
	store.On("Preferences").Return(project.DefaultPreferences())
	items.On("SetItems", created.Items).Return()
	items.On("SetThresholds", fmea.DefaultThresholds()).Return()

	proj, err := coord.CreateProject(ctx, project.Draft{Name: "Brakes"})
	require.NoError(t, err)
	assert.Equal(t, "p1", proj.ID)

	items.AssertExpectations(t)
}

func TestLoadProjectMarksCurrent(t *testing.T) {
	coord, store, items := newCoordinator(t)
	ctx := context.Background()

	loaded := &project.Project{ID: "p1", Name: "Brakes"}
	store.On("LoadProject", ctx, "p1").Return(loaded, nil)
	store.On("SetCurrentProject", ctx, "p1").Return(nil)
	store.On("Preferences").Return(project.DefaultPreferences())
	items.On("SetItems", mock.Anything).Return()
	items.On("SetThresholds", mock.Anything).Return()

	proj, err := coord.LoadProject(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Brakes", proj.Name)

	store.AssertCalled(t, "SetCurrentProject", ctx, "p1")
}

func TestLoadProjectNotFound(t *testing.T) {
	coord, store, _ := newCoordinator(t)
	ctx := context.Background()

	store.On("LoadProject", ctx, "missing").Return(nil, project.ErrProjectNotFound)

	_, err := coord.LoadProject(ctx, "missing")
	assert.ErrorIs(t, err, project.ErrProjectNotFound)
}

func TestSaveCurrentProjectAssemblesLiveState(t *testing.T) {
	coord, store, items := newCoordinator(t)
	ctx := context.Background()

	cur := &project.Project{ID: "p1", Name: "Brakes"}
	sys := &system.System{Name: "Air Brake"}
	live := []fmea.Item{{ID: "i1", Component: "Brake Valve"}}

	store.On("CurrentProject").Return(cur)
	store.On("SystemData").Return(sys)
	items.On("All").Return(live)
	store.On("SaveProject", ctx, mock.MatchedBy(func(p *project.Project) bool {
		return p.ID == "p1" && p.System == sys && len(p.Items) == 1
	})).Return(nil)

	require.NoError(t, coord.SaveCurrentProject(ctx))
	store.AssertExpectations(t)
}

func TestSaveCurrentProjectWithoutCurrent(t *testing.T) {
	coord, store, _ := newCoordinator(t)

	store.On("CurrentProject").Return(nil)

	err := coord.SaveCurrentProject(context.Background())
	assert.ErrorIs(t, err, project.ErrNoCurrentProject)
}

func TestDuplicateProjectDefaultName(t *testing.T) {
	coord, store, items := newCoordinator(t)
	ctx := context.Background()

	src := &project.Project{
		ID:       "p1",
		Name:     "Brakes",
		System:   &system.System{Name: "Air Brake"},
		Items:    []fmea.Item{{ID: "i1"}},
		Settings: project.DefaultSettings(),
	}
	store.On("LoadProject", ctx, "p1").Return(src, nil)
	store.On("CreateProject", ctx, mock.MatchedBy(func(d project.Draft) bool {
		return d.Name == "Brakes (Copy)" && d.System != src.System && len(d.Items) == 1
	})).Return(&project.Project{ID: "p2", Name: "Brakes (Copy)"}, nil)
	store.On("Preferences").Return(project.DefaultPreferences())
	items.On("SetItems", mock.Anything).Return()
	items.On("SetThresholds", mock.Anything).Return()

	clone, err := coord.DuplicateProject(ctx, "p1", "")
	require.NoError(t, err)
	assert.Equal(t, "p2", clone.ID)
}

func TestExportProjectFlushesCurrent(t *testing.T) {
	coord, store, items := newCoordinator(t)
	ctx := context.Background()

	cur := &project.Project{ID: "p1", Name: "Brakes"}
	store.On("CurrentProject").Return(cur)
	store.On("SystemData").Return(nil)
	items.On("All").Return([]fmea.Item{})
	store.On("SaveProject", ctx, mock.Anything).Return(nil)
	store.On("ExportProject", ctx, "p1").Return(`{"name":"Brakes"}`, nil)

	data, err := coord.ExportProject(ctx, "")
	require.NoError(t, err)
	assert.Contains(t, data, "Brakes")
	store.AssertCalled(t, "SaveProject", ctx, mock.Anything)
}

func TestImportProjectDefaultNaming(t *testing.T) {
	coord, store, items := newCoordinator(t)
	ctx := context.Background()

	store.On("CreateProject", ctx, mock.MatchedBy(func(d project.Draft) bool {
		return d.Name == "Brakes (Imported)"
	})).Return(&project.Project{ID: "p2", Name: "Brakes (Imported)"}, nil)
	store.On("Preferences").Return(project.DefaultPreferences())
	items.On("SetItems", mock.Anything).Return()
	items.On("SetThresholds", mock.Anything).Return()

	proj, err := coord.ImportProject(ctx, `{"id":"old","name":"Brakes"}`, "")
	require.NoError(t, err)
	assert.Equal(t, "p2", proj.ID)
}

func TestImportProjectRejectsBadPayloads(t *testing.T) {
	coord, _, _ := newCoordinator(t)
	ctx := context.Background()

	_, err := coord.ImportProject(ctx, "{not json", "")
	assert.ErrorIs(t, err, project.ErrInvalidInput)

	_, err = coord.ImportProject(ctx, `{"description":"anonymous"}`, "")
	assert.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestProjectStatisticsUsesLiveItemsForCurrent(t *testing.T) {
	coord, store, items := newCoordinator(t)
	ctx := context.Background()

	cur := &project.Project{
		ID:     "p1",
		Name:   "Brakes",
		System: &system.System{Name: "Air Brake", Category: system.CategorySafetyCritical},
	}
	live := []fmea.Item{{Component: "Brake Valve", Severity: 9, RPN: 108}}

	store.On("CurrentProject").Return(cur)
	store.On("Preferences").Return(project.DefaultPreferences())
	items.On("All").Return(live)

	stats, err := coord.ProjectStatistics(ctx, "")
	require.NoError(t, err)
	assert.Equal(t, "Brakes", stats.Project.Name)
	require.NotNil(t, stats.System)
	assert.Equal(t, "Air Brake", stats.System.Name)
	assert.Equal(t, 1, stats.FMEA.TotalItems)
	assert.Equal(t, 1, stats.FMEA.MediumRiskItems)
}

func TestProjectStatisticsWithoutAnyProject(t *testing.T) {
	coord, store, _ := newCoordinator(t)

	store.On("CurrentProject").Return(nil)

	_, err := coord.ProjectStatistics(context.Background(), "")
	assert.ErrorIs(t, err, project.ErrNoCurrentProject)
}

func TestSearchProjects(t *testing.T) {
	coord, store, _ := newCoordinator(t)
	ctx := context.Background()

	store.On("AllProjects", ctx).Return([]project.Project{
		{ID: "p1", Name: "Air Brake Study"},
		{ID: "p2", Name: "Steering", Description: "column and brake pedal"},
		{ID: "p3", Name: "Engine"},
	}, nil)

	matches, err := coord.SearchProjects(ctx, "brake")
	require.NoError(t, err)
	assert.Len(t, matches, 2)
}

func TestUpdateProjectMetadataRejectsEmptyName(t *testing.T) {
	coord, store, _ := newCoordinator(t)
	ctx := context.Background()

	store.On("LoadProject", ctx, "p1").Return(&project.Project{ID: "p1", Name: "Brakes"}, nil)

	empty := "  "
	_, err := coord.UpdateProjectMetadata(ctx, "p1", project.MetadataPatch{Name: &empty})
	assert.ErrorIs(t, err, project.ErrInvalidInput)
}

func TestUpdatePreferencesRebandsItems(t *testing.T) {
	coord, store, items := newCoordinator(t)
	ctx := context.Background()

	tight := fmea.RiskThresholds{Low: 20, Medium: 50, High: 100, Critical: 200}
	patch := project.PreferencesPatch{DefaultRPNThresholds: &tight}
	store.On("UpdatePreferences", ctx, patch).Return(nil)
	items.On("SetThresholds", tight).Return()

	require.NoError(t, coord.UpdatePreferences(ctx, patch))
	store.AssertExpectations(t)
	items.AssertExpectations(t)
}

func TestUpdatePreferencesWithoutThresholds(t *testing.T) {
	coord, store, items := newCoordinator(t)
	ctx := context.Background()

	dark := "dark"
	patch := project.PreferencesPatch{Theme: &dark}
	store.On("UpdatePreferences", ctx, patch).Return(nil)

	require.NoError(t, coord.UpdatePreferences(ctx, patch))
	store.AssertExpectations(t)
	items.AssertNotCalled(t, "SetThresholds", mock.Anything)
}

func TestClearAllProjects(t *testing.T) {
	coord, store, items := newCoordinator(t)
	ctx := context.Background()

	store.On("AllProjects", ctx).Return([]project.Project{{ID: "p1"}, {ID: "p2"}}, nil)
	store.On("DeleteProject", ctx, "p1").Return(nil)
	store.On("DeleteProject", ctx, "p2").Return(nil)
	store.On("SetCurrentProject", ctx, "").Return(nil)
	items.On("SetItems", []fmea.Item(nil)).Return()

	require.NoError(t, coord.ClearAllProjects(ctx))
	store.AssertExpectations(t)
	items.AssertExpectations(t)
}
