// Package mocks provides testify mocks for the service-layer interfaces.
package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ricky-aufvaa/dfmea/internal/domain/fmea"
	"github.com/ricky-aufvaa/dfmea/internal/domain/project"
	"github.com/ricky-aufvaa/dfmea/internal/domain/system"
)

// ItemStore mocks fmea.ItemStore.
type ItemStore struct {
	mock.Mock
}

func (m *ItemStore) SaveItems(ctx context.Context, items []fmea.Item) error {
	args := m.Called(ctx, items)
	return args.Error(0)
}

func (m *ItemStore) LoadItems(ctx context.Context) ([]fmea.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]fmea.Item), args.Error(1)
}

func (m *ItemStore) StartAutoSave(fn func()) {
	m.Called(fn)
}

func (m *ItemStore) StopAutoSave() {
	m.Called()
}

// ProjectStore mocks project.Store.
type ProjectStore struct {
	mock.Mock
}

func (m *ProjectStore) CreateProject(ctx context.Context, draft project.Draft) (*project.Project, error) {
	args := m.Called(ctx, draft)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *ProjectStore) SaveProject(ctx context.Context, proj *project.Project) error {
	args := m.Called(ctx, proj)
	return args.Error(0)
}

func (m *ProjectStore) LoadProject(ctx context.Context, id string) (*project.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*project.Project), args.Error(1)
}

func (m *ProjectStore) DeleteProject(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProjectStore) SetCurrentProject(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *ProjectStore) CurrentProject() *project.Project {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*project.Project)
}

func (m *ProjectStore) AllProjects(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]project.Project), args.Error(1)
}

func (m *ProjectStore) RecentProjects() []project.Summary {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]project.Summary)
}

func (m *ProjectStore) Preferences() project.Preferences {
	args := m.Called()
	return args.Get(0).(project.Preferences)
}

func (m *ProjectStore) UpdatePreferences(ctx context.Context, patch project.PreferencesPatch) error {
	args := m.Called(ctx, patch)
	return args.Error(0)
}

func (m *ProjectStore) SaveSystem(ctx context.Context, sys *system.System) error {
	args := m.Called(ctx, sys)
	return args.Error(0)
}

func (m *ProjectStore) SystemData() *system.System {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*system.System)
}

func (m *ProjectStore) ExportProject(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

func (m *ProjectStore) StartAutoSave(fn func()) {
	m.Called(fn)
}

func (m *ProjectStore) StopAutoSave() {
	m.Called()
}

// ItemManager mocks project.ItemManager.
type ItemManager struct {
	mock.Mock
}

func (m *ItemManager) SetItems(items []fmea.Item) {
	m.Called(items)
}

func (m *ItemManager) SetThresholds(t fmea.RiskThresholds) {
	m.Called(t)
}

func (m *ItemManager) All() []fmea.Item {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]fmea.Item)
}

func (m *ItemManager) Flush(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
