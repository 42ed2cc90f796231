package project

import (
	"context"

	"github.com/ricky-aufvaa/dfmea/internal/domain/fmea"
	"github.com/ricky-aufvaa/dfmea/internal/domain/system"
)

// Store provides durable persistence for projects and owns the
// current-project pointer, preferences and the auto-save timer.
type Store interface {
	CreateProject(ctx context.Context, draft Draft) (*Project, error)
	SaveProject(ctx context.Context, proj *Project) error
	LoadProject(ctx context.Context, id string) (*Project, error)
	DeleteProject(ctx context.Context, id string) error
	SetCurrentProject(ctx context.Context, id string) error
	CurrentProject() *Project
	AllProjects(ctx context.Context) ([]Project, error)
	RecentProjects() []Summary
	Preferences() Preferences
	UpdatePreferences(ctx context.Context, patch PreferencesPatch) error
	SaveSystem(ctx context.Context, sys *system.System) error
	SystemData() *system.System
	ExportProject(ctx context.Context, id string) (string, error)
	StartAutoSave(fn func())
	StopAutoSave()
}

// ItemManager owns the working copy of the active project's FMEA items.
type ItemManager interface {
	SetItems(items []fmea.Item)
	SetThresholds(t fmea.RiskThresholds)
	All() []fmea.Item
	Flush(ctx context.Context) error
}
