package project

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ricky-aufvaa/dfmea/internal/domain/fmea"
)

// Coordinator orchestrates the store and the item manager under a single
// active project.
type Coordinator struct {
	store  Store
	items  ItemManager
	logger *slog.Logger
}

// NewCoordinator creates a project coordinator.
func NewCoordinator(store Store, items ItemManager, logger *slog.Logger) *Coordinator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Coordinator{store: store, items: items, logger: logger}
}

// CreateProject creates a project through the store and hydrates the item
// manager's working copy from it.
func (c *Coordinator) CreateProject(ctx context.Context, draft Draft) (*Project, error) {
	proj, err := c.store.CreateProject(ctx, draft)
	if err != nil {
		return nil, fmt.Errorf("creating project: %w", err)
	}
	c.hydrate(proj)
	return proj, nil
}

// LoadProject loads a project, marks it current and hydrates the working
// copy from its persisted item list.
func (c *Coordinator) LoadProject(ctx context.Context, id string) (*Project, error) {
	proj, err := c.store.LoadProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := c.store.SetCurrentProject(ctx, id); err != nil {
		return nil, fmt.Errorf("marking project current: %w", err)
	}
	c.hydrate(proj)
	return proj, nil
}

// SaveCurrentProject reassembles the current project from the live system
// slot and the working item copy, then writes it back.
func (c *Coordinator) SaveCurrentProject(ctx context.Context) error {
	cur := c.store.CurrentProject()
	if cur == nil {
		return ErrNoCurrentProject
	}

	cur.System = c.store.SystemData()
	cur.Items = c.items.All()
	cur.UpdatedAt = time.Now()

	if err := c.store.SaveProject(ctx, cur); err != nil {
		return fmt.Errorf("saving current project: %w", err)
	}
	return nil
}

// CurrentProject returns the active project, or nil.
func (c *Coordinator) CurrentProject() *Project {
	return c.store.CurrentProject()
}

// AllProjects returns every stored project.
func (c *Coordinator) AllProjects(ctx context.Context) ([]Project, error) {
	return c.store.AllProjects(ctx)
}

// DeleteProject removes a project. Deleting the current project clears the
// current pointer; deleting an unknown id is a no-op.
func (c *Coordinator) DeleteProject(ctx context.Context, id string) error {
	return c.store.DeleteProject(ctx, id)
}

// DuplicateProject clones a project's contents under a fresh identity. The
// clone goes through the regular creation path, so it becomes current and
// enters the recency list.
func (c *Coordinator) DuplicateProject(ctx context.Context, id, newName string) (*Project, error) {
	src, err := c.store.LoadProject(ctx, id)
	if err != nil {
		return nil, err
	}

	name := newName
	if name == "" {
		name = src.Name + " (Copy)"
	}
	settings := src.Settings
	return c.CreateProject(ctx, Draft{
		Name:        name,
		Description: src.Description,
		System:      src.System.Clone(),
		Items:       append([]fmea.Item(nil), src.Items...),
		Settings:    &settings,
	})
}

// ExportProject serializes a project. Exporting the current project (or
// passing an empty id) flushes the live working copy first so the export
// reflects unsaved edits.
func (c *Coordinator) ExportProject(ctx context.Context, id string) (string, error) {
	cur := c.store.CurrentProject()
	if id == "" || (cur != nil && cur.ID == id) {
		if cur == nil {
			return "", ErrNoCurrentProject
		}
		if err := c.SaveCurrentProject(ctx); err != nil {
			return "", err
		}
		id = cur.ID
	}
	return c.store.ExportProject(ctx, id)
}

// ImportProject parses exported project JSON and creates it as a new
// project named "<name> (Imported)" unless newName overrides it. The
// source id is never reused.
func (c *Coordinator) ImportProject(ctx context.Context, data string, newName string) (*Project, error) {
	var proj Project
	if err := json.Unmarshal([]byte(data), &proj); err != nil {
		return nil, fmt.Errorf("%w: unparsable project data", ErrInvalidInput)
	}
	if strings.TrimSpace(proj.Name) == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidInput)
	}

	name := newName
	if name == "" {
		name = proj.Name + " (Imported)"
	}
	settings := proj.Settings
	return c.CreateProject(ctx, Draft{
		Name:        name,
		Description: proj.Description,
		System:      proj.System,
		Items:       proj.Items,
		Settings:    &settings,
	})
}

// ProjectStatistics reports metadata, system summary and RPN statistics for
// a project. An empty id targets the current project, whose live working
// copy is used instead of the persisted snapshot.
func (c *Coordinator) ProjectStatistics(ctx context.Context, id string) (*Statistics, error) {
	cur := c.store.CurrentProject()

	var proj *Project
	var items []fmea.Item
	switch {
	case id == "" && cur == nil:
		return nil, ErrNoCurrentProject
	case id == "" || (cur != nil && cur.ID == id):
		proj = cur
		items = c.items.All()
	default:
		loaded, err := c.store.LoadProject(ctx, id)
		if err != nil {
			return nil, err
		}
		proj = loaded
		items = loaded.Items
	}

	stats := &Statistics{
		Project: ProjectInfo{
			Name:        proj.Name,
			Description: proj.Description,
			CreatedAt:   proj.CreatedAt,
			UpdatedAt:   proj.UpdatedAt,
		},
		FMEA: fmea.ComputeStatistics(items, c.store.Preferences().DefaultRPNThresholds),
	}
	if proj.System != nil {
		stats.System = &SystemInfo{
			Name:           proj.System.Name,
			Category:       proj.System.Category,
			ComponentCount: proj.System.ComponentCount(),
		}
	}
	return stats, nil
}

// RecentProjects returns the recency list, most recently loaded first.
func (c *Coordinator) RecentProjects() []Summary {
	return c.store.RecentProjects()
}

// SearchProjects matches name and description case-insensitively.
func (c *Coordinator) SearchProjects(ctx context.Context, query string) ([]Project, error) {
	all, err := c.store.AllProjects(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(query)
	matches := []Project{}
	for _, proj := range all {
		if strings.Contains(strings.ToLower(proj.Name), term) ||
			strings.Contains(strings.ToLower(proj.Description), term) {
			matches = append(matches, proj)
		}
	}
	return matches, nil
}

// UpdateProjectMetadata patches a project's name and description.
func (c *Coordinator) UpdateProjectMetadata(ctx context.Context, id string, patch MetadataPatch) (*Project, error) {
	proj, err := c.store.LoadProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Name != nil {
		if strings.TrimSpace(*patch.Name) == "" {
			return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidInput)
		}
		proj.Name = *patch.Name
	}
	if patch.Description != nil {
		proj.Description = *patch.Description
	}

	if err := c.store.SaveProject(ctx, proj); err != nil {
		return nil, fmt.Errorf("saving project metadata: %w", err)
	}
	return proj, nil
}

// ClearAllProjects deletes every project, clears the current pointer and
// empties the working copy.
func (c *Coordinator) ClearAllProjects(ctx context.Context) error {
	all, err := c.store.AllProjects(ctx)
	if err != nil {
		return err
	}
	for _, proj := range all {
		if err := c.store.DeleteProject(ctx, proj.ID); err != nil {
			return fmt.Errorf("deleting project %s: %w", proj.ID, err)
		}
	}
	if err := c.store.SetCurrentProject(ctx, ""); err != nil {
		return err
	}
	c.items.SetItems(nil)
	return nil
}

// UpdatePreferences merge-patches the preference record through the store
// and keeps the item manager's threshold table in step, so statistics and
// risk levels reband immediately instead of on the next project switch.
func (c *Coordinator) UpdatePreferences(ctx context.Context, patch PreferencesPatch) error {
	if err := c.store.UpdatePreferences(ctx, patch); err != nil {
		return err
	}
	if patch.DefaultRPNThresholds != nil {
		c.items.SetThresholds(*patch.DefaultRPNThresholds)
	}
	return nil
}

// InitializeAutoSave installs the periodic current-project save if the
// preference enables it.
func (c *Coordinator) InitializeAutoSave() {
	prefs := c.store.Preferences()
	if !prefs.AutoSave {
		return
	}
	c.store.StartAutoSave(func() {
		c.AutoSaveCurrent(context.Background())
	})
}

// AutoSaveCurrent persists the current project if one exists. Failures are
// logged, not propagated; the next tick retries.
func (c *Coordinator) AutoSaveCurrent(ctx context.Context) {
	if c.store.CurrentProject() == nil {
		return
	}
	if err := c.SaveCurrentProject(ctx); err != nil {
		c.logger.Warn("auto-save failed", "error", err)
	}
}

// hydrate loads a project's contents into the item manager and aligns the
// manager's risk banding with preferences.
func (c *Coordinator) hydrate(proj *Project) {
	c.items.SetItems(proj.Items)
	c.items.SetThresholds(c.store.Preferences().DefaultRPNThresholds)
}
