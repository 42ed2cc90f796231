package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ricky-aufvaa/dfmea/internal/domain/fmea"
	"github.com/ricky-aufvaa/dfmea/internal/domain/project"
	"github.com/ricky-aufvaa/dfmea/internal/domain/system"
)

// Persisted state lives under four stable keys plus a separate error log.
const (
	keyProjects    = "dfmea_projects"
	keyCurrent     = "dfmea_current_project"
	keyPreferences = "dfmea_preferences"
	keyAppState    = "dfmea_app_state" // reserved
	keyErrorLogs   = "dfmea_error_logs"
)

const defaultProjectName = "Untitled Project"

// Store is the persistence service: durable key-value persistence of the
// project collection, the single source of truth for which project is
// current, preferences, and the auto-save timer.
type Store struct {
	mu     sync.Mutex
	medium Medium
	logger *slog.Logger

	current *project.Project
	prefs   project.Preferences

	saver autoSaver
}

// New creates a store over the medium, seeding defaults on first run and
// loading the current project if a pointer was persisted.
func New(ctx context.Context, medium Medium, logger *slog.Logger) (*Store, error) {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{
		medium: medium,
		logger: logger,
		prefs:  project.DefaultPreferences(),
	}
	if err := s.initialize(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) initialize(ctx context.Context) error {
	if !s.medium.Available() {
		s.logger.Warn("storage medium unavailable, persistence disabled")
		return nil
	}

	if _, ok, _ := s.medium.Get(ctx, keyProjects); !ok {
		if err := s.put(ctx, keyProjects, []project.Project{}); err != nil {
			return fmt.Errorf("seeding project collection: %w", err)
		}
	}

	var prefs project.Preferences
	if ok := s.get(ctx, keyPreferences, &prefs); ok {
		s.prefs = prefs
	} else if err := s.put(ctx, keyPreferences, s.prefs); err != nil {
		return fmt.Errorf("seeding preferences: %w", err)
	}

	if _, ok, _ := s.medium.Get(ctx, keyAppState); !ok {
		if err := s.put(ctx, keyAppState, map[string]any{}); err != nil {
			return fmt.Errorf("seeding app state: %w", err)
		}
	}

	var currentID string
	if s.get(ctx, keyCurrent, &currentID) && currentID != "" {
		if proj, err := s.findProject(ctx, currentID); err == nil {
			s.current = proj
		}
	}
	return nil
}

// Available reports whether the storage medium accepts writes.
func (s *Store) Available() bool { return s.medium.Available() }

// put serializes a value under a key. Medium faults surface as
// ErrUnavailable so no raw driver error crosses the store boundary.
func (s *Store) put(ctx context.Context, key string, v any) error {
	if !s.medium.Available() {
		return ErrUnavailable
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializing %s: %w", key, err)
	}
	if err := s.medium.Set(ctx, key, string(data)); err != nil {
		s.logger.Error("storage write failed", "key", key, "error", err)
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// get deserializes a key into out, reporting whether a usable value was
// found. Missing keys and corrupt payloads both leave out untouched.
func (s *Store) get(ctx context.Context, key string, out any) bool {
	if !s.medium.Available() {
		return false
	}
	raw, ok, err := s.medium.Get(ctx, key)
	if err != nil {
		s.logger.Error("storage read failed", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		s.logger.Error("corrupt storage payload", "key", key, "error", err)
		return false
	}
	return true
}

// CreateProject merges a draft over the default project template, persists
// it, makes it current and records it in the recency list. The returned
// project carries a fresh id and timestamps.
func (s *Store) CreateProject(ctx context.Context, draft project.Draft) (*project.Project, error) {
	now := time.Now()

	name := strings.TrimSpace(draft.Name)
	if name == "" {
		name = defaultProjectName
	}
	settings := project.DefaultSettings()
	if draft.Settings != nil {
		settings = *draft.Settings
	}
	items := draft.Items
	if items == nil {
		items = []fmea.Item{}
	}

	proj := &project.Project{
		ID:          uuid.NewString(),
		Name:        name,
		Description: draft.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
		System:      draft.System,
		Items:       items,
		Settings:    settings,
	}

	if err := s.SaveProject(ctx, proj); err != nil {
		return nil, err
	}
	if err := s.SetCurrentProject(ctx, proj.ID); err != nil {
		return nil, err
	}
	s.addRecent(ctx, proj)
	return proj, nil
}

// SaveProject upserts a project by id and refreshes its updatedAt. Saving
// the current project also refreshes the in-memory current cache.
func (s *Store) SaveProject(ctx context.Context, proj *project.Project) error {
	if proj == nil || proj.ID == "" {
		return fmt.Errorf("%w: project id required", project.ErrInvalidInput)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.loadProjects(ctx)
	if err != nil {
		return err
	}

	proj.UpdatedAt = time.Now()

	replaced := false
	for i := range projects {
		if projects[i].ID == proj.ID {
			projects[i] = *proj
			replaced = true
			break
		}
	}
	if !replaced {
		projects = append(projects, *proj)
	}

	if err := s.put(ctx, keyProjects, projects); err != nil {
		return err
	}

	if s.current != nil && s.current.ID == proj.ID {
		cur := *proj
		s.current = &cur
	}
	return nil
}

// LoadProject looks a project up by id and moves it to the front of the
// recency list. Unknown ids return ErrProjectNotFound.
func (s *Store) LoadProject(ctx context.Context, id string) (*project.Project, error) {
	proj, err := s.findProject(ctx, id)
	if err != nil {
		return nil, err
	}
	s.addRecent(ctx, proj)
	return proj, nil
}

// DeleteProject removes a project from the collection, clearing the current
// pointer if it referenced it and dropping it from the recency list.
// Deleting an unknown id is a no-op.
func (s *Store) DeleteProject(ctx context.Context, id string) error {
	s.mu.Lock()

	projects, err := s.loadProjects(ctx)
	if err != nil {
		s.mu.Unlock()
		return err
	}

	filtered := projects[:0]
	for _, p := range projects {
		if p.ID != id {
			filtered = append(filtered, p)
		}
	}
	if err := s.put(ctx, keyProjects, filtered); err != nil {
		s.mu.Unlock()
		return err
	}

	clearCurrent := s.current != nil && s.current.ID == id
	s.mu.Unlock()

	if clearCurrent {
		if err := s.SetCurrentProject(ctx, ""); err != nil {
			return err
		}
	}
	s.removeRecent(ctx, id)
	return nil
}

// SetCurrentProject sets or clears the active-project pointer. An empty id
// clears it.
func (s *Store) SetCurrentProject(ctx context.Context, id string) error {
	if id == "" {
		if err := s.medium.Delete(ctx, keyCurrent); err != nil {
			s.logger.Error("clearing current pointer failed", "error", err)
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
		s.mu.Lock()
		s.current = nil
		s.mu.Unlock()
		return nil
	}

	proj, err := s.findProject(ctx, id)
	if err != nil {
		return err
	}
	if err := s.put(ctx, keyCurrent, id); err != nil {
		return err
	}
	s.mu.Lock()
	s.current = proj
	s.mu.Unlock()
	return nil
}

// CurrentProject returns a copy of the active project, or nil.
func (s *Store) CurrentProject() *project.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	cur := *s.current
	return &cur
}

// AllProjects returns the full collection in storage order.
func (s *Store) AllProjects(ctx context.Context) ([]project.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadProjects(ctx)
}

// RecentProjects returns the recency list, most recently loaded first.
func (s *Store) RecentProjects() []project.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]project.Summary(nil), s.prefs.RecentProjects...)
}

// Preferences returns the cached preference record. The recency list is
// copied so callers never observe later in-place compaction.
func (s *Store) Preferences() project.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	prefs := s.prefs
	prefs.RecentProjects = append([]project.Summary(nil), s.prefs.RecentProjects...)
	return prefs
}

// UpdatePreferences merge-patches the preference record and persists it.
// Auto-save is restarted when the patch changes its enabling flag or
// interval, so at most one timer ever runs at the effective settings.
func (s *Store) UpdatePreferences(ctx context.Context, patch project.PreferencesPatch) error {
	s.mu.Lock()
	patch.Apply(&s.prefs)
	prefs := s.prefs
	s.mu.Unlock()

	if err := s.put(ctx, keyPreferences, prefs); err != nil {
		return err
	}

	if patch.AutoSave != nil || patch.AutoSaveInterval != nil {
		s.restartAutoSave()
	}
	return nil
}

// SaveSystem stores the system definition on the current project.
func (s *Store) SaveSystem(ctx context.Context, sys *system.System) error {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return project.ErrNoCurrentProject
	}
	cur := *s.current
	s.mu.Unlock()

	cur.System = sys
	return s.SaveProject(ctx, &cur)
}

// SystemData returns the current project's system, or nil.
func (s *Store) SystemData() *system.System {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	return s.current.System
}

// SaveItems mirrors the item manager's working copy into the current
// project.
func (s *Store) SaveItems(ctx context.Context, items []fmea.Item) error {
	s.mu.Lock()
	if s.current == nil {
		s.mu.Unlock()
		return project.ErrNoCurrentProject
	}
	cur := *s.current
	s.mu.Unlock()

	if items == nil {
		items = []fmea.Item{}
	}
	cur.Items = items
	return s.SaveProject(ctx, &cur)
}

// LoadItems returns the current project's persisted item list, empty when
// no project is current.
func (s *Store) LoadItems(_ context.Context) ([]fmea.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return []fmea.Item{}, nil
	}
	return append([]fmea.Item(nil), s.current.Items...), nil
}

// findProject looks up a project without touching the recency list.
func (s *Store) findProject(ctx context.Context, id string) (*project.Project, error) {
	if id == "" {
		return nil, project.ErrProjectNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.loadProjects(ctx)
	if err != nil {
		return nil, err
	}
	for i := range projects {
		if projects[i].ID == id {
			proj := projects[i]
			return &proj, nil
		}
	}
	return nil, project.ErrProjectNotFound
}

// loadProjects reads the collection. Caller holds s.mu.
func (s *Store) loadProjects(ctx context.Context) ([]project.Project, error) {
	if !s.medium.Available() {
		return nil, ErrUnavailable
	}
	projects := []project.Project{}
	s.get(ctx, keyProjects, &projects)
	return projects, nil
}

// addRecent moves a project to the front of the recency list, deduplicated
// by id and capped. Persist failures only cost recency, so they are logged
// and swallowed.
func (s *Store) addRecent(ctx context.Context, proj *project.Project) {
	s.mu.Lock()
	entry := proj.Summarize()
	recent := make([]project.Summary, 0, len(s.prefs.RecentProjects)+1)
	recent = append(recent, entry)
	for _, r := range s.prefs.RecentProjects {
		if r.ID == entry.ID {
			continue
		}
		recent = append(recent, r)
	}
	if len(recent) > project.MaxRecentProjects {
		recent = recent[:project.MaxRecentProjects]
	}
	s.prefs.RecentProjects = recent
	prefs := s.prefs
	s.mu.Unlock()

	if err := s.put(ctx, keyPreferences, prefs); err != nil {
		s.logger.Warn("persisting recency list failed", "error", err)
	}
}

func (s *Store) removeRecent(ctx context.Context, id string) {
	s.mu.Lock()
	recent := s.prefs.RecentProjects[:0]
	for _, r := range s.prefs.RecentProjects {
		if r.ID != id {
			recent = append(recent, r)
		}
	}
	s.prefs.RecentProjects = recent
	prefs := s.prefs
	s.mu.Unlock()

	if err := s.put(ctx, keyPreferences, prefs); err != nil {
		s.logger.Warn("persisting recency list failed", "error", err)
	}
}
